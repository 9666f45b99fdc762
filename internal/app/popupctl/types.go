package popupctl

// Type identifies a popup slot.
type Type int

const (
	None Type = iota
	Help
	Confirm
	Error
)

// String returns the slot name used in logs.
func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Confirm:
		return "confirm"
	case Error:
		return "error"
	default:
		return "none"
	}
}

// Priority lists the slots that receive keys, highest first. An error
// notice sits above everything so a startup failure is seen before anything
// else.
var Priority = []Type{Error, Help, Confirm}

// RenderOrder lists the slots bottom to top.
var RenderOrder = []Type{Confirm, Help, Error}

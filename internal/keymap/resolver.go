package keymap

import "slices"

// Resolver maps key strings to actions and back.
type Resolver struct {
	actions map[string]Action   // key -> action
	keys    map[Action][]string // action -> keys in binding order
}

// NewResolver indexes bindings. A key bound twice resolves to the later
// binding; an action bound in several contexts lists each key once.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Default returns a resolver over every keyboard binding. Mouse bindings
// only document gestures and are left out.
func Default() *Resolver {
	return NewResolver(slices.DeleteFunc(slices.Clone(Bindings), func(b Binding) bool {
		return b.Context == "mouse"
	}))
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action, first binding first.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

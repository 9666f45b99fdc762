// Package ui provides shared UI component helpers.
package ui

// Base holds the size a popup was given. Embed it in popup models.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

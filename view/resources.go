package view

// ColorStateList holds a default ARGB color plus per-state overrides
// (e.g. "pressed", "disabled").
type ColorStateList struct {
	Default uint32
	States  map[string]uint32
}

// ColorForState returns the color registered for state, falling back to the
// default color.
func (c ColorStateList) ColorForState(state string) uint32 {
	if v, ok := c.States[state]; ok {
		return v
	}
	return c.Default
}

// Drawable is a resource that can be drawn into a widget's bounds.
type Drawable interface {
	// IntrinsicSize returns the drawable's natural width and height in
	// pixels.
	IntrinsicSize() (width, height int)
}

// Package view defines the lookup surface the binder resolves identifiers
// against. The binder never constructs any of these values; a widget toolkit
// (or a test fake, see viewtest) supplies them.
package view

import "strconv"

// ID identifies a widget or a resource within a lookup surface.
type ID int32

// NoID is the sentinel meaning "no identifier given". A handler declared
// without ids is bound to the lookup source's own root view.
const NoID ID = -1

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// View is a node in a widget subtree. FindViewByID searches the node itself
// and its descendants and returns nil when the id is absent; the binder maps
// a nil result to either a fatal error or a silent skip depending on the
// member's requiredness.
type View interface {
	ViewID() ID
	FindViewByID(id ID) View
	Context() Context
}

// Clickable is implemented by widgets with a click listener slot. Passing a
// nil listener clears the slot.
type Clickable interface {
	SetOnClickListener(fn func(View))
}

// LongClickable is implemented by widgets with a long-click listener slot.
// The listener's return value reports whether the event was consumed.
type LongClickable interface {
	SetOnLongClickListener(fn func(View) bool)
}

// Container is an activity- or dialog-like owner of a widget subtree. Its
// decor view is used as the lookup root when binding the container itself.
type Container interface {
	DecorView() View
}

// Context resolves identifiers to typed resource values. Resolution failures
// are returned as errors and are always fatal to the bind call; requiredness
// applies to widget lookups only.
type Context interface {
	Color(id ID) (uint32, error)
	ColorStateList(id ID) (ColorStateList, error)
	Dimension(id ID) (float64, error)
	DimensionPixelSize(id ID) (int, error)
	Drawable(id ID) (Drawable, error)
	TintedDrawable(id, tint ID) (Drawable, error)
	String(id ID) (string, error)
}

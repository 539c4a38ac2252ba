package viewbind

import (
	"reflect"

	"github.com/ygrebnov/viewbind/internal/descriptor"
	"github.com/ygrebnov/viewbind/view"
)

// Unbinder reverses the effects of a single bind call: bound fields are set
// back to their zero value and installed listeners are cleared to nil.
// Unbind is intended to be called exactly once; the behavior of a second
// call is unspecified. Previously installed listeners are not restored.
type Unbinder interface {
	Unbind()
}

// Empty is the distinguished handle returned when a bind call discovers no
// bindable members; its Unbind is a no-op.
var Empty Unbinder = emptyUnbinder{}

type emptyUnbinder struct{}

func (emptyUnbinder) Unbind() {}

// fieldUnbinder reverses one field assignment by zeroing the field.
type fieldUnbinder struct {
	target reflect.Value
	field  *descriptor.Field
}

func (u *fieldUnbinder) Unbind() {
	// The zeroing write goes through the same chokepoint as the original
	// assignment; a failure here is not propagated so that remaining units
	// still run.
	_ = assign(u.target, u.field, reflect.Zero(u.field.Type))
}

// listenerUnbinder clears the listener slot of every widget a handler was
// installed on.
type listenerUnbinder struct {
	views []view.View
	kind  descriptor.HandlerKind
}

func (u *listenerUnbinder) Unbind() {
	for _, w := range u.views {
		switch u.kind {
		case descriptor.HandlerClick:
			if c, ok := w.(view.Clickable); ok {
				c.SetOnClickListener(nil)
			}
		default: // HandlerLongClick
			if c, ok := w.(view.LongClickable); ok {
				c.SetOnLongClickListener(nil)
			}
		}
	}
}

// compositeUnbinder invokes every contained reversal unit in aggregation
// order. No unit is skipped.
type compositeUnbinder struct {
	units []Unbinder
}

func (u *compositeUnbinder) Unbind() {
	for _, unit := range u.units {
		unit.Unbind()
	}
}

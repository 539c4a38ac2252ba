package viewbind

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/descriptor"
	"github.com/ygrebnov/viewbind/view"
)

// installHandler resolves the handler's id list to widgets and installs the
// matching listener on each. One reversal unit covers all widgets of the
// handler.
func installHandler(h *descriptor.Handler, ptr reflect.Value, source view.View) (Unbinder, error) {
	views, err := resolveHandlerViews(h, source)
	if err != nil {
		return nil, err
	}

	// The bound method value is captured once; each listener closure holds
	// only the method, the arity and the return-type flag.
	m := ptr.Method(h.Index)

	switch h.Kind {
	case descriptor.HandlerClick:
		fn := func(v view.View) {
			invoke(m, h, v)
		}
		for _, w := range views {
			c, ok := w.(view.Clickable)
			if !ok {
				return nil, notListenable(errors.ErrNotClickable, h, w)
			}
			c.SetOnClickListener(fn)
		}
	default: // HandlerLongClick
		fn := func(v view.View) bool {
			out := invoke(m, h, v)
			if h.ReturnsBool {
				return out[0].Bool()
			}
			return false
		}
		for _, w := range views {
			c, ok := w.(view.LongClickable)
			if !ok {
				return nil, notListenable(errors.ErrNotLongClickable, h, w)
			}
			c.SetOnLongClickListener(fn)
		}
	}

	return &listenerUnbinder{views: views, kind: h.Kind}, nil
}

// resolveHandlerViews maps the handler's id list to widgets. No ids means
// the lookup source's own root view. Requiredness mirrors field resolution.
func resolveHandlerViews(h *descriptor.Handler, source view.View) ([]view.View, error) {
	if len(h.IDs) == 0 {
		return []view.View{source}, nil
	}
	views := make([]view.View, 0, len(h.IDs))
	for _, id := range h.IDs {
		w := source.FindViewByID(id)
		if w == nil {
			if h.Optional {
				continue
			}
			return nil, errorc.With(
				errors.ErrViewNotFound,
				errorc.String(errors.ErrorFieldMethodName, h.Method),
				errorc.String(errors.ErrorFieldViewID, id.String()),
			)
		}
		views = append(views, w)
	}
	return views, nil
}

// invoke calls the bound handler method with zero or one argument. Listener
// callbacks cannot return errors, so a reflective failure re-panics as one
// wrapped diagnostic identifying the method.
func invoke(m reflect.Value, h *descriptor.Handler, v view.View) (out []reflect.Value) {
	defer func() {
		if r := recover(); r != nil {
			panic(errorc.With(
				errors.ErrInvoke,
				errorc.String(errors.ErrorFieldMethodName, h.Method),
				errorc.String(errors.ErrorFieldCause, fmt.Sprint(r)),
			))
		}
	}()

	var args []reflect.Value
	if h.WantsView {
		// Taking the address keeps the interface type even when v is nil.
		args = []reflect.Value{reflect.ValueOf(&v).Elem()}
	}
	return m.Call(args)
}

func notListenable(sentinel error, h *descriptor.Handler, w view.View) error {
	return errorc.With(
		sentinel,
		errorc.String(errors.ErrorFieldMethodName, h.Method),
		errorc.String(errors.ErrorFieldViewID, w.ViewID().String()),
		errorc.String(errors.ErrorFieldViewType, reflect.TypeOf(w).String()),
	)
}

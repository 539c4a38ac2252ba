package viewbind

import (
	"log"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/constants"
	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/descriptor"
	"github.com/ygrebnov/viewbind/view"
)

// bindDescriptor executes a prebuilt metadata table against one target
// instance. It is the single driver behind the package-level entry points
// and the precompiled Binding front-end. Reversal units are aggregated in
// discovery order; a failing member aborts the call without rolling back
// members already bound.
func bindDescriptor(desc *descriptor.Type, ptr reflect.Value, source view.View) (Unbinder, error) {
	elem := ptr.Elem()
	units := make([]Unbinder, 0, len(desc.Fields)+len(desc.Handlers))

	for i := range desc.Fields {
		f := &desc.Fields[i]
		var (
			u   Unbinder
			err error
		)
		switch f.Category {
		case descriptor.CategoryView:
			u, err = bindViewField(f, elem, source)
		case descriptor.CategoryViews:
			u, err = bindViewsField(f, elem, source)
		default:
			u, err = bindResourceField(f, elem, source)
		}
		if err != nil {
			return nil, err
		}
		if u != nil {
			units = append(units, u)
		}
	}

	for i := range desc.Handlers {
		u, err := installHandler(&desc.Handlers[i], ptr, source)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	if len(units) == 0 {
		if debug {
			log.Printf("%s: no bindings found for %s", constants.Namespace, desc.Target)
		}
		return Empty, nil
	}
	if debug {
		log.Printf("%s: bound %d members of %s", constants.Namespace, len(units), desc.Target)
	}
	return &compositeUnbinder{units: units}, nil
}

// bindViewField resolves a single widget reference. An optional miss leaves
// the field untouched and contributes no reversal unit.
func bindViewField(f *descriptor.Field, target reflect.Value, source view.View) (Unbinder, error) {
	w := source.FindViewByID(f.IDs[0])
	if w == nil {
		if f.Optional {
			return nil, nil
		}
		return nil, viewNotFound(f, f.IDs[0])
	}
	wv, err := castView(f, w, f.IDs[0])
	if err != nil {
		return nil, err
	}
	if err := assign(target, f, wv); err != nil {
		return nil, err
	}
	return &fieldUnbinder{target: target, field: f}, nil
}

// bindViewsField resolves an id list into the field's slice or array shape.
// Optional misses are omitted, preserving the relative order of the ids that
// did resolve; unfilled array elements stay zero.
func bindViewsField(f *descriptor.Field, target reflect.Value, source view.View) (Unbinder, error) {
	found := make([]reflect.Value, 0, len(f.IDs))
	for _, id := range f.IDs {
		w := source.FindViewByID(id)
		if w == nil {
			if f.Optional {
				continue
			}
			return nil, viewNotFound(f, id)
		}
		wv, err := castView(f, w, id)
		if err != nil {
			return nil, err
		}
		found = append(found, wv)
	}

	var value reflect.Value
	switch f.Variant {
	case descriptor.VariantSlice:
		value = reflect.MakeSlice(f.Type, len(found), len(found))
	default: // VariantArray
		value = reflect.New(f.Type).Elem()
	}
	for i, wv := range found {
		value.Index(i).Set(wv)
	}

	if err := assign(target, f, value); err != nil {
		return nil, err
	}
	return &fieldUnbinder{target: target, field: f}, nil
}

// bindResourceField injects one typed resource value. Resource categories
// are one-shot: they contribute the distinguished empty reversal unit.
func bindResourceField(f *descriptor.Field, target reflect.Value, source view.View) (Unbinder, error) {
	ctx := source.Context()
	if ctx == nil {
		return nil, errorc.With(
			errors.ErrNoContext,
			errorc.String(errors.ErrorFieldFieldName, f.Name),
		)
	}

	id := f.IDs[0]
	var (
		value reflect.Value
		kind  string
		rerr  error
	)
	switch f.Variant {
	case descriptor.VariantColorARGB:
		kind = "color"
		var c uint32
		if c, rerr = ctx.Color(id); rerr == nil {
			value = reflect.ValueOf(c).Convert(f.Type)
		}
	case descriptor.VariantColorStateList:
		kind = "color"
		var csl view.ColorStateList
		if csl, rerr = ctx.ColorStateList(id); rerr == nil {
			value = reflect.ValueOf(csl)
		}
	case descriptor.VariantDimenPixel:
		kind = "dimen"
		var px int
		if px, rerr = ctx.DimensionPixelSize(id); rerr == nil {
			value = reflect.ValueOf(px).Convert(f.Type)
		}
	case descriptor.VariantDimenFloat:
		kind = "dimen"
		var d float64
		if d, rerr = ctx.Dimension(id); rerr == nil {
			value = reflect.ValueOf(d).Convert(f.Type)
		}
	case descriptor.VariantDrawable:
		kind = "drawable"
		var d view.Drawable
		if f.Tint != view.NoID {
			d, rerr = ctx.TintedDrawable(id, f.Tint)
		} else {
			d, rerr = ctx.Drawable(id)
		}
		if rerr == nil {
			value = reflect.ValueOf(d)
		}
	default: // VariantString
		kind = "string"
		var s string
		if s, rerr = ctx.String(id); rerr == nil {
			value = reflect.ValueOf(s).Convert(f.Type)
		}
	}
	if rerr != nil {
		return nil, errorc.With(
			errors.ErrResource,
			errorc.String(errors.ErrorFieldFieldName, f.Name),
			errorc.String(errors.ErrorFieldResourceID, id.String()),
			errorc.String(errors.ErrorFieldResourceKind, kind),
			errorc.String(errors.ErrorFieldCause, rerr.Error()),
		)
	}

	if err := assign(target, f, value); err != nil {
		return nil, err
	}
	return Empty, nil
}

// castView checks that a resolved widget fits the field's destination
// (element) type.
func castView(f *descriptor.Field, w view.View, id view.ID) (reflect.Value, error) {
	wv := reflect.ValueOf(w)
	if !wv.Type().AssignableTo(f.Elem) {
		return reflect.Value{}, errorc.With(
			errors.ErrWrongViewType,
			errorc.String(errors.ErrorFieldFieldName, f.Name),
			errorc.String(errors.ErrorFieldFieldType, f.Elem.String()),
			errorc.String(errors.ErrorFieldViewType, wv.Type().String()),
			errorc.String(errors.ErrorFieldViewID, id.String()),
		)
	}
	return wv, nil
}

func viewNotFound(f *descriptor.Field, id view.ID) error {
	return errorc.With(
		errors.ErrViewNotFound,
		errorc.String(errors.ErrorFieldFieldName, f.Name),
		errorc.String(errors.ErrorFieldFieldType, f.Elem.String()),
		errorc.String(errors.ErrorFieldViewID, id.String()),
	)
}

// Package descriptor builds per-type binding metadata tables. Every declared
// member is classified and shape-checked here, once per concrete type, so an
// unsupported or conflicting declaration fails before any widget or resource
// lookup is attempted.
package descriptor

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/constants"
	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/view"
)

// Category classifies a bound field.
type Category int

const (
	CategoryView Category = iota
	CategoryViews
	CategoryColor
	CategoryDimen
	CategoryDrawable
	CategoryString
)

// Variant is the value shape decided once at table construction, replacing
// runtime type switches during binding.
type Variant int

const (
	VariantScalar Variant = iota
	VariantSlice
	VariantArray
	VariantColorARGB
	VariantColorStateList
	VariantDimenPixel
	VariantDimenFloat
	VariantDrawable
	VariantString
)

// Field describes one bound struct field.
type Field struct {
	Name     string
	Index    []int // reflect index path from the target struct root
	Type     reflect.Type
	Elem     reflect.Type // element type for collection fields
	Category Category
	Variant  Variant
	IDs      []view.ID
	Tint     view.ID // drawable tint resource, NoID when absent
	Optional bool
}

// HandlerKind distinguishes the two listener-installing behaviors.
type HandlerKind int

const (
	HandlerClick HandlerKind = iota
	HandlerLongClick
)

// Handler describes one tag-declared handler method.
type Handler struct {
	Method      string
	Index       int // method index on the target's pointer type
	Kind        HandlerKind
	IDs         []view.ID // empty: bind to the lookup source's root view
	Optional    bool
	WantsView   bool // method takes the triggering view as its argument
	ReturnsBool bool // long-click only; method declares a bool result
}

// Type is the binding metadata table for one target struct type.
type Type struct {
	Target   reflect.Type
	Fields   []Field
	Handlers []Handler
}

// Boundary reports whether an embedded struct type belongs to the
// application and should be scanned for bindings. Toolkit-owned and
// standard-library types end the ascent.
type Boundary func(t reflect.Type) bool

var viewPkgPath = reflect.TypeOf(view.ColorStateList{}).PkgPath()

// DefaultBoundary excludes unnamed types, the view package and its
// subpackages, and the standard library (whose first import path element
// carries no dot).
func DefaultBoundary(t reflect.Type) bool {
	pkg := t.PkgPath()
	if pkg == "" {
		return false
	}
	if pkg == viewPkgPath || strings.HasPrefix(pkg, viewPkgPath+"/") {
		return false
	}
	first, _, _ := strings.Cut(pkg, "/")
	return strings.Contains(first, ".")
}

var (
	viewIface     = reflect.TypeOf((*view.View)(nil)).Elem()
	drawableIface = reflect.TypeOf((*view.Drawable)(nil)).Elem()
	cslType       = reflect.TypeOf(view.ColorStateList{})
)

var fieldTagKeys = []string{
	constants.TagView,
	constants.TagColor,
	constants.TagDimen,
	constants.TagDrawable,
	constants.TagString,
}

// build constructs the metadata table for t without consulting the cache.
func build(t reflect.Type, boundary Boundary) (*Type, error) {
	d := &Type{Target: t}
	if err := d.collect(t, nil, boundary); err != nil {
		return nil, err
	}
	return d, nil
}

// collect walks the declared fields of t. Embedded application structs are
// descended into after t's own members, so derived-level bindings precede
// those of their bases in the table.
func (d *Type) collect(t reflect.Type, index []int, boundary Boundary) error {
	type pending struct {
		typ   reflect.Type
		index []int
	}
	var bases []pending

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int(nil), index...), i)

		tagged, err := d.collectField(f, idx)
		if err != nil {
			return err
		}
		if err := d.collectHandlers(f); err != nil {
			return err
		}
		if tagged || !f.Anonymous {
			continue
		}
		et := f.Type
		if et.Kind() == reflect.Ptr {
			et = et.Elem()
		}
		if et.Kind() == reflect.Struct && boundary(et) {
			bases = append(bases, pending{typ: et, index: idx})
		}
	}

	for _, b := range bases {
		if err := d.collect(b.typ, b.index, boundary); err != nil {
			return err
		}
	}
	return nil
}

// collectField classifies a field by its tag keys and appends a Field entry.
// It reports whether the field carried any binding category tag.
func (d *Type) collectField(f reflect.StructField, index []int) (bool, error) {
	var key, value string
	n := 0
	for _, k := range fieldTagKeys {
		if v, ok := f.Tag.Lookup(k); ok {
			key, value = k, v
			n++
		}
	}
	if n == 0 {
		return false, nil
	}
	if n > 1 {
		return true, errorc.With(
			errors.ErrConflictingTags,
			errorc.String(errors.ErrorFieldFieldName, f.Name),
		)
	}
	if f.PkgPath != "" {
		return true, errorc.With(
			errors.ErrUnexportedField,
			errorc.String(errors.ErrorFieldFieldName, f.Name),
			errorc.String(errors.ErrorFieldTagKey, key),
		)
	}

	var (
		fd  *Field
		err error
	)
	switch key {
	case constants.TagView:
		fd, err = parseViewField(f, value)
	case constants.TagColor:
		fd, err = parseResourceField(f, value, CategoryColor)
	case constants.TagDimen:
		fd, err = parseResourceField(f, value, CategoryDimen)
	case constants.TagDrawable:
		fd, err = parseDrawableField(f, value)
	case constants.TagString:
		fd, err = parseResourceField(f, value, CategoryString)
	}
	if err != nil {
		return true, err
	}
	fd.Name = f.Name
	fd.Index = index
	d.Fields = append(d.Fields, *fd)
	return true, nil
}

// parseViewField handles the widget-reference and widget-collection
// categories; the destination shape is inferred from the field's type.
func parseViewField(f reflect.StructField, value string) (*Field, error) {
	ids, optional, err := parseIDList(f, constants.TagView, value)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, malformedTag(f, constants.TagView)
	}

	fd := &Field{Type: f.Type, IDs: ids, Tint: view.NoID, Optional: optional}
	switch f.Type.Kind() {
	case reflect.Slice:
		fd.Category = CategoryViews
		fd.Variant = VariantSlice
		fd.Elem = f.Type.Elem()
	case reflect.Array:
		if len(ids) > f.Type.Len() {
			return nil, malformedTag(f, constants.TagView)
		}
		fd.Category = CategoryViews
		fd.Variant = VariantArray
		fd.Elem = f.Type.Elem()
	default:
		if len(ids) > 1 {
			return nil, unsupportedType(f, constants.TagView)
		}
		fd.Category = CategoryView
		fd.Variant = VariantScalar
		fd.Elem = f.Type
	}
	if !isViewType(fd.Elem) {
		return nil, unsupportedType(f, constants.TagView)
	}
	return fd, nil
}

// parseResourceField handles the color, dimension and string categories,
// which take exactly one resource id.
func parseResourceField(f reflect.StructField, value string, cat Category) (*Field, error) {
	key := map[Category]string{
		CategoryColor:  constants.TagColor,
		CategoryDimen:  constants.TagDimen,
		CategoryString: constants.TagString,
	}[cat]

	id, err := parseSingleID(f, key, value)
	if err != nil {
		return nil, err
	}
	fd := &Field{Type: f.Type, Category: cat, IDs: []view.ID{id}, Tint: view.NoID}

	switch cat {
	case CategoryColor:
		switch {
		case f.Type == cslType:
			fd.Variant = VariantColorStateList
		case f.Type.Kind() == reflect.Int || f.Type.Kind() == reflect.Uint32:
			fd.Variant = VariantColorARGB
		default:
			return nil, unsupportedType(f, key)
		}
	case CategoryDimen:
		switch f.Type.Kind() {
		case reflect.Int:
			fd.Variant = VariantDimenPixel
		case reflect.Float64:
			fd.Variant = VariantDimenFloat
		default:
			return nil, unsupportedType(f, key)
		}
	case CategoryString:
		if f.Type.Kind() != reflect.String {
			return nil, unsupportedType(f, key)
		}
		fd.Variant = VariantString
	}
	return fd, nil
}

// parseDrawableField handles the drawable category: one id plus an optional
// tint(id) parameter.
func parseDrawableField(f reflect.StructField, value string) (*Field, error) {
	fd := &Field{Type: f.Type, Category: CategoryDrawable, Variant: VariantDrawable, Tint: view.NoID}
	for _, tok := range parseTokens(value) {
		switch {
		case tok.name == constants.ParamTint:
			if len(tok.params) != 1 || fd.Tint != view.NoID {
				return nil, malformedTag(f, constants.TagDrawable)
			}
			tint, err := parseID(tok.params[0])
			if err != nil {
				return nil, malformedTag(f, constants.TagDrawable)
			}
			fd.Tint = tint
		case len(tok.params) == 0:
			id, err := parseID(tok.name)
			if err != nil || len(fd.IDs) != 0 {
				return nil, malformedTag(f, constants.TagDrawable)
			}
			fd.IDs = []view.ID{id}
		default:
			return nil, malformedTag(f, constants.TagDrawable)
		}
	}
	if len(fd.IDs) != 1 {
		return nil, malformedTag(f, constants.TagDrawable)
	}
	if !f.Type.Implements(drawableIface) && !drawableIface.AssignableTo(f.Type) {
		return nil, unsupportedType(f, constants.TagDrawable)
	}
	return fd, nil
}

// collectHandlers appends handler entries for the field's onclick and
// onlongclick tag keys. The tags may sit on any field; by convention targets
// declare a blank marker field for them.
func (d *Type) collectHandlers(f reflect.StructField) error {
	if v, ok := f.Tag.Lookup(constants.TagOnClick); ok {
		if err := d.parseHandlers(v, HandlerClick); err != nil {
			return err
		}
	}
	if v, ok := f.Tag.Lookup(constants.TagOnLongClick); ok {
		if err := d.parseHandlers(v, HandlerLongClick); err != nil {
			return err
		}
	}
	return nil
}

func (d *Type) parseHandlers(value string, kind HandlerKind) error {
	ptr := reflect.PointerTo(d.Target)
	for _, tok := range parseTokens(value) {
		m, ok := ptr.MethodByName(tok.name)
		if !ok {
			return errorc.With(
				errors.ErrUnknownMethod,
				errorc.String(errors.ErrorFieldMethodName, tok.name),
				errorc.String(errors.ErrorFieldTargetType, d.Target.String()),
			)
		}

		h := Handler{Method: tok.name, Index: m.Index, Kind: kind}
		for _, p := range tok.params {
			if p == constants.TokenOptional {
				h.Optional = true
				continue
			}
			id, err := parseID(p)
			if err != nil {
				return errorc.With(
					errors.ErrMalformedTag,
					errorc.String(errors.ErrorFieldMethodName, tok.name),
				)
			}
			h.IDs = append(h.IDs, id)
		}
		// A single NoID entry is equivalent to declaring no ids at all.
		if len(h.IDs) == 1 && h.IDs[0] == view.NoID {
			h.IDs = nil
		}

		// Signature checks: zero or one view argument; long-click may
		// declare a bool result, click results are ignored.
		mt := m.Type
		switch mt.NumIn() - 1 {
		case 0:
		case 1:
			if !viewIface.AssignableTo(mt.In(1)) {
				return badHandler(tok.name, mt)
			}
			h.WantsView = true
		default:
			return badHandler(tok.name, mt)
		}
		if kind == HandlerLongClick {
			switch mt.NumOut() {
			case 0:
			case 1:
				if mt.Out(0).Kind() != reflect.Bool {
					return badHandler(tok.name, mt)
				}
				h.ReturnsBool = true
			default:
				return badHandler(tok.name, mt)
			}
		}

		d.Handlers = append(d.Handlers, h)
	}
	return nil
}

func badHandler(name string, mt reflect.Type) error {
	return errorc.With(
		errors.ErrBadHandlerShape,
		errorc.String(errors.ErrorFieldMethodName, name),
		errorc.String(errors.ErrorFieldMethodType, mt.String()),
	)
}

func parseIDList(f reflect.StructField, key, value string) ([]view.ID, bool, error) {
	var (
		ids      []view.ID
		optional bool
	)
	for _, tok := range parseTokens(value) {
		if len(tok.params) != 0 {
			return nil, false, malformedTag(f, key)
		}
		if tok.name == constants.TokenOptional {
			optional = true
			continue
		}
		id, err := parseID(tok.name)
		if err != nil {
			return nil, false, malformedTag(f, key)
		}
		ids = append(ids, id)
	}
	return ids, optional, nil
}

func parseSingleID(f reflect.StructField, key, value string) (view.ID, error) {
	toks := parseTokens(value)
	if len(toks) != 1 || len(toks[0].params) != 0 {
		return view.NoID, malformedTag(f, key)
	}
	id, err := parseID(toks[0].name)
	if err != nil {
		return view.NoID, malformedTag(f, key)
	}
	return id, nil
}

func parseID(s string) (view.ID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return view.NoID, err
	}
	return view.ID(n), nil
}

// isViewType reports whether values produced by the lookup surface can land
// in a destination of type t: concrete widget types implementing View, View
// itself, or wider interfaces.
func isViewType(t reflect.Type) bool {
	return t.Implements(viewIface) || viewIface.AssignableTo(t)
}

func malformedTag(f reflect.StructField, key string) error {
	return errorc.With(
		errors.ErrMalformedTag,
		errorc.String(errors.ErrorFieldFieldName, f.Name),
		errorc.String(errors.ErrorFieldTagKey, key),
	)
}

func unsupportedType(f reflect.StructField, key string) error {
	return errorc.With(
		errors.ErrUnsupportedType,
		errorc.String(errors.ErrorFieldFieldName, f.Name),
		errorc.String(errors.ErrorFieldFieldType, f.Type.String()),
		errorc.String(errors.ErrorFieldTagKey, key),
	)
}

package viewbind

import (
	"reflect"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/descriptor"
	"github.com/ygrebnov/viewbind/view"
)

// Binding is a reusable, precompiled binder for a specific struct type T.
// Construction builds and validates T's whole metadata table up front, so
// configuration errors (conflicting tags, unsupported shapes, unexported
// fields, unknown handler methods) surface before any view hierarchy exists.
type Binding[T any] struct {
	desc *descriptor.Type
}

// NewBinding constructs a Binding for the type parameter T.
func NewBinding[T any]() (*Binding[T], error) {
	// Obtain the reflect.Type for T. The zero value of *T is never dereferenced.
	var zero *T
	typ := reflect.TypeOf(zero).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errors.ErrNotStructPtr
	}
	desc, err := descriptor.ForType(typ)
	if err != nil {
		return nil, err
	}
	return &Binding[T]{desc: desc}, nil
}

// Bind resolves target's tagged members against source and returns the
// reversal handle. It is safe to bind many targets with the same Binding;
// each call produces an independent handle.
func (b *Binding[T]) Bind(target *T, source view.View) (Unbinder, error) {
	if target == nil {
		return nil, errors.ErrNilTarget
	}
	if source == nil {
		return nil, errors.ErrNilSource
	}
	return bindDescriptor(b.desc, reflect.ValueOf(target), source)
}

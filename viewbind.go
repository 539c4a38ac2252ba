package viewbind

import (
	"reflect"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/descriptor"
	"github.com/ygrebnov/viewbind/view"
)

// Handlers is the marker type for the blank struct field that conventionally
// carries onclick / onlongclick tags:
//
//	type screen struct {
//	    _ viewbind.Handlers `onclick:"Submit(401,402)"`
//	}
type Handlers struct{}

// debug enables per-bind diagnostic logging. Written from the UI goroutine
// only; the binder is single-threaded by contract.
var debug bool

// SetDebug controls whether each bind call logs one diagnostic line
// reporting either a miss or the number of bindings discovered. Purely
// observational.
func SetDebug(enabled bool) { debug = enabled }

// Bind resolves every tagged member of target against the source view's
// subtree and its owning context, and returns a handle that reverses all
// effects. Target must be a non-nil pointer to struct; its concrete type's
// metadata table is built on first use and cached.
func Bind(target any, source view.View) (Unbinder, error) {
	if source == nil {
		return nil, errors.ErrNilSource
	}
	ptr, err := targetValue(target)
	if err != nil {
		return nil, err
	}
	desc, err := descriptor.ForType(ptr.Elem().Type())
	if err != nil {
		return nil, err
	}
	return bindDescriptor(desc, ptr, source)
}

// BindView binds a widget against its own subtree: the view is both the
// binding target and the lookup root.
func BindView(v view.View) (Unbinder, error) {
	if v == nil {
		return nil, errors.ErrNilSource
	}
	return Bind(v, v)
}

// BindContainer binds target using the container's decor view as the lookup
// root. Activity-like and dialog-like owners both satisfy view.Container;
// pass the container itself as target to bind its own members.
func BindContainer(target any, host view.Container) (Unbinder, error) {
	if host == nil {
		return nil, errors.ErrNilSource
	}
	return Bind(target, host.DecorView())
}

// targetValue validates that target is a non-nil pointer to struct and
// returns the pointer value.
func targetValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, errors.ErrNilTarget
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.ErrNotStructPtr
	}
	if rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, errors.ErrNotStructPtr
	}
	return rv, nil
}

package descriptor

import (
	"reflect"
	"sync"
)

// typeCache holds successfully built descriptors keyed by target type.
// Struct tags are static for a compiled type, so a built table never goes
// stale. Failed builds are not cached; configuration errors surface on every
// attempt during development.
var typeCache sync.Map // map[reflect.Type]*Type

// ForType returns the metadata table for the struct type t, building and
// validating it on first use.
func ForType(t reflect.Type) (*Type, error) {
	if v, ok := typeCache.Load(t); ok {
		return v.(*Type), nil
	}
	d, err := build(t, DefaultBoundary)
	if err != nil {
		return nil, err
	}
	typeCache.Store(t, d)
	return d, nil
}

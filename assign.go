package viewbind

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/descriptor"
)

// assign performs the reflective field write. It is the sole chokepoint for
// write failures: any panic raised by the reflect layer is converted into
// one diagnostic error carrying the value, the field and the target type.
// Callers never handle lower-level reflection failures individually.
func assign(target reflect.Value, f *descriptor.Field, value reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = assignError(target, f, value, fmt.Sprint(r))
		}
	}()

	fv, ferr := target.FieldByIndexErr(f.Index)
	if ferr != nil {
		// A nil embedded pointer on the path to the field.
		return assignError(target, f, value, ferr.Error())
	}
	fv.Set(value)
	return nil
}

func assignError(target reflect.Value, f *descriptor.Field, value reflect.Value, cause string) error {
	val := "<zero>"
	if value.IsValid() {
		val = fmt.Sprintf("%v (%s)", value.Interface(), value.Type())
	}
	return errorc.With(
		errors.ErrAssign,
		errorc.String(errors.ErrorFieldFieldName, f.Name),
		errorc.String(errors.ErrorFieldValue, val),
		errorc.String(errors.ErrorFieldTargetType, target.Type().String()),
		errorc.String(errors.ErrorFieldCause, cause),
	)
}

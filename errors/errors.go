package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	// Caller misuses.
	ErrNilTarget    = namespace.NewError("nil target")
	ErrNotStructPtr = namespace.NewError("target must be a non-nil pointer to struct")
	ErrNilSource    = namespace.NewError("nil source view")

	// Configuration errors, raised while building a type descriptor.
	ErrConflictingTags = namespace.NewError("field declares more than one binding category")
	ErrUnexportedField = namespace.NewError("bound field must be exported")
	ErrUnsupportedType = namespace.NewError("unsupported field type for binding category")
	ErrMalformedTag    = namespace.NewError("malformed binding tag")
	ErrUnknownMethod   = namespace.NewError("handler method not found")
	ErrBadHandlerShape = namespace.NewError("unsupported handler method signature")

	// Resolution errors, raised while executing a bind call.
	ErrViewNotFound     = namespace.NewError("required view not found")
	ErrWrongViewType    = namespace.NewError("resolved view has wrong type")
	ErrNotClickable     = namespace.NewError("widget does not accept click listeners")
	ErrNotLongClickable = namespace.NewError("widget does not accept long-click listeners")
	ErrNoContext        = namespace.NewError("source view has no owning context")
	ErrResource         = namespace.NewError("resource resolution failed")

	// Reflective-access failures, wrapped at the single write/invoke sites.
	ErrAssign = namespace.NewError("unable to assign value to field")
	ErrInvoke = namespace.NewError("unable to invoke handler method")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentField    = "field"
	keySegmentMethod   = "method"
	keySegmentResource = "resource"
)

// Exported structured error field keys
var (
	ErrorFieldFieldName = newKey("name", keySegmentField) // viewbind.field.name
	ErrorFieldFieldType = newKey("type", keySegmentField) // viewbind.field.type
	ErrorFieldTagKey    = newKey("tag", keySegmentField)  // viewbind.field.tag
)

var (
	ErrorFieldMethodName = newKey("name", keySegmentMethod)      // viewbind.method.name
	ErrorFieldMethodType = newKey("signature", keySegmentMethod) // viewbind.method.signature
)

var (
	ErrorFieldResourceID   = newKey("id", keySegmentResource)   // viewbind.resource.id
	ErrorFieldResourceKind = newKey("kind", keySegmentResource) // viewbind.resource.kind
)

var (
	ErrorFieldViewID     = newKey("view_id")
	ErrorFieldViewType   = newKey("view_type")
	ErrorFieldTargetType = newKey("target_type")
	ErrorFieldValue      = newKey("value")
	ErrorFieldCause      = newKey("cause")
)

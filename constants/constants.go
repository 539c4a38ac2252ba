package constants

const Namespace = "viewbind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Struct tag keys recognized on fields.
const (
	TagView     = "bind"
	TagColor    = "bindcolor"
	TagDimen    = "binddimen"
	TagDrawable = "binddrawable"
	TagString   = "bindstring"
)

// Struct tag keys declaring handler methods.
const (
	TagOnClick     = "onclick"
	TagOnLongClick = "onlongclick"
)

// Tokens recognized inside tag values.
const (
	TokenOptional = "optional"
	ParamTint     = "tint"
)

// Package viewbind wires struct-tag-annotated fields and tag-declared
// handler methods of an application struct to widgets and resources of a
// caller-supplied view hierarchy, at runtime, using reflection only.
//
// Field tags:
//
//	type screen struct {
//	    Title   *toolkit.Label   `bind:"101"`
//	    Rows    []view.View      `bind:"201,202,203"`
//	    Accent  uint32           `bindcolor:"301"`
//	    Margin  int              `binddimen:"302"`
//	    Icon    view.Drawable    `binddrawable:"303,tint(304)"`
//	    Footer  string           `bindstring:"305"`
//	    Hidden  view.View        `bind:"401,optional"`
//	    _       viewbind.Handlers `onclick:"Submit(501)" onlongclick:"Reset"`
//	}
//
// Bind resolves every tagged member against the source view and returns a
// single Unbinder that nulls the bound fields and clears the installed
// listeners. Binding is a one-shot initialization pass: any failure is
// reported immediately and nothing is retried.
//
// All operations are synchronous and confined to the calling goroutine,
// which is expected to be the UI loop that owns the widgets.
package viewbind

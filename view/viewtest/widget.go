// Package viewtest provides an in-memory widget toolkit implementing the
// view interfaces. It backs the binder's own tests and is exported so that
// applications can test their bindings without a real toolkit.
package viewtest

import "github.com/ygrebnov/viewbind/view"

// Widget is a tree node with click and long-click listener slots. Concrete
// widget kinds (Button, Label) embed it.
type Widget struct {
	id       view.ID
	self     view.View // outermost value, kept so lookups and events preserve identity
	ctx      view.Context
	children []view.View

	onClick     func(view.View)
	onLongClick func(view.View) bool
}

// NewWidget constructs a plain widget.
func NewWidget(id view.ID, children ...view.View) *Widget {
	w := &Widget{id: id, children: children}
	w.self = w
	return w
}

// Add appends child views.
func (w *Widget) Add(children ...view.View) {
	w.children = append(w.children, children...)
}

// SetContext attaches the owning context. Only the lookup root needs one;
// the binder asks the source view, never its children.
func (w *Widget) SetContext(ctx view.Context) { w.ctx = ctx }

func (w *Widget) ViewID() view.ID       { return w.id }
func (w *Widget) Context() view.Context { return w.ctx }

// FindViewByID searches the widget itself and its descendants.
func (w *Widget) FindViewByID(id view.ID) view.View {
	if id == w.id {
		return w.self
	}
	for _, c := range w.children {
		if v := c.FindViewByID(id); v != nil {
			return v
		}
	}
	return nil
}

func (w *Widget) SetOnClickListener(fn func(view.View))          { w.onClick = fn }
func (w *Widget) SetOnLongClickListener(fn func(view.View) bool) { w.onLongClick = fn }

// HasClickListener reports whether a click listener is installed.
func (w *Widget) HasClickListener() bool { return w.onClick != nil }

// HasLongClickListener reports whether a long-click listener is installed.
func (w *Widget) HasLongClickListener() bool { return w.onLongClick != nil }

// PerformClick fires the click listener and reports whether one was
// installed.
func (w *Widget) PerformClick() bool {
	if w.onClick == nil {
		return false
	}
	w.onClick(w.self)
	return true
}

// PerformLongClick fires the long-click listener and returns its result;
// false when no listener is installed.
func (w *Widget) PerformLongClick() bool {
	if w.onLongClick == nil {
		return false
	}
	return w.onLongClick(w.self)
}

// Button is a labeled, clickable widget.
type Button struct {
	Widget
	Text string
}

func NewButton(id view.ID, text string) *Button {
	b := &Button{Text: text}
	b.id = id
	b.self = b
	return b
}

// Label is a text widget.
type Label struct {
	Widget
	Text string
}

func NewLabel(id view.ID, text string) *Label {
	l := &Label{Text: text}
	l.id = id
	l.self = l
	return l
}

package viewbind

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	vbErrors "github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/view"
	"github.com/ygrebnov/viewbind/view/viewtest"
)

// testTree builds the hierarchy used across the binder tests:
//
//	1 (root)
//	├── 11 label "Title"
//	├── 12 button "OK"
//	└── 13 button "Cancel"
func testTree() *viewtest.Widget {
	return viewtest.NewWidget(1,
		viewtest.NewLabel(11, "Title"),
		viewtest.NewButton(12, "OK"),
		viewtest.NewButton(13, "Cancel"),
	)
}

type plainTarget struct {
	N int
}

type titleTarget struct {
	Title *viewtest.Label `bind:"11"`
}

type missingRequiredTarget struct {
	Gone view.View `bind:"99"`
}

type missingOptionalTarget struct {
	Gone view.View `bind:"99,optional"`
}

type rowsTarget struct {
	Rows []view.View `bind:"12,99,13,optional"`
}

type fixedRowsTarget struct {
	Rows [3]view.View `bind:"12,99,13,optional"`
}

type wrongTypeTarget struct {
	Title *viewtest.Button `bind:"11"`
}

type screenBase struct {
	Footer view.View `bind:"13"`
}

type screenDerived struct {
	screenBase
	Header view.View `bind:"11"`
}

func TestBind_NoBindableMembers(t *testing.T) {
	u, err := Bind(&plainTarget{N: 7}, testTree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != Empty {
		t.Fatalf("expected the distinguished empty handle")
	}
	u.Unbind() // must be a no-op
}

func TestBind_RequiredViewField(t *testing.T) {
	root := testTree()
	target := &titleTarget{}

	u, err := Bind(target, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Title == nil || target.Title.ViewID() != 11 {
		t.Fatalf("Title not bound: %+v", target.Title)
	}
	if target.Title.Text != "Title" {
		t.Fatalf("Title bound to the wrong widget: %q", target.Title.Text)
	}

	u.Unbind()
	if target.Title != nil {
		t.Fatalf("Title not cleared by Unbind")
	}
}

func TestBind_RequiredViewMissing(t *testing.T) {
	target := &missingRequiredTarget{}
	_, err := Bind(target, testTree())
	if !errors.Is(err, vbErrors.ErrViewNotFound) {
		t.Fatalf("expected ErrViewNotFound, got: %v", err)
	}
	if target.Gone != nil {
		t.Fatalf("field mutated despite failed bind")
	}
}

func TestBind_OptionalViewMissing(t *testing.T) {
	original := viewtest.NewWidget(55)
	target := &missingOptionalTarget{Gone: original}

	u, err := Bind(target, testTree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Gone != view.View(original) {
		t.Fatalf("optional miss must leave the field untouched")
	}
	u.Unbind()
	if target.Gone != view.View(original) {
		t.Fatalf("reversal for an optional miss must be a no-op")
	}
}

func TestBind_CollectionOmitsOptionalMisses(t *testing.T) {
	t.Run("slice", func(t *testing.T) {
		target := &rowsTarget{}
		u, err := Bind(target, testTree())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(target.Rows) != 2 {
			t.Fatalf("expected 2 resolved rows, got %d", len(target.Rows))
		}
		if target.Rows[0].ViewID() != 12 || target.Rows[1].ViewID() != 13 {
			t.Fatalf("relative order not preserved: %v, %v", target.Rows[0].ViewID(), target.Rows[1].ViewID())
		}
		u.Unbind()
		if target.Rows != nil {
			t.Fatalf("Rows not cleared by Unbind")
		}
	})

	t.Run("array", func(t *testing.T) {
		target := &fixedRowsTarget{}
		if _, err := Bind(target, testTree()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.Rows[0].ViewID() != 12 || target.Rows[1].ViewID() != 13 {
			t.Fatalf("resolved rows not compacted in order: %v", target.Rows)
		}
		if target.Rows[2] != nil {
			t.Fatalf("unfilled array element must stay zero")
		}
	})
}

func TestBind_RequiredCollectionMissing(t *testing.T) {
	type target struct {
		Rows []view.View `bind:"12,99"`
	}
	_, err := Bind(&target{}, testTree())
	if !errors.Is(err, vbErrors.ErrViewNotFound) {
		t.Fatalf("expected ErrViewNotFound, got: %v", err)
	}
}

func TestBind_WrongViewType(t *testing.T) {
	_, err := Bind(&wrongTypeTarget{}, testTree())
	if !errors.Is(err, vbErrors.ErrWrongViewType) {
		t.Fatalf("expected ErrWrongViewType, got: %v", err)
	}
}

func TestBind_WalksEmbeddedBase(t *testing.T) {
	target := &screenDerived{}
	u, err := Bind(target, testTree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Header == nil || target.Header.ViewID() != 11 {
		t.Fatalf("derived member not bound")
	}
	if target.Footer == nil || target.Footer.ViewID() != 13 {
		t.Fatalf("base member not bound")
	}

	u.Unbind()
	if target.Header != nil || target.Footer != nil {
		t.Fatalf("Unbind must cover members of every walked level")
	}
}

func TestBind_ArgumentValidation(t *testing.T) {
	root := testTree()
	tests := []struct {
		name    string
		target  any
		source  view.View
		wantErr error
	}{
		{"nil target", nil, root, vbErrors.ErrNilTarget},
		{"non-pointer target", titleTarget{}, root, vbErrors.ErrNotStructPtr},
		{"pointer to non-struct", new(int), root, vbErrors.ErrNotStructPtr},
		{"nil source", &titleTarget{}, nil, vbErrors.ErrNilSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bind(tc.target, tc.source)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Bind error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

type cardView struct {
	*viewtest.Widget
	Title *viewtest.Label `bind:"11"`
}

func TestBindView(t *testing.T) {
	cv := &cardView{Widget: testTree()}
	u, err := BindView(cv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cv.Title == nil || cv.Title.Text != "Title" {
		t.Fatalf("Title not bound through the view's own subtree")
	}
	u.Unbind()
	if cv.Title != nil {
		t.Fatalf("Title not cleared by Unbind")
	}
}

type fakeActivity struct {
	root view.View

	Title *viewtest.Label `bind:"11"`
}

func (a *fakeActivity) DecorView() view.View { return a.root }

func TestBindContainer(t *testing.T) {
	a := &fakeActivity{root: testTree()}
	u, err := BindContainer(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title == nil || a.Title.ViewID() != 11 {
		t.Fatalf("Title not bound through the decor view")
	}
	u.Unbind()

	if _, err := BindContainer(a, nil); !errors.Is(err, vbErrors.ErrNilSource) {
		t.Fatalf("expected ErrNilSource for a nil container, got: %v", err)
	}
}

func TestSetDebug_LogsOneLinePerBind(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(orig)
		SetDebug(false)
	})

	SetDebug(true)

	if _, err := Bind(&plainTarget{}, testTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "no bindings found") {
		t.Fatalf("missing miss diagnostic, log: %q", buf.String())
	}

	buf.Reset()
	if _, err := Bind(&screenDerived{}, testTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "bound 2 members") {
		t.Fatalf("missing hit diagnostic, log: %q", buf.String())
	}
}

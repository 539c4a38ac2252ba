package viewtest

import (
	"strings"
	"testing"
)

const sampleFixture = `
resources:
  colors:
    301: crimson
    302: "#80ff0000"
    303: "#112233"
  dimens:
    310: 16.5
  drawables:
    320: logo
  strings:
    330: hello
root:
  id: 1
  children:
    - id: 11
      kind: label
      text: Title
    - id: 12
      kind: button
      text: OK
`

func TestLoad(t *testing.T) {
	root, err := Load([]byte(sampleFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.ViewID() != 1 {
		t.Fatalf("root id = %v", root.ViewID())
	}
	if l, ok := root.FindViewByID(11).(*Label); !ok || l.Text != "Title" {
		t.Fatalf("label not built: %v", root.FindViewByID(11))
	}
	if b, ok := root.FindViewByID(12).(*Button); !ok || b.Text != "OK" {
		t.Fatalf("button not built: %v", root.FindViewByID(12))
	}

	ctx := root.Context()
	if ctx == nil {
		t.Fatalf("fixture context not attached")
	}
	if c, err := ctx.Color(301); err != nil || c != 0xffdc143c {
		t.Fatalf("named color = %#x, %v", c, err)
	}
	if c, err := ctx.Color(302); err != nil || c != 0x80ff0000 {
		t.Fatalf("argb literal = %#x, %v", c, err)
	}
	if c, err := ctx.Color(303); err != nil || c != 0xff112233 {
		t.Fatalf("rgb literal = %#x, %v", c, err)
	}
	if px, err := ctx.DimensionPixelSize(310); err != nil || px != 16 {
		t.Fatalf("pixel size = %d, %v", px, err)
	}
	if s, err := ctx.String(330); err != nil || s != "hello" {
		t.Fatalf("string = %q, %v", s, err)
	}
	if d, err := ctx.Drawable(320); err != nil {
		t.Fatalf("drawable: %v", err)
	} else if w, h := d.IntrinsicSize(); w != 24 || h != 24 {
		t.Fatalf("drawable size = %dx%d", w, h)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no root", "resources: {}", "no root view"},
		{"unknown kind", "root: {id: 1, kind: carousel}", "unknown widget kind"},
		{"bad color", "resources: {colors: {1: notacolor}}\nroot: {id: 1}", "unknown color name"},
		{"bad yaml", "root: [", "parse fixture"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.in))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"crimson", 0xffdc143c, false},
		{"Crimson", 0xffdc143c, false},
		{"#112233", 0xff112233, false},
		{"#80ff0000", 0x80ff0000, false},
		{"#1234", 0, true},
		{"#zzzzzz", 0, true},
		{"vantablack", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("ParseColor(%q) = %#x, %v; want %#x", tc.in, got, err, tc.want)
			}
		})
	}
}

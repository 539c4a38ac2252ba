package viewtest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/viewbind/view"
)

// fixture mirrors the YAML document shape accepted by Load:
//
//	resources:
//	  colors:    {301: crimson, 302: "#80ff0000"}
//	  dimens:    {310: 16.5}
//	  drawables: {320: logo}
//	  strings:   {330: "hello"}
//	root:
//	  id: 1
//	  children:
//	    - {id: 101, kind: label, text: Title}
//	    - {id: 102, kind: button, text: OK}
type fixture struct {
	Resources struct {
		Colors    map[view.ID]string  `yaml:"colors"`
		Dimens    map[view.ID]float64 `yaml:"dimens"`
		Drawables map[view.ID]string  `yaml:"drawables"`
		Strings   map[view.ID]string  `yaml:"strings"`
	} `yaml:"resources"`
	Root *node `yaml:"root"`
}

type node struct {
	ID       view.ID `yaml:"id"`
	Kind     string  `yaml:"kind"`
	Text     string  `yaml:"text"`
	Children []*node `yaml:"children"`
}

// Load builds a widget tree with an attached resource context from a YAML
// fixture document.
func Load(data []byte) (view.View, error) {
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("viewtest: parse fixture: %w", err)
	}
	if fx.Root == nil {
		return nil, errors.New("viewtest: fixture has no root view")
	}

	res := NewResources()
	for id, s := range fx.Resources.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		res.Colors[id] = c
	}
	for id, d := range fx.Resources.Dimens {
		res.Dimens[id] = d
	}
	for id, name := range fx.Resources.Drawables {
		res.Drawables[id] = Icon{Name: name, Width: 24, Height: 24}
	}
	for id, s := range fx.Resources.Strings {
		res.Strings[id] = s
	}

	root, err := buildNode(fx.Root)
	if err != nil {
		return nil, err
	}
	root.(interface{ SetContext(view.Context) }).SetContext(res)
	return root, nil
}

func buildNode(n *node) (view.View, error) {
	var w view.View
	switch n.Kind {
	case "", "widget":
		w = NewWidget(n.ID)
	case "button":
		w = NewButton(n.ID, n.Text)
	case "label":
		w = NewLabel(n.ID, n.Text)
	default:
		return nil, fmt.Errorf("viewtest: unknown widget kind %q", n.Kind)
	}
	for _, c := range n.Children {
		cw, err := buildNode(c)
		if err != nil {
			return nil, err
		}
		w.(interface{ Add(...view.View) }).Add(cw)
	}
	return w, nil
}

// ParseColor resolves "#RRGGBB", "#AARRGGBB" or an SVG 1.1 color name to an
// ARGB value.
func ParseColor(s string) (uint32, error) {
	if h, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("viewtest: bad color literal %q", s)
		}
		switch len(h) {
		case 6:
			return 0xff000000 | uint32(v), nil
		case 8:
			return uint32(v), nil
		default:
			return 0, fmt.Errorf("viewtest: bad color literal %q", s)
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B), nil
	}
	return 0, fmt.Errorf("viewtest: unknown color name %q", s)
}

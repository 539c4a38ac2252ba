package viewtest

import (
	"fmt"

	"github.com/ygrebnov/viewbind/view"
)

// Resources implements view.Context over in-memory tables. Missing entries
// resolve to errors, mirroring a real toolkit's resource lookup.
type Resources struct {
	Colors     map[view.ID]uint32
	ColorLists map[view.ID]view.ColorStateList
	Dimens     map[view.ID]float64
	Drawables  map[view.ID]Icon
	Strings    map[view.ID]string
}

func NewResources() *Resources {
	return &Resources{
		Colors:     make(map[view.ID]uint32),
		ColorLists: make(map[view.ID]view.ColorStateList),
		Dimens:     make(map[view.ID]float64),
		Drawables:  make(map[view.ID]Icon),
		Strings:    make(map[view.ID]string),
	}
}

func (r *Resources) Color(id view.ID) (uint32, error) {
	if c, ok := r.Colors[id]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("viewtest: no color resource %s", id)
}

func (r *Resources) ColorStateList(id view.ID) (view.ColorStateList, error) {
	if c, ok := r.ColorLists[id]; ok {
		return c, nil
	}
	return view.ColorStateList{}, fmt.Errorf("viewtest: no color state list resource %s", id)
}

func (r *Resources) Dimension(id view.ID) (float64, error) {
	if d, ok := r.Dimens[id]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("viewtest: no dimension resource %s", id)
}

func (r *Resources) DimensionPixelSize(id view.ID) (int, error) {
	d, err := r.Dimension(id)
	if err != nil {
		return 0, err
	}
	return int(d), nil
}

func (r *Resources) Drawable(id view.ID) (view.Drawable, error) {
	if d, ok := r.Drawables[id]; ok {
		return &d, nil
	}
	return nil, fmt.Errorf("viewtest: no drawable resource %s", id)
}

func (r *Resources) TintedDrawable(id, tint view.ID) (view.Drawable, error) {
	d, ok := r.Drawables[id]
	if !ok {
		return nil, fmt.Errorf("viewtest: no drawable resource %s", id)
	}
	c, err := r.Color(tint)
	if err != nil {
		return nil, err
	}
	d.Tint = c
	d.Tinted = true
	return &d, nil
}

func (r *Resources) String(id view.ID) (string, error) {
	if s, ok := r.Strings[id]; ok {
		return s, nil
	}
	return "", fmt.Errorf("viewtest: no string resource %s", id)
}

// Icon is a fake drawable. TintedDrawable hands out copies with the tint
// recorded, so assertions can distinguish tinted from plain resolution.
type Icon struct {
	Name          string
	Width, Height int
	Tint          uint32
	Tinted        bool
}

func (i *Icon) IntrinsicSize() (width, height int) { return i.Width, i.Height }

package chart

import (
	"image"
	"image/draw"
)

type fakeTooltip struct {
	text    string
	x, y    float64
	visible bool
	shows   int
}

func (t *fakeTooltip) Show(text string, x, y float64) {
	t.text, t.x, t.y, t.visible = text, x, y, true
	t.shows++
}

func (t *fakeTooltip) Hide() { t.visible = false }

type fakeSurface struct {
	id        string
	img       *image.RGBA
	ox, oy    float64
	cursor    Cursor
	listeners map[EventType][]Listener
}

func (s *fakeSurface) ID() string { return s.id }
func (s *fakeSurface) Size() (int, int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}
func (s *fakeSurface) Origin() (float64, float64) { return s.ox, s.oy }
func (s *fakeSurface) Canvas() draw.Image           { return s.img }
func (s *fakeSurface) SetCursor(c Cursor)           { s.cursor = c }
func (s *fakeSurface) AddEventListener(t EventType, l Listener) {
	s.listeners[t] = append(s.listeners[t], l)
}

func (s *fakeSurface) fire(t EventType, ev PointerEvent) {
	for _, l := range s.listeners[t] {
		l(ev)
	}
}

type fakeHost struct {
	surfaces map[string]*fakeSurface
	tooltips map[string]*fakeTooltip
	created  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{surfaces: map[string]*fakeSurface{}, tooltips: map[string]*fakeTooltip{}}
}

func (h *fakeHost) add(id string, w, hgt int, ox, oy float64) *fakeSurface {
	s := &fakeSurface{
		id:        id,
		img:       image.NewRGBA(image.Rect(0, 0, w, hgt)),
		ox:        ox,
		oy:        oy,
		listeners: map[EventType][]Listener{},
	}
	h.surfaces[id] = s
	return s
}

func (h *fakeHost) Surface(id string) (Surface, bool) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (h *fakeHost) Tooltip(name string) (Tooltip, bool) {
	t, ok := h.tooltips[name]
	if !ok {
		return nil, false
	}
	return t, true
}

func (h *fakeHost) CreateTooltip(name string) Tooltip {
	h.created++
	t := &fakeTooltip{}
	h.tooltips[name] = t
	return t
}

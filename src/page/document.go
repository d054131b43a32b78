// Package page is the in-memory document the report lives in: chart surfaces, floating
// elements, per-surface pointer listeners, body scroll lock and scroll position. It also holds
// the small page behaviours around the charts (modals, carousel, visibility observers).
package page

import (
	"image"
	"image/draw"
	"sort"

	"github.com/iafilius/EvalReportCharts/src/chart"
	"github.com/iafilius/EvalReportCharts/src/logging"
)

// Canvas is a raster chart surface.
type Canvas struct {
	id        string
	img       *image.RGBA
	originX   float64
	originY   float64
	cursor    chart.Cursor
	listeners map[chart.EventType][]chart.Listener
}

func (c *Canvas) ID() string { return c.id }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Origin() (float64, float64) { return c.originX, c.originY }

// SetOrigin moves the surface, e.g. after the host re-laid out the page.
func (c *Canvas) SetOrigin(x, y float64) { c.originX, c.originY = x, y }

func (c *Canvas) Canvas() draw.Image { return c.img }

// Image returns the painted pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Cursor() chart.Cursor { return c.cursor }

func (c *Canvas) SetCursor(cur chart.Cursor) { c.cursor = cur }

func (c *Canvas) AddEventListener(t chart.EventType, l chart.Listener) {
	c.listeners[t] = append(c.listeners[t], l)
}

// Document implements chart.Host.
type Document struct {
	surfaces map[string]*Canvas
	elements map[string]*Element
	seq      int

	bodyLocked bool
	scrollY    float64
}

func NewDocument() *Document {
	return &Document{
		surfaces: map[string]*Canvas{},
		elements: map[string]*Element{},
	}
}

// AddSurface creates (or replaces) a w×h surface whose top-left sits at (x, y) in client space.
// Replacing a surface drops its listeners, like swapping a canvas node.
func (d *Document) AddSurface(id string, w, h int, x, y float64) *Canvas {
	c := &Canvas{
		id:        id,
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		originX:   x,
		originY:   y,
		listeners: map[chart.EventType][]chart.Listener{},
	}
	d.surfaces[id] = c
	return c
}

// ResizeSurface reallocates the pixel buffer of an existing surface and keeps its listeners.
// The surface is blank until the next render.
func (d *Document) ResizeSurface(id string, w, h int) bool {
	c, ok := d.surfaces[id]
	if !ok {
		return false
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return true
}

// Canvas returns the concrete surface.
func (d *Document) Canvas(id string) (*Canvas, bool) {
	c, ok := d.surfaces[id]
	return c, ok
}

// SurfaceIDs lists surfaces in id order.
func (d *Document) SurfaceIDs() []string {
	ids := make([]string, 0, len(d.surfaces))
	for id := range d.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (d *Document) Surface(id string) (chart.Surface, bool) {
	c, ok := d.surfaces[id]
	if !ok {
		return nil, false
	}
	return c, true
}

func (d *Document) Tooltip(name string) (chart.Tooltip, bool) {
	e, ok := d.elements[name]
	if !ok {
		return nil, false
	}
	return e, true
}

func (d *Document) CreateTooltip(name string) chart.Tooltip {
	e := d.CreateElement(name)
	e.AddClass("chart-tooltip")
	return e
}

// Element looks an element up by id.
func (d *Document) Element(id string) (*Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}

// CreateElement attaches a hidden element, or returns the existing one with that id.
func (d *Document) CreateElement(id string, classes ...string) *Element {
	if e, ok := d.elements[id]; ok {
		return e
	}
	d.seq++
	e := newElement(id, d.seq)
	for _, c := range classes {
		e.AddClass(c)
	}
	d.elements[id] = e
	return e
}

// ElementsByClass returns elements carrying class, in creation order.
func (d *Document) ElementsByClass(class string) []*Element {
	var out []*Element
	for _, e := range d.elements {
		if e.HasClass(class) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Dispatch delivers a pointer event to every listener of that type on surface id and returns
// how many ran.
func (d *Document) Dispatch(id string, t chart.EventType, ev chart.PointerEvent) int {
	c, ok := d.surfaces[id]
	if !ok {
		logging.Debugf("page: dispatch %s to unknown surface %s", t, id)
		return 0
	}
	ls := c.listeners[t]
	for _, l := range ls {
		l(ev)
	}
	return len(ls)
}

// ListenerCount returns the number of bound listeners of type t on surface id.
func (d *Document) ListenerCount(id string, t chart.EventType) int {
	c, ok := d.surfaces[id]
	if !ok {
		return 0
	}
	return len(c.listeners[t])
}

// BodyScrollLocked reports whether an open modal holds the page still.
func (d *Document) BodyScrollLocked() bool { return d.bodyLocked }

func (d *Document) setBodyLocked(v bool) { d.bodyLocked = v }

func (d *Document) ScrollY() float64 { return d.scrollY }

func (d *Document) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	d.scrollY = y
}

package page

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o; empty rects have zero size.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 || y1 < y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Element is a generic page node: tooltips, modals, sections, images, indicators.
type Element struct {
	ID   string
	Text string
	// Left and Top place floating elements in client space.
	Left, Top float64
	// Rect is the element's layout box in page space.
	Rect Rect

	seq     int
	visible bool
	classes map[string]bool
	attrs   map[string]string
	shows   int
}

func newElement(id string, seq int) *Element {
	return &Element{ID: id, seq: seq, classes: map[string]bool{}, attrs: map[string]string{}}
}

// Show sets the text and position and makes the element visible. It implements chart.Tooltip.
func (e *Element) Show(text string, x, y float64) {
	e.Text = text
	e.Left = x
	e.Top = y
	e.visible = true
	e.shows++
}

func (e *Element) Hide() { e.visible = false }

func (e *Element) SetVisible(v bool) { e.visible = v }

func (e *Element) Visible() bool { return e.visible }

// ShowCount counts Show calls; tests use it to detect duplicate handlers.
func (e *Element) ShowCount() int { return e.shows }

func (e *Element) AddClass(c string) { e.classes[c] = true }

func (e *Element) RemoveClass(c string) { delete(e.classes, c) }

func (e *Element) HasClass(c string) bool { return e.classes[c] }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

func (e *Element) RemoveAttr(name string) { delete(e.attrs, name) }

package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/EvalReportCharts/cmd/reportviewer/uihelpers"
	"github.com/iafilius/EvalReportCharts/src/catalog"
	"github.com/iafilius/EvalReportCharts/src/chart"
)

// viewMapping relates a contain-scaled chart view to client space. Client units are surface
// pixels and the surface origin sits at the drawn image's top-left corner in the window.
type viewMapping struct {
	originX, originY float64
	scale            float64
	imgW, imgH       float32
	view             fyne.Size
}

func newViewMapping(local, abs fyne.Position, imgW, imgH int, view fyne.Size) viewMapping {
	dx, dy, s := uihelpers.ContainRect(float32(imgW), float32(imgH), view.Width, view.Height)
	return viewMapping{
		originX: float64(abs.X - local.X + dx),
		originY: float64(abs.Y - local.Y + dy),
		scale:   float64(s),
		imgW:    float32(imgW),
		imgH:    float32(imgH),
		view:    view,
	}
}

// toClient maps a position inside the view to client coordinates.
func (m viewMapping) toClient(local fyne.Position) (float64, float64) {
	ix, iy := uihelpers.ViewToImage(local.X, local.Y, m.imgW, m.imgH, m.view.Width, m.view.Height)
	return m.originX + float64(ix), m.originY + float64(iy)
}

// toWindow maps client coordinates back to window coordinates.
func (m viewMapping) toWindow(x, y float64) fyne.Position {
	return fyne.NewPos(float32(m.originX+(x-m.originX)*m.scale), float32(m.originY+(y-m.originY)*m.scale))
}

// chartView shows one chart surface and forwards pointer activity to the document, which
// runs the hover tracker bound to that surface.
type chartView struct {
	widget.BaseWidget
	state   *uiState
	id      string
	img     *canvas.Image
	mapping viewMapping
}

func newChartView(state *uiState, id string) *chartView {
	v := &chartView{state: state, id: id, img: canvas.NewImageFromImage(nil)}
	v.img.FillMode = canvas.ImageFillContain
	v.ExtendBaseWidget(v)
	v.reload()
	return v
}

func (v *chartView) CreateRenderer() fyne.WidgetRenderer {
	// background gives the full hit-area for hover events
	bg := canvas.NewRectangle(color.Transparent)
	return widget.NewSimpleRenderer(container.NewStack(bg, v.img))
}

// reload picks up the surface pixels again; resizing replaces the buffer.
func (v *chartView) reload() {
	c, ok := v.state.doc.Canvas(v.id)
	if !ok {
		return
	}
	w, h := c.Size()
	v.img.Image = c.Image()
	v.img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	v.img.Refresh()
}

func (v *chartView) dispatch(t chart.EventType, ev *desktop.MouseEvent) {
	c, ok := v.state.doc.Canvas(v.id)
	if !ok {
		return
	}
	var pe chart.PointerEvent
	if ev != nil {
		w, h := c.Size()
		v.mapping = newViewMapping(ev.Position, ev.AbsolutePosition, w, h, v.Size())
		c.SetOrigin(v.mapping.originX, v.mapping.originY)
		pe.ClientX, pe.ClientY = v.mapping.toClient(ev.Position)
	}
	v.state.doc.Dispatch(v.id, t, pe)
	v.state.tooltip.sync(v.state, v.id, v.mapping)
}

func (v *chartView) MouseIn(ev *desktop.MouseEvent)    { v.dispatch(chart.EventPointerMove, ev) }
func (v *chartView) MouseMoved(ev *desktop.MouseEvent) { v.dispatch(chart.EventPointerMove, ev) }
func (v *chartView) MouseOut()                         { v.dispatch(chart.EventPointerLeave, nil) }

// Tapped opens the response of the model the chart belongs to.
func (v *chartView) Tapped(*fyne.PointEvent) {
	if e, ok := catalog.Lookup(v.id); ok {
		v.state.openResponse(e)
	}
}

// Cursor mirrors the cursor the hover tracker set on the surface.
func (v *chartView) Cursor() desktop.Cursor {
	if c, ok := v.state.doc.Canvas(v.id); ok && c.Cursor() == chart.CursorPointer {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

var (
	_ desktop.Hoverable  = (*chartView)(nil)
	_ desktop.Cursorable = (*chartView)(nil)
	_ fyne.Tappable      = (*chartView)(nil)
)

// tooltipOverlay floats the active chart tooltip above the window content.
type tooltipOverlay struct {
	layer *fyne.Container
	bg    *canvas.Rectangle
	label *widget.RichText
}

func newTooltipOverlay() *tooltipOverlay {
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	bg := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	bg.CornerRadius = 4
	t := &tooltipOverlay{layer: container.NewWithoutLayout(bg, label), bg: bg, label: label}
	t.hide()
	return t
}

// sync copies the document's tooltip element for surface id onto the overlay.
func (t *tooltipOverlay) sync(s *uiState, id string, m viewMapping) {
	el, ok := s.doc.Element(chart.TooltipName(id))
	if !ok || !el.Visible() {
		t.hide()
		return
	}
	t.label.Segments = []widget.RichTextSegment{&widget.TextSegment{
		Text:  el.Text,
		Style: widget.RichTextStyle{Inline: true, ColorName: theme.ColorNameBackground, TextStyle: fyne.TextStyle{Bold: true}},
	}}
	t.label.Refresh()
	size := t.label.MinSize()
	pos := m.toWindow(el.Left, el.Top)
	t.label.Resize(size)
	t.label.Move(pos)
	t.bg.Resize(size)
	t.bg.Move(pos)
	t.layer.Refresh()
}

// hide moves the tooltip out of view.
func (t *tooltipOverlay) hide() {
	off := fyne.NewPos(-1000, -1000)
	t.label.Move(off)
	t.bg.Move(off)
	t.layer.Refresh()
}

// tappableImage runs onTap when the wrapped image is clicked.
type tappableImage struct {
	widget.BaseWidget
	img   *canvas.Image
	onTap func()
}

func newTappableImage(img *canvas.Image, onTap func()) *tappableImage {
	t := &tappableImage{img: img, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.img)
}

func (t *tappableImage) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *tappableImage) Cursor() desktop.Cursor { return desktop.PointerCursor }

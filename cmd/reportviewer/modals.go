package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// backdrop is a filled rectangle that reports taps. With a nil onTap it just swallows them.
type backdrop struct {
	widget.BaseWidget
	fill  color.Color
	onTap func()
}

func newBackdrop(fill color.Color, onTap func()) *backdrop {
	b := &backdrop{fill: fill, onTap: onTap}
	b.ExtendBaseWidget(b)
	return b
}

func (b *backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(b.fill))
}

func (b *backdrop) Tapped(*fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}

type modalOverlay struct {
	obj      fyne.CanvasObject
	backdrop *backdrop
	panel    *backdrop
}

// modalLayer shows page modals as window overlays over a dimmed backdrop. The page's
// Modals decide what is open; the layer only mirrors it.
type modalLayer struct {
	state *uiState
	open  map[string]*modalOverlay
}

func newModalLayer(s *uiState) *modalLayer {
	return &modalLayer{state: s, open: map[string]*modalOverlay{}}
}

// show opens modal id with the given content. Unknown ids show nothing.
func (l *modalLayer) show(id, title string, body fyne.CanvasObject) {
	s := l.state
	if !s.modals.Open(id) {
		return
	}
	if prev, ok := l.open[id]; ok {
		s.window.Canvas().Overlays().Remove(prev.obj)
	}
	m := &modalOverlay{
		backdrop: newBackdrop(color.NRGBA{A: 120}, func() {
			if s.modals.ClickBackdrop(id) {
				l.sync()
			}
		}),
		panel: newBackdrop(theme.Color(theme.ColorNameBackground), nil),
	}
	header := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	closeBtn := widget.NewButton("Close", l.closeAll)
	content := container.NewPadded(container.NewBorder(header, container.NewHBox(closeBtn), nil, nil, body))
	m.obj = container.NewStack(m.backdrop, container.NewCenter(container.NewStack(m.panel, content)))
	m.obj.Resize(s.window.Canvas().Size())
	l.open[id] = m
	s.window.Canvas().Overlays().Add(m.obj)
}

// closeAll backs the close buttons and the Escape key.
func (l *modalLayer) closeAll() {
	l.state.modals.CloseAll()
	l.sync()
}

// sync drops overlays whose modal is no longer open.
func (l *modalLayer) sync() {
	for id, m := range l.open {
		if e, ok := l.state.doc.Element(id); ok && e.Visible() {
			continue
		}
		l.state.window.Canvas().Overlays().Remove(m.obj)
		delete(l.open, id)
	}
}

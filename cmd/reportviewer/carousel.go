package main

import (
	"fyne.io/fyne/v2"

	"github.com/iafilius/EvalReportCharts/src/page"
)

// trackLayout lays carousel slides side by side, each CarouselStep percent of the track
// width, and shifts the row left by the carousel offset so the active slide starts at 0.
type trackLayout struct {
	carousel *page.Carousel
}

func (t *trackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	slideW := size.Width * page.CarouselStep / 100
	shift := size.Width * float32(t.carousel.Offset()) / 100
	for i, o := range objects {
		o.Resize(fyne.NewSize(slideW, size.Height))
		o.Move(fyne.NewPos(float32(i)*slideW-shift, 0))
	}
}

func (t *trackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range objects {
		m := o.MinSize()
		w = max(w, m.Width)
		h = max(h, m.Height)
	}
	return fyne.NewSize(w*100/page.CarouselStep, h)
}

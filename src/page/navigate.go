package page

import (
	"strings"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

// ScrollToAnchor scrolls so the element named by href ("#id") sits at the top of the
// viewport. Non-fragment links and missing targets are ignored.
func (d *Document) ScrollToAnchor(href string) bool {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return false
	}
	e, ok := d.Element(id)
	if !ok {
		logging.Debugf("page: anchor target %q missing", id)
		return false
	}
	d.ScrollTo(e.Rect.Y)
	return true
}

// ImageZoom shows .zoomable-image elements enlarged in the image modal.
type ImageZoom struct {
	doc    *Document
	modals *Modals
	zoomed *Element
}

func NewImageZoom(doc *Document, modals *Modals) *ImageZoom {
	return &ImageZoom{doc: doc, modals: modals, zoomed: doc.CreateElement("zoomedImage")}
}

// Click copies the clicked image's src (or its pending data-src) into the zoom modal and
// opens it.
func (z *ImageZoom) Click(imageID string) bool {
	img, ok := z.doc.Element(imageID)
	if !ok || !img.HasClass("zoomable-image") {
		return false
	}
	src, ok := img.Attr("src")
	if !ok || src == "" {
		src, _ = img.Attr("data-src")
	}
	z.zoomed.SetAttr("src", src)
	return z.modals.Open(ImageModalID)
}

// Zoomed returns the src currently shown in the zoom modal.
func (z *ImageZoom) Zoomed() string {
	src, _ := z.zoomed.Attr("src")
	return src
}

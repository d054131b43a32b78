package page

import (
	"strconv"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

// Well-known modal ids.
const (
	ContentModalID = "contentModal"
	ImageModalID   = "imageModal"

	modalClass = "modal"
)

// PromptModalID names the prompt modal of a finding: promptModal, promptModal2, ...
func PromptModalID(finding int) string { return suffixed("promptModal", finding) }

// ResponseModalID names a model's response modal for a finding: gpt5Modal, gpt5Modal2, ...
func ResponseModalID(model string, finding int) string { return suffixed(model+"Modal", finding) }

func suffixed(base string, finding int) string {
	if finding <= 1 {
		return base
	}
	return base + strconv.Itoa(finding)
}

// Modals opens and closes the page's modal dialogs. Any open modal locks body scrolling.
type Modals struct {
	doc *Document
}

// NewModals registers the given modal ids (plus the shared content and image modals) as
// hidden elements.
func NewModals(doc *Document, ids ...string) *Modals {
	m := &Modals{doc: doc}
	m.Register(ContentModalID, ImageModalID)
	m.Register(ids...)
	doc.CreateElement("modalTitle")
	doc.CreateElement("modalContent")
	return m
}

// Register adds more modal ids.
func (m *Modals) Register(ids ...string) {
	for _, id := range ids {
		m.doc.CreateElement(id, modalClass)
	}
}

// Open shows modal id. Unknown ids are logged and ignored.
func (m *Modals) Open(id string) bool {
	e, ok := m.doc.Element(id)
	if !ok || !e.HasClass(modalClass) {
		logging.Warnf("page: no modal %q", id)
		return false
	}
	e.SetVisible(true)
	m.doc.setBodyLocked(true)
	return true
}

// Close hides modal id and releases the body.
func (m *Modals) Close(id string) {
	if e, ok := m.doc.Element(id); ok {
		e.SetVisible(false)
	}
	m.doc.setBodyLocked(false)
}

// CloseAll hides every modal; bound to the close buttons.
func (m *Modals) CloseAll() {
	for _, e := range m.doc.ElementsByClass(modalClass) {
		e.SetVisible(false)
	}
	m.doc.setBodyLocked(false)
}

// ClickBackdrop handles a click whose target is targetID: clicking a modal's backdrop (the
// modal element itself, not its content) closes all modals.
func (m *Modals) ClickBackdrop(targetID string) bool {
	e, ok := m.doc.Element(targetID)
	if !ok || !e.HasClass(modalClass) {
		return false
	}
	m.CloseAll()
	return true
}

// ShowContent fills the shared content modal (the read-more popup) and opens it.
// Empty title or body leaves the modal closed.
func (m *Modals) ShowContent(title, body string) bool {
	if title == "" || body == "" {
		return false
	}
	t, _ := m.doc.Element("modalTitle")
	c, _ := m.doc.Element("modalContent")
	t.Text = title
	c.Text = body
	return m.Open(ContentModalID)
}

// OpenModals lists visible modal ids in creation order.
func (m *Modals) OpenModals() []string {
	var out []string
	for _, e := range m.doc.ElementsByClass(modalClass) {
		if e.Visible() {
			out = append(out, e.ID)
		}
	}
	return out
}

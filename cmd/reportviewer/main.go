package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/EvalReportCharts/cmd/reportviewer/uihelpers"
	"github.com/iafilius/EvalReportCharts/src/catalog"
	"github.com/iafilius/EvalReportCharts/src/chart"
	"github.com/iafilius/EvalReportCharts/src/config"
	"github.com/iafilius/EvalReportCharts/src/export"
	"github.com/iafilius/EvalReportCharts/src/logging"
	"github.com/iafilius/EvalReportCharts/src/page"
)

const (
	findingsAnchor = "findings"
	globalAnchor   = "global-chart"
	globalImageID  = "global-chart-img"
	loadingID      = "chart-loading"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    config.Config

	doc         *page.Document
	renderer    *chart.Renderer
	modals      *page.Modals
	carousel    *page.Carousel
	zoom        *page.ImageZoom
	reveal      *page.Observer
	images      *page.Observer
	leaderboard *page.LazyMount

	views      map[string]*chartView
	tooltip    *tooltipOverlay
	layer      *modalLayer
	content    fyne.CanvasObject
	scroll     *container.Scroll
	track      *fyne.Container
	panels     []*fyne.Container
	dots       []*widget.Button
	findingHdr *widget.Label
	globalImg  *canvas.Image
	loading    *widget.Label

	// page element id -> object whose layout box it mirrors
	tracked  map[string]fyne.CanvasObject
	headings map[string]*canvas.Text
	revealed map[string]bool

	surfaceW, surfaceH int
	perRow             int
}

// lightTheme pins the light variant; chart labels are dark text on a transparent surface.
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.SetLevel(cfg.LogLevel)

	if cfg.ScreenshotsDir != "" || cfg.HTMLOut != "" {
		if err := RunHeadless(cfg); err != nil {
			logging.Errorf("headless export failed: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.evalreport.viewer")
	a.Settings().SetTheme(&lightTheme{})
	w := a.NewWindow("Evaluation Report")
	w.Resize(fyne.NewSize(1100, 800))

	state := newUIState(a, w, cfg)
	w.SetContent(state.build())

	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		prevW := -1
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { redrawCharts(state) })
				}
			}
		}
	}()

	w.ShowAndRun()
}

// newUIState builds the document model: one surface per catalog entry, the modals for
// every prompt and response, and the observed page sections.
func newUIState(a fyne.App, w fyne.Window, cfg config.Config) *uiState {
	s := &uiState{
		app:      a,
		window:   w,
		cfg:      cfg,
		doc:      page.NewDocument(),
		views:    map[string]*chartView{},
		tracked:  map[string]fyne.CanvasObject{},
		headings: map[string]*canvas.Text{},
		revealed: map[string]bool{},
		surfaceW: cfg.Surface.Width,
		surfaceH: cfg.Surface.Height,
		perRow:   3,
	}
	for _, e := range catalog.Entries {
		s.doc.AddSurface(e.SurfaceID, s.surfaceW, s.surfaceH, 0, 0)
	}
	s.renderer = chart.NewRenderer(s.doc)
	catalog.Init(s.doc, s.renderer)

	var ids []string
	for _, n := range catalog.Findings() {
		ids = append(ids, page.PromptModalID(n))
	}
	for _, e := range catalog.Entries {
		ids = append(ids, page.ResponseModalID(e.ModelKey(), e.Finding))
	}
	s.modals = page.NewModals(s.doc, ids...)
	s.zoom = page.NewImageZoom(s.doc, s.modals)

	s.doc.CreateElement(findingsAnchor, "section")
	s.doc.CreateElement(globalAnchor, "section")
	s.doc.CreateElement(loadingID).SetVisible(true)
	img := s.doc.CreateElement(globalImageID, "zoomable-image", "lazy-image")
	img.SetAttr("data-src", export.ComparisonFile)
	s.reveal = page.NewScrollReveal(s.doc)
	s.images = page.NewLazyImages(s.doc, s.loadImage)

	s.carousel = page.NewCarousel(len(catalog.Findings()))
	s.carousel.OnChange = func(int) { s.showFinding() }
	return s
}

func (s *uiState) build() fyne.CanvasObject {
	for _, e := range catalog.Entries {
		s.views[e.SurfaceID] = newChartView(s, e.SurfaceID)
	}
	s.tooltip = newTooltipOverlay()
	s.layer = newModalLayer(s)

	nav := container.NewHBox(
		widget.NewButton("Findings", func() { s.scrollToAnchor("#" + findingsAnchor) }),
		widget.NewButton("Leaderboard", func() { s.scrollToAnchor("#" + globalAnchor) }),
	)

	s.findingHdr = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	var slides []fyne.CanvasObject
	for i, n := range catalog.Findings() {
		grid := container.NewGridWithColumns(s.perRow)
		for _, e := range catalog.ForFinding(n) {
			grid.Add(s.card(e))
		}
		s.panels = append(s.panels, grid)
		slides = append(slides, grid)
		dot := widget.NewButton(strconv.Itoa(n), func() { s.carousel.GoTo(i) })
		s.dots = append(s.dots, dot)
	}
	s.track = container.New(&trackLayout{carousel: s.carousel}, slides...)
	controls := container.NewHBox(widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { s.carousel.Prev() }))
	for _, d := range s.dots {
		controls.Add(d)
	}
	controls.Add(widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { s.carousel.Next() }))
	controls.Add(widget.NewButton("Prompt", func() { s.openPrompt() }))
	findings := container.NewVBox(s.heading(findingsAnchor, "Findings"), s.findingHdr, controls, s.track)
	s.tracked[findingsAnchor] = findings

	s.loading = widget.NewLabel("Loading chart…")
	s.globalImg = canvas.NewImageFromImage(nil)
	s.globalImg.FillMode = canvas.ImageFillContain
	s.globalImg.SetMinSize(fyne.NewSize(640, 250))
	zoomable := newTappableImage(s.globalImg, func() { s.openZoom() })
	global := container.NewVBox(s.heading(globalAnchor, "Leaderboard"), s.loading, zoomable)
	s.tracked[globalAnchor] = global
	s.tracked[globalImageID] = zoomable

	s.leaderboard = page.NewLazyMount(s.doc, s.mustElement(globalAnchor), loadingID, s.mountLeaderboard)

	s.content = container.NewVBox(findings, widget.NewSeparator(), global)
	s.scroll = container.NewVScroll(s.content)
	s.scroll.OnScrolled = func(fyne.Position) { s.checkVisibility() }

	s.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			s.layer.closeAll()
		}
	})

	s.showFinding()
	body := container.NewBorder(nav, nil, nil, nil, s.scroll)
	return container.NewStack(body, s.tooltip.layer)
}

// card is one chart with its model name and modal buttons.
func (s *uiState) card(e catalog.Entry) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(e.Model, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	resp := widget.NewButton("Response", func() { s.openResponse(e) })
	more := widget.NewButton("Read more", func() { s.readMore(e) })
	return container.NewVBox(title, s.views[e.SurfaceID], container.NewHBox(resp, more))
}

func (s *uiState) mustElement(id string) *page.Element {
	e, _ := s.doc.Element(id)
	return e
}

// heading creates a section title that starts transparent and fades in when revealed.
func (s *uiState) heading(id, title string) *canvas.Text {
	t := canvas.NewText(title, color.Transparent)
	t.TextSize = theme.TextHeadingSize()
	t.TextStyle = fyne.TextStyle{Bold: true}
	s.headings[id] = t
	return t
}

// showFinding slides the track to the carousel's current finding and highlights its dot.
func (s *uiState) showFinding() {
	findings := catalog.Findings()
	if len(findings) == 0 {
		return
	}
	s.findingHdr.SetText(fmt.Sprintf("Finding %d", findings[s.carousel.Index()]))
	for i, d := range s.dots {
		if s.carousel.IndicatorActive(i) {
			d.Importance = widget.HighImportance
		} else {
			d.Importance = widget.MediumImportance
		}
		d.Refresh()
	}
	s.track.Refresh()
	s.tooltip.hide()
}

// redrawCharts resizes every surface to the window, repaints the catalog and reloads the views.
func redrawCharts(s *uiState) {
	winW := s.window.Canvas().Size().Width
	perRow := uihelpers.ComputeChartsPerRow(winW)
	w, h := uihelpers.ComputeSurfaceSize(winW, perRow)
	if w != s.surfaceW || h != s.surfaceH {
		for _, id := range s.doc.SurfaceIDs() {
			s.doc.ResizeSurface(id, w, h)
		}
		s.surfaceW, s.surfaceH = w, h
	}
	catalog.Init(s.doc, s.renderer)
	for _, v := range s.views {
		v.reload()
	}
	if perRow != s.perRow {
		s.perRow = perRow
		for _, p := range s.panels {
			p.Layout = container.NewGridWithColumns(perRow).Layout
			p.Refresh()
		}
		s.track.Refresh()
	}
	s.checkVisibility()
}

// checkVisibility syncs element boxes (in scroll content coordinates) and the scroll position
// into the document, then runs the reveal, lazy image and lazy mount observers.
func (s *uiState) checkVisibility() {
	if s.scroll == nil {
		return
	}
	drv := s.app.Driver()
	base := drv.AbsolutePositionForObject(s.content)
	for id, obj := range s.tracked {
		if e, ok := s.doc.Element(id); ok {
			p, sz := drv.AbsolutePositionForObject(obj).Subtract(base), obj.Size()
			e.Rect = page.Rect{X: float64(p.X), Y: float64(p.Y), W: float64(sz.Width), H: float64(sz.Height)}
		}
	}
	vp := s.scroll.Size()
	s.doc.ScrollTo(float64(s.scroll.Offset.Y))
	viewport := page.Rect{Y: s.doc.ScrollY(), W: float64(vp.Width), H: float64(vp.Height)}
	s.reveal.Check(viewport)
	s.images.Check(viewport)
	s.leaderboard.Check(viewport)

	for id, t := range s.headings {
		e, ok := s.doc.Element(id)
		if !ok || !e.HasClass("fade-in-up") || s.revealed[id] {
			continue
		}
		s.revealed[id] = true
		fade := canvas.NewColorRGBAAnimation(color.Transparent, theme.Color(theme.ColorNameForeground), 600*time.Millisecond, func(c color.Color) {
			t.Color = c
			t.Refresh()
		})
		fade.Start()
	}
	if e, ok := s.doc.Element(loadingID); ok && !e.Visible() {
		s.loading.Hide()
	}
}

func (s *uiState) scrollToAnchor(href string) {
	s.checkVisibility()
	if !s.doc.ScrollToAnchor(href) {
		return
	}
	s.scroll.Offset = fyne.NewPos(0, float32(s.doc.ScrollY()))
	s.scroll.Refresh()
	s.checkVisibility()
}

// loadImage resolves a lazy image source. The leaderboard comparison is the only image and
// is rendered on demand.
func (s *uiState) loadImage(src string) error {
	if src != export.ComparisonFile {
		return fmt.Errorf("unknown image %q", src)
	}
	defer logging.Track("leaderboard render")()
	var buf bytes.Buffer
	if err := export.RenderComparison(&buf); err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode comparison: %w", err)
	}
	s.globalImg.Image = img
	s.globalImg.Refresh()
	return nil
}

// mountLeaderboard runs when the leaderboard section first comes into view. The image is
// usually loaded on approach already; otherwise it is loaded now.
func (s *uiState) mountLeaderboard() error {
	page.LoadAllImages(s.doc, s.loadImage)
	if s.globalImg.Image == nil {
		return errors.New("leaderboard image not loaded")
	}
	return nil
}

func (s *uiState) currentFinding() int {
	return catalog.Findings()[s.carousel.Index()]
}

func (s *uiState) openPrompt() {
	n := s.currentFinding()
	var models []string
	for _, e := range catalog.ForFinding(n) {
		models = append(models, e.Model)
	}
	body := widget.NewLabel(fmt.Sprintf("Prompt evaluated for finding %d.\nModels: %s", n, strings.Join(models, ", ")))
	s.layer.show(page.PromptModalID(n), fmt.Sprintf("Prompt, finding %d", n), body)
}

func (s *uiState) openResponse(e catalog.Entry) {
	s.layer.show(page.ResponseModalID(e.ModelKey(), e.Finding), fmt.Sprintf("%s, finding %d", e.Model, e.Finding), widget.NewLabel(describeEntry(e)))
}

// readMore fills the shared content modal; ShowContent already opened it.
func (s *uiState) readMore(e catalog.Entry) {
	if !s.modals.ShowContent(e.Model, describeEntry(e)) {
		return
	}
	title, _ := s.doc.Element("modalTitle")
	body, _ := s.doc.Element("modalContent")
	s.layer.show(page.ContentModalID, title.Text, widget.NewLabel(body.Text))
}

func (s *uiState) openZoom() {
	if s.globalImg.Image == nil || !s.zoom.Click(globalImageID) {
		return
	}
	big := canvas.NewImageFromImage(s.globalImg.Image)
	big.FillMode = canvas.ImageFillContain
	big.SetMinSize(fyne.NewSize(1000, 400))
	s.layer.show(page.ImageModalID, s.zoom.Zoomed(), big)
}

// describeEntry lists an entry's metric values, one per line.
func describeEntry(e catalog.Entry) string {
	var b strings.Builder
	vals := e.Data.Values()
	for i, l := range chart.Labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", l, chart.FormatValue(vals[i]))
	}
	return b.String()
}

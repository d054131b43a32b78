package page

// CarouselStep is the translate step per item, in percent of the track width. Slides are
// this wide so the next one peeks in.
const CarouselStep = 90

// Carousel tracks the active item of the findings carousel. Navigation wraps around.
type Carousel struct {
	index int
	total int

	// OnChange runs after every navigation with the new index.
	OnChange func(index int)
}

func NewCarousel(total int) *Carousel {
	if total < 0 {
		total = 0
	}
	return &Carousel{total: total}
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Len() int { return c.total }

func (c *Carousel) Next() {
	if c.total == 0 {
		return
	}
	c.set((c.index + 1) % c.total)
}

func (c *Carousel) Prev() {
	if c.total == 0 {
		return
	}
	c.set((c.index - 1 + c.total) % c.total)
}

// GoTo jumps to item i, as clicking indicator i does. Out-of-range indices are ignored.
func (c *Carousel) GoTo(i int) {
	if i < 0 || i >= c.total {
		return
	}
	c.set(i)
}

// Offset is the track's leftward translation in percent.
func (c *Carousel) Offset() float64 { return float64(c.index * CarouselStep) }

// IndicatorActive reports whether indicator i is highlighted.
func (c *Carousel) IndicatorActive(i int) bool { return c.total > 0 && i == c.index }

func (c *Carousel) set(i int) {
	c.index = i
	if c.OnChange != nil {
		c.OnChange(i)
	}
}

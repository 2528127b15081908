package content

// Carousel is the rotation state of a slide deck. Index is always in
// [0, Len) unless Len is zero, in which case it is zero.
type Carousel struct {
	Index int `json:"index"`
	Len   int `json:"len"`
}

// NewCarousel starts a deck of n slides at the first slide.
func NewCarousel(n int) Carousel {
	if n < 0 {
		n = 0
	}
	return Carousel{Len: n}
}

// Goto moves to i, wrapping in both directions.
func (c Carousel) Goto(i int) Carousel {
	if c.Len == 0 {
		c.Index = 0
		return c
	}
	c.Index = ((i % c.Len) + c.Len) % c.Len
	return c
}

func (c Carousel) Next() Carousel { return c.Goto(c.Index + 1) }

func (c Carousel) Prev() Carousel { return c.Goto(c.Index - 1) }

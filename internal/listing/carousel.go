package listing

// Carousel tracks which image of a place is on screen.
type Carousel struct {
	index  int
	length int
}

func NewCarousel(length int) *Carousel {
	if length < 0 {
		length = 0
	}
	return &Carousel{length: length}
}

func (c *Carousel) Index() int {
	return c.index
}

func (c *Carousel) Len() int {
	return c.length
}

func (c *Carousel) Next() int {
	if c.length > 0 {
		c.index = (c.index + 1) % c.length
	}
	return c.index
}

func (c *Carousel) Prev() int {
	if c.length > 0 {
		c.index = (c.index - 1 + c.length) % c.length
	}
	return c.index
}

package ui

import (
	"fmt"
	"strings"

	"github.com/milk9111/journey/checkpoint"
)

// Carousel steps through the photos of one checkpoint. Stepping wraps in
// both directions.
type Carousel struct {
	payload checkpoint.Payload
	index   int
}

func NewCarousel(p checkpoint.Payload) *Carousel {
	return &Carousel{payload: p}
}

func (c *Carousel) Len() int   { return len(c.payload.Images) }
func (c *Carousel) Index() int { return c.index }

// Set jumps to photo i, wrapping out-of-range values.
func (c *Carousel) Set(i int) {
	n := c.Len()
	if n == 0 {
		c.index = 0
		return
	}
	c.index = ((i % n) + n) % n
}

func (c *Carousel) Next() { c.Set(c.index + 1) }
func (c *Carousel) Prev() { c.Set(c.index - 1) }

// Current is the photo on display.
func (c *Carousel) Current() (checkpoint.Image, bool) {
	if c.Len() == 0 {
		return checkpoint.Image{}, false
	}
	return c.payload.Images[c.index], true
}

// Tag is the label shown with the current photo.
func (c *Carousel) Tag() string {
	return c.payload.TagFor(c.index)
}

// Dots marks the current photo. Galleries only; a single photo has none.
func (c *Carousel) Dots() []bool {
	if c.payload.Kind() != checkpoint.PayloadGallery {
		return nil
	}
	dots := make([]bool, c.Len())
	dots[c.index] = true
	return dots
}

// Caption reads like "2 / 5" for galleries.
func (c *Carousel) Caption() string {
	if c.payload.Kind() != checkpoint.PayloadGallery {
		return ""
	}
	return fmt.Sprintf("%d / %d", c.index+1, c.Len())
}

// DotsLabel draws Dots as text, for example "o * o".
func (c *Carousel) DotsLabel() string {
	dots := c.Dots()
	marks := make([]string, len(dots))
	for i, on := range dots {
		marks[i] = "o"
		if on {
			marks[i] = "*"
		}
	}
	return strings.Join(marks, " ")
}

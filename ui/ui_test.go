package ui

import (
	"image"
	"math/rand"
	"testing"

	"github.com/milk9111/journey/checkpoint"
	"github.com/stretchr/testify/assert"
)

func gallery() checkpoint.Payload {
	return checkpoint.Payload{
		Title: "Adventures",
		Tag:   "Outdoors",
		Images: []checkpoint.Image{
			{Src: "a.jpg", Tag: "Whistler"},
			{Src: "b.jpg"},
			{Src: "c.jpg", Tag: "Robson"},
		},
	}
}

func TestCarouselWraps(t *testing.T) {
	c := NewCarousel(gallery())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "Whistler", c.Tag())

	c.Prev()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "Robson", c.Tag())

	c.Next()
	c.Next()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "Outdoors", c.Tag())

	c.Set(-4)
	assert.Equal(t, 2, c.Index())
	img, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "c.jpg", img.Src)
}

func TestCarouselDots(t *testing.T) {
	c := NewCarousel(gallery())
	c.Next()
	assert.Equal(t, []bool{false, true, false}, c.Dots())
	assert.Equal(t, "o * o", c.DotsLabel())
	assert.Equal(t, "2 / 3", c.Caption())
}

func TestCarouselSingleAndEmpty(t *testing.T) {
	single := NewCarousel(checkpoint.Payload{Images: []checkpoint.Image{{Src: "x.jpg"}}})
	single.Next()
	assert.Equal(t, 0, single.Index())
	assert.Nil(t, single.Dots())
	assert.Empty(t, single.Caption())

	empty := NewCarousel(checkpoint.Payload{})
	empty.Next()
	_, ok := empty.Current()
	assert.False(t, ok)
	assert.Equal(t, "Memory", empty.Tag())
	assert.Empty(t, empty.DotsLabel())
}

func TestDodgeAvoidsYes(t *testing.T) {
	area := image.Rect(100, 50, 340, 130)
	yes := image.Rect(150, 90, 210, 110)
	size := image.Pt(60, 20)
	rng := rand.New(rand.NewSource(3))

	keepOut := yes.Sub(area.Min).Inset(-dodgePad)
	for i := 0; i < 200; i++ {
		p := Dodge(area, yes, size, rng)
		r := image.Rectangle{Min: p, Max: p.Add(size)}
		assert.True(t, r.In(image.Rect(0, 0, area.Dx(), area.Dy())), "%v outside area", r)
		assert.False(t, r.Overlaps(keepOut), "%v overlaps yes", r)
	}
}

func TestDodgeTinyArea(t *testing.T) {
	area := image.Rect(0, 0, 40, 10)
	p := Dodge(area, image.Rect(0, 0, 40, 10), image.Pt(60, 20), rand.New(rand.NewSource(1)))
	assert.Equal(t, image.Point{}, p)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("We walked until the streetlights came on and kept going.", 20)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20)
	}
	assert.Greater(t, len(lines), 1)
	assert.Nil(t, wrapText("", 20))
}

func TestBackdropClickOutsidePanels(t *testing.T) {
	card := image.Rect(90, 35, 390, 235)
	gate := image.Rect(110, 80, 370, 190)

	cases := []struct {
		name  string
		at    image.Point
		rects []image.Rectangle
		want  bool
	}{
		{"corner", image.Pt(5, 5), []image.Rectangle{card}, true},
		{"on_card", image.Pt(200, 100), []image.Rectangle{card}, false},
		{"card_edge", image.Pt(90, 35), []image.Rectangle{card}, false},
		{"past_card_edge", image.Pt(390, 235), []image.Rectangle{card}, true},
		{"on_second_panel", image.Pt(120, 85), []image.Rectangle{image.Rect(0, 0, 10, 10), gate}, false},
		{"no_panels", image.Pt(200, 100), nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, outside(c.at, c.rects))
		})
	}
}

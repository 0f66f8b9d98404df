package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/journey/checkpoint"
)

const (
	photoWidth    = 160
	photoHeight   = 84
	textColumns   = 40
	wideColumns   = 56
	cardTextLines = 4
	cardMinWidth  = 300
	cardMinHeight = 200
)

// Photos resolves checkpoint image names.
type Photos interface {
	ImageOrPlaceholder(name string) *ebiten.Image
}

// checkpointCard shows the payload of one checkpoint: title, date, tag,
// the photo carousel and the text.
type checkpointCard struct {
	panel *widget.Container

	title   *widget.Text
	date    *widget.Text
	tag     *widget.Text
	photo   *widget.Graphic
	nav     *widget.Container
	caption *widget.Text
	dots    *widget.Text
	lines   []*widget.Text

	photos   Photos
	scaled   map[string]*ebiten.Image
	carousel *Carousel
	shown    *checkpoint.Checkpoint
}

func newCheckpointCard(t *Theme, photos Photos, onClose func()) *checkpointCard {
	c := &checkpointCard{photos: photos, scaled: make(map[string]*ebiten.Image)}

	c.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(3),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cardMinWidth, cardMinHeight),
			centered(),
		),
	)

	c.title = t.text("", t.Ink, rowCenter())
	c.date = t.text("", t.Muted)
	c.tag = t.text("", t.Accent)
	meta := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(rowCenter()),
	)
	meta.AddChild(c.date)
	meta.AddChild(c.tag)
	c.photo = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(rowCenter(), widget.WidgetOpts.MinSize(photoWidth, photoHeight)),
	)

	c.caption = t.text("", t.Muted)
	c.dots = t.text("", t.Ink)
	c.nav = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(rowCenter()),
	)
	c.nav.AddChild(t.button("<", t.Button, func() { c.step(-1) }))
	c.nav.AddChild(c.dots)
	c.nav.AddChild(c.caption)
	c.nav.AddChild(t.button(">", t.Button, func() { c.step(1) }))

	c.panel.AddChild(c.title)
	c.panel.AddChild(meta)
	c.panel.AddChild(c.photo)
	c.panel.AddChild(c.nav)
	for i := 0; i < cardTextLines; i++ {
		line := t.text("", t.Ink)
		c.lines = append(c.lines, line)
		c.panel.AddChild(line)
	}
	c.panel.AddChild(t.button("Close", t.Primary, onClose, rowCenter()))
	c.panel.GetWidget().Visibility = widget.Visibility_Hide
	return c
}

func (c *checkpointCard) show(cpt *checkpoint.Checkpoint) {
	c.shown = cpt
	p := cpt.Payload
	c.carousel = NewCarousel(p)
	c.title.Label = p.DisplayTitle()
	c.date.Label = p.Date

	cols := textColumns
	if p.WideText {
		cols = wideColumns
	}
	body := wrapText(p.Text, cols)
	for i, line := range c.lines {
		line.Label = ""
		if i < len(body) {
			line.Label = body[i]
		}
	}
	if len(body) > len(c.lines) {
		c.lines[len(c.lines)-1].Label += "..."
	}

	c.refresh()
	c.panel.GetWidget().Visibility = widget.Visibility_Show
}

func (c *checkpointCard) hide() {
	c.shown = nil
	c.panel.GetWidget().Visibility = widget.Visibility_Hide
}

func (c *checkpointCard) visible() bool { return c.shown != nil }

func (c *checkpointCard) step(delta int) {
	if c.carousel == nil {
		return
	}
	c.carousel.Set(c.carousel.Index() + delta)
	c.refresh()
}

func (c *checkpointCard) refresh() {
	c.tag.Label = c.carousel.Tag()
	c.caption.Label = c.carousel.Caption()
	c.dots.Label = c.carousel.DotsLabel()
	if c.carousel.Dots() == nil {
		c.nav.GetWidget().Visibility = widget.Visibility_Hide
	} else {
		c.nav.GetWidget().Visibility = widget.Visibility_Show
	}

	name := ""
	if img, ok := c.carousel.Current(); ok {
		name = img.Src
	}
	c.photo.Image = c.fitted(name)
}

// fitted scales a photo into the photo box once and caches the result.
func (c *checkpointCard) fitted(name string) *ebiten.Image {
	if img, ok := c.scaled[name]; ok {
		return img
	}
	if c.photos == nil {
		return nil
	}
	src := c.photos.ImageOrPlaceholder(name)
	if src == nil {
		return nil
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	scale := min(float64(photoWidth)/float64(w), float64(photoHeight)/float64(h))
	dst := ebiten.NewImage(max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	c.scaled[name] = dst
	return dst
}

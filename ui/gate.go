package ui

import (
	"image"
	"math/rand"

	"github.com/ebitenui/ebitenui/widget"
)

const (
	playAreaWidth  = 260
	playAreaHeight = 70
	gateButtonW    = 70
	gateButtonH    = 20
)

// mainGate asks whether to unlock the island. Its "Not yet" button jumps
// away whenever the pointer reaches it.
type mainGate struct {
	panel    *widget.Container
	playArea *widget.Container
	yes      *widget.Button
	notYet   *widget.Button

	rng      *rand.Rand
	lastArea image.Rectangle
	notYetAt image.Point
	open     bool
}

func newMainGate(t *Theme, rng *rand.Rand, onYes func()) *mainGate {
	g := &mainGate{rng: rng}

	g.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)
	g.panel.AddChild(t.text("You made it to the end of the path.", t.Ink, rowCenter()))
	g.panel.AddChild(t.text("Will you keep walking with me?", t.Accent, rowCenter()))

	// children of the play area are placed by hand
	g.playArea = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(playAreaWidth, playAreaHeight),
			rowCenter(),
		),
	)
	g.yes = t.button("Yes", t.Primary, onYes, widget.WidgetOpts.MinSize(gateButtonW, gateButtonH))
	g.notYet = t.button("Not yet", t.Button, g.dodge,
		widget.WidgetOpts.MinSize(gateButtonW, gateButtonH),
		widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
			g.dodge()
		}),
	)
	g.playArea.AddChild(g.yes)
	g.playArea.AddChild(g.notYet)
	g.panel.AddChild(g.playArea)

	g.panel.GetWidget().Visibility = widget.Visibility_Hide
	return g
}

func (g *mainGate) show() {
	g.open = true
	g.lastArea = image.Rectangle{}
	g.panel.GetWidget().Visibility = widget.Visibility_Show
}

func (g *mainGate) hide() {
	g.open = false
	g.panel.GetWidget().Visibility = widget.Visibility_Hide
}

func (g *mainGate) yesRect(area image.Rectangle) image.Rectangle {
	y := area.Min.Y + (area.Dy()-gateButtonH)/2
	x := area.Min.X + area.Dx()/4 - gateButtonW/2
	return image.Rect(x, y, x+gateButtonW, y+gateButtonH)
}

// layout places both buttons once the play area has a position, and again
// whenever it moves.
func (g *mainGate) layout() {
	area := g.playArea.GetWidget().Rect
	if !g.open || area.Empty() || area == g.lastArea {
		return
	}
	g.lastArea = area
	g.yes.SetLocation(g.yesRect(area))
	g.notYetAt = image.Point{
		X: area.Dx()*3/4 - gateButtonW/2,
		Y: (area.Dy() - gateButtonH) / 2,
	}
	g.placeNotYet(area)
}

func (g *mainGate) dodge() {
	area := g.playArea.GetWidget().Rect
	if area.Empty() {
		return
	}
	g.notYetAt = Dodge(area, g.yesRect(area), image.Pt(gateButtonW, gateButtonH), g.rng)
	g.placeNotYet(area)
}

func (g *mainGate) placeNotYet(area image.Rectangle) {
	at := area.Min.Add(g.notYetAt)
	g.notYet.SetLocation(image.Rectangle{Min: at, Max: at.Add(image.Pt(gateButtonW, gateButtonH))})
}

// islandNotice is the informational popup at the end of the island.
type islandNotice struct {
	panel *widget.Container
	open  bool
}

func newIslandNotice(t *Theme, onOK func()) *islandNotice {
	n := &islandNotice{}
	n.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)
	n.panel.AddChild(t.text("This is as far as the island goes.", t.Ink, rowCenter()))
	n.panel.AddChild(t.text("The rest is still being written.", t.Muted, rowCenter()))
	n.panel.AddChild(t.button("OK", t.Primary, onOK, rowCenter(), widget.WidgetOpts.MinSize(gateButtonW, gateButtonH)))
	n.panel.GetWidget().Visibility = widget.Visibility_Hide
	return n
}

func (n *islandNotice) show() {
	n.open = true
	n.panel.GetWidget().Visibility = widget.Visibility_Show
}

func (n *islandNotice) hide() {
	n.open = false
	n.panel.GetWidget().Visibility = widget.Visibility_Hide
}

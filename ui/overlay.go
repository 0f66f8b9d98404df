package ui

import (
	"image"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/journey/scene"
)

// Target receives the outcome of a popup.
type Target interface {
	CloseCheckpoint()
	ResolveGate(r scene.Resolution)
}

// Overlay owns every popup and the pause menu. At most one popup is open;
// the pause menu can sit on top of it.
type Overlay struct {
	// OnResume, OnToggleMusic and OnQuit are wired to the pause menu.
	OnResume      func()
	OnToggleMusic func() bool
	OnQuit        func()

	ui       *ebitenui.UI
	backdrop *widget.Container
	target   Target

	card   *checkpointCard
	gate   *mainGate
	notice *islandNotice
	pause  *pauseMenu
}

func NewOverlay(photos Photos, rng *rand.Rand) *Overlay {
	t := NewTheme()
	o := &Overlay{}

	o.card = newCheckpointCard(t, photos, o.closeCheckpoint)
	o.gate = newMainGate(t, rng, func() { o.resolveGate(scene.Unlocked) })
	o.notice = newIslandNotice(t, func() { o.resolveGate(scene.Dismissed) })
	o.pause = newPauseMenu(t,
		func() {
			if o.OnResume != nil {
				o.OnResume()
			}
		},
		func() {
			if o.OnToggleMusic != nil {
				o.pause.setMusic(o.OnToggleMusic())
			}
		},
		func() {
			if o.OnQuit != nil {
				o.OnQuit()
			}
		},
	)

	o.backdrop = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Backdrop),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
			widget.WidgetOpts.MouseButtonReleasedHandler(func(args *widget.WidgetMouseButtonReleasedEventArgs) {
				if args.Button == ebiten.MouseButtonLeft && args.Inside {
					o.backdropClicked(image.Pt(ebiten.CursorPosition()))
				}
			}),
		),
	)
	o.backdrop.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(o.backdrop)
	root.AddChild(o.card.panel)
	root.AddChild(o.gate.panel)
	root.AddChild(o.notice.panel)
	root.AddChild(o.pause.panel)
	o.ui = &ebitenui.UI{Container: root}
	return o
}

// SetTarget points popup results at a session.
func (o *Overlay) SetTarget(t Target) {
	o.target = t
}

// Handle opens the popup an event asks for. Other events are ignored.
func (o *Overlay) Handle(evt scene.Event) {
	switch data := evt.Data.(type) {
	case scene.OpenCheckpoint:
		if data.Checkpoint == nil {
			return
		}
		o.card.show(data.Checkpoint)
	case scene.OpenGate:
		switch data.Gate {
		case scene.GateMainEnd:
			o.gate.show()
		case scene.GateIslandEnd:
			o.notice.show()
		default:
			log.Printf("ui: unknown gate %q", data.Gate)
			return
		}
	default:
		return
	}
	o.syncBackdrop()
}

// Escape closes the topmost open layer and reports whether there was one.
// Closing a gate this way dismisses it.
func (o *Overlay) Escape() bool {
	switch {
	case o.pause.open:
		if o.OnResume != nil {
			o.OnResume()
		} else {
			o.HidePause()
		}
	case o.card.visible():
		o.closeCheckpoint()
	case o.gate.open, o.notice.open:
		o.resolveGate(scene.Dismissed)
	default:
		return false
	}
	return true
}

// backdropClicked closes the open popup when the click landed outside it.
// The pause menu is only closed through its own buttons.
func (o *Overlay) backdropClicked(at image.Point) {
	if o.pause.open || !o.PopupOpen() {
		return
	}
	panels := []*widget.Container{o.card.panel, o.gate.panel, o.notice.panel}
	rects := make([]image.Rectangle, 0, len(panels))
	for _, p := range panels {
		if w := p.GetWidget(); w.Visibility == widget.Visibility_Show {
			rects = append(rects, w.Rect)
		}
	}
	if outside(at, rects) {
		o.Escape()
	}
}

// outside reports whether at lies in none of rects.
func outside(at image.Point, rects []image.Rectangle) bool {
	for _, r := range rects {
		if at.In(r) {
			return false
		}
	}
	return true
}

// PopupOpen reports whether a checkpoint card or gate is showing.
func (o *Overlay) PopupOpen() bool {
	return o.card.visible() || o.gate.open || o.notice.open
}

// Reset hides every popup without reporting to the target, for when the
// target itself was replaced.
func (o *Overlay) Reset() {
	o.card.hide()
	o.gate.hide()
	o.notice.hide()
	o.syncBackdrop()
}

func (o *Overlay) ShowPause(musicOn bool) {
	o.pause.show(musicOn)
	o.syncBackdrop()
}

func (o *Overlay) HidePause() {
	o.pause.hide()
	o.syncBackdrop()
}

// SetMusic updates the pause menu label after music was toggled elsewhere.
func (o *Overlay) SetMusic(on bool) {
	o.pause.setMusic(on)
}

// StepPhoto moves the open checkpoint's carousel.
func (o *Overlay) StepPhoto(delta int) {
	if o.card.visible() {
		o.card.step(delta)
	}
}

func (o *Overlay) Update() {
	o.ui.Update()
	o.gate.layout()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}

func (o *Overlay) closeCheckpoint() {
	o.card.hide()
	o.syncBackdrop()
	if o.target != nil {
		o.target.CloseCheckpoint()
	}
}

func (o *Overlay) resolveGate(r scene.Resolution) {
	o.gate.hide()
	o.notice.hide()
	o.syncBackdrop()
	if o.target != nil {
		o.target.ResolveGate(r)
	}
}

func (o *Overlay) syncBackdrop() {
	if o.PopupOpen() || o.pause.open {
		o.backdrop.GetWidget().Visibility = widget.Visibility_Show
	} else {
		o.backdrop.GetWidget().Visibility = widget.Visibility_Hide
	}
}

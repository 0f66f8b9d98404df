package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/journey/common"
)

// pauseMenu is a centred panel with Resume, a music toggle and Quit.
type pauseMenu struct {
	panel *widget.Container
	music *widget.Button
	open  bool
}

func newPauseMenu(t *Theme, onResume, onMusic, onQuit func()) *pauseMenu {
	p := &pauseMenu{}

	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			centered(),
		),
	)
	p.music = t.button(musicLabel(true), t.Button, onMusic, rowCenter())
	p.panel.AddChild(t.text("Paused", t.Ink, rowCenter()))
	p.panel.AddChild(t.button("Resume", t.Primary, onResume, rowCenter()))
	p.panel.AddChild(p.music)
	p.panel.AddChild(t.button("Quit", t.Button, onQuit, rowCenter()))
	p.panel.GetWidget().Visibility = widget.Visibility_Hide
	return p
}

func (p *pauseMenu) show(musicOn bool) {
	p.open = true
	p.setMusic(musicOn)
	p.panel.GetWidget().Visibility = widget.Visibility_Show
}

func (p *pauseMenu) hide() {
	p.open = false
	p.panel.GetWidget().Visibility = widget.Visibility_Hide
}

func (p *pauseMenu) setMusic(on bool) {
	p.music.Text().Label = musicLabel(on)
}

func musicLabel(on bool) string {
	if on {
		return "Music: On"
	}
	return "Music: Off"
}

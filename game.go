package main

import (
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/journey/assets"
	"github.com/milk9111/journey/common"
	"github.com/milk9111/journey/input"
	"github.com/milk9111/journey/music"
	"github.com/milk9111/journey/prefabs"
	"github.com/milk9111/journey/render"
	"github.com/milk9111/journey/scene"
	"github.com/milk9111/journey/settings"
	"github.com/milk9111/journey/ui"
)

// Game is the ebiten shell around a scene.Session. The session is only
// touched from Update, through the driver and the popup callbacks.
type Game struct {
	settings settings.Settings
	journey  *prefabs.Journey

	sched    *scene.ManualScheduler
	driver   *scene.Driver
	input    *input.Latch
	library  *assets.Library
	renderer *render.Renderer
	overlay  *ui.Overlay
	music    *music.Music
	watcher  *prefabs.Watcher

	snapshot scene.Snapshot
	paused   bool
	quit     bool
}

func NewGame(s settings.Settings) (*Game, error) {
	j, err := prefabs.LoadJourney(s.Journey)
	if err != nil {
		return nil, err
	}
	session, err := newSession(j, s)
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings: s,
		journey:  j,
		sched:    &scene.ManualScheduler{},
		input:    input.NewLatch(input.Ebiten{}),
		library:  assets.NewLibrary(s.AssetsDir),
	}
	g.renderer = render.NewRenderer(j, g.library)
	g.renderer.Debug = s.Debug

	g.overlay = ui.NewOverlay(g.library, rand.New(rand.NewSource(time.Now().UnixNano())))
	g.overlay.SetTarget(session)
	g.overlay.OnResume = func() { g.setPaused(false) }
	g.overlay.OnQuit = func() { g.quit = true }
	g.overlay.OnToggleMusic = func() bool { return g.music.Toggle() }

	g.music = music.Open(assets.AudioContext(), g.library, j.Spec, s.Volume)
	if s.Music {
		g.music.SetOn(true)
	}

	if s.HotReload() {
		dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
		if dir := filepath.Dir(s.Journey); dir != "." && dir != "prefabs" {
			dirs = append(dirs, dir)
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.driver = scene.NewDriver(session, g.sched, g.input)
	g.driver.AfterUpdate = g.afterUpdate
	g.snapshot = session.Snapshot()
	g.driver.Start()
	return g, nil
}

func newSession(j *prefabs.Journey, s settings.Settings) (*scene.Session, error) {
	cfg := j.Config
	cfg.Debug = s.Debug
	session, err := scene.NewSession(cfg, j.Registry, j.Index)
	if err != nil {
		return nil, err
	}
	switch {
	case s.Start == settings.StartIsland:
		err = session.Jump(scene.Island, s.StartFraction)
	case s.StartFraction > 0:
		err = session.Jump(scene.Main, s.StartFraction)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Title is the journey name for the window title.
func (g *Game) Title() string {
	if g.journey.Spec.Name == "" {
		return "untitled"
	}
	return g.journey.Spec.Name
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	frame := g.input.Update()

	if frame.ToggleDebug {
		g.renderer.Debug = !g.renderer.Debug
	}
	if frame.ToggleMusic {
		g.overlay.SetMusic(g.music.Toggle())
	}
	if frame.TogglePause {
		g.setPaused(!g.paused)
	}
	if frame.Close {
		g.overlay.Escape()
	}
	if frame.PhotoPrev {
		g.overlay.StepPhoto(-1)
	}
	if frame.PhotoNext {
		g.overlay.StepPhoto(1)
	}

	g.overlay.Update()
	g.music.Update()
	g.reload()

	if g.quit {
		return ebiten.Termination
	}
	if !g.paused {
		g.sched.Step(time.Now())
	}
	return nil
}

func (g *Game) afterUpdate(s *scene.Session, dt float64) {
	for _, evt := range s.Events().Drain() {
		switch evt.Type {
		case scene.EventSceneChanged:
			g.renderer.SceneChanged()
		case scene.EventOpenCheckpoint, scene.EventOpenGate:
			g.overlay.Handle(evt)
		}
	}
	g.snapshot = s.Snapshot()
	g.renderer.Update(dt, g.snapshot)
}

func (g *Game) setPaused(p bool) {
	g.paused = p
	if p {
		g.overlay.ShowPause(g.music.On())
	} else {
		g.overlay.HidePause()
	}
}

// reload rebuilds the session from the journey file after an edit. Progress
// carries over; a journey that fails to build is logged and ignored.
func (g *Game) reload() {
	changed := g.watcher.Pending()
	if len(changed) == 0 {
		return
	}
	log.Printf("game: reloading after change to %v", changed)

	j, err := prefabs.LoadJourney(g.settings.Journey)
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	cfg := j.Config
	cfg.Debug = g.settings.Debug
	session, err := scene.NewSession(cfg, j.Registry, j.Index)
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	session.AdoptProgress(g.driver.Session())

	g.journey = j
	g.driver.SetSession(session)
	g.overlay.Reset()
	g.overlay.SetTarget(session)

	debug := g.renderer.Debug
	g.renderer = render.NewRenderer(j, g.library)
	g.renderer.Debug = debug
	g.snapshot = session.Snapshot()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snapshot)
	g.overlay.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

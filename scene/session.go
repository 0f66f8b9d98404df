package scene

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/checkpoint"
	"github.com/milk9111/journey/motion"
	"github.com/milk9111/journey/paths"
)

// Session owns all mutable state of the walk. Only the frame driver and the
// popup entry points (CloseCheckpoint, ResolveGate) mutate it; everything
// else reads Snapshot.
type Session struct {
	ID uuid.UUID

	cfg    Config
	reg    *paths.Registry
	idx    *checkpoint.Index
	curves map[Scene]*paths.Curve
	travel map[Scene]*motion.Traveler
	intro  *motion.Intro

	scene Scene
	state State
	modal Modal
	gate  GateKind
	open  *checkpoint.Checkpoint

	unlocked       bool
	wasAtEnd       bool
	islandEndArmed bool
	interactArmed  bool
	interactHeld   bool

	position    cp.Vector
	nearest     *checkpoint.Checkpoint
	nearestDist float64
	passed      map[string]struct{}

	in     Input
	dt     float64
	frames int

	events  EventQueue
	systems *Scheduler
}

// NewSession starts a walk at the beginning of the main path. The registry
// must contain the main curve; the island curve is optional.
func NewSession(cfg Config, reg *paths.Registry, idx *checkpoint.Index) (*Session, error) {
	main, ok := reg.Curve(paths.Main)
	if !ok {
		return nil, fmt.Errorf("scene: registry has no %q curve", paths.Main)
	}

	s := &Session{
		ID:             uuid.New(),
		cfg:            cfg,
		reg:            reg,
		idx:            idx,
		curves:         map[Scene]*paths.Curve{Main: main},
		travel:         map[Scene]*motion.Traveler{Main: motion.NewTraveler(cfg.Speed)},
		scene:          Main,
		state:          OnMainPath,
		islandEndArmed: true,
		passed:         make(map[string]struct{}),
		nearestDist:    math.Inf(1),
	}
	if island, ok := reg.Curve(paths.Island); ok {
		s.curves[Island] = island
		s.travel[Island] = motion.NewTraveler(cfg.Speed)
	}
	if cfg.IntroFraction > 0 {
		s.intro = motion.NewIntro(main, cfg.IntroFraction, cfg.IntroSpawnY)
	}
	s.systems = NewScheduler(
		SystemFunc(motionSystem),
		SystemFunc(reversalSystem),
		SystemFunc(proximitySystem),
		SystemFunc(passedSystem),
		SystemFunc(interactSystem),
		SystemFunc(endOfPathSystem),
	)
	s.position = s.worldPosition()
	return s, nil
}

// Update advances the session by dt seconds. It does nothing while a popup
// is open.
func (s *Session) Update(dt float64, in Input) {
	if s == nil || s.Paused() {
		return
	}
	s.frames++
	s.in = in
	s.dt = dt
	s.systems.Update(s)
}

// Paused reports whether a popup is blocking the state machine.
func (s *Session) Paused() bool {
	return s.modal != ModalNone
}

// CloseCheckpoint closes the checkpoint popup; the session resumes on the
// next Update.
func (s *Session) CloseCheckpoint() {
	if s.modal != ModalCheckpoint {
		return
	}
	s.modal = ModalNone
	s.open = nil
}

// ResolveGate closes the open gate. Unlocked on the main gate makes the next
// arrival at the end of the main path cross over to the island.
func (s *Session) ResolveGate(r Resolution) {
	if s.modal != ModalGate {
		return
	}
	switch s.state {
	case PopupGate:
		if r == Unlocked {
			s.unlocked = true
		}
		s.setState(OnMainPath)
	case SecondaryEndGate:
		s.setState(OnSecondaryPath)
	}
	s.modal = ModalNone
	s.gate = ""
	s.logf("gate resolved: %s (unlocked=%v)", r, s.unlocked)
}

// Events is the queue collaborators drain after each Update.
func (s *Session) Events() *EventQueue {
	if s == nil {
		return nil
	}
	return &s.events
}

func (s *Session) Config() Config                     { return s.cfg }
func (s *Session) Registry() *paths.Registry          { return s.reg }
func (s *Session) Index() *checkpoint.Index           { return s.idx }
func (s *Session) Scene() Scene                       { return s.scene }
func (s *Session) State() State                       { return s.state }
func (s *Session) Unlocked() bool                     { return s.unlocked }
func (s *Session) Intro() *motion.Intro               { return s.intro }
func (s *Session) Curve(sc Scene) *paths.Curve        { return s.curves[sc] }
func (s *Session) Traveler(sc Scene) *motion.Traveler { return s.travel[sc] }

// IsPassed reports whether the main-path checkpoint id is behind the
// traveler.
func (s *Session) IsPassed(id string) bool {
	_, ok := s.passed[id]
	return ok
}

// Jump places the traveler on sc at fraction of its curve. Jumping to the
// island unlocks it. Open popups are closed.
func (s *Session) Jump(sc Scene, fraction float64) error {
	c, ok := s.curves[sc]
	if !ok {
		return fmt.Errorf("scene: no curve for scene %q", sc)
	}
	s.modal = ModalNone
	s.open = nil
	s.gate = ""
	if sc == Island {
		s.unlocked = true
		s.setState(OnSecondaryPath)
	} else {
		s.setState(OnMainPath)
	}
	if sc != s.scene {
		s.switchScene(sc)
	}
	s.travel[sc].Place(fraction*c.TotalLength(), c)
	s.wasAtEnd = s.atEnd()
	s.islandEndArmed = !(sc == Island && s.wasAtEnd)
	s.refresh()
	return nil
}

// AdoptProgress carries scene, unlock state and traveler fractions over from
// a session built from an older configuration.
func (s *Session) AdoptProgress(prev *Session) {
	if prev == nil {
		return
	}
	s.unlocked = prev.unlocked
	for sc, t := range prev.travel {
		if mine, ok := s.travel[sc]; ok {
			frac := 0.0
			if l := prev.curves[sc].TotalLength(); l > 0 {
				frac = t.S / l
			}
			mine.Place(frac*s.curves[sc].TotalLength(), s.curves[sc])
			mine.Facing = t.Facing
			mine.WalkT, mine.Bob = t.WalkT, t.Bob
		}
	}
	if _, ok := s.curves[prev.scene]; ok {
		s.scene = prev.scene
		if s.scene == Island {
			s.setState(OnSecondaryPath)
		}
	}
	s.wasAtEnd = s.atEnd()
	s.islandEndArmed = prev.islandEndArmed
	s.refresh()
}

func (s *Session) active() (*paths.Curve, *motion.Traveler) {
	return s.curves[s.scene], s.travel[s.scene]
}

func (s *Session) worldPosition() cp.Vector {
	c, t := s.active()
	if s.scene == Main {
		return t.WorldPosition(c, s.intro)
	}
	return t.WorldPosition(c, nil)
}

func (s *Session) atEnd() bool {
	c, t := s.active()
	return t.S >= c.TotalLength()-s.cfg.EndEpsilon
}

// refresh recomputes the derived per-frame fields without advancing time.
func (s *Session) refresh() {
	proximitySystem(s)
	passedSystem(s)
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	s.logf("state %s -> %s", s.state, st)
	s.state = st
}

func (s *Session) switchScene(to Scene) {
	from := s.scene
	s.scene = to
	s.wasAtEnd = false
	s.events.Push(Event{Type: EventSceneChanged, Data: SceneChanged{From: from, To: to}})
	s.logf("scene %s -> %s", from, to)
}

func (s *Session) logf(format string, args ...any) {
	if !s.cfg.Debug {
		return
	}
	log.Printf("scene: session=%s "+format, append([]any{s.ID}, args...)...)
}

// Snapshot is a read-only copy of what renderers and popups need each frame.
type Snapshot struct {
	SessionID string
	Frame     int

	Scene Scene
	State State
	Modal Modal
	Gate  GateKind
	// OpenCheckpoint is the id of the checkpoint popup, if any.
	OpenCheckpoint string

	S           float64
	TotalLength float64
	Position    cp.Vector
	Facing      cp.Vector
	WalkPhase   float64
	Bob         float64

	// Nearest is the id of the checkpoint in interaction range, or "".
	Nearest         string
	NearestDistance float64

	// Passed lists passed main-path checkpoints in path order.
	Passed      []string
	MainTotal   int
	Unlocked    bool
	IslandReady bool
}

func (s *Session) Snapshot() Snapshot {
	c, t := s.active()
	snap := Snapshot{
		SessionID:       s.ID.String(),
		Frame:           s.frames,
		Scene:           s.scene,
		State:           s.state,
		Modal:           s.modal,
		Gate:            s.gate,
		S:               t.S,
		TotalLength:     c.TotalLength(),
		Position:        s.position,
		Facing:          t.Facing,
		WalkPhase:       t.WalkPhase(),
		Bob:             t.Bob,
		NearestDistance: s.nearestDist,
		Unlocked:        s.unlocked,
		IslandReady:     s.curves[Island] != nil,
	}
	if s.open != nil {
		snap.OpenCheckpoint = s.open.ID
	}
	if s.nearest != nil {
		snap.Nearest = s.nearest.ID
	}
	mainCps := s.idx.ForCurve(paths.Main)
	snap.MainTotal = len(mainCps)
	for _, cpt := range mainCps {
		if s.IsPassed(cpt.ID) {
			snap.Passed = append(snap.Passed, cpt.ID)
		}
	}
	return snap
}

package scene

import (
	"sync"
	"time"
)

// FrameScheduler calls fn once, on the next frame.
type FrameScheduler interface {
	RequestNextFrame(fn func(now time.Time))
}

// InputSource produces the input of one frame.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// ClampDT converts the time between two frames into a step in seconds,
// bounded to [0, max]. A zero max leaves the step unbounded.
func ClampDT(d, max time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	if max > 0 && d > max {
		d = max
	}
	return d.Seconds()
}

// Driver runs one Session.Update per frame and re-arms itself on the
// scheduler until stopped.
type Driver struct {
	session *Session
	sched   FrameScheduler
	input   InputSource

	// AfterUpdate runs after each update with the step that was applied.
	// Renderers and popups hook in here.
	AfterUpdate func(s *Session, dt float64)

	running bool
	last    time.Time
}

func NewDriver(session *Session, sched FrameScheduler, input InputSource) *Driver {
	return &Driver{session: session, sched: sched, input: input}
}

// Start requests the first frame. Calling Start on a running driver does
// nothing.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.last = time.Time{}
	d.sched.RequestNextFrame(d.frame)
}

// Stop makes the next pending frame a no-op and stops re-arming.
func (d *Driver) Stop() {
	d.running = false
}

func (d *Driver) Running() bool { return d.running }

func (d *Driver) Session() *Session { return d.session }

// SetSession swaps the driven session, for example after a configuration
// reload.
func (d *Driver) SetSession(s *Session) {
	d.session = s
}

func (d *Driver) frame(now time.Time) {
	if !d.running {
		return
	}
	var dt float64
	if !d.last.IsZero() {
		dt = ClampDT(now.Sub(d.last), d.session.Config().MaxDT)
	}
	d.last = now

	var in Input
	if d.input != nil {
		in = d.input.Poll()
	}
	d.session.Update(dt, in)
	if d.AfterUpdate != nil {
		d.AfterUpdate(d.session, dt)
	}
	if d.running {
		d.sched.RequestNextFrame(d.frame)
	}
}

// ManualScheduler queues frame callbacks until Step is called. The game loop
// steps it once per tick; tests step it by hand.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func(now time.Time)
}

func (m *ManualScheduler) RequestNextFrame(fn func(now time.Time)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

// Step runs the callbacks queued before the call. Callbacks requested while
// stepping wait for the next Step.
func (m *ManualScheduler) Step(now time.Time) int {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

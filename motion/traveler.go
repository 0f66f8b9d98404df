package motion

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/geom"
)

// Curve is the part of a path the controller needs.
type Curve interface {
	TotalLength() float64
	PositionAt(s float64) cp.Vector
	TangentAt(s float64) geom.Tangent
}

// Intent is the directional input for one frame.
type Intent struct {
	Forward  bool
	Backward bool
}

// Net is +1 for forward only, -1 for backward only, 0 otherwise.
func (i Intent) Net() int {
	switch {
	case i.Forward && !i.Backward:
		return 1
	case i.Backward && !i.Forward:
		return -1
	default:
		return 0
	}
}

const (
	walkRate = 6.0
	bobRate  = 10.0
)

// Traveler is the arc-length state of the walking couple on one curve.
type Traveler struct {
	S      float64
	Speed  float64
	Facing cp.Vector

	// WalkT and Bob only advance while moving; renderers use them for leg
	// and bounce phases.
	WalkT float64
	Bob   float64
}

func NewTraveler(speed float64) *Traveler {
	return &Traveler{Speed: speed, Facing: cp.Vector{X: 1, Y: 0}}
}

// Advance moves the traveler along c. dt must already be bounded by the
// caller. Without a net intent nothing changes.
func (t *Traveler) Advance(intent Intent, dt float64, c Curve) {
	move := intent.Net()
	if move == 0 || c == nil {
		return
	}
	dir := float64(move)
	t.S = geom.Clamp(t.S+dir*t.Speed*dt, 0, c.TotalLength())
	t.WalkT += dt * walkRate
	t.Bob += dt * bobRate
	t.Facing = c.TangentAt(t.S).Dir.Mult(dir)
}

// Place puts the traveler at s, clamped to c, facing along the curve.
func (t *Traveler) Place(s float64, c Curve) {
	t.S = geom.Clamp(s, 0, c.TotalLength())
	t.Facing = c.TangentAt(t.S).Dir
}

// WorldPosition is where the traveler stands, including the intro walk-in
// when intro is set.
func (t *Traveler) WorldPosition(c Curve, intro *Intro) cp.Vector {
	if intro != nil {
		return intro.Position(t.S, c)
	}
	return c.PositionAt(t.S)
}

// WalkPhase is WalkT wrapped to [0, 1).
func (t *Traveler) WalkPhase() float64 {
	return t.WalkT - float64(int(t.WalkT))
}

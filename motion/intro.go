package motion

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/geom"
)

// Intro walks the traveler from an off-path spawn point onto the curve.
// Below Threshold the position is a straight interpolation from Spawn to the
// curve point at Threshold.
type Intro struct {
	Threshold float64
	Spawn     cp.Vector
}

// NewIntro places the spawn point straight above (or below) the curve point
// at fraction of c, at height spawnY.
func NewIntro(c Curve, fraction, spawnY float64) *Intro {
	threshold := geom.Clamp(fraction, 0, 1) * c.TotalLength()
	meet := c.PositionAt(threshold)
	return &Intro{Threshold: threshold, Spawn: cp.Vector{X: meet.X, Y: spawnY}}
}

func (in *Intro) Position(s float64, c Curve) cp.Vector {
	if in == nil || in.Threshold <= 0 || s > in.Threshold {
		return c.PositionAt(s)
	}
	meet := c.PositionAt(in.Threshold)
	return geom.LerpPoint(in.Spawn, meet, geom.Clamp(s/in.Threshold, 0, 1))
}

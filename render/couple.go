package render

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/common"
	"github.com/milk9111/journey/geom"
)

// CoupleLayout spreads the two walkers across the path. They start Far
// apart and close to Near over the first Approach arc-length units.
type CoupleLayout struct {
	Far      float64
	Near     float64
	Approach float64
}

func (l CoupleLayout) Separation(s float64) float64 {
	if l.Approach <= 0 {
		return l.Near
	}
	return common.Lerp(l.Far, l.Near, common.Clamp(s/l.Approach, 0, 1))
}

// Walker is one of the pair, with the index of its palette.
type Walker struct {
	Pos     cp.Vector
	Palette int
}

// Place puts walker 0 on the left of dir and walker 1 on the right, and
// returns them in draw order (farther up the screen first).
func (l CoupleLayout) Place(center, dir cp.Vector, s float64) []Walker {
	n := geom.Normal(dir).Mult(l.Separation(s))
	ws := []Walker{
		{Pos: center.Add(n), Palette: 0},
		{Pos: center.Sub(n), Palette: 1},
	}
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].Pos.Y < ws[j].Pos.Y })
	return ws
}

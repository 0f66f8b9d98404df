package geom

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/common"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return common.Clamp(v, lo, hi)
}

// LerpPoint interpolates componentwise; t is not clamped.
func LerpPoint(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{X: common.Lerp(a.X, b.X, t), Y: common.Lerp(a.Y, b.Y, t)}
}

// Normal is the left-hand perpendicular of a direction.
func Normal(dir cp.Vector) cp.Vector {
	return cp.Vector{X: -dir.Y, Y: dir.X}
}

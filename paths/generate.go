package paths

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/common"
)

// Generator produces the sample points of a curve.
type Generator interface {
	Points() ([]cp.Vector, error)
}

// Bounds is the rectangle sample points are kept inside of.
type Bounds struct {
	Width   float64
	Height  float64
	MarginX float64
	MarginY float64
}

func (b Bounds) clamp(p cp.Vector) cp.Vector {
	if b.Width <= 0 || b.Height <= 0 {
		return p
	}
	return cp.Vector{
		X: common.Clamp(p.X, b.MarginX, b.Width-b.MarginX),
		Y: common.Clamp(p.Y, b.MarginY, b.Height-b.MarginY),
	}
}

// Wave is one sine term of a wave path.
type Wave struct {
	Amplitude float64
	Frequency float64
}

// Bend pushes the path left inside a parameter window with a quadratic
// falloff.
type Bend struct {
	Center float64
	Width  float64
	Shift  float64
}

func (b Bend) offset(t float64) float64 {
	if b.Width <= 0 || b.Shift == 0 {
		return 0
	}
	d := math.Abs(t-b.Center) / b.Width
	if d >= 1 {
		return 0
	}
	return b.Shift * (1 - d) * (1 - d)
}

// WavePath walks left to right across the map while summed sines bend it up
// and down.
type WavePath struct {
	Samples int
	StartX  float64
	Span    float64
	BaseY   float64
	Waves   []Wave
	Bends   []Bend
	Bounds  Bounds
}

func (g WavePath) Points() ([]cp.Vector, error) {
	n := max(1, g.Samples)
	pts := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := g.StartX + g.Span*t
		y := g.BaseY
		for _, w := range g.Waves {
			y += w.Amplitude * math.Sin(t*2*math.Pi*w.Frequency)
		}
		for _, b := range g.Bends {
			x -= b.offset(t)
		}
		pts = append(pts, g.Bounds.clamp(cp.Vector{X: x, Y: y}))
	}
	return pts, nil
}

// BezierPath is a quadratic Bézier valley between two anchors with a
// two-frequency wobble. Only u in [0, TMax] is sampled.
type BezierPath struct {
	Samples int
	Start   cp.Vector
	Control cp.Vector
	End     cp.Vector
	TMax    float64
	Wobble  [2]Wave
	Bounds  Bounds
}

func quadBezier(p0, p1, p2 cp.Vector, t float64) cp.Vector {
	omt := 1 - t
	return cp.Vector{
		X: omt*omt*p0.X + 2*omt*t*p1.X + t*t*p2.X,
		Y: omt*omt*p0.Y + 2*omt*t*p1.Y + t*t*p2.Y,
	}
}

func (g BezierPath) Points() ([]cp.Vector, error) {
	n := max(1, g.Samples)
	tMax := g.TMax
	if tMax <= 0 || tMax > 1 {
		tMax = 1
	}
	pts := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		u := tMax * float64(i) / float64(n)
		p := quadBezier(g.Start, g.Control, g.End, u)
		for _, w := range g.Wobble {
			p.Y += w.Amplitude * math.Sin(u*2*math.Pi*w.Frequency)
		}
		pts = append(pts, g.Bounds.clamp(p))
	}
	// last sample sits level with the end anchor
	pts[n].Y = g.Bounds.clamp(cp.Vector{X: pts[n].X, Y: g.End.Y}).Y
	return pts, nil
}

// Fixed is a literal list of points.
type Fixed []cp.Vector

func (f Fixed) Points() ([]cp.Vector, error) {
	return append([]cp.Vector(nil), f...), nil
}

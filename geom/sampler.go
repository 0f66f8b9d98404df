package geom

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

// Sampler maps arc-length along a polyline to world positions and directions.
// It is immutable after construction.
type Sampler struct {
	points []cp.Vector
	segLen []float64
	cum    []float64
	total  float64
}

// Tangent is the unit direction of the segment an arc-length resolved to.
type Tangent struct {
	Dir     cp.Vector
	Segment int
}

// NewSampler precomputes segment lengths and the cumulative arc-length table
// for points. The slice is copied.
func NewSampler(points []cp.Vector) *Sampler {
	s := &Sampler{
		points: append([]cp.Vector(nil), points...),
		cum:    []float64{0},
	}
	for i := 0; i+1 < len(s.points); i++ {
		l := s.points[i].Distance(s.points[i+1])
		s.segLen = append(s.segLen, l)
		s.total += l
		s.cum = append(s.cum, s.total)
	}
	return s
}

// TotalLength is the sum of all segment lengths.
func (s *Sampler) TotalLength() float64 {
	return s.total
}

// Points returns a copy of the sample points.
func (s *Sampler) Points() []cp.Vector {
	return append([]cp.Vector(nil), s.points...)
}

// Len is the number of sample points.
func (s *Sampler) Len() int {
	return len(s.points)
}

// Cumulative returns the arc-length at sample point i.
func (s *Sampler) Cumulative(i int) float64 {
	if i < 0 {
		return 0
	}
	if i >= len(s.cum) {
		return s.total
	}
	return s.cum[i]
}

// Clamp bounds an arc-length to [0, TotalLength]. NaN maps to 0.
func (s *Sampler) Clamp(arc float64) float64 {
	if math.IsNaN(arc) {
		return 0
	}
	return Clamp(arc, 0, s.total)
}

// S converts a fraction of the total length to an arc-length. NaN maps to 0.
func (s *Sampler) S(fraction float64) float64 {
	if math.IsNaN(fraction) {
		return 0
	}
	return Clamp(fraction, 0, 1) * s.total
}

// segment returns the first segment whose end is at or beyond arc, assuming
// arc is already clamped.
func (s *Sampler) segment(arc float64) int {
	n := len(s.segLen)
	if n == 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool { return s.cum[i+1] >= arc })
	if i >= n {
		i = n - 1
	}
	return i
}

// PositionAt returns the world position at arc-length arc, clamped to the
// curve.
func (s *Sampler) PositionAt(arc float64) cp.Vector {
	switch len(s.points) {
	case 0:
		return cp.Vector{}
	case 1:
		return s.points[0]
	}
	arc = s.Clamp(arc)
	i := s.segment(arc)
	t := 0.0
	if s.segLen[i] != 0 {
		t = (arc - s.cum[i]) / s.segLen[i]
	}
	return LerpPoint(s.points[i], s.points[i+1], t)
}

// TangentAt returns the unit direction of the segment containing arc. A
// zero-length segment yields a zero direction.
func (s *Sampler) TangentAt(arc float64) Tangent {
	if len(s.points) < 2 {
		return Tangent{}
	}
	arc = s.Clamp(arc)
	i := s.segment(arc)
	d := s.points[i+1].Sub(s.points[i])
	l := d.Length()
	if l == 0 {
		l = 1
	}
	return Tangent{Dir: d.Mult(1 / l), Segment: i}
}

package paths

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/common"
)

var mapBounds = Bounds{
	Width:   common.BaseWidth,
	Height:  common.BaseHeight,
	MarginX: 20,
	MarginY: 28,
}

// DefaultMain is the journey path used when no configuration overrides it.
func DefaultMain() WavePath {
	return WavePath{
		Samples: 120,
		StartX:  45,
		Span:    390,
		BaseY:   135,
		Waves: []Wave{
			{Amplitude: 55, Frequency: 2.3},
			{Amplitude: 38, Frequency: 3.7},
			{Amplitude: 22, Frequency: 5.1},
		},
		Bends:  []Bend{{Center: 0.6, Width: 0.18, Shift: 42}},
		Bounds: mapBounds,
	}
}

// DefaultIsland is the shorter valley path unlocked at the end of the main
// path.
func DefaultIsland() BezierPath {
	return BezierPath{
		Samples: 80,
		Start:   cp.Vector{X: 70, Y: 120},
		Control: cp.Vector{X: 240, Y: 300},
		End:     cp.Vector{X: 410, Y: 120},
		TMax:    0.94,
		Wobble:  [2]Wave{{Amplitude: 6, Frequency: 3}, {Amplitude: 3, Frequency: 7}},
		Bounds:  mapBounds,
	}
}

package ui

import (
	"image"
	"math/rand"
)

const (
	dodgeTries = 30
	dodgePad   = 4
)

// Dodge picks a new top-left corner for a button of size within area that
// keeps dodgePad pixels clear of avoid. It gives up after dodgeTries random
// picks and returns the last one. All rectangles share one coordinate
// space; the result is relative to area.Min.
func Dodge(area, avoid image.Rectangle, size image.Point, rng *rand.Rand) image.Point {
	maxX := max(0, area.Dx()-size.X)
	maxY := max(0, area.Dy()-size.Y)
	keepOut := avoid.Sub(area.Min).Inset(-dodgePad)

	var p image.Point
	for i := 0; i < dodgeTries; i++ {
		p = image.Point{X: rng.Intn(maxX + 1), Y: rng.Intn(maxY + 1)}
		if r := (image.Rectangle{Min: p, Max: p.Add(size)}); !r.Overlaps(keepOut) {
			break
		}
	}
	return p
}

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/prefabs"
)

var heartPixels = [...]string{
	".XX.XX.",
	"XXXXXXX",
	"XXXXXXX",
	".XXXXX.",
	"..XXX..",
	"...X...",
}

// drawHeart draws the pixel heart centred on (cx, cy), each pixel scale
// units wide.
func drawHeart(dst *ebiten.Image, cx, cy, scale float64, clr color.Color) {
	w := float64(len(heartPixels[0])) * scale
	h := float64(len(heartPixels)) * scale
	x0, y0 := cx-w/2, cy-h/2
	px := float32(math.Max(1, scale))
	for row, line := range heartPixels {
		for col, c := range line {
			if c != 'X' {
				continue
			}
			vector.FillRect(dst, float32(x0+float64(col)*scale), float32(y0+float64(row)*scale), px, px, clr, false)
		}
	}
}

// drawPerson is the procedural walker used when no sprite is loaded. feet
// is the point on the path under the walker.
func drawPerson(dst *ebiten.Image, feet cp.Vector, c WalkerColors, phase, bob float64, flip bool) {
	s := c.HeightScale
	if s <= 0 {
		s = 1
	}
	x := float32(math.Round(feet.X))
	y := float32(math.Round(feet.Y - math.Abs(math.Sin(bob))*1.5))
	u := func(v float64) float32 { return float32(v * s) }

	stride := u(2 * math.Sin(phase*2*math.Pi))
	vector.FillRect(dst, x-u(3)+stride, y-u(6), u(2), u(6), c.Pants, false)
	vector.FillRect(dst, x+u(1)-stride, y-u(6), u(2), u(6), c.Pants2, false)
	vector.FillRect(dst, x-u(3)+stride, y-u(1), u(2), u(1), c.Shoes, false)
	vector.FillRect(dst, x+u(1)-stride, y-u(1), u(2), u(1), c.Shoes, false)

	vector.FillRect(dst, x-u(3), y-u(13), u(6), u(7), c.Shirt, false)
	vector.FillRect(dst, x-u(2), y-u(18), u(4), u(5), c.Skin, false)
	vector.FillRect(dst, x-u(2), y-u(19), u(4), u(2), c.Hair, false)
	if flip {
		vector.FillRect(dst, x+u(1), y-u(17), u(1), u(3), c.Hair, false)
	} else {
		vector.FillRect(dst, x-u(2), y-u(17), u(1), u(3), c.Hair, false)
	}
}

// drawMarkerShape stands in for a marker image that is not available.
func drawMarkerShape(dst *ebiten.Image, m prefabs.Marker, p Palette) {
	x, y := float32(m.Pos.X), float32(m.Pos.Y)
	switch m.Kind {
	case "cafe":
		vector.FillRect(dst, x-12, y-8, 24, 14, p.SignBackground, false)
		vector.StrokeLine(dst, x-15, y-8, x, y-16, 2, p.PathEdge, false)
		vector.StrokeLine(dst, x, y-16, x+15, y-8, 2, p.PathEdge, false)
		vector.FillRect(dst, x-3, y, 6, 6, p.PathEdge, false)
	case "tent":
		vector.StrokeLine(dst, x-12, y+8, x, y-10, 2, p.Checkpoint, false)
		vector.StrokeLine(dst, x, y-10, x+12, y+8, 2, p.Checkpoint, false)
		vector.StrokeLine(dst, x-12, y+8, x+12, y+8, 2, p.Checkpoint, false)
	case "plane":
		vector.StrokeLine(dst, x-12, y, x+12, y, 3, p.SignInk, false)
		vector.StrokeLine(dst, x-2, y-8, x+2, y+8, 2, p.SignInk, false)
		vector.StrokeLine(dst, x-12, y-4, x-10, y, 2, p.SignInk, false)
	default:
		vector.FillCircle(dst, x, y, 4, p.SignBackground, false)
	}
}

package render

import (
	"image/color"

	"github.com/milk9111/journey/prefabs"
	"golang.org/x/image/colornames"
)

// WalkerColors are the procedural colours of one walker.
type WalkerColors struct {
	Skin, Hair, Shirt, Pants, Pants2, Shoes color.Color

	Sprite       string
	GroundOffset float64
	HeightScale  float64
}

// Palette is a PaletteSpec with every colour resolved.
type Palette struct {
	Sky              color.Color
	Grass            []color.Color
	Water            []color.Color
	Flowers          []color.Color
	Path             color.Color
	PathEdge         color.Color
	PathLight        color.Color
	Checkpoint       color.Color
	CheckpointNear   color.Color
	SignBackground   color.Color
	SignInk          color.Color
	BubbleBackground color.Color
	BubbleInk        color.Color
	Hearts           []color.Color
	Walkers          [2]WalkerColors
}

func NewPalette(spec *prefabs.PaletteSpec) Palette {
	if spec == nil {
		spec = &prefabs.PaletteSpec{}
	}
	p := Palette{
		Sky:              spec.Sky.Or(colornames.Darkslateblue),
		Grass:            colors(spec.Grass, colornames.Seagreen, colornames.Darkseagreen),
		Water:            colors(spec.Water, colornames.Steelblue, colornames.Slategray),
		Flowers:          colors(spec.Flowers, colornames.Goldenrod, colornames.Palevioletred, colornames.Crimson, colornames.Indianred),
		Path:             spec.Path.Or(colornames.Sienna),
		PathEdge:         spec.PathEdge.Or(colornames.Saddlebrown),
		PathLight:        spec.PathLight.Or(colornames.Lightpink),
		Checkpoint:       spec.Checkpoint.Or(colornames.Crimson),
		CheckpointNear:   spec.CheckpointNear.Or(colornames.Lightcoral),
		SignBackground:   spec.SignBackground.Or(colornames.Slategray),
		SignInk:          spec.SignInk.Or(colornames.Lavender),
		BubbleBackground: spec.BubbleBackground.Or(colornames.Darkslategray),
		BubbleInk:        spec.BubbleInk.Or(colornames.Lavender),
		Hearts:           colors(spec.Hearts, colornames.Hotpink, colornames.Palevioletred, colornames.Lightpink),
	}
	defaults := [2]WalkerColors{
		{Skin: colornames.Burlywood, Hair: colornames.Saddlebrown, Shirt: colornames.Skyblue, Pants: colornames.Slategray, Pants2: colornames.Darkslategray, Shoes: colornames.Black},
		{Skin: colornames.Tan, Hair: colornames.Rosybrown, Shirt: colornames.Palevioletred, Pants: colornames.Slategray, Pants2: colornames.Darkslategray, Shoes: colornames.Black},
	}
	for i := range p.Walkers {
		d := defaults[i]
		w := spec.Walker(i)
		if w == nil {
			d.HeightScale = 1
			p.Walkers[i] = d
			continue
		}
		p.Walkers[i] = WalkerColors{
			Skin:         w.Skin.Or(d.Skin),
			Hair:         w.Hair.Or(d.Hair),
			Shirt:        w.Shirt.Or(d.Shirt),
			Pants:        w.Pants.Or(d.Pants),
			Pants2:       w.Pants2.Or(d.Pants2),
			Shoes:        w.Shoes.Or(d.Shoes),
			Sprite:       w.Sprite,
			GroundOffset: w.GroundOffset,
			HeightScale:  w.HeightScale,
		}
		if p.Walkers[i].HeightScale <= 0 {
			p.Walkers[i].HeightScale = 1
		}
	}
	return p
}

func colors(in []prefabs.YAMLColor, fallback ...color.Color) []color.Color {
	if len(in) == 0 {
		return fallback
	}
	out := make([]color.Color, 0, len(in))
	for i := range in {
		out = append(out, in[i].Or(fallback[0]))
	}
	return out
}

// pick cycles through cs.
func pick(cs []color.Color, i int) color.Color {
	if len(cs) == 0 {
		return color.White
	}
	if i < 0 {
		i = -i
	}
	return cs[i%len(cs)]
}

// withAlpha scales c's alpha by a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, al := c.RGBA()
	a = clamp01(a)
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

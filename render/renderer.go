package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/common"
	"github.com/milk9111/journey/paths"
	"github.com/milk9111/journey/prefabs"
	"github.com/milk9111/journey/scene"
	"golang.org/x/image/font/basicfont"
)

const (
	pathEdgeWidth = 14
	pathWidth     = 6
	flowerPairs   = 8
	walkerHeight  = 20
	fadeSeconds   = 0.5
)

// ImageSource resolves image names from the journey file.
type ImageSource interface {
	Image(name string) (*ebiten.Image, bool)
}

// Renderer draws a session snapshot. It owns only presentation state.
type Renderer struct {
	Debug bool

	journey *prefabs.Journey
	images  ImageSource
	palette Palette
	tiles   *TileMap
	hearts  *HeartRain
	couple  CoupleLayout
	face    text.Face

	elapsed float64
	fade    float64

	ground   *ebiten.Image
	vignette *ebiten.Image
}

func NewRenderer(j *prefabs.Journey, images ImageSource) *Renderer {
	spec := j.Spec
	r := &Renderer{
		journey: j,
		images:  images,
		palette: NewPalette(&spec.Palette),
		tiles:   DefaultTileMap(spec.Tiles.Seed),
		hearts:  NewHeartRain(spec.HeartRain.Max, spec.HeartRain.SpawnInterval, rand.New(rand.NewSource(int64(spec.Tiles.Seed)))),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	r.couple = CoupleLayout{Far: spec.Couple.Far, Near: spec.Couple.Near}
	if r.couple.Far == 0 && r.couple.Near == 0 {
		r.couple.Far, r.couple.Near = 22, 7
	}
	frac := spec.Couple.ApproachFraction
	if frac <= 0 {
		frac = 0.12
	}
	if main, ok := j.Registry.Curve(paths.Main); ok {
		r.couple.Approach = frac * main.TotalLength()
	}
	return r
}

// SceneChanged starts the cross-fade between maps.
func (r *Renderer) SceneChanged() {
	r.fade = 1
}

// Update advances animations. It runs every frame, popups or not.
func (r *Renderer) Update(dt float64, snap scene.Snapshot) {
	r.elapsed += dt
	r.fade = math.Max(0, r.fade-dt/fadeSeconds)
	r.hearts.Update(dt, len(snap.Passed), snap.MainTotal)
}

func (r *Renderer) Hearts() *HeartRain { return r.hearts }

func (r *Renderer) Draw(screen *ebiten.Image, snap scene.Snapshot) {
	screen.Fill(r.palette.Sky)
	r.drawGround(screen)

	curve, ok := r.journey.Registry.Curve(snap.Scene.Curve())
	if !ok {
		return
	}
	r.drawPath(screen, curve)
	if snap.Scene == scene.Main {
		r.drawFlowers(screen, curve)
		r.drawMarkers(screen)
		r.drawSigns(screen)
	}
	r.drawCheckpoints(screen, curve, snap)
	r.drawCouple(screen, curve, snap)
	if snap.Nearest != "" && snap.Modal == scene.ModalNone {
		r.drawBubble(screen, snap.Position, "Press E")
	}
	r.drawHeartRain(screen)
	r.drawVignette(screen)
	if r.fade > 0 {
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, withAlpha(color.Black, r.fade), false)
	}
	if r.Debug {
		r.drawDebug(screen, snap)
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	if r.ground == nil {
		r.ground = ebiten.NewImage(common.BaseWidth, common.BaseHeight)
		ts := float32(common.TileSize)
		for y := 0; y < r.tiles.Rows; y++ {
			for x := 0; x < r.tiles.Cols; x++ {
				px, py := float32(x)*ts, float32(y)*ts
				kind := r.tiles.At(x, y)
				if kind == TileWater {
					vector.FillRect(r.ground, px, py, ts, ts, pick(r.palette.Water, x*3+y), false)
					continue
				}
				vector.FillRect(r.ground, px, py, ts, ts, pick(r.palette.Grass, x+y*2), false)
				if kind != TileGrass {
					c := pick(r.palette.Flowers, int(kind-TileFlowerGold))
					vector.FillRect(r.ground, px+3, py+3, 2, 2, c, false)
				}
			}
		}
	}
	screen.DrawImage(r.ground, nil)

	// sparkles blink, so they are not baked into the ground image
	ts := float32(common.TileSize)
	on := math.Sin(r.elapsed*3) > 0
	for y := 0; y < r.tiles.Rows; y++ {
		for x := 0; x < r.tiles.Cols; x++ {
			if !r.tiles.Sparkles(x, y) {
				continue
			}
			if on == ((x+y)%2 == 0) {
				vector.FillRect(screen, float32(x)*ts+2, float32(y)*ts+2, 1, 1, withAlpha(color.White, 0.6), false)
			}
		}
	}
}

func (r *Renderer) drawPath(screen *ebiten.Image, c *paths.Curve) {
	pts := c.Sampler.Points()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathEdgeWidth, r.palette.PathEdge, true)
	}
	for _, p := range pts {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), pathEdgeWidth/2, r.palette.PathEdge, true)
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathWidth, r.palette.Path, true)
	}
	for _, p := range pts {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), pathWidth/2, r.palette.Path, true)
	}
}

func (r *Renderer) drawFlowers(screen *ebiten.Image, c *paths.Curve) {
	for i := 0; i < flowerPairs; i++ {
		s := c.Sampler.S((float64(i) + 0.5) / flowerPairs)
		p := c.PositionAt(s)
		n := normalAt(c, s).Mult(11)
		for side, q := range []cp.Vector{p.Add(n), p.Sub(n)} {
			clr := pick(r.palette.Flowers, i+side)
			vector.FillRect(screen, float32(q.X), float32(q.Y)+2, 1, 3, pick(r.palette.Grass, 2), false)
			vector.FillCircle(screen, float32(q.X)+0.5, float32(q.Y)+1, 2, clr, false)
		}
	}
}

func (r *Renderer) drawMarkers(screen *ebiten.Image) {
	for _, m := range r.journey.Markers {
		if img, ok := r.image(m.Image); ok && m.Width > 0 {
			drawImageCentered(screen, img, m.Pos, m.Width/float64(img.Bounds().Dx()), false)
			continue
		}
		drawMarkerShape(screen, m, r.palette)
	}
}

func (r *Renderer) drawSigns(screen *ebiten.Image) {
	for _, s := range r.journey.Signs {
		w := text.Advance(s.Label, r.face) + 8
		x, y := float32(s.Pos.X-w/2), float32(s.Pos.Y)
		vector.StrokeLine(screen, float32(s.Pos.X), y+15, float32(s.Pos.X), y+24, 2, r.palette.PathEdge, false)
		vector.FillRect(screen, x, y, float32(w), 15, r.palette.SignBackground, false)
		vector.StrokeRect(screen, x, y, float32(w), 15, 1, r.palette.PathEdge, false)
		r.drawText(screen, s.Label, s.Pos.X-w/2+4, s.Pos.Y+1, r.palette.SignInk)
	}
}

func (r *Renderer) drawCheckpoints(screen *ebiten.Image, c *paths.Curve, snap scene.Snapshot) {
	passed := make(map[string]bool, len(snap.Passed))
	for _, id := range snap.Passed {
		passed[id] = true
	}
	for _, cpt := range r.journey.Index.ForCurve(c.Name) {
		clr := r.palette.Checkpoint
		alpha := 0.6
		if passed[cpt.ID] || c.Name != paths.Main {
			alpha = 1
		}
		scale := 2.0
		if cpt.ID == snap.Nearest {
			clr = r.palette.CheckpointNear
			alpha = 1
			scale += 0.4 * math.Sin(r.elapsed*6)
			vector.FillCircle(screen, float32(cpt.Pos.X), float32(cpt.Pos.Y), 12, withAlpha(clr, 0.25), true)
		}
		drawHeart(screen, cpt.Pos.X, cpt.Pos.Y-4, scale, withAlpha(clr, alpha))
	}
}

func (r *Renderer) drawCouple(screen *ebiten.Image, c *paths.Curve, snap scene.Snapshot) {
	dir := c.TangentAt(snap.S).Dir
	s := snap.S
	if snap.Scene != scene.Main {
		s = r.couple.Approach
	}
	flip := snap.Facing.X < 0
	for _, w := range r.couple.Place(snap.Position, dir, s) {
		colors := r.palette.Walkers[w.Palette]
		if img, ok := r.image(colors.Sprite); ok {
			h := walkerHeight * colors.HeightScale
			scale := h / float64(img.Bounds().Dy())
			center := w.Pos.Add(cp.Vector{Y: colors.GroundOffset - h/2})
			drawImageCentered(screen, img, center, scale, flip)
			continue
		}
		drawPerson(screen, w.Pos, colors, snap.WalkPhase, snap.Bob, flip)
	}
}

func (r *Renderer) drawBubble(screen *ebiten.Image, at cp.Vector, label string) {
	w := text.Advance(label, r.face) + 8
	x, y := at.X-w/2, at.Y-walkerHeight-22
	vector.FillRect(screen, float32(x), float32(y), float32(w), 15, r.palette.BubbleBackground, false)
	vector.FillRect(screen, float32(at.X)-2, float32(y)+15, 4, 3, r.palette.BubbleBackground, false)
	r.drawText(screen, label, x+4, y+1, r.palette.BubbleInk)
}

func (r *Renderer) drawHeartRain(screen *ebiten.Image) {
	for _, h := range r.hearts.Particles() {
		x := h.X + math.Sin(r.elapsed*2+h.Phase)*3
		drawHeart(screen, x, h.Y, 1, withAlpha(pick(r.palette.Hearts, h.Hue), h.Alpha))
	}
}

func (r *Renderer) drawVignette(screen *ebiten.Image) {
	if r.vignette == nil {
		r.vignette = ebiten.NewImage(common.BaseWidth, common.BaseHeight)
		const rings = 24
		for i := 0; i < rings; i++ {
			a := 0.35 * math.Pow(1-float64(i)/rings, 2)
			f := float32(i)
			vector.StrokeRect(r.vignette, f, f, common.BaseWidth-2*f, common.BaseHeight-2*f, 1, withAlpha(color.Black, a), false)
		}
	}
	screen.DrawImage(r.vignette, nil)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, snap scene.Snapshot) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"scene: %s  state: %s\ns: %.1f / %.1f\nnearest: %q (%.1f)\npassed: %d/%d  unlocked: %v\nhearts: %d",
		snap.Scene, snap.State, snap.S, snap.TotalLength,
		snap.Nearest, snap.NearestDistance,
		len(snap.Passed), snap.MainTotal, snap.Unlocked,
		len(r.hearts.Particles()),
	))
	vector.StrokeCircle(screen, float32(snap.Position.X), float32(snap.Position.Y), float32(r.journey.Config.InteractRadius), 1, debugRing, true)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) image(name string) (*ebiten.Image, bool) {
	if r.images == nil || name == "" {
		return nil, false
	}
	return r.images.Image(name)
}

var debugRing = color.RGBA{R: 255, G: 255, A: 160}

func normalAt(c *paths.Curve, s float64) cp.Vector {
	dir := c.TangentAt(s).Dir
	return cp.Vector{X: -dir.Y, Y: dir.X}
}

func drawImageCentered(dst, img *ebiten.Image, at cp.Vector, scale float64, flip bool) {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if flip {
		op.GeoM.Scale(-scale, scale)
	} else {
		op.GeoM.Scale(scale, scale)
	}
	op.GeoM.Translate(math.Round(at.X), math.Round(at.Y))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

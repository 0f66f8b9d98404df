package prefabs

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/checkpoint"
	"github.com/milk9111/journey/common"
	"github.com/milk9111/journey/paths"
	"github.com/milk9111/journey/scene"
)

// Curve kinds accepted in CurveSpec.Kind.
const (
	KindWave   = "wave"
	KindBezier = "bezier"
	KindScript = "script"
	KindPoints = "points"
)

// Journey is a JourneySpec resolved against its own curves.
type Journey struct {
	Spec     *JourneySpec
	Registry *paths.Registry
	Index    *checkpoint.Index
	Config   scene.Config
	Signs    []Sign
	Markers  []Marker
}

// Sign is a resolved SignSpec.
type Sign struct {
	Label string
	Pos   cp.Vector
}

// Marker is a resolved MarkerSpec. Pos is the anchor plus offset.
type Marker struct {
	Kind  string
	Image string
	Width float64
	Pos   cp.Vector
}

// LoadJourney loads and builds a journey file. An empty name loads the
// default journey.
func LoadJourney(filename string) (*Journey, error) {
	spec, err := LoadJourneySpec(filename)
	if err != nil {
		return nil, err
	}
	return BuildJourney(spec)
}

// BuildJourney samples every curve, resolves checkpoints and decorations,
// and derives the scene configuration. All problems found are reported
// together.
func BuildJourney(spec *JourneySpec) (*Journey, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil journey spec")
	}

	var errs []error
	reg := paths.NewRegistry()
	for i, c := range spec.Curves {
		gen, err := spec.Generator(c)
		if err != nil {
			errs = append(errs, fmt.Errorf("curve %d (%s): %w", i, c.Name, err))
			continue
		}
		if _, err := reg.Build(paths.Name(c.Name), gen); err != nil {
			errs = append(errs, err)
		}
	}
	if _, ok := reg.Curve(paths.Main); !ok {
		errs = append(errs, fmt.Errorf("journey %q: no %q curve", spec.Name, paths.Main))
	}

	idx, err := checkpoint.NewIndex(reg, spec.Entries())
	if err != nil {
		errs = append(errs, err)
	}

	j := &Journey{
		Spec:     spec,
		Registry: reg,
		Index:    idx,
		Config:   spec.SceneConfig(),
	}
	if err := j.Config.Validate(); err != nil {
		errs = append(errs, err)
	}
	if main, ok := reg.Curve(paths.Main); ok && j.Config.ReturnOffset > main.TotalLength() {
		errs = append(errs, fmt.Errorf("return_offset %v is longer than the main path (%.1f)", j.Config.ReturnOffset, main.TotalLength()))
	}
	for _, s := range spec.Signs {
		c, ok := reg.Curve(paths.Name(s.Curve))
		if !ok {
			errs = append(errs, fmt.Errorf("sign %q: unknown curve %q", s.Label, s.Curve))
			continue
		}
		pos := c.PositionAt(c.Sampler.S(s.Fraction))
		j.Signs = append(j.Signs, Sign{Label: s.Label, Pos: pos.Add(cp.Vector{X: s.OffsetX, Y: s.OffsetY})})
	}
	for _, m := range spec.Markers {
		anchor, err := markerAnchor(m, reg, idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		j.Markers = append(j.Markers, Marker{
			Kind:  m.Kind,
			Image: m.Image,
			Width: m.Width,
			Pos:   anchor.Add(cp.Vector{X: m.OffsetX, Y: m.OffsetY}),
		})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("prefabs: build journey %q: %w", spec.Name, errors.Join(errs...))
	}
	return j, nil
}

func markerAnchor(m MarkerSpec, reg *paths.Registry, idx *checkpoint.Index) (cp.Vector, error) {
	if m.Checkpoint != "" {
		c, ok := idx.Get(m.Checkpoint)
		if !ok {
			return cp.Vector{}, fmt.Errorf("marker %q: unknown checkpoint %q", m.Kind, m.Checkpoint)
		}
		return c.Pos, nil
	}
	if m.Fraction == nil {
		return cp.Vector{}, fmt.Errorf("marker %q: needs a checkpoint or a fraction", m.Kind)
	}
	name := m.Curve
	if name == "" {
		name = string(paths.Main)
	}
	c, ok := reg.Curve(paths.Name(name))
	if !ok {
		return cp.Vector{}, fmt.Errorf("marker %q: unknown curve %q", m.Kind, name)
	}
	return c.PositionAt(c.Sampler.S(*m.Fraction)), nil
}

// Generator builds the sampler input for c.
func (s *JourneySpec) Generator(c CurveSpec) (paths.Generator, error) {
	bounds := curveBounds(c.Bounds)
	switch c.Kind {
	case KindWave:
		p, err := DecodeSpec[WaveCurveSpec](c.Params)
		if err != nil {
			return nil, err
		}
		g := paths.WavePath{
			Samples: c.Samples,
			StartX:  p.StartX,
			Span:    p.Span,
			BaseY:   p.BaseY,
			Bounds:  bounds,
		}
		for _, w := range p.Waves {
			g.Waves = append(g.Waves, paths.Wave{Amplitude: w.Amplitude, Frequency: w.Frequency})
		}
		for _, b := range p.Bends {
			g.Bends = append(g.Bends, paths.Bend{Center: b.Center, Width: b.Width, Shift: b.Shift})
		}
		return g, nil
	case KindBezier:
		p, err := DecodeSpec[BezierCurveSpec](c.Params)
		if err != nil {
			return nil, err
		}
		if len(p.Wobble) > 2 {
			return nil, fmt.Errorf("bezier wobble takes at most 2 waves, got %d", len(p.Wobble))
		}
		g := paths.BezierPath{
			Samples: c.Samples,
			Start:   p.Start.Vector(),
			Control: p.Control.Vector(),
			End:     p.End.Vector(),
			TMax:    p.TMax,
			Bounds:  bounds,
		}
		for i, w := range p.Wobble {
			g.Wobble[i] = paths.Wave{Amplitude: w.Amplitude, Frequency: w.Frequency}
		}
		return g, nil
	case KindScript:
		p, err := DecodeSpec[ScriptCurveSpec](c.Params)
		if err != nil {
			return nil, err
		}
		if p.Script == "" {
			return nil, fmt.Errorf("script curve needs a script")
		}
		src, err := LoadScript(p.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", p.Script, err)
		}
		return paths.ScriptPath{
			Name:    p.Script,
			Source:  src,
			Samples: c.Samples,
			Params:  p.Vars,
			Bounds:  bounds,
		}, nil
	case KindPoints:
		p, err := DecodeSpec[PointsCurveSpec](c.Params)
		if err != nil {
			return nil, err
		}
		pts := make(paths.Fixed, 0, len(p.Points))
		for _, pt := range p.Points {
			pts = append(pts, pt.Vector())
		}
		return pts, nil
	default:
		return nil, fmt.Errorf("unknown curve kind %q", c.Kind)
	}
}

// Entries converts the checkpoint list for checkpoint.NewIndex.
func (s *JourneySpec) Entries() []checkpoint.Entry {
	out := make([]checkpoint.Entry, 0, len(s.Checkpoints))
	for _, c := range s.Checkpoints {
		p := checkpoint.Payload{
			Title:    c.Title,
			Date:     c.Date,
			Tag:      c.Tag,
			Text:     c.Text,
			WideText: c.WideText,
		}
		for _, img := range c.Images {
			p.Images = append(p.Images, checkpoint.Image{Src: img.Src, Tag: img.Tag})
		}
		out = append(out, checkpoint.Entry{
			ID:       c.ID,
			Curve:    paths.Name(c.Curve),
			Fraction: c.Fraction,
			Payload:  p,
		})
	}
	return out
}

// SceneConfig overlays the tuning values present in s on
// scene.DefaultConfig. An intro fraction <= 0 disables the walk-in.
func (s *JourneySpec) SceneConfig() scene.Config {
	cfg := scene.DefaultConfig()
	setIf(&cfg.Speed, s.Traveler.Speed)
	setIf(&cfg.InteractRadius, s.Interaction.Radius)
	setIf(&cfg.EndEpsilon, s.Interaction.EndEpsilon)
	setIf(&cfg.IslandEndHysteresis, s.Interaction.IslandEndHysteresis)
	setIf(&cfg.ReverseEpsilon, s.Interaction.ReverseEpsilon)
	setIf(&cfg.ReturnOffset, s.Interaction.ReturnOffset)
	setIf(&cfg.IntroFraction, s.Intro.Fraction)
	setIf(&cfg.IntroSpawnY, s.Intro.SpawnY)
	if ms := s.Interaction.MaxDTMillis; ms != nil {
		cfg.MaxDT = time.Duration(*ms) * time.Millisecond
	}
	return cfg
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (p PointSpec) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func curveBounds(b *BoundsSpec) paths.Bounds {
	if b == nil {
		return paths.Bounds{
			Width:   common.BaseWidth,
			Height:  common.BaseHeight,
			MarginX: 20,
			MarginY: 28,
		}
	}
	return paths.Bounds{Width: b.Width, Height: b.Height, MarginX: b.MarginX, MarginY: b.MarginY}
}

// Walker returns the palette of walker i, or nil.
func (p *PaletteSpec) Walker(i int) *WalkerPaletteSpec {
	if p == nil || i < 0 || i >= len(p.Walkers) {
		return nil
	}
	return &p.Walkers[i]
}

// Track returns the audio entry named name.
func (s *JourneySpec) Track(name string) (AudioSpec, bool) {
	for _, a := range s.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}

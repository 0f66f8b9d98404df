package prefabs

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// JourneySpec is the static description of a journey: its curves, the
// checkpoints along them, tuning, and decoration.
type JourneySpec struct {
	Name        string           `yaml:"name"`
	Curves      []CurveSpec      `yaml:"curves"`
	Checkpoints []CheckpointSpec `yaml:"checkpoints"`
	Traveler    TravelerSpec     `yaml:"traveler"`
	Interaction InteractionSpec  `yaml:"interaction"`
	Intro       IntroSpec        `yaml:"intro"`
	Couple      CoupleSpec       `yaml:"couple"`
	Tiles       TileSpec         `yaml:"tiles"`
	HeartRain   HeartRainSpec    `yaml:"heart_rain"`
	Signs       []SignSpec       `yaml:"signs"`
	Markers     []MarkerSpec     `yaml:"markers"`
	Palette     PaletteSpec      `yaml:"palette"`
	Audio       []AudioSpec      `yaml:"audio"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadStrictSpec is LoadSpec with unknown fields rejected.
func LoadStrictSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func LoadJourneySpec(filename string) (*JourneySpec, error) {
	if filename == "" {
		filename = DefaultJourney
	}
	spec, err := LoadSpec[JourneySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CurveSpec names a curve and the generator that samples it. Params is
// decoded according to Kind.
type CurveSpec struct {
	Name    string         `yaml:"name"`
	Kind    string         `yaml:"kind"`
	Samples int            `yaml:"samples"`
	Bounds  *BoundsSpec    `yaml:"bounds"`
	Params  map[string]any `yaml:"params"`
}

type BoundsSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	MarginX float64 `yaml:"margin_x"`
	MarginY float64 `yaml:"margin_y"`
}

type WaveSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

type BendSpec struct {
	Center float64 `yaml:"center"`
	Width  float64 `yaml:"width"`
	Shift  float64 `yaml:"shift"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type WaveCurveSpec struct {
	StartX float64    `yaml:"start_x"`
	Span   float64    `yaml:"span"`
	BaseY  float64    `yaml:"base_y"`
	Waves  []WaveSpec `yaml:"waves"`
	Bends  []BendSpec `yaml:"bends"`
}

type BezierCurveSpec struct {
	Start   PointSpec  `yaml:"start"`
	Control PointSpec  `yaml:"control"`
	End     PointSpec  `yaml:"end"`
	TMax    float64    `yaml:"t_max"`
	Wobble  []WaveSpec `yaml:"wobble"`
}

type ScriptCurveSpec struct {
	Script string             `yaml:"script"`
	Vars   map[string]float64 `yaml:"vars"`
}

type PointsCurveSpec struct {
	Points []PointSpec `yaml:"points"`
}

type ImageSpec struct {
	Src string `yaml:"src"`
	Tag string `yaml:"tag"`
}

type CheckpointSpec struct {
	ID       string      `yaml:"id"`
	Curve    string      `yaml:"curve"`
	Fraction float64     `yaml:"fraction"`
	Title    string      `yaml:"title"`
	Date     string      `yaml:"date"`
	Tag      string      `yaml:"tag"`
	Text     string      `yaml:"text"`
	Images   []ImageSpec `yaml:"images"`
	WideText bool        `yaml:"wide_text"`
}

// Tuning values are pointers so an explicit zero can be told apart from an
// omitted key.
type TravelerSpec struct {
	Speed *float64 `yaml:"speed"`
}

type InteractionSpec struct {
	Radius              *float64 `yaml:"radius"`
	EndEpsilon          *float64 `yaml:"end_epsilon"`
	IslandEndHysteresis *float64 `yaml:"island_end_hysteresis"`
	ReverseEpsilon      *float64 `yaml:"reverse_epsilon"`
	ReturnOffset        *float64 `yaml:"return_offset"`
	MaxDTMillis         *int     `yaml:"max_dt_ms"`
}

type IntroSpec struct {
	Fraction *float64 `yaml:"fraction"`
	SpawnY   *float64 `yaml:"spawn_y"`
}

// CoupleSpec controls how far apart the two walkers are drawn. Separation
// eases from Far to Near over the first ApproachFraction of the main path.
type CoupleSpec struct {
	Far              float64 `yaml:"far"`
	Near             float64 `yaml:"near"`
	ApproachFraction float64 `yaml:"approach_fraction"`
}

type TileSpec struct {
	Seed uint32 `yaml:"seed"`
}

type HeartRainSpec struct {
	Max           int     `yaml:"max"`
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// SignSpec is a text label placed at a curve fraction plus a pixel offset.
type SignSpec struct {
	Label    string  `yaml:"label"`
	Curve    string  `yaml:"curve"`
	Fraction float64 `yaml:"fraction"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

// MarkerSpec anchors a decoration either to a checkpoint or to a curve
// fraction. Kind selects the drawing.
type MarkerSpec struct {
	Kind       string   `yaml:"kind"`
	Checkpoint string   `yaml:"checkpoint"`
	Curve      string   `yaml:"curve"`
	Fraction   *float64 `yaml:"fraction"`
	OffsetX    float64  `yaml:"offset_x"`
	OffsetY    float64  `yaml:"offset_y"`
	Image      string   `yaml:"image"`
	Width      float64  `yaml:"width"`
}

type PaletteSpec struct {
	Sky              *YAMLColor          `yaml:"sky"`
	Grass            []YAMLColor         `yaml:"grass"`
	Water            []YAMLColor         `yaml:"water"`
	Flowers          []YAMLColor         `yaml:"flowers"`
	Path             *YAMLColor          `yaml:"path"`
	PathEdge         *YAMLColor          `yaml:"path_edge"`
	PathLight        *YAMLColor          `yaml:"path_light"`
	Checkpoint       *YAMLColor          `yaml:"checkpoint"`
	CheckpointNear   *YAMLColor          `yaml:"checkpoint_near"`
	SignBackground   *YAMLColor          `yaml:"sign_bg"`
	SignInk          *YAMLColor          `yaml:"sign_ink"`
	BubbleBackground *YAMLColor          `yaml:"bubble_bg"`
	BubbleInk        *YAMLColor          `yaml:"bubble_ink"`
	Walkers          []WalkerPaletteSpec `yaml:"walkers"`
	Hearts           []YAMLColor         `yaml:"hearts"`
}

type WalkerPaletteSpec struct {
	Skin   *YAMLColor `yaml:"skin"`
	Hair   *YAMLColor `yaml:"hair"`
	Shirt  *YAMLColor `yaml:"shirt"`
	Pants  *YAMLColor `yaml:"pants"`
	Pants2 *YAMLColor `yaml:"pants2"`
	Shoes  *YAMLColor `yaml:"shoes"`
	Sprite string     `yaml:"sprite"`
	// GroundOffset and HeightScale adjust the sprite when one is loaded.
	GroundOffset float64 `yaml:"ground_offset"`
	HeightScale  float64 `yaml:"height_scale"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// DecodeSpec re-decodes a loosely typed YAML value into T.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns c, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

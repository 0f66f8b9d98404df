package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/checkpoint"
	"github.com/milk9111/journey/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaultJourney(t *testing.T) {
	j, err := LoadJourney("")
	require.NoError(t, err)

	assert.Equal(t, []paths.Name{paths.Island, paths.Main}, j.Registry.Names())
	assert.Equal(t, 9, j.Index.Len())
	assert.Len(t, j.Index.ForCurve(paths.Main), 8)
	assert.Len(t, j.Index.ForCurve(paths.Island), 1)

	assert.Equal(t, 95.0, j.Config.Speed)
	assert.Equal(t, 18.0, j.Config.InteractRadius)
	assert.Equal(t, 50*time.Millisecond, j.Config.MaxDT)
	assert.Equal(t, 0.04, j.Config.IntroFraction)
}

func TestDefaultJourneyMatchesBuiltinCurves(t *testing.T) {
	j, err := LoadJourney(DefaultJourney)
	require.NoError(t, err)

	cases := []struct {
		name paths.Name
		gen  paths.Generator
	}{
		{paths.Main, paths.DefaultMain()},
		{paths.Island, paths.DefaultIsland()},
	}
	for _, c := range cases {
		t.Run(string(c.name), func(t *testing.T) {
			want, err := c.gen.Points()
			require.NoError(t, err)
			curve, ok := j.Registry.Curve(c.name)
			require.True(t, ok)
			got := curve.Sampler.Points()
			require.Len(t, got, len(want))
			for i := range want {
				assert.InDelta(t, want[i].X, got[i].X, 1e-9)
				assert.InDelta(t, want[i].Y, got[i].Y, 1e-9)
			}
		})
	}
}

func TestDefaultJourneyPayloads(t *testing.T) {
	j, err := LoadJourney("")
	require.NoError(t, err)

	adventures, ok := j.Index.Get("cp-8")
	require.True(t, ok)
	assert.Equal(t, checkpoint.PayloadGallery, adventures.Payload.Kind())
	assert.Equal(t, "Whistler", adventures.Payload.TagFor(0))
	assert.Equal(t, "Cypress Mt", adventures.Payload.TagFor(1))

	bowen, ok := j.Index.Get("cp-2")
	require.True(t, ok)
	assert.True(t, bowen.Payload.WideText)
	assert.Equal(t, checkpoint.PayloadSingle, bowen.Payload.Kind())

	isle, ok := j.Index.Get("isle-1")
	require.True(t, ok)
	assert.Empty(t, isle.Payload.Images)
	assert.Equal(t, "Somewhere New", isle.Payload.TagFor(0))
}

func TestDefaultJourneyDecorations(t *testing.T) {
	j, err := LoadJourney("")
	require.NoError(t, err)

	require.Len(t, j.Signs, 2)
	main, _ := j.Registry.Curve(paths.Main)
	end := main.PositionAt(main.TotalLength())
	assert.Equal(t, "Feb 2026", j.Signs[1].Label)
	assert.InDelta(t, end.X+8, j.Signs[1].Pos.X, 1e-9)
	assert.InDelta(t, end.Y-14, j.Signs[1].Pos.Y, 1e-9)

	require.Len(t, j.Markers, 3)
	getaway, _ := j.Index.Get("cp-5")
	tent := j.Markers[1]
	assert.Equal(t, "tent", tent.Kind)
	assert.InDelta(t, getaway.Pos.X+50, tent.Pos.X, 1e-9)
	assert.InDelta(t, getaway.Pos.Y+50, tent.Pos.Y, 1e-9)

	require.Len(t, j.Spec.Palette.Walkers, 2)
	assert.Equal(t, 1.07, j.Spec.Palette.Walker(1).HeightScale)
	assert.Nil(t, j.Spec.Palette.Walker(2))

	track, ok := j.Spec.Track("music")
	require.True(t, ok)
	assert.Equal(t, "motion.mp3", track.File)
}

func TestScriptedJourney(t *testing.T) {
	j, err := LoadJourney("journey_spiral.yaml")
	require.NoError(t, err)

	main, ok := j.Registry.Curve(paths.Main)
	require.True(t, ok)
	assert.Equal(t, 161, main.Sampler.Len())
	assert.Greater(t, main.TotalLength(), 0.0)

	island, ok := j.Registry.Curve(paths.Island)
	require.True(t, ok)
	assert.Equal(t, 4, island.Sampler.Len())

	assert.Equal(t, 110.0, j.Config.Speed)
	assert.Less(t, j.Config.IntroFraction, 0.0)
	assert.Equal(t, 18.0, j.Config.InteractRadius)
}

func TestBuildJourneyReportsEveryProblem(t *testing.T) {
	frac := 0.5
	spec := &JourneySpec{
		Name: "broken",
		Curves: []CurveSpec{
			{Name: "island", Kind: KindPoints, Params: map[string]any{
				"points": []any{map[string]any{"x": 0, "y": 0}, map[string]any{"x": 10, "y": 0}},
			}},
			{Name: "swirl", Kind: "spiral"},
		},
		Traveler:    TravelerSpec{Speed: ptr(-95.0)},
		Interaction: InteractionSpec{
			Radius:              ptr(-18.0),
			EndEpsilon:          ptr(-1.0),
			IslandEndHysteresis: ptr(-60.0),
		},
		Checkpoints: []CheckpointSpec{
			{ID: "a", Curve: "island", Fraction: 0.2},
			{ID: "a", Curve: "island", Fraction: 0.4},
		},
		Signs:   []SignSpec{{Label: "lost", Curve: "nowhere"}},
		Markers: []MarkerSpec{{Kind: "floating"}, {Kind: "cafe", Curve: "nowhere", Fraction: &frac}},
	}

	_, err := BuildJourney(spec)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		`unknown curve kind "spiral"`,
		`no "main" curve`,
		`duplicate id`,
		`sign "lost": unknown curve`,
		`marker "floating": needs a checkpoint or a fraction`,
		`marker "cafe": unknown curve "nowhere"`,
		`speed must be positive, got -95`,
		`radius must be positive, got -18`,
		`end_epsilon must not be negative, got -1`,
		`island_end_hysteresis must not be negative, got -60`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestBuildJourneyNil(t *testing.T) {
	_, err := BuildJourney(nil)
	assert.Error(t, err)
}

func TestBezierWobbleLimit(t *testing.T) {
	spec := &JourneySpec{}
	_, err := spec.Generator(CurveSpec{Name: "island", Kind: KindBezier, Params: map[string]any{
		"wobble": []any{
			map[string]any{"amplitude": 1, "frequency": 1},
			map[string]any{"amplitude": 1, "frequency": 2},
			map[string]any{"amplitude": 1, "frequency": 3},
		},
	}})
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestSceneConfigOverlay(t *testing.T) {
	spec := &JourneySpec{
		Traveler:    TravelerSpec{Speed: ptr(120.0)},
		Interaction: InteractionSpec{Radius: ptr(24.0), MaxDTMillis: ptr(33)},
	}
	cfg := spec.SceneConfig()
	assert.Equal(t, 120.0, cfg.Speed)
	assert.Equal(t, 24.0, cfg.InteractRadius)
	assert.Equal(t, 33*time.Millisecond, cfg.MaxDT)
	// untouched fields keep their defaults
	assert.Equal(t, 3.0, cfg.EndEpsilon)
	assert.Equal(t, 8.0, cfg.ReturnOffset)
}

func TestSceneConfigExplicitZero(t *testing.T) {
	spec, err := LoadJourneySpec("")
	require.NoError(t, err)
	spec.Interaction.EndEpsilon = ptr(0.0)
	spec.Interaction.ReturnOffset = ptr(0.0)

	j, err := BuildJourney(spec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, j.Config.EndEpsilon)
	assert.Equal(t, 0.0, j.Config.ReturnOffset)
}

func TestBuildJourneyRejectsReturnOffsetPastMain(t *testing.T) {
	spec, err := LoadJourneySpec("")
	require.NoError(t, err)
	spec.Interaction.ReturnOffset = ptr(1e6)

	_, err = BuildJourney(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return_offset")
}

func TestLoadJourneyFromExternalFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tiny.yaml")
	body := `
name: tiny
curves:
  - name: main
    kind: points
    params:
      points: [{x: 0, y: 0}, {x: 100, y: 0}]
checkpoints:
  - {id: only, curve: main, fraction: 0.5}
`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	j, err := LoadJourney(file)
	require.NoError(t, err)
	only, ok := j.Index.Get("only")
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 50, Y: 0}, only.Pos)

	_, ok = ModTime(file)
	assert.True(t, ok)
}

func TestLoadStrictSpecRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: x\ncurvez: []\n"), 0o644))

	_, err := LoadStrictSpec[JourneySpec](file)
	assert.Error(t, err)

	_, err = LoadSpec[JourneySpec](file)
	assert.NoError(t, err)
}

func TestEmbeddedNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Contains(t, names, "journey.yaml")
	assert.Contains(t, names, "journey_spiral.yaml")

	src, err := LoadScript("prefabs/scripts/spiral.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "sample")
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#2a3548"`, color.NRGBA{R: 0x2a, G: 0x35, B: 0x48, A: 0xff}, false},
		{"rgba", `"#ff000080"`, color.NRGBA{R: 0xff, A: 0x80}, false},
		{"no_hash", `"e8b858"`, color.NRGBA{R: 0xe8, G: 0xb8, B: 0x58, A: 0xff}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"list", `[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}

	var unset *YAMLColor
	assert.Equal(t, color.White, unset.Or(color.White))
}

func TestWatcherSkipsMissingDirs(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, w.Pending())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	var none *Watcher
	assert.Nil(t, none.Pending())
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "journey.yaml"), []byte("name: x\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Pending()...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)
	for _, name := range got {
		assert.Equal(t, "journey.yaml", filepath.Base(name))
	}
}

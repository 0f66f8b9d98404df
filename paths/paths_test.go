package paths

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMainPath(t *testing.T) {
	gen := DefaultMain()
	pts, err := gen.Points()
	require.NoError(t, err)
	require.Len(t, pts, gen.Samples+1)

	assert.InDelta(t, 45, pts[0].X, 1e-9)
	assert.InDelta(t, 135, pts[0].Y, 1e-9)

	for i, p := range pts {
		assert.GreaterOrEqual(t, p.X, gen.Bounds.MarginX, "point %d", i)
		assert.LessOrEqual(t, p.X, gen.Bounds.Width-gen.Bounds.MarginX, "point %d", i)
		assert.GreaterOrEqual(t, p.Y, gen.Bounds.MarginY, "point %d", i)
		assert.LessOrEqual(t, p.Y, gen.Bounds.Height-gen.Bounds.MarginY, "point %d", i)
	}
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i-1].Distance(pts[i]), 0.0, "segment %d has zero length", i-1)
	}
}

func TestWaveBendShiftsLeft(t *testing.T) {
	plain := DefaultMain()
	plain.Bends = nil
	bent := DefaultMain()

	a, err := plain.Points()
	require.NoError(t, err)
	b, err := bent.Points()
	require.NoError(t, err)

	// t = 0.6 is sample 72 of 120
	assert.InDelta(t, a[72].X-42, b[72].X, 1e-9)
	assert.InDelta(t, a[0].X, b[0].X, 1e-9)
	assert.InDelta(t, a[120].X, b[120].X, 1e-9)
	assert.InDelta(t, a[72].Y, b[72].Y, 1e-9)
}

func TestBendOffset(t *testing.T) {
	b := Bend{Center: 0.5, Width: 0.2, Shift: 10}
	cases := []struct {
		t    float64
		want float64
	}{
		{0.5, 10},
		{0.6, 2.5},
		{0.4, 2.5},
		{0.7, 0},
		{0.1, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, b.offset(c.t), 1e-9, "t=%v", c.t)
	}
	assert.Equal(t, 0.0, Bend{}.offset(0.5))
}

func TestDefaultIslandPath(t *testing.T) {
	gen := DefaultIsland()
	pts, err := gen.Points()
	require.NoError(t, err)
	require.Len(t, pts, gen.Samples+1)

	assert.InDelta(t, gen.Start.X, pts[0].X, 1e-9)
	assert.InDelta(t, gen.Start.Y, pts[0].Y, 1e-9)
	assert.InDelta(t, gen.End.Y, pts[len(pts)-1].Y, 1e-9)
	assert.Less(t, pts[len(pts)-1].X, gen.End.X)

	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].X, pts[i-1].X, "x must increase at %d", i)
	}

	// the valley dips below both anchors
	lowest := pts[0].Y
	for _, p := range pts {
		lowest = math.Max(lowest, p.Y)
	}
	assert.Greater(t, lowest, gen.Start.Y+40)
}

func TestScriptPath(t *testing.T) {
	src := []byte(`
math := import("math")
sample := func(t) {
	return [20 + t * 100, height / 2 + amp * math.sin(t * math.pi)]
}
`)
	gen := ScriptPath{
		Name:    "arch",
		Source:  src,
		Samples: 10,
		Params:  map[string]float64{"amp": 10},
		Bounds:  Bounds{Width: 200, Height: 100},
	}
	pts, err := gen.Points()
	require.NoError(t, err)
	require.Len(t, pts, 11)
	assert.InDelta(t, 20, pts[0].X, 1e-9)
	assert.InDelta(t, 50, pts[0].Y, 1e-9)
	assert.InDelta(t, 70, pts[5].X, 1e-9)
	assert.InDelta(t, 60, pts[5].Y, 1e-9)
	assert.InDelta(t, 120, pts[10].X, 1e-9)
}

func TestScriptPathMapSize(t *testing.T) {
	gen := ScriptPath{
		Name:    "corner",
		Source:  []byte("sample := func(t) { return [width * t, height] }\n"),
		Samples: 2,
		Bounds:  Bounds{Width: 480, Height: 270},
	}
	pts, err := gen.Points()
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, cp.Vector{X: 480, Y: 270}, pts[2])
	assert.Equal(t, cp.Vector{X: 240, Y: 270}, pts[1])
}

func TestScriptPathErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `sample := func(t) { return [`},
		{"missing_sample", `x := 1`},
		{"wrong_shape", `sample := func(t) { return [1, 2, 3] }`},
		{"not_numbers", `sample := func(t) { return ["a", 2] }`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ScriptPath{Name: c.name, Source: []byte(c.src), Samples: 2}.Points()
			assert.Error(t, err)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	c, err := r.Build(Main, Fixed{{X: 0, Y: 0}, {X: 30, Y: 40}})
	require.NoError(t, err)
	assert.InDelta(t, 50, c.TotalLength(), 1e-9)

	got, ok := r.Curve(Main)
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = r.Curve(Island)
	assert.False(t, ok)

	_, err = r.Build(Main, Fixed{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Error(t, err, "duplicate name")

	_, err = r.Build(Island, Fixed{{X: 0, Y: 0}})
	assert.Error(t, err, "too few points")

	_, err = r.Build("", Fixed{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Error(t, err)

	assert.Equal(t, []Name{Main}, r.Names())
	assert.Equal(t, cp.Vector{X: 15, Y: 20}, c.PositionAt(25))
}

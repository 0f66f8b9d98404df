package paths

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

const scriptDispatch = `
__out := sample(__t)
`

// ScriptPath samples a tengo script. The script must define
// `sample := func(t) { return [x, y] }`; `width` and `height` hold the map
// size and every entry of Params is exposed as a global of the same name.
type ScriptPath struct {
	Name    string
	Source  []byte
	Samples int
	Params  map[string]float64
	Bounds  Bounds
}

func (g ScriptPath) Points() ([]cp.Vector, error) {
	script := tengo.NewScript(append(append([]byte(nil), g.Source...), []byte(scriptDispatch)...))
	globals := map[string]any{
		"__t":    0.0,
		"width":  g.Bounds.Width,
		"height": g.Bounds.Height,
	}
	for k, v := range globals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("paths: script %s: global %q: %w", g.Name, k, err)
		}
	}
	for k, v := range g.Params {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("paths: script %s: param %q: %w", g.Name, k, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("paths: script %s: compile: %w", g.Name, err)
	}

	n := max(1, g.Samples)
	pts := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		if err := compiled.Set("__t", t); err != nil {
			return nil, fmt.Errorf("paths: script %s: %w", g.Name, err)
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("paths: script %s: sample(%v): %w", g.Name, t, err)
		}
		p, err := scriptPoint(compiled.Get("__out"))
		if err != nil {
			return nil, fmt.Errorf("paths: script %s: sample(%v): %w", g.Name, t, err)
		}
		pts = append(pts, g.Bounds.clamp(p))
	}
	return pts, nil
}

func scriptPoint(v *tengo.Variable) (cp.Vector, error) {
	if v == nil || v.IsUndefined() {
		return cp.Vector{}, fmt.Errorf("sample returned nothing")
	}
	arr := v.Array()
	if len(arr) != 2 {
		return cp.Vector{}, fmt.Errorf("sample must return [x, y], got %v", v.Value())
	}
	x, ok := toFloat(arr[0])
	if !ok {
		return cp.Vector{}, fmt.Errorf("x is not a number: %v", arr[0])
	}
	y, ok := toFloat(arr[1])
	if !ok {
		return cp.Vector{}, fmt.Errorf("y is not a number: %v", arr[1])
	}
	return cp.Vector{X: x, Y: y}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

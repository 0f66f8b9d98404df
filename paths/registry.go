package paths

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/geom"
)

// Name identifies a curve in the registry.
type Name string

const (
	Main   Name = "main"
	Island Name = "island"
)

// Curve is a named, sampled path.
type Curve struct {
	Name    Name
	Sampler *geom.Sampler
}

func (c *Curve) TotalLength() float64 {
	if c == nil || c.Sampler == nil {
		return 0
	}
	return c.Sampler.TotalLength()
}

func (c *Curve) PositionAt(s float64) cp.Vector {
	return c.Sampler.PositionAt(s)
}

func (c *Curve) TangentAt(s float64) geom.Tangent {
	return c.Sampler.TangentAt(s)
}

// Registry holds the curves of a journey. It is filled once at startup.
type Registry struct {
	curves map[Name]*Curve
}

func NewRegistry() *Registry {
	return &Registry{curves: make(map[Name]*Curve)}
}

// Build samples gen and registers the result under name.
func (r *Registry) Build(name Name, gen Generator) (*Curve, error) {
	if name == "" {
		return nil, fmt.Errorf("paths: empty curve name")
	}
	if _, ok := r.curves[name]; ok {
		return nil, fmt.Errorf("paths: curve %q already registered", name)
	}
	pts, err := gen.Points()
	if err != nil {
		return nil, fmt.Errorf("paths: build %q: %w", name, err)
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("paths: build %q: need at least 2 points, got %d", name, len(pts))
	}
	c := &Curve{Name: name, Sampler: geom.NewSampler(pts)}
	r.curves[name] = c
	return c, nil
}

func (r *Registry) Curve(name Name) (*Curve, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.curves[name]
	return c, ok
}

// Names returns the registered curve names in sorted order.
func (r *Registry) Names() []Name {
	if r == nil {
		return nil
	}
	names := make([]Name, 0, len(r.curves))
	for n := range r.curves {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

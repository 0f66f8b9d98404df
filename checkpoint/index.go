package checkpoint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/journey/geom"
	"github.com/milk9111/journey/paths"
)

// Entry is one configured checkpoint before it is resolved against a curve.
type Entry struct {
	ID       string
	Curve    paths.Name
	Fraction float64
	Payload  Payload
}

// Checkpoint is a resolved point of interest. It is never mutated after the
// index is built.
type Checkpoint struct {
	ID       string
	Curve    paths.Name
	Fraction float64
	S        float64
	Pos      cp.Vector
	Payload  Payload
}

// Index holds every checkpoint of a journey, grouped per curve and ordered
// by arc-length.
type Index struct {
	all     []*Checkpoint
	byID    map[string]*Checkpoint
	byCurve map[paths.Name][]*Checkpoint
}

// NewIndex resolves entries to world positions on their curves.
func NewIndex(reg *paths.Registry, entries []Entry) (*Index, error) {
	idx := &Index{
		byID:    make(map[string]*Checkpoint, len(entries)),
		byCurve: make(map[paths.Name][]*Checkpoint),
	}

	var errs []error
	for i, e := range entries {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("checkpoint %d: empty id", i))
			continue
		}
		if _, dup := idx.byID[e.ID]; dup {
			errs = append(errs, fmt.Errorf("checkpoint %q: duplicate id", e.ID))
			continue
		}
		curve, ok := reg.Curve(e.Curve)
		if !ok {
			errs = append(errs, fmt.Errorf("checkpoint %q: unknown curve %q", e.ID, e.Curve))
			continue
		}

		frac := geom.Clamp(e.Fraction, 0, 1)
		s := frac * curve.TotalLength()
		c := &Checkpoint{
			ID:       e.ID,
			Curve:    e.Curve,
			Fraction: frac,
			S:        s,
			Pos:      curve.PositionAt(s),
			Payload:  e.Payload,
		}
		idx.all = append(idx.all, c)
		idx.byID[c.ID] = c
		idx.byCurve[c.Curve] = append(idx.byCurve[c.Curve], c)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("checkpoint: build index: %w", errors.Join(errs...))
	}

	for _, list := range idx.byCurve {
		sort.SliceStable(list, func(i, j int) bool { return list[i].S < list[j].S })
	}
	return idx, nil
}

// ForCurve returns the checkpoints bound to name in arc-length order.
func (idx *Index) ForCurve(name paths.Name) []*Checkpoint {
	if idx == nil {
		return nil
	}
	return idx.byCurve[name]
}

func (idx *Index) Get(id string) (*Checkpoint, bool) {
	if idx == nil {
		return nil, false
	}
	c, ok := idx.byID[id]
	return c, ok
}

// All returns checkpoints in configuration order.
func (idx *Index) All() []*Checkpoint {
	if idx == nil {
		return nil
	}
	return idx.all
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.all)
}

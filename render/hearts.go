package render

import (
	"math"
	"math/rand"

	"github.com/milk9111/journey/common"
)

const (
	defaultHeartMax      = 55
	defaultHeartInterval = 0.12
)

// Heart is one falling heart particle.
type Heart struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Phase  float64
	Hue    int
}

// HeartRain spawns falling hearts at a rate that grows with the share of
// passed checkpoints.
type HeartRain struct {
	Max      int
	Interval float64
	Width    float64
	Height   float64

	rng   *rand.Rand
	accum float64
	parts []Heart
}

func NewHeartRain(max int, interval float64, rng *rand.Rand) *HeartRain {
	if max <= 0 {
		max = defaultHeartMax
	}
	if interval <= 0 {
		interval = defaultHeartInterval
	}
	return &HeartRain{
		Max:      max,
		Interval: interval,
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		rng:      rng,
	}
}

// Intensity is passed/total, or 0 with no checkpoints.
func Intensity(passed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(passed) / float64(total)
}

// Update moves particles and spawns new ones. It keeps running while popups are
// open.
func (h *HeartRain) Update(dt float64, passed, total int) {
	limit := int(math.Round(float64(h.Max) * Intensity(passed, total)))
	kept := h.parts[:0]
	for _, p := range h.parts {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Y <= h.Height+15 {
			kept = append(kept, p)
		}
	}
	h.parts = kept

	if passed > 0 {
		interval := h.Interval * float64(total) / float64(passed)
		h.accum += dt
		for h.accum >= interval && len(h.parts) < limit {
			h.accum -= interval
			h.spawn()
		}
		h.accum = math.Min(h.accum, interval)
	} else {
		h.accum = 0
	}

	if passed == 0 && len(h.parts) > limit {
		h.parts = h.parts[:limit]
	}
}

func (h *HeartRain) spawn() {
	r := h.rng.Float64
	hue := 2
	if v := r(); v < 0.33 {
		hue = 0
	} else if v < 0.66 {
		hue = 1
	}
	h.parts = append(h.parts, Heart{
		X:     r()*(h.Width+20) - 10,
		Y:     -8 - r()*15,
		VY:    35 + r()*45,
		VX:    (r() - 0.5) * 12,
		Alpha: 0.72 + r()*0.26,
		Hue:   hue,
		Phase: r() * 2 * math.Pi,
	})
}

func (h *HeartRain) Particles() []Heart {
	return h.parts
}

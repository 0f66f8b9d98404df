package scene

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config holds the tuning constants of the state machine. It is read once
// when a session is created.
type Config struct {
	// Speed is the traveler speed in world units per second.
	Speed float64
	// InteractRadius is the distance under which a checkpoint counts as
	// nearby.
	InteractRadius float64
	// EndEpsilon is how close to the end of a curve counts as arrived.
	EndEpsilon float64
	// IslandEndHysteresis is how far the traveler must retreat from the end
	// of the island before its end notice can fire again.
	IslandEndHysteresis float64
	// ReverseEpsilon is how close to the start of the island a backward
	// step returns to the main path.
	ReverseEpsilon float64
	// ReturnOffset is how far before the end of the main path the traveler
	// reappears when leaving the island.
	ReturnOffset float64
	// IntroFraction and IntroSpawnY shape the walk-in at the start of the
	// main path. IntroFraction <= 0 disables it.
	IntroFraction float64
	IntroSpawnY   float64
	// MaxDT bounds a single frame step.
	MaxDT time.Duration
	// Debug enables scene transition logging.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Speed:               95,
		InteractRadius:      18,
		EndEpsilon:          3,
		IslandEndHysteresis: 60,
		ReverseEpsilon:      0.5,
		ReturnOffset:        8,
		IntroFraction:       0.04,
		IntroSpawnY:         30,
		MaxDT:               50 * time.Millisecond,
	}
}

// Validate reports every tuning value outside its usable range.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	positive("speed", c.Speed)
	positive("radius", c.InteractRadius)
	nonNegative("end_epsilon", c.EndEpsilon)
	nonNegative("island_end_hysteresis", c.IslandEndHysteresis)
	nonNegative("reverse_epsilon", c.ReverseEpsilon)
	nonNegative("return_offset", c.ReturnOffset)
	if c.MaxDT <= 0 {
		errs = append(errs, fmt.Errorf("max_dt_ms must be positive, got %v", c.MaxDT))
	}
	return errors.Join(errs...)
}

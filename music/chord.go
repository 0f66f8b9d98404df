package music

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	chordInterval = 520 * time.Millisecond
	noteAttack    = 0.08
	noteDecay     = 1.2
	noteLength    = 1.25
	notePeak      = 0.15
	noteFloor     = 0.001
)

// Chords is the progression the fallback loop cycles through.
var Chords = [][]float64{
	{261.63, 329.63, 392},
	{293.66, 369.99, 440},
	{329.63, 415.3, 493.88},
	{349.23, 440, 523.25},
	{392, 493.88, 587.33},
	{261.63, 329.63, 392},
}

// envelope is the gain of a note t seconds after it starts: a linear
// attack to notePeak, then an exponential fall to noteFloor at noteDecay.
func envelope(t float64) float64 {
	switch {
	case t < 0 || t >= noteLength:
		return 0
	case t < noteAttack:
		return notePeak * t / noteAttack
	default:
		k := (t - noteAttack) / (noteDecay - noteAttack)
		return notePeak * math.Pow(noteFloor/notePeak, k)
	}
}

// ChordLoop is an endless sine-pad streamer. A new chord starts every
// chordInterval and rings for noteLength, so neighbouring chords overlap.
type ChordLoop struct {
	sr       beep.SampleRate
	chords   [][]float64
	interval int
	pos      int
}

func NewChordLoop(sr beep.SampleRate) *ChordLoop {
	return &ChordLoop{
		sr:       sr,
		chords:   Chords,
		interval: sr.N(chordInterval),
	}
}

func (g *ChordLoop) Stream(samples [][2]float64) (n int, ok bool) {
	ring := int(math.Ceil(noteLength * float64(g.sr) / float64(g.interval)))
	for i := range samples {
		v := 0.0
		current := g.pos / g.interval
		for k := current; k >= 0 && k > current-ring; k-- {
			t := float64(g.pos-k*g.interval) / float64(g.sr)
			env := envelope(t)
			if env == 0 {
				continue
			}
			for _, f := range g.chords[k%len(g.chords)] {
				v += env * math.Sin(2*math.Pi*f*t)
			}
		}
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChordLoop) Err() error {
	return nil
}

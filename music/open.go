package music

import (
	"io"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/journey/assets"
	"github.com/milk9111/journey/prefabs"
)

// StreamSource decodes named audio files.
type StreamSource interface {
	AudioStream(name string) (io.ReadSeeker, error)
}

type lengther interface {
	Length() int64
}

// Open builds the controller for a journey. master scales both volumes. A
// missing track falls back to the chord loop.
func Open(ctx *audio.Context, src StreamSource, spec *prefabs.JourneySpec, master float64) *Music {
	trackSpec, _ := spec.Track("music")
	fallbackSpec, _ := spec.Track("fallback")

	var track Player
	if trackSpec.File != "" {
		p, err := openTrack(ctx, src, trackSpec.File)
		switch {
		case err == nil:
			track = p
		case assets.IsNotExist(err):
			log.Printf("music: %q not found, using chord loop", trackSpec.File)
		default:
			log.Printf("music: load %q: %v", trackSpec.File, err)
		}
	}

	var fallback Player
	chords := newStreamReader(NewChordLoop(beep.SampleRate(ctx.SampleRate())))
	if p, err := ctx.NewPlayerF32(chords); err != nil {
		log.Printf("music: chord loop: %v", err)
	} else {
		fallback = p
	}

	m := New(track, trackSpec.Volume, fallback, fallbackSpec.Volume)
	m.SetMaster(master)
	return m
}

func openTrack(ctx *audio.Context, src StreamSource, name string) (*audio.Player, error) {
	stream, err := src.AudioStream(name)
	if err != nil {
		return nil, err
	}
	if l, ok := stream.(lengther); ok && l.Length() > 0 {
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, l.Length()))
	}
	return ctx.NewPlayer(stream)
}

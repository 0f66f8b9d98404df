package music

import (
	"log"
)

const defaultFadeFrames = 30

// Player is the subset of *audio.Player the controller drives.
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Source names what is currently audible.
type Source string

const (
	SourceNone     Source = ""
	SourceTrack    Source = "track"
	SourceFallback Source = "fallback"
)

// Music switches between a streamed track and the synthesised fallback.
// The track wins when it loaded; otherwise the chord loop plays. Turning
// music off fades out over FadeFrames ticks and then pauses.
type Music struct {
	FadeFrames int

	track          Player
	trackVolume    float64
	fallback       Player
	fallbackVolume float64

	on       bool
	volume   float64
	fadeStep float64
}

// New builds a controller. Either player may be nil.
func New(track Player, trackVolume float64, fallback Player, fallbackVolume float64) *Music {
	return &Music{
		FadeFrames:     defaultFadeFrames,
		track:          track,
		trackVolume:    clampVolume(trackVolume),
		fallback:       fallback,
		fallbackVolume: clampVolume(fallbackVolume),
	}
}

func (m *Music) On() bool { return m.on }

// Source reports which player is active while music is on.
func (m *Music) Source() Source {
	switch {
	case !m.on:
		return SourceNone
	case m.track != nil:
		return SourceTrack
	case m.fallback != nil:
		return SourceFallback
	default:
		return SourceNone
	}
}

func (m *Music) active() (Player, float64) {
	if m.track != nil {
		return m.track, m.trackVolume
	}
	return m.fallback, m.fallbackVolume
}

// SetOn starts playback immediately or begins the fade out.
func (m *Music) SetOn(on bool) {
	if on == m.on {
		return
	}
	m.on = on
	p, target := m.active()
	if p == nil {
		if on {
			log.Printf("music: no track or fallback available")
		}
		return
	}
	if on {
		m.fadeStep = 0
		m.volume = target
		if err := p.Rewind(); err != nil {
			log.Printf("music: rewind: %v", err)
		}
		p.SetVolume(m.volume)
		p.Play()
		return
	}
	frames := m.FadeFrames
	if frames <= 0 {
		frames = defaultFadeFrames
	}
	m.fadeStep = m.volume / float64(frames)
	if m.fadeStep <= 0 {
		m.fadeStep = 1
	}
}

// Toggle flips music and returns the new state.
func (m *Music) Toggle() bool {
	m.SetOn(!m.on)
	return m.on
}

// Update advances a fade out by one tick and restarts a finished track.
func (m *Music) Update() {
	p, _ := m.active()
	if p == nil {
		return
	}
	if m.fadeStep > 0 {
		m.volume -= m.fadeStep
		if m.volume > 0 {
			p.SetVolume(m.volume)
			return
		}
		m.volume = 0
		m.fadeStep = 0
		p.SetVolume(0)
		p.Pause()
		return
	}
	if m.on && !p.IsPlaying() {
		if err := p.Rewind(); err != nil {
			log.Printf("music: rewind: %v", err)
		}
		p.Play()
	}
}

// Volume is the current output volume of the active player.
func (m *Music) Volume() float64 { return m.volume }

// SetMaster scales both sources by master. Zero silences them; values at or
// above 1 leave them as configured. Call it before SetOn.
func (m *Music) SetMaster(master float64) {
	m.trackVolume = scaleVolume(m.trackVolume, master)
	m.fallbackVolume = scaleVolume(m.fallbackVolume, master)
}

func scaleVolume(v, master float64) float64 {
	if master >= 0 && master < 1 {
		return v * master
	}
	return v
}

func clampVolume(v float64) float64 {
	if v <= 0 || v > 1 {
		return 1
	}
	return v
}

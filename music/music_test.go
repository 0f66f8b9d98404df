package music

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
	rewinds int
}

func (p *fakePlayer) Play()               { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) Rewind() error       { p.rewinds++; return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 0.0, envelope(-0.1))
	assert.Equal(t, 0.0, envelope(0))
	assert.InDelta(t, notePeak/2, envelope(noteAttack/2), 1e-12)
	assert.InDelta(t, notePeak, envelope(noteAttack), 1e-12)
	assert.InDelta(t, noteFloor, envelope(noteDecay), 1e-12)
	assert.Equal(t, 0.0, envelope(noteLength))
	assert.Less(t, envelope(0.5), envelope(0.2))
}

func TestChordLoopStream(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewChordLoop(sr)
	require.Equal(t, sr.N(chordInterval), g.interval)

	samples := make([][2]float64, sr.N(chordInterval)*4)
	n, ok := g.Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)
	assert.NoError(t, g.Err())

	assert.Equal(t, 0.0, samples[0][0])
	loud := 0.0
	for i, s := range samples {
		assert.Equal(t, s[0], s[1], "sample %d", i)
		// three overlapping chords of three notes at most
		assert.LessOrEqual(t, math.Abs(s[0]), 9*notePeak)
		loud = math.Max(loud, math.Abs(s[0]))
	}
	assert.Greater(t, loud, 0.1)
}

type finiteStreamer struct {
	left int
}

func (f *finiteStreamer) Stream(samples [][2]float64) (int, bool) {
	if f.left == 0 {
		return 0, false
	}
	n := min(len(samples), f.left)
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{0.5, -0.25}
	}
	f.left -= n
	return n, true
}

func (f *finiteStreamer) Err() error { return nil }

func TestStreamReaderPCM(t *testing.T) {
	r := newStreamReader(&finiteStreamer{left: 3})

	// an odd buffer size splits a frame across reads
	first := make([]byte, 5)
	n, err := r.Read(first)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	all := append(first, rest...)
	require.Len(t, all, 3*frameBytes)

	for i := 0; i < 3; i++ {
		l := math.Float32frombits(binary.LittleEndian.Uint32(all[i*frameBytes:]))
		rr := math.Float32frombits(binary.LittleEndian.Uint32(all[i*frameBytes+4:]))
		assert.Equal(t, float32(0.5), l)
		assert.Equal(t, float32(-0.25), rr)
	}
}

func TestMusicPrefersTrack(t *testing.T) {
	track, fallback := &fakePlayer{}, &fakePlayer{}
	m := New(track, 0.5, fallback, 0.12)
	assert.Equal(t, SourceNone, m.Source())

	assert.True(t, m.Toggle())
	assert.Equal(t, SourceTrack, m.Source())
	assert.True(t, track.playing)
	assert.Equal(t, 0.5, track.volume)
	assert.False(t, fallback.playing)
}

func TestMusicFallback(t *testing.T) {
	fallback := &fakePlayer{}
	m := New(nil, 0.5, fallback, 0.12)
	m.SetOn(true)
	assert.Equal(t, SourceFallback, m.Source())
	assert.True(t, fallback.playing)
	assert.Equal(t, 0.12, fallback.volume)
}

func TestMusicFadesOut(t *testing.T) {
	track := &fakePlayer{}
	m := New(track, 0.6, nil, 0)
	m.FadeFrames = 3
	m.SetOn(true)

	assert.False(t, m.Toggle())
	m.Update()
	assert.InDelta(t, 0.4, track.volume, 1e-9)
	assert.True(t, track.playing)
	m.Update()
	m.Update()
	assert.Equal(t, 0.0, track.volume)
	assert.False(t, track.playing)

	// nothing restarts while off
	m.Update()
	assert.False(t, track.playing)
}

func TestMusicRestartsFinishedTrack(t *testing.T) {
	track := &fakePlayer{}
	m := New(track, 1, nil, 0)
	m.SetOn(true)
	track.playing = false
	m.Update()
	assert.True(t, track.playing)
	assert.Equal(t, 2, track.plays)
}

func TestMusicWithoutPlayers(t *testing.T) {
	m := New(nil, 0, nil, 0)
	m.SetOn(true)
	m.Update()
	assert.Equal(t, SourceNone, m.Source())
}

func TestMusicMasterVolume(t *testing.T) {
	cases := []struct {
		name         string
		master       float64
		wantTrack    float64
		wantFallback float64
	}{
		{"silent", 0, 0, 0},
		{"half", 0.5, 0.25, 0.06},
		{"full", 1, 0.5, 0.12},
		{"above_one", 2, 0.5, 0.12},
		{"negative", -1, 0.5, 0.12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			track, fallback := &fakePlayer{}, &fakePlayer{}
			m := New(track, 0.5, fallback, 0.12)
			m.SetMaster(c.master)
			m.SetOn(true)
			assert.InDelta(t, c.wantTrack, track.volume, 1e-12)
			assert.InDelta(t, c.wantTrack, m.Volume(), 1e-12)

			m = New(nil, 0.5, fallback, 0.12)
			m.SetMaster(c.master)
			m.SetOn(true)
			assert.InDelta(t, c.wantFallback, fallback.volume, 1e-12)
		})
	}
}

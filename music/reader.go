package music

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

const frameBytes = 8

// streamReader adapts a beep.Streamer to the little-endian float32 stereo
// PCM that ebiten's audio players read.
type streamReader struct {
	s    beep.Streamer
	buf  [][2]float64
	tail []byte
}

func newStreamReader(s beep.Streamer) *streamReader {
	return &streamReader{s: s, buf: make([][2]float64, 512)}
}

func (r *streamReader) Read(p []byte) (int, error) {
	n := copy(p, r.tail)
	r.tail = r.tail[n:]
	p = p[n:]

	for len(p) > 0 {
		frames := len(p) / frameBytes
		if frames == 0 {
			frames = 1
		}
		if frames > len(r.buf) {
			frames = len(r.buf)
		}
		got, ok := r.s.Stream(r.buf[:frames])
		if got == 0 && !ok {
			if n > 0 {
				break
			}
			if err := r.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		chunk := make([]byte, got*frameBytes)
		for i := 0; i < got; i++ {
			binary.LittleEndian.PutUint32(chunk[i*frameBytes:], math.Float32bits(float32(r.buf[i][0])))
			binary.LittleEndian.PutUint32(chunk[i*frameBytes+4:], math.Float32bits(float32(r.buf[i][1])))
		}
		c := copy(p, chunk)
		r.tail = append(r.tail[:0], chunk[c:]...)
		n += c
		p = p[c:]
	}
	return n, nil
}

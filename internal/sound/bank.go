package sound

import (
	"fmt"

	"github.com/gopxl/beep"
)

// Bank holds every sound rendered once into memory.
type Bank struct {
	format  beep.Format
	buffers map[string]*beep.Buffer
}

// NewBank renders names at rate, scaled by volume (0-1). Stereo, 16-bit.
func NewBank(names []string, rate beep.SampleRate, volume float64) (*Bank, error) {
	b := &Bank{
		format:  beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		buffers: make(map[string]*beep.Buffer, len(names)),
	}
	for _, name := range names {
		s := Synthesize(name, rate)
		if s == nil {
			return nil, fmt.Errorf("sound bank: unknown sound %q", name)
		}
		buf := beep.NewBuffer(b.format)
		buf.Append(Volume(s, volume))
		b.buffers[name] = buf
	}
	return b, nil
}

// Format returns the sample format of every buffer.
func (b *Bank) Format() beep.Format { return b.format }

// Has reports whether name was rendered.
func (b *Bank) Has(name string) bool {
	_, ok := b.buffers[name]
	return ok
}

// Streamer returns a fresh streamer over the named sound, or nil.
func (b *Bank) Streamer(name string) beep.StreamSeeker {
	buf, ok := b.buffers[name]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// PCM encodes the named sound as little-endian signed 16-bit stereo, the
// layout ebiten's audio players read.
func (b *Bank) PCM(name string) []byte {
	s := b.Streamer(name)
	if s == nil {
		return nil
	}
	frame := b.format.Width()
	out := make([]byte, s.Len()*frame)
	samples := make([][2]float64, 512)
	pos := 0
	for {
		n, ok := s.Stream(samples)
		for _, sample := range samples[:n] {
			pos += b.format.EncodeSigned(out[pos:], sample)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out[:pos]
}

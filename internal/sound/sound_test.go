package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/phanxgames/grove/acornhunt"
)

const rate = beep.SampleRate(8000)

// drain reads s to the end, failing if it does not end within limit samples.
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
		if len(out) > limit {
			t.Fatalf("stream did not end within %d samples", limit)
		}
	}
}

func TestToneLengthAndShape(t *testing.T) {
	samples := drain(t, Tone(1000, 10*time.Millisecond, WaveSquare, rate), 1000)
	if len(samples) != 80 {
		t.Fatalf("len = %d, want 80", len(samples))
	}
	// 8 samples per period: four high, four low.
	for i, s := range samples[:8] {
		want := 1.0
		if i >= 4 {
			want = -1
		}
		if s[0] != want || s[1] != want {
			t.Errorf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, Envelope(Tone(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate), 2000)
	if len(samples) != 800 {
		t.Fatalf("len = %d, want 800", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", samples[0][0])
	}
	if got := samples[40][0]; got != 0.5 {
		t.Errorf("mid-attack = %v, want 0.5", got)
	}
	if got := samples[400][0]; got != 1 {
		t.Errorf("sustain = %v, want 1", got)
	}
	if got := samples[799][0]; got <= 0 || got > 0.02 {
		t.Errorf("last sample = %v, want just above 0", got)
	}
}

func TestVolume(t *testing.T) {
	half := drain(t, Volume(Tone(0, time.Millisecond, WaveSquare, rate), 0.5), 100)
	if half[0][0] != 0.5 {
		t.Errorf("half volume sample = %v, want 0.5", half[0][0])
	}
	silent := drain(t, Volume(Tone(0, time.Millisecond, WaveSquare, rate), 0), 100)
	if silent[0][0] != 0 {
		t.Errorf("silent sample = %v, want 0", silent[0][0])
	}
}

func TestSynthesizeEverySound(t *testing.T) {
	for _, name := range acornhunt.SoundNames {
		s := Synthesize(name, rate)
		if s == nil {
			t.Errorf("Synthesize(%q) = nil", name)
			continue
		}
		samples := drain(t, s, int(rate)*10)
		if len(samples) == 0 {
			t.Errorf("%s is empty", name)
		}
		for _, smp := range samples {
			if smp[0] < -1.0001 || smp[0] > 1.0001 {
				t.Errorf("%s clips: %v", name, smp)
				break
			}
		}
	}
	if Synthesize("nope", rate) != nil {
		t.Error("unknown sound synthesized")
	}
}

func TestBank(t *testing.T) {
	if _, err := NewBank([]string{"nope"}, rate, 1); err == nil {
		t.Fatal("NewBank accepted an unknown sound")
	}

	bank, err := NewBank(acornhunt.SoundNames, rate, 0.5)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if !bank.Has(acornhunt.SoundPlayerJump) || bank.Has("nope") {
		t.Error("Has disagrees with the rendered names")
	}
	if bank.Streamer("nope") != nil || bank.PCM("nope") != nil {
		t.Error("unknown sound has data")
	}

	s := bank.Streamer(acornhunt.SoundPlayerJump)
	pcm := bank.PCM(acornhunt.SoundPlayerJump)
	if len(pcm) != s.Len()*4 {
		t.Fatalf("PCM is %d bytes, want %d", len(pcm), s.Len()*4)
	}
	// The first note is a square wave at half volume, past its 5ms attack.
	i := rate.N(10*time.Millisecond) * 4
	v := int16(binary.LittleEndian.Uint16(pcm[i:]))
	if v == 0 || v > 1<<14+64 || v < -(1<<14)-64 {
		t.Errorf("sample = %d, want about ±16384", v)
	}
}

// Package sound synthesizes the game's sound effects and music with beep
// and plays them through ebiten's audio context or beep's speaker.
package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/phanxgames/grove/acornhunt"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-frequency wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// Tone returns a streamer that plays freq with the given wave for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// Envelope shapes s, which lasts d, with a linear attack and release.
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Volume scales s linearly. Zero or less is silent.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a sequence.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Envelope(Tone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// sweep plays freqs as back-to-back notes of equal length.
func sweep(freqs []float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, d, wave, rate)
	}
	return beep.Seq(notes...)
}

// melody is the music loop: a short pentatonic tune over a bass line.
var melody = []float64{
	523.25, 587.33, 659.25, 783.99, 659.25, 587.33, 523.25, 440.00,
	392.00, 440.00, 523.25, 587.33, 659.25, 587.33, 523.25, 523.25,
}

var bass = []float64{130.81, 130.81, 98.00, 98.00, 110.00, 110.00, 98.00, 130.81}

const musicNote = 220 * time.Millisecond

// Synthesize returns a finite streamer for the named sound, or nil when the
// name is unknown. Music is one pass of the loop.
func Synthesize(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case acornhunt.SoundMusic:
		lead := sweep(melody, musicNote, WaveSquare, rate)
		low := sweep(bass, 2*musicNote, WaveSine, rate)
		return beep.Mix(Volume(lead, 0.25), Volume(low, 0.5))
	case acornhunt.SoundPlayerJump:
		return sweep([]float64{392, 523.25, 659.25}, 40*time.Millisecond, WaveSquare, rate)
	case acornhunt.SoundPlayerFall:
		return sweep([]float64{880, 740, 622, 523, 440, 370, 311, 262}, 60*time.Millisecond, WaveSaw, rate)
	case acornhunt.SoundPlayerDie:
		return beep.Seq(
			note(196, 150*time.Millisecond, WaveSaw, rate),
			note(147, 150*time.Millisecond, WaveSaw, rate),
			note(98, 300*time.Millisecond, WaveSaw, rate),
		)
	case acornhunt.SoundPlayerExplode:
		d := 600 * time.Millisecond
		noise := Envelope(Tone(0, d, WaveNoise, rate), d, 2*time.Millisecond, 550*time.Millisecond, rate)
		rumble := Envelope(Tone(55, d, WaveSine, rate), d, 2*time.Millisecond, 500*time.Millisecond, rate)
		return beep.Mix(Volume(noise, 0.6), Volume(rumble, 0.4))
	case acornhunt.SoundPlayerWon:
		return sweep([]float64{523.25, 659.25, 783.99, 1046.50}, 120*time.Millisecond, WaveSquare, rate)
	case acornhunt.SoundAcornCollected:
		return bell(1318.51, 150*time.Millisecond, rate)
	}
	return nil
}

// bell mixes a sine fundamental with its octave.
func bell(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	tone := func(f float64) beep.Streamer {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			// Above the Nyquist frequency.
			return beep.Silence(rate.N(d))
		}
		return Envelope(beep.Take(rate.N(d), sine), d, time.Millisecond, d*3/4, rate)
	}
	return beep.Mix(Volume(tone(freq), 0.7), Volume(tone(2*freq), 0.3))
}

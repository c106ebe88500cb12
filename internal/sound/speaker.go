package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/grove/acornhunt"
	"go.uber.org/zap"
)

// SpeakerPlayer plays the bank through beep's speaker, for frontends that
// run without ebiten.
type SpeakerPlayer struct {
	bank  *Bank
	mixer *beep.Mixer
	music *beep.Ctrl
	log   *zap.Logger
}

// NewSpeakerPlayer initializes the speaker at the bank's sample rate with a
// 100ms buffer and starts an empty mixer on it.
func NewSpeakerPlayer(bank *Bank, log *zap.Logger) (*SpeakerPlayer, error) {
	rate := bank.Format().SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &SpeakerPlayer{bank: bank, mixer: &beep.Mixer{}, log: log}
	speaker.Play(p.mixer)
	return p, nil
}

// Play mixes the named sound in. Music loops and is not restarted while it
// plays.
func (p *SpeakerPlayer) Play(name string) {
	s := p.bank.Streamer(name)
	if s == nil {
		p.log.Warn("unknown sound", zap.String("name", name))
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if name != acornhunt.SoundMusic {
		p.mixer.Add(s)
		return
	}
	if p.music != nil && !p.music.Paused {
		return
	}
	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, s)}
	p.mixer.Add(p.music)
}

// Close stops every sound and releases the speaker.
func (p *SpeakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

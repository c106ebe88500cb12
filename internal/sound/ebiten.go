package sound

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/phanxgames/grove/acornhunt"
	"go.uber.org/zap"
)

// EbitenPlayer plays the bank through ebiten's audio context. Music loops;
// every other sound plays once per call.
type EbitenPlayer struct {
	ctx   *audio.Context
	bank  *Bank
	pcm   map[string][]byte
	music *audio.Player
	log   *zap.Logger
}

// NewEbitenPlayer creates the process-wide audio context at the bank's
// sample rate.
func NewEbitenPlayer(bank *Bank, log *zap.Logger) *EbitenPlayer {
	p := &EbitenPlayer{
		ctx:  audio.NewContext(int(bank.Format().SampleRate)),
		bank: bank,
		pcm:  make(map[string][]byte),
		log:  log,
	}
	for name := range bank.buffers {
		p.pcm[name] = bank.PCM(name)
	}
	return p
}

// Play starts the named sound. Unknown names are logged and ignored.
func (p *EbitenPlayer) Play(name string) {
	pcm, ok := p.pcm[name]
	if !ok {
		p.log.Warn("unknown sound", zap.String("name", name))
		return
	}
	if name == acornhunt.SoundMusic {
		if err := p.loop(pcm); err != nil {
			p.log.Error("music", zap.Error(err))
		}
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

func (p *EbitenPlayer) loop(pcm []byte) error {
	if p.music != nil && p.music.IsPlaying() {
		return nil
	}
	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		return fmt.Errorf("loop music: %w", err)
	}
	p.music = player
	player.Play()
	return nil
}

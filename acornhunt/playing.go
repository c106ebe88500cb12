package acornhunt

import (
	"github.com/phanxgames/grove"
	"go.uber.org/zap"
)

// PlayingState runs the current level and hands over to the game over and
// level finished states.
type PlayingState struct {
	env     *Env
	levels  []*Level
	current int
}

// NewPlayingState builds every level of the catalog. No level is current
// until GoToLevel.
func NewPlayingState(env *Env) *PlayingState {
	s := &PlayingState{env: env, current: -1}
	for i := range env.Levels.Len() {
		s.levels = append(s.levels, NewLevel(env, i))
	}
	return s
}

// CurrentLevel returns the level being played, or nil.
func (s *PlayingState) CurrentLevel() *Level {
	if s.current < 0 || s.current >= len(s.levels) {
		return nil
	}
	return s.levels[s.current]
}

// CurrentIndex returns the index of the level being played, or -1.
func (s *PlayingState) CurrentIndex() int { return s.current }

func (s *PlayingState) HandleInput(in grove.Input, dt float64) {
	if l := s.CurrentLevel(); l != nil {
		l.HandleInput(in, dt)
	}
}

func (s *PlayingState) Update(dt float64) {
	l := s.CurrentLevel()
	if l == nil {
		return
	}
	l.Update(dt)
	switch {
	case l.GameOver():
		s.env.switchTo(s.env.Screens.GameOver)
	case l.Completed():
		s.env.switchTo(s.env.Screens.LevelFinished)
	}
}

func (s *PlayingState) Draw(r grove.Renderer) {
	if l := s.CurrentLevel(); l != nil {
		l.Draw(r)
	}
}

// Reset restarts the current level.
func (s *PlayingState) Reset() {
	if l := s.CurrentLevel(); l != nil {
		l.Reset()
	}
}

// GoToLevel makes level i current and restarts it. Out-of-range indexes are
// ignored.
func (s *PlayingState) GoToLevel(i int) {
	if i < 0 || i >= len(s.levels) {
		return
	}
	s.current = i
	s.levels[i].Reset()
	s.env.Log.Info("level started", zap.Int("level", i+1))
}

// NextLevel unlocks and starts the level after the current one, or returns
// to the level menu after the last. Progress is saved either way.
func (s *PlayingState) NextLevel() {
	if s.current >= len(s.levels)-1 {
		s.env.switchTo(s.env.Screens.LevelMenu)
	} else {
		s.GoToLevel(s.current + 1)
		s.env.Levels.Unlock(s.current)
	}
	s.saveProgress()
}

func (s *PlayingState) saveProgress() {
	if err := SaveProgress(s.env.Store, s.env.Levels); err != nil {
		s.env.Log.Warn("progress not saved", zap.Error(err))
		return
	}
	s.env.Log.Debug("progress saved", zap.Int("levels", s.env.Levels.Len()))
}

package acornhunt

import (
	"errors"

	"github.com/phanxgames/grove"
	"go.uber.org/zap"
)

// Game is the top-level loop: the state manager plus the event bus, which is
// flushed at the end of every tick.
type Game struct {
	*grove.StateManager
	env     *Env
	playing *PlayingState
}

// Build creates every game state, loads the saved progress and starts on the
// title screen. env.Sheets and env.Levels are required; other unset
// collaborators get inert defaults.
func Build(env *Env) (*Game, error) {
	if env.Sheets == nil || env.Levels == nil {
		return nil, errors.New("build game: sheets and levels are required")
	}
	env.withDefaults()
	if err := LoadProgress(env.Store, env.Levels); err != nil {
		env.Log.Warn("using default progress", zap.Error(err))
	}
	subscribeSounds(env)
	subscribeProgress(env)

	states := env.States
	playing := NewPlayingState(env)
	env.Screens.Title = states.Add(NewTitleState(env))
	env.Screens.Help = states.Add(NewHelpState(env))
	env.Screens.Playing = states.Add(playing)
	env.Screens.LevelMenu = states.Add(NewLevelMenuState(env, playing))
	env.Screens.GameOver = states.Add(NewGameOverState(env, playing))
	env.Screens.LevelFinished = states.Add(NewLevelFinishedState(env, playing))
	states.SwitchTo(env.Screens.Title)

	env.Audio.Play(SoundMusic)
	env.Log.Info("game built", zap.Int("levels", env.Levels.Len()), zap.Bool("touch", env.Touch))
	return &Game{StateManager: states, env: env, playing: playing}, nil
}

// Playing returns the playing state.
func (g *Game) Playing() *PlayingState { return g.playing }

// Env returns the game's collaborators.
func (g *Game) Env() *Env { return g.env }

// Update advances the active state and delivers the tick's events.
func (g *Game) Update(dt float64) {
	g.StateManager.Update(dt)
	g.env.Events.Flush()
}

// HandleInput dispatches to the active state and delivers events published
// while handling it, so a jump sounds on the tick it happens.
func (g *Game) HandleInput(in grove.Input, dt float64) {
	g.StateManager.HandleInput(in, dt)
	g.env.Events.Flush()
}

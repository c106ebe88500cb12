package acornhunt

import "go.uber.org/zap"

// Sound names passed to grove.Audio.Play.
const (
	SoundMusic          = "music"
	SoundPlayerJump     = "player_jump"
	SoundPlayerFall     = "player_fall"
	SoundPlayerDie      = "player_die"
	SoundPlayerExplode  = "player_explode"
	SoundPlayerWon      = "player_won"
	SoundAcornCollected = "acorn_collected"
)

// SoundNames lists every sound the game plays.
var SoundNames = []string{
	SoundMusic, SoundPlayerJump, SoundPlayerFall, SoundPlayerDie,
	SoundPlayerExplode, SoundPlayerWon, SoundAcornCollected,
}

var playerSounds = map[PlayerAction]string{
	PlayerJumped:   SoundPlayerJump,
	PlayerFell:     SoundPlayerFall,
	PlayerDied:     SoundPlayerDie,
	PlayerExploded: SoundPlayerExplode,
	PlayerWon:      SoundPlayerWon,
}

// subscribeSounds plays a sound for every game event.
func subscribeSounds(env *Env) {
	env.Events.OnPlayer(func(ev PlayerEvent) {
		if name, ok := playerSounds[ev.Action]; ok {
			env.Audio.Play(name)
		}
		env.Log.Debug("player", zap.Stringer("action", ev.Action))
	})
	env.Events.OnAcorn(func(ev AcornCollected) {
		env.Audio.Play(SoundAcornCollected)
		env.Log.Debug("acorn collected", zap.Int("remaining", ev.Remaining))
	})
}

// subscribeProgress records solved levels in the catalog.
func subscribeProgress(env *Env) {
	env.Events.OnSolved(func(ev LevelSolved) {
		env.Levels.MarkSolved(ev.Level)
	})
}

package acornhunt

import (
	"strconv"

	"github.com/phanxgames/grove"
)

// Draw layers. Lower layers draw first and receive input last.
const (
	LayerBackground = 0
	LayerTiles      = 1
	LayerObjects    = 5
	LayerOverlays   = 6
	LayerOverlays1  = 7
	LayerOverlays2  = 8
)

// Node IDs used to locate objects inside a level.
const (
	IDPlayer          grove.ID = 1
	IDTimer           grove.ID = 10
	IDTiles           grove.ID = 11
	IDExit            grove.ID = 12
	IDHintTimer       grove.ID = 13
	IDButtonWalkLeft  grove.ID = 14
	IDButtonWalkRight grove.ID = 15
	IDButtonJump      grove.ID = 16
)

// Screens holds the StateManager ids of the top-level game states. They are
// filled in by Build in registration order.
type Screens struct {
	Title         int
	Help          int
	Playing       int
	LevelMenu     int
	GameOver      int
	LevelFinished int
}

// Sprite sheet names, as listed in the asset manifest.
const (
	SheetTitle         = "background_title"
	SheetHelp          = "background_help"
	SheetLevelSelect   = "levelselect"
	SheetLevelSolved   = "level_solved"
	SheetLevelUnsolved = "level_unsolved"
	SheetLevelLocked   = "level_locked"
	SheetFrameHint     = "frame_hint"
	SheetTimer         = "timer"
	SheetGameOver      = "overlay_gameover"
	SheetWellDone      = "overlay_welldone"
	SheetGameOverTap   = "overlay_gameover_tap"
	SheetWellDoneTap   = "overlay_welldone_tap"
	SheetButtonPlay    = "button_play"
	SheetButtonHelp    = "button_help"
	SheetButtonBack    = "button_back"
	SheetButtonQuit    = "button_quit"
	SheetButtonsPlayer = "buttons_player"
	SheetWall          = "wall"
	SheetWallHot       = "wall_hot"
	SheetWallIce       = "wall_ice"
	SheetPlatform      = "platform"
	SheetPlatformHot   = "platform_hot"
	SheetPlatformIce   = "platform_ice"
	SheetGoal          = "goal"
	SheetAcorn         = "acorn"
	SheetPlayerIdle    = "player_idle"
	SheetPlayerRun     = "player_run"
	SheetPlayerJump    = "player_jump"
	SheetPlayerExplode = "player_explode"
)

// BackgroundSheet returns the sheet name of level background n (1-based).
func BackgroundSheet(n int) string {
	return "background_level" + strconv.Itoa(n)
}

// SheetNames lists every sheet the game asks for, level backgrounds included.
func SheetNames(levels int) []string {
	names := []string{
		SheetTitle, SheetHelp, SheetLevelSelect, SheetLevelSolved, SheetLevelUnsolved,
		SheetLevelLocked, SheetFrameHint, SheetTimer, SheetGameOver, SheetWellDone,
		SheetGameOverTap, SheetWellDoneTap, SheetButtonPlay, SheetButtonHelp,
		SheetButtonBack, SheetButtonQuit, SheetButtonsPlayer, SheetWall, SheetWallHot,
		SheetWallIce, SheetPlatform, SheetPlatformHot, SheetPlatformIce, SheetGoal,
		SheetAcorn, SheetPlayerIdle, SheetPlayerRun, SheetPlayerJump, SheetPlayerExplode,
	}
	for n := 1; n <= levels; n++ {
		names = append(names, BackgroundSheet(n))
	}
	return names
}

package acornhunt

import (
	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/internal/storage"
	"go.uber.org/zap"
)

// Sheets hands out sprite sheets by name. *grove.AssetCatalog implements it.
type Sheets interface {
	Sheet(name string) *grove.SpriteSheet
}

// Settings are the gameplay constants. Speeds are in units per second,
// Gravity in units per second added every tick.
type Settings struct {
	ScreenWidth  float64
	ScreenHeight float64
	TimeLimit    float64
	WalkingSpeed float64
	JumpSpeed    float64
	DeathPop     float64
	Gravity      float64
	CellWidth    float64
	CellHeight   float64
	HintSeconds  float64
}

// DefaultSettings returns the values the levels were designed for.
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:  1440,
		ScreenHeight: 825,
		TimeLimit:    30,
		WalkingSpeed: 400,
		JumpSpeed:    1100,
		DeathPop:     900,
		Gravity:      55,
		CellWidth:    72,
		CellHeight:   55,
		HintSeconds:  5,
	}
}

// Env carries the collaborators every game object may need. It replaces
// global asset tables and singletons: Build wires one Env into every state.
type Env struct {
	Sheets   Sheets
	Levels   *LevelCatalog
	Store    storage.Store
	Audio    grove.Audio
	Events   *Events
	Log      *zap.Logger
	Settings Settings

	// Touch selects the touch layout: on-screen walk and jump buttons and
	// tap prompts instead of click prompts.
	Touch bool

	States  *grove.StateManager
	Screens Screens
}

// withDefaults fills unset collaborators with inert implementations.
func (e *Env) withDefaults() {
	if e.Audio == nil {
		e.Audio = grove.NopAudio{}
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Events == nil {
		e.Events = NewEvents()
	}
	if e.Store == nil {
		e.Store = storage.NewMemory()
	}
	if e.States == nil {
		e.States = grove.NewStateManager()
	}
	if e.Settings == (Settings{}) {
		e.Settings = DefaultSettings()
	}
}

// switchTo activates the state registered under id.
func (e *Env) switchTo(id int) { e.States.SwitchTo(id) }

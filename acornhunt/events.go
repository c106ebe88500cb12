package acornhunt

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlayerAction is something the player did that other systems react to.
type PlayerAction uint8

const (
	PlayerJumped PlayerAction = iota
	PlayerFell
	PlayerDied
	PlayerExploded
	PlayerWon
)

func (a PlayerAction) String() string {
	switch a {
	case PlayerJumped:
		return "jumped"
	case PlayerFell:
		return "fell"
	case PlayerDied:
		return "died"
	case PlayerExploded:
		return "exploded"
	case PlayerWon:
		return "won"
	}
	return "unknown"
}

// PlayerEvent is published on every player state transition.
type PlayerEvent struct {
	Action PlayerAction
}

// AcornCollected is published when the player picks up an acorn.
type AcornCollected struct {
	Remaining int
}

// LevelSolved is published once when a level is completed in time.
type LevelSolved struct {
	Level int
}

var (
	PlayerEventType    = events.NewEventType[PlayerEvent]()
	AcornCollectedType = events.NewEventType[AcornCollected]()
	LevelSolvedType    = events.NewEventType[LevelSolved]()
)

// Events is the game's event bus, backed by a donburi world. Publishers
// queue events during a tick; Flush delivers them to subscribers at the end
// of it.
type Events struct {
	world donburi.World
}

// NewEvents creates an empty bus.
func NewEvents() *Events {
	return &Events{world: donburi.NewWorld()}
}

// World exposes the underlying world for subscriptions.
func (e *Events) World() donburi.World { return e.world }

func (e *Events) PublishPlayer(a PlayerAction) {
	PlayerEventType.Publish(e.world, PlayerEvent{Action: a})
}

func (e *Events) PublishAcorn(remaining int) {
	AcornCollectedType.Publish(e.world, AcornCollected{Remaining: remaining})
}

func (e *Events) PublishSolved(level int) {
	LevelSolvedType.Publish(e.world, LevelSolved{Level: level})
}

// OnPlayer subscribes fn to player events.
func (e *Events) OnPlayer(fn func(PlayerEvent)) {
	PlayerEventType.Subscribe(e.world, func(_ donburi.World, ev PlayerEvent) { fn(ev) })
}

// OnAcorn subscribes fn to acorn pickups.
func (e *Events) OnAcorn(fn func(AcornCollected)) {
	AcornCollectedType.Subscribe(e.world, func(_ donburi.World, ev AcornCollected) { fn(ev) })
}

// OnSolved subscribes fn to solved levels.
func (e *Events) OnSolved(fn func(LevelSolved)) {
	LevelSolvedType.Subscribe(e.world, func(_ donburi.World, ev LevelSolved) { fn(ev) })
}

// Flush delivers every queued event.
func (e *Events) Flush() {
	events.ProcessAllEvents(e.world)
}

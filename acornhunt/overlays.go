package acornhunt

import (
	"github.com/phanxgames/grove"
	"github.com/tanema/gween/ease"
)

const overlaySlide = 0.4 // seconds

// overlayState draws a message over the frozen level and waits for a click,
// tap or the confirm key.
type overlayState struct {
	grove.List
	env     *Env
	playing *PlayingState
	overlay *grove.Sprite
	rest    grove.Vec2
	slide   *grove.TweenGroup
	onPress func()
	wait    func() bool // holds the overlay back while true
}

func newOverlayState(env *Env, playing *PlayingState, sheet string, onPress func()) *overlayState {
	s := &overlayState{List: *grove.NewList(0, grove.NoID), env: env, playing: playing, onPress: onPress}
	s.overlay = grove.NewSprite(env.Sheets.Sheet(sheet), LayerOverlays, grove.NoID)
	s.rest = grove.Vec2{
		X: (env.Settings.ScreenWidth - s.overlay.Width()) / 2,
		Y: (env.Settings.ScreenHeight - s.overlay.Height()) / 2,
	}
	s.overlay.Position = s.rest
	s.Add(s.overlay)
	return s
}

// HandleInput tests presses against the resting place of the overlay, so it
// answers while still sliding in.
func (s *overlayState) HandleInput(in grove.Input, _ float64) {
	box := grove.RectAt(s.rest, grove.Vec2{X: s.overlay.Width(), Y: s.overlay.Height()})
	var hit bool
	if in.TouchDevice() {
		hit = in.PointerDown(box)
	} else {
		hit = in.PointerPressed(box)
	}
	if hit || in.Pressed(grove.KeyConfirm) {
		s.slide = nil
		s.onPress()
	}
}

// Update keeps the level animating underneath. Once nothing holds it back,
// the overlay drops in from above the screen.
func (s *overlayState) Update(dt float64) {
	s.playing.Update(dt)
	if s.slide == nil {
		if s.wait != nil && s.wait() {
			s.overlay.SetVisible(false)
			return
		}
		s.overlay.SetVisible(true)
		s.overlay.Position = grove.Vec2{X: s.rest.X, Y: -s.overlay.Height()}
		s.slide = grove.TweenPosition(&s.overlay.Node, s.rest, overlaySlide, ease.OutBack)
	}
	s.slide.Update(dt)
}

func (s *overlayState) Draw(r grove.Renderer) {
	s.playing.Draw(r)
	s.List.Draw(r)
}

// overlaySheet picks the tap prompt on touch devices and the click prompt
// elsewhere.
func overlaySheet(env *Env, click, tap string) string {
	if env.Touch {
		return tap
	}
	return click
}

// NewGameOverState shows the game over overlay once the player has finished
// exploding; pressing it retries the level.
func NewGameOverState(env *Env, playing *PlayingState) grove.Loop {
	s := newOverlayState(env, playing, overlaySheet(env, SheetGameOver, SheetGameOverTap), func() {
		playing.Reset()
		env.switchTo(env.Screens.Playing)
	})
	s.wait = func() bool {
		l := playing.CurrentLevel()
		return l != nil && l.Player() != nil && l.Player().Exploding()
	}
	return s
}

// NewLevelFinishedState shows the well done overlay; pressing it continues
// with the next level.
func NewLevelFinishedState(env *Env, playing *PlayingState) grove.Loop {
	return newOverlayState(env, playing, overlaySheet(env, SheetWellDone, SheetWellDoneTap), func() {
		env.switchTo(env.Screens.Playing)
		playing.NextLevel()
	})
}

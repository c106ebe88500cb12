package tty

import (
	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/grove"
)

// DefaultHoldTicks is how long a key counts as held after its last press
// or auto-repeat event. Terminals report no key releases.
const DefaultHoldTicks = 8

// Input turns tcell events into grove input. Keys stay down for HoldTicks
// ticks after each key event; the mouse is tracked exactly.
type Input struct {
	events   chan tcell.Event
	renderer *Renderer
	keys     map[tcell.Key][]grove.Key
	runes    map[rune][]grove.Key

	HoldTicks int

	hold     [grove.NumKeys]int
	down     [grove.NumKeys]bool
	pressed  [grove.NumKeys]bool
	pointer  grove.Vec2
	mouse    bool
	mouseNew bool
	quit     bool
}

// NewInput creates an input fed by Listen or Push. renderer maps mouse
// cells back to world coordinates.
func NewInput(renderer *Renderer) *Input {
	return &Input{
		events:    make(chan tcell.Event, 100),
		renderer:  renderer,
		HoldTicks: DefaultHoldTicks,
		keys: map[tcell.Key][]grove.Key{
			tcell.KeyLeft:       {grove.KeyLeft},
			tcell.KeyRight:      {grove.KeyRight},
			tcell.KeyUp:         {grove.KeyJump},
			tcell.KeyEnter:      {grove.KeyConfirm},
			tcell.KeyEscape:     {grove.KeyBack},
			tcell.KeyBackspace:  {grove.KeyBack},
			tcell.KeyBackspace2: {grove.KeyBack},
		},
		runes: map[rune][]grove.Key{
			'a': {grove.KeyLeft},
			'd': {grove.KeyRight},
			'w': {grove.KeyJump},
			' ': {grove.KeyJump, grove.KeyConfirm},
		},
	}
}

// Listen polls screen for events in a goroutine until the screen is
// finalized.
func (in *Input) Listen(screen tcell.Screen) {
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			in.events <- ev
		}
	}()
}

// Push queues an event for the next Advance. Drops it when the queue is full.
func (in *Input) Push(ev tcell.Event) {
	select {
	case in.events <- ev:
	default:
	}
}

// Advance ends the previous tick and applies every queued event.
func (in *Input) Advance() {
	in.pressed = [grove.NumKeys]bool{}
	in.mouseNew = false
	for k := range in.hold {
		if in.hold[k] > 0 {
			in.hold[k]--
		}
		in.down[k] = in.hold[k] > 0
	}
	for {
		select {
		case ev := <-in.events:
			in.handle(ev)
		default:
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			in.quit = true
			return
		}
		keys := in.keys[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			keys = in.runes[ev.Rune()]
		}
		for _, k := range keys {
			if !in.down[k] {
				in.pressed[k] = true
			}
			in.down[k] = true
			in.hold[k] = in.HoldTicks
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		x, y := ev.Position()
		in.pointer = in.renderer.World(x, y)
		in.mouseNew = in.mouseNew || down && !in.mouse
		in.mouse = down
	}
}

func (in *Input) Down(k grove.Key) bool    { return int(k) < len(in.down) && in.down[k] }
func (in *Input) Pressed(k grove.Key) bool { return int(k) < len(in.pressed) && in.pressed[k] }

func (in *Input) PointerDown(r grove.Rect) bool {
	return in.mouse && r.Contains(in.pointer)
}

func (in *Input) PointerPressed(r grove.Rect) bool {
	return in.mouseNew && r.Contains(in.pointer)
}

func (in *Input) TouchDevice() bool { return false }

// Quit reports whether the user asked to leave with Ctrl-C.
func (in *Input) Quit() bool { return in.quit }

var _ grove.InputSource = (*Input)(nil)

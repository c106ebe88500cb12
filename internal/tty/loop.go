package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/grove"
	"go.uber.org/zap"
)

// Runner drives a grove loop at a fixed tick rate on a terminal screen.
type Runner struct {
	Screen   tcell.Screen
	Renderer *Renderer
	Input    *Input
	TPS      int
	Log      *zap.Logger
}

// NewRunner initializes screen with mouse support and wires a renderer and
// an input for a world of the given size.
func NewRunner(screen tcell.Screen, worldW, worldH float64, tps int, log *zap.Logger) (*Runner, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	if log == nil {
		log = zap.NewNop()
	}
	r := NewRenderer(screen, worldW, worldH)
	return &Runner{
		Screen:   screen,
		Renderer: r,
		Input:    NewInput(r),
		TPS:      max(tps, 1),
		Log:      log,
	}, nil
}

// Tick runs one input, update and draw pass of root.
func (r *Runner) Tick(root grove.Loop) {
	dt := 1 / float64(r.TPS)
	r.Input.Advance()
	root.HandleInput(r.Input, dt)
	root.Update(dt)
	r.Renderer.Begin()
	root.Draw(r.Renderer)
	r.Renderer.Show()
}

// Run ticks root until ctx is done or the user presses Ctrl-C, then
// restores the terminal.
func (r *Runner) Run(ctx context.Context, root grove.Loop) error {
	defer r.Screen.Fini()
	r.Input.Listen(r.Screen)

	ticker := time.NewTicker(time.Second / time.Duration(r.TPS))
	defer ticker.Stop()
	r.Log.Info("terminal started", zap.Int("tps", r.TPS))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Tick(root)
			if r.Input.Quit() {
				r.Log.Info("quit requested")
				return nil
			}
		}
	}
}

package acornhunt

import (
	"fmt"
	"math"

	"github.com/phanxgames/grove"
)

// Timer counts down the time left in a level and shows it as m:ss. The
// countdown rate is scaled by Multiplier, which the player sets from the
// surface it stands on. Under ten seconds the text flashes red on even
// seconds.
type Timer struct {
	grove.Label
	Running    bool
	Multiplier float64
	limit      float64
	left       float64
}

// NewTimer creates a running timer starting at limit seconds.
func NewTimer(limit float64, layer int, id grove.ID) *Timer {
	t := &Timer{Label: *grove.NewLabel("bold", 26, layer, id), limit: limit}
	t.Reset()
	return t
}

// Left returns the seconds remaining. It goes negative once before stopping.
func (t *Timer) Left() float64 { return t.left }

// Expired reports whether the time is up.
func (t *Timer) Expired() bool { return t.left <= 0 }

// Update counts down while running.
func (t *Timer) Update(dt float64) {
	if !t.Running {
		return
	}
	t.left -= dt * t.Multiplier
	if t.left < 0 {
		t.Running = false
	}
	t.refresh()
}

// Reset restarts the countdown at full time.
func (t *Timer) Reset() {
	t.Label.Reset()
	t.left = t.limit
	t.Running = true
	t.Multiplier = 1
	t.refresh()
}

func (t *Timer) refresh() {
	minutes := int(math.Floor(t.left / 60))
	seconds := int(math.Ceil(math.Mod(t.left, 60)))
	if t.left < 0 {
		minutes, seconds = 0, 0
	}
	t.Text = fmt.Sprintf("%d:%02d", minutes, seconds)
	t.Color = grove.ColorYellow
	if t.left <= 10 && seconds%2 == 0 {
		t.Color = grove.ColorRed
	}
}

// VisibilityTimer hides its target once a countdown runs out. Levels use it
// to show the hint for a few seconds after starting.
type VisibilityTimer struct {
	grove.Node
	target grove.Object
	total  float64
	left   float64
}

// NewVisibilityTimer creates a timer that hides target after seconds.
func NewVisibilityTimer(target grove.Object, seconds float64, layer int, id grove.ID) *VisibilityTimer {
	return &VisibilityTimer{
		Node:   grove.Node{Layer: layer, ID: id},
		target: target,
		total:  seconds,
	}
}

// Update counts down and hides the target at zero.
func (v *VisibilityTimer) Update(dt float64) {
	v.left -= dt
	if v.left <= 0 {
		v.target.Base().SetVisible(false)
	}
}

// StartVisible shows the target and restarts the countdown.
func (v *VisibilityTimer) StartVisible() {
	v.left = v.total
	v.target.Base().SetVisible(true)
}

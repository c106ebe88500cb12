package grove

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FPSLabel is a label that shows the current FPS and TPS. The text is
// refreshed every ~0.5 seconds.
type FPSLabel struct {
	Label
	sinceRefresh float64
}

// NewFPSLabel creates an FPS readout at pos.
func NewFPSLabel(pos Vec2) *FPSLabel {
	l := &FPSLabel{Label: *NewLabel("mono", 14, 1<<20, NoID)}
	l.Position = pos
	l.Color = ColorYellow
	l.refresh()
	return l
}

// Update refreshes the readout twice per second.
func (l *FPSLabel) Update(dt float64) {
	l.sinceRefresh += dt
	if l.sinceRefresh < 0.5 {
		return
	}
	l.sinceRefresh = 0
	l.refresh()
}

func (l *FPSLabel) refresh() {
	l.Text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

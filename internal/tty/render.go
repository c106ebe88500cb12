// Package tty runs grove loops in a terminal with tcell: sprites become
// blocks of their average color and labels become plain text.
package tty

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/grove"
)

const block = '█'

// Renderer draws onto a tcell screen, scaling the logical world to the
// terminal's cell grid.
type Renderer struct {
	screen tcell.Screen
	world  grove.Vec2
	scale  grove.Vec2 // cells per world unit
}

// NewRenderer creates a renderer for a world of the given logical size.
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	r := &Renderer{screen: screen, world: grove.Vec2{X: worldW, Y: worldH}}
	r.Begin()
	return r
}

// Begin clears the screen and picks up its current size. Call once per
// frame before drawing.
func (r *Renderer) Begin() {
	w, h := r.screen.Size()
	r.scale = grove.Vec2{X: float64(w) / r.world.X, Y: float64(h) / r.world.Y}
	r.screen.Clear()
}

// Cell maps a world point to the cell containing it.
func (r *Renderer) Cell(p grove.Vec2) (x, y int) {
	return int(math.Floor(p.X * r.scale.X)), int(math.Floor(p.Y * r.scale.Y))
}

// World maps a cell to the world point at its center.
func (r *Renderer) World(x, y int) grove.Vec2 {
	return grove.Vec2{X: (float64(x) + 0.5) / r.scale.X, Y: (float64(y) + 0.5) / r.scale.Y}
}

// DrawRegion fills the cells the region covers with the sheet's average
// color. Rotation and mirroring do not change a solid block.
func (r *Renderer) DrawRegion(sheet *grove.SpriteSheet, pos grove.Vec2, _, scale float64, origin grove.Vec2, src image.Rectangle, _ bool) {
	if sheet == nil || scale <= 0 {
		return
	}
	c := sheet.AverageColor()
	if c.A < 0.25 {
		return
	}
	size := grove.Vec2{X: float64(src.Dx()), Y: float64(src.Dy())}.Scale(scale)
	topLeft := pos.Sub(origin.Scale(scale))
	x0, y0 := r.Cell(topLeft)
	x1, y1 := r.Cell(topLeft.Add(size))
	style := tcell.StyleDefault.Foreground(color(c))
	for y := y0; y < max(y1, y0+1); y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			r.screen.SetContent(x, y, block, nil, style)
		}
	}
}

// DrawText writes s on one row, aligned around pos.
func (r *Renderer) DrawText(s string, pos, origin grove.Vec2, c grove.Color, align grove.TextAlign, _ string, _ float64) {
	x, y := r.Cell(pos.Sub(origin))
	runes := []rune(s)
	switch align {
	case grove.AlignCenter:
		x -= len(runes) / 2
	case grove.AlignRight:
		x -= len(runes)
	}
	style := tcell.StyleDefault.Foreground(color(c)).Bold(true)
	for i, ch := range runes {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

func color(c grove.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

var _ grove.Renderer = (*Renderer)(nil)

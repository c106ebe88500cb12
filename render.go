package grove

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Renderer receives draw calls from visible leaf nodes. Positions are world
// coordinates; origin is subtracted before drawing.
type Renderer interface {
	// DrawRegion draws the src rectangle of sheet. When mirrored, the region
	// is flipped horizontally within its own bounds.
	DrawRegion(sheet *SpriteSheet, pos Vec2, rotation, scale float64, origin Vec2, src image.Rectangle, mirrored bool)
	// DrawText draws s with its top edge at pos - origin. align positions
	// the text horizontally relative to that point.
	DrawText(s string, pos, origin Vec2, c Color, align TextAlign, font string, size float64)
}

// EbitenRenderer draws onto an ebiten image, normally the screen passed to
// ebiten.Game.Draw.
type EbitenRenderer struct {
	target *ebiten.Image
	fonts  *Fonts
	op     ebiten.DrawImageOptions
}

// NewEbitenRenderer creates a renderer that resolves font names through fonts.
func NewEbitenRenderer(fonts *Fonts) *EbitenRenderer {
	return &EbitenRenderer{fonts: fonts}
}

// Begin sets the draw target for the frame.
func (r *EbitenRenderer) Begin(target *ebiten.Image) { r.target = target }

func (r *EbitenRenderer) DrawRegion(sheet *SpriteSheet, pos Vec2, rotation, scale float64, origin Vec2, src image.Rectangle, mirrored bool) {
	if r.target == nil || sheet == nil {
		return
	}
	op := &r.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterLinear
	if mirrored {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Translate(-origin.X, -origin.Y)
	if rotation != 0 {
		op.GeoM.Rotate(rotation)
	}
	if scale != 1 {
		op.GeoM.Scale(scale, scale)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	r.target.DrawImage(sheet.Image().SubImage(src).(*ebiten.Image), op)
}

func (r *EbitenRenderer) DrawText(s string, pos, origin Vec2, c Color, align TextAlign, font string, size float64) {
	if r.target == nil || r.fonts == nil || s == "" {
		return
	}
	face := r.fonts.Face(font, size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X-origin.X, pos.Y-origin.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = size * 1.25
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(r.target, s, face, op)
}

// FillRect fills a screen rectangle with a solid color. Used for overlays
// and the loading bar; not part of the Renderer contract.
func (r *EbitenRenderer) FillRect(rect Rect, c Color) {
	if r.target == nil {
		return
	}
	sub := r.target.SubImage(image.Rect(int(rect.X), int(rect.Y), int(rect.Right()), int(rect.Bottom()))).(*ebiten.Image)
	sub.Fill(c.RGBA())
}

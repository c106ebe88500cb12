package acornhunt

import (
	"math"

	"github.com/phanxgames/grove"
	"github.com/tanema/gween/ease"
)

const (
	bobAmplitude = 5
	bobSpeed     = 4
	popSeconds   = 0.15
)

// Acorn bobs up and down until the player touches it. A touched acorn is
// hidden at once and counts as collected; its pop is drawn by the level
// until the shrink ends.
type Acorn struct {
	grove.Sprite
	env    *Env
	clock  float64
	bounce float64
	pop    *grove.TweenGroup
	scale  float64
}

// NewAcorn creates an acorn centered on its position.
func NewAcorn(env *Env, layer int) *Acorn {
	a := &Acorn{Sprite: *grove.NewSprite(env.Sheets.Sheet(SheetAcorn), layer, grove.NoID), env: env}
	a.Origin = a.Center()
	a.scale = 1
	return a
}

// Collected reports whether the player has picked the acorn up.
func (a *Acorn) Collected() bool { return !a.LocalVisible() }

// Update bobs the acorn and checks for a pickup.
func (a *Acorn) Update(dt float64) {
	if a.pop != nil {
		a.pop.Update(dt)
		if a.pop.Done {
			a.pop = nil
		}
		return
	}
	if a.Collected() {
		return
	}
	a.clock += dt
	a.Position.Y -= a.bounce
	a.bounce = math.Sin(a.clock*bobSpeed+a.Position.X) * bobAmplitude
	a.Position.Y += a.bounce
	a.Sprite.Update(dt)

	root := a.Root()
	if root == nil || !a.Visible() {
		return
	}
	player, ok := grove.FindAs[*Player](root, IDPlayer)
	if !ok || !a.CollidesWith(player) {
		return
	}
	a.SetVisible(false)
	a.pop = grove.TweenValue(&a.scale, 0, popSeconds, ease.InBack)
	a.env.Events.PublishAcorn(a.remaining())
}

// remaining counts the other acorns still to collect.
func (a *Acorn) remaining() int {
	parent := a.Parent()
	if parent == nil {
		return 0
	}
	n := 0
	for _, c := range parent.Children() {
		if other, ok := c.(*Acorn); ok && other != a && !other.Collected() {
			n++
		}
	}
	return n
}

func (a *Acorn) Draw(r grove.Renderer) {
	if a.Sheet == nil || !a.Visible() {
		return
	}
	a.draw(r)
}

// Popping reports whether the pickup shrink is still running.
func (a *Acorn) Popping() bool { return a.pop != nil }

// DrawPop draws the shrinking acorn after pickup, when the scene graph no
// longer draws it.
func (a *Acorn) DrawPop(r grove.Renderer) {
	if a.Sheet == nil || a.pop == nil {
		return
	}
	if p := a.Parent(); p != nil && !p.Base().Visible() {
		return
	}
	a.draw(r)
}

func (a *Acorn) draw(r grove.Renderer) {
	r.DrawRegion(a.Sheet, a.WorldPosition(), 0, a.scale, a.Origin, a.Sheet.FrameRect(a.Frame()), a.Mirror)
}

// Reset shows the acorn again at its resting position.
func (a *Acorn) Reset() {
	a.Sprite.Reset()
	a.Position.Y -= a.bounce
	a.bounce = 0
	a.clock = 0
	a.pop = nil
	a.scale = 1
}

package grove

import "math"

// Collider is an Object with a world-space bounding box and a local opacity
// lookup. Sprite and everything that embeds it implement Collider.
type Collider interface {
	Object
	BoundingBox() Rect
	AlphaAt(x, y int) uint8
}

// Collides reports whether a and b collide. Both must be effectively visible
// and their bounding boxes must intersect; then every integer pixel of the
// overlap is tested until one is non-transparent in both. Sprites whose sheet
// has no opacity table are opaque everywhere, so for them the box test
// decides.
func Collides(a, b Collider) bool {
	if !BoxesCollide(a, b) {
		return false
	}
	ba, bb := a.BoundingBox(), b.BoundingBox()
	overlap := ba.Intersection(bb)
	la := overlap.Position().Sub(ba.Position())
	lb := overlap.Position().Sub(bb.Position())
	for x := 0; float64(x) < overlap.Width; x++ {
		for y := 0; float64(y) < overlap.Height; y++ {
			ax, ay := floor(la.X+float64(x)), floor(la.Y+float64(y))
			bx, by := floor(lb.X+float64(x)), floor(lb.Y+float64(y))
			if a.AlphaAt(ax, ay) != 0 && b.AlphaAt(bx, by) != 0 {
				return true
			}
		}
	}
	return false
}

// BoxesCollide is the broad phase alone: both visible and boxes intersecting.
func BoxesCollide(a, b Collider) bool {
	return a.Base().Visible() && b.Base().Visible() && a.BoundingBox().Intersects(b.BoundingBox())
}

func floor(v float64) int { return int(math.Floor(v)) }

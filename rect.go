package grove

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectAt builds a rectangle from a position and a size.
func RectAt(pos, size Vec2) Rect {
	return Rect{pos.X, pos.Y, size.X, size.Y}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }

// Size returns (Width, Height).
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
}

// Intersection returns the overlapping region of r and other. The result has
// a negative size when the rectangles are disjoint.
func (r Rect) Intersection(other Rect) Rect {
	xmin := max(r.Left(), other.Left())
	xmax := min(r.Right(), other.Right())
	ymin := max(r.Top(), other.Top())
	ymax := min(r.Bottom(), other.Bottom())
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// IntersectionDepth returns the signed distance r must move along each axis
// to stop overlapping other. Each axis is computed independently from the
// distance between the centers and the sum of the half extents; a positive
// component means r sits on the positive side of other.
func (r Rect) IntersectionDepth(other Rect) Vec2 {
	minDist := r.Size().Add(other.Size()).DivScalar(2)
	dist := r.Center().Sub(other.Center())
	var depth Vec2
	if dist.X > 0 {
		depth.X = minDist.X - dist.X
	} else {
		depth.X = -minDist.X - dist.X
	}
	if dist.Y > 0 {
		depth.Y = minDist.Y - dist.Y
	} else {
		depth.Y = -minDist.Y - dist.Y
	}
	return depth
}

// Inflate returns r grown by dw and dh, keeping the top-left corner fixed.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{r.X, r.Y, r.Width + dw, r.Height + dh}
}

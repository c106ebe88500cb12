package grove

// Sprite is a node that draws one frame of a SpriteSheet. Origin is the pivot
// subtracted from the world position before drawing and for the bounding box.
type Sprite struct {
	Node
	Sheet  *SpriteSheet
	Origin Vec2
	Mirror bool
	frame  int
}

// NewSprite creates a sprite showing frame 0 of sheet. sheet may be nil for
// sprites whose sheet is assigned later (see Animated).
func NewSprite(sheet *SpriteSheet, layer int, id ID) *Sprite {
	return &Sprite{Node: Node{Layer: layer, ID: id}, Sheet: sheet}
}

// Frame returns the current frame index.
func (s *Sprite) Frame() int { return s.frame }

// SetFrame selects frame i modulo the number of frames. Negative values are
// ignored.
func (s *Sprite) SetFrame(i int) {
	if i < 0 || s.Sheet == nil {
		return
	}
	s.frame = i % s.Sheet.Frames()
}

// Width returns the frame width, or 0 without a sheet.
func (s *Sprite) Width() float64 {
	if s.Sheet == nil {
		return 0
	}
	return s.Sheet.Width()
}

// Height returns the frame height, or 0 without a sheet.
func (s *Sprite) Height() float64 {
	if s.Sheet == nil {
		return 0
	}
	return s.Sheet.Height()
}

// Size returns (Width, Height).
func (s *Sprite) Size() Vec2 { return Vec2{s.Width(), s.Height()} }

// Center returns the midpoint of a frame in local coordinates. Assigning it
// to Origin centers the sprite on its position.
func (s *Sprite) Center() Vec2 { return s.Size().DivScalar(2) }

// BoundingBox returns the world-space rectangle covered by the current frame.
func (s *Sprite) BoundingBox() Rect {
	return RectAt(s.WorldPosition().Sub(s.Origin), s.Size())
}

// AlphaAt returns the opacity of local pixel (x, y) of the current frame.
func (s *Sprite) AlphaAt(x, y int) uint8 {
	if s.Sheet == nil {
		return 0
	}
	return s.Sheet.AlphaAt(x, y, s.frame, s.Mirror)
}

// CollidesWith reports a pixel-accurate collision with other.
func (s *Sprite) CollidesWith(other Collider) bool {
	return Collides(s, other)
}

// Draw submits the current frame when the sprite is visible.
func (s *Sprite) Draw(r Renderer) {
	if s.Sheet == nil || !s.Visible() {
		return
	}
	r.DrawRegion(s.Sheet, s.WorldPosition(), 0, 1, s.Origin, s.Sheet.FrameRect(s.frame), s.Mirror)
}

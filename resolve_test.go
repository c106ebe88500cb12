package grove

import (
	"math"
	"testing"
)

type fakeTile struct {
	kind    Solidity
	surface Surface
}

// fakeTiles is a sparse 10x10-unit tile map. Missing cells are passable.
type fakeTiles map[[2]int]fakeTile

func (f fakeTiles) CellOf(p Vec2) (int, int) {
	return int(math.Floor(p.X / 10)), int(math.Floor(p.Y / 10))
}

func (f fakeTiles) CellBounds(col, row int) Rect {
	return Rect{float64(col * 10), float64(row * 10), 10, 10}
}

func (f fakeTiles) TileAt(col, row int) (Solidity, Surface) {
	t := f[[2]int{col, row}]
	return t.kind, t.surface
}

// body creates a bottom-center anchored sprite of w x h at pos.
func body(w, h int, pos Vec2) *Sprite {
	s := NewSprite(solidSheet("body", w, h, 1, 1, false), 0, NoID)
	s.Origin = Vec2{float64(w) / 2, float64(h)}
	s.Position = pos
	return s
}

func TestResolveLanding(t *testing.T) {
	tiles := fakeTiles{{0, 2}: {kind: Solid}}
	b := body(6, 10, Vec2{5, 22})
	b.Velocity = Vec2{0, 300}

	c := ResolveTiles(b, tiles, 18)
	if !c.OnGround {
		t.Error("OnGround = false, want true")
	}
	if b.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", b.Velocity.Y)
	}
	if got := b.BoundingBox().Bottom(); got != 19 {
		t.Errorf("bottom = %v, want 19 (one above the tile)", got)
	}
}

func TestResolveHorizontalPush(t *testing.T) {
	// Penetration is 3 horizontally and 10 vertically: push sideways.
	tiles := fakeTiles{{2, 1}: {kind: Solid}}
	b := body(6, 10, Vec2{20, 20})
	b.Velocity = Vec2{400, 0}

	c := ResolveTiles(b, tiles, 20)
	if c.OnGround {
		t.Error("side hit should not ground the body")
	}
	assertVec(t, "Position", b.Position, Vec2{17, 20})
	if b.Velocity.X != 400 {
		t.Errorf("Velocity.X = %v, resolution must not touch horizontal velocity", b.Velocity.X)
	}
}

func TestResolveEqualDepthIsVertical(t *testing.T) {
	// The inflated box overlaps the tile by 4 on both axes.
	tiles := fakeTiles{{1, 1}: {kind: Solid}}
	b := body(10, 8, Vec2{21, 24})

	c := ResolveTiles(b, tiles, 30)
	if c.OnGround {
		t.Error("OnGround = true, the body was below the tile")
	}
	// Pushed down by the depth plus the anti-jitter unit, not sideways.
	assertVec(t, "Position", b.Position, Vec2{21, 29})
}

func TestResolvePlatformOneWay(t *testing.T) {
	tiles := fakeTiles{{0, 2}: {kind: Platform}}

	// Jumping up through the platform from below.
	b := body(6, 10, Vec2{5, 28})
	b.Velocity = Vec2{0, -500}
	if c := ResolveTiles(b, tiles, 32); c.OnGround {
		t.Error("platform grounded a body coming from below")
	}
	assertVec(t, "Position from below", b.Position, Vec2{5, 28})
	if b.Velocity.Y != -500 {
		t.Errorf("Velocity.Y = %v, want -500", b.Velocity.Y)
	}

	// Walking into its side.
	b = body(6, 10, Vec2{12, 25})
	ResolveTiles(b, tiles, 25)
	assertVec(t, "Position from the side", b.Position, Vec2{12, 25})

	// Landing on it from above.
	b = body(6, 10, Vec2{5, 22})
	b.Velocity = Vec2{0, 200}
	if c := ResolveTiles(b, tiles, 18); !c.OnGround {
		t.Error("platform did not ground a body landing from above")
	}
	if got := b.BoundingBox().Bottom(); got != 19 {
		t.Errorf("bottom = %v, want 19", got)
	}
}

func TestResolveMergesSurfaces(t *testing.T) {
	tiles := fakeTiles{
		{0, 2}: {kind: Solid, surface: SurfaceHot},
		{1, 2}: {kind: Solid, surface: SurfaceIcy},
	}
	b := body(16, 10, Vec2{10, 22})
	c := ResolveTiles(b, tiles, 18)
	if !c.OnGround || !c.Surface.Hot() || !c.Surface.Icy() {
		t.Errorf("contact = %+v, want grounded on hot and icy", c)
	}
}

func TestResolveEmptyMap(t *testing.T) {
	b := body(6, 10, Vec2{5, 22})
	b.Velocity = Vec2{0, 100}
	c := ResolveTiles(b, fakeTiles{}, 18)
	if c.OnGround || c.Surface != 0 {
		t.Errorf("contact = %+v, want zero", c)
	}
	assertVec(t, "Position", b.Position, Vec2{5, 22})
}

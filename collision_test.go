package grove

import "testing"

func TestCollidesBroadPhase(t *testing.T) {
	a := NewSprite(solidSheet("a", 10, 10, 1, 1, false), 0, NoID)
	b := NewSprite(solidSheet("b", 10, 10, 1, 1, false), 0, NoID)
	b.Position = Vec2{5, 5}
	if !Collides(a, b) || !Collides(b, a) {
		t.Error("overlapping boxes should collide")
	}
	b.SetVisible(false)
	if Collides(a, b) || BoxesCollide(a, b) {
		t.Error("invisible sprite should not collide")
	}
	b.SetVisible(true)
	b.Position = Vec2{50, 50}
	if Collides(a, b) {
		t.Error("distant sprites should not collide")
	}
}

func TestCollidesPerPixel(t *testing.T) {
	// Both sprites are opaque only on their left half.
	a := NewSprite(halfSheet("a", 10, 10), 0, NoID)
	b := NewSprite(halfSheet("b", 10, 10), 0, NoID)

	// b's opaque half overlaps a's transparent half.
	b.Position = Vec2{5, 0}
	if !BoxesCollide(a, b) {
		t.Fatal("boxes should overlap")
	}
	if Collides(a, b) {
		t.Error("transparent overlap should not collide")
	}

	// Mirroring a moves its opaque half to the right, under b's opaque half.
	a.Mirror = true
	if !Collides(a, b) {
		t.Error("mirrored opaque halves should collide")
	}
	if !a.CollidesWith(b) {
		t.Error("CollidesWith should agree with Collides")
	}
}

func BenchmarkCollidesPerPixel(b *testing.B) {
	s1 := NewSprite(halfSheet("a", 64, 64), 0, NoID)
	s2 := NewSprite(halfSheet("b", 64, 64), 0, NoID)
	s2.Position = Vec2{32, 0}
	for i := 0; i < b.N; i++ {
		Collides(s1, s2)
	}
}

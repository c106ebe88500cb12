package grove

import (
	"math"
	"testing"
)

func TestVec2CopyOps(t *testing.T) {
	a := Vec2{6, 8}
	b := Vec2{2, 4}
	assertVec(t, "Add", a.Add(b), Vec2{8, 12})
	assertVec(t, "Sub", a.Sub(b), Vec2{4, 4})
	assertVec(t, "Mul", a.Mul(b), Vec2{12, 32})
	assertVec(t, "Div", a.Div(b), Vec2{3, 2})
	assertVec(t, "AddScalar", a.AddScalar(1), Vec2{7, 9})
	assertVec(t, "SubScalar", a.SubScalar(1), Vec2{5, 7})
	assertVec(t, "Scale", a.Scale(0.5), Vec2{3, 4})
	assertVec(t, "DivScalar", a.DivScalar(2), Vec2{3, 4})
	assertVec(t, "a unchanged", a, Vec2{6, 8})
}

func TestVec2InPlaceOps(t *testing.T) {
	v := Vec2{1, 2}
	v.AddTo(Vec2{1, 1})
	assertVec(t, "AddTo", v, Vec2{2, 3})
	v.SubFrom(Vec2{1, 1})
	assertVec(t, "SubFrom", v, Vec2{1, 2})
	v.MulWith(Vec2{3, 2})
	assertVec(t, "MulWith", v, Vec2{3, 4})
	v.DivBy(Vec2{3, 2})
	assertVec(t, "DivBy", v, Vec2{1, 2})
	v.ScaleBy(2)
	assertVec(t, "ScaleBy", v, Vec2{2, 4})
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}
	u := v.Unit()
	if math.Abs(u.Len()-1) > 1e-12 {
		t.Errorf("Unit().Len() = %v, want 1", u.Len())
	}
	assertVec(t, "v after Unit", v, Vec2{3, 4})

	var z Vec2
	z.Normalize()
	if !z.IsZero() {
		t.Errorf("normalized zero = %v, want zero", z)
	}
	if !v.Equals(Vec2{3, 4}) || v.Equals(Vec2{4, 3}) {
		t.Error("Equals mismatch")
	}
}

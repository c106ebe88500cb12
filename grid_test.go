package grove

import "testing"

func TestGridAddPlacesRowMajor(t *testing.T) {
	g := NewGrid(2, 3, 10, 20, 0, NoID)
	nodes := make([]*Node, 5)
	for i := range nodes {
		nodes[i] = NewNode(0, NoID)
		g.Add(nodes[i])
	}
	assertVec(t, "node 0", nodes[0].Position, Vec2{0, 0})
	assertVec(t, "node 2", nodes[2].Position, Vec2{20, 0})
	assertVec(t, "node 3", nodes[3].Position, Vec2{0, 20})
	assertVec(t, "node 4", nodes[4].Position, Vec2{10, 20})

	if g.At(1, 1) != Object(nodes[4]) {
		t.Error("At(1, 1) should be the fifth node")
	}
	if g.At(2, 1) != nil {
		t.Error("At on an unfilled cell should be nil")
	}
	if g.At(-1, 0) != nil || g.At(0, 2) != nil {
		t.Error("At outside the grid should be nil")
	}
	// Flat index 3 holds node 3, but column 3 does not exist.
	if g.At(3, 0) != nil {
		t.Error("At(3, 0) should not wrap onto the next row")
	}
}

func TestGridAddAtOverwrites(t *testing.T) {
	g := NewGrid(3, 3, 10, 10, 0, NoID)
	a := NewNode(0, 1)
	b := NewNode(0, 2)
	g.AddAt(a, 2, 2)
	if g.Len() != 9 {
		t.Errorf("Len = %d, want 9 slots after AddAt(2, 2)", g.Len())
	}
	assertVec(t, "a", a.Position, Vec2{20, 20})
	g.AddAt(b, 2, 2)
	if g.At(2, 2) != Object(b) {
		t.Error("AddAt should overwrite the occupant")
	}
	if a.Parent() != nil {
		t.Error("overwritten occupant should be detached")
	}
	g.AddAt(a, 5, 5)
	if a.Parent() != nil {
		t.Error("AddAt outside the grid should be ignored")
	}
}

func TestGridRemoveKeepsCells(t *testing.T) {
	g := NewGrid(1, 3, 10, 10, 0, NoID)
	a, b, c := NewNode(0, 1), NewNode(0, 2), NewNode(0, 3)
	g.Add(a)
	g.Add(b)
	g.Add(c)
	if !g.Remove(b) {
		t.Fatal("Remove(b) = false")
	}
	if g.At(1, 0) != nil {
		t.Error("removed cell should be empty")
	}
	if g.At(2, 0) != Object(c) {
		t.Error("other cells should not shift")
	}
	if g.Find(3) != Object(c) || g.Find(2) != nil {
		t.Error("Find should skip empty cells")
	}
	g.Update(1)
	g.Draw(&recordRenderer{})
	g.Reset()
}

func TestGridGeometry(t *testing.T) {
	root := NewList(0, NoID)
	root.Position = Vec2{100, 0}
	g := NewGrid(2, 2, 72, 55, 0, NoID)
	root.Add(g)
	n := NewNode(0, NoID)
	g.AddAt(n, 1, 1)

	assertVec(t, "AnchorPosition", g.AnchorPosition(n), Vec2{72, 55})
	if got := g.CellBounds(1, 0); got != (Rect{172, 0, 72, 55}) {
		t.Errorf("CellBounds(1, 0) = %v", got)
	}
	col, row := g.CellOf(Vec2{100 + 72*1.5, -1})
	if col != 1 || row != -1 {
		t.Errorf("CellOf = (%d, %d), want (1, -1)", col, row)
	}
}

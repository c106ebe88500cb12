package grove

// Grid is a List whose children occupy row-major cells instead of being
// positioned freely. A child's Position is its cell index multiplied by the
// cell size. Grid children are not layer-sorted: the slot index is the cell.
type Grid struct {
	List
	rows, cols   int
	cellW, cellH float64
}

// NewGrid creates an empty grid of rows x cols cells of the given size.
func NewGrid(rows, cols int, cellW, cellH float64, layer int, id ID) *Grid {
	return &Grid{
		List:  List{Node: Node{Layer: layer, ID: id}},
		rows:  rows,
		cols:  cols,
		cellW: cellW,
		cellH: cellH,
	}
}

func (g *Grid) Rows() int           { return g.rows }
func (g *Grid) Columns() int        { return g.cols }
func (g *Grid) CellWidth() float64  { return g.cellW }
func (g *Grid) CellHeight() float64 { return g.cellH }

// Add places child in the next free slot by insertion count:
// row = n / columns, col = n mod columns.
func (g *Grid) Add(child Object) {
	attach(g, child)
	n := len(g.children)
	g.children = append(g.children, child)
	child.Base().Position = g.cellPosition(n%g.cols, n/g.cols)
}

// AddAt places child in cell (col, row), replacing any occupant. Storage grows
// with empty slots as needed. Cells outside the grid are ignored.
func (g *Grid) AddAt(child Object, col, row int) {
	if !g.inBounds(col, row) {
		return
	}
	attach(g, child)
	idx := row*g.cols + col
	for len(g.children) <= idx {
		g.children = append(g.children, nil)
	}
	if old := g.children[idx]; old != nil && old != child {
		old.Base().parent = nil
	}
	g.children[idx] = child
	child.Base().Position = g.cellPosition(col, row)
}

// At returns the occupant of cell (col, row), or nil when the cell is empty
// or outside the grid. Each coordinate is checked on its own: a column past
// the last one is rejected even when row*columns+col lands on a filled slot.
func (g *Grid) At(col, row int) Object {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.List.At(row*g.cols + col)
}

// Remove empties child's slot without shifting the other cells.
func (g *Grid) Remove(child Object) bool {
	for i, c := range g.children {
		if c != nil && c == child {
			g.children[i] = nil
			child.Base().parent = nil
			return true
		}
	}
	return false
}

// AnchorPosition returns the local position of the cell holding child, or the
// zero vector when child is not in the grid.
func (g *Grid) AnchorPosition(child Object) Vec2 {
	for i, c := range g.children {
		if c != nil && c == child {
			return g.cellPosition(i%g.cols, i/g.cols)
		}
	}
	return Vec2{}
}

// CellBounds returns the world-space rectangle of cell (col, row). Cells
// outside the grid are valid; the rectangle extends the grid's lattice.
func (g *Grid) CellBounds(col, row int) Rect {
	return RectAt(g.WorldPosition().Add(g.cellPosition(col, row)), Vec2{g.cellW, g.cellH})
}

func (g *Grid) cellPosition(col, row int) Vec2 {
	return Vec2{float64(col) * g.cellW, float64(row) * g.cellH}
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellOf returns the cell containing world point p. The result may lie
// outside the grid.
func (g *Grid) CellOf(p Vec2) (col, row int) {
	local := p.Sub(g.WorldPosition())
	return floor(local.X / g.cellW), floor(local.Y / g.cellH)
}

package grove

// Solidity describes how a tile blocks a moving body.
type Solidity uint8

const (
	Passable Solidity = iota // never collides
	Solid                    // blocks from every side
	Platform                 // blocks only bodies landing from above
)

// Surface is a set of tile effects inherited by a body standing on the tile.
type Surface uint8

const (
	SurfaceHot Surface = 1 << iota
	SurfaceIcy
)

func (s Surface) Hot() bool { return s&SurfaceHot != 0 }
func (s Surface) Icy() bool { return s&SurfaceIcy != 0 }

// TileMap is the view of a tile grid needed to resolve collisions against it.
// Coordinates outside the grid are valid queries.
type TileMap interface {
	CellOf(p Vec2) (col, row int)
	CellBounds(col, row int) Rect
	TileAt(col, row int) (Solidity, Surface)
}

// Body is a moving object resolved against a TileMap. Its Position is
// expected to be its bottom-center, the way a platformer character is
// anchored.
type Body interface {
	Base() *Node
	BoundingBox() Rect
}

// Contact is the outcome of one resolution pass.
type Contact struct {
	OnGround bool
	Surface  Surface
}

// Neighborhood scanned around the body's cell: one column either side, two
// rows above and one below. Oversized so fast bodies still find their tiles.
const (
	scanLeft, scanRight = 1, 1
	scanUp, scanDown    = 2, 1
	landingTolerance    = 2
	landingBias         = 1
)

// ResolveTiles pushes body out of the tiles around it and reports whether it
// landed. prevBottom is the body's bottom edge (world Y) after the previous
// pass; the caller stores the body's world Y after this call for the next one.
//
// For each non-passable tile overlapping the body's box (grown downward by
// two units), the axis with the smaller penetration wins. A horizontal hit
// pushes the body sideways, solid tiles only. Otherwise, when the body was
// above the tile last pass it lands: vertical velocity is zeroed and the
// tile's surface is merged into the contact. The vertical push, plus one unit
// against jitter, applies to solid tiles or once the body has landed.
// Equal penetrations take the vertical branch.
func ResolveTiles(body Body, tiles TileMap, prevBottom float64) Contact {
	var c Contact
	n := body.Base()
	col0, row0 := tiles.CellOf(n.WorldPosition())
	for row := row0 - scanUp; row <= row0+scanDown; row++ {
		for col := col0 - scanLeft; col <= col0+scanRight; col++ {
			kind, surface := tiles.TileAt(col, row)
			if kind == Passable {
				continue
			}
			tile := tiles.CellBounds(col, row)
			box := body.BoundingBox().Inflate(0, landingTolerance)
			if !tile.Intersects(box) {
				continue
			}
			depth := box.IntersectionDepth(tile)
			if abs(depth.X) < abs(depth.Y) {
				if kind == Solid {
					n.Position.X += depth.X
				}
				continue
			}
			if prevBottom <= tile.Top() {
				c.OnGround = true
				n.Velocity.Y = 0
				c.Surface |= surface
			}
			if kind == Solid || c.OnGround {
				n.Position.Y += depth.Y + landingBias
			}
		}
	}
	return c
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

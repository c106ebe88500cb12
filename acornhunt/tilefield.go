package acornhunt

import "github.com/phanxgames/grove"

// TileField is the grid of tiles of a level. It implements grove.TileMap.
type TileField struct {
	grove.Grid
}

// NewTileField creates an empty rows x cols field.
func NewTileField(rows, cols int, cellW, cellH float64) *TileField {
	return &TileField{Grid: *grove.NewGrid(rows, cols, cellW, cellH, LayerTiles, IDTiles)}
}

// Tile returns the tile at (col, row), or nil outside the field.
func (f *TileField) Tile(col, row int) *Tile {
	t, _ := f.At(col, row).(*Tile)
	return t
}

// TileType returns the type of the tile at (col, row). Columns outside the
// field are solid walls; rows above or below it are open.
func (f *TileField) TileType(col, row int) TileType {
	if col < 0 || col >= f.Columns() {
		return TileSolid
	}
	if row < 0 || row >= f.Rows() {
		return TileBackground
	}
	if t := f.Tile(col, row); t != nil {
		return t.Type
	}
	return TileBackground
}

// TileAt implements grove.TileMap.
func (f *TileField) TileAt(col, row int) (grove.Solidity, grove.Surface) {
	typ := f.TileType(col, row)
	if typ == TileBackground {
		return grove.Passable, 0
	}
	var s grove.Surface
	if t := f.Tile(col, row); t != nil {
		s = t.Surface()
	}
	return typ.Solidity(), s
}

// Height returns the height of the field in world units.
func (f *TileField) Height() float64 {
	return float64(f.Rows()) * f.CellHeight()
}

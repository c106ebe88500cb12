package acornhunt

import "github.com/phanxgames/grove"

// TileType is how a tile blocks the player.
type TileType uint8

const (
	TileBackground TileType = iota
	TileSolid
	TilePlatform
)

// Solidity maps the tile type onto the collision resolver's terms.
func (t TileType) Solidity() grove.Solidity {
	switch t {
	case TileSolid:
		return grove.Solid
	case TilePlatform:
		return grove.Platform
	}
	return grove.Passable
}

// Tile is one cell of a TileField.
type Tile struct {
	grove.Sprite
	Type TileType
	Hot  bool
	Icy  bool
}

// NewTile creates a tile drawn with sheet. Background tiles may pass nil.
func NewTile(sheet *grove.SpriteSheet, typ TileType, hot, icy bool) *Tile {
	return &Tile{
		Sprite: *grove.NewSprite(sheet, LayerTiles, grove.NoID),
		Type:   typ,
		Hot:    hot,
		Icy:    icy,
	}
}

// Surface returns the tile's effects.
func (t *Tile) Surface() grove.Surface {
	var s grove.Surface
	if t.Hot {
		s |= grove.SurfaceHot
	}
	if t.Icy {
		s |= grove.SurfaceIcy
	}
	return s
}

// Draw skips background tiles.
func (t *Tile) Draw(r grove.Renderer) {
	if t.Type == TileBackground {
		return
	}
	t.Sprite.Draw(r)
}

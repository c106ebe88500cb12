// Package grove is a small retained-mode scene graph for 2D games built on
// [Ebitengine], together with the tile collision resolution a platformer
// needs.
//
// # Scene graph
//
// Every element embeds [Node], which carries a layer, an [ID], a local
// position, a velocity and a local visibility flag. Composites own children:
//
//	level := grove.NewList(0, IDLevel)
//	level.Add(background)
//	level.Add(player)
//
// A [List] keeps children sorted by ascending layer (stable for equal
// layers), draws them in that order skipping invisible ones, updates them in
// the same order and dispatches input in reverse so the topmost child sees it
// first. A [Grid] places children in row-major cells instead.
//
// Effective visibility and world position are derived by walking the parent
// chain and are never cached. Siblings find each other by id:
//
//	tiles, ok := grove.FindAs[*TileField](player.Root(), IDTiles)
//
// # Collision
//
// [Collides] is a bounding-box test refined per pixel for sheets loaded with
// an opacity table. [ResolveTiles] separates a moving body from a tile grid
// using per-axis penetration depth, one-way platforms and landing detection.
//
// # Running
//
// Collaborators are interfaces: [Input], [Renderer] and [Audio]. [Game] adapts a
// top-level [Loop] (usually a [StateManager]) to ebiten.Game at a fixed time
// step, waiting on an [AssetCatalog] before building anything.
//
// [Ebitengine]: https://ebitengine.org
package grove

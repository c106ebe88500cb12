// Package acornhunt is a small platformer built on grove.
//
// The player collects every acorn of a level and walks into the exit before
// the timer runs out. Hot tiles make the timer run twice as fast; icy tiles
// halve its rate and make the player slide. Levels are described in YAML
// (see levels.yaml) as rows of single-character tile codes:
//
//	.  background          #  solid wall
//	-  platform            ^  hot wall
//	+  hot platform        *  icy wall
//	@  icy platform        A  acorn
//	X  exit                1  player start
//
// Objects find each other through small integer IDs (see ids.go) looked up
// in the scene tree with grove.FindAs, so a level can be rebuilt without
// rewiring references.
package acornhunt

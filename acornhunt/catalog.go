package acornhunt

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

// Level validation errors, wrapped with the offending level's number.
var (
	ErrEmptyLevel     = errors.New("level has no tiles")
	ErrRaggedLevel    = errors.New("level rows differ in length")
	ErrNoPlayerStart  = errors.New("level has no player start")
	ErrMultipleStarts = errors.New("level has more than one player start")
	ErrNoExit         = errors.New("level has no exit")
)

// LevelData describes one level. Tiles holds one string per row; see the
// package documentation for the tile codes.
type LevelData struct {
	Hint       string   `yaml:"hint"`
	Background int      `yaml:"background"`
	Locked     bool     `yaml:"locked"`
	Solved     bool     `yaml:"solved"`
	Tiles      []string `yaml:"tiles"`
}

func (d *LevelData) Rows() int { return len(d.Tiles) }

func (d *LevelData) Columns() int {
	if len(d.Tiles) == 0 {
		return 0
	}
	return len(d.Tiles[0])
}

func (d *LevelData) validate() error {
	if len(d.Tiles) == 0 || len(d.Tiles[0]) == 0 {
		return ErrEmptyLevel
	}
	starts, exits := 0, 0
	for i, row := range d.Tiles {
		if len(row) != len(d.Tiles[0]) {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), len(d.Tiles[0]), ErrRaggedLevel)
		}
		starts += strings.Count(row, "1")
		exits += strings.Count(row, "X")
	}
	switch {
	case starts == 0:
		return ErrNoPlayerStart
	case starts > 1:
		return ErrMultipleStarts
	case exits == 0:
		return ErrNoExit
	}
	return nil
}

// LevelCatalog is the ordered list of levels with their progress flags.
type LevelCatalog struct {
	levels []*LevelData
}

type catalogFile struct {
	Levels []*LevelData `yaml:"levels"`
}

// LoadLevelCatalog parses and validates a YAML level catalog.
func LoadLevelCatalog(data []byte) (*LevelCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("parse levels: no levels")
	}
	for i, l := range f.Levels {
		if l == nil {
			return nil, fmt.Errorf("level %d: %w", i+1, ErrEmptyLevel)
		}
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return &LevelCatalog{levels: f.Levels}, nil
}

// DefaultLevelCatalog returns the levels shipped with the game.
func DefaultLevelCatalog() (*LevelCatalog, error) {
	return LoadLevelCatalog(defaultLevels)
}

// Len returns the number of levels.
func (c *LevelCatalog) Len() int { return len(c.levels) }

// At returns level i, or nil out of range.
func (c *LevelCatalog) At(i int) *LevelData {
	if i < 0 || i >= len(c.levels) {
		return nil
	}
	return c.levels[i]
}

// Locked reports whether level i is locked. Unknown levels are locked.
func (c *LevelCatalog) Locked(i int) bool {
	l := c.At(i)
	return l == nil || l.Locked
}

// Solved reports whether level i has been solved.
func (c *LevelCatalog) Solved(i int) bool {
	l := c.At(i)
	return l != nil && l.Solved
}

// Unlock makes level i playable.
func (c *LevelCatalog) Unlock(i int) {
	if l := c.At(i); l != nil {
		l.Locked = false
	}
}

// MarkSolved records level i as solved.
func (c *LevelCatalog) MarkSolved(i int) {
	if l := c.At(i); l != nil {
		l.Solved = true
	}
}

// LevelStatus is the persisted progress of one level.
type LevelStatus struct {
	Locked bool `json:"locked"`
	Solved bool `json:"solved"`
}

// Status returns the progress flags of every level.
func (c *LevelCatalog) Status() []LevelStatus {
	s := make([]LevelStatus, len(c.levels))
	for i, l := range c.levels {
		s[i] = LevelStatus{Locked: l.Locked, Solved: l.Solved}
	}
	return s
}

// ApplyStatus overwrites the progress flags with s. Entries beyond the
// catalog are ignored; levels beyond s keep their flags.
func (c *LevelCatalog) ApplyStatus(s []LevelStatus) {
	for i := range min(len(s), len(c.levels)) {
		c.levels[i].Locked = s[i].Locked
		c.levels[i].Solved = s[i].Solved
	}
}

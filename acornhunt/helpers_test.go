package acornhunt

import (
	"image"
	"strings"
	"testing"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/internal/storage"
)

const dt = 1.0 / 60

// fakeSheets builds opaque single-frame sheets on demand.
type fakeSheets map[string]*grove.SpriteSheet

var sheetSizes = map[string][2]int{
	SheetPlayerIdle:    {40, 50},
	SheetPlayerRun:     {40, 50},
	SheetPlayerJump:    {40, 50},
	SheetPlayerExplode: {40, 50},
	SheetAcorn:         {20, 20},
	SheetGoal:          {60, 60},
	SheetButtonsPlayer: {50, 50},
	SheetLevelLocked:   {100, 100},
	SheetLevelSolved:   {100, 100},
	SheetLevelUnsolved: {100, 100},
	SheetGameOver:      {400, 200},
	SheetWellDone:      {400, 200},
	SheetGameOverTap:   {400, 200},
	SheetWellDoneTap:   {400, 200},
	SheetButtonPlay:    {120, 60},
	SheetButtonHelp:    {120, 60},
	SheetButtonBack:    {120, 60},
	SheetButtonQuit:    {60, 60},
}

func (f fakeSheets) Sheet(name string) *grove.SpriteSheet {
	if s, ok := f[name]; ok {
		return s
	}
	size, ok := sheetSizes[name]
	if !ok {
		size = [2]int{72, 55}
	}
	img := image.NewNRGBA(image.Rect(0, 0, size[0], size[1]))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	s := grove.NewSpriteSheet(name, img, 1, 1, false)
	f[name] = s
	return s
}

// recordAudio remembers every sound played.
type recordAudio struct{ played []string }

func (a *recordAudio) Play(name string) { a.played = append(a.played, name) }

func (a *recordAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

// levelYAML renders rows as a one-level catalog entry.
func levelYAML(locked bool, rows ...string) string {
	var b strings.Builder
	b.WriteString("  - hint: test\n    background: 1\n")
	if locked {
		b.WriteString("    locked: true\n")
	}
	b.WriteString("    tiles:\n")
	for _, r := range rows {
		b.WriteString("      - \"" + r + "\"\n")
	}
	return b.String()
}

func newTestEnv(t *testing.T, levels ...string) (*Env, *recordAudio) {
	t.Helper()
	catalog, err := LoadLevelCatalog([]byte("levels:\n" + strings.Join(levels, "")))
	if err != nil {
		t.Fatalf("LoadLevelCatalog: %v", err)
	}
	audio := &recordAudio{}
	env := &Env{Sheets: fakeSheets{}, Levels: catalog, Audio: audio, Store: storage.NewMemory()}
	env.withDefaults()
	subscribeSounds(env)
	subscribeProgress(env)
	return env, audio
}

// flatLevel is a floor with the player start at column 1 and the exit at
// column 3.
var flatLevel = levelYAML(false,
	".....",
	".1.X.",
	"#####",
)

// tick runs one input and update pass on l and delivers its events.
func tick(env *Env, l *Level, in grove.Input) {
	l.HandleInput(in, dt)
	l.Update(dt)
	env.Events.Flush()
}

func idle() grove.Input { return grove.NewScriptedInput(false) }

// countRenderer counts draw calls.
type countRenderer struct {
	regions int
	texts   []string
}

func (r *countRenderer) DrawRegion(*grove.SpriteSheet, grove.Vec2, float64, float64, grove.Vec2, image.Rectangle, bool) {
	r.regions++
}

func (r *countRenderer) DrawText(s string, _, _ grove.Vec2, _ grove.Color, _ grove.TextAlign, _ string, _ float64) {
	r.texts = append(r.texts, s)
}

package acornhunt

import (
	"testing"

	"github.com/phanxgames/grove"
)

func TestLevelLayout(t *testing.T) {
	env, _ := newTestEnv(t, levelYAML(false,
		".A...",
		".1.X.",
		"#####",
	))
	l := NewLevel(env, 0)

	exit, ok := grove.FindAs[*grove.Sprite](l, IDExit)
	if !ok {
		t.Fatal("exit missing")
	}
	if got, want := exit.BoundingBox(), (grove.Rect{X: 216, Y: 50, Width: 60, Height: 60}); got != want {
		t.Errorf("exit box = %v, want %v", got, want)
	}
	if n := l.Acorns().Len(); n != 1 {
		t.Fatalf("acorns = %d, want 1", n)
	}
	acorn := l.Acorns().At(0).(*Acorn)
	if got, want := acorn.Position, (grove.Vec2{X: 108, Y: 17.5}); got != want {
		t.Errorf("acorn at %v, want %v", got, want)
	}
	if got, want := l.Player().Position, (grove.Vec2{X: 72, Y: 110}); got != want {
		t.Errorf("player at %v, want %v", got, want)
	}
	if l.Timer().Left() != env.Settings.TimeLimit || !l.Timer().Running {
		t.Errorf("timer left %v running %v", l.Timer().Left(), l.Timer().Running)
	}
	if _, ok := grove.FindAs[*grove.Button](l, IDButtonJump); ok {
		t.Error("touch buttons created without touch")
	}
}

func TestLevelCompletesOnce(t *testing.T) {
	env, audio := newTestEnv(t, flatLevel)
	var solved []int
	env.Events.OnSolved(func(ev LevelSolved) { solved = append(solved, ev.Level) })
	l := NewLevel(env, 0)
	p := l.Player()
	p.Position.X = 240

	for range 5 {
		tick(env, l, idle())
	}
	if !l.Completed() || !p.Finished() {
		t.Fatalf("Completed %v Finished %v, want both", l.Completed(), p.Finished())
	}
	if len(solved) != 1 || solved[0] != 0 {
		t.Errorf("solved events = %v, want [0]", solved)
	}
	if audio.count(SoundPlayerWon) != 1 {
		t.Errorf("won sounds = %d, want 1", audio.count(SoundPlayerWon))
	}
	if !env.Levels.Solved(0) {
		t.Error("catalog does not record the level as solved")
	}
	if l.Timer().Running {
		t.Error("timer still running")
	}
	if l.GameOver() {
		t.Error("finished level reports game over")
	}
}

func TestLevelNeedsEveryAcorn(t *testing.T) {
	env, audio := newTestEnv(t, levelYAML(false,
		".....",
		".1AX.",
		"#####",
	))
	var remaining []int
	env.Events.OnAcorn(func(ev AcornCollected) { remaining = append(remaining, ev.Remaining) })
	l := NewLevel(env, 0)
	p := l.Player()
	acorn := l.Acorns().At(0).(*Acorn)

	p.Position.X = 240
	tick(env, l, idle())
	if l.Completed() {
		t.Fatal("completed with an acorn left")
	}

	p.Position.X = 180
	for i := 0; i < 30 && !acorn.Collected(); i++ {
		tick(env, l, idle())
	}
	if !acorn.Collected() {
		t.Fatal("acorn never collected")
	}
	if len(remaining) != 1 || remaining[0] != 0 {
		t.Errorf("acorn events = %v, want [0]", remaining)
	}
	if audio.count(SoundAcornCollected) != 1 {
		t.Errorf("acorn sounds = %d, want 1", audio.count(SoundAcornCollected))
	}

	p.Position.X = 240
	tick(env, l, idle())
	if !l.Completed() {
		t.Error("not completed after collecting every acorn")
	}
}

func TestLevelCompletesOnTheTickTheLastAcornIsTaken(t *testing.T) {
	env, _ := newTestEnv(t, levelYAML(false,
		".....",
		".1AX.",
		"#####",
	))
	var solved []int
	env.Events.OnSolved(func(ev LevelSolved) { solved = append(solved, ev.Level) })
	l := NewLevel(env, 0)
	acorn := l.Acorns().At(0).(*Acorn)
	p := l.Player()
	// Straddles the acorn and the exit.
	p.Position.X = 200

	tick(env, l, idle())
	if !acorn.Collected() || acorn.Visible() {
		t.Fatalf("Collected %v Visible %v, want collected and hidden", acorn.Collected(), acorn.Visible())
	}
	if !l.Completed() || !p.Finished() {
		t.Errorf("Completed %v Finished %v, want both on the pickup tick", l.Completed(), p.Finished())
	}
	if len(solved) != 1 {
		t.Errorf("solved events = %v, want one", solved)
	}

	r := &countRenderer{}
	acorn.DrawPop(r)
	if !acorn.Popping() || r.regions != 1 {
		t.Errorf("Popping %v draws %d, want the pop drawn once", acorn.Popping(), r.regions)
	}
	for range 30 {
		tick(env, l, idle())
	}
	r = &countRenderer{}
	acorn.DrawPop(r)
	if acorn.Popping() || r.regions != 0 {
		t.Errorf("Popping %v draws %d after the pop ended", acorn.Popping(), r.regions)
	}
}

func TestLevelTimeRunsOut(t *testing.T) {
	env, audio := newTestEnv(t, flatLevel)
	l := NewLevel(env, 0)
	tick(env, l, idle())
	l.Timer().left = 0.01

	for range 3 {
		tick(env, l, idle())
	}
	p := l.Player()
	if !p.Exploded() || p.Alive() {
		t.Errorf("exploded %v alive %v", p.Exploded(), p.Alive())
	}
	if p.CurrentAnimation() != AnimExplode {
		t.Errorf("animation = %q, want %q", p.CurrentAnimation(), AnimExplode)
	}
	if audio.count(SoundPlayerExplode) != 1 {
		t.Errorf("explode sounds = %d, want 1", audio.count(SoundPlayerExplode))
	}
	if !l.GameOver() {
		t.Error("GameOver = false")
	}
}

func TestLevelResetRestoresEverything(t *testing.T) {
	env, _ := newTestEnv(t, levelYAML(false,
		".....",
		".1AX.",
		"#####",
	))
	l := NewLevel(env, 0)
	p := l.Player()
	acorn := l.Acorns().At(0).(*Acorn)
	start := p.Position

	p.Position.X = 180
	for i := 0; i < 30 && !acorn.Collected(); i++ {
		tick(env, l, idle())
	}
	for range 320 {
		l.Update(dt)
	}
	p.Explode()

	l.Reset()
	if acorn.Collected() || !acorn.Visible() {
		t.Error("acorn still collected after reset")
	}
	if p.Position != start || !p.Alive() {
		t.Errorf("player at %v alive %v", p.Position, p.Alive())
	}
	if l.Timer().Left() != env.Settings.TimeLimit {
		t.Errorf("timer left = %v", l.Timer().Left())
	}
	hint, _ := grove.FindAs[*VisibilityTimer](l, IDHintTimer)
	if !hint.target.Base().Visible() {
		t.Error("hint hidden after reset")
	}
}

func TestLevelQuitGoesToMenu(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   func() grove.Input
	}{
		{"button", func() grove.Input {
			in := grove.NewScriptedInput(false)
			in.InjectPress(40, 30)
			in.Advance()
			return in
		}},
		{"key", func() grove.Input {
			in := grove.NewScriptedInput(false)
			in.InjectKeyDown(grove.KeyBack)
			in.Advance()
			return in
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			env, _ := newTestEnv(t, flatLevel)
			l := NewLevel(env, 0)
			menu := grove.NewList(0, grove.NoID)
			env.States.Add(l)
			env.Screens.LevelMenu = env.States.Add(menu)
			env.States.SwitchTo(0)
			l.Player().Position.X = 300

			l.HandleInput(tc.in(), dt)
			if env.States.Current() != grove.Loop(menu) {
				t.Error("did not switch to the level menu")
			}
			if l.Player().Position.X != 72 {
				t.Errorf("player x = %v, want reset to 72", l.Player().Position.X)
			}
		})
	}
}

func TestHintHidesAfterDelay(t *testing.T) {
	env, _ := newTestEnv(t, flatLevel)
	l := NewLevel(env, 0)
	hint, ok := grove.FindAs[*VisibilityTimer](l, IDHintTimer)
	if !ok {
		t.Fatal("hint timer missing")
	}
	for range 290 {
		l.Update(dt)
	}
	if !hint.target.Base().Visible() {
		t.Fatal("hint hidden early")
	}
	for range 20 {
		l.Update(dt)
	}
	if hint.target.Base().Visible() {
		t.Error("hint still visible")
	}
}

package acornhunt

import (
	"testing"

	"github.com/phanxgames/grove"
)

func TestPlayerStartsOnTheGround(t *testing.T) {
	env, _ := newTestEnv(t, flatLevel)
	p := NewLevel(env, 0).Player()
	if p == nil {
		t.Fatal("level has no player")
	}
	if got, want := p.Position, (grove.Vec2{X: 72, Y: 110}); got != want {
		t.Errorf("start = %v, want %v", got, want)
	}
	if !p.Alive() || !p.OnGround() || p.CurrentAnimation() != AnimIdle {
		t.Errorf("alive %v onGround %v anim %q", p.Alive(), p.OnGround(), p.CurrentAnimation())
	}
	if got := p.BoundingBox(); got != (grove.Rect{X: 52, Y: 60, Width: 40, Height: 50}) {
		t.Errorf("BoundingBox = %v", got)
	}
}

func TestPlayerLandsOnSolidTile(t *testing.T) {
	env, _ := newTestEnv(t, flatLevel)
	l := NewLevel(env, 0)
	p := l.Player()

	// One tile height above the floor, falling.
	p.Position.Y -= env.Settings.CellHeight
	p.Velocity.Y = 600
	p.prevBottom = p.Position.Y
	p.onGround = false

	for i := 0; i < 30 && !p.OnGround(); i++ {
		tick(env, l, idle())
	}
	if !p.OnGround() {
		t.Fatal("player never landed")
	}
	if p.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", p.Velocity.Y)
	}
	floorTop := 2 * env.Settings.CellHeight
	if bottom := p.BoundingBox().Bottom(); bottom < floorTop-2 || bottom > floorTop {
		t.Errorf("bottom = %v, want within 2 of the floor top %v", bottom, floorTop)
	}
}

func TestPlayerWalksAndJumps(t *testing.T) {
	env, audio := newTestEnv(t, flatLevel)
	l := NewLevel(env, 0)
	p := l.Player()
	tick(env, l, idle())

	in := grove.NewScriptedInput(false)
	in.InjectKeyDown(grove.KeyLeft)
	in.Advance()
	p.HandleInput(in, dt)
	if p.Velocity.X != -env.Settings.WalkingSpeed || !p.Mirror {
		t.Errorf("walking left: vx %v mirror %v", p.Velocity.X, p.Mirror)
	}

	in.InjectKeyUp(grove.KeyLeft)
	in.Advance()
	p.HandleInput(in, dt)
	if p.Velocity.X != 0 || !p.Mirror {
		t.Errorf("released on ground: vx %v mirror %v; want stop, keep facing", p.Velocity.X, p.Mirror)
	}

	in.InjectKeyDown(grove.KeyJump)
	in.Advance()
	p.HandleInput(in, dt)
	env.Events.Flush()
	if p.Velocity.Y != -env.Settings.JumpSpeed {
		t.Errorf("Velocity.Y = %v, want %v", p.Velocity.Y, -env.Settings.JumpSpeed)
	}
	if audio.count(SoundPlayerJump) != 1 {
		t.Errorf("jump sounds = %d, want 1", audio.count(SoundPlayerJump))
	}

	l.Update(dt)
	if p.OnGround() || p.CurrentAnimation() != AnimJump {
		t.Errorf("after jump: onGround %v anim %q", p.OnGround(), p.CurrentAnimation())
	}

	// Holding jump in the air does nothing.
	in.Advance()
	vy := p.Velocity.Y
	p.HandleInput(in, dt)
	if p.Velocity.Y != vy {
		t.Error("jumped again in the air")
	}
}

func TestPlayerSlidesOnIce(t *testing.T) {
	env, _ := newTestEnv(t, levelYAML(false,
		".....",
		".1.X.",
		"@@@@@",
	))
	l := NewLevel(env, 0)
	p := l.Player()
	tick(env, l, idle())
	if !p.OnIce() || !p.OnGround() {
		t.Fatalf("onIce %v onGround %v, want both", p.OnIce(), p.OnGround())
	}
	if m := l.Timer().Multiplier; m != 0.5 {
		t.Errorf("timer multiplier on ice = %v, want 0.5", m)
	}

	p.Velocity.X = env.Settings.WalkingSpeed
	p.HandleInput(idle(), dt)
	if want := 1.5 * env.Settings.WalkingSpeed; p.Velocity.X != want {
		t.Errorf("Velocity.X = %v, want %v (still sliding)", p.Velocity.X, want)
	}

	p.Velocity.X = -env.Settings.WalkingSpeed
	p.HandleInput(idle(), dt)
	if want := -1.5 * env.Settings.WalkingSpeed; p.Velocity.X != want {
		t.Errorf("Velocity.X = %v, want %v", p.Velocity.X, want)
	}
}

func TestHotTilesSpeedUpTimer(t *testing.T) {
	env, _ := newTestEnv(t, levelYAML(false,
		".....",
		".1.X.",
		"^^^^^",
	))
	l := NewLevel(env, 0)
	tick(env, l, idle())
	if !l.Player().OnHot() {
		t.Fatal("player not on a hot tile")
	}
	if m := l.Timer().Multiplier; m != 2 {
		t.Errorf("timer multiplier = %v, want 2", m)
	}
}

func TestPlayerFallsOutOfTheWorld(t *testing.T) {
	env, audio := newTestEnv(t, levelYAML(false,
		".....",
		".1.X.",
		"#...#",
	))
	l := NewLevel(env, 0)
	p := l.Player()
	p.Position.X = 2.5 * env.Settings.CellWidth
	for i := 0; i < 120 && p.Alive(); i++ {
		tick(env, l, idle())
	}
	if p.Alive() {
		t.Fatal("player survived falling off the world")
	}
	if audio.count(SoundPlayerFall) != 1 || audio.count(SoundPlayerDie) != 1 {
		t.Errorf("sounds = %v, want one fall and one die", audio.played)
	}
	if !l.GameOver() || l.Timer().Running {
		t.Errorf("GameOver %v, timer running %v", l.GameOver(), l.Timer().Running)
	}
}

func TestPlayerDieIsIdempotent(t *testing.T) {
	env, audio := newTestEnv(t, flatLevel)
	p := NewLevel(env, 0).Player()
	p.Die(false)
	if p.Alive() || p.Velocity.Y != -env.Settings.DeathPop {
		t.Errorf("alive %v vy %v", p.Alive(), p.Velocity.Y)
	}
	p.Die(true)
	p.Explode()
	p.LevelFinished()
	env.Events.Flush()
	if len(audio.played) != 0 || p.Exploded() || p.Finished() {
		t.Errorf("transitions after death: sounds %v exploded %v finished %v", audio.played, p.Exploded(), p.Finished())
	}
}

func TestPlayerResetRestoresStart(t *testing.T) {
	env, _ := newTestEnv(t, flatLevel)
	p := NewLevel(env, 0).Player()
	start := p.Position
	p.Explode()
	p.Position = grove.Vec2{X: 500, Y: 10}
	p.Reset()
	if p.Position != start || !p.Alive() || p.Exploded() || p.CurrentAnimation() != AnimIdle {
		t.Errorf("after Reset: pos %v alive %v exploded %v anim %q",
			p.Position, p.Alive(), p.Exploded(), p.CurrentAnimation())
	}
	if p.Velocity != (grove.Vec2{}) {
		t.Errorf("Velocity = %v, want zero", p.Velocity)
	}
}

func TestTouchButtonsMovePlayer(t *testing.T) {
	env, _ := newTestEnv(t, flatLevel)
	env.Touch = true
	l := NewLevel(env, 0)
	p := l.Player()
	right, ok := grove.FindAs[*grove.Button](l, IDButtonWalkRight)
	if !ok {
		t.Fatal("touch buttons missing")
	}

	in := grove.NewScriptedInput(true)
	c := right.BoundingBox().Center()
	in.InjectPress(c.X, c.Y)
	in.Advance()
	l.HandleInput(in, dt)
	if p.Velocity.X != env.Settings.WalkingSpeed {
		t.Errorf("Velocity.X = %v, want %v", p.Velocity.X, env.Settings.WalkingSpeed)
	}
}

package acornhunt

import "github.com/phanxgames/grove"

// Animation names.
const (
	AnimIdle    = "idle"
	AnimRun     = "run"
	AnimJump    = "jump"
	AnimExplode = "explode"
)

// Player is the character controlled by the user. Its position is its
// bottom-center. It finds the timer, the tile field and the touch buttons of
// its level by ID.
type Player struct {
	grove.Animated
	env   *Env
	start grove.Vec2

	prevBottom float64
	onGround   bool
	alive      bool
	finished   bool
	exploded   bool
	hot        bool
	icy        bool
}

// NewPlayer creates a player that starts at start (bottom-center).
func NewPlayer(env *Env, start grove.Vec2, layer int, id grove.ID) *Player {
	p := &Player{Animated: *grove.NewAnimated(layer, id), env: env, start: start}
	p.LoadAnimation(AnimIdle, env.Sheets.Sheet(SheetPlayerIdle), true, 0)
	p.LoadAnimation(AnimRun, env.Sheets.Sheet(SheetPlayerRun), true, 0.08)
	p.LoadAnimation(AnimJump, env.Sheets.Sheet(SheetPlayerJump), false, 0.03)
	p.LoadAnimation(AnimExplode, env.Sheets.Sheet(SheetPlayerExplode), false, 0.01)
	p.Reset()
	return p
}

func (p *Player) Alive() bool    { return p.alive }
func (p *Player) Finished() bool { return p.finished }
func (p *Player) Exploded() bool { return p.exploded }
func (p *Player) OnGround() bool { return p.onGround }

// Exploding reports whether the explode animation is still playing.
func (p *Player) Exploding() bool { return p.exploded && !p.AnimationEnded() }

// OnHot and OnIce report the surface effects of the tiles last landed on.
func (p *Player) OnHot() bool { return p.hot }
func (p *Player) OnIce() bool { return p.icy }

// Reset puts the player back on its start position, alive and idle.
func (p *Player) Reset() {
	p.Animated.Reset()
	p.PlayAnimation(AnimIdle)
	p.Position = p.start
	p.Velocity = grove.Vec2{}
	p.Origin = grove.Vec2{X: p.Width() / 2, Y: p.Height()}
	p.prevBottom = p.BoundingBox().Bottom()
	p.onGround = true
	p.alive = true
	p.exploded = false
	p.finished = false
	p.hot = false
	p.icy = false
}

// HandleInput walks and jumps. On ice the player keeps sliding at 1.5 times
// the walking speed; elsewhere it stops when no direction is held.
func (p *Player) HandleInput(in grove.Input, _ float64) {
	if !p.alive || p.finished {
		return
	}
	speed := p.env.Settings.WalkingSpeed
	if p.icy {
		speed *= 1.5
		p.Velocity.X = sign(p.Velocity.X) * speed
	} else if p.onGround {
		p.Velocity.X = 0
	}

	left, right, jump := p.controls(in)
	if left {
		p.Velocity.X = -speed
	} else if right {
		p.Velocity.X = speed
	}
	if p.Velocity.X != 0 {
		p.Mirror = p.Velocity.X < 0
	}
	if jump && p.onGround {
		p.Jump()
	}
}

// controls reads the walk and jump intents from the keyboard, or from the
// on-screen buttons on touch devices.
func (p *Player) controls(in grove.Input) (left, right, jump bool) {
	if !in.TouchDevice() {
		return in.Down(grove.KeyLeft), in.Down(grove.KeyRight), in.Pressed(grove.KeyJump)
	}
	root := p.Root()
	if root == nil {
		return false, false, false
	}
	if b, ok := grove.FindAs[*grove.Button](root, IDButtonWalkLeft); ok {
		left = b.Down()
	}
	if b, ok := grove.FindAs[*grove.Button](root, IDButtonWalkRight); ok {
		right = b.Down()
	}
	if b, ok := grove.FindAs[*grove.Button](root, IDButtonJump); ok {
		jump = b.Pressed()
	}
	return left, right, jump
}

// Update animates and moves the player, applies gravity and resolves tile
// collisions, then picks the animation and the timer rate for this tick.
func (p *Player) Update(dt float64) {
	p.Animated.Update(dt)
	if !p.exploded {
		p.Velocity.Y += p.env.Settings.Gravity
	}
	root := p.Root()
	var tiles *TileField
	if root != nil {
		tiles, _ = grove.FindAs[*TileField](root, IDTiles)
	}
	if p.alive && tiles != nil {
		p.resolve(tiles)
	}
	if !p.alive || p.finished {
		return
	}

	switch {
	case p.onGround && p.Velocity.X == 0:
		p.PlayAnimation(AnimIdle)
	case p.onGround:
		p.PlayAnimation(AnimRun)
	case p.Velocity.Y < 0:
		p.PlayAnimation(AnimJump)
	}

	if root != nil {
		if timer, ok := grove.FindAs[*Timer](root, IDTimer); ok {
			timer.Multiplier = p.TimerMultiplier()
		}
	}
	if tiles != nil && p.BoundingBox().Top() >= tiles.WorldPosition().Y+tiles.Height() {
		p.Die(true)
	}
}

// TimerMultiplier is the countdown rate for the current surface.
func (p *Player) TimerMultiplier() float64 {
	switch {
	case p.hot:
		return 2
	case p.icy:
		return 0.5
	}
	return 1
}

func (p *Player) resolve(tiles *TileField) {
	c := grove.ResolveTiles(p, tiles, p.prevBottom)
	p.onGround = c.OnGround
	p.hot = c.Surface.Hot()
	p.icy = c.Surface.Icy()
	p.prevBottom = p.WorldPosition().Y
}

// Jump launches the player upward.
func (p *Player) Jump() {
	p.env.Events.PublishPlayer(PlayerJumped)
	p.Velocity.Y = -p.env.Settings.JumpSpeed
}

// Die kills the player. Falling off the world plays the fall sound;
// any other death pops the player upward.
func (p *Player) Die(falling bool) {
	if !p.alive || p.finished {
		return
	}
	p.alive = false
	p.Velocity.X = 0
	if falling {
		p.env.Events.PublishPlayer(PlayerFell)
		p.env.Events.PublishPlayer(PlayerDied)
		return
	}
	p.Velocity.Y = -p.env.Settings.DeathPop
}

// Explode kills the player in place when the time is up.
func (p *Player) Explode() {
	if !p.alive || p.finished {
		return
	}
	p.alive = false
	p.exploded = true
	p.Velocity = grove.Vec2{}
	p.PlayAnimation(AnimExplode)
	p.env.Events.PublishPlayer(PlayerExploded)
}

// LevelFinished stops the player on the exit.
func (p *Player) LevelFinished() {
	if !p.alive || p.finished {
		return
	}
	p.finished = true
	p.Velocity.X = 0
	p.env.Events.PublishPlayer(PlayerWon)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

var _ grove.Collider = (*Player)(nil)

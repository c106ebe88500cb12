package grove

import "go.uber.org/zap"

// DefaultFrameTime is the per-frame duration used when an animation is
// loaded with a non-positive frame time.
const DefaultFrameTime = 0.1

// Animation is a sheet played frame by frame.
type Animation struct {
	Sheet     *SpriteSheet
	Loop      bool
	FrameTime float64
}

// Animated is a Sprite that cycles through named animations. Exactly one
// animation is current once PlayAnimation has been called.
type Animated struct {
	Sprite
	animations map[string]*Animation
	current    string
	elapsed    float64
}

// NewAnimated creates an animated sprite with no animations.
func NewAnimated(layer int, id ID) *Animated {
	return &Animated{
		Sprite:     Sprite{Node: Node{Layer: layer, ID: id}},
		animations: make(map[string]*Animation),
	}
}

// LoadAnimation registers sheet under name.
func (a *Animated) LoadAnimation(name string, sheet *SpriteSheet, loop bool, frameTime float64) {
	if frameTime <= 0 {
		frameTime = DefaultFrameTime
	}
	if a.animations == nil {
		a.animations = make(map[string]*Animation)
	}
	a.animations[name] = &Animation{Sheet: sheet, Loop: loop, FrameTime: frameTime}
}

// PlayAnimation makes name current and restarts it from frame 0. Playing the
// current animation again is a no-op.
func (a *Animated) PlayAnimation(name string) {
	if a.current == name && a.Sheet != nil {
		return
	}
	anim, ok := a.animations[name]
	if !ok {
		log.Warn("unknown animation", zap.String("animation", name))
		return
	}
	a.current = name
	a.frame = 0
	a.elapsed = 0
	a.Sheet = anim.Sheet
}

// CurrentAnimation returns the name of the current animation, or "".
func (a *Animated) CurrentAnimation() string { return a.current }

// AnimationEnded reports whether a one-shot animation reached its last frame.
// Looping animations never end.
func (a *Animated) AnimationEnded() bool {
	anim := a.animations[a.current]
	if anim == nil || anim.Loop {
		return false
	}
	return a.frame >= anim.Sheet.Frames()-1
}

// Update advances the current animation by dt, then moves the node.
func (a *Animated) Update(dt float64) {
	if anim := a.animations[a.current]; anim != nil {
		a.elapsed += dt
		last := anim.Sheet.Frames() - 1
		for a.elapsed > anim.FrameTime {
			a.elapsed -= anim.FrameTime
			a.frame++
			if a.frame > last {
				if anim.Loop {
					a.frame = 0
				} else {
					a.frame = last
				}
			}
		}
	}
	a.Sprite.Update(dt)
}

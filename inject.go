package grove

// syntheticEvent is one queued input change. Key events toggle a logical key;
// pointer events move the single synthetic pointer and set its button state.
type syntheticEvent struct {
	pointer bool
	key     Key
	pos     Vec2
	down    bool
}

// ScriptedInput is an Input driven entirely by injected events. Each Advance
// clears the previous tick's one-shot presses and applies the next queued
// event, so every injected change is visible for exactly one tick as
// "pressed". Used for tests and scripted replays.
type ScriptedInput struct {
	down        [keyCount]bool
	pressed     [keyCount]bool
	pointer     Vec2
	pointerDown bool
	pointerNew  bool
	touch       bool
	queue       []syntheticEvent
}

// NewScriptedInput creates an idle scripted input. touch selects whether it
// reports itself as a touch device.
func NewScriptedInput(touch bool) *ScriptedInput {
	return &ScriptedInput{touch: touch}
}

// InjectKeyDown queues a key press. The key stays down until released.
func (s *ScriptedInput) InjectKeyDown(k Key) {
	s.queue = append(s.queue, syntheticEvent{key: k, down: true})
}

// InjectKeyUp queues a key release.
func (s *ScriptedInput) InjectKeyUp(k Key) {
	s.queue = append(s.queue, syntheticEvent{key: k})
}

// InjectKeyTap queues a press followed by a release. Consumes two ticks.
func (s *ScriptedInput) InjectKeyTap(k Key) {
	s.InjectKeyDown(k)
	s.InjectKeyUp(k)
}

// InjectPress queues a pointer press at (x, y).
func (s *ScriptedInput) InjectPress(x, y float64) {
	s.queue = append(s.queue, syntheticEvent{pointer: true, pos: Vec2{x, y}, down: true})
}

// InjectRelease queues a pointer release at (x, y).
func (s *ScriptedInput) InjectRelease(x, y float64) {
	s.queue = append(s.queue, syntheticEvent{pointer: true, pos: Vec2{x, y}})
}

// InjectClick queues a press and a release at the same point. Consumes two ticks.
func (s *ScriptedInput) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// Pending returns the number of queued events.
func (s *ScriptedInput) Pending() int { return len(s.queue) }

// Advance ends the previous tick and applies the next queued event.
func (s *ScriptedInput) Advance() {
	s.pressed = [keyCount]bool{}
	s.pointerNew = false
	if len(s.queue) == 0 {
		return
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	if evt.pointer {
		s.pointerNew = evt.down && !s.pointerDown
		s.pointerDown = evt.down
		s.pointer = evt.pos
		return
	}
	if evt.key >= keyCount {
		return
	}
	s.pressed[evt.key] = evt.down && !s.down[evt.key]
	s.down[evt.key] = evt.down
}

func (s *ScriptedInput) Down(k Key) bool    { return k < keyCount && s.down[k] }
func (s *ScriptedInput) Pressed(k Key) bool { return k < keyCount && s.pressed[k] }

func (s *ScriptedInput) PointerDown(r Rect) bool {
	return s.pointerDown && r.Contains(s.pointer)
}

func (s *ScriptedInput) PointerPressed(r Rect) bool {
	return s.pointerNew && r.Contains(s.pointer)
}

func (s *ScriptedInput) TouchDevice() bool { return s.touch }

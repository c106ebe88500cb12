package grove

// Button is a sprite that tracks pointer presses over its bounding box. Both
// flags are false while the button is not effectively visible.
type Button struct {
	Sprite
	pressed bool
	down    bool
}

// NewButton creates a button drawn with sheet.
func NewButton(sheet *SpriteSheet, layer int, id ID) *Button {
	return &Button{Sprite: Sprite{Node: Node{Layer: layer, ID: id}, Sheet: sheet}}
}

// Pressed reports whether a press began over the button this tick.
func (b *Button) Pressed() bool { return b.pressed }

// Down reports whether a pointer is held over the button.
func (b *Button) Down() bool { return b.down }

// HandleInput samples the pointer state against the bounding box.
func (b *Button) HandleInput(in Input, _ float64) {
	visible := b.Visible()
	box := b.BoundingBox()
	b.pressed = visible && in.PointerPressed(box)
	b.down = visible && in.PointerDown(box)
}

// Reset clears the pointer state and restores visibility.
func (b *Button) Reset() {
	b.Sprite.Reset()
	b.pressed = false
	b.down = false
}

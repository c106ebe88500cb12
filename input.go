package grove

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a logical button. Physical keys are bound to logical keys by the
// Input implementation.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyConfirm
	KeyBack
	KeyScreenshot
	keyCount
)

// NumKeys is the number of logical keys.
const NumKeys = int(keyCount)

var keyNames = [keyCount]string{"left", "right", "jump", "confirm", "back", "screenshot"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// ParseKey returns the logical key with the given name (case-insensitive).
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(i), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Input is the per-tick input snapshot. Implementations clear one-shot
// "pressed" state themselves between ticks; callers only query.
type Input interface {
	// Down reports whether k is held.
	Down(k Key) bool
	// Pressed reports whether k went down this tick.
	Pressed(k Key) bool
	// PointerDown reports whether a mouse button or touch is held inside r.
	PointerDown(r Rect) bool
	// PointerPressed reports whether a new mouse press or touch began inside r this tick.
	PointerPressed(r Rect) bool
	// TouchDevice reports whether touch input has been seen.
	TouchDevice() bool
}

// InputSource is an Input that the game runner advances once per tick,
// before dispatching HandleInput.
type InputSource interface {
	Input
	Advance()
}

// --- Ebiten ---

// Bindings maps logical keys to the physical keys that trigger them.
type Bindings map[Key][]ebiten.Key

// DefaultBindings returns arrows/WASD for movement, Space/Up/W for jump,
// Enter to confirm, Escape to go back, and F12 for screenshots.
func DefaultBindings() Bindings {
	return Bindings{
		KeyLeft:       {ebiten.KeyArrowLeft, ebiten.KeyA},
		KeyRight:      {ebiten.KeyArrowRight, ebiten.KeyD},
		KeyJump:       {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		KeyConfirm:    {ebiten.KeyEnter, ebiten.KeySpace},
		KeyBack:       {ebiten.KeyEscape, ebiten.KeyBackspace},
		KeyScreenshot: {ebiten.KeyF12},
	}
}

// ParseBindings converts logical key names to ebiten key names, e.g.
// {"jump": ["Space", "ArrowUp"]}. Logical keys missing from names keep their
// default binding.
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for logical, physical := range names {
		k, err := ParseKey(logical)
		if err != nil {
			return nil, fmt.Errorf("parse bindings: %w", err)
		}
		keys := make([]ebiten.Key, 0, len(physical))
		for _, name := range physical {
			var ek ebiten.Key
			if err := ek.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("parse bindings: %s: %w", logical, err)
			}
			keys = append(keys, ek)
		}
		b[k] = keys
	}
	return b, nil
}

// EbitenInput reads keyboard, mouse and touch state from ebiten. Pointer
// coordinates are in the game's logical screen space.
type EbitenInput struct {
	bindings Bindings
	touchIDs []ebiten.TouchID
	newTouch []ebiten.TouchID
	touched  bool
}

// NewEbitenInput creates an input reader. A nil bindings map selects
// DefaultBindings.
func NewEbitenInput(bindings Bindings) *EbitenInput {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &EbitenInput{bindings: bindings}
}

// Advance snapshots the touch state for this tick. inpututil tracks
// just-pressed state on its own.
func (in *EbitenInput) Advance() {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.newTouch = inpututil.AppendJustPressedTouchIDs(in.newTouch[:0])
	if len(in.touchIDs) > 0 {
		in.touched = true
	}
}

func (in *EbitenInput) Down(k Key) bool {
	for _, ek := range in.bindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) Pressed(k Key) bool {
	for _, ek := range in.bindings[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) PointerDown(r Rect) bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && r.Contains(cursor()) {
		return true
	}
	return anyTouchIn(in.touchIDs, r)
}

func (in *EbitenInput) PointerPressed(r Rect) bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && r.Contains(cursor()) {
		return true
	}
	return anyTouchIn(in.newTouch, r)
}

func (in *EbitenInput) TouchDevice() bool { return in.touched }

func cursor() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}
}

func anyTouchIn(ids []ebiten.TouchID, r Rect) bool {
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		if r.Contains(Vec2{float64(x), float64(y)}) {
			return true
		}
	}
	return false
}

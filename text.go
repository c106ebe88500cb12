package grove

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the font name used when a label names no font or an
// unregistered one.
const DefaultFont = "regular"

type faceKey struct {
	name string
	size float64
}

// Fonts resolves font names and sizes to text/v2 faces. Faces are created on
// first use and cached.
type Fonts struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// LoadFonts creates a font set preloaded with the Go fonts under the names
// "regular", "bold", and "mono".
func LoadFonts() (*Fonts, error) {
	f := &Fonts{
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[faceKey]*text.GoTextFace),
	}
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{"regular", goregular.TTF},
		{"bold", gobold.TTF},
		{"mono", gomono.TTF},
	}
	for _, b := range builtin {
		if err := f.Register(b.name, b.ttf); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Register parses TTF/OTF data and makes it available under name.
func (f *Fonts) Register(name string, ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("load font %s: %w", name, err)
	}
	f.sources[name] = src
	return nil
}

// Face returns the face for name at size. Unknown names fall back to
// DefaultFont.
func (f *Fonts) Face(name string, size float64) *text.GoTextFace {
	key := faceKey{name, size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src, ok := f.sources[name]
	if !ok {
		if globalDebug {
			log.Debug("unknown font, using default", zap.String("font", name))
		}
		src = f.sources[DefaultFont]
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[key] = face
	return face
}

// Label is a text node. Text is drawn with its top edge at the world
// position minus Origin.
type Label struct {
	Node
	Text   string
	Font   string
	Size   float64
	Color  Color
	Align  TextAlign
	Origin Vec2
}

// NewLabel creates a white, left-aligned label.
func NewLabel(font string, size float64, layer int, id ID) *Label {
	if font == "" {
		font = DefaultFont
	}
	return &Label{
		Node:  Node{Layer: layer, ID: id},
		Font:  font,
		Size:  size,
		Color: ColorWhite,
	}
}

// Draw submits the text when the label is visible.
func (l *Label) Draw(r Renderer) {
	if !l.Visible() {
		return
	}
	r.DrawText(l.Text, l.WorldPosition(), l.Origin, l.Color, l.Align, l.Font, l.Size)
}

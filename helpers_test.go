package grove

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// drawCall records one Renderer call.
type drawCall struct {
	sheet  string
	text   string
	pos    Vec2
	origin Vec2
	src    image.Rectangle
	mirror bool
}

// recordRenderer is a Renderer that remembers every call.
type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) DrawRegion(sheet *SpriteSheet, pos Vec2, _, _ float64, origin Vec2, src image.Rectangle, mirrored bool) {
	r.calls = append(r.calls, drawCall{sheet: sheet.Name(), pos: pos, origin: origin, src: src, mirror: mirrored})
}

func (r *recordRenderer) DrawText(s string, pos, origin Vec2, _ Color, _ TextAlign, _ string, _ float64) {
	r.calls = append(r.calls, drawCall{text: s, pos: pos, origin: origin})
}

// tracer is a node that logs the order in which it receives loop calls.
type tracer struct {
	Node
	name string
	log  *[]string
}

func newTracer(name string, layer int, id ID, log *[]string) *tracer {
	return &tracer{Node: Node{Layer: layer, ID: id}, name: name, log: log}
}

func (p *tracer) HandleInput(Input, float64) { *p.log = append(*p.log, "input:"+p.name) }
func (p *tracer) Update(float64)             { *p.log = append(*p.log, "update:"+p.name) }
func (p *tracer) Draw(Renderer)              { *p.log = append(*p.log, "draw:"+p.name) }
func (p *tracer) Reset() {
	p.Node.Reset()
	*p.log = append(*p.log, "reset:"+p.name)
}

// solidSheet builds an opaque sheet of cols x rows frames of w x h pixels.
func solidSheet(name string, w, h, cols, rows int, mask bool) *SpriteSheet {
	img := image.NewNRGBA(image.Rect(0, 0, w*cols, h*rows))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return NewSpriteSheet(name, img, cols, rows, mask)
}

// halfSheet builds a single w x h frame whose left half is opaque and right
// half transparent.
func halfSheet(name string, w, h int) *SpriteSheet {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	return NewSpriteSheet(name, img, 1, 1, true)
}

func assertVec(t *testing.T, what string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log = %v, want %v", got, want)
		}
	}
}

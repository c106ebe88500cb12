package grove

import (
	"image"
	"path"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet is an image divided into Columns x Rows equally sized frames.
// Sheets are shared, externally owned assets; nodes only reference them.
type SpriteSheet struct {
	name   string
	src    image.Image
	img    *ebiten.Image
	cols   int
	rows   int
	frameW int
	frameH int
	mask   *image.Alpha
	avg    Color
}

// NewSpriteSheet wraps img as a sheet of cols x rows frames. When withMask is
// true an opacity table is built now so per-pixel collision can use it.
func NewSpriteSheet(name string, img image.Image, cols, rows int, withMask bool) *SpriteSheet {
	cols = max(cols, 1)
	rows = max(rows, 1)
	b := img.Bounds()
	s := &SpriteSheet{
		name:   name,
		src:    img,
		cols:   cols,
		rows:   rows,
		frameW: b.Dx() / cols,
		frameH: b.Dy() / rows,
		avg:    averageColor(img),
	}
	if withMask {
		s.mask = buildOpacityTable(img)
	}
	return s
}

// ParseSheetName extracts the frame layout from a file name following the
// "name@CxR.ext" convention. "name@C.ext" is a strip of C columns; a name
// without '@' is a single frame.
func ParseSheetName(file string) (base string, cols, rows int) {
	base = strings.TrimSuffix(path.Base(file), path.Ext(file))
	cols, rows = 1, 1
	at := strings.LastIndexByte(base, '@')
	if at < 0 {
		return base, cols, rows
	}
	dims := base[at+1:]
	base = base[:at]
	c, r, found := strings.Cut(dims, "x")
	if n, err := strconv.Atoi(c); err == nil && n > 0 {
		cols = n
	}
	if found {
		if n, err := strconv.Atoi(r); err == nil && n > 0 {
			rows = n
		}
	}
	return base, cols, rows
}

func (s *SpriteSheet) Name() string   { return s.name }
func (s *SpriteSheet) Columns() int   { return s.cols }
func (s *SpriteSheet) Rows() int      { return s.rows }
func (s *SpriteSheet) Frames() int    { return s.cols * s.rows }
func (s *SpriteSheet) Width() float64 { return float64(s.frameW) }

func (s *SpriteSheet) Height() float64 { return float64(s.frameH) }

// Size returns the size of one frame.
func (s *SpriteSheet) Size() Vec2 { return Vec2{s.Width(), s.Height()} }

// Center returns the midpoint of one frame.
func (s *SpriteSheet) Center() Vec2 { return s.Size().DivScalar(2) }

// HasMask reports whether an opacity table was built.
func (s *SpriteSheet) HasMask() bool { return s.mask != nil }

// Source returns the decoded image.
func (s *SpriteSheet) Source() image.Image { return s.src }

// AverageColor returns the alpha-weighted mean color of the whole image.
func (s *SpriteSheet) AverageColor() Color { return s.avg }

// Image returns the GPU image, creating it on first use.
func (s *SpriteSheet) Image() *ebiten.Image {
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.src)
	}
	return s.img
}

// FrameRect returns the source rectangle of frame, in image pixels.
func (s *SpriteSheet) FrameRect(frame int) image.Rectangle {
	col, row := s.cell(frame)
	tl := s.src.Bounds().Min.Add(image.Pt(col*s.frameW, row*s.frameH))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(s.frameW, s.frameH))}
}

// AlphaAt returns the opacity of the local pixel (x, y) of frame, reading the
// frame flipped horizontally when mirror is set. Pixels outside the frame are
// transparent. Sheets without an opacity table are fully opaque everywhere.
func (s *SpriteSheet) AlphaAt(x, y, frame int, mirror bool) uint8 {
	if s.mask == nil {
		return 255
	}
	if x < 0 || y < 0 || x >= s.frameW || y >= s.frameH {
		return 0
	}
	if mirror {
		x = s.frameW - 1 - x
	}
	col, row := s.cell(frame)
	b := s.mask.Bounds()
	return s.mask.AlphaAt(b.Min.X+col*s.frameW+x, b.Min.Y+row*s.frameH+y).A
}

func (s *SpriteSheet) cell(frame int) (col, row int) {
	if frame < 0 {
		frame = 0
	}
	return frame % s.cols, (frame / s.cols) % s.rows
}

package grove

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SheetSpec describes one sprite sheet in an asset manifest. The frame
// layout comes from the file name ("name@CxR.png"). Size, Shape and Color
// describe the generated placeholder used when the file is missing.
type SheetSpec struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Mask  bool   `yaml:"mask"`
	Size  [2]int `yaml:"size"`
	Shape string `yaml:"shape"`
	Color string `yaml:"color"`
}

// Manifest lists every sheet a game needs before it can build its scenes.
type Manifest struct {
	Sheets []SheetSpec `yaml:"sheets"`
}

// ParseManifest decodes a YAML manifest and checks names are unique.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Sheets))
	for i, s := range m.Sheets {
		if s.Name == "" || s.File == "" {
			return nil, fmt.Errorf("parse manifest: sheet %d: name and file are required", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("parse manifest: duplicate sheet %q", s.Name)
		}
		seen[s.Name] = true
	}
	return &m, nil
}

// ErrAssetMissing is returned by Load for a sheet whose file does not exist
// when placeholders are disabled.
var ErrAssetMissing = errors.New("asset missing")

// AssetCatalog decodes the sheets of a manifest from a file system and hands
// them out by name. Loading runs concurrently; Progress and Ready form the
// gate the game runner waits on before building any scene.
type AssetCatalog struct {
	fsys         fs.FS
	manifest     *Manifest
	placeholders bool

	mu      sync.Mutex
	sheets  map[string]*SpriteSheet
	missing map[string]*SpriteSheet // magenta stand-ins for unknown names
	err     error

	loaded atomic.Int32
}

// NewAssetCatalog creates a catalog for m reading files from fsys. When
// placeholders is set, missing files are replaced by generated images and a
// warning is logged instead of failing the load.
func NewAssetCatalog(fsys fs.FS, m *Manifest, placeholders bool) *AssetCatalog {
	if m == nil {
		m = &Manifest{}
	}
	return &AssetCatalog{
		fsys:         fsys,
		manifest:     m,
		placeholders: placeholders,
		sheets:       make(map[string]*SpriteSheet, len(m.Sheets)),
		missing:      make(map[string]*SpriteSheet),
	}
}

// Load decodes every sheet, several at a time, and returns the first error.
// It is safe to call from a goroutine while another polls Progress.
func (c *AssetCatalog) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, spec := range c.manifest.Sheets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := c.loadSheet(spec)
			if err != nil {
				return err
			}
			c.mu.Lock()
			c.sheets[spec.Name] = sheet
			c.mu.Unlock()
			c.loaded.Add(1)
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
	}
	return err
}

// LoadAsync starts Load in the background. Check Err and Ready to follow it.
func (c *AssetCatalog) LoadAsync(ctx context.Context) {
	go func() { _ = c.Load(ctx) }()
}

// Progress returns the number of sheets loaded so far and the total.
func (c *AssetCatalog) Progress() (loaded, total int) {
	return int(c.loaded.Load()), len(c.manifest.Sheets)
}

// Ready reports whether every sheet has been loaded.
func (c *AssetCatalog) Ready() bool {
	loaded, total := c.Progress()
	return loaded == total
}

// Err returns the load error, if any.
func (c *AssetCatalog) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Sheet returns the sheet registered under name. An unknown name returns a
// magenta placeholder, the same one for every call, and logs a warning the
// first time. Safe for concurrent use.
func (c *AssetCatalog) Sheet(name string) *SpriteSheet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sheets[name]; ok {
		return s
	}
	if s, ok := c.missing[name]; ok {
		return s
	}
	log.Warn("sheet not found, using magenta placeholder", zap.String("sheet", name))
	s := magentaSheet(name)
	c.missing[name] = s
	return s
}

// Add registers an already built sheet. Used by tests and by games that
// generate images at runtime.
func (c *AssetCatalog) Add(name string, s *SpriteSheet) {
	c.mu.Lock()
	c.sheets[name] = s
	c.mu.Unlock()
}

func (c *AssetCatalog) loadSheet(spec SheetSpec) (*SpriteSheet, error) {
	_, cols, rows := ParseSheetName(spec.File)
	f, err := c.fsys.Open(spec.File)
	if errors.Is(err, fs.ErrNotExist) {
		if !c.placeholders {
			return nil, fmt.Errorf("load sheet %s: %s: %w", spec.Name, spec.File, ErrAssetMissing)
		}
		log.Warn("sheet file missing, generating placeholder",
			zap.String("sheet", spec.Name), zap.String("file", spec.File))
		return NewSpriteSheet(spec.Name, placeholderImage(spec, cols, rows), cols, rows, spec.Mask), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", spec.Name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %s: %w", spec.Name, path.Base(spec.File), err)
	}
	return NewSpriteSheet(spec.Name, img, cols, rows, spec.Mask), nil
}

// placeholderImage draws cols x rows frames of the spec's shape. Each frame is
// shaded slightly differently so animations stay visible.
func placeholderImage(spec SheetSpec, cols, rows int) image.Image {
	w, h := max(spec.Size[0], 1), max(spec.Size[1], 1)
	img := image.NewNRGBA(image.Rect(0, 0, w*cols, h*rows))
	base := ParseHexColor(spec.Color)
	frames := cols * rows
	for i := range frames {
		shade := 1 - 0.4*float64(i)/float64(max(frames, 2)-1)
		c := Color{base.R * shade, base.G * shade, base.B * shade, base.A}.RGBA()
		cell := image.Rect((i%cols)*w, (i/cols)*h, (i%cols+1)*w, (i/cols+1)*h)
		switch spec.Shape {
		case "circle":
			fillEllipse(img, cell, c)
		case "none":
		default:
			draw.Draw(img, cell, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return img
}

func fillEllipse(img draw.Image, r image.Rectangle, c color.Color) {
	cx, cy := float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2
	rx, ry := float64(r.Dx())/2, float64(r.Dy())/2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
}

func magentaSheet(name string) *SpriteSheet {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, B: 255, A: 255})
	return NewSpriteSheet(name, img, 1, 1, false)
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Anything else is
// opaque white.
func ParseHexColor(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return ColorWhite
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorWhite
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}
}

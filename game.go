package grove

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameConfig configures the Game runner.
type GameConfig struct {
	Width, Height int
	// TPS is the fixed tick rate. Each tick advances the game by 1/TPS.
	TPS           int
	Background    Color
	ScreenshotDir string
	ShowFPS       bool
}

// BuildFunc constructs the top-level loop once assets are ready.
type BuildFunc func() (Loop, error)

// Game adapts a Loop to ebiten.Game. It waits for the asset catalog, calls
// build once, then runs input, update and draw on every tick at a fixed time
// step.
type Game struct {
	cfg      GameConfig
	assets   *AssetCatalog
	input    InputSource
	renderer *EbitenRenderer
	build    BuildFunc

	root    Loop
	fps     *FPSLabel
	script  *TestRunner
	quit    bool
	loading *Label

	ScreenshotDir   string
	screenshotQueue []string
	screenshotSeq   int
}

// NewGame creates a runner. assets may be nil when nothing needs loading.
func NewGame(cfg GameConfig, assets *AssetCatalog, input InputSource, fonts *Fonts, build BuildFunc) *Game {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		cfg:           cfg,
		assets:        assets,
		input:         input,
		renderer:      NewEbitenRenderer(fonts),
		build:         build,
		ScreenshotDir: cfg.ScreenshotDir,
		loading:       NewLabel(DefaultFont, 20, 0, NoID),
	}
	g.loading.Position = Vec2{float64(cfg.Width) / 2, float64(cfg.Height) / 2}
	g.loading.Align = AlignCenter
	if cfg.ShowFPS {
		g.fps = NewFPSLabel(Vec2{8, 8})
	}
	return g
}

// TimeStep returns the fixed tick duration.
func (g *Game) TimeStep() float64 { return 1 / float64(g.cfg.TPS) }

// SetTestRunner attaches a script that injects input each tick. The runner
// drives a ScriptedInput, which replaces the game's input source.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.script = r
	if r != nil {
		g.input = r.input
	}
}

// Quit ends the run loop after the current tick.
func (g *Game) Quit() { g.quit = true }

// Root returns the loop built by the BuildFunc, or nil before assets are ready.
func (g *Game) Root() Loop { return g.root }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.root == nil {
		if err := g.prepare(); err != nil || g.root == nil {
			return err
		}
	}
	dt := g.TimeStep()
	if g.script != nil {
		g.script.step(g)
		if g.script.Done() && g.script.quitWhenDone {
			g.quit = true
		}
	}
	g.input.Advance()
	if g.input.Pressed(KeyScreenshot) {
		g.Screenshot("manual")
	}
	g.root.HandleInput(g.input, dt)
	g.root.Update(dt)
	if g.fps != nil {
		g.fps.Update(dt)
	}
	return nil
}

func (g *Game) prepare() error {
	if g.assets != nil {
		if err := g.assets.Err(); err != nil {
			return fmt.Errorf("load assets: %w", err)
		}
		if !g.assets.Ready() {
			loaded, total := g.assets.Progress()
			g.loading.Text = fmt.Sprintf("Loading... %d/%d", loaded, total)
			return nil
		}
	}
	root, err := g.build()
	if err != nil {
		return fmt.Errorf("build game: %w", err)
	}
	g.root = root
	log.Info("game ready", zap.Int("tps", g.cfg.TPS))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.RGBA())
	g.renderer.Begin(screen)
	if g.root == nil {
		g.loading.Draw(g.renderer)
		return
	}
	g.root.Draw(g.renderer)
	if g.fps != nil {
		g.fps.Draw(g.renderer)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Renderer exposes the renderer for games that draw outside the node tree.
func (g *Game) Renderer() *EbitenRenderer { return g.renderer }

// Run opens a window and blocks until the game ends.
func (g *Game) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(g.cfg.TPS)
	return ebiten.RunGame(g)
}

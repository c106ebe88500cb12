// Package config loads the Acorn Hunt configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/acornhunt"
	"github.com/phanxgames/grove/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable that overrides the config path.
const EnvVar = "ACORNHUNT_CONFIG"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Assets  AssetsConfig  `toml:"assets"`
	Game    GameConfig    `toml:"game"`
	Storage StorageConfig `toml:"storage"`
	Audio   AudioConfig   `toml:"audio"`
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`  // logical screen width
	Height        int    `toml:"height"` // logical screen height
	TPS           int    `toml:"tps"`
	Background    string `toml:"background"` // "#rrggbb"
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
	Touch         bool   `toml:"touch"` // force the touch layout
}

type AssetsConfig struct {
	Dir          string `toml:"dir"`
	Manifest     string `toml:"manifest"`     // relative to Dir
	Placeholders bool   `toml:"placeholders"` // generate images missing from Dir
	Levels       string `toml:"levels"`       // level catalog; empty selects the built-in levels
}

type GameConfig struct {
	TimeLimit    float64 `toml:"time_limit"` // seconds per level
	WalkingSpeed float64 `toml:"walking_speed"`
	JumpSpeed    float64 `toml:"jump_speed"`
	DeathPop     float64 `toml:"death_pop"`
	Gravity      float64 `toml:"gravity"`
	CellWidth    float64 `toml:"cell_width"`
	CellHeight   float64 `toml:"cell_height"`
	HintSeconds  float64 `toml:"hint_seconds"`
}

type StorageConfig struct {
	Path string `toml:"path"` // progress file; empty keeps progress in memory
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

// InputConfig maps logical keys (left, right, jump, confirm, back,
// screenshot) to ebiten key names.
type InputConfig struct {
	Keys map[string][]string `toml:"keys"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // log destination; empty logs to stderr
}

type DebugConfig struct {
	Enabled bool   `toml:"enabled"` // scene graph checks
	Script  string `toml:"script"`  // JSON input script to replay
}

// Path returns the config path to load: $ACORNHUNT_CONFIG when set,
// otherwise path.
func Path(path string) string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	return path
}

// Load reads the TOML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config { return defaults() }

func defaults() *Config {
	s := acornhunt.DefaultSettings()
	return &Config{
		Window: WindowConfig{
			Title:         "Acorn Hunt",
			Width:         int(s.ScreenWidth),
			Height:        int(s.ScreenHeight),
			TPS:           60,
			Background:    "#000000",
			ScreenshotDir: "screenshots",
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			Manifest:     "manifest.yaml",
			Placeholders: true,
		},
		Game: GameConfig{
			TimeLimit:    s.TimeLimit,
			WalkingSpeed: s.WalkingSpeed,
			JumpSpeed:    s.JumpSpeed,
			DeathPop:     s.DeathPop,
			Gravity:      s.Gravity,
			CellWidth:    s.CellWidth,
			CellHeight:   s.CellHeight,
			HintSeconds:  s.HintSeconds,
		},
		Storage: StorageConfig{
			Path: "acornhunt-progress.json",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	case c.Game.CellWidth <= 0 || c.Game.CellHeight <= 0:
		return fmt.Errorf("cell size %gx%g must be positive", c.Game.CellWidth, c.Game.CellHeight)
	case c.Game.TimeLimit <= 0:
		return fmt.Errorf("time limit %g must be positive", c.Game.TimeLimit)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %g out of range 0-1", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio sample rate %d must be positive", c.Audio.SampleRate)
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return fmt.Errorf("logging format %q: want json or console", c.Logging.Format)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Settings returns the gameplay constants.
func (c *Config) Settings() acornhunt.Settings {
	return acornhunt.Settings{
		ScreenWidth:  float64(c.Window.Width),
		ScreenHeight: float64(c.Window.Height),
		TimeLimit:    c.Game.TimeLimit,
		WalkingSpeed: c.Game.WalkingSpeed,
		JumpSpeed:    c.Game.JumpSpeed,
		DeathPop:     c.Game.DeathPop,
		Gravity:      c.Game.Gravity,
		CellWidth:    c.Game.CellWidth,
		CellHeight:   c.Game.CellHeight,
		HintSeconds:  c.Game.HintSeconds,
	}
}

// Bindings returns the ebiten key bindings, defaults filled in.
func (c *Config) Bindings() (grove.Bindings, error) {
	return grove.ParseBindings(c.Input.Keys)
}

// Runner returns the game runner settings.
func (c *Config) Runner() grove.GameConfig {
	return grove.GameConfig{
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		TPS:           c.Window.TPS,
		Background:    grove.ParseHexColor(c.Window.Background),
		ScreenshotDir: c.Window.ScreenshotDir,
		ShowFPS:       c.Window.ShowFPS,
	}
}

// NewLogger builds a zap logger: JSON in production format, colored console
// output otherwise. Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

// Levels returns the level catalog: the built-in levels, or the YAML file
// named by assets.levels.
func (c *Config) Levels() (*acornhunt.LevelCatalog, error) {
	if c.Assets.Levels == "" {
		return acornhunt.DefaultLevelCatalog()
	}
	data, err := os.ReadFile(c.Assets.Levels)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return acornhunt.LoadLevelCatalog(data)
}

// Store opens the progress store. An empty path keeps progress in memory.
func (c *Config) Store() (storage.Store, error) {
	if c.Storage.Path == "" {
		return storage.NewMemory(), nil
	}
	return storage.OpenFile(c.Storage.Path)
}

// Manifest reads the asset manifest from dir.
func (c *Config) Manifest(dir fs.FS) (*grove.Manifest, error) {
	data, err := fs.ReadFile(dir, c.Assets.Manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return grove.ParseManifest(data)
}

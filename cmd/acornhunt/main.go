// Command acornhunt runs the game in an ebiten window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/acornhunt"
	"github.com/phanxgames/grove/internal/config"
	"github.com/phanxgames/grove/internal/sound"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "acornhunt.toml", "config file")
	flag.Parse()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	grove.SetLogger(log)
	grove.SetDebug(cfg.Debug.Enabled)

	levels, err := cfg.Levels()
	if err != nil {
		return err
	}
	store, err := cfg.Store()
	if err != nil {
		return err
	}

	assetDir := os.DirFS(cfg.Assets.Dir)
	manifest, err := cfg.Manifest(assetDir)
	if err != nil {
		return err
	}
	assets := grove.NewAssetCatalog(assetDir, manifest, cfg.Assets.Placeholders)
	warnUnlisted(log, manifest, levels.Len())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assets.LoadAsync(ctx)

	var audio grove.Audio = grove.NopAudio{}
	if cfg.Audio.Enabled {
		bank, err := sound.NewBank(acornhunt.SoundNames, beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.Volume)
		if err != nil {
			return err
		}
		audio = sound.NewEbitenPlayer(bank, log)
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	fonts, err := grove.LoadFonts()
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}

	game := grove.NewGame(cfg.Runner(), assets, grove.NewEbitenInput(bindings), fonts, func() (grove.Loop, error) {
		g, err := acornhunt.Build(&acornhunt.Env{
			Sheets:   assets,
			Levels:   levels,
			Store:    store,
			Audio:    audio,
			Log:      log.Named("acornhunt"),
			Settings: cfg.Settings(),
			Touch:    cfg.Window.Touch,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	})

	if cfg.Debug.Script != "" {
		data, err := os.ReadFile(cfg.Debug.Script)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		script, err := grove.LoadTestScript(data)
		if err != nil {
			return err
		}
		game.SetTestRunner(script)
		log.Info("replaying test script", zap.String("path", cfg.Debug.Script))
	}

	log.Info("starting",
		zap.Int("levels", levels.Len()),
		zap.String("assets", cfg.Assets.Dir),
		zap.Bool("audio", cfg.Audio.Enabled))
	return game.Run(cfg.Window.Title)
}

// warnUnlisted logs every sheet the game uses that the manifest lacks. Those
// draw as magenta squares.
func warnUnlisted(log *zap.Logger, m *grove.Manifest, levels int) {
	listed := make(map[string]bool, len(m.Sheets))
	for _, s := range m.Sheets {
		listed[s.Name] = true
	}
	for _, name := range acornhunt.SheetNames(levels) {
		if !listed[name] {
			log.Warn("sheet not in manifest", zap.String("sheet", name))
		}
	}
}

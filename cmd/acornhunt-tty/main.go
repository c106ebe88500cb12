// Command acornhunt-tty plays the game in a terminal. Sprites draw as blocks
// of their average color; the mouse and the arrow keys control the game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/acornhunt"
	"github.com/phanxgames/grove/internal/config"
	"github.com/phanxgames/grove/internal/sound"
	"github.com/phanxgames/grove/internal/tty"
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
	// The terminal is the display; keep the log out of it.
	if cfg.Logging.File == "" {
		cfg.Logging.File = "acornhunt-tty.log"
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	grove.SetLogger(log)
	grove.SetDebug(cfg.Debug.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	if err := assets.Load(ctx); err != nil {
		return err
	}

	var audio grove.Audio = grove.NopAudio{}
	if cfg.Audio.Enabled {
		bank, err := sound.NewBank(acornhunt.SoundNames, beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.Volume)
		if err != nil {
			return err
		}
		player, err := sound.NewSpeakerPlayer(bank, log)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer player.Close()
			audio = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	settings := cfg.Settings()
	runner, err := tty.NewRunner(screen, settings.ScreenWidth, settings.ScreenHeight, cfg.Window.TPS, log)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	game, err := acornhunt.Build(&acornhunt.Env{
		Sheets:   assets,
		Levels:   levels,
		Store:    store,
		Audio:    audio,
		Log:      log.Named("acornhunt"),
		Settings: settings,
		Touch:    cfg.Window.Touch,
	})
	if err != nil {
		screen.Fini()
		return err
	}

	err = runner.Run(ctx, game)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

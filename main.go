package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/pranavpatil1/homepage/internal/config"
	"github.com/pranavpatil1/homepage/internal/game"
	"github.com/pranavpatil1/homepage/internal/logging"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file (missing file means defaults)")
	envPath := flag.String("env", ".env", "dotenv file with PORTFOLIO_* overrides")
	debug := flag.Bool("debug", false, "show the debug overlay")
	noSound := flag.Bool("no-sound", false, "disable the hover chime")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	load := func() (*config.Config, error) {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		lookup, err := config.EnvLookup(*envPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyEnv(lookup); err != nil {
			return nil, err
		}
		if *debug {
			cfg.Debug = true
		}
		if *noSound {
			cfg.Sound = false
		}
		if *logLevel != "" {
			cfg.LogLevel = *logLevel
		}
		return cfg, nil
	}

	cfg, err := load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var level slog.LevelVar
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	level.Set(lvl)
	log := logging.New(os.Stderr, &level)
	slog.SetDefault(log)
	if err != nil {
		log.Warn("falling back to info logging", "err", err)
	}
	if err := cfg.Sanitize(); err != nil {
		log.Warn("config has invalid values, using defaults for them", "err", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := game.New(game.Options{
		Config: cfg,
		Reload: load,
		Log:    log,
		Level:  &level,
	})
	if err != nil {
		fatal(log, err)
	}
	defer g.Close()

	log.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "particles", cfg.Particles.Count)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(log, err)
	}
}

// fatal reports a startup failure in a dialog as well, since the app is
// usually launched without a terminal.
func fatal(log *slog.Logger, err error) {
	log.Error("fatal", "err", err)
	if derr := zenity.Error(err.Error(), zenity.Title("pranav://")); derr != nil {
		log.Debug("error dialog unavailable", "err", derr)
	}
	os.Exit(1)
}

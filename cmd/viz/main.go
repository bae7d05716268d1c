package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Pitch-Sense/internal/config"
	"github.com/Garsondee/Pitch-Sense/internal/game"
	"github.com/Garsondee/Pitch-Sense/internal/logging"
)

func main() {
	var (
		configPath string
		modality   string
		seed       int64
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "optional YAML settings file")
	flag.StringVar(&modality, "modality", "", "initial modality: ssl or vsss (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "path RNG seed, 0 = time based (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if modality != "" {
		cfg.Modality = modality
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("init viewer", zap.Error(err))
	}

	ebiten.SetWindowTitle("Robotic Soccer Visualizer")
	ebiten.SetWindowSize(cfg.Window.Width(), cfg.Window.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run viewer", zap.Error(err))
	}
}

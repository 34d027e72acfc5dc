package main

import (
	"flag"
	"log/slog"
	"os"

	"fpsrig/internal/config"
	"fpsrig/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenePath := flag.String("scene", "", "Scene JSON file (overrides scene.path)")
	variant := flag.String("variant", "", "Controller variant: fps or mouselook (overrides controller.variant; ignored with a scene)")
	headless := flag.Bool("headless", false, "Simulate without a window")
	frames := flag.Int("frames", 600, "Frames to simulate in headless mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	variantIgnored := applyFlags(cfg, *scenePath, *variant)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger, err := cfg.Logging.NewLogger(os.Stderr)
	if err != nil {
		slog.Error("failed to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	if variantIgnored {
		slog.Warn("variant ignored, the scene defines its own controller", "variant", *variant, "scene", cfg.Scene.Path)
	}

	g, err := game.New(cfg)
	if err != nil {
		slog.Error("failed to build world", "error", err)
		os.Exit(1)
	}

	if *headless {
		err = g.RunHeadless(*frames, cfg.Loop.FixedStep)
	} else {
		err = g.Run()
	}
	if err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// applyFlags layers the command-line overrides onto cfg. It reports whether
// the variant flag has no effect because a scene supplies the controller.
func applyFlags(cfg *config.Config, scenePath, variant string) bool {
	if scenePath != "" {
		cfg.Scene.Path = scenePath
	}
	if variant != "" {
		cfg.Controller.Variant = variant
	}
	return variant != "" && cfg.Scene.Path != ""
}

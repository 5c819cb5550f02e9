// objviewer displays a Wavefront OBJ model in a fly-through window.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/config"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	lc := cfg.Logging
	err = logger.InitWithOptions(logger.Options{
		Level:   lc.Level,
		Console: true,
		File: logger.FileConfig{
			Path:       lc.LogFile,
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
			Compress:   lc.Compress,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wavemesh viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Viewer.Model == "" {
		if err := pickModel(cfg); err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Error("file dialog failed", zap.Error(err))
			}
			os.Exit(1)
		}
	}

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	app, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// startProfile begins recording the configured profile and returns its stop
// function, or nil when profiling is off.
func startProfile(pc config.ProfileConfig) func() {
	var mode func(*profile.Profile)
	switch pc.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil
	}
	logger.Info("profiling enabled", zap.String("mode", pc.Mode), zap.String("dir", pc.Dir))
	return profile.Start(mode, profile.ProfilePath(pc.Dir), profile.NoShutdownHook).Stop
}

// pickModel asks for an OBJ file. The absolute path is read directly by the
// asset manager.
func pickModel(cfg *config.Config) error {
	filename, err := dialog.File().
		Filter("Wavefront OBJ", "obj").
		Filter("All Files", "*").
		Title("Open Model").
		Load()
	if err != nil {
		return err
	}

	cfg.Viewer.Model = filename
	logger.Info("model selected", zap.String("file", filename))
	return nil
}

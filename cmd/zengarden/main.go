// Package main is the entry point for the zen garden viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/oliviahylam/zen-garden/internal/config"
	"github.com/oliviahylam/zen-garden/internal/engine/audio"
	"github.com/oliviahylam/zen-garden/internal/garden/session"
	"github.com/oliviahylam/zen-garden/internal/logger"
	"github.com/oliviahylam/zen-garden/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Zen Garden ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if frames := config.HeadlessFrames(); frames > 0 {
		if err := runHeadless(cfg, frames); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// runHeadless builds the garden and steps it for a fixed number of
// simulated frames with no window or speaker, a smoke test for the
// generative cores.
func runHeadless(cfg *config.Config, frames int) error {
	mgr := audio.New(cfg.Audio.SampleRate)
	defer mgr.Close()

	s, err := session.New(cfg, mgr)
	if err != nil {
		return err
	}
	defer s.Close()

	const dt = 1.0 / 60.0
	for i := 0; i < frames; i++ {
		s.Update(float64(i)*dt, dt)
	}

	logger.Info("headless run complete",
		zap.Int("frames", frames),
		zap.Int("nodes", s.Scene.Root.Count()),
		zap.Int("voices", len(s.Sources())),
	)
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Muted {
		t.Error("expected muted to be false by default")
	}

	if cfg.Scene.Seed == 0 {
		t.Error("expected non-zero default scatter seed")
	}
	if cfg.Scene.TreeCount <= 0 {
		t.Errorf("expected positive tree count, got %d", cfg.Scene.TreeCount)
	}
	if cfg.Scene.DustCount <= 0 {
		t.Errorf("expected positive dust count, got %d", cfg.Scene.DustCount)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  show_fps: true

audio:
  master_volume: 0.5
  ambient_volume: 0.6
  sample_rate: 48000
  muted: true

scene:
  seed: 42
  tree_count: 15
  rabbit_count: 3
  dust_count: 200

logging:
  level: "debug"
  log_file: "garden.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("expected sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}

	if cfg.Scene.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
	}
	if cfg.Scene.TreeCount != 15 {
		t.Errorf("expected tree count 15, got %d", cfg.Scene.TreeCount)
	}
	// Values absent from the file keep their defaults
	if cfg.Scene.PebbleCount != Default().Scene.PebbleCount {
		t.Errorf("expected default pebble count, got %d", cfg.Scene.PebbleCount)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "garden.log" {
		t.Errorf("expected log file 'garden.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 99
	cfg.Graphics.Width = 800

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Scene.Seed != 99 {
		t.Errorf("expected seed 99 after round trip, got %d", loaded.Scene.Seed)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Graphics.Width)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "seed flag",
			setup: func() {
				*flagSeed = 1234
			},
			verify: func(cfg *Config) {
				if cfg.Scene.Seed != 1234 {
					t.Errorf("expected seed 1234, got %d", cfg.Scene.Seed)
				}
			},
			teardown: func() {
				*flagSeed = 0
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "mute flag",
			setup: func() {
				*flagMute = true
			},
			verify: func(cfg *Config) {
				if !cfg.Audio.Muted {
					t.Error("expected muted to be true with mute flag")
				}
			},
			teardown: func() {
				*flagMute = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  seed: 5
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagSeed = 11
	defer func() {
		*flagConfig = ""
		*flagSeed = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Seed should come from the flag, not the file
	if cfg.Scene.Seed != 11 {
		t.Errorf("expected seed 11 from flag, got %d", cfg.Scene.Seed)
	}

	// Height should come from the file since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

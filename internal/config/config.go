// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// AudioConfig holds ambient audio settings.
type AudioConfig struct {
	MasterVolume  float64 `yaml:"master_volume"`
	AmbientVolume float64 `yaml:"ambient_volume"`
	SampleRate    int     `yaml:"sample_rate"`
	Muted         bool    `yaml:"muted"`
}

// SceneConfig holds garden composition settings. Seed drives every scatter
// placement, so the same seed rebuilds the same garden.
type SceneConfig struct {
	Seed         int64 `yaml:"seed"`
	TreeCount    int   `yaml:"tree_count"`
	RabbitCount  int   `yaml:"rabbit_count"`
	PebbleCount  int   `yaml:"pebble_count"`
	LanternCount int   `yaml:"lantern_count"`
	DustCount    int   `yaml:"dust_count"`
	MistCount    int   `yaml:"mist_count"`
	DropletCount int   `yaml:"droplet_count"`
	OrbCount     int   `yaml:"orb_count"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Audio: AudioConfig{
			MasterVolume:  0.8,
			AmbientVolume: 0.7,
			SampleRate:    44100,
			Muted:         false,
		},
		Scene: SceneConfig{
			Seed:         7,
			TreeCount:    9,
			RabbitCount:  5,
			PebbleCount:  40,
			LanternCount: 4,
			DustCount:    160,
			MistCount:    60,
			DropletCount: 80,
			OrbCount:     12,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "settings.toml"

type Settings struct {
	Window  WindowConfig  `toml:"window"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title     string  `toml:"title"`
	Scale     float64 `toml:"scale"`
	Resizable bool    `toml:"resizable"`
	TPS       int     `toml:"tps"`
}

type GameConfig struct {
	Config string `toml:"config"` // game document, .json or .yaml
	Watch  bool   `toml:"watch"`
	Seed   int64  `toml:"seed"` // 0 picks a random seed
	// MaxFrameDelta caps the measured frame delta in seconds. 0 disables.
	MaxFrameDelta float64 `toml:"max_frame_delta"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a settings file over the defaults. A missing file is not an
// error when path is the default path.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Parse(path, data)
}

func Parse(path string, data []byte) (*Settings, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = 1
	}
	if cfg.Game.MaxFrameDelta < 0 {
		return nil, fmt.Errorf("parse settings %s: max_frame_delta must not be negative", path)
	}
	return cfg, nil
}

// Defaults returns the settings used when no file is present.
func Defaults() *Settings {
	return &Settings{
		Window: WindowConfig{
			Title:     "arcade",
			Scale:     1,
			Resizable: true,
			TPS:       60,
		},
		Game: GameConfig{
			MaxFrameDelta: 0.1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ClampDelta applies MaxFrameDelta to a measured frame delta.
func (g GameConfig) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if g.MaxFrameDelta > 0 && dt > g.MaxFrameDelta {
		return g.MaxFrameDelta
	}
	return dt
}

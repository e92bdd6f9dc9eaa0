// Package config loads application settings from a TOML file, falling
// back to built-in defaults when the file is absent.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application settings.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Assets   AssetsConfig   `toml:"assets"`
	Profiler ProfilerConfig `toml:"profiler"`
}

// WindowConfig holds the window geometry and chrome settings.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Decorated bool   `toml:"decorated"`
	Resizable bool   `toml:"resizable"`
}

// AssetsConfig holds the on-disk asset locations.
type AssetsConfig struct {
	// IconImage is the image shown in the menu bar button.
	IconImage string `toml:"icon_image"`
	// RecordsDir holds the simulation body record files.
	RecordsDir string `toml:"records_dir"`
}

// ProfilerConfig holds the performance monitoring settings.
type ProfilerConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in settings.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "SpaceS",
			Width:     1200,
			Height:    600,
			Decorated: false,
			Resizable: false,
		},
		Assets: AssetsConfig{
			IconImage:  "design/Hintergrund.png",
			RecordsDir: "records",
		},
		Profiler: ProfilerConfig{
			Enabled: false,
		},
	}
}

// Load reads settings from a TOML file. A missing file yields the
// defaults; a malformed file is an error.
//
// Parameters:
//   - path: the TOML file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file exists but cannot be parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size must be positive", path)
	}
	return cfg, nil
}

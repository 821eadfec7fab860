// Package config loads exchart CLI settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds CLI defaults. Command-line flags override them.
type Settings struct {
	Output  OutputSettings  `toml:"output"`
	Render  RenderSettings  `toml:"render"`
	Display DisplaySettings `toml:"display"`
}

// OutputSettings controls serialization.
type OutputSettings struct {
	// Format is "json" or "yaml".
	Format string `toml:"format"`
	// Pretty enables indented JSON.
	Pretty bool `toml:"pretty"`
}

// RenderSettings controls PNG rendering.
type RenderSettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DisplaySettings controls the renderer options bag.
type DisplaySettings struct {
	LegendPosition string `toml:"legend_position"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Output:  OutputSettings{Format: "json"},
		Render:  RenderSettings{Width: 800, Height: 480},
		Display: DisplaySettings{LegendPosition: "top"},
	}
}

// DefaultPath returns ~/.exchart/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".exchart", "config.toml"), nil
}

// Load reads settings from path on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path, creating its directory.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Package config holds the runtime settings of the board and the front end.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"DrawSpace/internal/props"
	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window is the initial window size.
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Config is loaded once at start-up.
type Config struct {
	AppID            string  `yaml:"app_id"`
	PreferencesKey   string  `yaml:"preferences_key"`
	HistorySize      int     `yaml:"history_size"`
	MinTransformSize float32 `yaml:"min_transform_size"`
	DefaultTool      string  `yaml:"default_tool"`
	Debug            bool    `yaml:"debug"`
	Window           Window  `yaml:"window"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppID:            "app.drawspace",
		PreferencesKey:   props.DefaultKey,
		HistorySize:      state.DefaultHistorySize,
		MinTransformSize: 5,
		DefaultTool:      "pointer",
		Window:           Window{Width: 1024, Height: 768},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be silently corrected.
func (c Config) Validate() error {
	if c.AppID == "" {
		return fmt.Errorf("%w: app_id is empty", ErrInvalid)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("%w: history_size must be at least 1, got %d", ErrInvalid, c.HistorySize)
	}
	if c.MinTransformSize <= 0 {
		return fmt.Errorf("%w: min_transform_size must be positive, got %g", ErrInvalid, c.MinTransformSize)
	}
	if _, err := tools.ParseID(c.DefaultTool); err != nil {
		return fmt.Errorf("%w: default_tool: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %gx%g", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Package config loads drag3d settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable setting. Zero-valued sections in a file keep
// the defaults they were loaded over.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Loop    LoopConfig    `yaml:"loop"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig sizes the drawing surface.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TerrainConfig controls the generated heightmap. Seed 0 picks a
// time-based seed.
type TerrainConfig struct {
	Width    int    `yaml:"width"`
	Depth    int    `yaml:"depth"`
	GridSize int    `yaml:"grid_size"`
	Seed     uint64 `yaml:"seed"`
}

// LoopConfig controls frame pacing.
type LoopConfig struct {
	FPS int `yaml:"fps"`
	// CatchUp schedules frames against absolute deadlines instead of
	// sleeping the remainder of each frame.
	CatchUp bool `yaml:"catch_up"`
	// MaxFrames stops the loop after that many frames; 0 runs until stopped.
	MaxFrames int `yaml:"max_frames"`
}

// CameraConfig controls camera behavior.
type CameraConfig struct {
	// Smoothing eases mouse look through a damped spring.
	Smoothing bool `yaml:"smoothing"`
}

// InputConfig controls key handling.
type InputConfig struct {
	// HoldTimeout releases a held key with no press or repeat within the
	// window. It must outlast the OS key-repeat delay. 0 keeps keys held
	// until an explicit release.
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "DragEngine 3D",
		},
		Terrain: TerrainConfig{
			Width:    800,
			Depth:    800,
			GridSize: 50,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Input: InputConfig{
			HoldTimeout: 600 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
			File:  "drag3d.log",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first setting outside its allowed range.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return fmt.Errorf("%w: window.width must be positive, got %d", ErrInvalidConfig, c.Window.Width)
	case c.Window.Height <= 0:
		return fmt.Errorf("%w: window.height must be positive, got %d", ErrInvalidConfig, c.Window.Height)
	case c.Terrain.Width < 0:
		return fmt.Errorf("%w: terrain.width must not be negative, got %d", ErrInvalidConfig, c.Terrain.Width)
	case c.Terrain.Depth < 0:
		return fmt.Errorf("%w: terrain.depth must not be negative, got %d", ErrInvalidConfig, c.Terrain.Depth)
	case c.Terrain.GridSize <= 0:
		return fmt.Errorf("%w: terrain.grid_size must be positive, got %d", ErrInvalidConfig, c.Terrain.GridSize)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("%w: loop.fps must be positive, got %d", ErrInvalidConfig, c.Loop.FPS)
	case c.Loop.MaxFrames < 0:
		return fmt.Errorf("%w: loop.max_frames must not be negative, got %d", ErrInvalidConfig, c.Loop.MaxFrames)
	case c.Input.HoldTimeout < 0:
		return fmt.Errorf("%w: input.hold_timeout must not be negative, got %s", ErrInvalidConfig, c.Input.HoldTimeout)
	}
	return nil
}

// FrameInterval returns the target time per frame.
func (c LoopConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

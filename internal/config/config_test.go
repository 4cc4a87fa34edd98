package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drag3d.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "DragEngine 3D" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Terrain.Width != 800 || cfg.Terrain.Depth != 800 || cfg.Terrain.GridSize != 50 {
		t.Errorf("terrain = %+v", cfg.Terrain)
	}
	if cfg.Loop.FPS != 60 || cfg.Loop.CatchUp || cfg.Loop.MaxFrames != 0 {
		t.Errorf("loop = %+v", cfg.Loop)
	}
	if cfg.Input.HoldTimeout != 600*time.Millisecond {
		t.Errorf("hold_timeout = %v", cfg.Input.HoldTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 320
terrain:
  grid_size: 25
  seed: 42
loop:
  catch_up: true
input:
  hold_timeout: 80ms
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Width != 320 {
		t.Errorf("width = %d, want 320", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("height = %d, want default 600", cfg.Window.Height)
	}
	if cfg.Terrain.GridSize != 25 || cfg.Terrain.Seed != 42 {
		t.Errorf("terrain = %+v", cfg.Terrain)
	}
	if cfg.Terrain.Width != 800 {
		t.Errorf("terrain width = %d, want default 800", cfg.Terrain.Width)
	}
	if !cfg.Loop.CatchUp {
		t.Error("catch_up not applied")
	}
	if cfg.Input.HoldTimeout != 80*time.Millisecond {
		t.Errorf("hold_timeout = %v", cfg.Input.HoldTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "drag3d.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "window: [1, 2"))
		if err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "terrain:\n  grid_size: -5\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"negative terrain width", func(c *Config) { c.Terrain.Width = -1 }},
		{"negative terrain depth", func(c *Config) { c.Terrain.Depth = -1 }},
		{"zero grid", func(c *Config) { c.Terrain.GridSize = 0 }},
		{"zero fps", func(c *Config) { c.Loop.FPS = 0 }},
		{"negative max frames", func(c *Config) { c.Loop.MaxFrames = -1 }},
		{"negative hold timeout", func(c *Config) { c.Input.HoldTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, 0},
	}
	for _, tt := range tests {
		if got := (LoopConfig{FPS: tt.fps}).FrameInterval(); got != tt.want {
			t.Errorf("FrameInterval(%d) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

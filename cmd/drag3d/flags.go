package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/drag3d/internal/config"
)

// defaultConfigPath is read when present and no --config is given.
const defaultConfigPath = "drag3d.yaml"

// flags holds command-line values. Shared flags override the config file
// only when set explicitly.
type flags struct {
	configPath string

	width     int
	height    int
	terrainW  int
	terrainD  int
	gridSize  int
	seed      uint64
	fps       int
	catchUp   bool
	maxFrames int
	smoothing bool
	logLevel  string
	logFile   string

	cube    bool
	outline string

	// snapshot
	pngOut string
	frames int
	scale  int
	yaw    float64
	pitch  float64
	hold   []string

	// export
	glbOut string
}

func (f *flags) registerShared(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file (default ./"+defaultConfigPath+" if present)")
	pf.IntVar(&f.width, "width", 0, "surface width in pixels for headless rendering")
	pf.IntVar(&f.height, "height", 0, "surface height in pixels for headless rendering")
	pf.IntVar(&f.terrainW, "terrain-width", 0, "terrain extent along x")
	pf.IntVar(&f.terrainD, "terrain-depth", 0, "terrain extent along z")
	pf.IntVarP(&f.gridSize, "grid", "g", 0, "terrain grid spacing")
	pf.Uint64Var(&f.seed, "seed", 0, "terrain random seed (0 = time based)")
	pf.IntVar(&f.fps, "fps", 0, "target frame rate")
	pf.BoolVar(&f.catchUp, "catch-up", false, "schedule frames on absolute deadlines")
	pf.IntVar(&f.maxFrames, "max-frames", 0, "stop after this many frames (0 = unlimited)")
	pf.BoolVar(&f.smoothing, "smooth", false, "ease mouse look with a spring")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFile, "log-file", "", "log file for the interactive view")
	pf.BoolVar(&f.cube, "cube", false, "add a shaded cube above the terrain")
	pf.StringVar(&f.outline, "outline", "white", "cube outline color (name or #rrggbb)")
}

func (f *flags) registerSnapshot(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.pngOut, "out", "o", "drag3d.png", "output PNG path")
	fl.IntVarP(&f.frames, "frames", "n", 1, "frames to render before saving")
	fl.IntVarP(&f.scale, "scale", "s", 1, "integer upscale factor")
	fl.Float64Var(&f.yaw, "yaw", 0, "camera yaw in degrees")
	fl.Float64Var(&f.pitch, "pitch", 0, "camera pitch in degrees")
	fl.StringSliceVar(&f.hold, "hold", nil, "keys held for every frame, e.g. w,space")
}

// load reads the config file and applies explicitly set flags on top.
func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path := f.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("stat config: %w", err)
		}
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed

	if set("width") {
		cfg.Window.Width = f.width
	}
	if set("height") {
		cfg.Window.Height = f.height
	}
	if set("terrain-width") {
		cfg.Terrain.Width = f.terrainW
	}
	if set("terrain-depth") {
		cfg.Terrain.Depth = f.terrainD
	}
	if set("grid") {
		cfg.Terrain.GridSize = f.gridSize
	}
	if set("seed") {
		cfg.Terrain.Seed = f.seed
	}
	if set("fps") {
		cfg.Loop.FPS = f.fps
	}
	if set("catch-up") {
		cfg.Loop.CatchUp = f.catchUp
	}
	if set("max-frames") {
		cfg.Loop.MaxFrames = f.maxFrames
	}
	if set("smooth") {
		cfg.Camera.Smoothing = f.smoothing
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
	}
}

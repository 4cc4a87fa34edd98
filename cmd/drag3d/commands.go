package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/drag3d/internal/config"
	"github.com/taigrr/drag3d/internal/logging"
	"github.com/taigrr/drag3d/internal/terminal"
	"github.com/taigrr/drag3d/pkg/engine"
	"github.com/taigrr/drag3d/pkg/input"
	"github.com/taigrr/drag3d/pkg/models"
	"github.com/taigrr/drag3d/pkg/render"
)

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "drag3d",
		Short:         "Software-rendered 3D terrain viewer",
		Long:          "drag3d renders a random heightmap terrain with a flat-shaded, hand-projected software rasterizer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, f)
		},
	}
	f.registerShared(root)

	run := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, f)
		},
	}

	snapshot := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames headlessly and save the last one as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, f)
		},
	}
	f.registerSnapshot(snapshot)

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the scene meshes to a binary glTF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, f)
		},
	}
	export.Flags().StringVarP(&f.glbOut, "out", "o", "drag3d.glb", "output .glb path")

	root.AddCommand(run, snapshot, export)
	return root
}

func engineOptions(cfg config.Config, keymap input.Keymap) engine.Options {
	return engine.Options{
		FPS:         cfg.Loop.FPS,
		CatchUp:     cfg.Loop.CatchUp,
		MaxFrames:   cfg.Loop.MaxFrames,
		Smoothing:   cfg.Camera.Smoothing,
		HoldTimeout: cfg.Input.HoldTimeout,
		Keymap:      keymap,
	}
}

func runInteractive(cmd *cobra.Command, f *flags) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	objects, err := demoScene(cfg, f.cube, f.outline)
	if err != nil {
		return err
	}

	keymap := input.DefaultKeymap()
	surface, err := terminal.Open(cfg.Window.Title, keymap, logger)
	if err != nil {
		return err
	}
	defer surface.Close()

	opts := engineOptions(cfg, keymap)
	opts.Logger = logger
	eng := engine.New(surface, opts)
	for _, obj := range objects {
		eng.Scene.Add(obj)
	}

	surface.Status = func() string {
		p := eng.Camera.Position
		return fmt.Sprintf("%s  pos %.0f,%.0f,%.0f  yaw %.1f  pitch %.1f",
			cfg.Window.Title, p.X, p.Y, p.Z, eng.Camera.Yaw, eng.Camera.Pitch)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	surface.Forward(ctx, eng.Events())

	return eng.Run(ctx)
}

func runSnapshot(cmd *cobra.Command, f *flags) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	objects, err := demoScene(cfg, f.cube, f.outline)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Window.Width, cfg.Window.Height)
	opts := engineOptions(cfg, input.DefaultKeymap())
	opts.MaxFrames = f.frames
	opts.HoldTimeout = 0
	opts.Logger = logger

	eng := engine.New(fb, opts)
	for _, obj := range objects {
		eng.Scene.Add(obj)
	}
	eng.Camera.Rotate(f.yaw, f.pitch)
	for _, k := range f.hold {
		eng.KeyDown(input.Key(strings.TrimSpace(k)))
	}

	if err := eng.Run(cmd.Context()); err != nil {
		return err
	}
	if err := fb.SavePNG(f.pngOut, f.scale); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	logger.Info("snapshot saved", "path", f.pngOut, "frames", eng.Frames(), "scale", f.scale)
	return nil
}

func runExport(cmd *cobra.Command, f *flags) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	objects, err := demoScene(cfg, f.cube, f.outline)
	if err != nil {
		return err
	}
	meshes := sceneMeshes(objects)

	if err := models.ExportGLB(f.glbOut, meshes...); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	logger.Info("scene exported", "path", f.glbOut, "meshes", len(meshes))
	return nil
}

// Package engine runs the frame loop: it moves the camera from held keys,
// updates and renders the scene onto a surface, and applies input events
// between frames.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/taigrr/drag3d/pkg/input"
	"github.com/taigrr/drag3d/pkg/render"
	"github.com/taigrr/drag3d/pkg/scene"
)

// ErrStopped is returned by Run on an engine that has already stopped.
var ErrStopped = errors.New("engine stopped")

const (
	// MoveStep is how far the camera moves per frame along each held key's
	// axis.
	MoveStep = 10

	// MouseSensitivity converts drag pixels to degrees.
	MouseSensitivity = 0.1

	// DefaultFPS is the target frame rate when Options.FPS is unset.
	DefaultFPS = 60

	eventBuffer = 256
)

// State is the lifecycle state of an Engine.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures an Engine. Zero values pick the defaults.
type Options struct {
	FPS       int
	CatchUp   bool
	MaxFrames int

	// Smoothing eases mouse look through a damped spring instead of
	// rotating the camera directly.
	Smoothing bool

	HoldTimeout time.Duration
	Keymap      input.Keymap
	Logger      *log.Logger
}

// Engine owns the camera, scene and input state, and drives them at a fixed
// target rate. All of its methods must be called from the goroutine running
// the loop; other goroutines deliver input through Events.
type Engine struct {
	Camera *render.Camera
	Scene  *scene.Scene
	Input  *input.State
	Light  render.Light
	Keymap input.Keymap

	surface render.Surface
	events  chan input.Event
	opts    Options
	logger  *log.Logger
	look    *lookSpring

	state  State
	frames int

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a running engine drawing onto surface, with the camera at
// (0, 0, -500), the light at (0, 200, 0) and an empty scene.
func New(surface render.Surface, opts Options) *Engine {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Keymap == nil {
		opts.Keymap = input.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	e := &Engine{
		Camera:  render.NewCamera(),
		Scene:   scene.New(),
		Input:   input.NewState(opts.HoldTimeout),
		Light:   render.DefaultLight(),
		Keymap:  opts.Keymap,
		surface: surface,
		events:  make(chan input.Event, eventBuffer),
		opts:    opts,
		logger:  opts.Logger,
		state:   Running,
		now:     time.Now,
		sleep:   sleepContext,
	}
	if opts.Smoothing {
		e.look = newLookSpring(opts.FPS, e.Camera)
	}
	return e
}

// Events returns the channel hosts send input events on. Events are applied
// after the current frame has been presented.
func (e *Engine) Events() chan<- input.Event {
	return e.events
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Frames returns the number of frames rendered so far.
func (e *Engine) Frames() int {
	return e.frames
}

// Stop ends the loop at the next iteration boundary. Stopping is final.
func (e *Engine) Stop() {
	e.stop("stop requested")
}

func (e *Engine) stop(reason string) {
	if e.state == Stopped {
		return
	}
	e.state = Stopped
	e.logger.Info("engine stopped", "reason", reason, "frames", e.frames)
}

// Step renders one frame: apply held keys, update the scene, clear, draw the
// skybox, render the scene, present, then apply queued input events.
func (e *Engine) Step() error {
	e.applyMovement(e.now())
	if e.look != nil {
		e.look.step(e.Camera)
	}

	e.Scene.Update()

	e.surface.Clear()
	render.DrawSkybox(e.surface)
	e.Scene.Render(render.NewView(e.Camera, e.Light, e.surface))

	e.frames++
	if err := e.surface.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", e.frames, err)
	}

	e.drainEvents()
	return nil
}

// Run steps frames until the engine stops, ctx is done, Options.MaxFrames is
// reached, or the surface fails. It returns nil on a clean stop and the
// wrapped surface error otherwise.
func (e *Engine) Run(ctx context.Context) error {
	if e.state == Stopped {
		return ErrStopped
	}

	interval := time.Second / time.Duration(e.opts.FPS)
	p := &pacer{interval: interval, catchUp: e.opts.CatchUp}
	e.logger.Info("engine started", "fps", e.opts.FPS, "catch_up", e.opts.CatchUp, "objects", e.Scene.Len())

	for e.state == Running {
		if ctx.Err() != nil {
			e.stop("context done")
			break
		}

		start := e.now()
		if err := e.Step(); err != nil {
			e.stop("surface error")
			return err
		}

		if e.opts.MaxFrames > 0 && e.frames >= e.opts.MaxFrames {
			e.stop("frame limit reached")
		}
		if e.state != Running {
			break
		}

		now := e.now()
		if elapsed := now.Sub(start); elapsed > interval {
			e.logger.Debug("slow frame", "frame", e.frames, "elapsed", elapsed)
		}
		if d := p.delay(start, now); d > 0 {
			if err := e.sleep(ctx, d); err != nil {
				e.stop("context done")
			}
		}
	}
	return nil
}

func (e *Engine) applyMovement(now time.Time) {
	for _, k := range e.Keymap.Keys() {
		if e.Input.Held(k, now) {
			e.Camera.Move(e.Keymap[k].Scale(MoveStep))
		}
	}
}

func (e *Engine) drainEvents() {
	for {
		select {
		case ev := <-e.events:
			e.Dispatch(ev)
		default:
			return
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

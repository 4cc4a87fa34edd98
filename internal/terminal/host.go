// Package terminal shows frames in a terminal and turns terminal key and
// mouse events into engine input.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/drag3d/pkg/input"
	"github.com/taigrr/drag3d/pkg/math3d"
	"github.com/taigrr/drag3d/pkg/render"
)

// Terminal modes set on Open and reset on Close.
const (
	mouseAnyEventOn  = "\x1b[?1003h"
	mouseAnyEventOff = "\x1b[?1003l"
	mouseSGROn       = "\x1b[?1006h"
	mouseSGROff      = "\x1b[?1006l"

	// Kitty keyboard flags 1|2|8: disambiguate, report releases, report
	// modifier keys on their own. Terminals without the protocol ignore it.
	kittyKeysPush = "\x1b[>11u"
	kittyKeysPop  = "\x1b[<u"
)

type size struct{ cols, rows int }

// Surface is a render.Surface shown in the terminal. Each cell displays two
// vertically stacked pixels, so the drawing area is cols x rows*2 pixels.
//
// Drawing methods belong to the frame loop goroutine. Terminal events are
// read on a separate goroutine started by Forward.
type Surface struct {
	term   *uv.Terminal
	out    io.Writer
	fb     *render.Framebuffer
	cols   int
	rows   int
	keymap input.Keymap
	logger *log.Logger

	resize chan size

	// Status, if set, is shown on the top row after every frame.
	Status func() string
	fps    *fpsCounter
}

// Open takes over the terminal: alternate screen, hidden cursor, mouse
// tracking and the window title. Call Close to restore it.
func Open(title string, keymap input.Keymap, logger *log.Logger) (*Surface, error) {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	out := os.Stdout
	fmt.Fprint(out, mouseAnyEventOn)
	fmt.Fprint(out, mouseSGROn)
	fmt.Fprint(out, kittyKeysPush)
	fmt.Fprint(out, setTitle(title))

	logger.Info("terminal opened", "cols", cols, "rows", rows)

	return &Surface{
		term:   term,
		out:    out,
		fb:     render.NewFramebuffer(cols, rows*2),
		cols:   cols,
		rows:   rows,
		keymap: keymap,
		logger: logger,
		resize: make(chan size, 1),
		fps:    newFPSCounter(),
	}, nil
}

// Close restores the terminal.
func (s *Surface) Close() error {
	fmt.Fprint(s.out, kittyKeysPop)
	fmt.Fprint(s.out, mouseAnyEventOff)
	fmt.Fprint(s.out, mouseSGROff)
	s.term.ExitAltScreen()
	s.term.ShowCursor()
	return s.term.Shutdown(context.Background())
}

// Forward reads terminal events until ctx is done and sends the translated
// input events to events. Resizes are applied by the next Clear.
func (s *Surface) Forward(ctx context.Context, events chan<- input.Event) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-s.term.Events():
				if !ok {
					return
				}
				if ws, ok := ev.(uv.WindowSizeEvent); ok {
					s.requestResize(size{ws.Width, ws.Height})
					continue
				}
				for _, ie := range Translate(ev, s.keymap) {
					select {
					case events <- ie:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
}

// requestResize replaces any pending resize with sz.
func (s *Surface) requestResize(sz size) {
	select {
	case <-s.resize:
	default:
	}
	s.resize <- sz
}

// Size returns the drawing area in pixels.
func (s *Surface) Size() (int, int) {
	return s.fb.Size()
}

// Clear applies a pending resize and erases the frame.
func (s *Surface) Clear() {
	select {
	case sz := <-s.resize:
		s.cols, s.rows = sz.cols, sz.rows
		s.term.Erase()
		s.term.Resize(sz.cols, sz.rows)
		s.fb = render.NewFramebuffer(sz.cols, sz.rows*2)
		s.logger.Debug("terminal resized", "cols", sz.cols, "rows", sz.rows)
	default:
	}
	s.fb.Clear()
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64, c render.Color) {
	s.fb.DrawLine(x1, y1, x2, y2, c)
}

func (s *Surface) DrawFilledPolygon(points []math3d.Vec2, outline, fill render.Color) {
	s.fb.DrawFilledPolygon(points, outline, fill)
}

func (s *Surface) DrawWirePolygon(points []math3d.Vec2, outline render.Color) {
	s.fb.DrawWirePolygon(points, outline)
}

// Present copies the frame into terminal cells and writes the changes out.
func (s *Surface) Present() error {
	area := uv.Rect(0, 0, s.cols, s.rows)
	s.fb.Draw(s.term, area)

	s.fps.tick()
	if s.Status != nil {
		drawStatus(s.term, area, fmt.Sprintf("%s  %.0f fps", s.Status(), s.fps.rate))
	}

	if err := s.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return s.fb.Present()
}

func setTitle(title string) string {
	return "\x1b]2;" + title + "\x07"
}

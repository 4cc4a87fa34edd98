package terminal

import (
	"image/color"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
)

var (
	statusFg = color.RGBA{255, 255, 255, 255}
	statusBg = color.RGBA{0, 0, 0, 255}
)

// drawStatus writes text over the top row of area, truncated to fit.
func drawStatus(scr uv.Screen, area uv.Rectangle, text string) {
	x := area.Min.X
	for _, r := range " " + text + " " {
		if x >= area.Max.X {
			return
		}
		scr.SetCell(x, area.Min.Y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: statusFg, Bg: statusBg},
		})
		x++
	}
}

// fpsCounter measures the presented frame rate over one-second windows.
type fpsCounter struct {
	rate   float64
	frames int
	since  time.Time
	now    func() time.Time
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{since: time.Now(), now: time.Now}
}

func (f *fpsCounter) tick() {
	f.frames++
	now := f.now()
	if elapsed := now.Sub(f.since); elapsed >= time.Second {
		f.rate = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.since = now
	}
}

package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

const halfBlock = "▀"

// Draw paints the framebuffer into area, two pixel rows per terminal row.
// Cells past the framebuffer edge are blanked so a shrinking surface leaves
// no stale pixels behind.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			scr.SetCell(x, y, fb.cellAt(x, y))
		}
	}
}

// cellAt returns the half-block cell for terminal cell (x, y): the glyph's
// foreground is pixel row 2y and its background pixel row 2y+1.
func (fb *Framebuffer) cellAt(x, y int) *uv.Cell {
	if x >= fb.Width || 2*y >= fb.Height {
		blank := uv.EmptyCell
		return &blank
	}
	return &uv.Cell{
		Content: halfBlock,
		Width:   1,
		Style: uv.Style{
			Fg: cellColor(fb.GetPixel(x, 2*y)),
			Bg: cellColor(fb.GetPixel(x, 2*y+1)),
		},
	}
}

// cellColor maps a transparent pixel to the terminal default.
func cellColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

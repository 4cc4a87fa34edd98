package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorGreen = color.RGBA{0, 128, 0, 255}
)

// namedColors are the color names accepted by ParseColor besides hex.
var namedColors = map[string]Color{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     RGB(255, 0, 0),
	"green":   ColorGreen,
	"lime":    RGB(0, 255, 0),
	"blue":    RGB(0, 0, 255),
	"yellow":  RGB(255, 255, 0),
	"cyan":    RGB(0, 255, 255),
	"magenta": RGB(255, 0, 255),
	"gray":    RGB(128, 128, 128),
	"grey":    RGB(128, 128, 128),
	"orange":  RGB(255, 165, 0),
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// Gray creates an opaque gray with all three channels set to v.
func Gray(v uint8) Color {
	return color.RGBA{v, v, v, 255}
}

// LerpColor linearly interpolates each channel from a to b by t and truncates
// the result to an integer.
func LerpColor(a, b Color, t float64) Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}

// ColorHex packs c as a 6-hex-digit "#rrggbb" string.
func ColorHex(c Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseColor accepts a color name (see namedColors) or a "#rgb"/"#rrggbb"
// hex string.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	cf, err := colorful.Hex(key)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

package render

// Skybox gradient stops, top to bottom.
var (
	SkyZenith  = RGB(0, 0, 128)
	SkyHorizon = RGB(0, 128, 255)
	SkyNadir   = RGB(0, 0, 0)
)

// SkyboxColor returns the gradient color at t in [0, 1], where 0 is the top
// row of the surface: dark blue to sky blue over the upper half, then sky blue
// to black over the lower half.
func SkyboxColor(t float64) Color {
	if t < 0.5 {
		return LerpColor(SkyZenith, SkyHorizon, t*2)
	}
	return LerpColor(SkyHorizon, SkyNadir, (t-0.5)*2)
}

// DrawSkybox fills the surface with the sky gradient, one horizontal line per
// pixel row.
func DrawSkybox(s Surface) {
	width, height := s.Size()
	if height <= 0 {
		return
	}
	for y := range height {
		c := SkyboxColor(float64(y) / float64(height))
		s.DrawLine(0, float64(y), float64(width), float64(y), c)
	}
}

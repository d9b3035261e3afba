package raycast3d

import "image/color"

// Color stores unnormalized channels in the 0..255 range; it is not clamped until RGBA.
type Color struct {
	Red, Green, Blue Real
}

func (c Color) Scale(f Real) Color { return Color{c.Red * f, c.Green * f, c.Blue * f} }

// RGBA truncates each channel to 0..255; alpha is always fully opaque.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: clampChannel(c.Red),
		G: clampChannel(c.Green),
		B: clampChannel(c.Blue),
		A: 255,
	}
}

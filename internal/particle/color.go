package particle

import "image/color"

// Color is an RGBA value with r,g,b in 0-255 and a in 0-1. Channels are not
// clamped until the color is handed to a display.
type Color struct {
	R, G, B, A float64
}

// Lerp interpolates each channel toward to by t. t is not clamped.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// NRGBA truncates the color channels toward zero and clamps them to the
// displayable range.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A * 255),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color into a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R),
		G: float64(n.G),
		B: float64(n.B),
		A: float64(n.A) / 255,
	}
}

func channel(v float64) uint8 {
	v = float64(int64(v))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

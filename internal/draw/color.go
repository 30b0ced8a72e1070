package draw

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit additive color.
type RGB struct {
	R, G, B uint8
}

// HSL is a perceptual color: hue in degrees [0, 360), saturation and
// lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// HSL converts the color to hue/saturation/lightness form.
func (c RGB) HSL() HSL {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSL{H: h, S: s, L: l}
}

// RGB converts back to additive form. Saturation and lightness are
// clamped to [0, 1] so jittered values are always representable.
func (h HSL) RGB() RGB {
	r, g, b := colorful.Hsl(h.H, clamp(h.S, 0, 1), clamp(h.L, 0, 1)).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Scaled multiplies each channel by f, rounding to nearest and clamping
// to the byte range. Used to dim particles as their lifetime decays.
func (c RGB) Scaled(f float64) RGB {
	return RGB{
		R: uint8(clamp(math.Round(float64(c.R)*f), 0, 255)),
		G: uint8(clamp(math.Round(float64(c.G)*f), 0, 255)),
		B: uint8(clamp(math.Round(float64(c.B)*f), 0, 255)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

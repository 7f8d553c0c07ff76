package render

import "image/color"

// RGBA is a floating-point color used throughout the shading pipeline.
// Values are not implicitly clamped; clamp explicitly at output time.
type RGBA struct {
	R, G, B, A float32
}

var (
	Black = RGBA{0, 0, 0, 0}
	White = RGBA{1, 1, 1, 1}
)

func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c RGBA) Mul(s float32) RGBA {
	return RGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// MulColor multiplies component-wise, as Phong's per-channel products do.
func (c RGBA) MulColor(o RGBA) RGBA {
	return RGBA{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp restricts every channel to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// ToNRGBA converts a clamped [0,1] color to 8-bit-per-channel image/color,
// rounding each channel to the nearest integer.
func (c RGBA) ToNRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// reflectIndex maps an out-of-range index into [0, n) by reflecting it
// across the nearest edge, used by the post-process blur when a
// convolution tap falls outside the framebuffer.
func reflectIndex(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = (n - 1) - (i - n)
		}
	}
	return i
}

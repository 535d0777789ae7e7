package texture

import "image/color"

// Epsilon is the overshoot tolerance for filtered channels.
const Epsilon = 1.0 / 255.0

// Color is a linear RGBA color with channels normalized to [0,1].
type Color struct {
	R, G, B, A float64
}

// ColorFromBytes normalizes 8-bit channels.
func ColorFromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// InRange reports whether every channel lies in [0, 1+Epsilon].
func (c Color) InRange() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1+Epsilon) {
			return false
		}
	}
	return true
}

// Bytes rounds each channel to 8 bits, clamping to [0,255].
func (c Color) Bytes() (r, g, b, a uint8) {
	return clamp255(c.R * 255), clamp255(c.G * 255), clamp255(c.B * 255), clamp255(c.A * 255)
}

// Pack returns the color as 0xRRGGBBAA.
func (c Color) Pack() uint32 {
	r, g, b, a := c.Bytes()
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) Color {
	return ColorFromBytes(uint8(p>>24), uint8(p>>16), uint8(p>>8), uint8(p))
}

func clamp255(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Package color implements the packed-hex/RGB conversions, the 60-slot
// cyclic palette and the HSL round-trip used by the flame brightening pass.
package color

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB is an 8-bit-per-channel colour triple.
type RGB struct {
	R, G, B uint8
}

// Palette is the closed 60-colour cycle built by BuildPalette.
type Palette [60]RGB

// FromHex extracts an RGB triple from a 24-bit packed hex integer,
// MSB-first: bits 23-16 are R, 15-8 are G, 7-0 are B.
func FromHex(hex uint32) RGB {
	return RGB{
		R: uint8((hex & 0xff0000) >> 16),
		G: uint8((hex & 0x00ff00) >> 8),
		B: uint8(hex & 0x0000ff),
	}
}

// Hex packs c back into a 24-bit integer.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// lerp interpolates channelwise from a to b at t in [0,1], truncating
// (round-toward-zero) to uint8, matching the source's implicit C cast.
func lerp(a, b uint8, t float64) uint8 {
	return uint8((1-t)*float64(a) + t*float64(b))
}

// BuildPalette computes the piecewise-linear closed cycle through c1, c2, c3:
// indices 0..19 interpolate c1->c2, 20..39 interpolate c2->c3, 40..59
// interpolate c3->c1. Palette[0] is always exactly c1.
func BuildPalette(c1, c2, c3 RGB) Palette {
	var p Palette
	for i := 0; i < 60; i++ {
		var from, to RGB
		var t float64
		switch {
		case i < 20:
			from, to, t = c1, c2, float64(i)/20.0
		case i < 40:
			from, to, t = c2, c3, float64(i-20)/20.0
		default:
			from, to, t = c3, c1, float64(i-40)/20.0
		}
		p[i] = RGB{lerp(from.R, to.R, t), lerp(from.G, to.G, t), lerp(from.B, to.B, t)}
	}
	return p
}

// Nudge advances one anchor colour along the hue ring by 5 units per step
// while it sits on a pure-primary edge of the RGB cube, or drifts the three
// channels toward white by 17 otherwise until it rejoins the ring. This is
// the 5/17 variant (see DESIGN.md, Open Question 5).
func Nudge(c RGB) RGB {
	switch {
	case c.R == 255 && c.G == 0 && c.B < 255:
		return RGB{c.R, c.G, c.B + 5}
	case c.R > 0 && c.G == 0 && c.B == 255:
		return RGB{c.R - 5, c.G, c.B}
	case c.R == 0 && c.G < 255 && c.B == 255:
		return RGB{c.R, c.G + 5, c.B}
	case c.R == 0 && c.G == 255 && c.B > 0:
		return RGB{c.R, c.G, c.B - 5}
	case c.R < 255 && c.G == 255 && c.B == 0:
		return RGB{c.R + 5, c.G, c.B}
	case c.R == 255 && c.G > 0 && c.B == 0:
		return RGB{c.R, c.G - 5, c.B}
	default:
		return RGB{c.R + 17, c.G + 17, c.B + 17}
	}
}

// Average returns the pointwise average of two colours, truncated per
// channel. This is the EMA-against-existing-pixel splat rule used by
// surface.Splat, not an unbiased running mean (see DESIGN.md, Open Question 1).
func Average(a, b RGB) RGB {
	return RGB{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
	}
}

// HSL converts c to hue in [0,360), saturation and lightness in [0,1],
// by way of go-colorful's colorimetric conversion.
func (c RGB) HSL() (h, s, l float64) {
	cc := colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
	return cc.Hsl()
}

// FromHSL is the inverse of RGB.HSL, clamping the result into [0,255] per
// channel the way go-colorful's Clamped does.
func FromHSL(h, s, l float64) RGB {
	cc := colorful.Hsl(h, s, l).Clamped()
	return RGB{
		R: uint8(cc.R*255.0 + 0.5),
		G: uint8(cc.G*255.0 + 0.5),
		B: uint8(cc.B*255.0 + 0.5),
	}
}

// Scale multiplies every channel of c by coef, clamping to [0,255].
func (c RGB) Scale(coef float64) RGB {
	scale := func(ch uint8) uint8 {
		v := float64(ch) * coef
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}

package flame

import (
	"math"

	"github.com/bdwalton/fractalbench/color"
	"github.com/bdwalton/fractalbench/surface"
)

// gamma is the fixed exponent used by Correct's density correction.
const gamma = 2.2

// brightenThreshold and brightenFactor implement the per-pixel HSL boost:
// pixels below the threshold get their lightness multiplied by the factor,
// pixels at or above it are clamped to full lightness.
const (
	brightenThreshold = 0.9
	brightenFactor    = 1.1
)

// Correct applies log-density gamma correction in place: every pixel with a
// nonzero hit counter is scaled by (log10(counter)/max)^(1/gamma). If the
// surface has no hits at all (max stays 0), Correct is a no-op and returns
// false instead of dividing by zero (see DESIGN.md, Open Question 2).
func Correct(surf *surface.Surface) bool {
	max := 0.0
	for i, count := range surf.Counter {
		if count == 0 {
			continue
		}
		n := math.Log10(float64(count))
		surf.Normal[i] = n
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return false
	}

	for i, count := range surf.Counter {
		if count == 0 {
			continue
		}
		surf.Normal[i] /= max
		coef := math.Pow(surf.Normal[i], 1.0/gamma)
		surf.Pixels[i] = surf.Pixels[i].Scale(coef)
	}
	return true
}

// Brighten boosts lightness in HSL space: L is multiplied by brightenFactor
// when below brightenThreshold, otherwise clamped to 1. Counter and Normal
// are untouched.
func Brighten(surf *surface.Surface) {
	for i, c := range surf.Pixels {
		h, s, l := c.HSL()
		if l < brightenThreshold {
			l *= brightenFactor
			if l > 1 {
				l = 1
			}
		} else {
			l = 1
		}
		surf.Pixels[i] = color.FromHSL(h, s, l)
	}
}

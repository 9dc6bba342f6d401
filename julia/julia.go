// Package julia implements the progressive escape-time Julia set iterator:
// per-pixel complex orbits advanced one iterate per frame, coloured by a
// cyclic palette when they escape. The iterate step itself is grounded on
// psteitz-ifs/ifs-server/engine/julia.go's juliaIFS, generalized from a
// batch GIF renderer to a per-frame progressive one.
package julia

import (
	"math"
	"math/cmplx"

	"github.com/bdwalton/fractalbench/color"
	"github.com/bdwalton/fractalbench/surface"
)

// ConstantPool is the fixed 14-entry set of Julia constants the CONSTANT
// input cycles through, chosen for the range of well-known filled-Julia-set
// shapes they produce.
var ConstantPool = [14]complex128{
	complex(0.285, 0.01),
	complex(-0.8, 0.156),
	complex(-0.4, 0.6),
	complex(0.285, 0),
	complex(-0.70176, -0.3842),
	complex(-0.835, -0.2321),
	complex(-0.7269, 0.1889),
	complex(0.45, 0.1428),
	complex(-0.1, 0.651),
	complex(-0.391, -0.587),
	complex(-0.54, 0.54),
	complex(0.355, 0.355),
	complex(-1.25066, 0),
	complex(-0.125, 0.8),
}

// EscapeRadius computes spec.md's R = 2 + sqrt(1 + 4*|c|) for the given
// Julia constant.
func EscapeRadius(c complex128) float64 {
	return 2 + math.Sqrt(1+4*cmplx.Abs(c))
}

// sqMod returns |z|^2 without the sqrt/resqrt round trip of squaring
// cmplx.Abs.
func sqMod(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// Field holds the per-pixel orbit state: one complex iterate and a frozen
// flag per pixel, row-major, sized to match a surface.
type Field struct {
	W, H   int
	Orbits []complex128
	Frozen []bool
}

// NewField allocates an orbit field sized w*h.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, Orbits: make([]complex128, w*h), Frozen: make([]bool, w*h)}
}

// Init seeds every pixel's orbit at its world-space coordinate under the
// given pan (shiftX,shiftY) and scale, paints the surface black, and
// immediately freezes and colours any pixel that starts outside the disk
// of radius R with palette[0] — spec.md's Julia invariant:
// |coords|^2 <= R iff the pixel is black; equivalently, a pixel that is
// NOT black right after Init is exactly one that started outside R.
func (f *Field) Init(surf *surface.Surface, shiftX, shiftY int, scale, r float64, palette0 color.RGB) {
	surf.UniformFill(0x000000)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			idx := y*f.W + x
			wx := (float64(x) - float64(shiftX)) / (float64(f.W) * scale)
			wy := (float64(y) - float64(shiftY)) / (float64(f.H) * scale)
			f.Orbits[idx] = complex(wx, wy)
			if sqMod(f.Orbits[idx]) > r {
				f.Frozen[idx] = true
				surf.Set(x, y, palette0)
			} else {
				f.Frozen[idx] = false
			}
		}
	}
}

// Step advances every non-frozen pixel's orbit by one iterate of
// z -> z^2 + c. A pixel whose squared modulus now exceeds r is painted
// with palette[frame mod len(palette)] and frozen; freezing is monotonic,
// once a pixel is non-black it never reverts. The frame counter is
// incremented after the pass.
func (f *Field) Step(surf *surface.Surface, c complex128, r float64, palette color.Palette, frame *int) {
	for idx, z := range f.Orbits {
		if f.Frozen[idx] {
			continue
		}
		z = z*z + c
		f.Orbits[idx] = z
		if sqMod(z) > r {
			x := idx % f.W
			y := idx / f.W
			surf.Set(x, y, palette[*frame%len(palette)])
			f.Frozen[idx] = true
		}
	}
	*frame++
}

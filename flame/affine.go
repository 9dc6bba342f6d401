// Package flame implements the chaos-game iterated function system: the
// affine generator, the sample pool it drives, and the log-density/HSL tone
// mapper applied to the splatted image on demand.
package flame

import (
	"math/rand"

	"github.com/bdwalton/fractalbench/color"
)

// MaxMaps is the largest number of affine maps an IFS can hold.
const MaxMaps = 30

// Affine is one contractive linear map (a,b,c,d,e,f) plus the RGB colour it
// splats with: (x,y) -> (a*x + b*y + c, d*x + e*y + f).
type Affine struct {
	A, B, C, D, E, F float64
	Colour           color.RGB
}

// Apply evaluates the affine map at (x,y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// IFS is an ordered array of up to MaxMaps affine maps; Count selects the
// live prefix, the source's eqCount.
type IFS struct {
	Maps  [MaxMaps]Affine
	Count int
}

// contractive reports whether the linear part (a,b,d,e) satisfies spec.md's
// acceptance predicate: (a,d) and (b,e) each inside the open unit disk, and
// the joint Jacobian-bound inequality.
func contractive(a, b, d, e float64) bool {
	if a*a+d*d >= 1 {
		return false
	}
	if b*b+e*e >= 1 {
		return false
	}
	det := a*e - b*d
	return a*a+d*d+b*b+e*e < 1+det*det
}

// DrawOneAffine samples a single contractive affine map, rejection-sampling
// the linear part and then drawing translation and colour uniformly. It
// mirrors fractals.cpp's generate_affine loop body exactly, including the
// nested rejection order (a,d first, then b,e, then the joint check).
func DrawOneAffine(rng *rand.Rand) Affine {
	var a, b, d, e float64
	for {
		for {
			a = rng.Float64()*2 - 1
			d = rng.Float64()*2 - 1
			if a*a+d*d < 1 {
				break
			}
		}
		for {
			b = rng.Float64()*2 - 1
			e = rng.Float64()*2 - 1
			if b*b+e*e < 1 {
				break
			}
		}
		if contractive(a, b, d, e) {
			break
		}
	}

	c := rng.Float64()*0.5 - 0.25
	f := rng.Float64()*0.5 - 0.25
	colour := color.RGB{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}

	return Affine{A: a, B: b, C: c, D: d, E: e, F: f, Colour: colour}
}

// RegenerateIFS fills the first count slots of ifs with fresh affines,
// leaving Count at count. Precondition: 1 <= count <= MaxMaps.
func RegenerateIFS(rng *rand.Rand, ifs *IFS, count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxMaps {
		count = MaxMaps
	}
	for i := 0; i < count; i++ {
		ifs.Maps[i] = DrawOneAffine(rng)
	}
	ifs.Count = count
}

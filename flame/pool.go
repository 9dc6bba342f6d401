package flame

import (
	"math"
	"math/rand"

	"github.com/bdwalton/fractalbench/surface"
	"github.com/bdwalton/fractalbench/variation"
)

// warmupIterations is the number of burn-in chaos-game steps applied to
// every pool point at seed time, per spec.md's fill_pool.
const warmupIterations = 40

// Point is one 2-D chaos-game sample.
type Point struct {
	X, Y float64
}

// Pool is the fixed-size array of sample points the flame path iterates,
// one per pixel of the surface it targets.
type Pool struct {
	W, H   int
	Points []Point
}

// NewPool allocates a pool sized to match a w*h surface.
func NewPool(w, h int) *Pool {
	return &Pool{W: w, H: h, Points: make([]Point, w*h)}
}

// VariationSelection resolves which warp(s) advance applies this frame: a
// single Kind, or a Random blend of two Kinds with a blend probability.
type VariationSelection struct {
	Random bool
	Kind   variation.Kind
	BlendA variation.Kind
	BlendB variation.Kind
	BlendP float64
}

func (vs VariationSelection) apply(x, y float64, params variation.Params, rng *rand.Rand) (float64, float64) {
	if vs.Random {
		return variation.Random(x, y, vs.BlendA, vs.BlendB, vs.BlendP, params, rng)
	}
	return variation.Table[vs.Kind](x, y, params, rng)
}

// SeedPool writes the deterministic lattice seed into every pool slot, then
// applies warmupIterations chaos-game steps under ifs (uniform random map
// choice per step, no variation applied — matching fill_pool, which
// iterates only the raw affine during warm-up).
// Axis note: the outer loop runs over image rows (y) and the inner over
// columns (x), matching the Surface's row-major layout explicitly rather
// than the source's ambiguous g/j naming (see DESIGN.md, Open Question 3).
func SeedPool(pool *Pool, ifs *IFS, rng *rand.Rand) {
	halfW := float64(pool.W) / 4.0
	halfH := float64(pool.H) / 4.0
	for row := 0; row < pool.H; row++ {
		for col := 0; col < pool.W; col++ {
			idx := row*pool.W + col
			p := Point{
				X: (float64(col) - float64(pool.W)/2) / halfW,
				Y: (float64(row) - float64(pool.H)/2) / halfH,
			}
			for k := 0; k < warmupIterations; k++ {
				i := rng.Intn(ifs.Count)
				p.X, p.Y = ifs.Maps[i].Apply(p.X, p.Y)
			}
			pool.Points[idx] = p
		}
	}
}

// Advance performs one chaos-game step for every pool point: pick a random
// affine, apply it, apply the selected variation, map world space to image
// space and splat the map's colour. scale/shiftX/shiftY are the flame
// view's current zoom and pan. Returns the number of splats that landed
// in bounds, for histogram-conservation checks.
func Advance(pool *Pool, surf *surface.Surface, ifs *IFS, vs VariationSelection, scale, shiftX, shiftY float64, rng *rand.Rand) int {
	landed := 0
	pixelScale := float64(surf.W) / 4.0 / scale
	for idx := range pool.Points {
		i := rng.Intn(ifs.Count)
		m := ifs.Maps[i]
		x1, y1 := m.Apply(pool.Points[idx].X, pool.Points[idx].Y)

		params := variation.Params{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
		x2, y2 := vs.apply(x1, y1, params, rng)
		pool.Points[idx] = Point{X: x2, Y: y2}

		u := int(math.Floor((x2 + (2+shiftX)*scale) * pixelScale))
		v := int(math.Floor((y2 + (2+shiftY)*scale) * pixelScale))
		if surf.Splat(u, v, m.Colour) {
			landed++
		}
	}
	return landed
}

package flame

import (
	"math/rand"
	"testing"

	"github.com/bdwalton/fractalbench/surface"
)

func TestContractiveRejectsBoundaryAffine(t *testing.T) {
	// Scenario 4: a=b=d=e=0.5 gives a^2+d^2+b^2+e^2 = 1.0, not < 1+(ae-bd)^2 = 1.
	if contractive(0.5, 0.5, 0.5, 0.5) {
		t.Fatal("boundary affine (0.5,0.5,0.5,0.5) must be rejected")
	}
}

func TestDrawOneAffineSatisfiesPredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		m := DrawOneAffine(rng)
		if m.A*m.A+m.D*m.D >= 1 {
			t.Fatalf("draw %d: a^2+d^2 >= 1: %+v", i, m)
		}
		if m.B*m.B+m.E*m.E >= 1 {
			t.Fatalf("draw %d: b^2+e^2 >= 1: %+v", i, m)
		}
		det := m.A*m.E - m.B*m.D
		if m.A*m.A+m.D*m.D+m.B*m.B+m.E*m.E >= 1+det*det {
			t.Fatalf("draw %d: joint contractivity violated: %+v", i, m)
		}
		if m.C < -0.25 || m.C > 0.25 || m.F < -0.25 || m.F > 0.25 {
			t.Fatalf("draw %d: translation out of (-0.25,0.25): %+v", i, m)
		}
	}
}

func TestRegenerateIFSFillsPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var ifs IFS
	RegenerateIFS(rng, &ifs, 5)
	if ifs.Count != 5 {
		t.Fatalf("Count = %d, want 5", ifs.Count)
	}
}

func TestSeedPoolBoundedByAttractor(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	var ifs IFS
	RegenerateIFS(rng, &ifs, 4)
	pool := NewPool(8, 8)
	SeedPool(pool, &ifs, rng)

	// Contractivity bounds the attractor; with translations in
	// (-0.25,0.25) and linear parts inside the unit disk, iterates stay
	// within a modest radius of the origin.
	const bound = 10.0
	for i, p := range pool.Points {
		if p.X < -bound || p.X > bound || p.Y < -bound || p.Y > bound {
			t.Fatalf("point %d escaped expected bounding box: %+v", i, p)
		}
	}
}

func TestAdvanceConservesHistogram(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	var ifs IFS
	RegenerateIFS(rng, &ifs, 6)
	pool := NewPool(20, 20)
	SeedPool(pool, &ifs, rng)
	surf := surface.New(20, 20)

	vs := VariationSelection{Kind: 0}
	var totalLanded int
	for i := 0; i < 5; i++ {
		totalLanded += Advance(pool, surf, &ifs, vs, 1.0, 0, 0, rng)
	}

	var counterSum uint64
	for _, c := range surf.Counter {
		counterSum += uint64(c)
	}
	if int(counterSum) != totalLanded {
		t.Errorf("counter sum = %d, want %d", counterSum, totalLanded)
	}
	if totalLanded > 5*len(pool.Points) {
		t.Errorf("landed splats %d exceed N*pool_size %d", totalLanded, 5*len(pool.Points))
	}
}

package surface

import (
	"testing"

	"github.com/bdwalton/fractalbench/color"
)

func TestUniformFill(t *testing.T) {
	s := New(4, 3)
	s.UniformFill(0x112233)
	want := color.FromHex(0x112233)
	for i, p := range s.Pixels {
		if p != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, p, want)
		}
	}
}

func TestDrawRectangleClipping(t *testing.T) {
	cases := []struct {
		name           string
		w, h           int
		cx, cy, rw, rh int
	}{
		{"fully outside left", 10, 10, -20, 5, 4, 4},
		{"fully outside right", 10, 10, 40, 5, 4, 4},
		{"straddles edge", 10, 10, 0, 0, 4, 4},
		{"odd extent rounds outward", 11, 11, 5, 5, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.w, tc.h)
			s.DrawRectangle(tc.cx, tc.cy, tc.rw, tc.rh, 0xff0000)
			// Must not panic and must stay within bounds implicitly (no OOB access).
		})
	}
}

func TestDrawSquareDelegates(t *testing.T) {
	s1 := New(10, 10)
	s2 := New(10, 10)
	s1.DrawSquare(5, 5, 4, 0x00ff00)
	s2.DrawRectangle(5, 5, 4, 4, 0x00ff00)
	for i := range s1.Pixels {
		if s1.Pixels[i] != s2.Pixels[i] {
			t.Fatalf("pixel %d differs: square=%+v rect=%+v", i, s1.Pixels[i], s2.Pixels[i])
		}
	}
}

func TestResetCounters(t *testing.T) {
	s := New(3, 3)
	s.UniformFill(0xff0000)
	s.Splat(1, 1, color.FromHex(0x00ff00))
	s.ResetCounters()
	for i, c := range s.Counter {
		if c != 0 {
			t.Errorf("counter[%d] = %d, want 0", i, c)
		}
	}
	for i, n := range s.Normal {
		if n != 0 {
			t.Errorf("normal[%d] = %f, want 0", i, n)
		}
	}
	// Pixels are untouched by ResetCounters.
	if p, _ := s.At(1, 1); p != color.FromHex(0x00ff00) {
		t.Errorf("pixel changed by ResetCounters: %+v", p)
	}
}

func TestSplatFirstHitVerbatim(t *testing.T) {
	s := New(2, 2)
	rgb := color.FromHex(0x102030)
	if !s.Splat(0, 0, rgb) {
		t.Fatal("in-bounds splat reported out of bounds")
	}
	got, _ := s.At(0, 0)
	if got != rgb {
		t.Errorf("first splat = %+v, want verbatim %+v", got, rgb)
	}
	if s.Counter[0] != 1 {
		t.Errorf("counter = %d, want 1", s.Counter[0])
	}
}

func TestSplatSecondHitAverages(t *testing.T) {
	s := New(2, 2)
	s.Splat(0, 0, color.RGB{R: 0, G: 0, B: 0})
	s.Splat(0, 0, color.RGB{R: 100, G: 100, B: 100})
	got, _ := s.At(0, 0)
	want := color.RGB{R: 50, G: 50, B: 50}
	if got != want {
		t.Errorf("second splat = %+v, want %+v", got, want)
	}
	if s.Counter[0] != 2 {
		t.Errorf("counter = %d, want 2", s.Counter[0])
	}
}

func TestSplatOutOfBoundsDropped(t *testing.T) {
	s := New(2, 2)
	if s.Splat(-1, 0, color.RGB{}) {
		t.Error("negative x splat should be dropped")
	}
	if s.Splat(0, 5, color.RGB{}) {
		t.Error("out-of-range y splat should be dropped")
	}
	for _, c := range s.Counter {
		if c != 0 {
			t.Error("out-of-bounds splats must not increment any counter")
		}
	}
}

func TestHistogramConservation(t *testing.T) {
	s := New(4, 4)
	landed := 0
	coords := [][2]int{{0, 0}, {1, 1}, {1, 1}, {-1, -1}, {3, 3}, {10, 10}}
	for _, c := range coords {
		if s.Splat(c[0], c[1], color.RGB{R: 1}) {
			landed++
		}
	}
	var total uint64
	for _, c := range s.Counter {
		total += uint64(c)
	}
	if int(total) != landed {
		t.Errorf("counter sum = %d, want %d landed splats", total, landed)
	}
}

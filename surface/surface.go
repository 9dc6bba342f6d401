// Package surface implements the pixel grid and its two flame-path
// auxiliaries: an integer hit counter and a normalised-density scratch
// buffer. All three share the same w*h row-major layout.
package surface

import (
	"fmt"

	"github.com/bdwalton/fractalbench/color"
)

// Surface is a w*h pixel grid plus the hit-counter and normalised-density
// buffers used by the flame tone mapper. All three slices are allocated
// once and reused for the lifetime of the surface.
type Surface struct {
	W, H    int
	Pixels  []color.RGB
	Counter []uint32
	Normal  []float64
}

// New allocates a Surface of the given dimensions. Counter and Normal start
// zeroed; Pixels starts black.
func New(w, h int) *Surface {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("surface: invalid dimensions %dx%d", w, h))
	}
	n := w * h
	return &Surface{
		W:       w,
		H:       h,
		Pixels:  make([]color.RGB, n),
		Counter: make([]uint32, n),
		Normal:  make([]float64, n),
	}
}

func (s *Surface) index(x, y int) (int, bool) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0, false
	}
	return y*s.W + x, true
}

// UniformFill writes hex to every pixel.
func (s *Surface) UniformFill(hex uint32) {
	c := color.FromHex(hex)
	for i := range s.Pixels {
		s.Pixels[i] = c
	}
}

// DrawRectangle fills the clipped axis-aligned rectangle of size w*h
// centred at (cx,cy). Odd extents round outward, matching the source's
// rect_w/2 + rect_w%2 asymmetric split.
func (s *Surface) DrawRectangle(cx, cy, w, h int, hex uint32) {
	c := color.FromHex(hex)

	startX := cx - w/2
	finishX := cx + w/2 + w%2
	if startX < 0 {
		startX = 0
	}
	if startX > s.W || finishX < 0 {
		return
	}
	if finishX > s.W {
		finishX = s.W
	}

	startY := cy - h/2
	finishY := cy + h/2 + h%2
	if startY < 0 {
		startY = 0
	}
	if startY > s.H || finishY < 0 {
		return
	}
	if finishY > s.H {
		finishY = s.H
	}

	for y := startY; y < finishY; y++ {
		for x := startX; x < finishX; x++ {
			s.Pixels[y*s.W+x] = c
		}
	}
}

// DrawSquare delegates to DrawRectangle with equal sides.
func (s *Surface) DrawSquare(cx, cy, side int, hex uint32) {
	s.DrawRectangle(cx, cy, side, side, hex)
}

// ResetCounters zeroes both the hit-counter and normal buffers, leaving
// Pixels untouched; callers repaint Pixels separately (typically via
// UniformFill) before the next flame pass.
func (s *Surface) ResetCounters() {
	for i := range s.Counter {
		s.Counter[i] = 0
		s.Normal[i] = 0
	}
}

// Splat writes rgb at (x,y): if this is the first hit, rgb is written
// verbatim; otherwise the pixel becomes the pointwise average of the
// existing colour and rgb (an EMA against the running pixel, not an
// unbiased average — see DESIGN.md). Out-of-range coordinates are dropped
// silently. Returns true iff the splat landed in bounds.
func (s *Surface) Splat(x, y int, rgb color.RGB) bool {
	idx, ok := s.index(x, y)
	if !ok {
		return false
	}
	if s.Counter[idx] == 0 {
		s.Pixels[idx] = rgb
	} else {
		s.Pixels[idx] = color.Average(s.Pixels[idx], rgb)
	}
	s.Counter[idx]++
	return true
}

// At returns the pixel at (x,y) and whether it was in bounds.
func (s *Surface) At(x, y int) (color.RGB, bool) {
	idx, ok := s.index(x, y)
	if !ok {
		return color.RGB{}, false
	}
	return s.Pixels[idx], true
}

// Set writes a single pixel, silently dropping out-of-range coordinates.
func (s *Surface) Set(x, y int, c color.RGB) {
	if idx, ok := s.index(x, y); ok {
		s.Pixels[idx] = c
	}
}

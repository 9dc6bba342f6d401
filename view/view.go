// Package view implements the shared pan/zoom/reset state for the two
// fractal families: integer-pixel panning for the Julia view, real
// world-unit panning for the flame view.
package view

// Julia view defaults, per spec.md 4.H.
const (
	JuliaPanStep      = 190
	JuliaDefaultScale = 0.25
)

// JuliaView holds the escape-time view's pan/zoom/constant/freeze state.
type JuliaView struct {
	Scale          float64
	ShiftX, ShiftY int
	ConstantIndex  int
	Frozen         bool
	Frame          int
}

// Reset restores scale=0.25 and shift=(w/2,h/2), the defaults spec.md's
// RESET_SCALE/TOTAL_RESET inputs return to.
func (v *JuliaView) Reset(w, h int) {
	v.Scale = JuliaDefaultScale
	v.ShiftX = w / 2
	v.ShiftY = h / 2
}

// ZoomIn doubles the scale.
func (v *JuliaView) ZoomIn() { v.Scale *= 2 }

// ZoomOut halves the scale.
func (v *JuliaView) ZoomOut() { v.Scale /= 2 }

// ShiftUp/Down/Left/Right adjust the pixel pan offset by JuliaPanStep.
func (v *JuliaView) ShiftUp()    { v.ShiftY += JuliaPanStep }
func (v *JuliaView) ShiftDown()  { v.ShiftY -= JuliaPanStep }
func (v *JuliaView) ShiftLeft()  { v.ShiftX += JuliaPanStep }
func (v *JuliaView) ShiftRight() { v.ShiftX -= JuliaPanStep }

// Flame view defaults, per spec.md 4.H.
const (
	FlamePanStep      = 0.5
	FlameDefaultScale = 1.0
)

// FlameView holds the chaos-game view's pan/zoom/variation/correction state.
type FlameView struct {
	Scale          float64
	ShiftX, ShiftY float64
	Variation      int // 0..21 single variation, 22 == random blend
	BlendA, BlendB int
	BlendP         float64
	EqCount        int
	Corrected      bool
}

// Reset restores scale=1 and shift=(0,0). Pool re-seeding is the caller's
// responsibility (the reducer), since the view has no pool reference.
func (v *FlameView) Reset() {
	v.Scale = FlameDefaultScale
	v.ShiftX = 0
	v.ShiftY = 0
}

// ZoomIn halves the scale; the flame path's zoom direction is the inverse
// of the Julia view's.
func (v *FlameView) ZoomIn() { v.Scale /= 2 }

// ZoomOut doubles the scale.
func (v *FlameView) ZoomOut() { v.Scale *= 2 }

func (v *FlameView) ShiftUp()    { v.ShiftY += FlamePanStep }
func (v *FlameView) ShiftDown()  { v.ShiftY -= FlamePanStep }
func (v *FlameView) ShiftLeft()  { v.ShiftX += FlamePanStep }
func (v *FlameView) ShiftRight() { v.ShiftX -= FlamePanStep }

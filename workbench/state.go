// Package workbench wires the core packages (color, surface, variation,
// flame, julia, view, input) into a single ebiten.Game: the frame loop of
// spec.md §4.J. It owns the one process-global PRNG handle and the one
// main-view Surface, grounded on console/bus.go's Bus, which likewise owns
// every mutable emulator buffer and implements the same three-method
// ebiten.Game interface.
package workbench

import (
	"math/rand"
	"time"

	"github.com/bdwalton/fractalbench/color"
	"github.com/bdwalton/fractalbench/flame"
	"github.com/bdwalton/fractalbench/julia"
	"github.com/bdwalton/fractalbench/surface"
	"github.com/bdwalton/fractalbench/variation"
	"github.com/bdwalton/fractalbench/view"
)

// MainW, MainH are the logical dimensions of the main 760x760 view, per
// spec.md §6.
const MainW, MainH = 760, 760

// speedStep is the unit INCREASE_SPEED/DECREASE_SPEED adjust the inter-
// frame sleep by, per spec.md §4.I.
const speedStep = 10 * time.Millisecond

// Family selects which fractal family's view and iterator the frame loop
// drives. spec.md's original builds kept these as two separate binaries;
// this workbench unifies them behind a **[ADDED]** toggle (see DESIGN.md).
type Family int

const (
	FamilyJulia Family = iota
	FamilyFlame
)

// Default anchor colours, matching the source's startup palette. The
// default Julia constant is ConstantPool[0] (ConstantIndex's zero value).
var (
	defaultAnchor1 = color.FromHex(0xff0000)
	defaultAnchor2 = color.FromHex(0x00ff00)
	defaultAnchor3 = color.FromHex(0x0000ff)
)

// State is all mutable core state the frame loop owns: the shared surface,
// the per-family view and buffers, the palette, and the single PRNG handle.
// No field is exported for concurrent mutation; everything is touched only
// from Game.Update.
type State struct {
	rng *rand.Rand

	Family Family
	Surf   *surface.Surface

	Anchor1, Anchor2, Anchor3 color.RGB
	Palette                   color.Palette

	JuliaView view.JuliaView
	Field     *julia.Field

	FlameView view.FlameView
	IFS       flame.IFS
	Pool      *flame.Pool

	FrameSleep time.Duration
}

// NewState allocates and initialises every buffer at their startup
// defaults, mirroring the source's one-time allocation-then-reuse-forever
// lifecycle (spec.md §3 Lifecycle).
func NewState(seed int64) *State {
	st := &State{
		rng:        rand.New(rand.NewSource(seed)),
		Surf:       surface.New(MainW, MainH),
		Anchor1:    defaultAnchor1,
		Anchor2:    defaultAnchor2,
		Anchor3:    defaultAnchor3,
		Field:      julia.NewField(MainW, MainH),
		Pool:       flame.NewPool(MainW, MainH),
		FrameSleep: speedStep,
	}
	st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)

	st.JuliaView.Reset(MainW, MainH)
	st.resetJulia()

	flame.RegenerateIFS(st.rng, &st.IFS, 3)
	st.FlameView.Reset()
	st.resetFlame()

	return st
}

// juliaConstant returns the currently selected Julia preset.
func (st *State) juliaConstant() complex128 {
	return julia.ConstantPool[st.JuliaView.ConstantIndex]
}

// resetJulia re-initialises the orbit field at the current view/constant
// and unfreezes it, spec.md's init_julia.
func (st *State) resetJulia() {
	c := st.juliaConstant()
	r := julia.EscapeRadius(c)
	st.Field.Init(st.Surf, st.JuliaView.ShiftX, st.JuliaView.ShiftY, st.JuliaView.Scale, r, st.Palette[0])
	st.JuliaView.Frozen = false
	st.JuliaView.Frame = 0
}

// resetFlame clears the hit counters and re-seeds the pool at the current
// IFS and view, spec.md's seed_pool after any flame-affecting reducer
// action.
func (st *State) resetFlame() {
	st.Surf.ResetCounters()
	st.Surf.UniformFill(0x000000)
	flame.SeedPool(st.Pool, &st.IFS, st.rng)
	st.FlameView.Corrected = false
}

// variationSelection resolves the current FlameView selector into the
// pool.Advance argument, one place to keep the 0..22 indexing in sync with
// variation.Kind (see design note on dispatch).
func (st *State) variationSelection() flame.VariationSelection {
	if st.FlameView.Variation == randomVariationIndex {
		return flame.VariationSelection{
			Random: true,
			BlendA: variation.Kind(st.FlameView.BlendA),
			BlendB: variation.Kind(st.FlameView.BlendB),
			BlendP: st.FlameView.BlendP,
		}
	}
	return flame.VariationSelection{Kind: variation.Kind(st.FlameView.Variation)}
}

// randomVariationIndex is FlameView.Variation's 23rd state (index 22)
// selecting the random blend, per spec.md's trans_flag range 0..22.
const randomVariationIndex = 22

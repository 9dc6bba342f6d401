package workbench

import (
	"github.com/bdwalton/fractalbench/color"
	"github.com/bdwalton/fractalbench/flame"
	"github.com/bdwalton/fractalbench/input"
	"github.com/bdwalton/fractalbench/julia"
)

// Reduce applies a single input event to the state, per spec.md §4.I's
// table. At most one event is applied per frame (Game.Update drains at
// most one); which column of the table fires depends on st.Family.
func (st *State) Reduce(ev input.Event) {
	if v := variationIndex(ev); v >= 0 {
		if st.Family == FamilyFlame {
			st.FlameView.Variation = v
			st.resetFlame()
		}
		return
	}

	switch ev {
	case input.REDRAW:
		if st.Family == FamilyJulia {
			st.resetJulia()
		}

	case input.SHIFT_UP:
		st.shift(func() {
			st.JuliaView.ShiftUp()
		}, func() {
			st.FlameView.ShiftUp()
		})
	case input.SHIFT_DOWN:
		st.shift(func() {
			st.JuliaView.ShiftDown()
		}, func() {
			st.FlameView.ShiftDown()
		})
	case input.SHIFT_LEFT:
		st.shift(func() {
			st.JuliaView.ShiftLeft()
		}, func() {
			st.FlameView.ShiftLeft()
		})
	case input.SHIFT_RIGHT:
		st.shift(func() {
			st.JuliaView.ShiftRight()
		}, func() {
			st.FlameView.ShiftRight()
		})

	case input.ZOOM_IN:
		st.shift(func() {
			st.JuliaView.ZoomIn()
		}, func() {
			st.FlameView.ZoomIn()
		})
	case input.ZOOM_OUT:
		st.shift(func() {
			st.JuliaView.ZoomOut()
		}, func() {
			st.FlameView.ZoomOut()
		})

	case input.RESET_SCALE:
		if st.Family == FamilyJulia {
			st.JuliaView.Reset(MainW, MainH)
			st.resetJulia()
		} else {
			st.FlameView.Reset()
			st.resetFlame()
		}

	case input.FREEZE_UNFREEZE:
		// spec.md leaves the flame binding to the reducer contract
		// (Open Question 4); here it toggles Corrected, the Julia
		// column always toggles Frozen.
		if st.Family == FamilyJulia {
			st.JuliaView.Frozen = !st.JuliaView.Frozen
		} else {
			st.FlameView.Corrected = !st.FlameView.Corrected
		}

	case input.CONSTANT:
		if st.Family == FamilyJulia {
			st.JuliaView.ConstantIndex = (st.JuliaView.ConstantIndex + 1) % len(julia.ConstantPool)
			st.resetJulia()
		}

	case input.COLOUR_1:
		if st.Family == FamilyJulia {
			st.Anchor1 = color.Nudge(st.Anchor1)
			st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)
		}
	case input.COLOUR_2:
		if st.Family == FamilyJulia {
			st.Anchor2 = color.Nudge(st.Anchor2)
			st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)
		}
	case input.COLOUR_3:
		if st.Family == FamilyJulia {
			st.Anchor3 = color.Nudge(st.Anchor3)
			st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)
		}
	case input.RESET_COLOURS:
		if st.Family == FamilyJulia {
			st.Anchor1, st.Anchor2, st.Anchor3 = defaultAnchor1, defaultAnchor2, defaultAnchor3
			st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)
		}

	case input.TOTAL_RESET:
		if st.Family == FamilyJulia {
			st.JuliaView.Reset(MainW, MainH)
			st.JuliaView.ConstantIndex = 0
			st.Anchor1, st.Anchor2, st.Anchor3 = defaultAnchor1, defaultAnchor2, defaultAnchor3
			st.Palette = color.BuildPalette(st.Anchor1, st.Anchor2, st.Anchor3)
			st.resetJulia()
		}

	case input.CORRECT:
		if st.Family == FamilyFlame {
			flame.Correct(st.Surf)
			st.FlameView.Corrected = true
		}
	case input.BRIGHTEN:
		if st.Family == FamilyFlame && st.FlameView.Corrected {
			flame.Brighten(st.Surf)
		}

	case input.INC_AFFINE:
		if st.Family == FamilyFlame && st.IFS.Count < flame.MaxMaps {
			st.IFS.Maps[st.IFS.Count] = flame.DrawOneAffine(st.rng)
			st.IFS.Count++
			st.resetFlame()
		}
	case input.DEC_AFFINE:
		if st.Family == FamilyFlame && st.IFS.Count > 1 {
			st.IFS.Count--
			st.resetFlame()
		}
	case input.GEN_AFFINE:
		if st.Family == FamilyFlame {
			count := 2 + st.rng.Intn(10) // U[2,11]
			flame.RegenerateIFS(st.rng, &st.IFS, count)
			st.resetFlame()
		}

	case input.RANDOM:
		if st.Family == FamilyFlame {
			st.FlameView.BlendA = st.rng.Intn(randomVariationIndex)
			st.FlameView.BlendB = st.rng.Intn(randomVariationIndex)
			st.FlameView.BlendP = st.rng.Float64()
			st.FlameView.Variation = randomVariationIndex
			st.resetFlame()
		}
	}
}

// shift runs juliaFn or flameFn depending on the active family, then
// re-initialises that family's buffers (init_julia or seed_pool), matching
// every SHIFT_*/ZOOM_* row of spec.md's reducer table.
func (st *State) shift(juliaFn, flameFn func()) {
	if st.Family == FamilyJulia {
		juliaFn()
		st.resetJulia()
	} else {
		flameFn()
		st.resetFlame()
	}
}

// variationIndex returns the variation.Kind ordinal for a V_* event, or -1
// if ev is not one of the 22 variation tags.
func variationIndex(ev input.Event) int {
	if ev < input.V_LINEAR || ev > input.V_BUBBLE {
		return -1
	}
	return int(ev - input.V_LINEAR)
}

// AdjustSpeed applies INCREASE_SPEED/DECREASE_SPEED/RESET_SPEED, floored
// at 0, in speedStep (10ms) units per spec.md §4.I.
func (st *State) AdjustSpeed(ev input.Event) {
	switch ev {
	case input.INCREASE_SPEED:
		st.FrameSleep += speedStep
	case input.DECREASE_SPEED:
		st.FrameSleep -= speedStep
		if st.FrameSleep < 0 {
			st.FrameSleep = 0
		}
	case input.RESET_SPEED:
		st.FrameSleep = speedStep
	}
}

// Advance performs one iterate of the active family's engine, unless
// frozen (Julia) or in corrected mode (flame), per spec.md §4.J.
func (st *State) Advance() {
	switch st.Family {
	case FamilyJulia:
		if st.JuliaView.Frozen {
			return
		}
		c := st.juliaConstant()
		r := julia.EscapeRadius(c)
		st.Field.Step(st.Surf, c, r, st.Palette, &st.JuliaView.Frame)
	case FamilyFlame:
		if st.FlameView.Corrected {
			return
		}
		vs := st.variationSelection()
		flame.Advance(st.Pool, st.Surf, &st.IFS, vs, st.FlameView.Scale, st.FlameView.ShiftX, st.FlameView.ShiftY, st.rng)
	}
}

// ToggleFamily switches the active view. **[ADDED]**: the source built
// Julia and flame as separate binaries; this workbench exposes both from
// one process, so switching families re-initialises the side being
// switched into (see DESIGN.md).
func (st *State) ToggleFamily() {
	if st.Family == FamilyJulia {
		st.Family = FamilyFlame
		st.resetFlame()
	} else {
		st.Family = FamilyJulia
		st.resetJulia()
	}
}

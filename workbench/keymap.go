package workbench

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bdwalton/fractalbench/input"
)

// keymap is the default physical-key binding, preserving the 1:1 letters
// from the source's SDLK_* switch (fractals.cpp) where they do not
// collide with the Julia-only additions. Unlike controller.go's held-
// button poll, every binding here is edge-triggered: a key fires its
// event once per press, not once per frame it is held.
var keymap = []struct {
	key ebiten.Key
	ev  input.Event
}{
	{ebiten.KeyW, input.SHIFT_UP},
	{ebiten.KeyS, input.SHIFT_DOWN},
	{ebiten.KeyA, input.SHIFT_LEFT},
	{ebiten.KeyD, input.SHIFT_RIGHT},
	{ebiten.KeyZ, input.ZOOM_IN},
	{ebiten.KeyX, input.ZOOM_OUT},
	{ebiten.KeyQ, input.RESET_SCALE},
	{ebiten.KeyR, input.RANDOM},
	{ebiten.KeyBackspace, input.CORRECT},
	{ebiten.KeyBackslash, input.BRIGHTEN},
	{ebiten.KeyBracketRight, input.INC_AFFINE},
	{ebiten.KeyBracketLeft, input.DEC_AFFINE},
	{ebiten.Key0, input.GEN_AFFINE},
	{ebiten.KeyEqual, input.INCREASE_SPEED},
	{ebiten.KeyMinus, input.DECREASE_SPEED},
	{ebiten.KeyBackquote, input.RESET_SPEED},
	{ebiten.KeySpace, input.FREEZE_UNFREEZE},
	{ebiten.KeyTab, input.REDRAW},

	// Julia-only bindings.
	{ebiten.KeyC, input.CONSTANT},
	{ebiten.Key1, input.COLOUR_1},
	{ebiten.Key2, input.COLOUR_2},
	{ebiten.Key3, input.COLOUR_3},
	{ebiten.Key4, input.RESET_COLOURS},
	{ebiten.Key5, input.TOTAL_RESET},

	// The 14 original variation letters, in the source's order.
	{ebiten.KeyL, input.V_LINEAR},
	{ebiten.KeyU, input.V_SINUSOIDAL},
	{ebiten.KeyP, input.V_SPHERICAL},
	{ebiten.KeyH, input.V_SWIRL},
	{ebiten.KeyO, input.V_HORSESHOE},
	{ebiten.KeyB, input.V_POLAR},
	{ebiten.KeyF, input.V_HANDKERCHIEF},
	{ebiten.KeyM, input.V_HEART},
	{ebiten.KeyCapsLock, input.V_DISC},
	{ebiten.KeyI, input.V_SPIRAL},
	{ebiten.KeyY, input.V_HYPERBOLIC},
	{ebiten.KeyN, input.V_DIAMOND},
	{ebiten.KeyE, input.V_EX},
	{ebiten.KeyJ, input.V_JULIA},

	// [ADDED] keys for the 8 new variations.
	{ebiten.KeyK, input.V_WAVES},
	{ebiten.KeyT, input.V_POPCORN},
	{ebiten.KeyG, input.V_EXPONENTIAL},
	{ebiten.KeyV, input.V_POWER},
	{ebiten.Key6, input.V_RINGS},
	{ebiten.Key7, input.V_FAN},
	{ebiten.Key8, input.V_FISHEYE},
	{ebiten.Key9, input.V_BUBBLE},
}

// pollEvent returns the first just-pressed key's mapped event, or false if
// none was pressed this frame. At most one event is drained per frame,
// per spec.md §5 (newer events in the same frame overwrite earlier ones;
// here the keymap's declaration order is the tie-break).
func pollEvent() (input.Event, bool) {
	for _, binding := range keymap {
		if inpututil.IsKeyJustPressed(binding.key) {
			return binding.ev, true
		}
	}
	return 0, false
}

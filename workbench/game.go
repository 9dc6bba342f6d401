package workbench

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	corecolor "github.com/bdwalton/fractalbench/color"
)

// errQuit is returned from Update on QUIT, ebiten's signal to stop RunGame.
var errQuit = errors.New("workbench: quit")

// Game implements ebiten.Game, grounded on console/bus.go's Bus: it is the
// sole owner of the core State and the frame loop's Update/Draw/Layout
// trio, except here Update does the real per-frame work (drain one event,
// reduce, advance one iterate, sleep) because spec.md §5 makes the core
// single-threaded and cooperative, not driven by Bus's separate goroutine.
type Game struct {
	State *State

	lastFrame time.Time
}

// NewGame constructs a Game with a freshly seeded State.
func NewGame(seed int64) *Game {
	return &Game{State: NewState(seed)}
}

// Update drains at most one input event, applies the reducer, advances the
// active family's engine once unless frozen/corrected, and enforces the
// inter-frame sleep set by the speed controls.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	// F1 switches the active family. The source built Julia and flame
	// as separate binaries; this workbench exposes both (see
	// State.ToggleFamily).
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.State.ToggleFamily()
	}

	if ev, ok := pollEvent(); ok {
		g.State.AdjustSpeed(ev)
		g.State.Reduce(ev)
	}

	g.State.Advance()

	if g.State.FrameSleep > 0 {
		if elapsed := time.Since(g.lastFrame); elapsed < g.State.FrameSleep {
			time.Sleep(g.State.FrameSleep - elapsed)
		}
	}
	g.lastFrame = time.Now()

	return nil
}

// Draw blits the core Surface into the ebiten presentation image,
// mirroring Bus.Draw's per-pixel Set loop over the PPU's pixel buffer. The
// three auxiliary panels (instruction/status/colour) are presentation-
// layer concerns the core never touches, per spec.md §6, so Draw leaves
// them to whatever layout embeds this Game.
func (g *Game) Draw(screen *ebiten.Image) {
	surf := g.State.Surf
	for y := 0; y < surf.H; y++ {
		for x := 0; x < surf.W; x++ {
			px, _ := surf.At(x, y)
			screen.Set(x, y, toNRGBA(px))
		}
	}
}

// Layout returns the main view's fixed logical size, so ebiten scales the
// window instead of the core, mirroring Bus.Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return MainW, MainH
}

func toNRGBA(c corecolor.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Command fractalbench runs the interactive fractal-rendering workbench:
// escape-time Julia sets and chaos-game flame fractals in one window,
// switched with F1.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/fractalbench/workbench"
)

var (
	seed        = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed; defaults to the current time.")
	speed       = flag.Duration("speed", 10*time.Millisecond, "Initial inter-frame sleep.")
	windowScale = flag.Int("window-scale", 1, "Integer window scale factor applied to the 760x760 main view.")
)

func main() {
	flag.Parse()

	game := workbench.NewGame(*seed)
	game.State.FrameSleep = *speed

	ebiten.SetWindowSize(workbench.MainW * *windowScale, workbench.MainH * *windowScale)
	ebiten.SetWindowTitle("fractalbench")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

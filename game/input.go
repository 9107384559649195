package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/systems"
)

// handleInput processes pointer, resize and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()
	g.handlePointer()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.field.Init(g.field.Params().Count)
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.field.ResetToOrigin()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		p := g.field.Params()
		if p.LinkMode == config.LinkModeGrid {
			p.LinkMode = config.LinkModePairwise
		} else {
			p.LinkMode = config.LinkModeGrid
		}
		g.field.SetParams(p)
	}
}

// handlePointer tracks the cursor. The pointer stays absent until the cursor
// first enters the window, then keeps its last position.
func (g *Game) handlePointer() {
	if !rl.IsCursorOnScreen() {
		return
	}
	pos := rl.GetMousePosition()
	g.pointer = systems.PointerAt(pos.X, pos.Y)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	vp := systems.Viewport{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
	if vp == g.viewport {
		return
	}
	g.viewport = vp
	g.field.SetViewport(vp)
	if g.cfg.Field.ReinitOnResize {
		g.field.Init(g.field.Params().Count)
	}
}

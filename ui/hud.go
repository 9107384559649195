// Package ui draws window overlays.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// controlsLegend lists the window key bindings.
const controlsLegend = "[Space] pause  [R] reinit  [O] origin  [L] link mode  [H] hud  [F11] fullscreen"

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title      string
	Particles  int
	Influenced int
	Links      int
	Frame      int64
	FPS        int32
	Paused     bool
	LinkMode   string
}

// HUD renders the heads-up display.
type HUD struct {
	textColor  rl.Color
	mutedColor rl.Color
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		textColor:  rl.RayWhite,
		mutedColor: rl.Fade(rl.LightGray, 0.7),
	}
}

// Draw renders the HUD in the top-left corner and the legend at the bottom.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, h.textColor)

	rl.DrawText(
		fmt.Sprintf("Particles: %d | Pulled: %d | Links: %d (%s)", data.Particles, data.Influenced, data.Links, data.LinkMode),
		10, 35, 16, h.mutedColor,
	)
	rl.DrawText(
		fmt.Sprintf("Frame: %d | FPS: %d", data.Frame, data.FPS),
		10, 55, 16, h.mutedColor,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}

	rl.DrawText(controlsLegend, 10, int32(rl.GetScreenHeight())-25, 14, h.mutedColor)
}

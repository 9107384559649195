// Field preview tool - live particle field with parameter sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/systems"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 300
	previewWidth = windowWidth - panelWidth
)

// slider describes one tunable parameter.
type slider struct {
	label    string
	min, max float32
	value    *float32
	format   string
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cfg := config.Defaults()
	params := systems.ParamsFromConfig(cfg)
	vp := systems.Viewport{Width: previewWidth, Height: windowHeight}
	field := systems.NewField(params, vp, rand.New(rand.NewSource(time.Now().UnixNano())))
	surface := renderer.NewWindowSurface(cfg.Derived.Background)

	count := float32(params.Count)
	sliders := []slider{
		{"Particles", 0, 400, &count, "%.0f"},
		{"Attraction radius", 0, 400, &params.Motion.AttractionRadius, "%.0f"},
		{"Pull divisor", 5, 200, &params.Motion.PullDivisor, "%.0f"},
		{"Connection radius", 0, 300, &params.ConnectionRadius, "%.0f"},
		{"Link width", 0.25, 4, &params.LinkWidth, "%.2f"},
	}

	var pointer systems.Pointer
	var last systems.FrameResult

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		if mouse.X < previewWidth && rl.IsCursorOnScreen() {
			pointer = systems.PointerAt(mouse.X, mouse.Y)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		last = field.Frame(pointer, vp, surface)

		// Control panel
		panelX := float32(previewWidth + 15)
		panelY := float32(10)
		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed := false
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 90, Height: 20},
				"", "",
				*s.value, s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+panelWidth-80), int32(panelY+2), 16, rl.DarkGray)
			if v != *s.value {
				*s.value = v
				changed = true
			}
			panelY += 35
		}
		if changed {
			params.Count = int(count)
			field.SetParams(params)
		}

		modeText := "Links: grid"
		if params.LinkMode == config.LinkModePairwise {
			modeText = "Links: pairwise"
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 130, Height: 30}, modeText) {
			if params.LinkMode == config.LinkModePairwise {
				params.LinkMode = config.LinkModeGrid
			} else {
				params.LinkMode = config.LinkModePairwise
			}
			field.SetParams(params)
		}
		if gui.Button(rl.Rectangle{X: panelX + 140, Y: panelY, Width: 130, Height: 30}, "Reinit") {
			field.Init(params.Count)
		}
		panelY += 45

		rl.DrawText(fmt.Sprintf("Pulled: %d  Links: %d", last.Influenced, last.Links), int32(panelX), int32(panelY), 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), int32(panelX), int32(panelY+20), 16, rl.DarkGray)

		rl.EndDrawing()
	}
}

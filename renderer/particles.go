// Package renderer provides drawing surfaces for the particle field.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/systems"
)

// WindowSurface draws into the current raylib frame.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type WindowSurface struct {
	background color.RGBA
}

// NewWindowSurface creates a window surface that clears to background.
func NewWindowSurface(background color.RGBA) *WindowSurface {
	return &WindowSurface{background: background}
}

// SetBackground changes the clear color.
func (s *WindowSurface) SetBackground(c color.RGBA) {
	s.background = c
}

// Clear fills the viewport with the background color.
func (s *WindowSurface) Clear(vp systems.Viewport) {
	rl.DrawRectangleV(rl.Vector2{}, rl.Vector2{X: vp.Width, Y: vp.Height}, s.background)
}

// FillCircle draws a filled particle.
func (s *WindowSurface) FillCircle(x, y, radius float32, c color.RGBA) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, c)
}

// Line draws a link segment.
func (s *WindowSurface) Line(x1, y1, x2, y2 float32, c color.RGBA, width float32) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, c)
}

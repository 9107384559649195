package renderer

import (
	"image/color"

	"github.com/pthm-cable/driftfield/systems"
)

// CommandKind identifies a recorded draw call.
type CommandKind uint8

const (
	CmdClear CommandKind = iota
	CmdCircle
	CmdLine
)

// Command is one recorded draw call. Unused fields are zero.
type Command struct {
	Kind   CommandKind
	X1, Y1 float32 // circle center or line start
	X2, Y2 float32 // line end
	Radius float32
	Width  float32
	Color  color.RGBA
}

// Recorder is a surface that records draw calls instead of drawing.
// Clear drops everything recorded so far, so the command list always
// describes the content of the current frame.
type Recorder struct {
	Commands []Command
	Viewport systems.Viewport
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Commands: make([]Command, 0, 256)}
}

func (r *Recorder) Clear(vp systems.Viewport) {
	r.Commands = append(r.Commands[:0], Command{Kind: CmdClear, X2: vp.Width, Y2: vp.Height})
	r.Viewport = vp
}

func (r *Recorder) FillCircle(x, y, radius float32, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdCircle, X1: x, Y1: y, Radius: radius, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2 float32, c color.RGBA, width float32) {
	r.Commands = append(r.Commands, Command{Kind: CmdLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Count returns how many commands of kind were recorded.
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands of kind.
func (r *Recorder) Filter(kind CommandKind) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

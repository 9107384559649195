package renderer

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/driftfield/systems"
)

var accent = color.RGBA{R: 100, G: 255, B: 218, A: 255}

func TestRecorderClearDropsFrame(t *testing.T) {
	r := NewRecorder()
	vp := systems.Viewport{Width: 640, Height: 480}

	r.Clear(vp)
	r.FillCircle(10, 10, 2, accent)
	r.Line(0, 0, 5, 5, accent, 0.5)
	if len(r.Commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(r.Commands))
	}

	r.Clear(vp)
	if len(r.Commands) != 1 || r.Commands[0].Kind != CmdClear {
		t.Errorf("expected only a clear command after Clear, got %+v", r.Commands)
	}
}

func TestRecorderClearIdempotent(t *testing.T) {
	r := NewRecorder()
	vp := systems.Viewport{Width: 800, Height: 600}

	r.Clear(vp)
	first := append([]Command(nil), r.Commands...)
	r.Clear(vp)

	if !reflect.DeepEqual(first, r.Commands) {
		t.Errorf("expected identical state after second clear, got %+v then %+v", first, r.Commands)
	}
	if r.Viewport != vp {
		t.Errorf("expected viewport %+v, got %+v", vp, r.Viewport)
	}
}

func TestRecorderFilter(t *testing.T) {
	r := NewRecorder()
	r.Clear(systems.Viewport{Width: 100, Height: 100})
	r.FillCircle(1, 2, 1.5, accent)
	r.FillCircle(3, 4, 2.5, accent)
	r.Line(1, 2, 3, 4, accent, 0.5)

	circles := r.Filter(CmdCircle)
	if len(circles) != 2 || r.Count(CmdCircle) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(circles))
	}
	if circles[1].X1 != 3 || circles[1].Y1 != 4 || circles[1].Radius != 2.5 {
		t.Errorf("unexpected circle %+v", circles[1])
	}
	lines := r.Filter(CmdLine)
	if len(lines) != 1 || lines[0].X2 != 3 || lines[0].Y2 != 4 || lines[0].Width != 0.5 {
		t.Errorf("unexpected lines %+v", lines)
	}
}

// mockScreen records SetContent calls into a cell grid.
type mockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{width: w, height: h, cells: map[[2]int]rune{}, styles: map[[2]int]tcell.Style{}}
}

func (m *mockScreen) Size() (int, int) { return m.width, m.height }

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
	m.styles[[2]int{x, y}] = style
}

func TestTerminalViewport(t *testing.T) {
	screen := newMockScreen(80, 24)
	s := NewTerminalSurface(screen, 8, 16, color.RGBA{A: 255})

	vp := s.Viewport()
	if vp.Width != 640 || vp.Height != 384 {
		t.Errorf("expected viewport 640x384, got %vx%v", vp.Width, vp.Height)
	}

	x, y := s.ToViewport(2, 3)
	if x != 20 || y != 56 {
		t.Errorf("expected cell center (20, 56), got (%v, %v)", x, y)
	}
}

func TestTerminalClearBlanksScreen(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, color.RGBA{A: 255})
	s.Clear(s.Viewport())

	if len(screen.cells) != 50 {
		t.Fatalf("expected 50 cleared cells, got %d", len(screen.cells))
	}
	for pos, r := range screen.cells {
		if r != ' ' {
			t.Errorf("expected blank at %v, got %q", pos, r)
		}
	}
}

func TestTerminalParticleRunes(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, color.RGBA{A: 255})
	s.Clear(s.Viewport())

	s.FillCircle(4, 8, 1.2, accent)  // cell (0, 0)
	s.FillCircle(20, 40, 2.5, accent) // cell (2, 2)
	s.FillCircle(-5, 8, 2, accent)    // off screen
	s.FillCircle(500, 8, 2, accent)   // off screen

	if got := screen.cells[[2]int{0, 0}]; got != runeSmall {
		t.Errorf("expected small rune at (0,0), got %q", got)
	}
	if got := screen.cells[[2]int{2, 2}]; got != runeLarge {
		t.Errorf("expected large rune at (2,2), got %q", got)
	}
}

func TestTerminalLineSkipsParticles(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, color.RGBA{A: 255})
	s.Clear(s.Viewport())

	// Horizontal link along row 1 from cell 1 to cell 6
	s.FillCircle(12, 24, 1.5, accent)
	s.FillCircle(52, 24, 1.5, accent)
	s.Line(12, 24, 52, 24, color.RGBA{R: 100, G: 255, B: 218, A: 51}, 0.5)

	if screen.cells[[2]int{1, 1}] != runeSmall || screen.cells[[2]int{6, 1}] != runeSmall {
		t.Errorf("expected link endpoints to keep particle runes")
	}
	for col := 2; col <= 5; col++ {
		if got := screen.cells[[2]int{col, 1}]; got != runeLink {
			t.Errorf("expected link rune at (%d,1), got %q", col, got)
		}
	}
	if got := screen.cells[[2]int{3, 2}]; got != ' ' {
		t.Errorf("expected row 2 untouched, got %q", got)
	}
}

func TestTerminalLineClipsOffscreen(t *testing.T) {
	screen := newMockScreen(4, 4)
	s := NewTerminalSurface(screen, 8, 16, color.RGBA{A: 255})
	s.Clear(s.Viewport())

	// Starts left of the screen and ends in cell (1, 0)
	s.Line(-20, 8, 12, 8, accent, 0.5)

	if got := screen.cells[[2]int{0, 0}]; got != runeLink {
		t.Errorf("expected link rune at (0,0), got %q", got)
	}
	if got := screen.cells[[2]int{1, 0}]; got != runeLink {
		t.Errorf("expected link rune at (1,0), got %q", got)
	}
	if len(screen.cells) != 16 {
		t.Errorf("expected no writes outside the screen, got %d cells", len(screen.cells))
	}
}

func TestTerminalLinkColorBlended(t *testing.T) {
	bg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	s := NewTerminalSurface(newMockScreen(4, 4), 8, 16, bg)

	opaque := s.style(accent)
	faded := s.style(color.RGBA{R: 100, G: 255, B: 218, A: 51})

	fgOpaque, _, _ := opaque.Decompose()
	fgFaded, _, _ := faded.Decompose()
	if fgOpaque == fgFaded {
		t.Error("expected translucent link color to differ from opaque color")
	}
	r, g, b := fgFaded.RGB()
	if r >= 100 || g >= 255 || b >= 218 {
		t.Errorf("expected blended color darker than accent, got (%d, %d, %d)", r, g, b)
	}
}

package renderer

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/driftfield/systems"
)

// Runes used on the terminal surface.
const (
	runeSmall = '•'
	runeLarge = '●'
	runeLink  = '·'
)

// largeRadius is the particle radius from which the large rune is used.
const largeRadius = 2.0

// TerminalSurface draws onto a tcell screen. Viewport units map to cells by a
// fixed cell size, so the field keeps its proportions in a character grid.
type TerminalSurface struct {
	screen       tcell.Screen
	cellW, cellH float32
	background   color.RGBA

	// Cells holding a particle this frame; links never overwrite them
	cols, rows int
	occupied   []bool
}

// NewTerminalSurface creates a surface with cellW x cellH viewport units per cell.
func NewTerminalSurface(screen tcell.Screen, cellW, cellH float32, background color.RGBA) *TerminalSurface {
	return &TerminalSurface{screen: screen, cellW: cellW, cellH: cellH, background: background}
}

// Viewport returns the extent covered by the screen.
func (t *TerminalSurface) Viewport() systems.Viewport {
	cols, rows := t.screen.Size()
	return systems.Viewport{Width: float32(cols) * t.cellW, Height: float32(rows) * t.cellH}
}

// ToViewport converts a cell to the viewport position of its center.
func (t *TerminalSurface) ToViewport(col, row int) (x, y float32) {
	return (float32(col) + 0.5) * t.cellW, (float32(row) + 0.5) * t.cellH
}

// cell converts a viewport position to a cell; ok is false off screen.
func (t *TerminalSurface) cell(x, y float32) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = int(x/t.cellW), int(y/t.cellH)
	return col, row, col < t.cols && row < t.rows
}

// Clear blanks every cell inside vp.
func (t *TerminalSurface) Clear(vp systems.Viewport) {
	t.cols, t.rows = t.screen.Size()
	if n := t.cols * t.rows; cap(t.occupied) < n {
		t.occupied = make([]bool, n)
	} else {
		t.occupied = t.occupied[:n]
		clear(t.occupied)
	}

	style := tcell.StyleDefault.Background(toTcell(t.background))
	maxCol, maxRow, _ := t.cell(vp.Width, vp.Height)
	maxCol = min(maxCol+1, t.cols)
	maxRow = min(maxRow+1, t.rows)
	for row := 0; row < maxRow; row++ {
		for col := 0; col < maxCol; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// floorCell converts a position to a possibly off-screen cell.
func (t *TerminalSurface) floorCell(x, y float32) (col, row int) {
	return int(math.Floor(float64(x / t.cellW))), int(math.Floor(float64(y / t.cellH)))
}

// FillCircle draws a particle as a single rune.
func (t *TerminalSurface) FillCircle(x, y, radius float32, c color.RGBA) {
	col, row, ok := t.cell(x, y)
	if !ok {
		return
	}
	r := runeSmall
	if radius >= largeRadius {
		r = runeLarge
	}
	t.occupied[row*t.cols+col] = true
	t.screen.SetContent(col, row, r, nil, t.style(c))
}

// Line rasterizes a link with Bresenham's algorithm. The line color is
// blended over the background by its alpha since cells cannot be translucent.
func (t *TerminalSurface) Line(x1, y1, x2, y2 float32, c color.RGBA, width float32) {
	c0, r0 := t.floorCell(x1, y1)
	c1, r1 := t.floorCell(x2, y2)
	style := t.style(c)

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		if c0 >= 0 && r0 >= 0 && c0 < t.cols && r0 < t.rows && !t.occupied[r0*t.cols+c0] {
			t.screen.SetContent(c0, r0, runeLink, nil, style)
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// style returns the foreground style for c blended over the background.
func (t *TerminalSurface) style(c color.RGBA) tcell.Style {
	fg := c
	if c.A < 255 {
		bg := colorful.Color{R: float64(t.background.R) / 255, G: float64(t.background.G) / 255, B: float64(t.background.B) / 255}
		top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		r, g, b := bg.BlendRgb(top, float64(c.A)/255).Clamped().RGB255()
		fg = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(t.background))
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

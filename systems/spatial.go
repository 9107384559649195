// Package systems simulates the particle field.
package systems

import "github.com/pthm-cable/driftfield/components"

// maxGridCells bounds the grid allocation for tiny cell sizes.
const maxGridCells = 1 << 16

// SpatialGrid buckets particle indices into square cells covering the viewport.
// Positions outside the viewport are clamped into the edge cells, which keeps
// any two points closer than one cell in adjacent cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int32
}

// NewSpatialGrid creates a spatial grid covering the given extent.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	g := &SpatialGrid{}
	g.Reset(width, height, cellSize)
	return g
}

// Reset reshapes the grid for a new extent or cell size. Cell storage is
// reused when the shape is unchanged.
func (g *SpatialGrid) Reset(width, height, cellSize float32) {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	for cols*rows > maxGridCells {
		cellSize *= 2
		cols = int(width/cellSize) + 1
		rows = int(height/cellSize) + 1
	}

	if cols == g.cols && rows == g.rows && cellSize == g.cellSize {
		g.Clear()
		return
	}

	g.cellSize = cellSize
	g.cols = cols
	g.rows = rows
	g.cells = make([][]int32, cols*rows)
	for i := range g.cells {
		g.cells[i] = make([]int32, 0, 4)
	}
}

// Clear removes all indices from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds particle index i at the given position.
func (g *SpatialGrid) Insert(i int, x, y float32) {
	col, row := g.cellCoords(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], int32(i))
}

// forward lists the neighbor offsets visited from each cell so that every
// adjacent cell pair is checked exactly once.
var forward = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// LinksInto appends all pairs of pts closer than radius to dst.
// pts must be the positions inserted into the grid, indexed the same way.
// The grid cell size must be at least radius.
func (g *SpatialGrid) LinksInto(dst []Link, pts []components.Position, radius float32) []Link {
	radiusSq := radius * radius

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if len(cell) == 0 {
				continue
			}

			// Pairs within the cell
			for i := 0; i < len(cell); i++ {
				for j := i + 1; j < len(cell); j++ {
					dst = appendLink(dst, pts, int(cell[i]), int(cell[j]), radiusSq)
				}
			}

			// Pairs across forward neighbors
			for _, off := range forward {
				nc, nr := col+off[0], row+off[1]
				if nc < 0 || nc >= g.cols || nr >= g.rows {
					continue
				}
				other := g.cells[nr*g.cols+nc]
				for _, a := range cell {
					for _, b := range other {
						dst = appendLink(dst, pts, int(a), int(b), radiusSq)
					}
				}
			}
		}
	}
	return dst
}

// cellCoords returns the clamped cell for a position.
func (g *SpatialGrid) cellCoords(x, y float32) (col, row int) {
	// Compare in float space first; huge offsets overflow int conversion.
	fc := x / g.cellSize
	fr := y / g.cellSize

	switch {
	case fc < 0:
		col = 0
	case fc >= float32(g.cols):
		col = g.cols - 1
	default:
		col = int(fc)
	}
	switch {
	case fr < 0:
		row = 0
	case fr >= float32(g.rows):
		row = g.rows - 1
	default:
		row = int(fr)
	}
	return col, row
}

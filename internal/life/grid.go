package life

import (
	"fmt"
	"slices"

	"mad-life/internal/core"
)

// Grid stores a fixed-size board of alive/dead cells in row-major order.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

func mustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the backing slice in row-major order. Callers must treat it
// as read-only.
func (g *Grid) Cells() []bool { return g.cells }

func (g *Grid) index(row, col int) int { return row*g.w + col }

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap
// toroidally.
func (g *Grid) Alive(row, col int) bool {
	row, col = g.wrap(row, col)
	return g.cells[g.index(row, col)]
}

// Set updates the cell at (row, col). Coordinates wrap toroidally.
func (g *Grid) Set(row, col int, alive bool) {
	row, col = g.wrap(row, col)
	g.cells[g.index(row, col)] = alive
}

// wrap applies toroidal wrapping, modulo the full dimension on both sides.
func (g *Grid) wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.w == other.w && g.h == other.h && slices.Equal(g.cells, other.cells)
}

func (g *Grid) sameShape(w, h int) bool { return g.w == w && g.h == h }

// CellState is Alive under the name renderers expect.
func (g *Grid) CellState(row, col int) bool { return g.Alive(row, col) }

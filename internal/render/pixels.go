package render

import (
	"image/color"
	"strings"

	"mad-life/internal/core"
)

// Board is the read-only view a renderer needs.
type Board interface {
	Size() core.Size
	CellState(row, col int) bool
}

// Palette selects the colors used by RasterizeBoard.
type Palette struct {
	Background color.Color
	Lines      color.Color
	Cells      color.Color
}

// DefaultPalette draws black discs and grid lines on white.
func DefaultPalette() Palette {
	return Palette{Background: color.White, Lines: color.Black, Cells: color.Black}
}

// Layout maps grid cells to pixels.
type Layout struct {
	CellSize int
}

// Pixels returns the raster dimensions for a grid of the given size.
func (l Layout) Pixels(s core.Size) (int, int) {
	cs := l.cellSize()
	return s.W * cs, s.H * cs
}

func (l Layout) cellSize() int {
	if l.CellSize <= 0 {
		return 1
	}
	return l.CellSize
}

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// RasterizeBoard paints board into buf as RGBA pixels: a background fill,
// one grid line at the top-left edge of every cell, and a filled disc in
// each live cell. buf must hold 4*width*height bytes for the layout's pixel
// size; it returns false when it does not.
func RasterizeBoard(buf []byte, board Board, layout Layout, pal Palette) bool {
	size := board.Size()
	pw, ph := layout.Pixels(size)
	if len(buf) != 4*pw*ph {
		return false
	}
	cs := layout.cellSize()
	bg, line, cell := toRGBA(pal.Background), toRGBA(pal.Lines), toRGBA(pal.Cells)

	put := func(x, y int, c rgba) {
		base := 4 * (y*pw + x)
		copy(buf[base:base+4], c[:])
	}

	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if x%cs == 0 || y%cs == 0 {
				put(x, y, line)
				continue
			}
			put(x, y, bg)
		}
	}

	r := cs/2 - 1
	if r < 0 {
		r = 0
	}
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if !board.CellState(row, col) {
				continue
			}
			cx, cy := col*cs+cs/2, row*cs+cs/2
			for y := cy - r; y <= cy+r; y++ {
				for x := cx - r; x <= cx+r; x++ {
					dx, dy := x-cx, y-cy
					if dx*dx+dy*dy <= r*r {
						put(x, y, cell)
					}
				}
			}
		}
	}
	return true
}

// FormatASCII renders the board one text line per row, 'O' for live cells
// and '.' for dead ones.
func FormatASCII(board Board) string {
	size := board.Size()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if board.CellState(row, col) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

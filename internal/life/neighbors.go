package life

import "fmt"

// NeighborCounts holds, for one generation, the number of alive toroidal
// neighbors of every cell. Values are always in [0, 8].
type NeighborCounts struct {
	w, h   int
	counts []uint8
	stamp  countStamp
}

// countStamp records which engine generation a NeighborCounts describes.
// Counts built outside an engine carry the zero stamp.
type countStamp struct {
	engine *Engine
	epoch  uint64
	gen    uint64
}

func newNeighborCounts(w, h int) *NeighborCounts {
	return &NeighborCounts{w: w, h: h, counts: make([]uint8, w*h)}
}

// Width returns the number of columns.
func (n *NeighborCounts) Width() int { return n.w }

// Height returns the number of rows.
func (n *NeighborCounts) Height() int { return n.h }

// At returns the alive-neighbor count of (row, col).
func (n *NeighborCounts) At(row, col int) uint8 { return n.counts[row*n.w+col] }

// CountNeighbors computes a fresh NeighborCounts for g. It only reads g.
func CountNeighbors(g *Grid) *NeighborCounts {
	n := newNeighborCounts(g.w, g.h)
	countInto(g, n)
	return n
}

// CountNeighborsInto recomputes every entry of dst from g.
func CountNeighborsInto(g *Grid, dst *NeighborCounts) error {
	if dst == nil || !g.sameShape(dst.w, dst.h) {
		return shapeMismatch(g, dst)
	}
	countInto(g, dst)
	return nil
}

func countInto(g *Grid, dst *NeighborCounts) {
	w, h := g.w, g.h
	for row := 0; row < h; row++ {
		up := (row - 1 + h) % h
		down := (row + 1) % h
		for col := 0; col < w; col++ {
			left := (col - 1 + w) % w
			right := (col + 1) % w

			var n uint8
			for _, idx := range [8]int{
				up*w + left, up*w + col, up*w + right,
				row*w + left, row*w + right,
				down*w + left, down*w + col, down*w + right,
			} {
				if g.cells[idx] {
					n++
				}
			}
			dst.counts[row*w+col] = n
		}
	}
}

func shapeMismatch(g *Grid, n *NeighborCounts) error {
	if n == nil {
		return fmt.Errorf("%w: nil neighbor counts for %dx%d grid", ErrImplementation, g.w, g.h)
	}
	return fmt.Errorf("%w: neighbor counts %dx%d do not match grid %dx%d",
		ErrImplementation, n.w, n.h, g.w, g.h)
}

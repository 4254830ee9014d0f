package life

// NextState applies B3/S23: a live cell survives with 2 or 3 neighbors, a
// dead cell is born with exactly 3.
func NextState(alive bool, neighbors uint8) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// AdvanceGeneration returns the generation that follows g, deciding every
// cell from counts alone. g is not modified.
func AdvanceGeneration(g *Grid, counts *NeighborCounts) (*Grid, error) {
	next := mustGrid(g.w, g.h)
	if err := advanceInto(g, counts, next); err != nil {
		return nil, err
	}
	return next, nil
}

func advanceInto(cur *Grid, counts *NeighborCounts, dst *Grid) error {
	if counts == nil || !cur.sameShape(counts.w, counts.h) {
		return shapeMismatch(cur, counts)
	}
	for i, alive := range cur.cells {
		dst.cells[i] = NextState(alive, counts.counts[i])
	}
	return nil
}

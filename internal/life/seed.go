package life

import (
	"fmt"
	"math"
)

// Source yields uniform random values in [0, 1). *rand.Rand from
// math/rand/v2 and *core.RNG both satisfy it.
type Source interface {
	Float64() float64
}

// Seed builds a width x height grid where each cell is independently alive
// when a fresh draw from src is strictly less than aliveProbability. Draws are
// consumed in row-major order, exactly one per cell.
func Seed(width, height int, aliveProbability float64, src Source) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if err := validateProbability(aliveProbability); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrInvalidSource
	}
	fill(g, aliveProbability, src)
	return g, nil
}

func fill(g *Grid, p float64, src Source) {
	for i := range g.cells {
		g.cells[i] = src.Float64() < p
	}
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return nil
}

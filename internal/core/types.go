package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a presentation shell drives. Shells call Step on
// their own timer and only read state between completed steps.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	CellState(row, col int) bool
	GenerationNumber() uint64
}

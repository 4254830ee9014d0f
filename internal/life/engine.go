package life

import (
	"fmt"

	"mad-life/internal/core"
)

// Engine owns a Life grid and advances it one generation per Tick. It is not
// safe for concurrent use; shells read state only between ticks.
type Engine struct {
	cfg    Config
	cur    *Grid
	nxt    *Grid
	counts *NeighborCounts
	gen    uint64
	// epoch changes whenever the board is replaced outside of a tick, so
	// counts taken before a Reset never match a later generation number.
	epoch uint64
	// pattern is the board Reset restores, when one was loaded.
	pattern *Pattern
}

// New validates cfg and seeds a grid from a deterministic RNG keyed on
// cfg.Seed.
func New(cfg Config) (*Engine, error) {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource validates cfg and seeds the grid from src.
func NewWithSource(cfg Config, src Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := Seed(cfg.Width, cfg.Height, cfg.AliveProbability, src)
	if err != nil {
		return nil, err
	}
	return FromGrid(cfg, g), nil
}

// FromGrid wraps an existing grid. The grid's dimensions override cfg's. The
// engine takes ownership of g.
func FromGrid(cfg Config, g *Grid) *Engine {
	cfg.Width, cfg.Height = g.w, g.h
	return &Engine{
		cfg:    cfg,
		cur:    g,
		nxt:    mustGrid(g.w, g.h),
		counts: newNeighborCounts(g.w, g.h),
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// CellState reports whether (row, col) is alive in the last completed generation.
func (e *Engine) CellState(row, col int) bool { return e.cur.Alive(row, col) }

// GenerationNumber returns how many generations have been advanced since the
// last seeding.
func (e *Engine) GenerationNumber() uint64 { return e.gen }

// Population counts the alive cells of the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Grid returns a copy of the current generation.
func (e *Engine) Grid() *Grid { return e.cur.Clone() }

// Cells exposes the current generation in row-major order. The slice is
// replaced on every tick and must not be written.
func (e *Engine) Cells() []bool { return e.cur.cells }

// CountNeighbors recomputes the engine's neighbor counts for the current
// generation and returns them. The buffer is reused by the next call.
func (e *Engine) CountNeighbors() *NeighborCounts {
	countInto(e.cur, e.counts)
	e.counts.stamp = e.stamp()
	return e.counts
}

func (e *Engine) stamp() countStamp {
	return countStamp{engine: e, epoch: e.epoch, gen: e.gen}
}

// AdvanceGeneration applies the rule using counts, which must come from
// CountNeighbors on this engine for the current generation, and increments
// the generation counter.
func (e *Engine) AdvanceGeneration(counts *NeighborCounts) error {
	if counts == nil || !e.cur.sameShape(counts.w, counts.h) {
		return shapeMismatch(e.cur, counts)
	}
	if counts.stamp != e.stamp() {
		return fmt.Errorf("%w: neighbor counts are not from generation %d of this engine",
			ErrImplementation, e.gen)
	}
	if err := advanceInto(e.cur, counts, e.nxt); err != nil {
		return err
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
	return nil
}

// Tick counts neighbors and advances one generation.
func (e *Engine) Tick() {
	if err := e.AdvanceGeneration(e.CountNeighbors()); err != nil {
		panic(err)
	}
}

// Step is an alias for Tick so the engine satisfies core.Sim.
func (e *Engine) Step() { e.Tick() }

// Reset reseeds the grid with the configured density from seed and zeroes
// the generation counter. An engine started from a pattern restores the
// pattern instead; seed is still recorded. Dimensions are unchanged.
func (e *Engine) Reset(seed int64) {
	e.cfg.Seed = seed
	if e.pattern != nil {
		e.Load(*e.pattern)
		return
	}
	fill(e.cur, e.cfg.AliveProbability, core.NewRNG(seed))
	e.gen = 0
	e.epoch++
}

// Load replaces the board with p centred on an otherwise empty grid and
// zeroes the generation counter. Later Resets restore p.
func (e *Engine) Load(p Pattern) {
	e.pattern = &p
	e.cur.Clear()
	rows, cols := p.Bounds()
	e.cur.Stamp(p, (e.cur.h-rows)/2, (e.cur.w-cols)/2)
	e.gen = 0
	e.epoch++
}

var _ core.Sim = (*Engine)(nil)

package life

// MaxDetectedPeriod bounds how many past generations Census compares against.
const MaxDetectedPeriod = 15

// Outcome summarizes a seeded run.
type Outcome struct {
	Seed        int64
	Generations uint64
	Population  int
	// Period is 1 for a still life, n for an oscillator of period n, and 0 when
	// no repeat within MaxDetectedPeriod generations was found.
	Period int
	// SettledAt is the first generation of the repeating cycle, valid when
	// Period > 0.
	SettledAt uint64
}

// Extinct reports whether the run ended with no live cells.
func (o Outcome) Extinct() bool { return o.Population == 0 }

// Census builds an engine from cfg and runs Engine.Census on it.
func Census(cfg Config, maxTicks int) (Outcome, error) {
	e, err := New(cfg)
	if err != nil {
		return Outcome{}, err
	}
	return e.Census(maxTicks), nil
}

// Census ticks the engine up to maxTicks times from its current state,
// stopping early once the board repeats an earlier generation.
func (e *Engine) Census(maxTicks int) Outcome {
	out := Outcome{Seed: e.cfg.Seed}

	history := make([]*Grid, 0, MaxDetectedPeriod)
	gens := make([]uint64, 0, MaxDetectedPeriod)
	for i := 0; i < maxTicks; i++ {
		if len(history) == MaxDetectedPeriod {
			copy(history, history[1:])
			copy(gens, gens[1:])
			history = history[:len(history)-1]
			gens = gens[:len(gens)-1]
		}
		history = append(history, e.Grid())
		gens = append(gens, e.GenerationNumber())

		e.Tick()
		for j := len(history) - 1; j >= 0; j-- {
			if e.cur.Equal(history[j]) {
				out.Period = int(e.GenerationNumber() - gens[j])
				out.SettledAt = gens[j]
				out.Generations = e.GenerationNumber()
				out.Population = e.Population()
				return out
			}
		}
	}
	out.Generations = e.GenerationNumber()
	out.Population = e.Population()
	return out
}

package life

import (
	"flag"
	"fmt"
	"time"
)

// Config holds the fixed parameters of a Life run.
type Config struct {
	Width            int
	Height           int
	AliveProbability float64
	Interval         time.Duration
	Seed             int64
	// Pattern, when set, names a plaintext pattern file that replaces the
	// random seeding.
	Pattern string
}

// DefaultConfig returns the standard 40x30 board seeded at 15% density,
// ticking every 200ms.
func DefaultConfig() Config {
	return Config{
		Width:            40,
		Height:           30,
		AliveProbability: 0.15,
		Interval:         200 * time.Millisecond,
		Seed:             42,
	}
}

// Validate reports whether the configuration can build an engine.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}
	if err := validateProbability(c.AliveProbability); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("life: tick interval must be positive, got %v", c.Interval)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.AliveProbability, "p", c.AliveProbability, "initial alive probability")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "wall-clock time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to start from instead of a random board")
}

// Open builds an engine from c, loading c.Pattern when it is set.
func Open(c Config) (*Engine, error) {
	e, err := New(c)
	if err != nil {
		return nil, err
	}
	if c.Pattern == "" {
		return e, nil
	}
	p, err := ReadPatternFile(c.Pattern)
	if err != nil {
		return nil, err
	}
	e.Load(p)
	return e, nil
}

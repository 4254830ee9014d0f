package app

import (
	"flag"

	"mad-life/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life     life.Config
	CellSize int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Life: life.DefaultConfig(), CellSize: 10, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Life.Bind(fs)
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
}

// Validate checks the run configuration and the presentation settings.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return err
	}
	if c.CellSize <= 0 {
		c.CellSize = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return nil
}

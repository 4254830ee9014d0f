package life

import (
	"errors"
	"testing"
)

func TestCensusDetectsExtinction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.AliveProbability = 0

	out, err := Census(cfg, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Extinct() || out.Period != 1 || out.Generations != 1 {
		t.Fatalf("empty board should settle immediately as a still life, got %+v", out)
	}
}

func TestCensusDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Census(cfg, 300)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Census(cfg, 300)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("identical seeds produced different outcomes: %+v vs %+v", a, b)
	}
	if a.Seed != cfg.Seed {
		t.Fatalf("outcome should record the seed, got %d", a.Seed)
	}
	if a.Generations > 300 {
		t.Fatalf("census ran past its tick budget: %d", a.Generations)
	}
}

func TestCensusInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := Census(cfg, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestEngineCensusPeriods(t *testing.T) {
	cases := []struct {
		name    string
		pattern Pattern
		period  int
	}{
		{"block", Block, 1},
		{"blinker", Blinker, 2},
		{"glider", Glider, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := emptyGrid(t, 12, 12)
			g.Stamp(tc.pattern, 4, 4)
			out := FromGrid(DefaultConfig(), g).Census(20)
			if out.Period != tc.period {
				t.Fatalf("expected period %d, got %+v", tc.period, out)
			}
			if out.Population != len(tc.pattern.Cells) {
				t.Fatalf("expected population %d, got %d", len(tc.pattern.Cells), out.Population)
			}
		})
	}
}

package life

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"mad-life/internal/core"
)

type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func TestSeedRowMajorThreshold(t *testing.T) {
	src := &scriptedSource{values: []float64{0.1, 0.5, 0.49, 0.9, 0.0, 0.5}}
	g, err := Seed(3, 2, 0.5, src)
	if err != nil {
		t.Fatal(err)
	}
	if src.calls != 6 {
		t.Fatalf("expected exactly 6 draws, got %d", src.calls)
	}
	want := []bool{true, false, true, false, true, false}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("got %v, want %v", g.Cells(), want)
	}
	if g.Alive(0, 1) {
		t.Fatal("a draw equal to the probability is not strictly less and must be dead")
	}
}

func TestSeedProbabilityBounds(t *testing.T) {
	g, err := Seed(10, 10, 0, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatalf("p=0 should seed no cells, got %d", g.Population())
	}

	g, err = Seed(10, 10, 1, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 100 {
		t.Fatalf("p=1 should seed every cell, got %d", g.Population())
	}
}

func TestSeedErrors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		p    float64
		src  Source
		want error
	}{
		{"zero width", 0, 5, 0.5, core.NewRNG(1), ErrInvalidDimension},
		{"negative height", 5, -1, 0.5, core.NewRNG(1), ErrInvalidDimension},
		{"probability below zero", 5, 5, -0.01, core.NewRNG(1), ErrInvalidProbability},
		{"probability above one", 5, 5, 1.5, core.NewRNG(1), ErrInvalidProbability},
		{"probability NaN", 5, 5, math.NaN(), core.NewRNG(1), ErrInvalidProbability},
		{"nil source", 5, 5, 0.5, nil, ErrInvalidSource},
		{"dimension reported before probability", 0, 0, 2, core.NewRNG(1), ErrInvalidDimension},
		{"dimension reported before source", -1, 3, 0.5, nil, ErrInvalidDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Seed(tc.w, tc.h, tc.p, tc.src)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if g != nil {
				t.Fatal("failed Seed must not return a grid")
			}
		})
	}
}

func TestSeedAcceptsStdlibRand(t *testing.T) {
	a, err := Seed(12, 9, 0.3, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Seed(12, 9, 0.3, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("identically seeded sources must produce identical grids")
	}
}

func TestDeterministicRun(t *testing.T) {
	run := func() [][]bool {
		e, err := New(DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		states := [][]bool{slices.Clone(e.Cells())}
		for i := 0; i < 50; i++ {
			e.Tick()
			states = append(states, slices.Clone(e.Cells()))
		}
		return states
	}

	first, second := run(), run()
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Fatalf("generation %d differs between identically seeded runs", i)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	initial := e.Grid()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	e.Reset(DefaultConfig().Seed)
	if !e.Grid().Equal(initial) {
		t.Fatal("Reset with the construction seed should reproduce the initial grid")
	}

	e.Reset(777)
	other := e.Grid()
	if other.Equal(initial) {
		t.Fatal("different seeds should produce different initial grids")
	}
	if e.Config().Seed != 777 {
		t.Fatalf("Reset should record the new seed, got %d", e.Config().Seed)
	}
}

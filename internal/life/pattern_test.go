package life

import (
	"os"
	"path/filepath"
	"testing"

	"mad-life/internal/core"
)

func lookup(snap core.ParameterSnapshot, key string) (core.Parameter, bool) {
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return core.Parameter{}, false
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("!Name: Glider\n!a comment\n.O.\n..O\nOOO\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Glider" {
		t.Fatalf("expected name Glider, got %q", p.Name)
	}
	if len(p.Cells) != len(Glider.Cells) {
		t.Fatalf("expected %d cells, got %d", len(Glider.Cells), len(p.Cells))
	}
	for i, c := range Glider.Cells {
		if p.Cells[i] != c {
			t.Fatalf("cell %d: got %v, want %v", i, p.Cells[i], c)
		}
	}

	if _, err := ParsePattern(".O.\n.X.\n"); err == nil {
		t.Fatal("unexpected characters should fail")
	}
}

func TestStampWraps(t *testing.T) {
	g := emptyGrid(t, 4, 4)
	g.Stamp(Block, 3, 3)
	expectLive(t, g, Offset{3, 3}, Offset{3, 0}, Offset{0, 3}, Offset{0, 0})
}

func TestParameters(t *testing.T) {
	g := emptyGrid(t, 6, 6)
	g.Stamp(Block, 1, 1)
	e := FromGrid(DefaultConfig(), g)
	e.Tick()
	e.Tick()

	snap := e.Parameters()
	for key, want := range map[string]string{
		"w":          "6",
		"h":          "6",
		"p":          "0.15",
		"interval":   "200ms",
		"generation": "2",
		"population": "4",
	} {
		p, ok := lookup(snap, key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s: got %q, want %q", key, p.Value, want)
		}
	}
}

func TestPatternBounds(t *testing.T) {
	rows, cols := Glider.Bounds()
	if rows != 3 || cols != 3 {
		t.Fatalf("glider spans 3x3, got %dx%d", rows, cols)
	}
	if rows, cols := (Pattern{}).Bounds(); rows != 0 || cols != 0 {
		t.Fatalf("empty pattern should have no extent, got %dx%d", rows, cols)
	}
}

func TestReadPatternFileNamesFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.cells")
	if err := os.WriteFile(path, []byte("OO\nOO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := ReadPatternFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != path || len(p.Cells) != 4 {
		t.Fatalf("unexpected pattern %+v", p)
	}

	bad := filepath.Join(t.TempDir(), "bad.cells")
	if err := os.WriteFile(bad, []byte("OX\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPatternFile(bad); err == nil {
		t.Fatal("malformed pattern file should fail")
	}
}

func TestLoadCentresAndResetRestores(t *testing.T) {
	g := emptyGrid(t, 7, 7)
	g.Set(0, 0, true)
	e := FromGrid(DefaultConfig(), g)
	e.Tick()

	e.Load(Blinker)
	if e.GenerationNumber() != 0 {
		t.Fatal("Load should zero the generation counter")
	}
	expectLive(t, e.Grid(), Offset{3, 2}, Offset{3, 3}, Offset{3, 4})

	e.Tick()
	e.Reset(5)
	expectLive(t, e.Grid(), Offset{3, 2}, Offset{3, 3}, Offset{3, 4})
	if e.GenerationNumber() != 0 || e.Config().Seed != 5 {
		t.Fatalf("Reset should restore the pattern at generation 0, got gen=%d seed=%d", e.GenerationNumber(), e.Config().Seed)
	}
}

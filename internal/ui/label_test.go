package ui

import (
	"slices"
	"testing"

	"mad-life/internal/life"
)

func TestGenerationLabel(t *testing.T) {
	if got := GenerationLabel(0); got != "Generation 0" {
		t.Fatalf("got %q", got)
	}
	if got := GenerationLabel(1234); got != "Generation 1234" {
		t.Fatalf("got %q", got)
	}
}

func TestPanelLines(t *testing.T) {
	e, err := life.New(life.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.Tick()

	lines := panelLines(e)
	for _, want := range []string{"World", "  Width: 40", "  Height: 30", "Stats", "  Generation: 1"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("panel lines %q missing %q", lines, want)
		}
	}
}

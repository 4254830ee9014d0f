package ui

import (
	"fmt"
	"strconv"

	"mad-life/internal/core"
)

// GenerationLabel formats the generation counter for display.
func GenerationLabel(gen uint64) string {
	return "Generation " + strconv.FormatUint(gen, 10)
}

// panelLines flattens the sim's parameter snapshot into display lines. Sims
// without parameters produce none.
func panelLines(sim core.Sim) []string {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return nil
	}
	var lines []string
	for _, g := range provider.Parameters().Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

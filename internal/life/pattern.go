package life

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Offset is a (row, col) displacement from a pattern's origin.
type Offset struct {
	Row, Col int
}

// Pattern is a named set of live cells relative to an origin.
type Pattern struct {
	Name  string
	Cells []Offset
}

var (
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// Blinker is the horizontal period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: []Offset{{0, 0}, {0, 1}, {0, 2}}}
	// Glider travels one cell diagonally down-right every four generations.
	Glider = Pattern{Name: "glider", Cells: []Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
)

// Stamp sets the pattern's cells alive with its origin at (row, col).
// Cells past an edge wrap around.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for _, off := range p.Cells {
		g.Set(row+off.Row, col+off.Col, true)
	}
}

// Bounds returns the number of rows and columns the pattern spans from its
// origin.
func (p Pattern) Bounds() (rows, cols int) {
	for _, off := range p.Cells {
		rows = max(rows, off.Row+1)
		cols = max(cols, off.Col+1)
	}
	return rows, cols
}

// ReadPatternFile loads a plaintext pattern from path. Unnamed patterns take
// the file name.
func ReadPatternFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("life: reading pattern: %w", err)
	}
	p, err := ParsePattern(string(data))
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

// ParsePattern reads a plaintext picture where 'O' or '*' is alive and '.'
// is dead. Lines starting with '!' are comments; the first "!Name:" comment
// names the pattern.
func ParsePattern(text string) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(strings.NewReader(text))
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok && p.Name == "" {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for col, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, Offset{Row: row, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("life: pattern line %d: unexpected %q", row+1, r)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

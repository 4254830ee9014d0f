//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD draws the generation label and an optional parameter panel on top of
// the board.
type HUD struct {
	sim       core.Sim
	label     color.Color
	showPanel bool
	panel     *ebiten.Image
	lastGen   uint64
	lines     []string
}

// NewHUD constructs a HUD for sim.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, label: color.RGBA{R: 255, G: 255, A: 255}, lastGen: ^uint64(0)}
}

// Update toggles the parameter panel and refreshes its text once per
// generation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showPanel = !h.showPanel
	}
	if gen := h.sim.GenerationNumber(); gen != h.lastGen {
		h.lastGen = gen
		h.lines = panelLines(h.sim)
	}
}

// Draw paints the HUD over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	text.Draw(screen, GenerationLabel(h.sim.GenerationNumber()), basicfont.Face7x13, 10, height-10, h.label)

	if !h.showPanel || len(h.lines) == 0 {
		return
	}
	w, ph := 200, lineHeight*len(h.lines)+8
	if h.panel == nil || h.panel.Bounds().Dy() != ph {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(w, ph)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	for i, line := range h.lines {
		text.Draw(h.panel, line, basicfont.Face7x13, 6, lineHeight*(i+1), color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(10, 10)
	screen.DrawImage(h.panel, op)
}

// Dispose releases the panel image.
func (h *HUD) Dispose() {
	if h != nil && h.panel != nil {
		h.panel.Dispose()
		h.panel = nil
	}
}

//go:build ebiten

package app

import (
	"time"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// margin is the border, in pixels, kept around the board for the HUD label.
const margin = 30

// Game adapts a Life engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	clock   *core.FixedStep
	painter *render.BoardPainter
	hud     *ui.HUD

	width, height int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine, drawing cells cellSize
// pixels wide.
func New(engine *life.Engine, cellSize int) *Game {
	layout := render.Layout{CellSize: cellSize}
	pw, ph := layout.Pixels(engine.Size())
	return &Game{
		engine:  engine,
		clock:   core.NewFixedStep(engine.Config().Interval),
		painter: render.NewBoardPainter(engine, layout, render.DefaultPalette()),
		hud:     ui.NewHUD(engine),
		width:   pw + 2*margin,
		height:  ph + 2*margin,
		seed:    engine.Config().Seed,
	}
}

// WindowSize returns the preferred window dimensions.
func (g *Game) WindowSize() (int, int) { return g.width, g.height }

// Reset reseeds the engine and restarts the tick clock.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Reset(seed)
	g.clock.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation when the tick
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.engine.Tick()
		g.tickOnce = false
	}

	g.hud.Update()
	return nil
}

// Draw renders the last completed generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close releases render resources. The engine is left untouched.
func (g *Game) Close() {
	g.painter.Dispose()
	g.hud.Dispose()
}

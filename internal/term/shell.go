// Package term drives a Life engine in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	liveRune = '█'
	deadRune = ' '

	// frame is the polling period of the tick clock.
	frame = time.Second / 60
)

// Shell renders an engine on a tcell screen and advances it whenever its
// FixedStep clock reports the interval has elapsed. Only the loop goroutine
// touches the engine; input arrives over a channel.
type Shell struct {
	engine *life.Engine
	screen tcell.Screen
	clock  *core.FixedStep
	seed   func() int64

	cellStyle   tcell.Style
	statusStyle tcell.Style

	paused bool
}

// New returns a shell for engine drawing onto an initialized screen. Run
// takes ownership of the screen and finalizes it on return.
func New(engine *life.Engine, screen tcell.Screen) *Shell {
	return &Shell{
		engine:      engine,
		screen:      screen,
		clock:       core.NewFixedStep(engine.Config().Interval),
		seed:        func() int64 { return time.Now().UnixNano() },
		cellStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)
	done := make(chan struct{})

	g.Go(func() error {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})
	g.Go(func() error {
		defer s.screen.Fini()
		defer close(done)
		return s.loop(ctx, events)
	})
	return g.Wait()
}

func (s *Shell) loop(ctx context.Context, events <-chan tcell.Event) error {
	poll := frame
	if step := s.clock.Step(); step < poll {
		poll = step
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	// Prime the clock so the first interval is measured from here.
	s.clock.Reset()
	s.clock.ShouldStep()
	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if due := s.clock.ShouldStep(); !due || s.paused {
				continue
			}
			s.engine.Tick()
			s.Draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := s.handleKey(ev); quit {
					return nil
				}
				s.Draw()
			case *tcell.EventResize:
				s.screen.Sync()
				s.Draw()
			}
		}
	}
}

func (s *Shell) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.engine.Tick()
	case 'r':
		s.engine.Reset(s.engine.Config().Seed)
		s.clock.Reset()
	case 's':
		s.engine.Reset(s.seed())
		s.clock.Reset()
	}
	return false
}

// Draw paints the current generation, two terminal columns per cell, and a
// status line underneath.
func (s *Shell) Draw() {
	s.screen.Clear()
	size := s.engine.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			r := deadRune
			if s.engine.CellState(row, col) {
				r = liveRune
			}
			s.screen.SetContent(col*2, row, r, nil, s.cellStyle)
			s.screen.SetContent(col*2+1, row, r, nil, s.cellStyle)
		}
	}
	for i, r := range s.status() {
		s.screen.SetContent(i, size.H, r, nil, s.statusStyle)
	}
	s.screen.Show()
}

func (s *Shell) status() string {
	line := fmt.Sprintf("%s  population %d", ui.GenerationLabel(s.engine.GenerationNumber()), s.engine.Population())
	if s.paused {
		line += "  [paused]"
	}
	return line + "  q quit  space pause  n step  r reset  s reseed"
}

// Package term paints the grid on a full-screen terminal through tcell.
package term

import (
	"context"
	"sync/atomic"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/pkg/life"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const aliveGlyph = 'E'

// Painter draws one glyph per cell and records quit keys delivered by the
// event pump. Render and Quit are called from the loop goroutine, handle from
// the pump.
type Painter struct {
	screen tcell.Screen
	style  tcell.Style
	alive  rune
	quit   atomic.Bool
}

// NewPainter wraps an initialized screen.
func NewPainter(s tcell.Screen) *Painter {
	return &Painter{screen: s, style: tcell.StyleDefault, alive: aliveGlyph}
}

// Render repaints every cell and flushes the screen.
func (p *Painter) Render(g *life.Grid) error {
	cols := g.Cols()
	for i, c := range g.Cells() {
		ch := ' '
		if c == life.Alive {
			ch = p.alive
		}
		p.screen.SetContent(i%cols, i/cols, ch, nil, p.style)
	}
	p.screen.Show()
	return nil
}

// Quit reports whether Esc, q or Ctrl-C has been pressed.
func (p *Painter) Quit() bool { return p.quit.Load() }

func (p *Painter) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			p.quit.Store(true)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			p.quit.Store(true)
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
}

// Backend runs a loop on a tcell screen.
type Backend struct {
	newScreen func() (tcell.Screen, error)
	// onReady runs after the screen is initialized.
	onReady func(tcell.Screen)
}

// New returns a Backend for the process terminal.
func New() *Backend {
	return &Backend{newScreen: tcell.NewScreen}
}

// Run takes over the terminal until the loop stops. The screen is restored
// before Run returns.
func (b *Backend) Run(ctx context.Context, l *loop.Loop) (loop.Result, error) {
	s, err := b.newScreen()
	if err != nil {
		return loop.Result{}, core.InitError("create terminal screen", err)
	}
	if err := s.Init(); err != nil {
		return loop.Result{}, core.InitError("initialize terminal screen", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.Clear()
	if b.onReady != nil {
		b.onReady(s)
	}

	p := NewPainter(s)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)

	grp.Go(func() error {
		s.ChannelEvents(events, gctx.Done())
		return nil
	})
	grp.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				p.handle(ev)
			}
		}
	})

	var res loop.Result
	grp.Go(func() error {
		defer cancel()
		var err error
		res, err = l.Run(gctx, p, p)
		return err
	})
	err = grp.Wait()
	return res, err
}

func init() {
	core.Register("term", func(core.Settings) core.Backend { return New() })
}

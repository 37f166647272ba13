package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/pkg/life"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestPainterRender(t *testing.T) {
	s := simScreen(t, 6, 3)
	g, _ := life.NewGrid(3, 6)
	g.Set(0, 0, life.Alive)
	g.Set(2, 5, life.Alive)

	if err := NewPainter(s).Render(g); err != nil {
		t.Fatal(err)
	}
	cells, w, _ := s.GetContents()
	for r := 0; r < 3; r++ {
		for c := 0; c < 6; c++ {
			want := ' '
			if g.At(r, c) == life.Alive {
				want = aliveGlyph
			}
			got := cells[r*w+c].Runes
			if len(got) == 0 || got[0] != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", r, c, got, want)
			}
		}
	}
}

func TestPainterQuitKeys(t *testing.T) {
	cases := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range cases {
		p := NewPainter(simScreen(t, 1, 1))
		p.handle(ev)
		if !p.Quit() {
			t.Fatalf("key %v should quit", ev.Name())
		}
	}

	p := NewPainter(simScreen(t, 1, 1))
	p.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if p.Quit() {
		t.Fatalf("'x' should not quit")
	}
}

func TestBackendQuitsOnKey(t *testing.T) {
	b := &Backend{
		newScreen: func() (tcell.Screen, error) {
			s := tcell.NewSimulationScreen("UTF-8")
			return s, nil
		},
		onReady: func(s tcell.Screen) {
			s.(tcell.SimulationScreen).InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		},
	}
	g, _ := life.NewGrid(5, 5)
	p, _ := life.LookupPattern("blinker")
	life.Placed{Pattern: p, Row: 2, Col: 1}.Fill(g)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := b.Run(ctx, loop.New(g, loop.Options{Policy: loop.Forever, Delay: time.Millisecond}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != loop.ReasonQuit {
		t.Fatalf("reason = %s, want quit", res.Reason)
	}
}

func TestBackendExtinctWithoutInput(t *testing.T) {
	b := &Backend{newScreen: func() (tcell.Screen, error) { return tcell.NewSimulationScreen("UTF-8"), nil }}
	g, _ := life.NewGrid(4, 4)
	res, err := b.Run(context.Background(), loop.New(g, loop.Options{Policy: loop.UntilExtinct}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != loop.ReasonExtinct || res.Generations != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestBackendInitFailure(t *testing.T) {
	b := &Backend{newScreen: func() (tcell.Screen, error) { return nil, errors.New("no terminal") }}
	g, _ := life.NewGrid(3, 3)
	_, err := b.Run(context.Background(), loop.New(g, loop.Options{}))
	if !errors.Is(err, core.ErrInit) {
		t.Fatalf("err = %v, want ErrInit", err)
	}
}

//go:build sdl

// Package sdlwin draws the grid in an SDL2 window.
package sdlwin

import (
	"context"
	"runtime"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/internal/render"
	"conway/pkg/life"

	"github.com/veandco/go-sdl2/sdl"
)

// Window paints live cells as white squares on black and reports SDL quit
// events.
type Window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	cellSize int
	rects    []render.Rect
	sdlRects []sdl.Rect
	quit     bool
}

// Open creates a window sized for a rows x cols grid.
func Open(title string, rows, cols, cellSize int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, core.InitError("SDL init", err)
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cols*cellSize), int32(rows*cellSize), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, core.InitError("create window", err)
	}
	r, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, core.InitError("create renderer", err)
	}
	return &Window{win: win, renderer: r, cellSize: cellSize}, nil
}

// Render clears to black and fills one square per live cell.
func (w *Window) Render(g *life.Grid) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}
	w.rects = render.CellRects(g, w.cellSize, w.rects)
	w.sdlRects = w.sdlRects[:0]
	for _, r := range w.rects {
		w.sdlRects = append(w.sdlRects, sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
	}
	if len(w.sdlRects) > 0 {
		if err := w.renderer.FillRects(w.sdlRects); err != nil {
			return err
		}
	}
	w.renderer.Present()
	return nil
}

// Quit drains pending events and reports whether the window was closed.
func (w *Window) Quit() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			w.quit = true
		}
	}
	return w.quit
}

// Close releases the renderer, the window and SDL itself.
func (w *Window) Close() {
	w.renderer.Destroy()
	w.win.Destroy()
	sdl.Quit()
}

type backend struct {
	settings core.Settings
}

func (b backend) Run(ctx context.Context, l *loop.Loop) (loop.Result, error) {
	// SDL calls must stay on the thread that initialized it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	g := l.Grid()
	w, err := Open(b.settings.Title, g.Rows(), g.Cols(), b.settings.CellSize)
	if err != nil {
		return loop.Result{}, err
	}
	defer w.Close()
	return l.Run(ctx, w, w)
}

func init() {
	core.Register("sdl", func(s core.Settings) core.Backend { return backend{settings: s} })
}

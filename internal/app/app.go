//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const headless = false

// Game adapts a loop to the ebiten.Game interface. Ebiten owns the frame
// loop; FixedStep releases one generation per configured delay.
type Game struct {
	ctx     context.Context
	loop    *loop.Loop
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *pacer
	policy  string

	onColor  color.Color
	offColor color.Color

	cellSize int
}

// New constructs a Game for the provided loop.
func New(ctx context.Context, l *loop.Loop, cellSize int, policy string) *Game {
	g := l.Grid()
	return &Game{
		ctx:      ctx,
		loop:     l,
		painter:  render.NewGridPainter(g.Rows(), g.Cols()),
		hud:      ui.NewHUD(g.Cols() * cellSize),
		pace:     newPacer(l, core.NewFixedStep(l.Delay())),
		policy:   policy,
		onColor:  render.Foreground,
		offColor: render.BackgroundColor,
		cellSize: cellSize,
	}
}

// Update handles quit keys and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop(loop.ReasonQuit)
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		g.loop.Stop(loop.ReasonCanceled)
		return ebiten.Termination
	}
	g.hud.Update()

	if g.pace.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.loop.Grid(), g.onColor, g.offColor, g.cellSize)
	res := g.loop.Result()
	g.hud.Draw(screen, ui.Status{Generation: res.Generations, Alive: res.Alive, Elapsed: res.Elapsed, Policy: g.policy})
	g.pace.Drawn()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.painter.Size()
	return cols * g.cellSize, rows * g.cellSize
}

type windowBackend struct {
	settings core.Settings
}

func (b windowBackend) Run(ctx context.Context, l *loop.Loop) (loop.Result, error) {
	game := New(ctx, l, b.settings.CellSize, l.Policy().String())
	grid := l.Grid()

	ebiten.SetWindowTitle(b.settings.Title)
	ebiten.SetWindowSize(grid.Cols()*b.settings.CellSize, grid.Rows()*b.settings.CellSize)
	ebiten.SetTPS(ebiten.DefaultTPS)

	l.Start()
	err := ebiten.RunGame(game)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		if !game.pace.EverDrawn() {
			return l.Result(), core.InitError("open window", err)
		}
		return l.Result(), err
	}
	// Closing the window ends RunGame without an error.
	l.Stop(loop.ReasonQuit)
	return l.Result(), nil
}

func init() {
	core.Register("window", func(s core.Settings) core.Backend { return windowBackend{settings: s} })
}

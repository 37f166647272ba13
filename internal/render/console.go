package render

import (
	"context"
	"io"
	"os"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/pkg/life"
)

const (
	// AliveGlyph marks a live cell in text output.
	AliveGlyph = 'E'
	// BackgroundGlyph marks a dead cell in text output.
	BackgroundGlyph = '.'

	clearHome = "\x1b[H\x1b[2J"
)

// Text dumps the grid row by row, one glyph per cell and a newline after
// every row.
type Text struct {
	W          io.Writer
	Alive      byte
	Background byte
	// Clear prefixes each frame with the ANSI clear-screen sequence.
	Clear bool

	buf []byte
}

// NewText returns a Text renderer with the default glyphs.
func NewText(w io.Writer, clear bool) *Text {
	return &Text{W: w, Alive: AliveGlyph, Background: BackgroundGlyph, Clear: clear}
}

// Render writes one frame in a single Write call.
func (t *Text) Render(g *life.Grid) error {
	rows, cols := g.Rows(), g.Cols()
	t.buf = t.buf[:0]
	if t.Clear {
		t.buf = append(t.buf, clearHome...)
	}
	cells := g.Cells()
	for r := 0; r < rows; r++ {
		for _, c := range cells[r*cols : (r+1)*cols] {
			if c == life.Alive {
				t.buf = append(t.buf, t.Alive)
			} else {
				t.buf = append(t.buf, t.Background)
			}
		}
		t.buf = append(t.buf, '\n')
	}
	_, err := t.W.Write(t.buf)
	return err
}

type consoleBackend struct {
	text *Text
}

func (b consoleBackend) Run(ctx context.Context, l *loop.Loop) (loop.Result, error) {
	return l.Run(ctx, b.text, loop.NoInput{})
}

func init() {
	core.Register("console", func(s core.Settings) core.Backend {
		w := s.Writer
		if w == nil {
			w = os.Stdout
		}
		return consoleBackend{text: NewText(w, s.ClearScreen)}
	})
}

//go:build ebiten

package render

import (
	"image/color"

	"conway/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a grid into a one-pixel-per-cell image and draws it
// scaled so every cell becomes a filled square.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the grid into the painter image and draws it at cellSize
// pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, on, off color.Color, cellSize int) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }

package render

import (
	"image/color"

	"conway/pkg/life"
)

var (
	// Foreground paints live cells.
	Foreground color.Color = color.White
	// BackgroundColor paints dead cells.
	BackgroundColor color.Color = color.Black
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Rect is a filled square in window pixels.
type Rect struct {
	X, Y, W, H int
}

// CellRects returns one rectangle per live cell for painters that draw
// primitives instead of uploading pixels.
func CellRects(g *life.Grid, cellSize int, dst []Rect) []Rect {
	if cellSize <= 0 {
		cellSize = 1
	}
	dst = dst[:0]
	cols := g.Cols()
	for i, c := range g.Cells() {
		if c != life.Alive {
			continue
		}
		r, col := i/cols, i%cols
		dst = append(dst, Rect{X: col * cellSize, Y: r * cellSize, W: cellSize, H: cellSize})
	}
	return dst
}

// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
package life

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// MinSide is the smallest grid side. On narrower tori the eight neighbor
// offsets fold back onto the cell itself or onto each other.
const MinSide = 3

// ErrInvalidSize is returned when a grid is requested with a side shorter
// than MinSide.
var ErrInvalidSize = errors.New("life: grid sides must be at least 3 cells")

// Grid stores rows*cols cells in row-major order. Edges wrap around, so the
// topology is a torus.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions. Both must be
// at least MinSide.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < MinSide || cols < MinSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice in row-major order. Callers must treat it
// as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Wrap maps arbitrary coordinates onto the torus.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// At returns the cell at (r, c) after toroidal wrapping.
func (g *Grid) At(r, c int) Cell {
	r, c = g.Wrap(r, c)
	return g.cells[r*g.cols+c]
}

// Set writes the cell at (r, c) after toroidal wrapping.
func (g *Grid) Set(r, c int, v Cell) {
	r, c = g.Wrap(r, c)
	g.cells[r*g.cols+c] = v
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// LiveNeighbors counts the live cells among the eight toroidal neighbors of
// (r, c). The cell itself is never counted.
func (g *Grid) LiveNeighbors(r, c int) int {
	r, c = g.Wrap(r, c)
	rows, cols := g.rows, g.cols
	n := 0
	for dr := -1; dr <= 1; dr++ {
		nr := ((r+dr)%rows + rows) % rows
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc := ((c+dc)%cols + cols) % cols
			if g.cells[nr*cols+nc] == Alive {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a cell with n live neighbors.
func Rule(cur Cell, n int) Cell {
	if n == 3 || (cur == Alive && n == 2) {
		return Alive
	}
	return Dead
}

// StepInto writes the next generation of g into dst. Neighbor counts are read
// from g only, so dst must be a distinct grid with the same dimensions.
func (g *Grid) StepInto(dst *Grid) {
	if dst == g {
		panic("life: StepInto destination aliases the source grid")
	}
	if dst.rows != g.rows || dst.cols != g.cols {
		panic(fmt.Sprintf("life: StepInto size mismatch %dx%d -> %dx%d", g.rows, g.cols, dst.rows, dst.cols))
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			dst.cells[idx] = Rule(g.cells[idx], g.LiveNeighbors(r, c))
		}
	}
}

// Next returns the following generation as a new grid, leaving g untouched.
func (g *Grid) Next() *Grid {
	nxt := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	g.StepInto(nxt)
	return nxt
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, v := range g.cells {
		if v == Alive {
			n++
		}
	}
	return n
}

// String renders the grid with 'O' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for _, v := range g.cells[r*g.cols : (r+1)*g.cols] {
			if v == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

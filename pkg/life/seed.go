package life

import "conway/pkg/core"

// Seeder fills a grid with an initial generation.
type Seeder interface {
	Fill(g *Grid)
}

// Random sets each cell alive independently when two draws, one in A and
// one in B, both come up zero. The live probability is therefore 1/(A*B).
// Identical seeds produce identical grids.
type Random struct {
	Seed int64
	A, B int
}

// DefaultRandom returns the 1/6 soup used by the console and window variants.
func DefaultRandom(seed int64) Random {
	return Random{Seed: seed, A: 2, B: 3}
}

// Probability returns the live probability of a single cell.
func (s Random) Probability() float64 {
	a, b := s.A, s.B
	if a < 1 {
		a = 1
	}
	if b < 1 {
		b = 1
	}
	return 1 / float64(a*b)
}

func (s Random) Fill(g *Grid) {
	rng := core.NewRNG(s.Seed)
	for i := range g.cells {
		// Both draws are always taken so the stream stays aligned per cell.
		first := rng.OneIn(s.A)
		second := rng.OneIn(s.B)
		if first && second {
			g.cells[i] = Alive
			continue
		}
		g.cells[i] = Dead
	}
}

// Placed positions a pattern with its top-left corner at (Row, Col).
type Placed struct {
	Pattern Pattern
	Row     int
	Col     int
}

// Fill clears the grid and draws the pattern.
func (p Placed) Fill(g *Grid) {
	g.Clear()
	p.Stamp(g)
}

// Stamp sets the pattern's cells alive without touching any other cell.
// Cells falling off an edge wrap around.
func (p Placed) Stamp(g *Grid) {
	for _, pt := range p.Pattern.Cells {
		g.Set(p.Row+pt.Row, p.Col+pt.Col, Alive)
	}
}

// Overlay seeds Base first and then stamps Top over it.
type Overlay struct {
	Base Seeder
	Top  Placed
}

func (o Overlay) Fill(g *Grid) {
	if o.Base != nil {
		o.Base.Fill(g)
	}
	o.Top.Stamp(g)
}

// Soup returns a random fill with a solid (rows/5)x(cols/5) rectangle stamped
// in the top-left corner.
func Soup(rows, cols int, random Random) Overlay {
	return Overlay{Base: random, Top: Placed{Pattern: Rect(rows/5, cols/5)}}
}

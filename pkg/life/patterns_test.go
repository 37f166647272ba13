package life

import (
	"sort"
	"testing"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("glider", "\n.O.\n..O\nOOO\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.Rows != 3 || p.Cols != 3 {
		t.Fatalf("bounds = %dx%d, want 3x3", p.Rows, p.Cols)
	}
	want := []Point{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if len(p.Cells) != len(want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
	for i := range want {
		if p.Cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", p.Cells, want)
		}
	}
}

func TestParsePatternRejectsGarbage(t *testing.T) {
	if _, err := ParsePattern("bad", "O?O"); err == nil {
		t.Fatalf("expected an error for '?'")
	}
}

func TestRect(t *testing.T) {
	if p := Rect(0, 4); len(p.Cells) != 0 {
		t.Fatalf("Rect(0, 4) has %d cells", len(p.Cells))
	}
	p := Rect(2, 3)
	if len(p.Cells) != 6 || p.Rows != 2 || p.Cols != 3 {
		t.Fatalf("Rect(2, 3) = %+v", p)
	}
}

func TestBuiltinPatterns(t *testing.T) {
	sizes := map[string]int{
		"block":       4,
		"beehive":     6,
		"blinker":     3,
		"toad":        6,
		"glider":      5,
		"lwss":        9,
		"r-pentomino": 5,
	}
	names := PatternNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("PatternNames not sorted: %v", names)
	}
	if len(names) != len(sizes) {
		t.Fatalf("PatternNames = %v", names)
	}
	for name, n := range sizes {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Cells) != n {
			t.Fatalf("%s has %d cells, want %d", name, len(p.Cells), n)
		}
	}
}

func TestOscillatorsReturn(t *testing.T) {
	for _, name := range []string{"blinker", "toad"} {
		g := mustGrid(t, 8, 8)
		place(t, g, name, 3, 2)
		start := g.Clone()
		g = g.Next()
		if g.Equal(start) {
			t.Fatalf("%s did not change after one step", name)
		}
		g = g.Next()
		if !g.Equal(start) {
			t.Fatalf("%s did not return after two steps:\n%s", name, g)
		}
	}
}

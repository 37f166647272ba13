package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPattern is returned by LookupPattern for unregistered names.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Point addresses a cell relative to a pattern's top-left corner.
type Point struct {
	Row, Col int
}

// Pattern is a named set of live cells inside a Rows x Cols bounding box.
type Pattern struct {
	Name  string
	Rows  int
	Cols  int
	Cells []Point
}

// ParsePattern reads a picture where 'O' (or '*') marks a live cell and '.'
// (or ' ') a dead one. Blank leading and trailing lines are ignored.
func ParsePattern(name, picture string) (Pattern, error) {
	lines := strings.Split(strings.Trim(picture, "\n"), "\n")
	p := Pattern{Name: name}
	for r, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		for c, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, Point{Row: r, Col: c})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("life: pattern %q: unexpected %q at %d,%d", name, ch, r, c)
			}
			if c+1 > p.Cols {
				p.Cols = c + 1
			}
		}
	}
	p.Rows = len(lines)
	return p, nil
}

// Rect returns a solid h x w block of live cells. Non-positive sizes yield an
// empty pattern.
func Rect(h, w int) Pattern {
	p := Pattern{Name: "rect"}
	if h <= 0 || w <= 0 {
		return p
	}
	p.Rows, p.Cols = h, w
	p.Cells = make([]Point, 0, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			p.Cells = append(p.Cells, Point{Row: r, Col: c})
		}
	}
	return p
}

var patterns = map[string]Pattern{}

func register(name, picture string) {
	p, err := ParsePattern(name, picture)
	if err != nil {
		panic(err)
	}
	patterns[name] = p
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	register("block", `
OO
OO
`)
	register("beehive", `
.OO.
O..O
.OO.
`)
	register("blinker", `
OOO
`)
	register("toad", `
.OOO
OOO.
`)
	register("glider", `
.O.
..O
OOO
`)
	register("lwss", `
.O..O
O....
O...O
OOOO.
`)
	register("r-pentomino", `
.OO
OO.
.O.
`)
}

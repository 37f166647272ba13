package render

import (
	"image/color"
	"testing"

	"conway/pkg/life"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []life.Cell{life.Alive, life.Dead}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestCellRects(t *testing.T) {
	g, _ := life.NewGrid(3, 4)
	g.Set(0, 1, life.Alive)
	g.Set(2, 3, life.Alive)

	rects := CellRects(g, 10, nil)
	want := []Rect{{X: 10, Y: 0, W: 10, H: 10}, {X: 30, Y: 20, W: 10, H: 10}}
	if len(rects) != len(want) {
		t.Fatalf("rects = %v, want %v", rects, want)
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rects = %v, want %v", rects, want)
		}
	}

	g.Clear()
	if rects = CellRects(g, 10, rects); len(rects) != 0 {
		t.Fatalf("empty grid produced %v", rects)
	}
}

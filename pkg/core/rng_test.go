package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.OneIn(5), b.OneIn(5); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestOneInEdges(t *testing.T) {
	r := NewRNG(1)
	for _, n := range []int{-3, 0, 1} {
		if !r.OneIn(n) {
			t.Fatalf("OneIn(%d) should always succeed", n)
		}
	}
}

func TestOneInRate(t *testing.T) {
	r := NewRNG(3)
	hits := 0
	for i := 0; i < 40000; i++ {
		if r.OneIn(4) {
			hits++
		}
	}
	if hits < 9000 || hits > 11000 {
		t.Fatalf("OneIn(4) hit %d of 40000, want about 10000", hits)
	}
}

// Package survey evolves many random soups headlessly and classifies how
// each one ends.
package survey

import (
	"context"
	"fmt"
	"sort"

	"conway/pkg/life"

	"golang.org/x/sync/errgroup"
)

// Outcome classifies the end state of a soup.
type Outcome int

const (
	// Capped means the generation limit was hit first.
	Capped Outcome = iota
	// Extinct means every cell died.
	Extinct
	// Settled means the soup reached a still life or period-2 oscillation.
	Settled
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Settled:
		return "settled"
	default:
		return "capped"
	}
}

// Scenario is one random soup.
type Scenario struct {
	Seed int64
	A, B int
}

func (s Scenario) String() string {
	return fmt.Sprintf("seed=%d odds=%dx%d", s.Seed, s.A, s.B)
}

// Result describes how a scenario evolved.
type Result struct {
	Scenario    Scenario
	Outcome     Outcome
	Generations int
	// Period is 1 for a still life and 2 for a blinker-like ending.
	Period int
	Alive  int
	Peak   int
}

// Run seeds a rows x cols soup and evolves it for at most maxGens
// generations.
func Run(rows, cols, maxGens int, sc Scenario) (Result, error) {
	g, err := life.NewGrid(rows, cols)
	if err != nil {
		return Result{}, err
	}
	life.Random{Seed: sc.Seed, A: sc.A, B: sc.B}.Fill(g)
	res := evolve(g, maxGens)
	res.Scenario = sc
	return res, nil
}

// evolve rotates three buffers so each new generation can be compared with
// the two before it.
func evolve(cur *life.Grid, maxGens int) Result {
	var res Result
	nxt, spare := cur.Clone(), cur.Clone()
	var prev *life.Grid
	for gen := 0; gen < maxGens; gen++ {
		alive := cur.CountAlive()
		if alive > res.Peak {
			res.Peak = alive
		}
		if alive == 0 {
			res.Outcome, res.Generations = Extinct, gen
			return res
		}
		cur.StepInto(nxt)
		switch {
		case nxt.Equal(cur):
			res.Outcome, res.Period = Settled, 1
		case prev != nil && nxt.Equal(prev):
			res.Outcome, res.Period = Settled, 2
		}
		if res.Outcome == Settled {
			res.Generations, res.Alive = gen+1, nxt.CountAlive()
			return res
		}
		old := prev
		prev, cur = cur, nxt
		if old == nil {
			nxt = spare
		} else {
			nxt = old
		}
	}
	res.Outcome, res.Generations, res.Alive = Capped, maxGens, cur.CountAlive()
	if res.Alive > res.Peak {
		res.Peak = res.Alive
	}
	return res
}

// Sweep runs every scenario with at most workers in flight. Results keep the
// order of scenarios.
func Sweep(ctx context.Context, rows, cols, maxGens int, scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(scenarios))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, sc := range scenarios {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(rows, cols, maxGens, sc)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Longest returns up to n results ordered by generations survived, longest
// first.
func Longest(results []Result, n int) []Result {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Generations > sorted[j].Generations })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Tally counts results per outcome.
func Tally(results []Result) map[Outcome]int {
	counts := map[Outcome]int{}
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}

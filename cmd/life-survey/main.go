// Command life-survey evolves many random soups in parallel and reports how
// long each one lasts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"conway/internal/app"
	"conway/internal/survey"
)

func main() {
	n := flag.Int("n", 64, "number of soups to evolve")
	rows := flag.Int("rows", 50, "grid height in cells")
	cols := flag.Int("cols", 150, "grid width in cells")
	gens := flag.Int("gens", 2000, "generation cap per soup")
	odds := flag.String("odds", "2x3", "AxB live odds for the random fill")
	seed := flag.Int64("seed", 1, "seed of the first soup; later soups count up from it")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soups")
	top := flag.Int("top", 5, "number of longest-lived soups to list")
	flag.Parse()

	a, b, err := app.ParseOdds(*odds)
	if err != nil {
		log.Fatal(err)
	}

	scenarios := make([]survey.Scenario, *n)
	for i := range scenarios {
		scenarios[i] = survey.Scenario{Seed: *seed + int64(i), A: a, B: b}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d soups of %dx%d (odds %dx%d, cap %d, %d workers)\n", *n, *rows, *cols, a, b, *gens, *workers)
	start := time.Now()
	results, err := survey.Sweep(ctx, *rows, *cols, *gens, scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	for _, r := range results {
		fmt.Printf("%s: %s after %d generations, %d alive (peak %d)\n",
			r.Scenario, r.Outcome, r.Generations, r.Alive, r.Peak)
	}

	fmt.Printf("\nTop %d longest-lived (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i, r := range survey.Longest(results, *top) {
		fmt.Printf("%2d) %s gens=%d outcome=%s alive=%d peak=%d\n", i+1, r.Scenario, r.Generations, r.Outcome, r.Alive, r.Peak)
	}

	counts := survey.Tally(results)
	fmt.Printf("\nextinct=%d settled=%d capped=%d\n", counts[survey.Extinct], counts[survey.Settled], counts[survey.Capped])
}

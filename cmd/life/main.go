// Command life runs Conway's Game of Life on a toroidal grid.
//
// Exit codes: 0 on a normal stop (extinction, time limit, quit key or
// interrupt), 1 when the renderer cannot be initialized, 2 on bad flags and
// 3 when rendering fails mid-run.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/loop"
	_ "conway/internal/render"
	_ "conway/internal/sdlwin"
	_ "conway/internal/term"
)

const (
	exitOK     = 0
	exitInit   = 1
	exitUsage  = 2
	exitRender = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "life: ", log.LstdFlags)

	cfg := app.NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	factory, err := core.Lookup(cfg.Renderer)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	if err := cfg.ApplyPreset(fs); err != nil {
		logger.Print(err)
		return exitUsage
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	grid, err := cfg.Grid()
	if err != nil {
		logger.Printf("setup: %v", err)
		return exitUsage
	}

	// The terminal front end owns the screen while it runs; hold its log
	// lines until the screen is restored.
	var held bytes.Buffer
	loopLog := logger
	if cfg.Renderer == "term" {
		loopLog = log.New(&held, "life: ", log.LstdFlags)
	}
	opts, err := cfg.LoopOptions(loopLog)
	if err != nil {
		logger.Printf("setup: %v", err)
		return exitUsage
	}

	settings := cfg.Settings()
	settings.Writer = stdout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("renderer %s, %dx%d grid, pattern %s, seed %d", cfg.Renderer, cfg.Rows, cfg.Cols, cfg.Pattern, cfg.Seed)
	res, err := factory(settings).Run(ctx, loop.New(grid, opts))
	stderr.Write(held.Bytes())
	if err != nil {
		logger.Print(err)
		if errors.Is(err, core.ErrInit) {
			return exitInit
		}
		return exitRender
	}
	logger.Printf("done: %s after %d generations", res.Reason, res.Generations)
	return exitOK
}

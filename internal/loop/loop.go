// Package loop drives a Game of Life grid through render, advance and delay
// until a termination policy fires.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"conway/pkg/life"
)

// Renderer paints a read-only snapshot of the grid.
type Renderer interface {
	Render(g *life.Grid) error
}

// Input is polled once per tick for a quit request.
type Input interface {
	Quit() bool
}

// NoInput never asks to quit.
type NoInput struct{}

func (NoInput) Quit() bool { return false }

// Policy selects when a run ends on its own.
type Policy int

const (
	// Forever runs until interrupted.
	Forever Policy = iota
	// UntilExtinct stops once no cell is alive.
	UntilExtinct
	// UntilElapsed stops once the configured wall-clock limit has passed.
	UntilElapsed
)

// ErrUnknownPolicy is returned by ParsePolicy.
var ErrUnknownPolicy = errors.New("loop: unknown policy")

var policyNames = map[Policy]string{
	Forever:      "forever",
	UntilExtinct: "extinct",
	UntilElapsed: "timed",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "forever", "extinct" or "timed" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return Forever, fmt.Errorf("%w %q", ErrUnknownPolicy, s)
}

// Reason records why a run stopped.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonCanceled
	ReasonExtinct
	ReasonElapsed
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonCanceled:
		return "canceled"
	case ReasonExtinct:
		return "extinct"
	case ReasonElapsed:
		return "time limit reached"
	default:
		return "running"
	}
}

// Clock abstracts wall time so tests can run without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Options tune a Loop.
type Options struct {
	Delay  time.Duration
	Policy Policy
	// Limit is the run duration for UntilElapsed.
	Limit time.Duration
	// ReportEvery logs the population every N generations; 0 disables it.
	ReportEvery int
	Logger      *log.Logger
	Clock       Clock
}

// Result summarizes a finished run.
type Result struct {
	Generations int
	Alive       int
	Reason      Reason
	Elapsed     time.Duration
}

// Loop owns the current and next generation buffers of a single run.
type Loop struct {
	cur, nxt *life.Grid
	opts     Options
	log      *log.Logger
	clock    Clock

	generation int
	started    bool
	start      time.Time
	reason     Reason
}

// New takes ownership of grid. The caller must not mutate it afterwards.
func New(grid *life.Grid, opts Options) *Loop {
	l := &Loop{cur: grid, nxt: grid.Clone(), opts: opts, log: opts.Logger, clock: opts.Clock}
	if l.log == nil {
		l.log = log.New(io.Discard, "", 0)
	}
	if l.clock == nil {
		l.clock = wallClock{}
	}
	return l
}

// Grid returns the current generation. It is only valid until the next Advance.
func (l *Loop) Grid() *life.Grid { return l.cur }

// Generation returns how many times the grid has been advanced.
func (l *Loop) Generation() int { return l.generation }

// Delay returns the configured pause between ticks.
func (l *Loop) Delay() time.Duration { return l.opts.Delay }

// Policy returns the termination policy.
func (l *Loop) Policy() Policy { return l.opts.Policy }

// Start marks the beginning of the run for the duration policy. Calling it
// more than once has no effect.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.start = l.clock.Now()
	l.log.Printf("starting %dx%d run, policy %s, delay %s, %d alive",
		l.cur.Rows(), l.cur.Cols(), l.opts.Policy, l.opts.Delay, l.cur.CountAlive())
}

// Expired reports whether the wall-clock limit of UntilElapsed has passed.
func (l *Loop) Expired() bool {
	if l.opts.Policy != UntilElapsed {
		return false
	}
	l.Start()
	return l.clock.Now().Sub(l.start) >= l.opts.Limit
}

// Extinct reports whether the extinction policy is active and nothing lives.
func (l *Loop) Extinct() bool {
	return l.opts.Policy == UntilExtinct && l.cur.CountAlive() == 0
}

// Done checks both self-terminating policies against the current generation.
func (l *Loop) Done() (Reason, bool) {
	if l.Expired() {
		return l.stop(ReasonElapsed), true
	}
	if l.Extinct() {
		return l.stop(ReasonExtinct), true
	}
	return ReasonNone, false
}

// Stop records an externally triggered end of run, such as a closed window.
func (l *Loop) Stop(r Reason) { l.stop(r) }

func (l *Loop) stop(r Reason) Reason {
	if l.reason == ReasonNone {
		l.reason = r
	}
	return l.reason
}

// Advance computes the next generation from the current one and swaps the
// buffers.
func (l *Loop) Advance() {
	l.cur.StepInto(l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	if n := l.opts.ReportEvery; n > 0 && l.generation%n == 0 {
		l.log.Printf("generation %d: %d alive", l.generation, l.cur.CountAlive())
	}
}

// Result summarizes the run so far.
func (l *Loop) Result() Result {
	res := Result{Generations: l.generation, Alive: l.cur.CountAlive(), Reason: l.reason}
	if l.started {
		res.Elapsed = l.clock.Now().Sub(l.start)
	}
	return res
}

// Run renders, advances and sleeps until ctx is canceled, the input asks to quit or
// the policy fires. It returns an error only when rendering fails.
func (l *Loop) Run(ctx context.Context, r Renderer, in Input) (Result, error) {
	if in == nil {
		in = NoInput{}
	}
	l.Start()
	for {
		if ctx.Err() != nil {
			l.stop(ReasonCanceled)
			break
		}
		if in.Quit() {
			l.stop(ReasonQuit)
			break
		}
		if l.Expired() {
			l.stop(ReasonElapsed)
			break
		}
		if err := r.Render(l.cur); err != nil {
			return l.Result(), fmt.Errorf("render generation %d: %w", l.generation, err)
		}
		if l.Extinct() {
			l.stop(ReasonExtinct)
			break
		}
		l.Advance()
		l.clock.Sleep(ctx, l.opts.Delay)
	}
	res := l.Result()
	l.log.Printf("stopped after %d generations (%s), %d alive", res.Generations, res.Reason, res.Alive)
	return res, nil
}

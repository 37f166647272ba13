package app

import "conway/internal/loop"

// stepper releases one generation per configured delay. core.FixedStep
// implements it.
type stepper interface {
	ShouldStep() bool
}

// pacer decides when a frame-driven backend advances its loop. The current
// generation must reach the screen before the next one is computed, and the
// termination policies are checked before every advance.
type pacer struct {
	loop  *loop.Loop
	step  stepper
	shown int
}

func newPacer(l *loop.Loop, s stepper) *pacer {
	return &pacer{loop: l, step: s, shown: -1}
}

// Drawn records that the current generation has been painted.
func (p *pacer) Drawn() { p.shown = p.loop.Generation() }

// EverDrawn reports whether any frame reached the screen.
func (p *pacer) EverDrawn() bool { return p.shown >= 0 }

// Tick advances at most one generation and reports whether the loop is done.
func (p *pacer) Tick() bool {
	if p.shown != p.loop.Generation() {
		return false
	}
	if _, done := p.loop.Done(); done {
		return true
	}
	if p.step.ShouldStep() {
		p.loop.Advance()
	}
	return false
}

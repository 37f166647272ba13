package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(100, 0)
	fs := NewFixedStep(75 * time.Millisecond)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatalf("first call should step")
	}
	steps := 0
	// 60 frames of ~16.67ms add up to one second, or 13 ticks of 75ms.
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 60)
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 13 {
		t.Fatalf("steps = %d, want 13", steps)
	}
}

func TestFixedStepZeroIntervalAlwaysSteps(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 5; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("call %d did not step", i)
		}
	}
}

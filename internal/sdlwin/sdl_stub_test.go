//go:build !sdl

package sdlwin

import (
	"context"
	"errors"
	"testing"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/pkg/life"
)

func TestHeadlessSDLReportsInitError(t *testing.T) {
	factory, err := core.Lookup("sdl")
	if err != nil {
		t.Fatal(err)
	}
	g, _ := life.NewGrid(3, 3)
	l := loop.New(g, loop.Options{})
	if _, err := factory(core.Settings{}).Run(context.Background(), l); !errors.Is(err, core.ErrInit) {
		t.Fatalf("err = %v, want ErrInit", err)
	}
	if l.Generation() != 0 {
		t.Fatalf("no generation should run when init fails")
	}
}

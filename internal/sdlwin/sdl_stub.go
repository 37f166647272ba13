//go:build !sdl

// Package sdlwin draws the grid in an SDL2 window.
package sdlwin

import (
	"context"
	"errors"

	"conway/internal/core"
	"conway/internal/loop"
)

var errNoSDL = errors.New("the sdl renderer requires building with the 'sdl' tag")

type backend struct{}

func (backend) Run(context.Context, *loop.Loop) (loop.Result, error) {
	return loop.Result{}, core.InitError("sdl", errNoSDL)
}

func init() {
	core.Register("sdl", func(core.Settings) core.Backend { return backend{} })
}

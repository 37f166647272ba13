//go:build !ebiten

package app

import (
	"context"
	"errors"

	"conway/internal/core"
	"conway/internal/loop"
)

const headless = true

var errNoEbiten = errors.New("the window renderer requires building with the 'ebiten' tag")

type windowBackend struct{}

// Run always fails: the headless build has no window support.
func (windowBackend) Run(context.Context, *loop.Loop) (loop.Result, error) {
	return loop.Result{}, core.InitError("window", errNoEbiten)
}

func init() {
	core.Register("window", func(core.Settings) core.Backend { return windowBackend{} })
}

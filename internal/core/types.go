package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"conway/internal/loop"
)

var (
	// ErrInit marks a front end that could not acquire its display surface.
	ErrInit = errors.New("renderer initialization failed")
	// ErrUnknownBackend is returned by Lookup for unregistered names.
	ErrUnknownBackend = errors.New("unknown renderer")
)

// Settings carries the presentation options shared by all front ends.
type Settings struct {
	Title string
	// CellSize is the pixel edge of one cell in windowed front ends.
	CellSize int
	// Writer receives text output from the console front end.
	Writer io.Writer
	// ClearScreen asks text front ends to home the cursor before each frame.
	ClearScreen bool
}

// Backend drives a loop on a concrete output surface until the loop stops.
type Backend interface {
	Run(ctx context.Context, l *loop.Loop) (loop.Result, error)
}

// Factory constructs a Backend for the given settings.
type Factory func(s Settings) Backend

var backends = map[string]Factory{}

// Register adds a front end factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends lists the registered front end names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return f, nil
}

// InitError wraps a front end setup failure so callers can match ErrInit.
func InitError(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInit, what, err)
}

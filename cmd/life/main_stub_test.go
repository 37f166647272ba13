//go:build !sdl

package main

import (
	"bytes"
	"testing"
)

func TestRunInitFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-renderer", "sdl"}, &out, &errOut); code != exitInit {
		t.Fatalf("exit = %d, want %d; stderr:\n%s", code, exitInit, errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("no frame should be rendered, got %q", out.String())
	}
}

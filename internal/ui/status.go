package ui

import (
	"fmt"
	"time"
)

// Status is the run summary shown in the HUD.
type Status struct {
	Generation int
	Alive      int
	Elapsed    time.Duration
	Policy     string
}

func (s Status) String() string {
	line := fmt.Sprintf("gen %d  alive %d  %s", s.Generation, s.Alive, s.Elapsed.Truncate(time.Second))
	if s.Policy != "" {
		line += "  [" + s.Policy + "]"
	}
	return line
}

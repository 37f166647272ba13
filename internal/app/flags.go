package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"conway/internal/core"
	"conway/internal/loop"
	"conway/pkg/life"
)

// ErrBadFlag marks a flag value that parsed but makes no sense.
var ErrBadFlag = errors.New("invalid flag value")

// Config represents the command-line parameters for the application.
type Config struct {
	Renderer string
	Rows     int
	Cols     int
	Delay    time.Duration
	Policy   string
	Duration time.Duration
	Seed     int64
	Pattern  string
	Odds     string
	At       string
	CellSize int
	Report   int
	Clear    bool
}

// NewConfig returns a Config populated with the console defaults.
func NewConfig() *Config {
	return &Config{
		Renderer: "console",
		Rows:     50,
		Cols:     150,
		Delay:    time.Second,
		Policy:   "extinct",
		Duration: 3 * time.Minute,
		Pattern:  "soup",
		Odds:     "2x3",
		At:       "0,0",
		CellSize: 10,
		Clear:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "front end: "+strings.Join(core.Backends(), ", "))
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells (at least 3)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells (at least 3)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.StringVar(&c.Policy, "policy", c.Policy, "termination policy: forever, extinct or timed")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "run length for the timed policy")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "random, soup or one of: "+strings.Join(life.PatternNames(), ", "))
	fs.StringVar(&c.Odds, "odds", c.Odds, "AxB: a cell starts alive when a 1-in-A and a 1-in-B draw both hit")
	fs.StringVar(&c.At, "at", c.At, "row,col offset for named patterns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixel size of a cell in windowed renderers")
	fs.IntVar(&c.Report, "report", c.Report, "log the population every N generations (0 disables)")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "console: clear the screen before each frame (-clear=false appends frames)")
}

// Presets hold the per-renderer defaults, keyed by flag name.
var Presets = map[string]map[string]string{
	"console": {
		"rows": "50", "cols": "150", "delay": "1s",
		"policy": "extinct", "pattern": "soup", "odds": "2x3", "clear": "true",
	},
	"term": {
		"rows": "50", "cols": "100", "delay": "10ms",
		"policy": "forever", "pattern": "random", "odds": "2x4",
	},
	"window": {
		"rows": "100", "cols": "150", "delay": "75ms", "cell": "10",
		"policy": "timed", "duration": "3m", "pattern": "random", "odds": "2x3",
	},
	"sdl": {
		"rows": "100", "cols": "150", "delay": "75ms", "cell": "10",
		"policy": "timed", "duration": "3m", "pattern": "random", "odds": "2x3",
	},
}

// ApplyPreset fills every flag the user did not set with the defaults of the
// selected renderer. It must run after fs.Parse.
func (c *Config) ApplyPreset(fs *flag.FlagSet) error {
	preset, ok := Presets[c.Renderer]
	if !ok {
		return nil
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, value := range preset {
		if set[name] {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("preset %s: %w", c.Renderer, err)
		}
	}
	return nil
}

// ParseOdds reads an "AxB" pair of positive integers.
func ParseOdds(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: odds %q, want AxB", ErrBadFlag, s)
	}
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA != nil || errB != nil || x <= 0 || y <= 0 {
		return 0, 0, fmt.Errorf("%w: odds %q, want two positive integers", ErrBadFlag, s)
	}
	return x, y, nil
}

// ParseAt reads a "row,col" offset.
func ParseAt(s string) (int, int, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: offset %q, want row,col", ErrBadFlag, s)
	}
	row, errR := strconv.Atoi(strings.TrimSpace(r))
	col, errC := strconv.Atoi(strings.TrimSpace(c))
	if errR != nil || errC != nil {
		return 0, 0, fmt.Errorf("%w: offset %q, want row,col", ErrBadFlag, s)
	}
	return row, col, nil
}

// Seeder builds the seeding strategy named by Pattern.
func (c *Config) Seeder() (life.Seeder, error) {
	a, b, err := ParseOdds(c.Odds)
	if err != nil {
		return nil, err
	}
	random := life.Random{Seed: c.Seed, A: a, B: b}
	switch c.Pattern {
	case "random":
		return random, nil
	case "soup":
		return life.Soup(c.Rows, c.Cols, random), nil
	}
	p, err := life.LookupPattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	row, col, err := ParseAt(c.At)
	if err != nil {
		return nil, err
	}
	return life.Placed{Pattern: p, Row: row, Col: col}, nil
}

// Grid allocates and seeds the initial generation.
func (c *Config) Grid() (*life.Grid, error) {
	g, err := life.NewGrid(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	s, err := c.Seeder()
	if err != nil {
		return nil, err
	}
	s.Fill(g)
	return g, nil
}

// LoopOptions translates the timing and policy flags.
func (c *Config) LoopOptions(logger *log.Logger) (loop.Options, error) {
	policy, err := loop.ParsePolicy(c.Policy)
	if err != nil {
		return loop.Options{}, err
	}
	if c.Delay < 0 {
		return loop.Options{}, fmt.Errorf("%w: negative delay %s", ErrBadFlag, c.Delay)
	}
	if policy == loop.UntilElapsed && c.Duration <= 0 {
		return loop.Options{}, fmt.Errorf("%w: timed policy needs a positive -duration", ErrBadFlag)
	}
	if c.Report < 0 {
		return loop.Options{}, fmt.Errorf("%w: negative report interval", ErrBadFlag)
	}
	return loop.Options{
		Delay:       c.Delay,
		Policy:      policy,
		Limit:       c.Duration,
		ReportEvery: c.Report,
		Logger:      logger,
	}, nil
}

// Settings returns the presentation options for the selected front end.
func (c *Config) Settings() core.Settings {
	cell := c.CellSize
	if cell <= 0 {
		cell = 1
	}
	return core.Settings{
		Title:       "Conway's Game of Life",
		CellSize:    cell,
		ClearScreen: c.Clear,
	}
}

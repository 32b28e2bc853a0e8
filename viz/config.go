package viz

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazeviz/logging"
	"github.com/katalvlaran/mazeviz/maze"
)

// ErrConfig is returned when a Config fails validation.
var ErrConfig = errors.New("viz: invalid config")

// Config holds everything the window needs. There are no flags or
// environment variables; callers start from DefaultConfig.
type Config struct {
	// Title is the window title.
	Title string
	// Rows, Cols, Sparseness, Start and Goal feed maze.New.
	Rows, Cols  int
	Sparseness  float64
	Start, Goal maze.Location
	// Intervals are the selectable delays between steps.
	Intervals []time.Duration
	// DefaultInterval must be one of Intervals.
	DefaultInterval time.Duration
	// CellSize is the minimum edge of a drawn cell, in device-independent pixels.
	CellSize float32
	// Palette colors each display state.
	Palette Palette
	// Logging configures the logger built by cmd/mazeviz.
	Logging logging.Config
}

// DefaultConfig returns a 10×10 maze with sparseness 0.2 from (0,0) to (9,9),
// step intervals of 1 to 5 seconds defaulting to 2.
func DefaultConfig() Config {
	mo := maze.DefaultOptions()

	return Config{
		Title:           "Maze Solving",
		Rows:            mo.Rows,
		Cols:            mo.Cols,
		Sparseness:      mo.Sparseness,
		Start:           mo.Start,
		Goal:            mo.Goal,
		Intervals:       []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second, 5 * time.Second},
		DefaultInterval: 2 * time.Second,
		CellSize:        48,
		Palette:         DefaultPalette(),
		Logging:         logging.DefaultConfig(),
	}
}

// MazeOptions converts the maze fields to maze.New options.
func (c Config) MazeOptions() []maze.Option {
	return []maze.Option{
		maze.WithSize(c.Rows, c.Cols),
		maze.WithSparseness(c.Sparseness),
		maze.WithStart(c.Start),
		maze.WithGoal(c.Goal),
	}
}

// Validate checks the presentation fields; maze fields are checked by maze.New.
func (c Config) Validate() error {
	if len(c.Intervals) == 0 {
		return fmt.Errorf("%w: no intervals", ErrConfig)
	}
	found := false
	for _, d := range c.Intervals {
		if d <= 0 {
			return fmt.Errorf("%w: interval %v must be positive", ErrConfig, d)
		}
		if d == c.DefaultInterval {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: default interval %v not among choices", ErrConfig, c.DefaultInterval)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v", ErrConfig, c.CellSize)
	}

	return nil
}

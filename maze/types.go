// Package maze defines core types, options, and sentinel errors
// for random grid mazes.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Sentinel errors for maze construction.
var (
	// ErrInvalidSize indicates rows or columns below 1.
	ErrInvalidSize = errors.New("maze: grid must have at least one row and one column")
	// ErrSparseness indicates a blocked-cell probability outside [0,1].
	ErrSparseness = errors.New("maze: sparseness must be within [0,1]")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrStartIsGoal indicates start and goal share a cell.
	ErrStartIsGoal = errors.New("maze: start and goal must differ")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrGlyph indicates an unknown character in a textual grid.
	ErrGlyph = errors.New("maze: unknown cell glyph")
	// ErrStartCount indicates a textual grid without exactly one start.
	ErrStartCount = errors.New("maze: grid must contain exactly one start")
	// ErrGoalCount indicates a textual grid without exactly one goal.
	ErrGoalCount = errors.New("maze: grid must contain exactly one goal")
)

// Cell is the state of a single grid cell. The first four values describe
// the maze itself; the rest are presentation states layered on top of it.
type Cell rune

const (
	Empty    Cell = ' '
	Blocked  Cell = 'X'
	Start    Cell = 'S'
	Goal     Cell = 'G'
	Explored Cell = 'E'
	Current  Cell = 'C'
	Frontier Cell = 'F'
	Path     Cell = '*'
)

// String returns the single-glyph form of c.
func (c Cell) String() string {
	return string(c)
}

// Traversable reports whether a search may enter a cell in state c.
func (c Cell) Traversable() bool {
	return c != Blocked
}

// Location is a 0-indexed (row, column) coordinate.
type Location struct {
	Row    int
	Column int
}

// String renders l as "(row, column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

// Option configures maze generation via functional arguments.
// Invalid values are recorded and surfaced by New.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Rows and Cols are the grid dimensions.
	Rows, Cols int
	// Sparseness is the probability that any cell is Blocked.
	Sparseness float64
	// Start and Goal are forced traversable after filling.
	Start, Goal Location
	// Rand is the random source; nil means a freshly seeded one per call.
	Rand *rand.Rand

	goalSet bool
	err     error
}

// DefaultOptions returns Options with:
//   - a 10×10 grid
//   - Sparseness 0.2
//   - Start (0,0) and Goal (9,9); without WithGoal the goal follows
//     WithSize to the bottom-right corner (Rows-1, Cols-1)
//   - an unseeded (time-seeded) random source
func DefaultOptions() Options {
	return Options{
		Rows:       10,
		Cols:       10,
		Sparseness: 0.2,
		Start:      Location{0, 0},
		Goal:       Location{9, 9},
	}
}

// WithSize sets grid dimensions. Values below 1 yield ErrInvalidSize.
func WithSize(rows, cols int) Option {
	return func(o *Options) {
		if rows < 1 || cols < 1 {
			o.err = fmt.Errorf("%w: got %d×%d", ErrInvalidSize, rows, cols)
			return
		}
		o.Rows, o.Cols = rows, cols
	}
}

// WithSparseness sets the blocked-cell probability.
func WithSparseness(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrSparseness, p)
			return
		}
		o.Sparseness = p
	}
}

// WithStart sets the start location.
func WithStart(l Location) Option {
	return func(o *Options) {
		o.Start = l
	}
}

// WithGoal sets the goal location.
func WithGoal(l Location) Option {
	return func(o *Options) {
		o.Goal = l
		o.goalSet = true
	}
}

// WithRand sets a custom random source, e.g. a seeded one in tests.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// validate checks cross-field constraints once all options are applied.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Rows < 1 || o.Cols < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrInvalidSize, o.Rows, o.Cols)
	}
	if !o.goalSet {
		o.Goal = Location{o.Rows - 1, o.Cols - 1}
	}
	if !inBounds(o.Start, o.Rows, o.Cols) {
		return fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, o.Start, o.Rows, o.Cols)
	}
	if !inBounds(o.Goal, o.Rows, o.Cols) {
		return fmt.Errorf("%w: goal %v in %d×%d grid", ErrOutOfBounds, o.Goal, o.Rows, o.Cols)
	}
	if o.Start == o.Goal {
		return ErrStartIsGoal
	}

	return nil
}

func (o *Options) random() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func inBounds(l Location, rows, cols int) bool {
	return l.Row >= 0 && l.Row < rows && l.Column >= 0 && l.Column < cols
}

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazeviz/frontier"
	"github.com/katalvlaran/mazeviz/maze"
)

// Sentinel errors for search setup.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownStrategy is returned for a Strategy other than DFS or BFS.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrStartBlocked is returned when the start cell is not traversable.
	ErrStartBlocked = errors.New("search: start cell is blocked")

	// ErrGoalBlocked is returned when the goal cell is not traversable.
	ErrGoalBlocked = errors.New("search: goal cell is blocked")

	// ErrNoPath is returned by Result.PathOrErr when the goal was unreachable.
	ErrNoPath = errors.New("search: no path found")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// DFS uses a stack frontier; paths are not necessarily shortest.
	DFS Strategy = iota
	// BFS uses a queue frontier; paths have the minimum number of cells.
	BFS
)

// String returns "DFS" or "BFS".
func (s Strategy) String() string {
	switch s {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DFS":
		return DFS, nil
	case "BFS":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (s Strategy) frontierKind() (frontier.Kind, error) {
	switch s {
	case DFS:
		return frontier.LIFO, nil
	case BFS:
		return frontier.FIFO, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// Status is the progress of a search run.
type Status int

const (
	// InProgress means the frontier still holds cells.
	InProgress Status = iota
	// Found means the goal was popped and a path reconstructed.
	Found
	// NoPath means the frontier emptied without reaching the goal.
	NoPath
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Found:
		return "found"
	case NoPath:
		return "no path"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool {
	return s == Found || s == NoPath
}

// Step records one expansion.
//
// Explored and Expanded are cumulative and append-only across a run; the
// slices handed out are capacity-limited so callers cannot disturb later steps.
type Step struct {
	// Index counts expansions from 0.
	Index int
	// Current is the cell just popped from the frontier.
	Current maze.Location
	// Discovered lists neighbors pushed during this step, in successor order.
	Discovered []maze.Location
	// Explored lists every cell marked seen so far (start first), in marking order.
	Explored []maze.Location
	// Expanded lists every popped cell so far, Current last.
	Expanded []maze.Location
	// Frontier is the frontier contents after this step, in insertion order.
	Frontier []maze.Location
	// Status is InProgress, Found or NoPath.
	Status Status
	// Path is the start→goal path when Status is Found, nil otherwise.
	Path []maze.Location
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Ctx allows Run to stop early; Stepper.Next ignores it.
	Ctx context.Context

	// OnPush is called when a cell enters the frontier.
	OnPush func(l maze.Location)

	// OnPop is called when a cell leaves the frontier, before the goal test.
	OnPop func(l maze.Location)

	// Start and Goal override the grid's own locations when set.
	Start, Goal *maze.Location
}

// DefaultOptions returns Options with a background context, no-op hooks,
// and the grid's own start and goal.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnPush: func(maze.Location) {},
		OnPop:  func(maze.Location) {},
	}
}

// WithContext sets a custom context for Run cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(l maze.Location)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier pop.
func WithOnPop(fn func(l maze.Location)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithStart searches from l instead of the grid's start.
func WithStart(l maze.Location) Option {
	return func(o *Options) {
		o.Start = &l
	}
}

// WithGoal searches for l instead of the grid's goal.
func WithGoal(l maze.Location) Option {
	return func(o *Options) {
		o.Goal = &l
	}
}

// Result is the outcome of a drained search.
type Result struct {
	Strategy Strategy
	Status   Status
	// Path runs start→goal; empty when Status is NoPath.
	Path []maze.Location
	// Expanded is the pop order.
	Expanded []maze.Location
	// Explored is the marking order of every seen cell.
	Explored []maze.Location
	// Steps is the number of expansions performed.
	Steps int
}

// PathOrErr returns the path, or ErrNoPath when the goal was unreachable.
func (r *Result) PathOrErr() ([]maze.Location, error) {
	if r.Status != Found {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, r.Strategy)
	}

	return r.Path, nil
}

package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mazeviz/frontier"
	"github.com/katalvlaran/mazeviz/maze"
)

// Stepper owns the mutable state of one search run. It is not safe for
// concurrent use; one goroutine pulls steps.
type Stepper struct {
	grid     *maze.Grid
	strategy Strategy
	opts     Options
	start    maze.Location
	goal     maze.Location

	frontier frontier.Frontier[*Node]
	seen     map[maze.Location]bool
	explored []maze.Location
	expanded []maze.Location
	index    int
	status   Status
	path     []maze.Location
}

// New prepares a search of g with the given strategy. The frontier is seeded
// with the start cell, which is marked explored.
// Returns ErrGridNil, ErrUnknownStrategy, maze.ErrOutOfBounds for overrides
// outside the grid, or ErrStartBlocked / ErrGoalBlocked.
func New(g *maze.Grid, strategy Strategy, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	kind, err := strategy.frontierKind()
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, goal := g.Start(), g.Goal()
	if o.Start != nil {
		start = *o.Start
	}
	if o.Goal != nil {
		goal = *o.Goal
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", maze.ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", maze.ErrOutOfBounds, goal)
	}
	if !g.Traversable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.Traversable(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	n := g.Rows() * g.Cols()
	s := &Stepper{
		grid:     g,
		strategy: strategy,
		opts:     o,
		start:    start,
		goal:     goal,
		frontier: frontier.New[*Node](kind),
		seen:     make(map[maze.Location]bool, n),
		explored: make([]maze.Location, 0, n),
	}
	s.push(&Node{Location: start})

	return s, nil
}

// Strategy returns the strategy this run uses.
func (s *Stepper) Strategy() Strategy { return s.strategy }

// Status returns the current status.
func (s *Stepper) Status() Status { return s.status }

// Done reports whether the run has terminated.
func (s *Stepper) Done() bool { return s.status.Terminal() }

// Path returns the found path, or nil.
func (s *Stepper) Path() []maze.Location { return s.path }

// Next performs one expansion and returns its Step. Once a terminal step
// (Found or NoPath) has been returned, Next returns (Step{}, false).
// Complexity: O(1) amortized per call, plus O(frontier) for the snapshot.
func (s *Stepper) Next() (Step, bool) {
	if s.status.Terminal() {
		return Step{}, false
	}
	// InProgress implies a non-empty frontier: the start is pushed by New and
	// an expansion that empties it ends the run as NoPath.
	node, _ := s.frontier.Pop()
	s.opts.OnPop(node.Location)
	s.expanded = append(s.expanded, node.Location)

	step := Step{Index: s.index, Current: node.Location}
	s.index++

	if node.Location == s.goal {
		s.status = Found
		s.path = NodeToPath(node)
		step.Path = s.path
	} else {
		for _, child := range s.grid.Successors(node.Location) {
			if s.seen[child] {
				continue
			}
			s.push(&Node{Location: child, Parent: node, Depth: node.Depth + 1})
			step.Discovered = append(step.Discovered, child)
		}
		if s.frontier.Empty() {
			s.status = NoPath
		}
	}

	step.Status = s.status
	step.Explored = s.explored[:len(s.explored):len(s.explored)]
	step.Expanded = s.expanded[:len(s.expanded):len(s.expanded)]
	step.Frontier = s.frontierLocations()

	return step, true
}

// Steps returns the remaining steps as a lazy sequence.
func (s *Stepper) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := s.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// push marks l seen and adds it to the frontier.
func (s *Stepper) push(n *Node) {
	s.seen[n.Location] = true
	s.explored = append(s.explored, n.Location)
	s.opts.OnPush(n.Location)
	s.frontier.Push(n)
}

func (s *Stepper) frontierLocations() []maze.Location {
	nodes := s.frontier.Items()
	out := make([]maze.Location, len(nodes))
	for i, n := range nodes {
		out[i] = n.Location
	}

	return out
}

// Run drains a search of g to completion.
// Returns the setup errors of New, or ctx.Err() if the context set by
// WithContext is done before the run terminates.
func Run(g *maze.Grid, strategy Strategy, opts ...Option) (*Result, error) {
	s, err := New(g, strategy, opts...)
	if err != nil {
		return nil, err
	}
	ctx := s.opts.Ctx
	for !s.Done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if _, ok := s.Next(); !ok {
			break
		}
	}

	return &Result{
		Strategy: strategy,
		Status:   s.status,
		Path:     s.path,
		Expanded: s.expanded,
		Explored: s.explored,
		Steps:    s.index,
	}, nil
}

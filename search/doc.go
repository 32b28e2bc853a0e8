// Package search explores a maze.Grid from its start to its goal with
// depth-first or breadth-first search, one expansion at a time.
//
// What
//
//   - New(g, strategy, opts...) seeds a Stepper: the start cell is pushed and
//     marked explored.
//   - Stepper.Next pops one cell, tests it against the goal, and pushes every
//     unseen traversable successor. Each call returns a Step with the popped
//     cell, the newly discovered cells, the cumulative explored and expanded
//     lists, a frontier snapshot, and the run status.
//   - Stepper.Steps exposes the same sequence as an iter.Seq for range loops.
//   - Run drains a Stepper and returns a Result.
//
// Strategies
//
//   - DFS: stack frontier (LIFO). Explores one branch before backtracking.
//     Implemented iteratively, so large mazes never hit call-depth limits.
//   - BFS: queue frontier (FIFO). Every cell at distance k is expanded before
//     any at k+1, so the reported path has the minimum number of cells.
//
// Determinism
//
//	Successors come from maze.Grid.Successors in the fixed order down, up,
//	right, left. Given an identical grid, two runs of one strategy produce
//	identical step sequences and paths.
//
// Termination
//
//   - Found: the goal is popped; Step.Path holds start→goal.
//   - NoPath: an expansion leaves the frontier empty without the goal ever
//     being popped. This is a status, not an error; Result.PathOrErr turns it
//     into ErrNoPath for callers that want one.
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, grid start and goal.
//   - WithContext(ctx):  lets Run abort with ctx.Err().
//   - WithOnPush(fn):    hook on every frontier push.
//   - WithOnPop(fn):     hook on every frontier pop.
//   - WithStart(l), WithGoal(l): override the grid's endpoints.
//
// Errors
//
//   - ErrGridNil, ErrUnknownStrategy, ErrStartBlocked, ErrGoalBlocked.
//   - maze.ErrOutOfBounds for overrides outside the grid.
//   - context errors from Run.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N) expansions, each O(1) plus the O(frontier) snapshot.
//   - Memory: O(N) for the frontier, seen set and parent links.
package search

// Package maze builds rectangular grid mazes for uninformed search demos.
//
// What:
//
//   - Grid is an immutable rows×cols matrix of cells with one Start and one Goal.
//   - New fills a grid uniformly at random: each cell is Blocked with
//     probability Sparseness, then Start and Goal are forced traversable.
//   - FromRows parses a glyph picture (' ' or '.', 'X' or '#', 'S', 'G') for fixtures.
//   - Successors yields orthogonal traversable neighbors in the fixed order
//     down, up, right, left.
//   - Components, Connected and Solvable analyse reachability without
//     changing the grid.
//   - Mark overlays a path; String renders glyph rows.
//
// Solvability:
//
//	New never retries. A maze whose Goal is cut off from its Start is a valid
//	result; searches over it terminate without a path.
//
// Options:
//
//   - DefaultOptions(): 10×10, Sparseness 0.2, Start (0,0), Goal (9,9), time-seeded source.
//   - WithSize(rows, cols)   rows, cols ≥ 1. Unless WithGoal is given, the goal
//     moves to (rows-1, cols-1), so any size with rows×cols ≥ 2 succeeds; a 1×1
//     grid has no room for both endpoints and yields ErrStartIsGoal.
//   - WithSparseness(p)      p ∈ [0,1]; NaN is rejected.
//   - WithStart(l), WithGoal(l).
//   - WithRand(r)            deterministic generation in tests.
//
// Errors:
//
//   - ErrInvalidSize, ErrSparseness, ErrOutOfBounds, ErrStartIsGoal from New.
//   - ErrInvalidSize, ErrNonRectangular, ErrGlyph, ErrStartCount, ErrGoalCount from FromRows.
//
// Complexity:
//
//   - New, FromRows, Components, Connected: O(rows×cols).
//   - Successors, InBounds, At: O(1).
package maze

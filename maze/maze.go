package maze

import (
	"fmt"
	"strings"
)

// successorOffsets lists (row, column) deltas in successor order:
// down, up, right, left. This order is the only tie-breaker searches see.
var successorOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rows×cols maze with exactly one Start and one Goal.
// It is immutable once built; Mark and Clone return copies.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	start      Location
	goal       Location
}

// New generates a random Grid.
// Returns ErrInvalidSize, ErrSparseness, ErrOutOfBounds or ErrStartIsGoal
// for invalid options.
// Complexity: O(rows×cols).
func New(opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rnd := o.random()
	g := newGrid(o.Rows, o.Cols)
	for r := 0; r < o.Rows; r++ {
		for c := 0; c < o.Cols; c++ {
			if rnd.Float64() < o.Sparseness {
				g.cells[r][c] = Blocked
			}
		}
	}
	g.start, g.goal = o.Start, o.Goal
	g.cells[o.Start.Row][o.Start.Column] = Start
	g.cells[o.Goal.Row][o.Goal.Column] = Goal

	return g, nil
}

// FromRows builds a Grid from glyph rows: ' ' or '.' empty, 'X' or '#' blocked,
// 'S' start, 'G' goal.
// Returns ErrInvalidSize, ErrNonRectangular, ErrGlyph, ErrStartCount or ErrGoalCount.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	w := len([]rune(rows[0]))
	g := newGrid(len(rows), w)
	starts, goals := 0, 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		for c, ch := range runes {
			loc := Location{r, c}
			switch ch {
			case ' ', '.':
				g.cells[r][c] = Empty
			case 'X', '#':
				g.cells[r][c] = Blocked
			case 'S':
				g.cells[r][c] = Start
				g.start = loc
				starts++
			case 'G':
				g.cells[r][c] = Goal
				g.goal = loc
				goals++
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrGlyph, ch, loc)
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGoalCount, goals)
	}

	return g, nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Empty
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start location.
func (g *Grid) Start() Location { return g.start }

// Goal returns the goal location.
func (g *Grid) Goal() Location { return g.goal }

// IsGoal reports whether l is the goal.
func (g *Grid) IsGoal(l Location) bool { return l == g.goal }

// InBounds reports whether l lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(l Location) bool {
	return inBounds(l, g.rows, g.cols)
}

// At returns the cell at l. l must be in bounds.
func (g *Grid) At(l Location) Cell {
	return g.cells[l.Row][l.Column]
}

// Traversable reports whether l is in bounds and not Blocked.
func (g *Grid) Traversable(l Location) bool {
	return g.InBounds(l) && g.At(l).Traversable()
}

// Successors returns the traversable orthogonal neighbors of l in the fixed
// order down, up, right, left.
// Complexity: O(1).
func (g *Grid) Successors(l Location) []Location {
	out := make([]Location, 0, len(successorOffsets))
	for _, d := range successorOffsets {
		n := Location{l.Row + d[0], l.Column + d[1]}
		if g.Traversable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := newGrid(g.rows, g.cols)
	for r := range g.cells {
		copy(cp.cells[r], g.cells[r])
	}
	cp.start, cp.goal = g.start, g.goal

	return cp
}

// Mark returns a copy of g with every path cell set to Path,
// Start and Goal preserved.
func (g *Grid) Mark(path []Location) *Grid {
	cp := g.Clone()
	for _, l := range path {
		if cp.InBounds(l) {
			cp.cells[l.Row][l.Column] = Path
		}
	}
	cp.cells[g.start.Row][g.start.Column] = Start
	cp.cells[g.goal.Row][g.goal.Column] = Goal

	return cp
}

// String renders the grid as one line of glyphs per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for _, row := range g.cells {
		for _, c := range row {
			sb.WriteRune(rune(c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}

	return n
}

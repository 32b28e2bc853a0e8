package viz

import (
	"github.com/katalvlaran/mazeviz/maze"
	"github.com/katalvlaran/mazeviz/search"
)

// Board tracks what each cell should look like while a search animates over
// a maze. It is the display model only; it never drives the search.
type Board struct {
	base     *maze.Grid
	cells    [][]maze.Cell
	current  *maze.Location
	frontier []maze.Location
	explored []maze.Location
	status   search.Status
	path     []maze.Location
}

// NewBoard returns a Board showing g with no search state.
func NewBoard(g *maze.Grid) *Board {
	b := &Board{base: g}
	b.Reset()

	return b
}

// Reset clears every search state back to the base maze.
func (b *Board) Reset() {
	rows, cols := b.base.Rows(), b.base.Cols()
	b.cells = make([][]maze.Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]maze.Cell, cols)
		for c := range b.cells[r] {
			b.cells[r][c] = b.base.At(maze.Location{Row: r, Column: c})
		}
	}
	b.current = nil
	b.frontier = nil
	b.explored = nil
	b.status = search.InProgress
	b.path = nil
}

// Apply folds one search step into the board:
//   - the previous current cell becomes Explored
//   - the popped cell becomes Current
//   - discovered cells become Frontier
//   - on Found the path is drawn
//
// Start and Goal always keep their own state.
func (b *Board) Apply(step search.Step) {
	if b.current != nil {
		b.set(*b.current, maze.Explored)
	}
	cur := step.Current
	b.current = &cur
	b.set(cur, maze.Current)
	for _, l := range step.Discovered {
		b.set(l, maze.Frontier)
	}
	b.frontier = step.Frontier
	b.explored = step.Explored
	b.status = step.Status
	if step.Status == search.Found {
		b.path = step.Path
		for _, l := range step.Path {
			b.set(l, maze.Path)
		}
	}
	b.set(b.base.Start(), maze.Start)
	b.set(b.base.Goal(), maze.Goal)
}

func (b *Board) set(l maze.Location, c maze.Cell) {
	if b.base.InBounds(l) {
		b.cells[l.Row][l.Column] = c
	}
}

// Grid returns the maze being shown.
func (b *Board) Grid() *maze.Grid { return b.base }

// At returns the display state of l.
func (b *Board) At(l maze.Location) maze.Cell { return b.cells[l.Row][l.Column] }

// Status returns the status of the last applied step.
func (b *Board) Status() search.Status { return b.status }

// Path returns the path once found.
func (b *Board) Path() []maze.Location { return b.path }

// FrontierLabels renders the frontier in insertion order.
func (b *Board) FrontierLabels() []string { return labels(b.frontier) }

// ExploredLabels renders the discovered cells in marking order. The start is
// explored from the outset and is not listed.
func (b *Board) ExploredLabels() []string {
	start := b.base.Start()
	out := make([]string, 0, len(b.explored))
	for _, l := range b.explored {
		if l != start {
			out = append(out, l.String())
		}
	}

	return out
}

// String renders the display states as glyph rows.
func (b *Board) String() string {
	out := make([]byte, 0, len(b.cells)*(len(b.cells[0])+1))
	for _, row := range b.cells {
		for _, c := range row {
			out = append(out, string(c)...)
		}
		out = append(out, '\n')
	}

	return string(out)
}

func labels(ls []maze.Location) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}

	return out
}

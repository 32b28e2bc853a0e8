package search_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazeviz/maze"
	"github.com/katalvlaran/mazeviz/search"
)

// randomGrids returns n seeded mazes of varying size and density.
func randomGrids(t *testing.T, n int) []*maze.Grid {
	t.Helper()
	rnd := rand.New(rand.NewSource(2024))
	grids := make([]*maze.Grid, 0, n)
	for len(grids) < n {
		rows, cols := 2+rnd.Intn(14), 2+rnd.Intn(14)
		g, err := maze.New(
			maze.WithSize(rows, cols),
			maze.WithSparseness(rnd.Float64()*0.45),
			maze.WithGoal(maze.Location{Row: rows - 1, Column: cols - 1}),
			maze.WithRand(rnd),
		)
		if err != nil {
			t.Fatalf("maze.New: %v", err)
		}
		grids = append(grids, g)
	}

	return grids
}

// validPath checks endpoints, adjacency and traversability.
func validPath(g *maze.Grid, p []maze.Location) bool {
	if len(p) == 0 || p[0] != g.Start() || p[len(p)-1] != g.Goal() {
		return false
	}
	for i, l := range p {
		if !g.Traversable(l) {
			return false
		}
		if i == 0 {
			continue
		}
		dr, dc := l.Row-p[i-1].Row, l.Column-p[i-1].Column
		if dr*dr+dc*dc != 1 {
			return false
		}
	}

	return true
}

// TestProperties_RandomGrids checks, over many random mazes:
//   - both strategies agree with Solvable on whether a path exists
//   - every reported path is a valid start→goal walk
//   - BFS never reports a longer path than DFS
func TestProperties_RandomGrids(t *testing.T) {
	for i, g := range randomGrids(t, 300) {
		dfs, err := search.Run(g, search.DFS)
		if err != nil {
			t.Fatalf("grid %d DFS: %v", i, err)
		}
		bfs, err := search.Run(g, search.BFS)
		if err != nil {
			t.Fatalf("grid %d BFS: %v", i, err)
		}

		want := search.NoPath
		if g.Solvable() {
			want = search.Found
		}
		if dfs.Status != want || bfs.Status != want {
			t.Fatalf("grid %d: status DFS=%v BFS=%v; want %v\n%s", i, dfs.Status, bfs.Status, want, g)
		}
		if want == search.NoPath {
			if len(dfs.Path) != 0 || len(bfs.Path) != 0 {
				t.Errorf("grid %d: unreachable goal but non-empty path", i)
			}
			continue
		}
		if !validPath(g, dfs.Path) || !validPath(g, bfs.Path) {
			t.Fatalf("grid %d: invalid path\nDFS %v\nBFS %v\n%s", i, dfs.Path, bfs.Path, g)
		}
		if len(bfs.Path) > len(dfs.Path) {
			t.Errorf("grid %d: BFS path %d cells > DFS path %d cells", i, len(bfs.Path), len(dfs.Path))
		}
	}
}

// TestProperties_Deterministic runs each strategy twice per grid and requires
// identical step sequences.
func TestProperties_Deterministic(t *testing.T) {
	collect := func(g *maze.Grid, st search.Strategy) []search.Step {
		s, err := search.New(g, st)
		if err != nil {
			t.Fatal(err)
		}
		var steps []search.Step
		for step := range s.Steps() {
			steps = append(steps, step)
		}

		return steps
	}
	for i, g := range randomGrids(t, 40) {
		for _, st := range strategies {
			a, b := collect(g, st), collect(g, st)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("grid %d %v: step sequences differ", i, st)
			}
			if last := a[len(a)-1]; !last.Status.Terminal() {
				t.Fatalf("grid %d %v: last step status %v", i, st, last.Status)
			}
		}
	}
}

// TestProperties_NoCellPushedTwice: Explored never repeats a location.
func TestProperties_NoCellPushedTwice(t *testing.T) {
	for i, g := range randomGrids(t, 60) {
		for _, st := range strategies {
			res, err := search.Run(g, st)
			if err != nil {
				t.Fatal(err)
			}
			seen := make(map[maze.Location]bool, len(res.Explored))
			for _, l := range res.Explored {
				if seen[l] {
					t.Fatalf("grid %d %v: %v pushed twice", i, st, l)
				}
				seen[l] = true
			}
			if len(res.Expanded) != res.Steps {
				t.Errorf("grid %d %v: %d expanded vs %d steps", i, st, len(res.Expanded), res.Steps)
			}
		}
	}
}

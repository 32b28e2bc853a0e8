package maze

// Components finds all orthogonally connected regions of traversable cells.
// Each region lists its locations in discovery order; regions are ordered by
// their first cell in row-major order.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]Location {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Location

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			l0 := Location{r, c}
			if !g.At(l0).Traversable() || seen[g.index(l0)] {
				continue
			}
			seen[g.index(l0)] = true
			comp := []Location{l0}
			for qi := 0; qi < len(comp); qi++ {
				for _, n := range g.Successors(comp[qi]) {
					if i := g.index(n); !seen[i] {
						seen[i] = true
						comp = append(comp, n)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether b is reachable from a through traversable cells.
// Out-of-bounds or blocked endpoints are never connected.
func (g *Grid) Connected(a, b Location) bool {
	if !g.Traversable(a) || !g.Traversable(b) {
		return false
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(a)] = true
	queue := []Location{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, n := range g.Successors(u) {
			if i := g.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}

// Solvable reports whether the goal is reachable from the start.
func (g *Grid) Solvable() bool {
	return g.Connected(g.start, g.goal)
}

// index maps l to a row-major index.
func (g *Grid) index(l Location) int {
	return l.Row*g.cols + l.Column
}

package search

import "github.com/katalvlaran/mazeviz/maze"

// Node is a frontier entry: a location plus the parent link that discovered it.
// Parent links are only followed for path reconstruction.
type Node struct {
	Location maze.Location
	Parent   *Node
	Depth    int
}

// NodeToPath follows parent links from n back to the root and returns the
// locations root→n. A nil node yields nil.
// Complexity: O(depth).
func NodeToPath(n *Node) []maze.Location {
	if n == nil {
		return nil
	}
	path := make([]maze.Location, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.Location)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

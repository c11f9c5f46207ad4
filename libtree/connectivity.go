package libtree

import (
	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// dfsWalker marks every vertex reachable from a start vertex using adjacency matrix row scans.
type dfsWalker struct {
	X       *Graph
	visited []bool
	count   int
}

func (w *dfsWalker) visit(v int) {
	w.visited[v] = true
	w.count++
	for u := 0; u < w.X.n; u++ {
		if u != v && !w.visited[u] && w.X.at(v, u) {
			w.visit(u)
		}
	}
}

// IsConnected returns true if every vertex is reachable from vertex 0.
// A graph with no vertices is not connected.
func IsConnected(X *Graph) bool {
	if X == nil || X.n == 0 {
		return false
	}
	w := dfsWalker{
		X:       X,
		visited: make([]bool, X.n),
	}
	w.visit(0)
	return w.count == X.n
}

// IsTree returns true if X is connected and has exactly N-1 edges.
func IsTree(X *Graph) bool {
	return X != nil && X.n > 0 && X.NumEdges() == X.n-1 && IsConnected(X)
}

func checkTree(X *Graph) error {
	if X == nil {
		return gotree.ErrNilGraph
	}
	if !IsTree(X) {
		return errors.Wrapf(gotree.ErrNotATree, "%d vertices, %d edges, connected=%v", X.n, X.NumEdges(), IsConnected(X))
	}
	return nil
}

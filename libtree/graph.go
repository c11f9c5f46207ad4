package libtree

import (
	"sort"
	"sync"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// Graph is a simple undirected graph on a fixed number of vertices, stored as a symmetric boolean adjacency matrix.
//
// Every mutator writes (i,j) and (j,i) together so the matrix stays symmetric.
// Diagonal cells carry no meaning.
type Graph struct {
	n   int
	adj []bool // n*n, row major
}

var graphPool = sync.Pool{
	New: func() any {
		return &Graph{}
	},
}

// CheckNumVerts returns an error unless n is a valid vertex count (0..gotree.MaxVerts).
func CheckNumVerts(n int) error {
	if n < 0 {
		return errors.Wrapf(gotree.ErrBadEnumParam, "vertex count %d", n)
	}
	if n > gotree.MaxVerts {
		return errors.Wrapf(gotree.ErrTooManyVertices, "vertex count %d (max %d)", n, gotree.MaxVerts)
	}
	return nil
}

// NewGraph returns an edgeless graph on n vertices.
// Like make(), it panics if n is out of range; check untrusted counts with CheckNumVerts first.
func NewGraph(n int) *Graph {
	if err := CheckNumVerts(n); err != nil {
		panic(err)
	}
	X := graphPool.Get().(*Graph)
	X.init(n)
	return X
}

// NewGraphFromMatrix returns a graph on n vertices copied from m, which must be exactly n x n and symmetric.
// Diagonal cells are copied as is.
func NewGraphFromMatrix(n int, m [][]bool) (*Graph, error) {
	if err := CheckNumVerts(n); err != nil {
		return nil, err
	}
	if len(m) != n {
		return nil, errors.Wrapf(gotree.ErrDimensionMismatch, "got %d rows, expected %d", len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return nil, errors.Wrapf(gotree.ErrDimensionMismatch, "row %d has %d cells, expected %d", i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, errors.Wrapf(gotree.ErrAsymmetricMatrix, "cell (%d,%d) is %v but (%d,%d) is %v", i, j, m[i][j], j, i, m[j][i])
			}
		}
	}
	X := NewGraph(n)
	for i, row := range m {
		copy(X.adj[i*n:(i+1)*n], row)
	}
	return X, nil
}

// NewGraphFromEdges returns a graph on n vertices containing the given edges.
func NewGraphFromEdges(n int, edges ...Edge) (*Graph, error) {
	if err := CheckNumVerts(n); err != nil {
		return nil, err
	}
	X := NewGraph(n)
	for _, e := range edges {
		if err := X.AddEdge(e); err != nil {
			X.Reclaim()
			return nil, err
		}
	}
	return X, nil
}

func (X *Graph) init(n int) {
	X.n = n
	sz := n * n
	if cap(X.adj) < sz {
		X.adj = make([]bool, sz)
	} else {
		X.adj = X.adj[:sz]
		for i := range X.adj {
			X.adj[i] = false
		}
	}
}

// Reclaim recycles this Graph into a pool for reuse.
// Caller asserts that no more references to this instance will persist.
func (X *Graph) Reclaim() {
	if X != nil {
		graphPool.Put(X)
	}
}

// Clone returns an independent copy of this graph.
func (X *Graph) Clone() *Graph {
	Y := NewGraph(X.n)
	copy(Y.adj, X.adj)
	return Y
}

// AssignFrom makes this graph an exact copy of src.
func (X *Graph) AssignFrom(src *Graph) {
	X.init(src.n)
	copy(X.adj, src.adj)
}

// NumVerts returns the vertex count N.
func (X *Graph) NumVerts() int {
	return X.n
}

// Get returns true if the edge (i,j) is present.
func (X *Graph) Get(i, j int) (bool, error) {
	if i < 0 || i >= X.n || j < 0 || j >= X.n {
		return false, errors.Wrapf(gotree.ErrIndexOutOfRange, "cell (%d,%d) of %d x %d graph", i, j, X.n, X.n)
	}
	return X.adj[i*X.n+j], nil
}

// at is Get without bounds checks.
func (X *Graph) at(i, j int) bool {
	return X.adj[i*X.n+j]
}

func (X *Graph) set(i, j int, val bool) {
	X.adj[i*X.n+j] = val
	X.adj[j*X.n+i] = val
}

// HasEdge returns true if e is present; an edge with an out-of-range endpoint is never present.
func (X *Graph) HasEdge(e Edge) bool {
	if !e.inRange(X.n) {
		return false
	}
	return X.at(e.A, e.B)
}

// Row returns a copy of row i of the adjacency matrix.
func (X *Graph) Row(i int) ([]bool, error) {
	if i < 0 || i >= X.n {
		return nil, errors.Wrapf(gotree.ErrIndexOutOfRange, "row %d of %d x %d graph", i, X.n, X.n)
	}
	row := make([]bool, X.n)
	copy(row, X.adj[i*X.n:(i+1)*X.n])
	return row, nil
}

// Matrix returns a copy of the adjacency matrix.
func (X *Graph) Matrix() [][]bool {
	m := make([][]bool, X.n)
	for i := range m {
		m[i], _ = X.Row(i)
	}
	return m
}

// AddEdge sets (a,b) and (b,a).  Adding an edge already present has no effect.
func (X *Graph) AddEdge(e Edge) error {
	if !e.inRange(X.n) {
		return errors.Wrapf(gotree.ErrInvalidEdge, "add %v to graph with %d vertices", e, X.n)
	}
	X.set(e.A, e.B, true)
	return nil
}

// RemoveEdge clears (a,b) and (b,a).  Removing an absent edge has no effect.
func (X *Graph) RemoveEdge(e Edge) error {
	if !e.inRange(X.n) {
		return errors.Wrapf(gotree.ErrInvalidEdge, "remove %v from graph with %d vertices", e, X.n)
	}
	X.set(e.A, e.B, false)
	return nil
}

// Plus returns a copy of this graph with e added.
func (X *Graph) Plus(e Edge) (*Graph, error) {
	Y := X.Clone()
	if err := Y.AddEdge(e); err != nil {
		Y.Reclaim()
		return nil, err
	}
	return Y, nil
}

// Minus returns a copy of this graph with e removed.
func (X *Graph) Minus(e Edge) (*Graph, error) {
	Y := X.Clone()
	if err := Y.RemoveEdge(e); err != nil {
		Y.Reclaim()
		return nil, err
	}
	return Y, nil
}

func (X *Graph) checkSameSize(other *Graph) error {
	if other == nil {
		return gotree.ErrNilGraph
	}
	if X.n != other.n {
		return errors.Wrapf(gotree.ErrSizeMismatch, "%d vs %d vertices", X.n, other.n)
	}
	return nil
}

// UnionWith adds every edge present in other.
func (X *Graph) UnionWith(other *Graph) error {
	if err := X.checkSameSize(other); err != nil {
		return err
	}
	for i := 0; i < X.n; i++ {
		for j := 0; j < X.n; j++ {
			if other.at(i, j) {
				X.set(i, j, true)
			}
		}
	}
	return nil
}

// DifferenceWith removes every edge present in other.
func (X *Graph) DifferenceWith(other *Graph) error {
	if err := X.checkSameSize(other); err != nil {
		return err
	}
	for i := 0; i < X.n; i++ {
		for j := 0; j < X.n; j++ {
			if other.at(i, j) {
				X.set(i, j, false)
			}
		}
	}
	return nil
}

// Equals returns true if every matrix cell matches (labeled equality, not isomorphism).
func (X *Graph) Equals(other *Graph) (bool, error) {
	if err := X.checkSameSize(other); err != nil {
		return false, err
	}
	for i, v := range X.adj {
		if other.adj[i] != v {
			return false, nil
		}
	}
	return true, nil
}

// Complement flips every cell, diagonal included.
func (X *Graph) Complement() {
	for i, v := range X.adj {
		X.adj[i] = !v
	}
}

// NumEdges returns the number of edges (diagonal cells are ignored).
func (X *Graph) NumEdges() int {
	count := 0
	for i := 0; i < X.n; i++ {
		for j := i + 1; j < X.n; j++ {
			if X.at(i, j) {
				count++
			}
		}
	}
	return count
}

// Edges returns the edges of this graph in canonical order.
func (X *Graph) Edges() EdgeList {
	var edges EdgeList
	for i := 0; i < X.n; i++ {
		for j := i + 1; j < X.n; j++ {
			if X.at(i, j) {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	return edges
}

// AdjacencyList returns, for each vertex, its neighbors in ascending order.
func (X *Graph) AdjacencyList() [][]int {
	list := make([][]int, X.n)
	for i := 0; i < X.n; i++ {
		for j := 0; j < X.n; j++ {
			if i != j && X.at(i, j) {
				list[i] = append(list[i], j)
			}
		}
	}
	return list
}

// Degrees returns the sorted degree sequence of this graph.
func (X *Graph) Degrees() []int {
	deg := make([]int, X.n)
	for i, nbrs := range X.AdjacencyList() {
		deg[i] = len(nbrs)
	}
	sort.Ints(deg)
	return deg
}

// Weights returns an N x N matrix holding edge for each present cell and noEdge otherwise.
//
// This is the per-link parameter layout expected by waveguide / transport simulations.
func (X *Graph) Weights(edge, noEdge [2]float64) [][][2]float64 {
	w := make([][][2]float64, X.n)
	for i := range w {
		w[i] = make([][2]float64, X.n)
		for j := range w[i] {
			if X.at(i, j) {
				w[i][j] = edge
			} else {
				w[i][j] = noEdge
			}
		}
	}
	return w
}

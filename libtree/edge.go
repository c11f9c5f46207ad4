package libtree

import (
	"fmt"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// Edge is an unordered pair of zero-based vertex indices.
//
// An Edge is a free-standing value: its endpoints are only checked against a vertex count when applied to a Graph.
type Edge struct {
	A, B int
}

// E is shorthand for Edge{a, b}.
func E(a, b int) Edge {
	return Edge{A: a, B: b}
}

// At returns the i-th endpoint (i is 0 or 1).
func (e Edge) At(i int) (int, error) {
	switch i {
	case 0:
		return e.A, nil
	case 1:
		return e.B, nil
	}
	return 0, errors.Wrapf(gotree.ErrIndexOutOfRange, "edge endpoint %d", i)
}

// Normalized returns this edge with the smaller endpoint first.
func (e Edge) Normalized() Edge {
	if e.B < e.A {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Equals returns true if {A,B} == {other.A,other.B} as sets.
func (e Edge) Equals(other Edge) bool {
	return e.Normalized() == other.Normalized()
}

// Less orders edges lexicographically on their normalized endpoints.
func (e Edge) Less(other Edge) bool {
	a, b := e.Normalized(), other.Normalized()
	return a.A < b.A || (a.A == b.A && a.B < b.B)
}

// inRange reports if both endpoints are in [0, n).
func (e Edge) inRange(n int) bool {
	return e.A >= 0 && e.A < n && e.B >= 0 && e.B < n
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// EdgeList is a sequence of edges
type EdgeList []Edge

func (es EdgeList) Len() int           { return len(es) }
func (es EdgeList) Swap(i, j int)      { es[i], es[j] = es[j], es[i] }
func (es EdgeList) Less(i, j int) bool { return es[i].Less(es[j]) }

// CompleteEdges returns all edges of the complete graph on n vertices in canonical (lexicographic) order.
func CompleteEdges(n int) EdgeList {
	edges := make(EdgeList, 0, gotree.NumPossibleEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j})
		}
	}
	return edges
}

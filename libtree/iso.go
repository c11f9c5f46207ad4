package libtree

import (
	"bytes"
	"math"
	"sort"
	"strings"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// IsoFunc decides if two graphs are isomorphic.
type IsoFunc func(X, Y *Graph) (bool, error)

// IsoFuncFor returns the isomorphism test for the given strategy.
func IsoFuncFor(strategy gotree.IsoStrategy) IsoFunc {
	switch strategy {
	case gotree.IsoBruteForce:
		return IsIsomorphicBrute
	case gotree.IsoCanonical:
		return IsIsomorphicCanonical
	default:
		return IsIsomorphicHash
	}
}

// IsIsomorphic decides if X and Y are isomorphic using the given strategy.
func IsIsomorphic(X, Y *Graph, strategy gotree.IsoStrategy) (bool, error) {
	return IsoFuncFor(strategy)(X, Y)
}

// IsIsomorphicBrute tries every relabeling of X's vertices (in lexicographic order) and returns true on the first
// relabeling that makes X equal to Y.  Valid for any graph; cost is O(N! * N^2) so N is capped at gotree.MaxBruteForceVerts.
func IsIsomorphicBrute(X, Y *Graph) (bool, error) {
	if X == nil || Y == nil {
		return false, gotree.ErrNilGraph
	}
	if err := X.checkSameSize(Y); err != nil {
		return false, err
	}
	N := X.n
	if N > gotree.MaxBruteForceVerts {
		return false, errors.Wrapf(gotree.ErrTooManyVertices, "permutation search on %d vertices (max %d)", N, gotree.MaxBruteForceVerts)
	}

	// Relabeling preserves edge count and degree sequence, so a mismatch settles it
	if X.NumEdges() != Y.NumEdges() {
		return false, nil
	}
	dX, dY := X.Degrees(), Y.Degrees()
	for i := range dX {
		if dX[i] != dY[i] {
			return false, nil
		}
	}

	perm := make([]int, N)
	for i := range perm {
		perm[i] = i
	}

	P := NewGraph(N)
	defer P.Reclaim()

	for {
		P.init(N)
		for i := 0; i < N; i++ {
			for j := i; j < N; j++ {
				if X.at(i, j) {
					P.set(perm[i], perm[j], true)
				}
			}
		}
		if same, _ := P.Equals(Y); same {
			return true, nil
		}
		if !nextPermutation(perm, intLess) {
			break
		}
	}
	return false, nil
}

// rootedHash returns HashBase plus the sum of log(child hash) over the children of v, where children are the
// neighbors of v other than parent.  Child hashes are summed in ascending order so that isomorphic rooted
// subtrees always produce bit-identical values.
//
// adj must describe a tree, otherwise the recursion does not terminate.
func rootedHash(adj [][]int, v, parent int) float64 {
	var childBuf [16]float64
	children := childBuf[:0]
	for _, u := range adj[v] {
		if u != parent {
			children = append(children, rootedHash(adj, u, v))
		}
	}
	sort.Float64s(children)

	hash := gotree.HashBase
	for _, h := range children {
		hash += math.Log(h)
	}
	return hash
}

// RootedHash returns the canonical rooted hash of this tree rooted at the given vertex.
func (X *Graph) RootedHash(root int) (float64, error) {
	if err := checkTree(X); err != nil {
		return 0, err
	}
	if root < 0 || root >= X.n {
		return 0, errors.Wrapf(gotree.ErrIndexOutOfRange, "root %d of %d vertices", root, X.n)
	}
	return rootedHash(X.AdjacencyList(), root, -1), nil
}

// InvariantHash returns the smallest rooted hash over all roots of this tree.
// Isomorphic trees have identical invariant hashes.
func (X *Graph) InvariantHash() (float64, error) {
	if err := checkTree(X); err != nil {
		return 0, err
	}
	return invariantHash(X.AdjacencyList()), nil
}

func invariantHash(adj [][]int) float64 {
	best := math.Inf(1)
	for root := range adj {
		if h := rootedHash(adj, root, -1); h < best {
			best = h
		}
	}
	return best
}

// IsIsomorphicHash roots X at vertex 0, then tries every vertex of Y as a root and returns true on the first
// matching rooted hash.  Both graphs must be trees (gotree.ErrNotATree otherwise).
//
// A hash match is not a proof of isomorphism: distinct shapes could in principle produce the same sum.
// Use IsIsomorphicCanonical when an exact answer is required.
func IsIsomorphicHash(X, Y *Graph) (bool, error) {
	if X == nil || Y == nil {
		return false, gotree.ErrNilGraph
	}
	if err := X.checkSameSize(Y); err != nil {
		return false, err
	}
	if err := checkTree(X); err != nil {
		return false, err
	}
	if err := checkTree(Y); err != nil {
		return false, err
	}
	return isoHash(X.AdjacencyList(), Y.AdjacencyList()), nil
}

func isoHash(adjX, adjY [][]int) bool {
	hashX := rootedHash(adjX, 0, -1)
	for root := range adjY {
		if rootedHash(adjY, root, -1) == hashX {
			return true
		}
	}
	return false
}

// treeCenters returns the one or two centers of the tree described by adj (found by repeatedly stripping leaves).
func treeCenters(adj [][]int) []int {
	N := len(adj)
	if N <= 2 {
		centers := make([]int, N)
		for i := range centers {
			centers[i] = i
		}
		return centers
	}

	degree := make([]int, N)
	var leaves []int
	for v, nbrs := range adj {
		degree[v] = len(nbrs)
		if degree[v] <= 1 {
			leaves = append(leaves, v)
		}
	}

	removed := make([]bool, N)
	remaining := N
	for remaining > 2 && len(leaves) > 0 {
		for _, leaf := range leaves {
			removed[leaf] = true
		}
		remaining -= len(leaves)
		var next []int
		for _, leaf := range leaves {
			for _, u := range adj[leaf] {
				if removed[u] {
					continue
				}
				degree[u]--
				if degree[u] == 1 {
					next = append(next, u)
				}
			}
		}
		leaves = next
	}

	var centers []int
	for v := range adj {
		if !removed[v] {
			centers = append(centers, v)
		}
	}
	return centers
}

// encodeRooted returns the nested-parentheses encoding of the subtree at v, with child encodings sorted.
func encodeRooted(adj [][]int, v, parent int) string {
	var parts []string
	for _, u := range adj[v] {
		if u != parent {
			parts = append(parts, encodeRooted(adj, u, v))
		}
	}
	sort.Strings(parts)
	return "(" + strings.Join(parts, "") + ")"
}

func canonicalForm(adj [][]int) []byte {
	var best string
	for i, c := range treeCenters(adj) {
		enc := encodeRooted(adj, c, -1)
		if i == 0 || enc < best {
			best = enc
		}
	}
	return []byte(best)
}

// CanonicalForm returns an exact canonical encoding of this tree: two trees are isomorphic iff their encodings are equal.
//
// The encoding is the sorted nested-parentheses form of the tree rooted at its center (the smaller of the two
// encodings when the tree is bicentral).
func (X *Graph) CanonicalForm() ([]byte, error) {
	if err := checkTree(X); err != nil {
		return nil, err
	}
	return canonicalForm(X.AdjacencyList()), nil
}

// IsIsomorphicCanonical compares invariant hashes as a fast reject, then confirms with exact canonical forms.
// Both graphs must be trees (gotree.ErrNotATree otherwise).
func IsIsomorphicCanonical(X, Y *Graph) (bool, error) {
	if X == nil || Y == nil {
		return false, gotree.ErrNilGraph
	}
	if err := X.checkSameSize(Y); err != nil {
		return false, err
	}
	if err := checkTree(X); err != nil {
		return false, err
	}
	if err := checkTree(Y); err != nil {
		return false, err
	}
	adjX, adjY := X.AdjacencyList(), Y.AdjacencyList()
	if invariantHash(adjX) != invariantHash(adjY) {
		return false, nil
	}
	return bytes.Equal(canonicalForm(adjX), canonicalForm(adjY)), nil
}

package libtree

import (
	"bytes"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// spanningTreeWalker steps through every selection of N-1 edges out of the complete graph on N vertices,
// applying each selection to a single Graph in place.  A selection of N-1 edges is a tree iff it is connected.
type spanningTreeWalker struct {
	edges   EdgeList // complete graph edges in canonical order
	sel     []bool   // current selection, exactly N-1 entries set
	applied []bool   // selection currently reflected in X
	X       *Graph
	steps   int64 // selections visited
	trees   int64 // selections that were spanning trees
}

func newSpanningTreeWalker(n int) *spanningTreeWalker {
	w := &spanningTreeWalker{
		edges: CompleteEdges(n),
		X:     NewGraph(n),
	}
	w.sel = make([]bool, len(w.edges))
	w.applied = make([]bool, len(w.edges))
	for i := 0; i < n-1; i++ {
		w.sel[i] = true
	}
	return w
}

// apply brings X in line with sel, touching only the edges that changed since the previous selection.
func (w *spanningTreeWalker) apply() {
	for i, want := range w.sel {
		if w.applied[i] == want {
			continue
		}
		e := w.edges[i]
		w.X.set(e.A, e.B, want)
		w.applied[i] = want
	}
}

// walk calls onTree with X set to each spanning tree, stopping when onTree returns false or selections run out.
// X is owned by the walker: onTree must copy it to retain it.
func (w *spanningTreeWalker) walk(onTree func(X *Graph) bool) {
	for {
		w.apply()
		w.steps++
		if IsConnected(w.X) {
			w.trees++
			if !onTree(w.X) {
				return
			}
		}
		if !nextPermutation(w.sel, boolGreater) {
			return
		}
	}
}

// ForEachSpanningTree calls onTree for each labeled spanning tree of the complete graph on n vertices.
// The Graph passed to onTree is reused between calls; onTree returns false to stop.
func ForEachSpanningTree(n int, onTree func(X *Graph) bool) error {
	if err := checkEnumVerts(n); err != nil {
		return err
	}
	w := newSpanningTreeWalker(n)
	w.walk(onTree)
	w.X.Reclaim()
	return nil
}

func checkEnumVerts(n int) error {
	if n < 1 {
		return errors.Wrapf(gotree.ErrBadEnumParam, "vertex count %d", n)
	}
	if n > gotree.MaxEnumVerts {
		return errors.Wrapf(gotree.ErrTooManyVertices, "enumerating trees on %d vertices (max %d)", n, gotree.MaxEnumVerts)
	}
	return nil
}

// EnumStats reports the work done by an Enumerator.
type EnumStats struct {
	Selections int64 // edge selections visited
	Trees      int64 // selections that were spanning trees
	Compares   int64 // isomorphism tests performed
	Stopped    bool  // set if the enumeration stopped early at EnumOpts.StopAt
}

// Enumerator produces one representative per isomorphism class of trees on a fixed number of vertices.
type Enumerator struct {
	opts  gotree.EnumOpts
	reps  []*Graph
	stats EnumStats

	repAdj   [][][]int  // adjacency lists of reps (hash strategy)
	repForms [][]byte   // canonical forms of reps (canonical strategy)
	index    *HashIndex // invariant hash => rep slots (canonical strategy)
}

func NewEnumerator(opts gotree.EnumOpts) (*Enumerator, error) {
	if err := checkEnumVerts(opts.NumVerts); err != nil {
		return nil, err
	}
	if opts.Strategy == gotree.IsoBruteForce && opts.NumVerts > gotree.MaxBruteForceVerts {
		return nil, errors.Wrapf(gotree.ErrTooManyVertices, "brute force enumeration on %d vertices", opts.NumVerts)
	}
	en := &Enumerator{
		opts: opts,
	}
	if opts.Strategy == gotree.IsoCanonical {
		en.index = NewHashIndex()
	}
	return en, nil
}

// EnumTrees returns one representative per isomorphism class of trees on opts.NumVerts vertices.
func EnumTrees(opts gotree.EnumOpts) ([]*Graph, error) {
	en, err := NewEnumerator(opts)
	if err != nil {
		return nil, err
	}
	return en.Run()
}

// Stats returns the work done by the last Run().
func (en *Enumerator) Stats() EnumStats {
	return en.stats
}

// Run walks every spanning tree candidate and returns the representatives in discovery order.
// The returned graphs are owned by the caller.
func (en *Enumerator) Run() ([]*Graph, error) {
	en.reps = nil // previous results belong to the caller
	en.repAdj = en.repAdj[:0]
	en.repForms = en.repForms[:0]
	en.stats = EnumStats{}
	if en.index != nil {
		en.index.Clear()
	}

	w := newSpanningTreeWalker(en.opts.NumVerts)
	defer w.X.Reclaim()

	var err error
	w.walk(func(X *Graph) bool {
		_, err = en.tryAdd(X)
		if err != nil {
			return false
		}
		if en.opts.StopAt > 0 && len(en.reps) >= en.opts.StopAt {
			en.stats.Stopped = true
			return false
		}
		return true
	})
	en.stats.Selections = w.steps
	en.stats.Trees = w.trees
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("enumerated %d trees on %d vertices (strategy %v, %d selections, %d spanning trees, %d compares, stopped=%v)",
		len(en.reps), en.opts.NumVerts, en.opts.Strategy, en.stats.Selections, en.stats.Trees, en.stats.Compares, en.stats.Stopped)

	if en.opts.CrossCheck {
		if known, ok := gotree.UnlabeledTreeCount(en.opts.NumVerts); ok && int64(len(en.reps)) != known {
			return en.reps, errors.Wrapf(gotree.ErrCountMismatch, "found %d trees on %d vertices, expected %d", len(en.reps), en.opts.NumVerts, known)
		}
	}

	return en.reps, nil
}

// tryAdd appends a copy of X to the representatives if it is not isomorphic to any of them.
func (en *Enumerator) tryAdd(X *Graph) (bool, error) {
	switch en.opts.Strategy {

	case gotree.IsoBruteForce:
		for _, rep := range en.reps {
			en.stats.Compares++
			same, err := IsIsomorphicBrute(X, rep)
			if err != nil || same {
				return false, err
			}
		}

	case gotree.IsoCanonical:
		adj := X.AdjacencyList()
		key := invariantHash(adj)
		form := canonicalForm(adj)
		for _, slot := range en.index.Lookup(key) {
			en.stats.Compares++
			if bytes.Equal(en.repForms[slot], form) {
				return false, nil
			}
		}
		en.index.Put(key, len(en.reps))
		en.repForms = append(en.repForms, form)

	default:
		adj := X.AdjacencyList()
		for _, repAdj := range en.repAdj {
			en.stats.Compares++
			if isoHash(adj, repAdj) {
				return false, nil
			}
		}
		en.repAdj = append(en.repAdj, adj)
	}

	en.reps = append(en.reps, X.Clone())
	return true, nil
}

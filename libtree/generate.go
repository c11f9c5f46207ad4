package libtree

import (
	"math/rand"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// RandomGraphs returns opts.Count graphs on opts.NumVerts vertices where each ordered pair (j,k), j != k,
// becomes an edge when rng.Intn(opts.EdgeRatio) < 3.  The same seed always yields the same graphs.
func RandomGraphs(opts gotree.GenOpts) ([]*Graph, error) {
	if opts.NumVerts < 1 || opts.NumVerts > gotree.MaxVerts || opts.Count < 0 || opts.EdgeRatio < 1 {
		return nil, errors.Wrapf(gotree.ErrBadEnumParam, "gen opts %+v", opts)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	graphs := make([]*Graph, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		X := NewGraph(opts.NumVerts)
		for j := 0; j < opts.NumVerts; j++ {
			for k := 0; k < opts.NumVerts; k++ {
				if j != k && rng.Intn(opts.EdgeRatio) < 3 {
					X.set(j, k, true)
				}
			}
		}
		graphs = append(graphs, X)
	}
	return graphs, nil
}

// GroupedRing returns a graph of numVerts / groupSize rings of groupSize vertices each.
// The first vertex of every ring links to the first vertex of every other ring, and ring i links
// its second vertex to the next-to-last vertex of ring i+1 (wrapping around).
func GroupedRing(numVerts, groupSize int) (*Graph, error) {
	if groupSize < 3 || numVerts < groupSize || numVerts > gotree.MaxVerts || numVerts%groupSize != 0 {
		return nil, errors.Wrapf(gotree.ErrBadEnumParam, "%d vertices in groups of %d", numVerts, groupSize)
	}
	groupCount := numVerts / groupSize
	X := NewGraph(numVerts)

	// in-group rings
	for i := 0; i < groupSize; i++ {
		for g := 0; g < groupCount; g++ {
			X.set(g*groupSize+i, g*groupSize+(i+1)%groupSize, true)
		}
	}

	// inter-group hubs
	for gi := 0; gi < groupCount; gi++ {
		for gj := 0; gj < groupCount; gj++ {
			if gi != gj {
				X.set(gi*groupSize, gj*groupSize, true)
			}
		}
	}

	// chain links
	for g := 0; g < groupCount; g++ {
		next := (g + 1) % groupCount
		if next != g {
			X.set(g*groupSize+1, next*groupSize+groupSize-2, true)
		}
	}
	return X, nil
}

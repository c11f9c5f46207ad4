package catalog_test

import (
	"os"
	"path"
	"testing"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/2x3systems/gotree/libtree/catalog"
	"github.com/stretchr/testify/require"
)

func TestCatalogBasics(t *testing.T) {
	dir, err := os.MkdirTemp("", "junk*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	opts := gotree.CatalogOpts{
		DbPathName: path.Join(dir, "TestCatalogBasics"),
	}
	cat, err := catalog.OpenCatalog(opts)
	require.NoError(t, err)
	require.False(t, cat.IsReadOnly())

	for n := 1; n <= 7; n++ {
		trees, err := libtree.EnumTrees(gotree.EnumOpts{NumVerts: n})
		require.NoError(t, err)
		for _, X := range trees {
			added, err := cat.TryAddGraph(X)
			require.NoError(t, err)
			require.True(t, added, X.Expr())
			added, err = cat.TryAddGraph(X)
			require.NoError(t, err)
			require.False(t, added, X.Expr())
		}
	}

	// a relabeled path is already present
	added, err := cat.TryAddGraph(libtree.MustParseGraphExpr("5: 3-0-4-1-2"))
	require.NoError(t, err)
	require.False(t, added)

	_, err = cat.TryAddGraph(libtree.MustParseGraphExpr("4: 0-1-2-0"))
	require.ErrorIs(t, err, gotree.ErrNotATree)

	for n := 1; n <= 7; n++ {
		count, err := cat.NumTrees(n)
		require.NoError(t, err)
		known, _ := gotree.UnlabeledTreeCount(n)
		require.Equal(t, known, count, "n=%d", n)
	}
	require.NoError(t, cat.Close())

	// reopen read-only and read the trees back
	opts.ReadOnly = true
	cat, err = catalog.OpenCatalog(opts)
	require.NoError(t, err)
	defer cat.Close()
	require.True(t, cat.IsReadOnly())

	_, err = cat.TryAddGraph(libtree.NewGraph(1))
	require.ErrorIs(t, err, gotree.ErrBadCatalogParam)

	hits := make(chan *libtree.Graph, 16)
	go func() {
		err = cat.Select(7, hits)
		close(hits)
	}()

	var trees []*libtree.Graph
	for X := range hits {
		require.True(t, libtree.IsTree(X))
		for _, Y := range trees {
			same, err := libtree.IsIsomorphicCanonical(X, Y)
			require.NoError(t, err)
			require.False(t, same)
		}
		trees = append(trees, X)
	}
	require.NoError(t, err)
	require.Len(t, trees, 11)
}

func TestCatalogInMemory(t *testing.T) {
	cat, err := catalog.OpenCatalog(gotree.CatalogOpts{})
	require.NoError(t, err)
	defer cat.Close()

	count, err := libtree.StreamSpanningTrees(6).AddTo(cat, libtree.AddGraphOpts{}).PullAll()
	require.NoError(t, err)
	require.Equal(t, 6, count)

	n, err := cat.NumTrees(6)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	n, err = cat.NumTrees(5)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	_, err = catalog.OpenCatalog(gotree.CatalogOpts{ReadOnly: true})
	require.ErrorIs(t, err, gotree.ErrBadCatalogParam)
}

func pathOn(numVerts int) *libtree.Graph {
	X := libtree.NewGraph(numVerts)
	for i := 1; i < numVerts; i++ {
		X.AddEdge(libtree.E(i-1, i))
	}
	return X
}

func TestCatalogVertexBounds(t *testing.T) {
	cat, err := catalog.OpenCatalog(gotree.CatalogOpts{})
	require.NoError(t, err)
	defer cat.Close()

	// largest storable tree round trips
	big := pathOn(catalog.MaxCatalogVerts)
	added, err := cat.TryAddGraph(big)
	require.NoError(t, err)
	require.True(t, added)

	hits := make(chan *libtree.Graph, 4)
	require.NoError(t, cat.Select(catalog.MaxCatalogVerts, hits))
	close(hits)
	var got []*libtree.Graph
	for X := range hits {
		got = append(got, X)
	}
	require.Len(t, got, 1)
	require.Equal(t, big.Expr(), got[0].Expr())

	// one vertex more would alias another vertex count in the key space
	_, err = cat.TryAddGraph(pathOn(catalog.MaxCatalogVerts + 1))
	require.ErrorIs(t, err, gotree.ErrBadCatalogParam)
	count, err := cat.NumTrees(0)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	_, err = cat.NumTrees(catalog.MaxCatalogVerts + 1)
	require.ErrorIs(t, err, gotree.ErrBadCatalogParam)
	require.ErrorIs(t, cat.Select(-1, make(chan *libtree.Graph)), gotree.ErrBadCatalogParam)
}

func TestTreeRecord(t *testing.T) {
	X := libtree.MustParseGraphExpr("7: 0-1-2-3, 1-4-5, 4-6")
	record, err := catalog.MarshalTree(X)
	require.NoError(t, err)

	Y, hash, err := catalog.UnmarshalTree(record)
	require.NoError(t, err)
	require.Equal(t, X.Expr(), Y.Expr())
	wantHash, _ := X.InvariantHash()
	require.Equal(t, wantHash, hash)

	for cut := 0; cut < len(record); cut++ {
		_, _, err = catalog.UnmarshalTree(record[:cut])
		require.ErrorIs(t, err, gotree.ErrBadEncoding, "cut at %d", cut)
	}

	_, err = catalog.MarshalTree(libtree.MustParseGraphExpr("3: 0-1-2-0"))
	require.ErrorIs(t, err, gotree.ErrNotATree)
}

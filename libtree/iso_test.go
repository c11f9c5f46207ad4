package libtree_test

import (
	"math"
	"testing"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/stretchr/testify/require"
)

var allStrategies = []gotree.IsoStrategy{
	gotree.IsoRootedHash,
	gotree.IsoBruteForce,
	gotree.IsoCanonical,
}

func TestIsoSimple(t *testing.T) {
	path := libtree.MustParseGraphExpr("4: 0-1-2-3")
	pathRelabeled := libtree.MustParseGraphExpr("4: 2-0-3-1")
	star := libtree.MustParseGraphExpr("4: 2-0, 2-1, 2-3")

	for _, strategy := range allStrategies {
		same, err := libtree.IsIsomorphic(path, pathRelabeled, strategy)
		require.NoError(t, err, strategy.String())
		require.True(t, same, strategy.String())

		same, err = libtree.IsIsomorphic(path, star, strategy)
		require.NoError(t, err, strategy.String())
		require.False(t, same, strategy.String())

		same, err = libtree.IsIsomorphic(star, star, strategy)
		require.NoError(t, err, strategy.String())
		require.True(t, same, strategy.String())
	}
}

// Every pair of labeled trees on 5 vertices gets the same verdict from every strategy.
func TestIsoStrategiesAgreeExhaustive(t *testing.T) {
	var trees []*libtree.Graph
	err := libtree.ForEachSpanningTree(5, func(X *libtree.Graph) bool {
		trees = append(trees, X.Clone())
		return true
	})
	require.NoError(t, err)
	require.Len(t, trees, 125) // 5^3

	matches := 0
	for _, X := range trees {
		for _, Y := range trees {
			brute, err := libtree.IsIsomorphicBrute(X, Y)
			require.NoError(t, err)
			hash, err := libtree.IsIsomorphicHash(X, Y)
			require.NoError(t, err)
			canonic, err := libtree.IsIsomorphicCanonical(X, Y)
			require.NoError(t, err)
			require.Equal(t, brute, hash, "%v vs %v", X.Expr(), Y.Expr())
			require.Equal(t, brute, canonic, "%v vs %v", X.Expr(), Y.Expr())
			if brute {
				matches++
			}
		}
	}

	// 60 paths, 5 stars, 60 of the third shape
	require.Equal(t, 60*60+5*5+60*60, matches)
}

// Sampled pairs of labeled trees on 6 vertices get the same verdict from every strategy.
func TestIsoStrategiesAgree(t *testing.T) {
	var trees []*libtree.Graph
	err := libtree.ForEachSpanningTree(6, func(X *libtree.Graph) bool {
		trees = append(trees, X.Clone())
		return true
	})
	require.NoError(t, err)
	require.Len(t, trees, 1296) // 6^4

	// Sample pairs so the brute force side stays quick
	for i := 0; i < len(trees); i += 37 {
		for j := 0; j < len(trees); j += 53 {
			X, Y := trees[i], trees[j]
			brute, err := libtree.IsIsomorphicBrute(X, Y)
			require.NoError(t, err)
			hash, err := libtree.IsIsomorphicHash(X, Y)
			require.NoError(t, err)
			canonic, err := libtree.IsIsomorphicCanonical(X, Y)
			require.NoError(t, err)
			require.Equal(t, brute, hash, "%v vs %v", X.Expr(), Y.Expr())
			require.Equal(t, brute, canonic, "%v vs %v", X.Expr(), Y.Expr())
		}
	}
}

func TestIsoErrors(t *testing.T) {
	cycle := libtree.MustParseGraphExpr("4: 0-1-2-3-0")
	path := libtree.MustParseGraphExpr("4: 0-1-2-3")

	_, err := libtree.IsIsomorphicHash(cycle, path)
	require.ErrorIs(t, err, gotree.ErrNotATree)
	_, err = libtree.IsIsomorphicHash(path, cycle)
	require.ErrorIs(t, err, gotree.ErrNotATree)
	_, err = libtree.IsIsomorphicCanonical(cycle, path)
	require.ErrorIs(t, err, gotree.ErrNotATree)

	// brute force handles any graph
	same, err := libtree.IsIsomorphicBrute(cycle, libtree.MustParseGraphExpr("4: 0-2-1-3-0"))
	require.NoError(t, err)
	require.True(t, same)
	same, err = libtree.IsIsomorphicBrute(cycle, path)
	require.NoError(t, err)
	require.False(t, same)

	for _, strategy := range allStrategies {
		_, err = libtree.IsIsomorphic(path, libtree.MustParseGraphExpr("5: 0-1-2-3-4"), strategy)
		require.ErrorIs(t, err, gotree.ErrSizeMismatch, strategy.String())
		_, err = libtree.IsIsomorphic(path, nil, strategy)
		require.ErrorIs(t, err, gotree.ErrNilGraph, strategy.String())
	}

	big := libtree.NewGraph(gotree.MaxBruteForceVerts + 1)
	_, err = libtree.IsIsomorphicBrute(big, big.Clone())
	require.ErrorIs(t, err, gotree.ErrTooManyVertices)
}

func TestRootedHash(t *testing.T) {
	single := libtree.NewGraph(1)
	h, err := single.RootedHash(0)
	require.NoError(t, err)
	require.Equal(t, gotree.HashBase, h)

	// Rooted at the center of a 3-path, two leaf children
	path3 := libtree.MustParseGraphExpr("3: 0-1-2")
	h, err = path3.RootedHash(1)
	require.NoError(t, err)
	require.InDelta(t, gotree.HashBase+2*math.Log(gotree.HashBase), h, 1e-12)

	// Rooted at an end: a chain of two
	h, err = path3.RootedHash(0)
	require.NoError(t, err)
	require.InDelta(t, gotree.HashBase+math.Log(gotree.HashBase+math.Log(gotree.HashBase)), h, 1e-12)

	_, err = path3.RootedHash(3)
	require.ErrorIs(t, err, gotree.ErrIndexOutOfRange)

	hX, err := libtree.MustParseGraphExpr("5: 0-1-2, 1-3-4").InvariantHash()
	require.NoError(t, err)
	hY, err := libtree.MustParseGraphExpr("5: 2-4, 4-0, 4-3-1").InvariantHash()
	require.NoError(t, err)
	require.Equal(t, hX, hY)
}

func TestCanonicalForm(t *testing.T) {
	form := func(expr string) string {
		b, err := libtree.MustParseGraphExpr(expr).CanonicalForm()
		require.NoError(t, err)
		return string(b)
	}

	require.Equal(t, "()", form("1:"))
	require.Equal(t, "(())", form("2: 0-1"))
	require.Equal(t, "(()()())", form("4: 3-0, 3-1, 3-2"))
	require.Equal(t, form("6: 0-1-2-3-4-5"), form("6: 5-3-1-0-2-4"))
	require.NotEqual(t, form("6: 0-1-2-3-4-5"), form("6: 0-1-2-3-4, 2-5"))

	_, err := libtree.MustParseGraphExpr("3: 0-1").CanonicalForm()
	require.ErrorIs(t, err, gotree.ErrNotATree)
}

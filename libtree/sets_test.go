package libtree_test

import (
	"testing"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/stretchr/testify/require"
)

func TestCanonicSet(t *testing.T) {
	set := libtree.NewCanonicSet()
	defer set.Close()

	for _, expr := range []string{"5: 0-1-2-3-4", "5: 0-1, 0-2, 0-3, 0-4", "5: 0-1-2-3, 1-4"} {
		added, err := set.TryAdd(libtree.MustParseGraphExpr(expr))
		require.NoError(t, err)
		require.True(t, added, expr)
	}

	// relabelings
	for _, expr := range []string{"5: 4-2-0-3-1", "5: 3-0, 3-1, 3-2, 3-4", "5: 4-3-2-1, 3-0"} {
		added, err := set.TryAdd(libtree.MustParseGraphExpr(expr))
		require.NoError(t, err)
		require.False(t, added, expr)
	}
	require.Equal(t, 3, set.Len())

	// same shape on a different vertex count is distinct
	added, err := set.TryAdd(libtree.MustParseGraphExpr("4: 0-1-2-3"))
	require.NoError(t, err)
	require.True(t, added)

	_, err = set.TryAdd(libtree.MustParseGraphExpr("5: 0-1-2-0"))
	require.ErrorIs(t, err, gotree.ErrNotATree)
	require.Equal(t, 4, set.Len())

	set.Close()
	require.Equal(t, 0, set.Len())
	added, err = set.TryAdd(libtree.MustParseGraphExpr("4: 0-1-2-3"))
	require.NoError(t, err)
	require.True(t, added, "Close empties the set")
}

package libtree_test

import (
	"strings"
	"testing"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/stretchr/testify/require"
)

func TestGraphText(t *testing.T) {
	X := libtree.MustParseGraphExpr("3: 0-1-2")
	require.Equal(t, "3\n010\n101\n010\n", X.String())

	Y, err := libtree.ParseGraphText(X.String())
	require.NoError(t, err)
	same, err := X.Equals(Y)
	require.NoError(t, err)
	require.True(t, same)

	// whitespace between cells and rows is ignored
	Y, err = libtree.ParseGraphText("  3\r\n0 1 0\n\n1 0 1\t0 1 0")
	require.NoError(t, err)
	require.Equal(t, X.Expr(), Y.Expr())

	// cells apply in order, so a later '0' undoes an earlier '1'
	Y, err = libtree.ParseGraphText("2\n01\n00\n")
	require.NoError(t, err)
	require.Equal(t, 0, Y.NumEdges())
	Y, err = libtree.ParseGraphText("2\n00\n10\n")
	require.NoError(t, err)
	require.Equal(t, 1, Y.NumEdges())
}

func TestGraphTextErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"x\n0",
		"3\n010\n1",
		"2\n0",
		"99999999\n",
	} {
		_, err := libtree.ParseGraphText(text)
		require.ErrorIs(t, err, gotree.ErrBadGraphText, "%q", text)
	}
}

func TestGraphBatch(t *testing.T) {
	trees, err := libtree.EnumTrees(gotree.EnumOpts{NumVerts: 6})
	require.NoError(t, err)
	trees = append(trees, libtree.NewGraph(0), libtree.MustParseGraphExpr("3: 0-1-2-0"))

	buf := strings.Builder{}
	require.NoError(t, libtree.WriteGraphs(&buf, trees))
	require.True(t, strings.HasPrefix(buf.String(), "8\n6\n"))

	graphs, err := libtree.NewGraphReader(strings.NewReader(buf.String())).ReadGraphs()
	require.NoError(t, err)
	require.Len(t, graphs, len(trees))
	for i, X := range graphs {
		same, err := X.Equals(trees[i])
		require.NoError(t, err)
		require.True(t, same, "graph %d", i)
	}

	_, err = libtree.NewGraphReader(strings.NewReader("3\n1\n0\n")).ReadGraphs()
	require.ErrorIs(t, err, gotree.ErrBadGraphText)
	_, err = libtree.NewGraphReader(strings.NewReader("")).ReadGraphs()
	require.ErrorIs(t, err, gotree.ErrBadGraphText)
}

func TestWriteAsString(t *testing.T) {
	X := libtree.MustParseGraphExpr("3: 0-1-2")
	buf := strings.Builder{}
	require.NoError(t, X.WriteAsString(&buf, gotree.PrintOpts{
		Label:  "P3",
		Matrix: true,
		Edges:  true,
		Hash:   true,
	}))
	lines := strings.Split(buf.String(), "\n")
	require.True(t, strings.HasPrefix(lines[0], "P3 0-1,1-2 hash="), lines[0])
	require.Equal(t, "3", lines[1])
	require.Equal(t, "101", lines[3])

	buf.Reset()
	require.NoError(t, libtree.MustParseGraphExpr("3: 0-1-2-0").WriteAsString(&buf, gotree.PrintOpts{Hash: true}))
	require.Equal(t, "hash=n/a \n", buf.String())
}

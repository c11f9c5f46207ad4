package libtree_test

import (
	"testing"

	"github.com/go-python/gpython/py"
	"github.com/stretchr/testify/require"

	_ "github.com/2x3systems/gotree/libtree"
	_ "github.com/go-python/gpython/stdlib"
)

const pyTreeScript = `
import _pytree as t

trees = t.EnumTrees(6)
if len(trees) != t.TreeCount(6):
    raise ValueError("wrong tree count")

canonic = t.EnumTrees(6, "canonical")
if len(canonic) != len(trees):
    raise ValueError("strategies disagree")

P = t.ParseGraph("4: 0-1-2-3")
Q = t.NewGraph(4)
Q.AddEdge(3, 1)
Q.AddEdge(1, 0)
Q.AddEdge(0, 2)
if not P.IsIsomorphic(Q, "brute"):
    raise ValueError("paths should match")

S = t.ParseGraph("4\n0111\n1000\n1000\n1000\n")
if S.IsIsomorphic(P):
    raise ValueError("star is not a path")

result = [P.NumEdges(), S.IsTree(), Q.Expr()]
`

func TestPyModule(t *testing.T) {
	ctx := py.NewContext(py.DefaultContextOpts())
	defer ctx.Close()

	module, err := py.RunSrc(ctx, pyTreeScript, "<test>", nil)
	if err != nil {
		py.TracebackDump(err)
	}
	require.NoError(t, err)

	result, ok := module.Globals["result"].(*py.List)
	require.True(t, ok)
	require.Equal(t, py.Int(3), result.Items[0])
	require.Equal(t, py.True, result.Items[1])
	require.Equal(t, py.String("4: 0-1, 0-2, 1-3"), result.Items[2])
}

func TestPyModuleErrors(t *testing.T) {
	ctx := py.NewContext(py.DefaultContextOpts())
	defer ctx.Close()

	for _, src := range []string{
		"import _pytree as t\nt.ParseGraph('3: 0-7')\n",
		"import _pytree as t\nt.ParseGraph('4: 0-1-2-0').Hash()\n",
		"import _pytree as t\nt.EnumTrees(5, 'bogus')\n",
		"import _pytree as t\nt.NewGraph(3).AddEdge(0, 3)\n",
		"import _pytree as t\nt.NewGraph(10**6)\n",
		"import _pytree as t\nt.NewGraph(-1)\n",
	} {
		_, err := py.RunSrc(ctx, src, "<test>", nil)
		require.Error(t, err, src)
	}
}

package libtree

import (
	"strings"

	"github.com/2x3systems/gotree/gotree"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	PyGraphType = py.NewType("Graph", "an undirected simple graph on a fixed number of vertices")
)

func (X *Graph) Type() *py.Type {
	return PyGraphType
}

func (X *Graph) M__str__() (py.Object, error) {
	return py.String(X.String()), nil
}

func (X *Graph) M__repr__() (py.Object, error) {
	return py.String(X.Expr()), nil
}

func pyBool(b bool) py.Object {
	if b {
		return py.True
	}
	return py.False
}

func pyErr(err error) error {
	return py.ExceptionNewf(py.ValueError, "%v", err)
}

func getGraphFromObj(obj py.Object) (*Graph, error) {
	X, ok := obj.(*Graph)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected Graph object (got %v)", obj.Type().Name)
	}
	return X, nil
}

func getIntArgs(args py.Tuple, want int) ([]int, error) {
	if len(args) < want {
		return nil, py.ExceptionNewf(py.TypeError, "expected %d int args (got %d)", want, len(args))
	}
	vals := make([]int, want)
	for i := range vals {
		val, err := py.GetInt(args[i])
		if err != nil {
			return nil, err
		}
		vals[i] = int(val)
	}
	return vals, nil
}

// Optional trailing str arg naming an IsoStrategy
func getStrategyArg(args py.Tuple, at int) (gotree.IsoStrategy, error) {
	if len(args) <= at {
		return gotree.IsoRootedHash, nil
	}
	name, ok := args[at].(py.String)
	if !ok {
		return 0, py.ExceptionNewf(py.TypeError, "expected strategy name")
	}
	strategy, ok := gotree.ParseIsoStrategy(string(name))
	if !ok {
		return 0, py.ExceptionNewf(py.ValueError, "unknown strategy %q", string(name))
	}
	return strategy, nil
}

// Arg 1 (int): vertex count
func ph_NewGraph(module py.Object, args py.Tuple) (py.Object, error) {
	vals, err := getIntArgs(args, 1)
	if err != nil {
		return nil, err
	}
	if err = CheckNumVerts(vals[0]); err != nil {
		return nil, pyErr(err)
	}
	return NewGraph(vals[0]), nil
}

// Arg 1 (str): edge expression, e.g. "4: 0-1-2-3"
func ph_ParseGraph(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) < 1 {
		return nil, py.ExceptionNewf(py.TypeError, "expected graph expression")
	}
	expr, ok := args[0].(py.String)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected str")
	}

	var X *Graph
	var err error
	if strings.Contains(string(expr), ":") {
		X, err = ParseGraphExpr(string(expr))
	} else {
		X, err = ParseGraphText(string(expr))
	}
	if err != nil {
		return nil, pyErr(err)
	}
	return X, nil
}

// Arg 1 (int): vertex count
// Arg 2 (str, optional): strategy
func ph_EnumTrees(module py.Object, args py.Tuple) (py.Object, error) {
	vals, err := getIntArgs(args, 1)
	if err != nil {
		return nil, err
	}
	strategy, err := getStrategyArg(args, 1)
	if err != nil {
		return nil, err
	}
	trees, err := EnumTrees(gotree.EnumOpts{
		NumVerts: vals[0],
		Strategy: strategy,
	})
	if err != nil {
		return nil, pyErr(err)
	}
	out := make(py.Tuple, len(trees))
	for i, X := range trees {
		out[i] = X
	}
	return out, nil
}

func ph_TreeCount(module py.Object, args py.Tuple) (py.Object, error) {
	vals, err := getIntArgs(args, 1)
	if err != nil {
		return nil, err
	}
	count, ok := gotree.UnlabeledTreeCount(vals[0])
	if !ok {
		return py.None, nil
	}
	return py.Int(count), nil
}

func ph_Graph_NumVerts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(*Graph)
	return py.Int(X.NumVerts()), nil
}

func ph_Graph_NumEdges(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(*Graph)
	return py.Int(X.NumEdges()), nil
}

func ph_Graph_IsConnected(self py.Object, args py.Tuple) (py.Object, error) {
	return pyBool(IsConnected(self.(*Graph))), nil
}

func ph_Graph_IsTree(self py.Object, args py.Tuple) (py.Object, error) {
	return pyBool(IsTree(self.(*Graph))), nil
}

func ph_Graph_AddEdge(self py.Object, args py.Tuple) (py.Object, error) {
	vals, err := getIntArgs(args, 2)
	if err != nil {
		return nil, err
	}
	if err = self.(*Graph).AddEdge(E(vals[0], vals[1])); err != nil {
		return nil, pyErr(err)
	}
	return py.None, nil
}

func ph_Graph_RemoveEdge(self py.Object, args py.Tuple) (py.Object, error) {
	vals, err := getIntArgs(args, 2)
	if err != nil {
		return nil, err
	}
	if err = self.(*Graph).RemoveEdge(E(vals[0], vals[1])); err != nil {
		return nil, pyErr(err)
	}
	return py.None, nil
}

func ph_Graph_Expr(self py.Object, args py.Tuple) (py.Object, error) {
	return py.String(self.(*Graph).Expr()), nil
}

func ph_Graph_Hash(self py.Object, args py.Tuple) (py.Object, error) {
	hash, err := self.(*Graph).InvariantHash()
	if err != nil {
		return nil, pyErr(err)
	}
	return py.Float(hash), nil
}

// Arg 1 (Graph): graph to compare with
// Arg 2 (str, optional): strategy
func ph_Graph_IsIsomorphic(self py.Object, args py.Tuple) (py.Object, error) {
	if len(args) < 1 {
		return nil, py.ExceptionNewf(py.TypeError, "expected Graph arg")
	}
	Y, err := getGraphFromObj(args[0])
	if err != nil {
		return nil, err
	}
	strategy, err := getStrategyArg(args, 1)
	if err != nil {
		return nil, err
	}
	same, err := IsIsomorphic(self.(*Graph), Y, strategy)
	if err != nil {
		return nil, pyErr(err)
	}
	return pyBool(same), nil
}

func init() {

	/////////////////////////////////
	// Graph
	{
		PyGraphType.Dict["NumVerts"] = py.MustNewMethod("NumVerts", ph_Graph_NumVerts, 0, "returns the vertex count")
		PyGraphType.Dict["NumEdges"] = py.MustNewMethod("NumEdges", ph_Graph_NumEdges, 0, "returns the edge count")
		PyGraphType.Dict["IsConnected"] = py.MustNewMethod("IsConnected", ph_Graph_IsConnected, 0, "")
		PyGraphType.Dict["IsTree"] = py.MustNewMethod("IsTree", ph_Graph_IsTree, 0, "")
		PyGraphType.Dict["AddEdge"] = py.MustNewMethod("AddEdge", ph_Graph_AddEdge, 0, "")
		PyGraphType.Dict["RemoveEdge"] = py.MustNewMethod("RemoveEdge", ph_Graph_RemoveEdge, 0, "")
		PyGraphType.Dict["Expr"] = py.MustNewMethod("Expr", ph_Graph_Expr, 0, "returns this graph as an edge expression")
		PyGraphType.Dict["Hash"] = py.MustNewMethod("Hash", ph_Graph_Hash, 0, "returns the root-invariant tree hash")
		PyGraphType.Dict["IsIsomorphic"] = py.MustNewMethod("IsIsomorphic", ph_Graph_IsIsomorphic, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewGraph", ph_NewGraph, 0, ""),
			py.MustNewMethod("ParseGraph", ph_ParseGraph, 0, ""),
			py.MustNewMethod("EnumTrees", ph_EnumTrees, 0, "returns one tree per isomorphism class"),
			py.MustNewMethod("TreeCount", ph_TreeCount, 0, "returns the known number of unlabeled trees"),
		}

		globals := py.StringDict{
			"LIB_VERSION":  py.String(LIB_VERSION),
			"HASH_BASE":    py.Float(gotree.HashBase),
			"MAX_ENUM_VTX": py.Int(gotree.MaxEnumVerts),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pytree",
				Doc:  "unlabeled tree enumeration gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}

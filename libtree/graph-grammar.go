package libtree

import (
	"strconv"
	"strings"

	"github.com/2x3systems/gotree/gotree"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// GraphExpr is a compact edge expression such as "5: 0-1-2, 1-3-4".
//
// The leading integer is the vertex count.  Each comma separated run is a path: "0-1-2" adds edges 0-1 and 1-2.
type GraphExpr struct {
	NumVerts int        `parser:"@Int \":\""`
	Runs     []*EdgeRun `parser:"(@@ (\",\" @@)*)?"`
}

type EdgeRun struct {
	Start int   `parser:"@Int"`
	Next  []int `parser:"(\"-\" @Int)*"`
}

var sGraphExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-,:]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseGraphExpr = participle.MustBuild[GraphExpr](
	participle.Lexer(sGraphExprLexer),
)

// ParseGraphExpr builds a graph from an edge expression (see GraphExpr).
func ParseGraphExpr(expr string) (*Graph, error) {
	Xexpr, err := parseGraphExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(gotree.ErrBadGraphText, "%v", err)
	}

	if err = CheckNumVerts(Xexpr.NumVerts); err != nil {
		return nil, err
	}
	X := NewGraph(Xexpr.NumVerts)
	for ri, run := range Xexpr.Runs {
		if run.Start >= X.n {
			X.Reclaim()
			return nil, errors.Wrapf(gotree.ErrInvalidEdge, "run #%d starts at vertex %d of %d", ri+1, run.Start, X.n)
		}
		at := run.Start
		for _, next := range run.Next {
			if err := X.AddEdge(Edge{A: at, B: next}); err != nil {
				X.Reclaim()
				return nil, errors.Wrapf(err, "run #%d", ri+1)
			}
			at = next
		}
	}
	return X, nil
}

// MustParseGraphExpr is ParseGraphExpr that panics on error.
func MustParseGraphExpr(expr string) *Graph {
	X, err := ParseGraphExpr(expr)
	if err != nil {
		panic(err)
	}
	return X
}

// Expr returns this graph as an edge expression, one run per edge (e.g. "4: 0-1, 1-2, 1-3").
func (X *Graph) Expr() string {
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(X.n))
	b.WriteByte(':')
	for i, e := range X.Edges() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	return b.String()
}

package libtree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/2x3systems/gotree/gotree"
	"github.com/pkg/errors"
)

// WriteText writes the text block for this graph: a line holding N followed by N lines of N '0' / '1' characters.
func (X *Graph) WriteText(out io.Writer) error {
	buf := make([]byte, 0, (X.n+1)*(X.n+1)+8)
	buf = strconv.AppendInt(buf, int64(X.n), 10)
	buf = append(buf, '\n')
	for i := 0; i < X.n; i++ {
		for j := 0; j < X.n; j++ {
			if X.at(i, j) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, '\n')
	}
	_, err := out.Write(buf)
	return err
}

func (X *Graph) String() string {
	b := strings.Builder{}
	X.WriteText(&b)
	return b.String()
}

// WriteAsString prints this graph according to opts.
func (X *Graph) WriteAsString(out io.Writer, opts gotree.PrintOpts) error {
	b := strings.Builder{}
	if len(opts.Label) > 0 {
		b.WriteString(opts.Label)
		b.WriteByte(' ')
	}
	if opts.Edges {
		for i, e := range X.Edges() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.String())
		}
		b.WriteByte(' ')
	}
	if opts.Hash {
		if hash, err := X.InvariantHash(); err == nil {
			fmt.Fprintf(&b, "hash=%.12f ", hash)
		} else {
			b.WriteString("hash=n/a ")
		}
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	if opts.Matrix {
		X.WriteText(&b)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// WriteGraphs writes a batch: a line holding the graph count, then each graph's text block followed by a blank line.
func WriteGraphs(out io.Writer, graphs []*Graph) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "%d\n", len(graphs))
	for _, X := range graphs {
		if err := X.WriteText(bw); err != nil {
			return err
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// MaxTextGraphSize bounds the vertex count accepted by GraphReader.
const MaxTextGraphSize = gotree.MaxVerts

// GraphReader reads graphs in text form.  Whitespace between tokens and rows is ignored.
type GraphReader struct {
	r *bufio.Reader
}

func NewGraphReader(in io.Reader) *GraphReader {
	if br, ok := in.(*bufio.Reader); ok {
		return &GraphReader{r: br}
	}
	return &GraphReader{r: bufio.NewReader(in)}
}

// nextRune returns the next non-whitespace rune.
func (gr *GraphReader) nextRune() (rune, error) {
	for {
		r, _, err := gr.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// ReadInt reads a non-negative base 10 integer, skipping leading whitespace.
// io.EOF is returned if the input ends before any digit.
func (gr *GraphReader) ReadInt() (int, error) {
	r, err := gr.nextRune()
	if err != nil {
		return 0, err
	}
	if r < '0' || r > '9' {
		return 0, errors.Wrapf(gotree.ErrBadGraphText, "expected an integer, got %q", r)
	}
	val := int(r - '0')
	for {
		r, _, err = gr.r.ReadRune()
		if err == io.EOF {
			return val, nil
		}
		if err != nil {
			return 0, err
		}
		if r < '0' || r > '9' {
			gr.r.UnreadRune()
			return val, nil
		}
		val = 10*val + int(r-'0')
		if val > 1<<20 {
			return 0, errors.Wrap(gotree.ErrBadGraphText, "integer too large")
		}
	}
}

// ReadCells reads a leading vertex count N followed by N*N cell characters, returned in row-major order.
func (gr *GraphReader) ReadCells() (int, []rune, error) {
	N, err := gr.ReadInt()
	if err != nil {
		return 0, nil, err
	}
	if N > MaxTextGraphSize {
		return 0, nil, errors.Wrapf(gotree.ErrBadGraphText, "graph size %d exceeds %d", N, MaxTextGraphSize)
	}
	cells := make([]rune, N*N)
	for i := range cells {
		c, err := gr.nextRune()
		if err != nil {
			if err == io.EOF {
				err = errors.Wrapf(gotree.ErrBadGraphText, "input ended at cell (%d,%d) of %d x %d graph", i/N, i%N, N, N)
			}
			return 0, nil, err
		}
		cells[i] = c
	}
	return N, cells, nil
}

// ReadGraph reads a leading vertex count N followed by N*N cell characters.
// Cells are applied in order with AddEdge for '1' and RemoveEdge for anything else.
func (gr *GraphReader) ReadGraph() (*Graph, error) {
	N, cells, err := gr.ReadCells()
	if err != nil {
		return nil, err
	}
	X := NewGraph(N)
	for k, c := range cells {
		e := Edge{A: k / N, B: k % N}
		if c == '1' {
			X.AddEdge(e)
		} else {
			X.RemoveEdge(e)
		}
	}
	return X, nil
}

// ReadGraphs reads a batch: a graph count followed by that many graphs.
func (gr *GraphReader) ReadGraphs() ([]*Graph, error) {
	count, err := gr.ReadInt()
	if err != nil {
		if err == io.EOF {
			err = errors.Wrap(gotree.ErrBadGraphText, "missing graph count")
		}
		return nil, err
	}
	graphs := make([]*Graph, 0, count)
	for i := 0; i < count; i++ {
		X, err := gr.ReadGraph()
		if err != nil {
			if err == io.EOF {
				err = errors.Wrapf(gotree.ErrBadGraphText, "expected %d graphs, got %d", count, i)
			}
			return nil, err
		}
		graphs = append(graphs, X)
	}
	return graphs, nil
}

// ParseGraphText reads a single graph from its text form.
func ParseGraphText(text string) (*Graph, error) {
	X, err := NewGraphReader(strings.NewReader(text)).ReadGraph()
	if err == io.EOF {
		err = errors.Wrap(gotree.ErrBadGraphText, "empty input")
	}
	return X, err
}

package libtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/gotree/gotree"
	"github.com/plan-systems/klog"
)

// GraphAdder accepts graphs, returning true if the graph was not already present.
type GraphAdder interface {
	TryAddGraph(X *Graph) (bool, error)
}

type AddGraphOpts struct {
	AutoClose func() // if set, called once the input stream is drained
}

// GraphStream is a channel of graphs; ownership of each Graph travels through the channel.
//
// Err() reports the first failure of the stream (or any stream feeding it) and may only be called once Outlet is closed.
type GraphStream struct {
	Outlet chan *Graph
	err    error
}

func NewGraphStream() *GraphStream {
	return &GraphStream{
		Outlet: make(chan *Graph, 1),
	}
}

// Err returns the first error encountered producing this stream.
func (stream *GraphStream) Err() error {
	return stream.err
}

func (stream *GraphStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// StreamGraphs emits a copy of each of the given graphs.
func StreamGraphs(graphs []*Graph) *GraphStream {
	next := NewGraphStream()
	go func() {
		for _, X := range graphs {
			next.Outlet <- X.Clone()
		}
		next.Close()
	}()
	return next
}

// StreamSpanningTrees emits every labeled spanning tree of the complete graph on n vertices (n^(n-2) of them).
func StreamSpanningTrees(n int) *GraphStream {
	next := NewGraphStream()
	go func() {
		next.err = ForEachSpanningTree(n, func(X *Graph) bool {
			next.Outlet <- X.Clone()
			return true
		})
		next.Close()
	}()
	return next
}

// StreamTrees emits one representative per isomorphism class of trees as specified by opts.
func StreamTrees(opts gotree.EnumOpts) *GraphStream {
	next := NewGraphStream()
	go func() {
		var trees []*Graph
		trees, next.err = EnumTrees(opts)
		for _, X := range trees {
			next.Outlet <- X
		}
		next.Close()
	}()
	return next
}

func (stream *GraphStream) inherit(upstream *GraphStream) {
	if stream.err == nil {
		stream.err = upstream.err
	}
}

// DropDupes passes along only the first tree of each isomorphism class; non-trees are dropped.
func (stream *GraphStream) DropDupes() *GraphStream {
	next := NewGraphStream()
	go func() {
		set := NewCanonicSet()
		for X := range stream.Outlet {
			added, err := set.TryAdd(X)
			if err != nil {
				klog.V(2).Infof("DropDupes: dropping graph: %v", err)
			}
			if added {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		klog.V(2).Infof("DropDupes: %d distinct trees", set.Len())
		set.Close()
		next.inherit(stream)
		next.Close()
	}()
	return next
}

// AddTo offers each graph to target and passes along the ones that were added.
func (stream *GraphStream) AddTo(target GraphAdder, opts AddGraphOpts) *GraphStream {
	next := NewGraphStream()
	go func() {
		for X := range stream.Outlet {
			wasAdded, err := target.TryAddGraph(X)
			if err != nil && next.err == nil {
				next.err = err
			}
			if wasAdded {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		if opts.AutoClose != nil {
			opts.AutoClose()
		}
		next.inherit(stream)
		next.Close()
	}()
	return next
}

// Print writes each graph to out (numbered) and passes it along.
func (stream *GraphStream) Print(out io.Writer, opts gotree.PrintOpts) *GraphStream {
	next := NewGraphStream()
	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for X := range stream.Outlet {
			count++
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%06d\n", count)
			X.WriteAsString(&buf, gotree.PrintOpts{
				Matrix: opts.Matrix,
				Edges:  opts.Edges,
				Hash:   opts.Hash,
			})
			if _, err := io.WriteString(out, buf.String()); err != nil && next.err == nil {
				next.err = err
			}
			buf.Reset()
			next.Outlet <- X
		}
		next.inherit(stream)
		next.Close()
	}()
	return next
}

// Collect drains this stream and returns its graphs (ownership passes to the caller).
func (stream *GraphStream) Collect() ([]*Graph, error) {
	var graphs []*Graph
	for X := range stream.Outlet {
		graphs = append(graphs, X)
	}
	return graphs, stream.err
}

// PullAll drains and recycles this stream, returning the number of graphs seen.
func (stream *GraphStream) PullAll() (int, error) {
	count := 0
	for X := range stream.Outlet {
		count++
		X.Reclaim()
	}
	return count, stream.err
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/2x3systems/gotree/libtree/catalog"
	"github.com/2x3systems/gotree/libtree/convert"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

type command struct {
	name  string
	usage string
	run   func(args []string, in io.Reader, out io.Writer) error
}

var commands = []command{
	{"enum", "enum -n N [-strategy hash|brute|canonical] [-stop K] [-check] [-catalog PATH]", runEnum},
	{"iso", "iso [-strategy hash|brute|canonical]  (reads a graph batch from stdin)", runIso},
	{"to-binary", "to-binary IN OUT", runToBinary},
	{"to-text", "to-text IN OUT", runToText},
	{"gen", "gen [-n N] [-count C] [-seed S] [-ratio R]", runGen},
	{"py", "py [script.py]  (no script starts a REPL)", runPy},
}

func commandsUsage() string {
	b := strings.Builder{}
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  %s\n", cmd.usage)
	}
	return b.String()
}

func runCommand(name string, args []string, in io.Reader, out io.Writer) error {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd.run(args, in, out)
		}
	}
	return errors.Errorf("unknown command %q", name)
}

func parseStrategy(name string) (gotree.IsoStrategy, error) {
	strategy, ok := gotree.ParseIsoStrategy(name)
	if !ok {
		return strategy, errors.Errorf("unknown strategy %q", name)
	}
	return strategy, nil
}

func runEnum(args []string, in io.Reader, out io.Writer) error {
	fset := flag.NewFlagSet("enum", flag.ContinueOnError)
	opts := gotree.DefaultEnumOpts
	strategyName := fset.String("strategy", opts.Strategy.String(), "isomorphism test: hash, brute, or canonical")
	catalogPath := fset.String("catalog", "", "if set, representatives are added to the catalog at this path")
	fset.IntVar(&opts.NumVerts, "n", 7, "vertex count")
	fset.IntVar(&opts.StopAt, "stop", 0, "stop after this many representatives (0 = no limit)")
	fset.BoolVar(&opts.CrossCheck, "check", false, "fail unless the count matches the known unlabeled tree count")
	if err := fset.Parse(args); err != nil {
		return err
	}

	var err error
	if opts.Strategy, err = parseStrategy(*strategyName); err != nil {
		return err
	}

	trees, err := libtree.EnumTrees(opts)
	if err != nil {
		return err
	}

	if len(*catalogPath) > 0 {
		cat, err := catalog.OpenCatalog(gotree.CatalogOpts{
			DbPathName: *catalogPath,
		})
		if err != nil {
			return err
		}
		added := 0
		for _, X := range trees {
			wasAdded, err := cat.TryAddGraph(X)
			if err != nil {
				cat.Close()
				return err
			}
			if wasAdded {
				added++
			}
		}
		total, _ := cat.NumTrees(opts.NumVerts)
		klog.Infof("catalog %q: added %d trees (%d total on %d vertices)", *catalogPath, added, total, opts.NumVerts)
		if err = cat.Close(); err != nil {
			return err
		}
	}

	return libtree.WriteGraphs(out, trees)
}

// runIso reads a graph batch and prints, for each graph, the index of the first earlier graph isomorphic to it (or -1).
func runIso(args []string, in io.Reader, out io.Writer) error {
	fset := flag.NewFlagSet("iso", flag.ContinueOnError)
	strategyName := fset.String("strategy", gotree.IsoRootedHash.String(), "isomorphism test: hash, brute, or canonical")
	if err := fset.Parse(args); err != nil {
		return err
	}
	strategy, err := parseStrategy(*strategyName)
	if err != nil {
		return err
	}

	graphs, err := libtree.NewGraphReader(in).ReadGraphs()
	if err != nil {
		return err
	}

	isIso := libtree.IsoFuncFor(strategy)
	bw := bufio.NewWriter(out)
	for i, X := range graphs {
		match := -1
		for j := 0; j < i && match < 0; j++ {
			if graphs[j].NumVerts() != X.NumVerts() {
				continue
			}
			same, err := isIso(graphs[j], X)
			if err != nil {
				return errors.Wrapf(err, "graph %d vs graph %d", j, i)
			}
			if same {
				match = j
			}
		}
		if i > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%d", match)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func convertFiles(args []string, conv func(io.Reader, io.Writer) (int, error)) error {
	if len(args) != 2 {
		return errors.New("expected IN and OUT pathnames")
	}
	fin, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fin.Close()

	fout, err := os.Create(args[1])
	if err != nil {
		return err
	}
	count, err := conv(fin, fout)
	if closeErr := fout.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	klog.V(1).Infof("converted %d graphs: %s => %s", count, args[0], args[1])
	return nil
}

func runToBinary(args []string, in io.Reader, out io.Writer) error {
	return convertFiles(args, convert.TextToBinary)
}

func runToText(args []string, in io.Reader, out io.Writer) error {
	return convertFiles(args, convert.BinaryToText)
}

func runGen(args []string, in io.Reader, out io.Writer) error {
	fset := flag.NewFlagSet("gen", flag.ContinueOnError)
	opts := gotree.DefaultGenOpts
	fset.IntVar(&opts.NumVerts, "n", opts.NumVerts, "vertex count per graph")
	fset.IntVar(&opts.Count, "count", opts.Count, "number of graphs")
	fset.Int64Var(&opts.Seed, "seed", opts.Seed, "rng seed")
	fset.IntVar(&opts.EdgeRatio, "ratio", opts.EdgeRatio, "edge when rand() % ratio < 3")
	if err := fset.Parse(args); err != nil {
		return err
	}
	graphs, err := libtree.RandomGraphs(opts)
	if err != nil {
		return err
	}
	return libtree.WriteGraphs(out, graphs)
}

func runPy(args []string, in io.Reader, out io.Writer) error {
	pathname := ""
	if len(args) > 0 {
		pathname = args[0]
	}
	return runPython(pathname)
}

package main

import (
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	_ "github.com/2x3systems/gotree/libtree"
	_ "github.com/go-python/gpython/stdlib"
)

// replStartup is run in the REPL's module before the first prompt.
const replStartup = `
import _pytree as tree
print("_pytree", tree.LIB_VERSION, "(bound as 'tree')")
`

// runPython runs the script at pathname with _pytree importable, or starts a REPL if pathname is empty.
func runPython(pathname string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		if _, err = py.RunSrc(ctx, replStartup, "<startup>", replCtx.Module); err == nil {
			cli.RunREPL(replCtx)
		}
	} else {
		startTime := time.Now()
		klog.V(1).Infof("running %q", pathname)
		if _, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil); err == nil {
			klog.V(1).Infof("%q finished in %v", pathname, time.Since(startTime))
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		return errors.Wrapf(err, "python %q", pathname)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

func main() {

	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gotree [-v N] <command> [args]\n\ncommands:\n%s", commandsUsage())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	err := runCommand(flag.Arg(0), flag.Args()[1:], os.Stdin, os.Stdout)
	if err != nil {
		klog.Errorf("%s: %v", flag.Arg(0), err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

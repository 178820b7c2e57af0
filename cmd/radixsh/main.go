/*
Command radixsh is an interactive shell for a radix tree of words.

Usage:

	radixsh [flags] [shell|demo]

Without an argument an interactive session on stdin/stdout is started;
"demo" runs a scripted walkthrough. Flags:

	--config <file>     configuration file (yaml, toml or json)
	--trace D|I|E       trace level
	--dot <file>        output file for Graphviz export
	--graph-name <name> name of the exported digraph
	--rankdir TB|LR     Graphviz rank direction
	--fontname <font>   font for Graphviz labels

Every setting may also be given as environment variable with prefix RADIX_,
e.g. RADIX_DOT_FILE.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/radix/dot"
	"github.com/npillmayer/radix/internal/config"
	"github.com/npillmayer/radix/shell"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("radixsh", pflag.ExitOnError)
	config.Flags(flags)
	flags.Parse(os.Args[1:])
	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.TraceLevel())
	//
	mode := "shell"
	if flags.NArg() > 0 {
		mode = flags.Arg(0)
	}
	switch mode {
	case "demo":
		shell.Demo(os.Stdout)
	case "shell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		gtrace.CoreTracer.Infof("radixsh: starting session, export goes to %s", cfg.Dot.File)
		sh := shell.New(os.Stdin, os.Stdout,
			shell.WithDotFile(cfg.Dot.File),
			shell.WithDotOptions(
				dot.WithGraphName(cfg.Dot.GraphName),
				dot.WithRankDir(cfg.Dot.RankDir),
				dot.WithFontName(cfg.Dot.FontName),
			))
		err = sh.Run(ctx)
		sh.Tree().Clear()
		if err != nil && err != context.Canceled {
			gtrace.CoreTracer.Errorf(err.Error())
			os.Exit(2)
		}
	default:
		fmt.Fprintf(os.Stderr, "radixsh: unknown mode %q, expected shell or demo\n", mode)
		os.Exit(1)
	}
}

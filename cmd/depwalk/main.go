// Package main provides the depwalk command.
//
// depwalk prints the module references of JavaScript files:
//   - scan parses source files and prints their manifests
//   - tree does the same for ESTree JSON documents from another parser
//   - check-config validates a rewrite configuration file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"depwalk/internal/config"
	"depwalk/internal/manifest"
	"depwalk/internal/match"
	"depwalk/pkg/depwalk"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const formatDump = "dump"

var commands = []string{"scan", "tree", "check-config", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "scan":
		return scan(args[1:], stdout, stderr, parseSource)
	case "tree":
		return scan(args[1:], stdout, stderr, parseTree)
	case "check-config":
		return checkConfig(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	}

	fmt.Fprintf(stderr, "depwalk: unknown command %q\n", args[0])

	if near, ok := match.Closest(args[0], commands); ok {
		fmt.Fprintf(stderr, "did you mean %q?\n", near)
	}

	usage(stderr)

	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  depwalk scan [-config file.yaml] [-format json|yaml|dump] [-v] file.js...
  depwalk tree [-config file.yaml] [-format json|yaml|dump] [-v] file.json...
  depwalk check-config file.yaml
`)
}

type parseFunc func(ctx context.Context, data []byte, filename string, opts depwalk.Options) (*depwalk.Result, error)

func parseSource(ctx context.Context, data []byte, filename string, opts depwalk.Options) (*depwalk.Result, error) {
	return depwalk.Parse(ctx, data, filename, opts)
}

func parseTree(_ context.Context, data []byte, filename string, opts depwalk.Options) (*depwalk.Result, error) {
	return depwalk.ParseTree(data, filename, opts)
}

func scan(args []string, stdout, stderr io.Writer, parse parseFunc) int {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "rewrite configuration (YAML)")
	format := fs.String("format", string(manifest.FormatJSON), "output format: json, yaml or dump")
	verbose := fs.Bool("v", false, "log recognised idioms to stderr")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "depwalk: no input files")
		return exitUsage
	}

	switch *format {
	case string(manifest.FormatJSON), string(manifest.FormatYAML), formatDump:
	default:
		fmt.Fprintf(stderr, "depwalk: unknown format %q\n", *format)
		return exitUsage
	}

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "depwalk: creating logger: %v\n", err)
			return exitFail
		}

		logger = dev
	}

	defer func() { _ = logger.Sync() }()

	opts := depwalk.Options{Logger: logger}

	if *configPath != "" {
		cfg, err := depwalk.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "depwalk: %v\n", err)
			return exitFail
		}

		opts.Config = cfg
	}

	printer := newDiagPrinter(stderr)
	ctx := context.Background()
	status := exitOK
	results := make(map[string]*manifest.Scope, fs.NArg())

	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "depwalk: %v\n", err)
			status = exitFail

			continue
		}

		res, err := parse(ctx, data, path, opts)
		if err != nil {
			var perr *depwalk.ParseError
			if errors.As(err, &perr) {
				logger.Warn("parse failed", zap.String("file", path), zap.Error(perr.Err))
			}

			fmt.Fprintf(stderr, "depwalk: %v\n", err)
			status = exitFail

			continue
		}

		printer.print(path, res.Diagnostics)

		if res.Diagnostics.HasErrors() {
			status = exitFail
		}

		results[path] = res.Manifest
	}

	if len(results) == 0 {
		return status
	}

	if err := write(stdout, results, *format); err != nil {
		fmt.Fprintf(stderr, "depwalk: %v\n", err)
		return exitFail
	}

	return status
}

// write prints a single manifest bare and several keyed by file name.
func write(w io.Writer, results map[string]*manifest.Scope, format string) error {
	var v any = results

	if len(results) == 1 {
		for _, m := range results {
			v = m
		}
	}

	if format == formatDump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

		if len(results) == 1 {
			cfg.Fdump(w, v)
			return nil
		}

		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(w, "# %s\n", name)
			cfg.Fdump(w, results[name])
		}

		return nil
	}

	return manifest.Encode(w, v, manifest.Format(format))
}

func checkConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: depwalk check-config file.yaml")
		return exitUsage
	}

	cfg, err := config.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "depwalk: %v\n", err)
		return exitFail
	}

	diags := config.Validate(cfg)
	newDiagPrinter(stderr).print(args[0], *diags)

	if diags.HasErrors() {
		return exitFail
	}

	fmt.Fprintf(stdout, "%s: ok (%d rewrites)\n", args[0], len(cfg.Rewrites))

	return exitOK
}

// Package depwalk lists the module references of a JavaScript file.
//
// It recognises the CommonJS and AMD loader idioms (require, require.resolve,
// require.context, require.ensure, define) and returns a manifest with the
// byte ranges a bundler needs to rewrite each reference in place. Input is
// either source text, parsed with tree-sitter, or an ESTree JSON document
// produced by another parser.
package depwalk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"depwalk/internal/config"
	"depwalk/internal/diagnostic"
	"depwalk/internal/jsast"
	"depwalk/internal/jsparse"
	"depwalk/internal/manifest"
	"depwalk/internal/walk"
)

// Re-exported record and configuration types.
type (
	Config      = config.Config
	Manifest    = manifest.Scope
	Dependency  = manifest.Dependency
	Context     = manifest.Context
	AsyncScope  = manifest.AsyncScope
	Diagnostics = diagnostic.Diagnostics
)

// ErrUnparsableInput is returned when a tree has no Program root.
var ErrUnparsableInput = walk.ErrUnparsableInput

// Options configures a walk.
type Options struct {
	// Config is the rewrite table; nil means the defaults.
	Config *Config
	// Logger receives idiom traces; nil disables logging.
	Logger *zap.Logger
}

// Result is the manifest of one file.
type Result struct {
	Filename    string
	Manifest    *Manifest
	Diagnostics Diagnostics
}

// ParseError reports input that could not be turned into a syntax tree.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewConfig returns a configuration with default helpers and the given
// rewrite table.
func NewConfig(rewrites map[string]string) *Config {
	return config.New(rewrites)
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.LoadFile(path)
}

// Parse parses JavaScript source text and walks it.
func Parse(ctx context.Context, source []byte, filename string, opts Options) (*Result, error) {
	prog, err := jsparse.Parse(ctx, source)
	if err != nil {
		return nil, &ParseError{Filename: filename, Err: err}
	}

	return run(prog, filename, opts)
}

// ParseTree walks an ESTree JSON document.
func ParseTree(data []byte, filename string, opts Options) (*Result, error) {
	prog, err := jsast.Decode(data)
	if err != nil {
		return nil, &ParseError{Filename: filename, Err: err}
	}

	return run(prog, filename, opts)
}

func run(prog *jsast.Program, filename string, opts Options) (*Result, error) {
	// configuration warnings lead the per-file diagnostics
	var diags Diagnostics
	if opts.Config != nil {
		cfgDiags := config.Validate(opts.Config)
		if cfgDiags.HasErrors() {
			return nil, fmt.Errorf("invalid configuration: %w", cfgDiags.Error())
		}

		diags = *cfgDiags
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	res, err := walk.Walk(prog, walk.Options{
		Config: opts.Config,
		Logger: logger.With(zap.String("file", filename)),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	diags.Merge(res.Diagnostics)

	return &Result{
		Filename:    filename,
		Manifest:    res.Manifest,
		Diagnostics: diags,
	}, nil
}

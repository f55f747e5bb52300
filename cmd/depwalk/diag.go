package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"depwalk/internal/diagnostic"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

type diagPrinter struct {
	w     io.Writer
	color bool
}

func newDiagPrinter(w io.Writer) *diagPrinter {
	return &diagPrinter{w: w, color: useColor(w)}
}

// useColor reports whether w is a terminal that accepts ANSI colours.
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *diagPrinter) print(file string, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(p.w, "%s: %s: %s\n", file, p.severity(d.Severity), d)
	}
}

func (p *diagPrinter) severity(s diagnostic.DiagnosticSeverity) string {
	label := s.String()
	if !p.color {
		return label
	}

	switch s {
	case diagnostic.DiagnosticError:
		return ansiRed + label + ansiReset
	case diagnostic.DiagnosticWarning:
		return ansiYellow + label + ansiReset
	default:
		return ansiBlue + label + ansiReset
	}
}

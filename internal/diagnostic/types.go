package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"depwalk/internal/common"
	"depwalk/internal/jsast"
)

// Codes used across the module.
const (
	CodeUnsupportedSpecifier = "unsupported_specifier"
	CodeMaxDepthExceeded     = "max_depth_exceeded"
	CodeBareRequire          = "bare_require_identifier"
	CodeInvalidRewrite       = "invalid_rewrite"
	CodeReservedRewrite      = "reserved_rewrite"
	CodeEmptyHelper          = "empty_helper"
	CodeInvalidMaxDepth      = "invalid_max_depth"
	CodeUnsupportedVersion   = "unsupported_version"
	CodeNearMissRewrite      = "near_miss_rewrite"
	CodeDefineRewrite        = "define_rewrite"
)

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject names what the diagnostic is about (a config key, an idiom).
	Subject string
	// Pos is the source position, zero when the diagnostic is not tied to source.
	Pos jsast.Position
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, subject string, pos jsast.Position) {
	entry := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Pos:      pos,
	}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, entry)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, entry)
	default:
		d.Infos = append(d.Infos, entry)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject string, pos jsast.Position) {
	d.add(DiagnosticError, code, message, subject, pos)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string, pos jsast.Position) {
	d.add(DiagnosticWarning, code, message, subject, pos)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject string, pos jsast.Position) {
	d.add(DiagnosticInfo, code, message, subject, pos)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// HasPos reports whether the diagnostic points into source text.
func (d Diagnostic) HasPos() bool {
	return d.Pos.Loc.Line > 0
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.HasPos() {
		prefix = append(prefix, d.Pos.Loc.String())
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

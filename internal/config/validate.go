package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"depwalk/internal/diagnostic"
	"depwalk/internal/jsast"
	"depwalk/internal/match"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks a configuration and reports every problem found.
func Validate(c *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("config_is_nil", "configuration is nil", "", jsast.Position{})
		return res
	}

	if c.Version != DefaultVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported config version %q", c.Version), "version", jsast.Position{})
	}

	// sorted so that the report is stable
	names := make([]string, 0, len(c.Rewrites))
	for name := range c.Rewrites {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		validateRewrite(res, name, c.Rewrites[name])
	}

	if strings.TrimSpace(c.Helpers.Require) == "" {
		res.AddError(diagnostic.CodeEmptyHelper, "require helper specifier is empty", "helpers.require", jsast.Position{})
	}

	if strings.TrimSpace(c.Helpers.Define) == "" {
		res.AddError(diagnostic.CodeEmptyHelper, "define helper specifier is empty", "helpers.define", jsast.Position{})
	}

	if c.MaxDepth < 0 {
		res.AddError(diagnostic.CodeInvalidMaxDepth,
			fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth), "max_depth", jsast.Position{})
	}

	return res
}

func validateRewrite(res *diagnostic.Diagnostics, name, value string) {
	subject := "rewrites." + name

	if !identifierRe.MatchString(name) {
		res.AddError(diagnostic.CodeInvalidRewrite, fmt.Sprintf("%q is not an identifier", name), subject, jsast.Position{})
		return
	}

	if name == LoaderName {
		res.AddError(diagnostic.CodeReservedRewrite,
			"the loader function cannot be rewritten; its call shapes are recognised directly", subject, jsast.Position{})

		return
	}

	if name == DefineName {
		res.AddInfo(diagnostic.CodeDefineRewrite,
			"define calls are still read as AMD modules; the rewrite applies to other references", subject, jsast.Position{})
	}

	if near, ok := match.Closest(name, []string{LoaderName, DefineName}); ok {
		res.AddWarning(diagnostic.CodeNearMissRewrite,
			fmt.Sprintf("%q looks like %q, which is recognised without a rewrite", name, near), subject, jsast.Position{})
	}

	rw := ParseRewrite(value)
	if strings.TrimSpace(rw.Target) == "" {
		res.AddError(diagnostic.CodeInvalidRewrite, "rewrite target is empty", subject, jsast.Position{})
		return
	}

	if strings.Contains(rw.Append, "+") {
		res.AddWarning(diagnostic.CodeInvalidRewrite,
			fmt.Sprintf("suffix %q contains another \"+\" and is appended verbatim", rw.Append), subject, jsast.Position{})
	}
}

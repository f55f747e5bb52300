package config

import (
	"strings"
)

// Names with fixed meaning to the walker.
const (
	LoaderName = "require"
	DefineName = "define"
)

// Defaults applied by Parse and New.
const (
	DefaultVersion       = "1"
	DefaultRequireHelper = "__webpack_amd_require"
	DefaultDefineHelper  = "__webpack_amd_define"
	DefaultMaxDepth      = 4096
)

// Config is the walker configuration. A Config is read-only once handed to
// the walker.
type Config struct {
	Version  string            `yaml:"version"`
	Rewrites map[string]string `yaml:"rewrites,omitempty"`
	Helpers  Helpers           `yaml:"helpers"`
	MaxDepth int               `yaml:"max_depth,omitempty"`
}

// Helpers are the specifiers emitted for the AMD call shapes.
type Helpers struct {
	Require string `yaml:"require"`
	Define  string `yaml:"define"`
}

// Rewrite is a parsed rewrite value.
type Rewrite struct {
	// Target is the specifier that replaces the identifier.
	Target string
	// Append is emitted after the substituted reference; empty means none.
	Append string
}

// ParseRewrite splits a rewrite value at its first "+".
func ParseRewrite(value string) Rewrite {
	target, suffix, _ := strings.Cut(value, "+")
	return Rewrite{Target: target, Append: suffix}
}

// New returns a configuration with defaults and the given rewrite table.
func New(rewrites map[string]string) *Config {
	c := &Config{Rewrites: rewrites}
	applyDefaults(c)

	return c
}

// Default returns a configuration without rewrites.
func Default() *Config {
	return New(nil)
}

// Rewrite looks up the rewrite for an identifier.
func (c *Config) Rewrite(name string) (Rewrite, bool) {
	value, ok := c.Rewrites[name]
	if !ok {
		return Rewrite{}, false
	}

	return ParseRewrite(value), true
}

// Tracked reports whether declarations of name shadow something the walker
// cares about.
func (c *Config) Tracked(name string) bool {
	if name == LoaderName || name == DefineName {
		return true
	}

	_, ok := c.Rewrites[name]

	return ok
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = DefaultVersion
	}

	if c.Helpers.Require == "" {
		c.Helpers.Require = DefaultRequireHelper
	}

	if c.Helpers.Define == "" {
		c.Helpers.Define = DefaultDefineHelper
	}

	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
}

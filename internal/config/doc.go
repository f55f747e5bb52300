// Package config loads and validates the walker configuration.
//
// The configuration is a small YAML document:
//
//	version: "1"
//	# free identifiers replaced by a module reference
//	rewrites:
//	  module: "(webpack)/buildin/module.js+(module)"
//	  process: "process/browser"
//	# helper specifiers emitted for AMD call shapes
//	helpers:
//	  require: __webpack_amd_require
//	  define: __webpack_amd_define
//	# recursion guard for pathological nesting
//	max_depth: 4096
//
// # Rewrite values
//
// A rewrite value is "target" or "target+suffix". The part left of the first
// "+" is the module specifier that replaces the identifier; the part right of
// it is appended verbatim after the substituted reference.
//
// # Tracked names
//
// The loader functions "require" and "define" are always tracked for
// shadowing, together with every rewrite key. A parameter or variable with
// one of those names suppresses special handling inside its scope.
package config

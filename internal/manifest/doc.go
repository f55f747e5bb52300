// Package manifest defines the records produced by the dependency walker.
//
// A Scope accumulates what one lexical or deferred scope references:
//
//   - Dependency: one nameable module reference (or a loader/exports sentinel)
//   - Context: a directory-pattern load resolved at run time
//   - AsyncScope: a callback body the host convention loads lazily, with its
//     own nested Scope
//
// Records are appended during a walk and never changed afterwards. Every
// record carries the line, column and byte ranges a rewriter needs to splice
// replacement text without reparsing.
//
// The serialized form is
//
//	{ "requires": [...], "contexts": [...], "asyncs": [ { "requires": ..., ... } ] }
//
// with ranges written as [start, end] pairs.
package manifest

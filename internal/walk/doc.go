// Package walk extracts module references from a JavaScript syntax tree.
//
// A single synchronous traversal recognises the loader call shapes of the
// CommonJS and AMD conventions (require, require.resolve, require.context,
// require.ensure, define and friends), tracks lexical shadowing of the
// loader names and of every rewritten identifier, and partially evaluates
// string arguments. The result is a manifest.Scope tree plus diagnostics for
// call sites that could not be understood.
//
// Callbacks that the loader runs lazily (AMD require arrays, ensure blocks)
// get their own nested manifest scope. Such a scope is walked as soon as its
// call is recognised and is attached to its parent once complete.
package walk

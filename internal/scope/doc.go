// Package scope tracks lexical shadowing of the free names the dependency
// walker gives special meaning to (the loader functions and every name in the
// rewrite table).
//
// The tracker is a plain stack: declarations push, leaving a function
// truncates back to a saved mark. Names are never popped individually, so
// every declaration inside one function scope stays in effect until that
// scope is left.
package scope

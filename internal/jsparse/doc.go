// Package jsparse turns JavaScript source text into a jsast.Program.
//
// Parsing is done by the tree-sitter JavaScript grammar. The concrete
// syntax tree is folded into the ESTree-shaped jsast nodes: parentheses are
// unwrapped, comments are dropped, string escapes are decoded and grammar
// nodes without a jsast counterpart become jsast.Unknown. Byte ranges and
// line/column positions are carried over for every node.
package jsparse

// Package jsast defines the syntax tree consumed by the dependency walker.
//
// The node set mirrors the ESTree shape produced by common JavaScript parsers
// (esprima, acorn) restricted to the statements and expressions the walker
// understands. Every other node kind decodes to *Unknown and is skipped by
// consumers rather than rejected.
//
// Key types:
//   - Node: common interface (Kind + Pos)
//   - Position: byte range [start,end) plus 1-based line / 0-based column
//   - Literal: string, number, boolean, null or regular expression value
//
// Trees are built either by Decode (ESTree JSON) or by the jsparse front end.
package jsast

package jsast

import "fmt"

// Range is a half-open byte range [Start, End) into the source text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Interior returns the range with one byte trimmed from each side, e.g. the
// contents of a block without its braces.
func (r Range) Interior() Range {
	if r.Len() < 2 {
		return Range{Start: r.Start, End: r.Start}
	}

	return Range{Start: r.Start + 1, End: r.End - 1}
}

// String returns the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Loc is a source location. Line is 1-based, Column is 0-based.
type Loc struct {
	Line   int
	Column int
}

// String returns the location as "line:column".
func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Position is embedded into every node.
type Position struct {
	Range Range
	Loc   Loc
}

// Pos returns the position itself so that embedding types satisfy Node.
func (p Position) Pos() Position {
	return p
}

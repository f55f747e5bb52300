package strval

import (
	"depwalk/internal/jsast"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the shape of an evaluation result.
type Kind int

const (
	Dynamic Kind = iota
	Static
	Conditional
	Partial
)

// Result is the outcome of Evaluate.
type Result struct {
	Kind Kind
	// Value is the literal text for Static and the known prefix for Partial.
	Value string
	// Range covers Value in the source.
	Range jsast.Range
	// Alternatives are the Static leaves of a Conditional, in source order.
	Alternatives []Result
}

func dynamic() Result {
	return Result{Kind: Dynamic}
}

func static(value string, r jsast.Range) Result {
	return Result{Kind: Static, Value: value, Range: r}
}

// partial keeps a known prefix; an empty prefix carries no information.
func partial(prefix string, r jsast.Range) Result {
	if prefix == "" {
		return dynamic()
	}

	return Result{Kind: Partial, Value: prefix, Range: r}
}

// IsLiteral reports whether the result is Static or Conditional, i.e. every
// possible value is known.
func (r Result) IsLiteral() bool {
	return r.Kind == Static || r.Kind == Conditional
}

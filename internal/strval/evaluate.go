package strval

import (
	"fmt"
	"strings"

	"depwalk/internal/jsast"
)

// Evaluate reduces n to the most specific Result it can.
func Evaluate(n jsast.Node) Result {
	switch e := n.(type) {
	case *jsast.Literal:
		return static(e.Text(), e.Range)

	case *jsast.BinaryExpression:
		if e.Operator == "+" {
			return concat(Evaluate(e.Left), Evaluate(e.Right))
		}

	case *jsast.ConditionalExpression:
		return branch(Evaluate(e.Consequent), Evaluate(e.Alternate))
	}

	return dynamic()
}

// concat joins two operands of "+". Only a known left side can contribute a
// prefix; once the left side is unknown nothing after it matters.
func concat(left, right Result) Result {
	switch {
	case left.Kind == Partial:
		return left
	case left.Kind != Static:
		return dynamic()
	}

	joined := jsast.Range{Start: left.Range.Start, End: right.Range.End}

	switch right.Kind {
	case Static:
		return static(left.Value+right.Value, joined)
	case Partial:
		return partial(left.Value+right.Value, joined)
	default:
		return partial(left.Value, left.Range)
	}
}

// branch flattens the arms of a conditional into one list of alternatives.
func branch(arms ...Result) Result {
	var alts []Result

	for _, arm := range arms {
		switch arm.Kind {
		case Static:
			alts = append(alts, arm)
		case Conditional:
			alts = append(alts, arm.Alternatives...)
		default:
			return dynamic()
		}
	}

	return Result{Kind: Conditional, Alternatives: alts}
}

// UnsupportedError reports an expression that has to be a literal but is not.
type UnsupportedError struct {
	// Node is the offending expression; nil when it was missing altogether.
	Node jsast.Node
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	if e.Node == nil {
		return "missing expression where a module specifier is required"
	}

	pos := e.Node.Pos()

	return fmt.Sprintf("%s is not supported as a module specifier (at %s)", nodeType(e.Node), pos.Loc)
}

// Pos returns the position of the offending expression.
func (e *UnsupportedError) Pos() jsast.Position {
	if e.Node == nil {
		return jsast.Position{}
	}

	return e.Node.Pos()
}

func nodeType(n jsast.Node) string {
	if u, ok := n.(*jsast.Unknown); ok {
		return u.Type
	}

	return n.Kind().String()
}

// EvaluateStatic requires n to be a literal or a "+" concatenation of
// literals and returns the joined text.
func EvaluateStatic(n jsast.Node) (string, error) {
	switch e := n.(type) {
	case *jsast.Literal:
		return e.Text(), nil

	case *jsast.BinaryExpression:
		if e.Operator != "+" {
			break
		}

		left, err := EvaluateStatic(e.Left)
		if err != nil {
			return "", err
		}

		right, err := EvaluateStatic(e.Right)
		if err != nil {
			return "", err
		}

		return left + right, nil
	}

	return "", &UnsupportedError{Node: n}
}

// EvaluateStaticArray evaluates every element of an array literal with
// EvaluateStatic. Any other expression is treated as a one-element list.
// A single unsupported element fails the whole array.
func EvaluateStaticArray(n jsast.Node) ([]string, error) {
	arr, ok := n.(*jsast.ArrayExpression)
	if !ok {
		s, err := EvaluateStatic(n)
		if err != nil {
			return nil, err
		}

		return []string{s}, nil
	}

	out := make([]string, 0, len(arr.Elements))

	for _, el := range arr.Elements {
		s, err := EvaluateStatic(el)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

// Split divides a path at its last "/" into the directory part and a
// remainder rewritten relative to that directory ("a/b/c" -> "a/b", "./c").
func Split(value string) (dir, remainder string, ok bool) {
	i := strings.LastIndexByte(value, '/')
	if i < 0 {
		return "", "", false
	}

	return value[:i], "." + value[i:], true
}

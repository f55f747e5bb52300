package jsast

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the concrete type of a Node. The String form of every
// kind except KindUnknown equals its ESTree "type" name.
type Kind int

const (
	KindUnknown Kind = iota

	// statements
	KindProgram
	KindExpressionStatement
	KindBlockStatement
	KindIfStatement
	KindLabeledStatement
	KindWithStatement
	KindSwitchStatement
	KindSwitchCase
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindFunctionDeclaration
	KindVariableDeclaration
	KindVariableDeclarator

	// expressions
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindSequenceExpression
	KindUpdateExpression
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindNewExpression
	KindCallExpression
	KindMemberExpression
	KindIdentifier
	KindLiteral

	// patterns
	KindAssignmentPattern
	KindRestElement
)

// IsFunction reports whether the kind introduces a function scope.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		return true
	default:
		return false
	}
}

package jsast

import (
	"math"
	"strconv"
	"strings"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Pos() Position
}

// Unknown stands in for any node kind outside the supported grammar.
type Unknown struct {
	Position
	Type string
}

func (*Unknown) Kind() Kind { return KindUnknown }

// --- statements ---

type Program struct {
	Position
	Body []Node
}

type ExpressionStatement struct {
	Position
	Expression Node
}

type BlockStatement struct {
	Position
	Body []Node
}

type IfStatement struct {
	Position
	Test       Node
	Consequent Node
	Alternate  Node // nil when there is no else branch
}

type LabeledStatement struct {
	Position
	Label *Identifier
	Body  Node
}

type WithStatement struct {
	Position
	Object Node
	Body   Node
}

type SwitchStatement struct {
	Position
	Discriminant Node
	Cases        []*SwitchCase
}

// SwitchCase is a single case clause; Test is nil for the default clause.
type SwitchCase struct {
	Position
	Test       Node
	Consequent []Node
}

type ReturnStatement struct {
	Position
	Argument Node
}

type ThrowStatement struct {
	Position
	Argument Node
}

type TryStatement struct {
	Position
	Block     *BlockStatement
	Handlers  []*CatchClause
	Finalizer *BlockStatement
}

// CatchClause is a catch handler. Guard is a non-standard condition some
// parsers still emit (catch (e if cond)).
type CatchClause struct {
	Position
	Param Node
	Guard Node
	Body  *BlockStatement
}

type WhileStatement struct {
	Position
	Test Node
	Body Node
}

type DoWhileStatement struct {
	Position
	Body Node
	Test Node
}

type ForStatement struct {
	Position
	Init   Node // *VariableDeclaration, expression or nil
	Test   Node
	Update Node
	Body   Node
}

type ForInStatement struct {
	Position
	Left  Node // *VariableDeclaration or expression
	Right Node
	Body  Node
}

type ForOfStatement struct {
	Position
	Left  Node
	Right Node
	Body  Node
}

type FunctionDeclaration struct {
	Position
	ID     *Identifier
	Params []Node
	Body   Node
}

type VariableDeclaration struct {
	Position
	DeclKind     string // var, let or const
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	Position
	ID   Node
	Init Node
}

func (*Program) Kind() Kind             { return KindProgram }
func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind      { return KindBlockStatement }
func (*IfStatement) Kind() Kind         { return KindIfStatement }
func (*LabeledStatement) Kind() Kind    { return KindLabeledStatement }
func (*WithStatement) Kind() Kind       { return KindWithStatement }
func (*SwitchStatement) Kind() Kind     { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind          { return KindSwitchCase }
func (*ReturnStatement) Kind() Kind     { return KindReturnStatement }
func (*ThrowStatement) Kind() Kind      { return KindThrowStatement }
func (*TryStatement) Kind() Kind        { return KindTryStatement }
func (*CatchClause) Kind() Kind         { return KindCatchClause }
func (*WhileStatement) Kind() Kind      { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind    { return KindDoWhileStatement }
func (*ForStatement) Kind() Kind        { return KindForStatement }
func (*ForInStatement) Kind() Kind      { return KindForInStatement }
func (*ForOfStatement) Kind() Kind      { return KindForOfStatement }
func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind  { return KindVariableDeclarator }

// --- expressions ---

type ArrayExpression struct {
	Position
	Elements []Node // holes are nil
}

type ObjectExpression struct {
	Position
	Properties []*Property
}

type Property struct {
	Position
	Key      Node
	Value    Node
	Computed bool
}

type FunctionExpression struct {
	Position
	ID     *Identifier // nil for anonymous functions
	Params []Node
	Body   Node
}

type ArrowFunctionExpression struct {
	Position
	Params []Node
	Body   Node // *BlockStatement or an expression
}

type SequenceExpression struct {
	Position
	Expressions []Node
}

type UpdateExpression struct {
	Position
	Operator string
	Prefix   bool
	Argument Node
}

type UnaryExpression struct {
	Position
	Operator string
	Argument Node
}

type BinaryExpression struct {
	Position
	Operator string
	Left     Node
	Right    Node
}

type LogicalExpression struct {
	Position
	Operator string
	Left     Node
	Right    Node
}

type AssignmentExpression struct {
	Position
	Operator string
	Left     Node
	Right    Node
}

type ConditionalExpression struct {
	Position
	Test       Node
	Consequent Node
	Alternate  Node
}

type NewExpression struct {
	Position
	Callee    Node
	Arguments []Node
}

type CallExpression struct {
	Position
	Callee    Node
	Arguments []Node
}

type MemberExpression struct {
	Position
	Object   Node
	Property Node
	Computed bool
}

type Identifier struct {
	Position
	Name string
}

// RegExp is the value of a regular expression literal.
type RegExp struct {
	Pattern string
	Flags   string
}

// Literal holds a string, float64, bool, nil (null) or RegExp value.
type Literal struct {
	Position
	Value any
	Raw   string
}

// AssignmentPattern is a parameter with a default value.
type AssignmentPattern struct {
	Position
	Left  Node
	Right Node
}

// RestElement is a ...rest parameter.
type RestElement struct {
	Position
	Argument Node
}

func (*ArrayExpression) Kind() Kind         { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind        { return KindObjectExpression }
func (*Property) Kind() Kind                { return KindProperty }
func (*FunctionExpression) Kind() Kind      { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind { return KindArrowFunctionExpression }
func (*SequenceExpression) Kind() Kind      { return KindSequenceExpression }
func (*UpdateExpression) Kind() Kind        { return KindUpdateExpression }
func (*UnaryExpression) Kind() Kind         { return KindUnaryExpression }
func (*BinaryExpression) Kind() Kind        { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind       { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind    { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind   { return KindConditionalExpression }
func (*NewExpression) Kind() Kind           { return KindNewExpression }
func (*CallExpression) Kind() Kind          { return KindCallExpression }
func (*MemberExpression) Kind() Kind        { return KindMemberExpression }
func (*Identifier) Kind() Kind              { return KindIdentifier }
func (*Literal) Kind() Kind                 { return KindLiteral }
func (*AssignmentPattern) Kind() Kind       { return KindAssignmentPattern }
func (*RestElement) Kind() Kind             { return KindRestElement }

// IsString reports whether the literal holds a string value.
func (l *Literal) IsString() bool {
	_, ok := l.Value.(string)
	return ok
}

// Text renders the literal value the way string coercion does, so that
// numbers, booleans and null can take part in concatenation.
func (l *Literal) Text() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	case RegExp:
		return "/" + v.Pattern + "/" + v.Flags
	default:
		return l.Raw
	}
}

// FormatNumber formats a number the way JavaScript's Number#toString does
// for the cases that matter here: integers print without a fraction and
// large or tiny magnitudes use an exponent without zero padding.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + digits
}

// IdentifierName returns the name if n is an identifier.
func IdentifierName(n Node) (string, bool) {
	id, ok := n.(*Identifier)
	if !ok || id == nil {
		return "", false
	}

	return id.Name, true
}

// IsIdentifier reports whether n is an identifier with the given name.
func IsIdentifier(n Node, name string) bool {
	got, ok := IdentifierName(n)
	return ok && got == name
}

// BindingName returns the identifier bound by a simple parameter or
// declarator target: a plain identifier, a defaulted identifier or a rest
// identifier. Destructuring patterns return false.
func BindingName(n Node) (string, bool) {
	switch p := n.(type) {
	case *Identifier:
		return p.Name, true
	case *AssignmentPattern:
		return IdentifierName(p.Left)
	case *RestElement:
		return IdentifierName(p.Argument)
	default:
		return "", false
	}
}

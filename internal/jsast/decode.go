package jsast

import (
	"encoding/json"
	"fmt"
)

// ParseError is returned when an ESTree document cannot be turned into a tree.
type ParseError struct {
	// Type is the ESTree type of the offending node, if known.
	Type string
	// Msg describes the problem.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("estree: %s: %s", e.Type, e.Msg)
	}

	return "estree: " + e.Msg
}

// Decode builds a tree from an ESTree JSON document. The root must be a
// Program and every node must carry a byte range (esprima "range" or acorn
// "start"/"end") and a "loc" with a start line and column.
func Decode(data []byte) (*Program, error) {
	var raw any

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}

	if raw == nil {
		return nil, &ParseError{Msg: "document is empty"}
	}

	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}

	prog, ok := n.(*Program)
	if !ok {
		typ := n.Kind().String()
		if u, isUnknown := n.(*Unknown); isUnknown {
			typ = u.Type
		}

		return nil, &ParseError{Type: typ, Msg: "root node is not a Program"}
	}

	return prog, nil
}

type object map[string]any

func decodeNode(v any) (Node, error) {
	if v == nil {
		return nil, nil
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &ParseError{Msg: "node is not an object"}
	}

	o := object(m)

	typ, _ := o["type"].(string)
	if typ == "" {
		return nil, &ParseError{Msg: "node has no type"}
	}

	pos, err := o.position(typ)
	if err != nil {
		return nil, err
	}

	return o.decode(typ, pos)
}

//nolint:gocyclo,cyclop // one case per node kind
func (o object) decode(typ string, pos Position) (Node, error) {
	var d fieldDecoder

	var n Node

	switch typ {
	case "Program":
		n = &Program{Position: pos, Body: d.nodes(o, "body")}
	case "ExpressionStatement":
		n = &ExpressionStatement{Position: pos, Expression: d.node(o, "expression")}
	case "BlockStatement":
		n = &BlockStatement{Position: pos, Body: d.nodes(o, "body")}
	case "IfStatement":
		n = &IfStatement{
			Position:   pos,
			Test:       d.node(o, "test"),
			Consequent: d.node(o, "consequent"),
			Alternate:  d.node(o, "alternate"),
		}
	case "LabeledStatement":
		n = &LabeledStatement{Position: pos, Label: d.ident(o, "label"), Body: d.node(o, "body")}
	case "WithStatement":
		n = &WithStatement{Position: pos, Object: d.node(o, "object"), Body: d.node(o, "body")}
	case "SwitchStatement":
		s := &SwitchStatement{Position: pos, Discriminant: d.node(o, "discriminant")}
		for _, c := range d.nodes(o, "cases") {
			if sc, ok := c.(*SwitchCase); ok {
				s.Cases = append(s.Cases, sc)
			}
		}

		n = s
	case "SwitchCase":
		n = &SwitchCase{Position: pos, Test: d.node(o, "test"), Consequent: d.nodes(o, "consequent")}
	case "ReturnStatement":
		n = &ReturnStatement{Position: pos, Argument: d.node(o, "argument")}
	case "ThrowStatement":
		n = &ThrowStatement{Position: pos, Argument: d.node(o, "argument")}
	case "TryStatement":
		n = o.decodeTry(&d, pos)
	case "CatchClause":
		n = &CatchClause{
			Position: pos,
			Param:    d.node(o, "param"),
			Guard:    d.node(o, "guard"),
			Body:     d.block(o, "body"),
		}
	case "WhileStatement":
		n = &WhileStatement{Position: pos, Test: d.node(o, "test"), Body: d.node(o, "body")}
	case "DoWhileStatement":
		n = &DoWhileStatement{Position: pos, Body: d.node(o, "body"), Test: d.node(o, "test")}
	case "ForStatement":
		n = &ForStatement{
			Position: pos,
			Init:     d.node(o, "init"),
			Test:     d.node(o, "test"),
			Update:   d.node(o, "update"),
			Body:     d.node(o, "body"),
		}
	case "ForInStatement":
		n = &ForInStatement{Position: pos, Left: d.node(o, "left"), Right: d.node(o, "right"), Body: d.node(o, "body")}
	case "ForOfStatement":
		n = &ForOfStatement{Position: pos, Left: d.node(o, "left"), Right: d.node(o, "right"), Body: d.node(o, "body")}
	case "FunctionDeclaration":
		n = &FunctionDeclaration{
			Position: pos,
			ID:       d.ident(o, "id"),
			Params:   d.nodes(o, "params"),
			Body:     d.node(o, "body"),
		}
	case "VariableDeclaration":
		v := &VariableDeclaration{Position: pos}
		v.DeclKind, _ = o["kind"].(string)

		for _, decl := range d.nodes(o, "declarations") {
			if vd, ok := decl.(*VariableDeclarator); ok {
				v.Declarations = append(v.Declarations, vd)
			}
		}

		n = v
	case "VariableDeclarator":
		n = &VariableDeclarator{Position: pos, ID: d.node(o, "id"), Init: d.node(o, "init")}
	case "ArrayExpression":
		n = &ArrayExpression{Position: pos, Elements: d.nodes(o, "elements")}
	case "ObjectExpression":
		obj := &ObjectExpression{Position: pos}
		for _, p := range d.nodes(o, "properties") {
			if prop, ok := p.(*Property); ok {
				obj.Properties = append(obj.Properties, prop)
			}
		}

		n = obj
	case "Property":
		computed, _ := o["computed"].(bool)
		n = &Property{Position: pos, Key: d.node(o, "key"), Value: d.node(o, "value"), Computed: computed}
	case "FunctionExpression":
		n = &FunctionExpression{
			Position: pos,
			ID:       d.ident(o, "id"),
			Params:   d.nodes(o, "params"),
			Body:     d.node(o, "body"),
		}
	case "ArrowFunctionExpression":
		n = &ArrowFunctionExpression{Position: pos, Params: d.nodes(o, "params"), Body: d.node(o, "body")}
	case "SequenceExpression":
		n = &SequenceExpression{Position: pos, Expressions: d.nodes(o, "expressions")}
	case "UpdateExpression":
		prefix, _ := o["prefix"].(bool)
		n = &UpdateExpression{Position: pos, Operator: o.str("operator"), Prefix: prefix, Argument: d.node(o, "argument")}
	case "UnaryExpression":
		n = &UnaryExpression{Position: pos, Operator: o.str("operator"), Argument: d.node(o, "argument")}
	case "BinaryExpression":
		n = &BinaryExpression{Position: pos, Operator: o.str("operator"), Left: d.node(o, "left"), Right: d.node(o, "right")}
	case "LogicalExpression":
		n = &LogicalExpression{Position: pos, Operator: o.str("operator"), Left: d.node(o, "left"), Right: d.node(o, "right")}
	case "AssignmentExpression":
		n = &AssignmentExpression{Position: pos, Operator: o.str("operator"), Left: d.node(o, "left"), Right: d.node(o, "right")}
	case "ConditionalExpression":
		n = &ConditionalExpression{
			Position:   pos,
			Test:       d.node(o, "test"),
			Consequent: d.node(o, "consequent"),
			Alternate:  d.node(o, "alternate"),
		}
	case "NewExpression":
		n = &NewExpression{Position: pos, Callee: d.node(o, "callee"), Arguments: d.nodes(o, "arguments")}
	case "CallExpression":
		n = &CallExpression{Position: pos, Callee: d.node(o, "callee"), Arguments: d.nodes(o, "arguments")}
	case "MemberExpression":
		computed, _ := o["computed"].(bool)
		n = &MemberExpression{Position: pos, Object: d.node(o, "object"), Property: d.node(o, "property"), Computed: computed}
	case "Identifier":
		n = &Identifier{Position: pos, Name: o.str("name")}
	case "Literal":
		n = o.decodeLiteral(pos)
	case "AssignmentPattern":
		n = &AssignmentPattern{Position: pos, Left: d.node(o, "left"), Right: d.node(o, "right")}
	case "RestElement":
		n = &RestElement{Position: pos, Argument: d.node(o, "argument")}
	case "ParenthesizedExpression":
		// acorn with preserveParens; the tree has no parenthesis node
		n = d.node(o, "expression")
	default:
		n = &Unknown{Position: pos, Type: typ}
	}

	if d.err != nil {
		return nil, d.err
	}

	return n, nil
}

func (o object) decodeTry(d *fieldDecoder, pos Position) *TryStatement {
	t := &TryStatement{
		Position:  pos,
		Block:     d.block(o, "block"),
		Finalizer: d.block(o, "finalizer"),
	}

	// ESTree has a single "handler"; older esprima emits a "handlers" list.
	if h, ok := d.node(o, "handler").(*CatchClause); ok {
		t.Handlers = append(t.Handlers, h)
	}

	for _, h := range d.nodes(o, "handlers") {
		if cc, ok := h.(*CatchClause); ok {
			t.Handlers = append(t.Handlers, cc)
		}
	}

	return t
}

func (o object) decodeLiteral(pos Position) *Literal {
	lit := &Literal{Position: pos, Raw: o.str("raw")}

	if re, ok := o["regex"].(map[string]any); ok {
		pattern, _ := re["pattern"].(string)
		flags, _ := re["flags"].(string)
		lit.Value = RegExp{Pattern: pattern, Flags: flags}

		return lit
	}

	switch v := o["value"].(type) {
	case string, float64, bool, nil:
		lit.Value = v
	default:
		// bigint and other exotic values keep their source text
		lit.Value = lit.Raw
	}

	return lit
}

func (o object) str(key string) string {
	s, _ := o[key].(string)
	return s
}

func (o object) position(typ string) (Position, error) {
	var pos Position

	if r, ok := o["range"].([]any); ok && len(r) == 2 {
		start, okStart := r[0].(float64)
		end, okEnd := r[1].(float64)

		if !okStart || !okEnd {
			return pos, &ParseError{Type: typ, Msg: "range is not numeric"}
		}

		pos.Range = Range{Start: int(start), End: int(end)}
	} else {
		start, okStart := o["start"].(float64)
		end, okEnd := o["end"].(float64)

		if !okStart || !okEnd {
			return pos, &ParseError{Type: typ, Msg: "node has no range information"}
		}

		pos.Range = Range{Start: int(start), End: int(end)}
	}

	loc, ok := o["loc"].(map[string]any)
	if !ok {
		return pos, &ParseError{Type: typ, Msg: "node has no location information"}
	}

	start, ok := loc["start"].(map[string]any)
	if !ok {
		return pos, &ParseError{Type: typ, Msg: "location has no start"}
	}

	line, okLine := start["line"].(float64)
	column, okColumn := start["column"].(float64)

	if !okLine || !okColumn {
		return pos, &ParseError{Type: typ, Msg: "location start is not numeric"}
	}

	pos.Loc = Loc{Line: int(line), Column: int(column)}

	return pos, nil
}

// fieldDecoder decodes child fields and keeps the first error, so that the
// per-kind cases above stay flat.
type fieldDecoder struct {
	err error
}

func (d *fieldDecoder) node(o object, key string) Node {
	if d.err != nil {
		return nil
	}

	n, err := decodeNode(o[key])
	if err != nil {
		d.err = err
		return nil
	}

	return n
}

func (d *fieldDecoder) nodes(o object, key string) []Node {
	if d.err != nil {
		return nil
	}

	list, ok := o[key].([]any)
	if !ok {
		return nil
	}

	out := make([]Node, 0, len(list))

	for _, item := range list {
		n, err := decodeNode(item)
		if err != nil {
			d.err = err
			return nil
		}

		out = append(out, n)
	}

	return out
}

func (d *fieldDecoder) ident(o object, key string) *Identifier {
	id, _ := d.node(o, key).(*Identifier)
	return id
}

func (d *fieldDecoder) block(o object, key string) *BlockStatement {
	b, _ := d.node(o, key).(*BlockStatement)
	return b
}

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"depwalk/internal/jsast"
)

type builder struct {
	src []byte
}

func (b *builder) pos(n *sitter.Node) jsast.Position {
	p := n.StartPoint()

	return jsast.Position{
		Range: jsast.Range{Start: int(n.StartByte()), End: int(n.EndByte())},
		Loc:   jsast.Loc{Line: int(p.Row) + 1, Column: int(p.Column)},
	}
}

func (b *builder) text(n *sitter.Node) string {
	return n.Content(b.src)
}

func (b *builder) unknown(n *sitter.Node) *jsast.Unknown {
	return &jsast.Unknown{Position: b.pos(n), Type: n.Type()}
}

// named returns the named children of n without comments.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)

	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c == nil || c.Type() == "comment" {
			continue
		}

		out = append(out, c)
	}

	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	children := named(n)
	if len(children) == 0 {
		return nil
	}

	return children[0]
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func (b *builder) program(n *sitter.Node) *jsast.Program {
	return &jsast.Program{Position: b.pos(n), Body: b.statements(named(n))}
}

func (b *builder) statements(nodes []*sitter.Node) []jsast.Node {
	out := make([]jsast.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, b.stmt(n))
	}

	return out
}

func (b *builder) block(n *sitter.Node) *jsast.BlockStatement {
	if n == nil {
		return nil
	}

	return &jsast.BlockStatement{Position: b.pos(n), Body: b.statements(named(n))}
}

func (b *builder) stmt(n *sitter.Node) jsast.Node {
	if n == nil {
		return nil
	}

	pos := b.pos(n)

	switch n.Type() {
	case "expression_statement":
		return &jsast.ExpressionStatement{Position: pos, Expression: b.expr(firstNamed(n))}

	case "statement_block":
		return b.block(n)

	case "if_statement":
		s := &jsast.IfStatement{
			Position:   pos,
			Test:       b.expr(n.ChildByFieldName("condition")),
			Consequent: b.stmt(n.ChildByFieldName("consequence")),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == "else_clause" {
				alt = firstNamed(alt)
			}

			s.Alternate = b.stmt(alt)
		}

		return s

	case "labeled_statement":
		s := &jsast.LabeledStatement{Position: pos, Body: b.stmt(n.ChildByFieldName("body"))}
		if label := n.ChildByFieldName("label"); label != nil {
			s.Label = &jsast.Identifier{Position: b.pos(label), Name: b.text(label)}
		}

		return s

	case "with_statement":
		return &jsast.WithStatement{
			Position: pos,
			Object:   b.expr(n.ChildByFieldName("object")),
			Body:     b.stmt(n.ChildByFieldName("body")),
		}

	case "switch_statement":
		return b.switchStatement(n)

	case "return_statement":
		return &jsast.ReturnStatement{Position: pos, Argument: b.expr(firstNamed(n))}

	case "throw_statement":
		return &jsast.ThrowStatement{Position: pos, Argument: b.expr(firstNamed(n))}

	case "try_statement":
		return b.tryStatement(n)

	case "while_statement":
		return &jsast.WhileStatement{
			Position: pos,
			Test:     b.expr(n.ChildByFieldName("condition")),
			Body:     b.stmt(n.ChildByFieldName("body")),
		}

	case "do_statement":
		return &jsast.DoWhileStatement{
			Position: pos,
			Body:     b.stmt(n.ChildByFieldName("body")),
			Test:     b.expr(n.ChildByFieldName("condition")),
		}

	case "for_statement":
		return &jsast.ForStatement{
			Position: pos,
			Init:     b.forClause(n.ChildByFieldName("initializer")),
			Test:     b.forClause(n.ChildByFieldName("condition")),
			Update:   b.forClause(n.ChildByFieldName("increment")),
			Body:     b.stmt(n.ChildByFieldName("body")),
		}

	case "for_in_statement":
		return b.forInStatement(n)

	case "function_declaration", "generator_function_declaration":
		s := &jsast.FunctionDeclaration{
			Position: pos,
			Params:   b.params(n.ChildByFieldName("parameters")),
			Body:     b.stmt(n.ChildByFieldName("body")),
		}
		if name := n.ChildByFieldName("name"); name != nil {
			s.ID = &jsast.Identifier{Position: b.pos(name), Name: b.text(name)}
		}

		return s

	case "variable_declaration", "lexical_declaration":
		return b.declaration(n)
	}

	return b.unknown(n)
}

func (b *builder) switchStatement(n *sitter.Node) *jsast.SwitchStatement {
	s := &jsast.SwitchStatement{
		Position:     b.pos(n),
		Discriminant: b.expr(n.ChildByFieldName("value")),
	}

	for _, c := range named(n.ChildByFieldName("body")) {
		if c.Type() != "switch_case" && c.Type() != "switch_default" {
			continue
		}

		sc := &jsast.SwitchCase{Position: b.pos(c)}
		value := c.ChildByFieldName("value")

		if value != nil {
			sc.Test = b.expr(value)
		}

		for _, child := range named(c) {
			if sameNode(child, value) {
				continue
			}

			sc.Consequent = append(sc.Consequent, b.stmt(child))
		}

		s.Cases = append(s.Cases, sc)
	}

	return s
}

func (b *builder) tryStatement(n *sitter.Node) *jsast.TryStatement {
	s := &jsast.TryStatement{
		Position: b.pos(n),
		Block:    b.block(n.ChildByFieldName("body")),
	}

	if h := n.ChildByFieldName("handler"); h != nil {
		cc := &jsast.CatchClause{
			Position: b.pos(h),
			Body:     b.block(h.ChildByFieldName("body")),
		}
		if p := h.ChildByFieldName("parameter"); p != nil {
			cc.Param = b.pattern(p)
		}

		s.Handlers = append(s.Handlers, cc)
	}

	if f := n.ChildByFieldName("finalizer"); f != nil {
		s.Finalizer = b.block(f.ChildByFieldName("body"))
	}

	return s
}

// forClause converts one part of a for header. Depending on the grammar
// version the parts are wrapped in statements or bare.
func (b *builder) forClause(n *sitter.Node) jsast.Node {
	if n == nil || !n.IsNamed() {
		return nil
	}

	switch n.Type() {
	case "empty_statement":
		return nil
	case "expression_statement":
		return b.expr(firstNamed(n))
	case "variable_declaration", "lexical_declaration":
		return b.declaration(n)
	}

	return b.expr(n)
}

func (b *builder) forInStatement(n *sitter.Node) jsast.Node {
	pos := b.pos(n)
	left := n.ChildByFieldName("left")

	var head jsast.Node
	if kind := n.ChildByFieldName("kind"); kind != nil && left != nil {
		lpos := b.pos(left)
		head = &jsast.VariableDeclaration{
			Position: lpos,
			DeclKind: kind.Type(),
			Declarations: []*jsast.VariableDeclarator{
				{Position: lpos, ID: b.pattern(left)},
			},
		}
	} else {
		head = b.expr(left)
	}

	right := b.expr(n.ChildByFieldName("right"))
	body := b.stmt(n.ChildByFieldName("body"))

	if op := n.ChildByFieldName("operator"); op != nil && op.Type() == "of" {
		return &jsast.ForOfStatement{Position: pos, Left: head, Right: right, Body: body}
	}

	return &jsast.ForInStatement{Position: pos, Left: head, Right: right, Body: body}
}

func (b *builder) declaration(n *sitter.Node) *jsast.VariableDeclaration {
	d := &jsast.VariableDeclaration{Position: b.pos(n), DeclKind: "var"}
	if kind := n.ChildByFieldName("kind"); kind != nil {
		d.DeclKind = kind.Type()
	}

	for _, c := range named(n) {
		if c.Type() != "variable_declarator" {
			continue
		}

		d.Declarations = append(d.Declarations, &jsast.VariableDeclarator{
			Position: b.pos(c),
			ID:       b.pattern(c.ChildByFieldName("name")),
			Init:     b.expr(c.ChildByFieldName("value")),
		})
	}

	return d
}

// pattern converts a binding target. Only plain identifiers are modelled.
func (b *builder) pattern(n *sitter.Node) jsast.Node {
	if n == nil {
		return nil
	}

	if n.Type() == "identifier" {
		return &jsast.Identifier{Position: b.pos(n), Name: b.text(n)}
	}

	return b.unknown(n)
}

func (b *builder) params(n *sitter.Node) []jsast.Node {
	var out []jsast.Node

	for _, c := range named(n) {
		switch c.Type() {
		case "assignment_pattern":
			out = append(out, &jsast.AssignmentPattern{
				Position: b.pos(c),
				Left:     b.pattern(c.ChildByFieldName("left")),
				Right:    b.expr(c.ChildByFieldName("right")),
			})
		case "rest_pattern":
			out = append(out, &jsast.RestElement{Position: b.pos(c), Argument: b.pattern(firstNamed(c))})
		default:
			out = append(out, b.pattern(c))
		}
	}

	return out
}

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"depwalk/internal/jsast"
)

func (b *builder) exprs(nodes []*sitter.Node) []jsast.Node {
	out := make([]jsast.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, b.expr(n))
	}

	return out
}

func (b *builder) ident(n *sitter.Node) *jsast.Identifier {
	return &jsast.Identifier{Position: b.pos(n), Name: b.text(n)}
}

// expr converts an expression node. A nil node gives a nil Node.
func (b *builder) expr(n *sitter.Node) jsast.Node {
	if n == nil {
		return nil
	}

	pos := b.pos(n)

	switch n.Type() {
	case "parenthesized_expression":
		return b.expr(firstNamed(n))

	case "identifier", "undefined":
		return b.ident(n)

	case "string", "template_string", "number", "true", "false", "null", "regex":
		return b.literal(n)

	case "array":
		return &jsast.ArrayExpression{Position: pos, Elements: b.exprs(named(n))}

	case "object":
		return b.object(n)

	case "function", "function_expression", "generator_function":
		fn := &jsast.FunctionExpression{
			Position: pos,
			Params:   b.params(n.ChildByFieldName("parameters")),
			Body:     b.stmt(n.ChildByFieldName("body")),
		}
		if name := n.ChildByFieldName("name"); name != nil {
			fn.ID = b.ident(name)
		}

		return fn

	case "arrow_function":
		fn := &jsast.ArrowFunctionExpression{Position: pos}
		if p := n.ChildByFieldName("parameter"); p != nil {
			fn.Params = []jsast.Node{b.pattern(p)}
		} else {
			fn.Params = b.params(n.ChildByFieldName("parameters"))
		}

		if body := n.ChildByFieldName("body"); body != nil && body.Type() == "statement_block" {
			fn.Body = b.stmt(body)
		} else {
			fn.Body = b.expr(body)
		}

		return fn

	case "sequence_expression":
		return &jsast.SequenceExpression{Position: pos, Expressions: b.sequence(n, nil)}

	case "update_expression":
		op := n.ChildByFieldName("operator")
		arg := n.ChildByFieldName("argument")

		return &jsast.UpdateExpression{
			Position: pos,
			Operator: op.Type(),
			Prefix:   op.StartByte() < arg.StartByte(),
			Argument: b.expr(arg),
		}

	case "unary_expression":
		return &jsast.UnaryExpression{
			Position: pos,
			Operator: n.ChildByFieldName("operator").Type(),
			Argument: b.expr(n.ChildByFieldName("argument")),
		}

	case "binary_expression":
		op := n.ChildByFieldName("operator").Type()
		left := b.expr(n.ChildByFieldName("left"))
		right := b.expr(n.ChildByFieldName("right"))

		switch op {
		case "&&", "||", "??":
			return &jsast.LogicalExpression{Position: pos, Operator: op, Left: left, Right: right}
		}

		return &jsast.BinaryExpression{Position: pos, Operator: op, Left: left, Right: right}

	case "assignment_expression", "augmented_assignment_expression":
		op := "="
		if o := n.ChildByFieldName("operator"); o != nil {
			op = o.Type()
		}

		return &jsast.AssignmentExpression{
			Position: pos,
			Operator: op,
			Left:     b.expr(n.ChildByFieldName("left")),
			Right:    b.expr(n.ChildByFieldName("right")),
		}

	case "ternary_expression":
		return &jsast.ConditionalExpression{
			Position:   pos,
			Test:       b.expr(n.ChildByFieldName("condition")),
			Consequent: b.expr(n.ChildByFieldName("consequence")),
			Alternate:  b.expr(n.ChildByFieldName("alternative")),
		}

	case "new_expression":
		return &jsast.NewExpression{
			Position:  pos,
			Callee:    b.expr(n.ChildByFieldName("constructor")),
			Arguments: b.exprs(named(n.ChildByFieldName("arguments"))),
		}

	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args == nil || args.Type() != "arguments" {
			// tagged template
			return b.unknown(n)
		}

		return &jsast.CallExpression{
			Position:  pos,
			Callee:    b.expr(n.ChildByFieldName("function")),
			Arguments: b.exprs(named(args)),
		}

	case "member_expression":
		m := &jsast.MemberExpression{Position: pos, Object: b.expr(n.ChildByFieldName("object"))}
		if prop := n.ChildByFieldName("property"); prop != nil {
			m.Property = b.ident(prop)
		}

		return m

	case "subscript_expression":
		return &jsast.MemberExpression{
			Position: pos,
			Object:   b.expr(n.ChildByFieldName("object")),
			Property: b.expr(n.ChildByFieldName("index")),
			Computed: true,
		}
	}

	return b.unknown(n)
}

// sequence flattens nested comma expressions.
func (b *builder) sequence(n *sitter.Node, out []jsast.Node) []jsast.Node {
	for _, c := range named(n) {
		if c.Type() == "sequence_expression" {
			out = b.sequence(c, out)
			continue
		}

		out = append(out, b.expr(c))
	}

	return out
}

func (b *builder) object(n *sitter.Node) *jsast.ObjectExpression {
	obj := &jsast.ObjectExpression{Position: b.pos(n)}

	for _, c := range named(n) {
		pos := b.pos(c)

		switch c.Type() {
		case "pair":
			key, computed := b.propertyKey(c.ChildByFieldName("key"))
			obj.Properties = append(obj.Properties, &jsast.Property{
				Position: pos,
				Key:      key,
				Value:    b.expr(c.ChildByFieldName("value")),
				Computed: computed,
			})

		case "shorthand_property_identifier":
			obj.Properties = append(obj.Properties, &jsast.Property{
				Position: pos,
				Key:      b.ident(c),
				Value:    b.ident(c),
			})

		case "method_definition":
			key, computed := b.propertyKey(c.ChildByFieldName("name"))
			obj.Properties = append(obj.Properties, &jsast.Property{
				Position: pos,
				Key:      key,
				Value: &jsast.FunctionExpression{
					Position: pos,
					Params:   b.params(c.ChildByFieldName("parameters")),
					Body:     b.stmt(c.ChildByFieldName("body")),
				},
				Computed: computed,
			})
		}
	}

	return obj
}

func (b *builder) propertyKey(n *sitter.Node) (jsast.Node, bool) {
	if n == nil {
		return nil, false
	}

	switch n.Type() {
	case "computed_property_name":
		return b.expr(firstNamed(n)), true
	case "string", "number":
		return b.literal(n), false
	}

	return b.ident(n), false
}

package jsparse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"depwalk/internal/jsast"
)

// SyntaxError reports source text the grammar could not parse.
type SyntaxError struct {
	Loc jsast.Loc
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Loc, e.Msg)
}

// Parse parses src as a JavaScript script.
func Parse(ctx context.Context, src []byte) (*jsast.Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing javascript: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, src)
	}

	b := &builder{src: src}

	return b.program(root), nil
}

func syntaxError(root *sitter.Node, src []byte) error {
	n := firstError(root)
	if n == nil {
		n = root
	}

	p := n.StartPoint()
	loc := jsast.Loc{Line: int(p.Row) + 1, Column: int(p.Column)}

	if n.IsMissing() {
		return &SyntaxError{Loc: loc, Msg: fmt.Sprintf("missing %q", n.Type())}
	}

	text := n.Content(src)
	if len(text) > 24 {
		text = text[:24] + "..."
	}

	return &SyntaxError{Loc: loc, Msg: fmt.Sprintf("unexpected %q", text)}
}

// firstError finds the leftmost error or missing node.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || !(c.HasError() || c.IsMissing()) {
			continue
		}

		if e := firstError(c); e != nil {
			return e
		}
	}

	return nil
}

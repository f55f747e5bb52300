package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// esprima output for: require("a");
const requireCallJSON = `{
  "type": "Program",
  "range": [0, 13],
  "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 13}},
  "body": [{
    "type": "ExpressionStatement",
    "range": [0, 13],
    "loc": {"start": {"line": 1, "column": 0}},
    "expression": {
      "type": "CallExpression",
      "range": [0, 12],
      "loc": {"start": {"line": 1, "column": 0}},
      "callee": {"type": "Identifier", "name": "require", "range": [0, 7], "loc": {"start": {"line": 1, "column": 0}}},
      "arguments": [
        {"type": "Literal", "value": "a", "raw": "\"a\"", "range": [8, 11], "loc": {"start": {"line": 1, "column": 8}}}
      ]
    }
  }]
}`

func TestDecodeRequireCall(t *testing.T) {
	prog, err := Decode([]byte(requireCallJSON))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	stmt, ok := prog.Body[0].(*ExpressionStatement)
	require.True(t, ok)

	call, ok := stmt.Expression.(*CallExpression)
	require.True(t, ok)
	assert.True(t, IsIdentifier(call.Callee, "require"))
	assert.Equal(t, Range{Start: 0, End: 12}, call.Range)

	require.Len(t, call.Arguments, 1)
	lit, ok := call.Arguments[0].(*Literal)
	require.True(t, ok)
	assert.Equal(t, "a", lit.Text())
	assert.Equal(t, Loc{Line: 1, Column: 8}, lit.Loc)
}

func TestDecodeAcornPositions(t *testing.T) {
	doc := `{
	  "type": "Program", "start": 0, "end": 1,
	  "loc": {"start": {"line": 1, "column": 0}},
	  "body": [{
	    "type": "ExpressionStatement", "start": 0, "end": 1,
	    "loc": {"start": {"line": 1, "column": 0}},
	    "expression": {"type": "Identifier", "name": "x", "start": 0, "end": 1, "loc": {"start": {"line": 1, "column": 0}}}
	  }]
	}`

	prog, err := Decode([]byte(doc))
	require.NoError(t, err)

	stmt := prog.Body[0].(*ExpressionStatement)
	assert.True(t, IsIdentifier(stmt.Expression, "x"))
	assert.Equal(t, Range{Start: 0, End: 1}, stmt.Expression.Pos().Range)
}

func TestDecodeUnknownKindsAreKept(t *testing.T) {
	doc := `{
	  "type": "Program", "range": [0, 5], "loc": {"start": {"line": 1, "column": 0}},
	  "body": [{"type": "ClassDeclaration", "range": [0, 5], "loc": {"start": {"line": 1, "column": 0}}}]
	}`

	prog, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	u, ok := prog.Body[0].(*Unknown)
	require.True(t, ok)
	assert.Equal(t, "ClassDeclaration", u.Type)
	assert.Equal(t, KindUnknown, u.Kind())
}

func TestDecodeLegacyHandlers(t *testing.T) {
	pos := `"range": [0, 1], "loc": {"start": {"line": 1, "column": 0}}`
	doc := `{"type": "Program", ` + pos + `, "body": [{
	  "type": "TryStatement", ` + pos + `,
	  "block": {"type": "BlockStatement", ` + pos + `, "body": []},
	  "handlers": [{"type": "CatchClause", ` + pos + `, "param": null,
	    "body": {"type": "BlockStatement", ` + pos + `, "body": []}}],
	  "finalizer": null
	}]}`

	prog, err := Decode([]byte(doc))
	require.NoError(t, err)

	try, ok := prog.Body[0].(*TryStatement)
	require.True(t, ok)
	assert.NotNil(t, try.Block)
	assert.Len(t, try.Handlers, 1)
	assert.Nil(t, try.Finalizer)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "invalid json",
			doc:  `{`,
			msg:  "estree:",
		},
		{
			name: "null document",
			doc:  `null`,
			msg:  "document is empty",
		},
		{
			name: "missing range",
			doc:  `{"type": "Program", "loc": {"start": {"line": 1, "column": 0}}, "body": []}`,
			msg:  "no range information",
		},
		{
			name: "missing loc",
			doc:  `{"type": "Program", "range": [0, 0], "body": []}`,
			msg:  "no location information",
		},
		{
			name: "root is not a program",
			doc:  `{"type": "Identifier", "name": "x", "range": [0, 1], "loc": {"start": {"line": 1, "column": 0}}}`,
			msg:  "root node is not a Program",
		},
		{
			name: "nested node without position",
			doc: `{"type": "Program", "range": [0, 1], "loc": {"start": {"line": 1, "column": 0}},
			  "body": [{"type": "EmptyStatement"}]}`,
			msg: "EmptyStatement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDecodeLiteralValues(t *testing.T) {
	pos := `"range": [0, 1], "loc": {"start": {"line": 1, "column": 0}}`
	lit := func(fields string) string {
		return `{"type": "Program", ` + pos + `, "body": [{"type": "ExpressionStatement", ` + pos +
			`, "expression": {"type": "Literal", ` + pos + `, ` + fields + `}}]}`
	}

	tests := []struct {
		name   string
		fields string
		text   string
	}{
		{name: "string", fields: `"value": "x", "raw": "'x'"`, text: "x"},
		{name: "integer", fields: `"value": 42, "raw": "42"`, text: "42"},
		{name: "boolean", fields: `"value": true, "raw": "true"`, text: "true"},
		{name: "null", fields: `"value": null, "raw": "null"`, text: "null"},
		{name: "regex", fields: `"value": {}, "raw": "/a/g", "regex": {"pattern": "a", "flags": "g"}`, text: "/a/g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Decode([]byte(lit(tt.fields)))
			require.NoError(t, err)

			l := prog.Body[0].(*ExpressionStatement).Expression.(*Literal)
			assert.Equal(t, tt.text, l.Text())
		})
	}
}

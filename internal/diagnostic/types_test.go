package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depwalk/internal/jsast"
)

func TestDiagnosticsBuckets(t *testing.T) {
	var d Diagnostics

	pos := jsast.Position{Loc: jsast.Loc{Line: 3, Column: 4}}
	d.AddError(CodeUnsupportedSpecifier, "Identifier is not supported", "require.context", pos)
	d.AddWarning(CodeBareRequire, "require used as a value", "", pos)
	d.AddInfo("note", "just saying", "", jsast.Position{})

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "3:4 require.context: [unsupported_specifier] Identifier is not supported", err.Error())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "message only",
			d:    Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "code and subject",
			d:    Diagnostic{Code: CodeReservedRewrite, Message: "cannot rewrite", Subject: "require"},
			want: "require: [reserved_rewrite] cannot rewrite",
		},
		{
			name: "position",
			d:    Diagnostic{Message: "m", Pos: jsast.Position{Loc: jsast.Loc{Line: 1, Column: 0}}},
			want: "1:0: m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestMergeAndSeverityString(t *testing.T) {
	var a, b Diagnostics
	b.AddError("e", "boom", "", jsast.Position{})
	b.AddWarning("w", "hmm", "", jsast.Position{})

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Nil(t, (&Diagnostics{}).Error())

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

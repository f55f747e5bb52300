package walk

import (
	"context"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"depwalk/internal/config"
	"depwalk/internal/diagnostic"
	"depwalk/internal/jsast"
	"depwalk/internal/jsparse"
	"depwalk/internal/manifest"
)

func scan(t *testing.T, src string, cfg *config.Config) *Result {
	t.Helper()

	prog, err := jsparse.Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	res, err := Walk(prog, Options{Config: cfg})
	require.NoError(t, err)

	return res
}

// rng locates the first occurrence of sub in src.
func rng(t *testing.T, src, sub string) *manifest.Range {
	t.Helper()

	i := strings.Index(src, sub)
	require.GreaterOrEqual(t, i, 0, "%q not in source", sub)

	return &manifest.Range{i, i + len(sub)}
}

func TestWalkRejectsMissingRoot(t *testing.T) {
	_, err := Walk(nil, Options{})
	require.ErrorIs(t, err, ErrUnparsableInput)

	_, err = Walk(&jsast.Identifier{Name: "x"}, Options{})
	require.ErrorIs(t, err, ErrUnparsableInput)

	var nilProgram *jsast.Program
	_, err = Walk(nilProgram, Options{})
	require.ErrorIs(t, err, ErrUnparsableInput)
}

func TestLiteralRequire(t *testing.T) {
	src := `require("a/b");`
	res := scan(t, src, nil)

	assert.Equal(t, []manifest.Dependency{{
		Name:            "a/b",
		Line:            1,
		Column:          0,
		ExpressionRange: rng(t, src, `"a/b"`),
		IDOnly:          true,
	}}, res.Manifest.Requires)
	assert.Empty(t, res.Manifest.Contexts)
	assert.True(t, res.Diagnostics.IsValid())
}

func TestConditionalRequire(t *testing.T) {
	src := `require(x ? "a" : y ? "b" : "c");`
	res := scan(t, src, nil)

	require.Len(t, res.Manifest.Requires, 3, spew.Sdump(res.Manifest))

	for i, name := range []string{"a", "b", "c"} {
		d := res.Manifest.Requires[i]
		assert.Equal(t, name, d.Name)
		assert.Equal(t, rng(t, src, `"`+name+`"`), d.ValueRange)
		assert.Nil(t, d.ExpressionRange)
	}
}

func TestConditionalWithDynamicBranchIsDynamic(t *testing.T) {
	src := `require(x ? "a" : y);`
	res := scan(t, src, nil)

	require.Len(t, res.Manifest.Requires, 1)
	d := res.Manifest.Requires[0]
	assert.True(t, d.Dynamic)
	assert.True(t, d.IDOnly)
	assert.Empty(t, d.Name)
}

func TestDynamicRequire(t *testing.T) {
	src := `require(x + y);`
	res := scan(t, src, nil)

	assert.Equal(t, []manifest.Dependency{{
		Line:            1,
		ExpressionRange: rng(t, src, src[:len(src)-1]),
		IDOnly:          true,
		Dynamic:         true,
	}}, res.Manifest.Requires)
	assert.Empty(t, res.Manifest.Contexts)
}

func TestPartialRequireBecomesContext(t *testing.T) {
	t.Run("with directory", func(t *testing.T) {
		src := `require("a/b/c" + x);`
		res := scan(t, src, nil)

		assert.Empty(t, res.Manifest.Requires)
		assert.Equal(t, []manifest.Context{{
			Name:        "a/b",
			Replace:     &manifest.Replacement{Range: *rng(t, src, `"a/b/c"`), Text: "./c"},
			Require:     true,
			Line:        1,
			CalleeRange: rng(t, src, "require"),
		}}, res.Manifest.Contexts)
	})

	t.Run("without directory", func(t *testing.T) {
		src := `require("lang-" + x);`
		res := scan(t, src, nil)

		require.Len(t, res.Manifest.Contexts, 1)
		assert.Equal(t, ".", res.Manifest.Contexts[0].Name)
		assert.Nil(t, res.Manifest.Contexts[0].Replace)
	})
}

func TestShadowedByParameter(t *testing.T) {
	src := `function f(require) { require("x"); }
require("y");`
	res := scan(t, src, nil)

	assert.Equal(t, []string{"y"}, res.Manifest.Names())
	assert.Empty(t, res.Manifest.Contexts)
}

func TestShadowing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "var declaration shadows later calls",
			src:  `require("a"); var require = 1; require("b");`,
			want: []string{"a"},
		},
		{
			name: "function declaration name",
			src:  `function require() {} require("a");`,
		},
		{
			name: "function expression name is local",
			src:  `(function require() { require("a"); }); require("b");`,
			want: []string{"b"},
		},
		{
			name: "shadowing ends with the function",
			src:  `(function () { var require = 1; require("a"); })(); require("b");`,
			want: []string{"b"},
		},
		{
			name: "defaulted parameter",
			src:  `(function (require = null) { require("a"); });`,
		},
		{
			name: "rest parameter",
			src:  `(function (...require) { require("a"); });`,
		},
		{
			name: "arrow parameter",
			src:  `((require) => require("a")); require("b");`,
			want: []string{"b"},
		},
		{
			name: "define shadowing leaves require alone",
			src:  `(function (define) { define(function () {}); require("a"); });`,
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scan(t, tt.src, nil)
			assert.Equal(t, tt.want, res.Manifest.Names(), spew.Sdump(res.Manifest))
			assert.Empty(t, res.Manifest.Contexts)
		})
	}
}

func TestInTry(t *testing.T) {
	src := `try { require("a"); (function () { require("d"); })(); } catch (e) { require("b"); } finally { require("c"); }`
	res := scan(t, src, nil)

	got := map[string]bool{}
	for _, d := range res.Manifest.Requires {
		got[d.Name] = d.InTry
	}

	assert.Equal(t, map[string]bool{"a": true, "b": false, "c": false, "d": false}, got)
}

func TestNestedTryRestores(t *testing.T) {
	src := `try { try { require("a"); } catch (e) { require("b"); } } catch (e) {}`
	res := scan(t, src, nil)

	require.Len(t, res.Manifest.Requires, 2)
	assert.True(t, res.Manifest.Requires[0].InTry)
	assert.True(t, res.Manifest.Requires[1].InTry, "the outer protected block still applies")
}

func TestOpaqueReferences(t *testing.T) {
	tests := []string{
		`if (typeof require === "function") {}`,
		`if (typeof module === "object") {}`,
		`require.cache;`,
		`module.exports = 1;`,
		`require = function () {};`,
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			res := scan(t, src, nil)
			assert.True(t, res.Manifest.IsEmpty(), spew.Sdump(res.Manifest))
		})
	}
}

func TestBareRequireIdentifier(t *testing.T) {
	src := `var r = require;`
	res := scan(t, src, nil)

	assert.Equal(t, []manifest.Context{{
		Name:        ".",
		Require:     true,
		Line:        1,
		Column:      8,
		CalleeRange: rng(t, src, "require"),
		Warn:        manifest.WarnIdentifier,
	}}, res.Manifest.Contexts)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeBareRequire, res.Diagnostics.Warnings[0].Code)
	assert.False(t, res.Diagnostics.HasErrors())
}

func TestUnmatchedLoaderCallWalksCallee(t *testing.T) {
	src := `require("a", "b");`
	res := scan(t, src, nil)

	assert.Empty(t, res.Manifest.Requires)
	require.Len(t, res.Manifest.Contexts, 1)
	assert.Equal(t, manifest.WarnIdentifier, res.Manifest.Contexts[0].Warn)
}

func TestRewrites(t *testing.T) {
	cfg := config.New(map[string]string{
		"module":  "(webpack)/buildin/module.js+(module)",
		"process": "process-shim",
	})
	src := `module.exports = process.env;
x = module;
function g(module) { return module; }`
	res := scan(t, src, cfg)

	assert.Equal(t, []manifest.Dependency{
		{Name: "process-shim", Line: 1, Column: 17, Variable: "process"},
		{Name: "(webpack)/buildin/module.js", Line: 2, Column: 4, Variable: "module", Append: "(module)"},
	}, res.Manifest.Requires)
}

func TestArgumentsAreWalked(t *testing.T) {
	src := `require("a")(require("b")); foo(require("c"), [require("d")]);`
	res := scan(t, src, nil)

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, res.Manifest.Names())
}

func TestIdempotent(t *testing.T) {
	src := `
define("m", ["a", "require"], function (a, require) {
	require(["b", x ? "c" : "d"], function (b) {
		try { require("e" + y); } catch (err) {}
		require.ensure(["f"], function () { require("g"); }, "chunk");
	});
	return require.resolve("h");
});
var r = require;
`
	prog, err := jsparse.Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	first, err := Walk(prog, Options{})
	require.NoError(t, err)

	second, err := Walk(prog, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMaxDepth(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDepth = 6

	src := `f(g(h(i(j(k(require("x")))))));
l(m(n(require("y"))));`
	res := scan(t, src, cfg)

	assert.Equal(t, []string{"y"}, res.Manifest.Names())
	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeMaxDepthExceeded, res.Diagnostics.Errors[0].Code)
}

func TestLogsIdioms(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	prog, err := jsparse.Parse(context.Background(), []byte(`require("a"); require.context(x);`))
	require.NoError(t, err)

	_, err = Walk(prog, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	idioms := logs.FilterMessage("idiom").All()
	require.Len(t, idioms, 1)
	assert.Equal(t, "walker", idioms[0].LoggerName)
	assert.Equal(t, "require", idioms[0].ContextMap()["idiom"])

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

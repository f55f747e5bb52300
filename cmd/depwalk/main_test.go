package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage:")

	stderr.Reset()
	assert.Equal(t, exitUsage, run([]string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
	assert.NotContains(t, stderr.String(), "did you mean")

	stderr.Reset()
	assert.Equal(t, exitUsage, run([]string{"scann"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `did you mean "scan"?`)

	assert.Equal(t, exitOK, run([]string{"help"}, &stdout, &stderr))
}

func TestScanJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", `require("./b");`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"scan", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))

	requires := doc["requires"].([]any)
	require.Len(t, requires, 1)
	assert.Equal(t, "./b", requires[0].(map[string]any)["name"])
}

func TestScanManyFilesYAML(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.js", `require("x");`)
	b := writeFile(t, dir, "b.js", `define(["y"], function (y) {});`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"scan", "-format", "yaml", a, b}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, a+":")
	assert.Contains(t, out, b+":")
	assert.Contains(t, out, "name: __webpack_amd_define")
}

func TestScanWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "depwalk.yaml", "rewrites:\n  process: process-shim\n")
	src := writeFile(t, dir, "a.js", `process.nextTick(f);`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"scan", "-config", cfg, "-format", "dump", src}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	assert.Contains(t, stdout.String(), `"process-shim"`)
}

func TestScanReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", `require.context(dir); var r = require;`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"scan", path}, &stdout, &stderr)

	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr.String(), "[unsupported_specifier]")
	assert.Contains(t, stderr.String(), "[bare_require_identifier]")
	assert.NotContains(t, stderr.String(), "\x1b[", "no colours when stderr is not a terminal")
}

func TestScanErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.js", `require(;`)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitFail, run([]string{"scan", bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "syntax error")

	stderr.Reset()
	assert.Equal(t, exitFail, run([]string{"scan", filepath.Join(dir, "missing.js")}, &stdout, &stderr))

	assert.Equal(t, exitUsage, run([]string{"scan"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"scan", "-format", "xml", bad}, &stdout, &stderr))
}

func TestTree(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.json", `{
  "type": "Program", "start": 0, "end": 12, "loc": {"start": {"line": 1, "column": 0}},
  "body": [{
    "type": "ExpressionStatement", "start": 0, "end": 12, "loc": {"start": {"line": 1, "column": 0}},
    "expression": {
      "type": "CallExpression", "start": 0, "end": 12, "loc": {"start": {"line": 1, "column": 0}},
      "callee": {"type": "Identifier", "name": "require", "start": 0, "end": 7, "loc": {"start": {"line": 1, "column": 0}}},
      "arguments": [{"type": "Literal", "value": "a", "raw": "'a'", "start": 8, "end": 11, "loc": {"start": {"line": 1, "column": 8}}}]
    }
  }]
}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"tree", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), `"name": "a"`)
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "rewrites:\n  module: \"(webpack)/buildin/module.js+(module)\"\n")
	bad := writeFile(t, dir, "bad.yaml", "rewrites:\n  require: x\n")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitOK, run([]string{"check-config", good}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "ok (1 rewrites)")

	stderr.Reset()
	assert.Equal(t, exitFail, run([]string{"check-config", bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "reserved_rewrite")

	assert.Equal(t, exitUsage, run([]string{"check-config"}, &stdout, &stderr))
}

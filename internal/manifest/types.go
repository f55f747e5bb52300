package manifest

import (
	"depwalk/internal/common"
	"depwalk/internal/jsast"
)

// Range is a [start, end) byte range.
type Range [2]int

// RangeOf converts a syntax tree range.
func RangeOf(r jsast.Range) *Range {
	return &Range{r.Start, r.End}
}

// Span returns the range from the start of a to the end of b.
func Span(a, b jsast.Range) *Range {
	return &Range{a.Start, b.End}
}

// Start returns the first byte offset.
func (r Range) Start() int { return r[0] }

// End returns the offset one past the last byte.
func (r Range) End() int { return r[1] }

// Special marks dependencies that do not name a module.
type Special string

const (
	// LoaderFunctionReference is the "require" entry of an AMD dependency list.
	LoaderFunctionReference Special = "loaderFunctionReference"
	// ModuleExportsReference is the "exports" entry of an AMD dependency list.
	ModuleExportsReference Special = "moduleExportsReference"
)

// Dependency is one discovered module reference.
type Dependency struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Special Special `json:"special,omitempty" yaml:"special,omitempty"`
	Line    int     `json:"line" yaml:"line"`
	Column  int     `json:"column" yaml:"column"`

	// ExpressionRange is replaced by the resolved module id.
	ExpressionRange *Range `json:"expressionRange,omitempty" yaml:"expressionRange,omitempty"`
	// ValueRange is a single literal alternative to replace.
	ValueRange *Range `json:"valueRange,omitempty" yaml:"valueRange,omitempty"`
	// DeleteRange is removed from the output (the callee of a resolve call).
	DeleteRange *Range `json:"deleteRange,omitempty" yaml:"deleteRange,omitempty"`
	// AMDNameRange is the explicit module name of a define call.
	AMDNameRange *Range `json:"amdNameRange,omitempty" yaml:"amdNameRange,omitempty"`
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`

	InTry    bool   `json:"inTry,omitempty" yaml:"inTry,omitempty"`
	Variable string `json:"variable,omitempty" yaml:"variable,omitempty"`
	Append   string `json:"append,omitempty" yaml:"append,omitempty"`

	// IDOnly asks the rewriter to emit only the module id at ExpressionRange.
	IDOnly bool `json:"idOnly,omitempty" yaml:"idOnly,omitempty"`
	// Brackets asks the rewriter to wrap the id in parentheses.
	Brackets bool `json:"brackets,omitempty" yaml:"brackets,omitempty"`
	// Dynamic marks a reference whose specifier is unknown until run time;
	// the call at ExpressionRange has to stay intact.
	Dynamic bool `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
}

// Replacement rewrites the matched path fragment of a context load.
type Replacement struct {
	Range Range  `json:"range" yaml:"range,flow"`
	Text  string `json:"text" yaml:"text"`
}

// ContextWarning is the advisory attached to heuristic contexts.
type ContextWarning string

// WarnIdentifier marks a context created for a bare, uncalled loader reference.
const WarnIdentifier ContextWarning = "Identifier"

// Context is a directory-pattern load.
type Context struct {
	// Name is the directory; "." when none could be derived.
	Name    string       `json:"name" yaml:"name"`
	Replace *Replacement `json:"replace,omitempty" yaml:"replace,omitempty"`
	// Require is set when the context stands for a loader call or reference.
	Require bool `json:"require,omitempty" yaml:"require,omitempty"`
	Line    int  `json:"line" yaml:"line"`
	Column  int  `json:"column" yaml:"column"`

	CalleeRange     *Range `json:"calleeRange,omitempty" yaml:"calleeRange,omitempty"`
	ExpressionRange *Range `json:"expressionRange,omitempty" yaml:"expressionRange,omitempty"`
	ValueRange      *Range `json:"valueRange,omitempty" yaml:"valueRange,omitempty"`

	Warn ContextWarning `json:"warn,omitempty" yaml:"warn,omitempty"`
}

// AsyncScope is a deferred load scope with its own nested records.
type AsyncScope struct {
	Scope `yaml:",inline"`

	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`

	// AMDRange is the dependency array of an AMD require call.
	AMDRange *Range `json:"amdRange,omitempty" yaml:"amdRange,omitempty"`
	// NamesRange and PropertyRange locate the list and the method name of
	// an ensure/async call.
	NamesRange    *Range `json:"namesRange,omitempty" yaml:"namesRange,omitempty"`
	PropertyRange *Range `json:"propertyRange,omitempty" yaml:"propertyRange,omitempty"`
	// BlockRange is the callback body without its braces.
	BlockRange *Range `json:"blockRange,omitempty" yaml:"blockRange,omitempty"`

	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	NameRange *Range `json:"nameRange,omitempty" yaml:"nameRange,omitempty"`

	// Shadowed is the shadow stack when the scope was created.
	Shadowed []string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

// Scope accumulates the records of one scope.
type Scope struct {
	Requires []Dependency `json:"requires,omitempty" yaml:"requires,omitempty"`
	Contexts []Context    `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Asyncs   []AsyncScope `json:"asyncs,omitempty" yaml:"asyncs,omitempty"`
}

// AddDependency appends a dependency.
func (s *Scope) AddDependency(d Dependency) {
	s.Requires = append(s.Requires, d)
}

// AddContext appends a context.
func (s *Scope) AddContext(c Context) {
	s.Contexts = append(s.Contexts, c)
}

// AddAsync appends a completed deferred scope.
func (s *Scope) AddAsync(a AsyncScope) {
	s.Asyncs = append(s.Asyncs, a)
}

// IsEmpty reports whether the scope holds no records.
func (s *Scope) IsEmpty() bool {
	return common.IsEmpty(s.Requires) && common.IsEmpty(s.Contexts) && common.IsEmpty(s.Asyncs)
}

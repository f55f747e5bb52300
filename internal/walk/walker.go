package walk

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"depwalk/internal/config"
	"depwalk/internal/diagnostic"
	"depwalk/internal/jsast"
	"depwalk/internal/manifest"
	"depwalk/internal/scope"
)

// ErrUnparsableInput is returned when the tree is missing or its root is not
// a program.
var ErrUnparsableInput = errors.New("unparsable input")

// Options configure a walk.
type Options struct {
	// Config is the rewrite table and helper names. Nil means config.Default().
	Config *config.Config
	// Logger receives idiom traces. Nil means no logging.
	Logger *zap.Logger
}

// Result is the outcome of a walk.
type Result struct {
	Manifest    *manifest.Scope
	Diagnostics diagnostic.Diagnostics
}

// frame is the state of the scope currently receiving records.
type frame struct {
	scope  *manifest.Scope
	shadow *scope.Tracker
	inTry  bool
	// suppressParams skips the next parameter list, whose names are
	// injected by the loader rather than written by the user.
	suppressParams bool
}

type walker struct {
	cfg      *config.Config
	log      *zap.Logger
	diags    diagnostic.Diagnostics
	maxDepth int
	depth    int
	overflow bool
	f        *frame
}

// Walk traverses root, which must be a *jsast.Program, and returns the
// manifest of every module reference it makes.
func Walk(root jsast.Node, opts Options) (*Result, error) {
	program, ok := root.(*jsast.Program)
	if !ok || program == nil {
		if root == nil {
			return nil, fmt.Errorf("walk: %w: no syntax tree", ErrUnparsableInput)
		}

		return nil, fmt.Errorf("walk: %w: root is %s, not Program", ErrUnparsableInput, root.Kind())
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}

	manifestRoot := &manifest.Scope{}
	w := &walker{
		cfg:      cfg,
		log:      logger.Named("walker"),
		maxDepth: maxDepth,
		f: &frame{
			scope:  manifestRoot,
			shadow: scope.NewTracker(cfg.Tracked),
		},
	}

	w.statements(program.Body)

	return &Result{Manifest: manifestRoot, Diagnostics: w.diags}, nil
}

// enter counts one level of nesting and reports whether the walk may
// descend. The first refusal is reported once per walk.
func (w *walker) enter(n jsast.Node) bool {
	w.depth++
	if w.depth <= w.maxDepth {
		return true
	}

	if !w.overflow {
		w.overflow = true
		pos := n.Pos()
		w.diags.AddError(diagnostic.CodeMaxDepthExceeded,
			fmt.Sprintf("syntax tree nested deeper than %d levels; subtree skipped", w.maxDepth),
			n.Kind().String(), pos)
		w.log.Warn("maximum depth exceeded",
			zap.Int("max_depth", w.maxDepth),
			zap.String("location", pos.Loc.String()))
	}

	return false
}

func (w *walker) leave() {
	w.depth--
}

func (w *walker) statements(list []jsast.Node) {
	for _, s := range list {
		w.statement(s)
	}
}

func (w *walker) statement(n jsast.Node) {
	if n == nil {
		return
	}

	defer w.leave()

	if !w.enter(n) {
		return
	}

	switch s := n.(type) {
	case *jsast.BlockStatement:
		w.statements(s.Body)
	case *jsast.ExpressionStatement:
		w.expression(s.Expression)
	case *jsast.IfStatement:
		w.expression(s.Test)
		w.statement(s.Consequent)
		w.statement(s.Alternate)
	case *jsast.LabeledStatement:
		w.statement(s.Body)
	case *jsast.WithStatement:
		w.expression(s.Object)
		w.statement(s.Body)
	case *jsast.SwitchStatement:
		w.expression(s.Discriminant)

		for _, c := range s.Cases {
			if c == nil {
				continue
			}

			w.expression(c.Test)
			w.statements(c.Consequent)
		}
	case *jsast.ReturnStatement:
		w.expression(s.Argument)
	case *jsast.ThrowStatement:
		w.expression(s.Argument)
	case *jsast.TryStatement:
		w.try(s)
	case *jsast.WhileStatement:
		w.expression(s.Test)
		w.statement(s.Body)
	case *jsast.DoWhileStatement:
		w.expression(s.Test)
		w.statement(s.Body)
	case *jsast.ForStatement:
		w.forHead(s.Init)
		w.expression(s.Test)
		w.expression(s.Update)
		w.statement(s.Body)
	case *jsast.ForInStatement:
		w.forHead(s.Left)
		w.expression(s.Right)
		w.statement(s.Body)
	case *jsast.ForOfStatement:
		w.forHead(s.Left)
		w.expression(s.Right)
		w.statement(s.Body)
	case *jsast.FunctionDeclaration:
		// The name binds in the enclosing scope, so it stays shadowed after
		// the declaration.
		if s.ID != nil {
			w.f.shadow.Declare(s.ID.Name)
		}

		w.function(nil, s.Params, s.Body)
	case *jsast.VariableDeclaration:
		w.declarators(s.Declarations)
	}
}

func (w *walker) forHead(n jsast.Node) {
	if _, ok := n.(*jsast.VariableDeclaration); ok {
		w.statement(n)
		return
	}

	w.expression(n)
}

// try walks the protected block with inTry set; handlers and finalizer see
// the enclosing value.
func (w *walker) try(s *jsast.TryStatement) {
	f := w.f
	inTry := f.inTry

	f.inTry = true
	if s.Block != nil {
		w.statement(s.Block)
	}
	f.inTry = inTry

	for _, h := range s.Handlers {
		if h == nil {
			continue
		}

		w.expression(h.Guard)

		if h.Body != nil {
			w.statement(h.Body)
		}
	}

	if s.Finalizer != nil {
		w.statement(s.Finalizer)
	}
}

// declarators shadows each declared name before its initialiser, one
// declarator at a time.
func (w *walker) declarators(decls []*jsast.VariableDeclarator) {
	for _, d := range decls {
		if d == nil {
			continue
		}

		if name, ok := jsast.IdentifierName(d.ID); ok {
			w.f.shadow.Declare(name)
		}

		w.expression(d.Init)
	}
}

// function walks a function body in its own shadowing scope. id is the name
// of a function expression, visible only inside its own body.
func (w *walker) function(id *jsast.Identifier, params []jsast.Node, body jsast.Node) {
	f := w.f
	inTry := f.inTry
	mark := f.shadow.Mark()

	f.inTry = false

	if id != nil {
		f.shadow.Declare(id.Name)
	}

	w.params(params)

	if _, ok := body.(*jsast.BlockStatement); ok {
		w.statement(body)
	} else {
		w.expression(body)
	}

	f.shadow.Restore(mark)
	f.inTry = inTry
}

func (w *walker) params(params []jsast.Node) {
	f := w.f
	if f.suppressParams {
		f.suppressParams = false
		return
	}

	for _, p := range params {
		if name, ok := jsast.BindingName(p); ok {
			f.shadow.Declare(name)
		}
	}
}

func (w *walker) expressions(list []jsast.Node) {
	for _, e := range list {
		w.expression(e)
	}
}

func (w *walker) expression(n jsast.Node) {
	if n == nil {
		return
	}

	defer w.leave()

	if !w.enter(n) {
		return
	}

	switch e := n.(type) {
	case *jsast.ArrayExpression:
		w.expressions(e.Elements)
	case *jsast.ObjectExpression:
		for _, p := range e.Properties {
			if p == nil {
				continue
			}

			if p.Computed {
				w.expression(p.Key)
			}

			w.expression(p.Value)
		}
	case *jsast.FunctionExpression:
		w.function(e.ID, e.Params, e.Body)
	case *jsast.ArrowFunctionExpression:
		w.function(nil, e.Params, e.Body)
	case *jsast.SequenceExpression:
		w.expressions(e.Expressions)
	case *jsast.UpdateExpression:
		w.expression(e.Argument)
	case *jsast.UnaryExpression:
		if e.Operator == "typeof" &&
			(jsast.IsIdentifier(e.Argument, config.LoaderName) || jsast.IsIdentifier(e.Argument, moduleName)) {
			return
		}

		w.expression(e.Argument)
	case *jsast.BinaryExpression:
		w.expression(e.Left)
		w.expression(e.Right)
	case *jsast.LogicalExpression:
		w.expression(e.Left)
		w.expression(e.Right)
	case *jsast.AssignmentExpression:
		if !jsast.IsIdentifier(e.Left, config.LoaderName) {
			w.expression(e.Left)
		}

		w.expression(e.Right)
	case *jsast.ConditionalExpression:
		w.expression(e.Test)
		w.expression(e.Consequent)
		w.expression(e.Alternate)
	case *jsast.NewExpression:
		w.expression(e.Callee)
		w.expressions(e.Arguments)
	case *jsast.CallExpression:
		w.call(e)
	case *jsast.MemberExpression:
		w.member(e)
	case *jsast.Identifier:
		w.identifier(e)
	}
}

const moduleName = "module"

// moduleFields are the module properties that never refer to a dependency.
var moduleFields = map[string]bool{"exports": true, "id": true, "loaded": true}

func (w *walker) member(m *jsast.MemberExpression) {
	if !m.Computed {
		prop, _ := jsast.IdentifierName(m.Property)

		switch {
		case jsast.IsIdentifier(m.Object, moduleName) && moduleFields[prop]:
			return
		case jsast.IsIdentifier(m.Object, config.LoaderName) && prop != "":
			return
		}
	}

	w.expression(m.Object)

	if m.Computed {
		w.expression(m.Property)
	}
}

func (w *walker) call(c *jsast.CallExpression) {
	switch w.match(c) {
	case consumed:
	case matched:
		w.expressions(c.Arguments)
	default:
		w.expression(c.Callee)
		w.expressions(c.Arguments)
	}
}

// deferred opens a nested scope for async, walks args inside it, then
// attaches the finished scope to the current one. prepare runs first inside
// the nested scope.
func (w *walker) deferred(async *manifest.AsyncScope, args []jsast.Node, prepare func()) {
	parent := w.f

	w.f = &frame{
		scope:          &async.Scope,
		shadow:         parent.shadow.Fork(),
		suppressParams: true,
	}

	if prepare != nil {
		prepare()
	}

	w.expressions(args)

	w.f = parent
	parent.scope.AddAsync(*async)
}

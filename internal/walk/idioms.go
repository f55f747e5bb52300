package walk

import (
	"errors"

	"go.uber.org/zap"

	"depwalk/internal/common"
	"depwalk/internal/config"
	"depwalk/internal/diagnostic"
	"depwalk/internal/jsast"
	"depwalk/internal/manifest"
	"depwalk/internal/strval"
)

// outcome is what a call idiom did with the call.
type outcome int

const (
	noMatch outcome = iota
	// matched means the callee was consumed; arguments are walked as usual.
	matched
	// consumed means the idiom walked the arguments itself.
	consumed
)

// defineAppend is written after the define helper reference.
const defineAppend = "(module)"

// match tries the loader and define call shapes. Each shape is only
// considered while its name is not shadowed.
func (w *walker) match(c *jsast.CallExpression) outcome {
	shadow := w.f.shadow

	switch callee := c.Callee.(type) {
	case *jsast.Identifier:
		switch callee.Name {
		case config.LoaderName:
			if !shadow.Shadowed(config.LoaderName) {
				return w.loaderCall(c)
			}
		case config.DefineName:
			if !shadow.Shadowed(config.DefineName) {
				return w.defineCall(c)
			}
		}

	case *jsast.MemberExpression:
		if callee.Computed || !jsast.IsIdentifier(callee.Object, config.LoaderName) ||
			shadow.Shadowed(config.LoaderName) {
			return noMatch
		}

		prop, ok := callee.Property.(*jsast.Identifier)
		if !ok {
			return noMatch
		}

		n := len(c.Arguments)

		switch {
		case prop.Name == "config" && n == 1:
			return w.configCall(c)
		case (prop.Name == "ensure" || prop.Name == "async") && n >= 1:
			return w.ensureCall(c, prop)
		case prop.Name == "context" && n == 1:
			return w.contextCall(c)
		case prop.Name == "resolve" && n == 1:
			return w.resolveCall(c)
		}
	}

	return noMatch
}

func (w *walker) loaderCall(c *jsast.CallExpression) outcome {
	args := c.Arguments

	if n := len(args); n == 1 || n == 2 {
		if arr, ok := args[0].(*jsast.ArrayExpression); ok {
			return w.amdRequire(c, arr)
		}
	}

	if len(args) == 1 {
		return w.plainRequire(c)
	}

	return noMatch
}

// configCall handles require.config(options).
func (w *walker) configCall(c *jsast.CallExpression) outcome {
	w.f.scope.AddDependency(helper(c.Callee, w.cfg.Helpers.Require, config.LoaderName))
	w.traceIdiom("require.config", c)

	return matched
}

// amdRequire handles require([deps...], factory?). The dependency list and
// the factory belong to a new deferred scope.
func (w *walker) amdRequire(c *jsast.CallExpression, arr *jsast.ArrayExpression) outcome {
	f := w.f
	f.scope.AddDependency(helper(c.Callee, w.cfg.Helpers.Require, config.LoaderName))

	loc := c.Loc
	async := &manifest.AsyncScope{
		Line:     loc.Line,
		Column:   loc.Column,
		AMDRange: manifest.RangeOf(arr.Range),
		Shadowed: f.shadow.Snapshot(),
	}

	if len(c.Arguments) == 2 {
		async.BlockRange = blockRange(c.Arguments[1])
	}

	w.traceIdiom("require([])", c)
	w.deferred(async, c.Arguments, func() { w.amdArray(arr.Elements) })

	return consumed
}

// plainRequire handles require(expr).
func (w *walker) plainRequire(c *jsast.CallExpression) outcome {
	f := w.f
	arg := c.Arguments[0]
	res := strval.Evaluate(arg)
	loc := c.Loc

	switch res.Kind {
	case strval.Static:
		f.scope.AddDependency(manifest.Dependency{
			Name:            res.Value,
			Line:            loc.Line,
			Column:          loc.Column,
			ExpressionRange: manifest.RangeOf(arg.Pos().Range),
			IDOnly:          true,
			InTry:           f.inTry,
		})

	case strval.Conditional:
		for _, alt := range res.Alternatives {
			f.scope.AddDependency(manifest.Dependency{
				Name:       alt.Value,
				Line:       loc.Line,
				Column:     loc.Column,
				ValueRange: manifest.RangeOf(alt.Range),
				InTry:      f.inTry,
			})
		}

	case strval.Partial:
		ctx := manifest.Context{
			Require:     true,
			Line:        loc.Line,
			Column:      loc.Column,
			CalleeRange: manifest.RangeOf(c.Callee.Pos().Range),
		}
		directory(&ctx, res)
		f.scope.AddContext(ctx)

	default:
		f.scope.AddDependency(manifest.Dependency{
			Line:            loc.Line,
			Column:          loc.Column,
			ExpressionRange: manifest.RangeOf(c.Range),
			IDOnly:          true,
			Dynamic:         true,
			InTry:           f.inTry,
		})
	}

	w.traceIdiom("require", c)

	return matched
}

// ensureCall handles require.ensure(names, factory?, chunkName?) and its
// require.async alias. The names must be literal.
func (w *walker) ensureCall(c *jsast.CallExpression, prop *jsast.Identifier) outcome {
	idiom := "require." + prop.Name
	args := c.Arguments

	names, err := strval.EvaluateStaticArray(args[0])
	if err != nil {
		w.unsupported(idiom, err)
		return noMatch
	}

	f := w.f
	loc := c.Loc
	namesPos := args[0].Pos()
	async := &manifest.AsyncScope{
		Line:          loc.Line,
		Column:        loc.Column,
		PropertyRange: manifest.RangeOf(prop.Range),
		NamesRange:    manifest.RangeOf(namesPos.Range),
		Shadowed:      f.shadow.Snapshot(),
	}

	for _, name := range names {
		async.AddDependency(manifest.Dependency{
			Name:   name,
			Line:   namesPos.Loc.Line,
			Column: namesPos.Loc.Column,
		})
	}

	if factory, ok := common.At(args, 1); ok {
		async.BlockRange = blockRange(factory)
	}

	if chunk, ok := common.At(args, 2); ok {
		name, err := strval.EvaluateStatic(chunk)
		if err != nil {
			w.unsupported(idiom, err)
		} else {
			async.Name = name
			async.NameRange = manifest.RangeOf(chunk.Pos().Range)
		}
	}

	w.traceIdiom(idiom, c)
	w.deferred(async, args, nil)

	return consumed
}

// contextCall handles require.context(dir).
func (w *walker) contextCall(c *jsast.CallExpression) outcome {
	arg := c.Arguments[0]

	dir, err := strval.EvaluateStatic(arg)
	if err != nil {
		w.unsupported("require.context", err)
		return noMatch
	}

	loc := c.Loc
	w.f.scope.AddContext(manifest.Context{
		Name:            dir,
		Line:            loc.Line,
		Column:          loc.Column,
		ExpressionRange: manifest.RangeOf(arg.Pos().Range),
		CalleeRange:     manifest.RangeOf(c.Callee.Pos().Range),
	})
	w.traceIdiom("require.context", c)

	return matched
}

// resolveCall handles require.resolve(expr). The whole call is replaced by
// the id, so the callee is part of the rewrite range.
func (w *walker) resolveCall(c *jsast.CallExpression) outcome {
	f := w.f
	res := strval.Evaluate(c.Arguments[0])
	loc := c.Loc
	callee := c.Callee.Pos().Range

	if res.Kind == strval.Conditional {
		for i, alt := range res.Alternatives {
			d := manifest.Dependency{
				Name:       alt.Value,
				Line:       loc.Line,
				Column:     loc.Column,
				ValueRange: manifest.RangeOf(alt.Range),
				InTry:      f.inTry,
			}
			if i == 0 {
				d.DeleteRange = manifest.RangeOf(callee)
			}

			f.scope.AddDependency(d)
		}
	} else {
		d := manifest.Dependency{
			Line:            loc.Line,
			Column:          loc.Column,
			ExpressionRange: manifest.Span(callee, c.Range),
			IDOnly:          true,
			Brackets:        true,
			InTry:           f.inTry,
		}
		if res.Kind == strval.Static {
			d.Name = res.Value
		} else {
			d.Dynamic = true
		}

		f.scope.AddDependency(d)
	}

	w.traceIdiom("require.resolve", c)

	return matched
}

// defineCall handles the three define arities.
func (w *walker) defineCall(c *jsast.CallExpression) outcome {
	f := w.f
	args := c.Arguments
	d := helper(c.Callee, w.cfg.Helpers.Define, config.DefineName)
	d.Append = defineAppend

	switch len(args) {
	case 1:
		// The factory's parameters are supplied by the loader.
		f.suppressParams = true

	case 2:
		if arr, ok := args[0].(*jsast.ArrayExpression); ok {
			w.amdArray(arr.Elements)
		} else {
			d.AMDNameRange = manifest.RangeOf(args[0].Pos().Range)
			d.Label = label(args[0])
		}

	case 3:
		if arr, ok := args[1].(*jsast.ArrayExpression); ok {
			w.amdArray(arr.Elements)
		} else {
			w.amdArray(args[1:2])
		}

		d.AMDNameRange = manifest.RangeOf(args[0].Pos().Range)
		d.Label = label(args[0])

	default:
		return noMatch
	}

	f.scope.AddDependency(d)
	w.traceIdiom("define", c)

	return matched
}

func (w *walker) identifier(id *jsast.Identifier) {
	f := w.f

	if id.Name == config.LoaderName {
		if f.shadow.Shadowed(config.LoaderName) {
			return
		}

		f.scope.AddContext(manifest.Context{
			Name:        ".",
			Require:     true,
			Line:        id.Loc.Line,
			Column:      id.Loc.Column,
			CalleeRange: manifest.RangeOf(id.Range),
			Warn:        manifest.WarnIdentifier,
		})
		w.diags.AddWarning(diagnostic.CodeBareRequire,
			"require used as a value; every module in the current directory becomes reachable",
			id.Name, id.Position)
		w.traceIdiom("require identifier", id)

		return
	}

	rw, ok := w.cfg.Rewrite(id.Name)
	if !ok || f.shadow.Shadowed(id.Name) {
		return
	}

	f.scope.AddDependency(manifest.Dependency{
		Name:     rw.Target,
		Line:     id.Loc.Line,
		Column:   id.Loc.Column,
		Variable: id.Name,
		Append:   rw.Append,
	})
	w.traceIdiom("rewrite", id)
}

// helper builds the dependency on a loader helper module.
func helper(callee jsast.Node, name, variable string) manifest.Dependency {
	loc := callee.Pos().Loc

	return manifest.Dependency{
		Name:     name,
		Line:     loc.Line,
		Column:   loc.Column,
		Variable: variable,
	}
}

// blockRange returns the interior of a factory's block body, or nil when
// the factory is not a function with a block.
func blockRange(factory jsast.Node) *manifest.Range {
	var body jsast.Node

	switch fn := factory.(type) {
	case *jsast.FunctionExpression:
		body = fn.Body
	case *jsast.ArrowFunctionExpression:
		body = fn.Body
	}

	block, ok := body.(*jsast.BlockStatement)
	if !ok || block == nil {
		return nil
	}

	return manifest.RangeOf(block.Range.Interior())
}

func label(n jsast.Node) string {
	if lit, ok := n.(*jsast.Literal); ok {
		return lit.Text()
	}

	return ""
}

// directory sets the context name and replacement from a partially known
// path. Without a separator the context falls back to the current directory.
func directory(ctx *manifest.Context, res strval.Result) {
	dir, rest, ok := strval.Split(res.Value)
	if !ok {
		ctx.Name = "."
		return
	}

	ctx.Name = dir
	ctx.Replace = &manifest.Replacement{
		Range: manifest.Range{res.Range.Start, res.Range.End},
		Text:  rest,
	}
}

// unsupported records a call that needed a literal specifier.
func (w *walker) unsupported(idiom string, err error) {
	var pos jsast.Position

	var uerr *strval.UnsupportedError
	if errors.As(err, &uerr) {
		pos = uerr.Pos()
	}

	w.diags.AddError(diagnostic.CodeUnsupportedSpecifier, err.Error(), idiom, pos)
	w.log.Warn("call skipped",
		zap.String("idiom", idiom),
		zap.String("location", pos.Loc.String()),
		zap.Error(err))
}

func (w *walker) traceIdiom(idiom string, n jsast.Node) {
	loc := n.Pos().Loc
	w.log.Debug("idiom",
		zap.String("idiom", idiom),
		zap.Int("line", loc.Line),
		zap.Int("column", loc.Column))
}

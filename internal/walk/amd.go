package walk

import (
	"depwalk/internal/jsast"
	"depwalk/internal/manifest"
	"depwalk/internal/strval"
)

// AMD array entries that name the loader's own objects.
const (
	amdLoaderEntry  = "require"
	amdExportsEntry = "exports"
)

// amdArray classifies the entries of an AMD dependency list into the
// current scope. Holes are skipped.
func (w *walker) amdArray(elements []jsast.Node) {
	f := w.f

	for _, el := range elements {
		if el == nil {
			continue
		}

		pos := el.Pos()
		res := strval.Evaluate(el)

		switch res.Kind {
		case strval.Conditional:
			for _, alt := range res.Alternatives {
				f.scope.AddDependency(manifest.Dependency{
					Name:            alt.Value,
					Line:            pos.Loc.Line,
					Column:          pos.Loc.Column,
					ExpressionRange: manifest.RangeOf(alt.Range),
					InTry:           f.inTry,
				})
			}

		case strval.Partial, strval.Dynamic:
			ctx := manifest.Context{
				Line:       pos.Loc.Line,
				Column:     pos.Loc.Column,
				ValueRange: manifest.RangeOf(pos.Range),
			}
			directory(&ctx, res)
			f.scope.AddContext(ctx)

		default:
			d := manifest.Dependency{
				Line:            pos.Loc.Line,
				Column:          pos.Loc.Column,
				ExpressionRange: manifest.RangeOf(pos.Range),
				InTry:           f.inTry,
			}

			switch res.Value {
			case amdLoaderEntry:
				d.Special = manifest.LoaderFunctionReference
			case amdExportsEntry:
				d.Special = manifest.ModuleExportsReference
			default:
				d.Name = res.Value
			}

			f.scope.AddDependency(d)
		}
	}
}

package context

import (
	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/vm"
)

// ResolveConstants is post-ingestion pass (iv), run after ResolveTypes
// and ComputeLayouts have given every declared type a meaning: each
// pending constant or static's initializer is lowered to a
// vm.Program, type-checked, evaluated, and the result stored on its
// Global. A global whose declared type disagrees with what its
// initializer actually produces, or whose initializer lower can't
// lower at all, is left unresolved and reported rather than aborting
// the whole pass.
func (c *Context) ResolveConstants() {
	for path, g := range c.Globals {
		if g.Kind != GlobalConstant && g.Kind != GlobalStatic {
			continue
		}
		if g.Resolved || g.Expr == nil {
			continue
		}
		c.resolveConstant(path, g)
	}
}

func (c *Context) resolveConstant(path string, g *Global) {
	prog, ty, err := c.lower(g.Expr)
	if err != nil {
		c.report(diag.New(diag.KindUnresolvedConstant, g.Expr.Span(), "%s: %s", path, err))
		return
	}

	if g.ResolvedType != nil && !sameTypeName(g.ResolvedType, ty) {
		c.report(diag.New(diag.KindTypeMismatch, g.Expr.Span(),
			"%s: declared as %s but initializer produces %s", path, g.ResolvedType, ty))
		return
	}

	if err := prog.TypeCheck(); err != nil {
		c.report(diag.New(diag.KindTypeMismatch, g.Expr.Span(), "%s: %s", path, err))
		return
	}

	result, err := prog.Eval(&vm.Context{})
	if err != nil {
		c.report(diag.New(diag.KindUnresolvedConstant, g.Expr.Span(), "%s: %s", path, err))
		return
	}

	if g.ResolvedType == nil {
		g.ResolvedType = ty
	}
	g.Value = result
	g.Resolved = true
}

// sameTypeName compares two resolved types by their rendered name:
// types.Type has no dedicated equality method, and every resolved
// type renders to its own distinct name.
func sameTypeName(a, b interface{ String() string }) bool {
	return a.String() == b.String()
}

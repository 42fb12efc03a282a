package context

import "github.com/parkertenbroeck/bc/internal/diag"

// CheckSizedness is post-ingestion pass (iii): function parameters and
// return types, and every global's declared type, must be sized -
// struct/union non-terminal field sizedness is already enforced by
// the layout algorithm itself (types.UserTypeStore.Layout rejects a
// struct with any member after an unsized one).
func (c *Context) CheckSizedness() {
	for _, g := range c.Globals {
		switch g.Kind {
		case GlobalFunction:
			c.checkFunctionSizedness(g.Func)
		case GlobalConstant, GlobalStatic:
			if g.ResolvedType == nil {
				continue
			}
			layout, err := g.ResolvedType.Layout(c.Types)
			if err != nil {
				c.report(diag.New(diag.KindUnknownType, zeroSpan(), "%s", err))
				continue
			}
			if !layout.Sized {
				c.report(diag.New(diag.KindUnsizedInContext, zeroSpan(), "global value's type must be sized"))
			}
		}
	}
}

func (c *Context) checkFunctionSizedness(fn *Function) {
	for i, ty := range fn.ParamTypes {
		if ty == nil {
			continue
		}
		layout, err := ty.Layout(c.Types)
		if err != nil {
			c.report(diag.New(diag.KindUnknownType, zeroSpan(), "parameter %d of %s: %s", i, fn.Path, err))
			continue
		}
		if !layout.Sized {
			c.report(diag.New(diag.KindUnsizedInContext, zeroSpan(), "parameter %d of %s must be sized", i, fn.Path))
		}
	}
	if fn.ReturnType == nil {
		return
	}
	layout, err := fn.ReturnType.Layout(c.Types)
	if err != nil {
		c.report(diag.New(diag.KindUnknownType, zeroSpan(), "return type of %s: %s", fn.Path, err))
		return
	}
	if !layout.Sized {
		c.report(diag.New(diag.KindUnsizedInContext, zeroSpan(), "return type of %s must be sized", fn.Path))
	}
}

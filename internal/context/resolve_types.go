package context

import (
	"fmt"

	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/types"
)

// ResolveTypes is post-ingestion pass (i): every struct/union/enum
// registered by Ingest gets its member types resolved from syntax
// into types.Type and is defined in the type store; every function's
// parameter/return types and every global's declared type are
// resolved the same way. Named member types referring to a path the
// store doesn't know about are reported as KindUnknownType and
// skipped rather than aborting the whole pass.
func (c *Context) ResolveTypes() {
	for path, s := range c.structs {
		members := make([]types.StructMember, 0, len(s.Fields))
		for _, f := range s.Fields {
			ty, ok := c.resolveField(path, &f.Type)
			if !ok {
				continue
			}
			members = append(members, types.StructMember{Name: f.Name, Type: ty})
		}
		c.Types.DefineStruct(path, members)
	}

	for path, u := range c.unions {
		members := make([]types.UnionMember, 0, len(u.Fields))
		for _, f := range u.Fields {
			ty, ok := c.resolveField(path, &f.Type)
			if !ok {
				continue
			}
			members = append(members, types.UnionMember{Name: f.Name, Type: ty})
		}
		c.Types.DefineUnion(path, members)
	}

	for path, e := range c.enums {
		variants := make([]types.EnumVariant, 0, len(e.Variants))
		for i, v := range e.Variants {
			// Each variant is numbered by its position, matching the
			// original's enumerate()-based default; an explicit
			// discriminant expression on the variant is not evaluated.
			variants = append(variants, types.EnumVariant{Name: v.Name, Value: uint64(i)})
		}
		c.Types.DefineEnum(path, variants)
	}

	for _, g := range c.Globals {
		switch g.Kind {
		case GlobalFunction:
			c.resolveFunctionSig(g.Func)
		case GlobalConstant, GlobalStatic:
			if g.Type == nil {
				continue // type inferred from Expr during constant resolution
			}
			ty, err := c.Solver.Resolve(g.Type)
			if err != nil {
				c.report(diag.New(diag.KindUnknownType, g.Type.Span(), "%s", err))
				continue
			}
			g.ResolvedType = ty
		}
	}
}

func (c *Context) resolveField(ownerPath string, te *ast.TypeExpr) (types.Type, bool) {
	ty, err := c.Solver.Resolve(te)
	if err == nil {
		// Resolve turns any non-intrinsic base into a Named type without
		// looking it up, so check the name against the ingested types.
		base := te.Base.String()
		bare, _ := c.Solver.Resolve(&ast.TypeExpr{Base: te.Base})
		if _, named := bare.(types.Named); named && c.structs[base] == nil && c.unions[base] == nil && c.enums[base] == nil {
			err = fmt.Errorf("types: unknown type %q", base)
		}
	}
	if err != nil {
		c.report(diag.New(diag.KindUnknownType, te.Span(), "in %s: %s", ownerPath, err))
		return nil, false
	}
	return ty, true
}

func (c *Context) resolveFunctionSig(fn *Function) {
	fn.ParamTypes = make([]types.Type, len(fn.Header.Params))
	for i, p := range fn.Header.Params {
		ty, ok := c.resolveField(fn.Path, &p.Type)
		if !ok {
			continue
		}
		fn.ParamTypes[i] = ty
	}
	if fn.Header.Ret == nil {
		fn.ReturnType = types.Void{}
		return
	}
	ty, ok := c.resolveField(fn.Path, fn.Header.Ret)
	if !ok {
		return
	}
	fn.ReturnType = ty
}

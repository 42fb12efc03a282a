package context

import (
	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/diag"
)

// Ingest registers every top-level item of module under modPath
// (empty for the root module), leaving struct/union/enum member types
// and global initializers unresolved - ResolveTypes, CheckSizedness,
// and ResolveConstants turn this raw registration into a fully
// resolved program. Every duplicate path insertion is reported through
// Diagnostics rather than aborting, and ingestion of that item is
// skipped, so a single typo doesn't hide the rest of the module's
// problems behind it.
func (c *Context) Ingest(modPath string, module *ast.Module) error {
	for _, s := range module.Structs {
		path := join(modPath, s.Name)
		if _, exists := c.structs[path]; exists {
			c.report(diag.New(diag.KindDuplicateDefinition, s.Span(), "duplicate definition of %q", path))
			continue
		}
		c.structs[path] = s
	}

	for _, u := range module.Unions {
		path := join(modPath, u.Name)
		if _, exists := c.unions[path]; exists {
			c.report(diag.New(diag.KindDuplicateDefinition, u.Span(), "duplicate definition of %q", path))
			continue
		}
		c.unions[path] = u
	}

	for _, e := range module.Enums {
		path := join(modPath, e.Name)
		if _, exists := c.enums[path]; exists {
			c.report(diag.New(diag.KindDuplicateDefinition, e.Span(), "duplicate definition of %q", path))
			continue
		}
		c.enums[path] = e
	}

	for _, g := range module.Globals {
		path := join(modPath, g.Name)
		kind := GlobalConstant
		// A global without an explicit value reads as a mutable
		// static; one with an initializer is a constant. Parser
		// support for the `static` keyword itself is out of scope, so
		// this is the only signal ingestion has to go on.
		if g.Value == nil {
			kind = GlobalStatic
		}
		if _, exists := c.Globals[path]; exists {
			c.report(diag.New(diag.KindDuplicateDefinition, g.Span(), "duplicate definition of %q", path))
			continue
		}
		c.Globals[path] = &Global{Kind: kind, Type: g.Type, Expr: g.Value}
	}

	for _, f := range module.Functions {
		path := join(modPath, f.Header.Name)
		fn := &Function{Path: path, Header: f.Header}
		if f.Body != nil {
			fn.Kind = FunctionDefinition
			fn.Body = f.Body
		} else {
			fn.Kind = FunctionDeclaration
		}
		if _, exists := c.Globals[path]; exists {
			c.report(diag.New(diag.KindDuplicateDefinition, f.Span(), "duplicate definition of %q", path))
			continue
		}
		c.Globals[path] = &Global{Kind: GlobalFunction, Func: fn}
	}

	return nil
}

func join(modPath, name string) string {
	if modPath == "" {
		return name
	}
	return modPath + "::" + name
}

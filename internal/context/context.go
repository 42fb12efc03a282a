// Package context holds a single module's global symbol table and
// drives the post-ingestion passes (type resolution, layout,
// sizedness, constant resolution) that turn raw declarations into a
// fully resolved program: one file per pass, the way the teacher
// splits large stateful subsystems (internal/bytecode's vm_exec.go,
// vm_calls.go, vm_ops.go) into verb-named files rather than one
// monolithic one.
package context

import (
	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/token"
	"github.com/parkertenbroeck/bc/internal/types"
	"github.com/parkertenbroeck/bc/internal/vm"
)

// zeroSpan stands in for a span on diagnostics whose cause is a named
// type rather than a specific token - a recursive-type cycle detected
// while forcing every type's layout, say, which points at a path, not
// a source location the context kept around.
func zeroSpan() token.Span { return token.Span{} }

// GlobalKind distinguishes the three shapes a top-level name can take.
type GlobalKind int

const (
	GlobalFunction GlobalKind = iota
	GlobalConstant
	GlobalStatic
)

// Global is one entry of the module's symbol table, selected by Kind:
// Func is populated for GlobalFunction; Type, ResolvedType, Expr and
// Value belong to GlobalConstant and GlobalStatic, which start out
// Resolved == false with Expr holding the pending initializer and
// become resolved once constant evaluation runs.
type Global struct {
	Kind GlobalKind

	Func *Function

	Type         *ast.TypeExpr
	ResolvedType types.Type // filled in by ResolveTypes
	Resolved     bool
	Expr         ast.Expression // pending initializer
	Value        vm.Result      // valid once Resolved
}

// FunctionKind distinguishes a header-only declaration (an external
// ABI binding with no body) from a full definition.
type FunctionKind int

const (
	FunctionDeclaration FunctionKind = iota
	FunctionDefinition
)

// Function is a registered function signature, in either resolved or
// unresolved form depending on whether type resolution has run yet.
type Function struct {
	Path   string
	Kind   FunctionKind
	Header ast.FunctionHeader
	Body   *ast.Block // nil for a declaration

	ParamTypes []types.Type // filled in by ResolveTypes
	ReturnType types.Type
}

// Context is the ingested, partially-or-fully-resolved state of one
// module: the type map every struct/union/enum was inserted into, the
// flat path-keyed global table, and the diagnostics any pass has
// reported so far.
type Context struct {
	Types   *types.UserTypeStore
	Solver  *types.Solver
	Globals map[string]*Global

	structs map[string]*ast.StructDef
	unions  map[string]*ast.UnionDef
	enums   map[string]*ast.EnumDef

	ops *vm.OperatorRegistry

	diags []diag.Diagnostic
}

// New returns an empty context ready for Ingest.
func New() *Context {
	store := types.NewUserTypeStore()
	return &Context{
		Types:   store,
		Solver:  types.NewSolver(store),
		Globals: make(map[string]*Global),
		structs: make(map[string]*ast.StructDef),
		unions:  make(map[string]*ast.UnionDef),
		enums:   make(map[string]*ast.EnumDef),
		ops:     vm.NewOperatorRegistry(),
	}
}

// Diagnostics returns every diagnostic collected by Ingest or any
// post-ingestion pass, in the order they were reported.
func (c *Context) Diagnostics() []diag.Diagnostic {
	return c.diags
}

func (c *Context) report(d diag.Diagnostic) {
	c.diags = append(c.diags, d)
}

// Global looks up a registered name by its canonical path.
func (c *Context) Global(path string) (*Global, bool) {
	g, ok := c.Globals[path]
	return g, ok
}


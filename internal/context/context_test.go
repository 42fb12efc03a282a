package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/token"
)

func ptrTypeExpr(base string) *ast.TypeExpr {
	return &ast.TypeExpr{Base: ast.Path{Segments: []string{base}}}
}

func numLit(hint token.Hint, raw string) *ast.NumberLit {
	return &ast.NumberLit{Num: token.Number{Hint: hint}, Raw: raw}
}

func boolLit(v bool) *ast.BoolLit { return &ast.BoolLit{Value: v} }

func TestIngestRegistersStructsAndGlobals(t *testing.T) {
	module := &ast.Module{
		Structs: []*ast.StructDef{{
			Name: "Point",
			Fields: []ast.FieldDef{
				{Name: "x", Type: *ptrTypeExpr("u32")},
				{Name: "y", Type: *ptrTypeExpr("u32")},
			},
		}},
		Globals: []*ast.GlobalDef{
			{Name: "ANSWER", Value: numLit(token.HintInt, "42")},
			{Name: "counter", Type: ptrTypeExpr("u32")},
		},
	}

	c := New()
	require.NoError(t, c.Ingest("", module))

	answer, ok := c.Global("ANSWER")
	require.True(t, ok)
	assert.Equal(t, GlobalConstant, answer.Kind)

	counter, ok := c.Global("counter")
	require.True(t, ok)
	assert.Equal(t, GlobalStatic, counter.Kind)
	assert.Nil(t, counter.Expr)
}

func TestIngestReportsDuplicateDefinition(t *testing.T) {
	module := &ast.Module{
		Structs: []*ast.StructDef{
			{Name: "Dup"},
			{Name: "Dup"},
		},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))

	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, diag.KindDuplicateDefinition, c.Diagnostics()[0].Kind)
}

func TestResolveTypesFillsStructMemberTypes(t *testing.T) {
	module := &ast.Module{
		Structs: []*ast.StructDef{{
			Name: "Point",
			Fields: []ast.FieldDef{
				{Name: "x", Type: *ptrTypeExpr("u32")},
				{Name: "y", Type: *ptrTypeExpr("u32")},
			},
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	require.Empty(t, c.Diagnostics())

	layout, err := c.Types.Layout("Point")
	require.NoError(t, err)
	assert.Equal(t, uint64(8), layout.SizeBytes())
	assert.True(t, layout.IsSized())
}

func TestResolveTypesReportsUnknownMemberType(t *testing.T) {
	module := &ast.Module{
		Structs: []*ast.StructDef{{
			Name:   "Bad",
			Fields: []ast.FieldDef{{Name: "x", Type: *ptrTypeExpr("NoSuchType")}},
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	assert.NotEmpty(t, c.Diagnostics())
}

func TestComputeLayoutsReportsRecursiveStruct(t *testing.T) {
	module := &ast.Module{
		Structs: []*ast.StructDef{{
			Name:   "Cyclic",
			Fields: []ast.FieldDef{{Name: "self", Type: *ptrTypeExpr("Cyclic")}},
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.ComputeLayouts()
	assert.NotEmpty(t, c.Diagnostics())
}

func TestCheckSizednessRejectsUnsizedGlobal(t *testing.T) {
	module := &ast.Module{
		Globals: []*ast.GlobalDef{
			{Name: "s", Type: ptrTypeExpr("str")},
		},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.CheckSizedness()
	assert.NotEmpty(t, c.Diagnostics())
}

func TestCheckSizednessAcceptsSizedFunctionSignature(t *testing.T) {
	module := &ast.Module{
		Functions: []*ast.FunctionDef{{
			Header: ast.FunctionHeader{
				Name:   "add",
				Params: []ast.Param{{Name: "a", Type: *ptrTypeExpr("u32")}, {Name: "b", Type: *ptrTypeExpr("u32")}},
				Ret:    ptrTypeExpr("u32"),
			},
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.CheckSizedness()
	assert.Empty(t, c.Diagnostics())
}

func TestResolveConstantsEvaluatesArithmetic(t *testing.T) {
	// CONST_VAL = 2 + 3 * 4
	expr := &ast.BinaryExpr{
		Op:   "+",
		Left: numLit(token.HintInt, "2"),
		Right: &ast.BinaryExpr{
			Op:    "*",
			Left:  numLit(token.HintInt, "3"),
			Right: numLit(token.HintInt, "4"),
		},
	}
	module := &ast.Module{
		Globals: []*ast.GlobalDef{{Name: "CONST_VAL", Value: expr}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.ResolveConstants()
	require.Empty(t, c.Diagnostics())

	g, ok := c.Global("CONST_VAL")
	require.True(t, ok)
	require.True(t, g.Resolved)
	assert.Equal(t, int64(14), g.Value.I64)
}

func TestResolveConstantsEvaluatesBooleanNegation(t *testing.T) {
	expr := &ast.UnaryExpr{Op: "!", Operand: boolLit(false)}
	module := &ast.Module{
		Globals: []*ast.GlobalDef{{Name: "FLAG", Value: expr}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.ResolveConstants()
	require.Empty(t, c.Diagnostics())

	g, ok := c.Global("FLAG")
	require.True(t, ok)
	require.True(t, g.Resolved)
	assert.True(t, g.Value.Bool)
}

func TestResolveConstantsReportsTypeMismatch(t *testing.T) {
	module := &ast.Module{
		Globals: []*ast.GlobalDef{{
			Name:  "WRONG",
			Type:  ptrTypeExpr("bool"),
			Value: numLit(token.HintInt, "1"),
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.ResolveConstants()
	assert.NotEmpty(t, c.Diagnostics())

	g, ok := c.Global("WRONG")
	require.True(t, ok)
	assert.False(t, g.Resolved)
}

func TestResolveConstantsReportsNotEvaluableExpression(t *testing.T) {
	module := &ast.Module{
		Globals: []*ast.GlobalDef{{
			Name:  "CALLS",
			Value: &ast.CallExpr{Callee: &ast.Ident{Name: "f"}},
		}},
	}
	c := New()
	require.NoError(t, c.Ingest("", module))
	c.ResolveTypes()
	c.ResolveConstants()
	assert.NotEmpty(t, c.Diagnostics())
}

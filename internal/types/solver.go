package types

import (
	"fmt"

	"github.com/parkertenbroeck/bc/internal/ast"
)

// intrinsics maps the spelling a TypeExpr's base path uses for a
// built-in type to the resolved Type it denotes. Anything not in this
// table is assumed to name a user-defined struct/union/enum and is
// looked up in the Solver's Store instead.
var intrinsics = map[string]Type{
	"u8":    Int{Width: U8},
	"u16":   Int{Width: U16},
	"u32":   Int{Width: U32},
	"u64":   Int{Width: U64},
	"usize": Int{Width: Usize},
	"f32":   Float{Width: F32},
	"f64":   Float{Width: F64},
	"bool":  Bool{},
	"char":  Char{},
	"void":  Void{},
	"str":   Str{},
}

// Solver resolves ast.TypeExpr syntax into resolved Type values and
// computes their layouts, memoizing the resolved shape per expression
// so repeated references to the same named type - a function called
// from ten call sites, say - only resolve once. Layouts are not cached
// here; the Store memoizes each user type's layout.
type Solver struct {
	Store *UserTypeStore

	resolveCalls int
	layoutCalls  int
	cacheHits    int
	resolveCache map[string]Type
}

// NewSolver returns a solver backed by store.
func NewSolver(store *UserTypeStore) *Solver {
	return &Solver{Store: store, resolveCache: make(map[string]Type)}
}

// Resolve turns a parsed type expression into a resolved Type,
// wrapping it in Ref/Array/ArrayStatic layers outermost-first to
// match how TypeExpr records them (every pointer level becomes a Ref).
func (s *Solver) Resolve(te *ast.TypeExpr) (Type, error) {
	s.resolveCalls++

	base := te.Base.String()
	key := fmt.Sprintf("%s/%d/%v", base, te.PtrDepth, te.ArrayLen)
	if cached, ok := s.resolveCache[key]; ok {
		s.cacheHits++
		return cached, nil
	}

	var t Type
	if intrinsic, ok := intrinsics[base]; ok {
		t = intrinsic
	} else {
		t = Named{Path: base}
	}

	// ArrayLen is outermost-first in the syntax ([5][]T reads as an
	// array of 5 elements, each a slice of T), so wrap from the end
	// inward to rebuild that nesting.
	for i := len(te.ArrayLen) - 1; i >= 0; i-- {
		n := te.ArrayLen[i]
		if n < 0 {
			t = Array{Elem: t}
		} else {
			t = ArrayStatic{Elem: t, Len: uint64(n)}
		}
	}

	for i := 0; i < te.PtrDepth; i++ {
		t = Ref{Elem: t}
	}

	s.resolveCache[key] = t
	return t, nil
}

// Layout resolves te and computes its layout in one step.
func (s *Solver) Layout(te *ast.TypeExpr) (Layout, error) {
	s.layoutCalls++
	t, err := s.Resolve(te)
	if err != nil {
		return Layout{}, err
	}
	return t.Layout(s.Store)
}

// GetType resolves and lays out a named user type directly, the way a
// caller inspecting a struct definition by name would (rather than
// starting from an ast.TypeExpr).
func (s *Solver) GetType(path string) (Layout, Type, error) {
	layout, err := s.Store.Layout(path)
	if err != nil {
		return Layout{}, nil, err
	}
	return layout, Named{Path: path}, nil
}

// Stats summarizes how much work a Solver has done, for diagnostics
// and benchmarking.
type Stats struct {
	ResolveCalls int
	LayoutCalls  int
	CacheHits    int
	TypesDefined int
}

func (s *Solver) GetStats() Stats {
	return Stats{
		ResolveCalls: s.resolveCalls,
		LayoutCalls:  s.layoutCalls,
		CacheHits:    s.cacheHits,
		TypesDefined: len(s.Store.types),
	}
}

func (st Stats) String() string {
	return fmt.Sprintf("resolved %d, laid out %d, cache hits %d, %d user types defined",
		st.ResolveCalls, st.LayoutCalls, st.CacheHits, st.TypesDefined)
}

// Package ast defines the syntax tree bc's front end builds tokens
// into. No parser ships yet (see internal/parser's stub contract); this
// package defines the shape a parser would produce and the shape the
// type/layout solver and VM lowering consume.
package ast

import "github.com/parkertenbroeck/bc/internal/token"

// Node is implemented by every AST node so diagnostics can always
// locate a node in the source.
type Node interface {
	Span() token.Span
}

// Expression is a node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node executed for effect inside a block.
type Statement interface {
	Node
	statementNode()
}

// Item is a top-level declaration: a function, a struct/union/enum
// definition, or a global.
type Item interface {
	Node
	itemNode()
}

// Module is a single compiled unit: an ordered list of items, grouped
// by kind for the passes that only care about one kind at a time.
type Module struct {
	Functions []*FunctionDef
	Structs   []*StructDef
	Unions    []*UnionDef
	Enums     []*EnumDef
	Globals   []*GlobalDef
}

// Path is a possibly-qualified name, e.g. `foo` or `foo::bar`.
type Path struct {
	Segments []string
	Sp       token.Span
}

func (p *Path) Span() token.Span { return p.Sp }

func (p *Path) String() string {
	s := ""
	for i, seg := range p.Segments {
		if i > 0 {
			s += "::"
		}
		s += seg
	}
	return s
}

// ---- Expressions ----

type Ident struct {
	Name string
	Sp   token.Span
}

func (i *Ident) Span() token.Span  { return i.Sp }
func (*Ident) expressionNode()     {}

type NumberLit struct {
	Num token.Number
	Raw string
	Sp  token.Span
}

func (n *NumberLit) Span() token.Span { return n.Sp }
func (*NumberLit) expressionNode()    {}

type StringLit struct {
	Value string
	Sp    token.Span
}

func (s *StringLit) Span() token.Span { return s.Sp }
func (*StringLit) expressionNode()    {}

type CharLit struct {
	Value rune
	Sp    token.Span
}

func (c *CharLit) Span() token.Span { return c.Sp }
func (*CharLit) expressionNode()    {}

type BoolLit struct {
	Value bool
	Sp    token.Span
}

func (b *BoolLit) Span() token.Span { return b.Sp }
func (*BoolLit) expressionNode()    {}

// BinaryExpr is a two-operand expression; Op is the lexeme of the
// operator token (e.g. "+", "==", "&&") so the VM's operator registry
// can key off it directly without an intermediate enum.
type BinaryExpr struct {
	Left, Right Expression
	Op          string
	Sp          token.Span
}

func (b *BinaryExpr) Span() token.Span { return b.Sp }
func (*BinaryExpr) expressionNode()    {}

type UnaryExpr struct {
	Operand Expression
	Op      string
	Sp      token.Span
}

func (u *UnaryExpr) Span() token.Span { return u.Sp }
func (*UnaryExpr) expressionNode()    {}

type GroupedExpr struct {
	Inner Expression
	Sp    token.Span
}

func (g *GroupedExpr) Span() token.Span { return g.Sp }
func (*GroupedExpr) expressionNode()    {}

type CallExpr struct {
	Callee Expression
	Args   []Expression
	Sp     token.Span
}

func (c *CallExpr) Span() token.Span { return c.Sp }
func (*CallExpr) expressionNode()    {}

type FieldExpr struct {
	Base  Expression
	Field string
	Sp    token.Span
}

func (f *FieldExpr) Span() token.Span { return f.Sp }
func (*FieldExpr) expressionNode()    {}

type IndexExpr struct {
	Base, Index Expression
	Sp          token.Span
}

func (ix *IndexExpr) Span() token.Span { return ix.Sp }
func (*IndexExpr) expressionNode()     {}

// ---- Statements ----

type ExprStmt struct {
	X  Expression
	Sp token.Span
}

func (e *ExprStmt) Span() token.Span { return e.Sp }
func (*ExprStmt) statementNode()     {}

// LetStmt declares a local binding, optionally with an explicit type
// (nil when the type must be inferred from Value).
type LetStmt struct {
	Name  string
	Type  *TypeExpr
	Value Expression
	Sp    token.Span
}

func (l *LetStmt) Span() token.Span { return l.Sp }
func (*LetStmt) statementNode()     {}

type ReturnStmt struct {
	Value Expression // nil for a bare `return`
	Sp    token.Span
}

func (r *ReturnStmt) Span() token.Span { return r.Sp }
func (*ReturnStmt) statementNode()     {}

// Block is a braced sequence of statements. Label is non-empty for a
// labeled loop body (`'outer: loop { ... }`) so break/continue can name
// which enclosing block they target.
type Block struct {
	Label token.Span
	Stmts []Statement
	Sp    token.Span
}

func (b *Block) Span() token.Span { return b.Sp }
func (*Block) statementNode()     {}

type IfStmt struct {
	Cond       Expression
	Then, Else *Block
	Sp         token.Span
}

func (i *IfStmt) Span() token.Span { return i.Sp }
func (*IfStmt) statementNode()     {}

type WhileStmt struct {
	Cond Expression
	Body *Block
	Sp   token.Span
}

func (w *WhileStmt) Span() token.Span { return w.Sp }
func (*WhileStmt) statementNode()     {}

type LoopStmt struct {
	Body *Block
	Sp   token.Span
}

func (l *LoopStmt) Span() token.Span { return l.Sp }
func (*LoopStmt) statementNode()     {}

type ForStmt struct {
	Var       string
	Iterable  Expression
	Body      *Block
	Sp        token.Span
}

func (f *ForStmt) Span() token.Span { return f.Sp }
func (*ForStmt) statementNode()     {}

// ---- Items ----

// TypeExpr is an unresolved type reference as written in source: a
// path plus however many levels of pointer/array wrapping surround it.
// The solver turns this into a resolved types.Type.
type TypeExpr struct {
	Base     Path
	PtrDepth int
	ArrayLen []int // outermost first; -1 means unsized ([]T)
	Sp       token.Span
}

func (t *TypeExpr) Span() token.Span { return t.Sp }

type Param struct {
	Name string
	Type TypeExpr
}

type FunctionHeader struct {
	Name    string
	Params  []Param
	Ret     *TypeExpr
	Sp      token.Span
}

func (f *FunctionHeader) Span() token.Span { return f.Sp }

type FunctionDef struct {
	Header FunctionHeader
	Body   *Block
	Sp     token.Span
}

func (f *FunctionDef) Span() token.Span { return f.Sp }
func (*FunctionDef) itemNode()          {}

type FieldDef struct {
	Name string
	Type TypeExpr
}

type StructDef struct {
	Name   string
	Fields []FieldDef
	Sp     token.Span
}

func (s *StructDef) Span() token.Span { return s.Sp }
func (*StructDef) itemNode()          {}

type UnionDef struct {
	Name   string
	Fields []FieldDef
	Sp     token.Span
}

func (u *UnionDef) Span() token.Span { return u.Sp }
func (*UnionDef) itemNode()          {}

type EnumVariant struct {
	Name  string
	Value Expression // nil when the discriminant is implicit
}

type EnumDef struct {
	Name     string
	Variants []EnumVariant
	Sp       token.Span
}

func (e *EnumDef) Span() token.Span { return e.Sp }
func (*EnumDef) itemNode()          {}

type GlobalDef struct {
	Name  string
	Type  *TypeExpr
	Value Expression
	Sp    token.Span
}

func (g *GlobalDef) Span() token.Span { return g.Sp }
func (*GlobalDef) itemNode()          {}

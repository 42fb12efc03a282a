package context

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/token"
	"github.com/parkertenbroeck/bc/internal/types"
	"github.com/parkertenbroeck/bc/internal/vm"
)

// NotEvaluableError reports a constant expression lower can't lower:
// anything beyond literals, unary negate/not, grouping, the binary
// operator set, and a field access whose base names an
// already-resolved constant (lowerField rejects that last form with a
// plain error instead).
type NotEvaluableError struct {
	Expr ast.Expression
}

func (e *NotEvaluableError) Error() string {
	return fmt.Sprintf("context: expression at %s is not a constant", e.Expr.Span())
}

// lower compiles a constant expression into a vm.Program, returning
// the resolved type its evaluated result would carry. It covers
// boolean and numeric literals, unary negation/logical-not, and the
// binary operator set over well-typed numeric/boolean operands - the
// surface the original's stage::constant_eval left as an unimplemented
// stub for every arm. Field access is not lowered: lowerField reports
// an error for every field expression.
func (c *Context) lower(expr ast.Expression) (*vm.Program, types.Type, error) {
	p := vm.NewProgram()
	ty, err := c.lowerInto(p, expr)
	if err != nil {
		return nil, nil, err
	}
	return p, ty, nil
}

func (c *Context) lowerInto(p *vm.Program, expr ast.Expression) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.BoolLit:
		vm.PushVal(p, e.Value)
		return types.Bool{}, nil

	case *ast.NumberLit:
		return lowerNumber(p, e)

	case *ast.UnaryExpr:
		return c.lowerUnary(p, e)

	case *ast.GroupedExpr:
		return c.lowerInto(p, e.Inner)

	case *ast.BinaryExpr:
		return c.lowerBinary(p, e)

	case *ast.FieldExpr:
		return c.lowerField(p, e)

	default:
		return nil, &NotEvaluableError{Expr: expr}
	}
}

func lowerNumber(p *vm.Program, n *ast.NumberLit) (types.Type, error) {
	digits := n.Num.Digits(n.Raw)
	switch n.Num.Hint {
	case token.HintFloat:
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}
		vm.PushVal(p, v)
		return types.Float{Width: types.F64}, nil

	case token.HintHex:
		v, err := strconv.ParseInt(strings.TrimPrefix(digits, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}
		vm.PushVal(p, v)
		return types.Int{Width: types.U64}, nil

	case token.HintBin:
		v, err := strconv.ParseInt(strings.TrimPrefix(digits, "0b"), 2, 64)
		if err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}
		vm.PushVal(p, v)
		return types.Int{Width: types.U64}, nil

	default: // token.HintInt
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}
		vm.PushVal(p, v)
		return types.Int{Width: types.U64}, nil
	}
}

func (c *Context) lowerUnary(p *vm.Program, u *ast.UnaryExpr) (types.Type, error) {
	operandTy, err := c.lowerInto(p, u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "-":
		switch t := operandTy.(type) {
		case types.Float:
			p.AddOperator(negF64Op{})
			return t, nil
		case types.Int:
			p.AddOperator(negI64Op{})
			return t, nil
		default:
			return nil, fmt.Errorf("context: cannot negate a %s", operandTy)
		}
	case "!":
		if _, ok := operandTy.(types.Bool); !ok {
			return nil, fmt.Errorf("context: cannot apply ! to a %s", operandTy)
		}
		p.AddOperator(notOp{})
		return types.Bool{}, nil
	default:
		return nil, fmt.Errorf("context: unsupported unary operator %q", u.Op)
	}
}

func (c *Context) lowerBinary(p *vm.Program, b *ast.BinaryExpr) (types.Type, error) {
	leftTy, err := c.lowerInto(p, b.Left)
	if err != nil {
		return nil, err
	}
	rightTy, err := c.lowerInto(p, b.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case sameKind[types.Float](leftTy, rightTy):
		op, ok := c.ops.Float(b.Op)
		if !ok {
			return nil, fmt.Errorf("context: no float operator for %q", b.Op)
		}
		p.AddOperator(op)
		return outputType(op, leftTy), nil

	case sameKind[types.Int](leftTy, rightTy):
		op, ok := c.ops.Int(b.Op)
		if !ok {
			return nil, fmt.Errorf("context: no integer operator for %q", b.Op)
		}
		p.AddOperator(op)
		return outputType(op, leftTy), nil

	case sameKind[types.Bool](leftTy, rightTy):
		if b.Op != "||" && b.Op != "&&" {
			return nil, fmt.Errorf("context: no boolean operator for %q", b.Op)
		}
		op, ok := c.ops.Float(b.Op) // Or/And live in BasicOperator's registry bucket
		if !ok {
			return nil, fmt.Errorf("context: no boolean operator for %q", b.Op)
		}
		p.AddOperator(op)
		return types.Bool{}, nil

	default:
		return nil, fmt.Errorf("context: operand type mismatch: %s %s %s", leftTy, b.Op, rightTy)
	}
}

func sameKind[T any](a, b types.Type) bool {
	_, aok := a.(T)
	_, bok := b.(T)
	return aok && bok
}

func outputType(op vm.Operator, operandTy types.Type) types.Type {
	if len(op.Output()) == 1 && op.Output()[0] == vm.TagBool {
		return types.Bool{}
	}
	return operandTy
}

// lowerField rejects every field access. A base that is not a bare
// identifier naming an already-resolved constant global is reported as
// NotEvaluableError; any other base gets a plain error, since
// vm.Program's flat value stack holds no aggregate values to take a
// field from.
func (c *Context) lowerField(p *vm.Program, f *ast.FieldExpr) (types.Type, error) {
	ident, ok := f.Base.(*ast.Ident)
	if !ok {
		return nil, &NotEvaluableError{Expr: f}
	}
	g, ok := c.Global(ident.Name)
	if !ok || g.Kind != GlobalConstant || !g.Resolved {
		return nil, &NotEvaluableError{Expr: f}
	}
	return nil, fmt.Errorf("context: field access into aggregate constants is not yet supported")
}

// negF64Op, negI64Op, and notOp are single-operand operators the
// literal operator tables never needed: BasicOperator and IntOperator
// both model only the original's binary operator! macro expansion,
// which has no unary forms. vm.Operator is a plain interface, so
// lowering is free to supply its own implementations for the handful
// of unary cases rather than growing the shared tables with
// one-element Input() operators no evaluator besides this one needs.

type negF64Op struct{}

func (negF64Op) Name() string          { return "neg" }
func (negF64Op) Input() []vm.ValueTag  { return []vm.ValueTag{vm.TagF64} }
func (negF64Op) Output() []vm.ValueTag { return []vm.ValueTag{vm.TagF64} }
func (negF64Op) Run(_ *vm.Context, stack *vm.Stack) error {
	stack.PushF64(-stack.PopF64())
	return nil
}

type negI64Op struct{}

func (negI64Op) Name() string          { return "neg" }
func (negI64Op) Input() []vm.ValueTag  { return []vm.ValueTag{vm.TagI64} }
func (negI64Op) Output() []vm.ValueTag { return []vm.ValueTag{vm.TagI64} }
func (negI64Op) Run(_ *vm.Context, stack *vm.Stack) error {
	stack.PushI64(-stack.PopI64())
	return nil
}

type notOp struct{}

func (notOp) Name() string          { return "!" }
func (notOp) Input() []vm.ValueTag  { return []vm.ValueTag{vm.TagBool} }
func (notOp) Output() []vm.ValueTag { return []vm.ValueTag{vm.TagBool} }
func (notOp) Run(_ *vm.Context, stack *vm.Stack) error {
	stack.PushBool(!stack.PopBool())
	return nil
}

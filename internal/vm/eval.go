package vm

import "fmt"

// Eval runs p's instructions in order against a fresh Stack, reading
// each Lit instruction's payload off the literal pool and applying
// each Op in turn, then returns the single remaining value. Callers
// should call TypeCheck first; Eval trusts the program's declared
// shapes and does not re-validate them at run time, mirroring the
// original's separation between a debug-only dynamic check and the
// (here, un-instrumented) hot evaluation loop.
func (p *Program) Eval(ctx *Context) (Result, error) {
	stack := NewStack(len(p.values))
	pos := 0

	for i, instr := range p.instrs {
		switch instr.kind {
		case instrLit:
			stack.buf = append(stack.buf, p.values[pos:pos+instr.width]...)
			pos += instr.width
		case instrOp:
			if err := instr.op.Run(ctx, stack); err != nil {
				return Result{}, fmt.Errorf("vm: instruction %d (%s): %w", i, instr.op.Name(), err)
			}
		}
	}

	tag, err := p.OutputTag()
	if err != nil {
		return Result{}, err
	}
	return resultFrom(stack, tag)
}

// Result is the single value left on the stack once a well-typed
// Program finishes evaluating, tagged so callers can recover which
// accessor is valid.
type Result struct {
	Tag  ValueTag
	F64  float64
	I64  int64
	Bool bool
}

func resultFrom(stack *Stack, tag ValueTag) (Result, error) {
	if stack.Len() != tag.Width() {
		return Result{}, fmt.Errorf("vm: program left %d byte(s) on the stack, want %d for %s", stack.Len(), tag.Width(), tag)
	}
	switch tag {
	case TagBool:
		return Result{Tag: tag, Bool: stack.PopBool()}, nil
	case TagI64:
		return Result{Tag: tag, I64: stack.PopI64()}, nil
	case TagF64:
		return Result{Tag: tag, F64: stack.PopF64()}, nil
	default:
		return Result{}, fmt.Errorf("vm: unknown output tag %s", tag)
	}
}

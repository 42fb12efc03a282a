package vm

import "fmt"

// instrKind distinguishes a literal push from an operator application
// inside a Program's instruction list.
type instrKind int

const (
	instrLit instrKind = iota
	instrOp
)

// Instr is one step of a Program: either "push the next literal from
// the value pool" (carrying the literal's tag and byte width) or
// "apply this operator to the top of the stack".
type Instr struct {
	kind  instrKind
	tag   ValueTag
	width int
	op    Operator
}

// Program is a flat postfix instruction sequence plus the raw bytes of
// every literal it references, built by PushVal/AddOperator and
// executed in order by Eval - a port of the original's Run<V,O>, whose
// `values` FIFO held pending literals consumed in the same order the
// interleaved Lit/Op instructions were recorded.
type Program struct {
	instrs []Instr
	values []byte
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{}
}

// PushVal appends a literal of type T to the program: a Lit
// instruction recording its tag and width, with the value's raw bytes
// queued in the literal pool for Eval to consume in program order.
func PushVal[T float64 | int64 | bool](p *Program, v T) {
	var tag ValueTag
	var scratch Stack
	switch val := any(v).(type) {
	case float64:
		tag = TagF64
		scratch.PushF64(val)
	case int64:
		tag = TagI64
		scratch.PushI64(val)
	case bool:
		tag = TagBool
		scratch.PushBool(val)
	default:
		panic(fmt.Sprintf("vm: unsupported literal type %T", v))
	}
	p.values = append(p.values, scratch.buf...)
	p.instrs = append(p.instrs, Instr{kind: instrLit, tag: tag, width: tag.Width()})
}

// AddOperator appends an operator application.
func (p *Program) AddOperator(op Operator) {
	p.instrs = append(p.instrs, Instr{kind: instrOp, op: op})
}

// Len reports how many instructions the program holds.
func (p *Program) Len() int { return len(p.instrs) }

// OutputTag reports the tag of the value a well-typed program leaves
// behind: the last instruction's own production, since TypeCheck never
// assigns an expectation to it (nothing inside the program consumes
// the overall result).
func (p *Program) OutputTag() (ValueTag, error) {
	if len(p.instrs) == 0 {
		return 0, fmt.Errorf("vm: empty program has no output")
	}
	last := p.instrs[len(p.instrs)-1]
	if last.kind == instrLit {
		return last.tag, nil
	}
	out := last.op.Output()
	if len(out) != 1 {
		return 0, fmt.Errorf("vm: program's final operator %s does not leave a single value", last.op.Name())
	}
	return out[0], nil
}

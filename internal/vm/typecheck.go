package vm

import "fmt"

// TypeCheckError reports a Program whose declared instruction shapes
// don't connect: an instruction producing a tag other than the one
// expected above it, or operator inputs that no earlier instruction
// produces. It replaces the original's run-time debug_assert! with
// an always-on static pre-pass, consistent with bc's rule that an
// ill-typed program is a reported error, never a panic.
type TypeCheckError struct {
	Index int
	Msg   string
}

func (e *TypeCheckError) Error() string {
	return fmt.Sprintf("vm: type check failed at instruction %d: %s", e.Index, e.Msg)
}

// TypeCheck walks p's instructions in reverse, tracking the tags later
// instructions expect to find. Each instruction's declared output
// (Lit's own tag, or an Op's Output()) must match what's already
// expected; each Op's declared Input() then becomes new expectations
// for whatever precedes it. A well-formed program consumes every
// expectation and ends the walk with none outstanding, confirming that
// every operator's inputs are produced with the right tags. Values that
// nothing consumes (two bare literals, say) are not detected here; Eval
// reports a stack holding more than the single result.
func (p *Program) TypeCheck() error {
	var expect []ValueTag

	for i := len(p.instrs) - 1; i >= 0; i-- {
		instr := p.instrs[i]

		var produces []ValueTag
		if instr.kind == instrLit {
			produces = []ValueTag{instr.tag}
		} else {
			produces = instr.op.Output()
		}

		if len(expect) > 0 {
			for _, tag := range produces {
				if len(expect) == 0 {
					return &TypeCheckError{Index: i, Msg: "produces a value nothing expects"}
				}
				top := expect[len(expect)-1]
				expect = expect[:len(expect)-1]
				if top != tag {
					return &TypeCheckError{Index: i, Msg: fmt.Sprintf("produces %s where %s was expected", tag, top)}
				}
			}
		}

		if instr.kind == instrOp {
			expect = append(expect, instr.op.Input()...)
		}
	}

	if len(expect) != 0 {
		return &TypeCheckError{Index: 0, Msg: fmt.Sprintf("%d value(s) expected but never produced", len(expect))}
	}
	return nil
}

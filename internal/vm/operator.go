package vm

// Context carries whatever external state an Operator's Run needs
// beyond the Stack itself. BasicOperator and the integer operators bc
// ships don't need any, so it is empty for now; it exists so the
// Operator interface doesn't have to change shape the day an operator
// that does need outside state (a builtin reading a global) shows up.
type Context struct{}

// Operator is one instruction a Program can execute: it consumes
// Input()'s tags off the top of the stack and leaves Output()'s tags
// in their place.
type Operator interface {
	Name() string
	Input() []ValueTag
	Output() []ValueTag
	Run(ctx *Context, stack *Stack) error
}

package vm

import (
	"fmt"
	"unsafe"
)

// ValueTag identifies the runtime shape of a value on the Stack,
// standing in for the original's per-value TypeId: every Operator
// declares the tags it consumes and produces so a program can be
// type-checked before it runs.
type ValueTag int

const (
	TagF64 ValueTag = iota
	TagI64
	TagBool
)

func (t ValueTag) String() string {
	switch t {
	case TagF64:
		return "f64"
	case TagI64:
		return "i64"
	case TagBool:
		return "bool"
	default:
		return fmt.Sprintf("ValueTag(%d)", int(t))
	}
}

// Width reports how many bytes a value of this tag occupies on the
// Stack.
func (t ValueTag) Width() int {
	switch t {
	case TagF64, TagI64:
		return 8
	case TagBool:
		return 1
	default:
		panic(fmt.Sprintf("vm: unknown value tag %d", t))
	}
}

// Stack is a byte-addressed value buffer: operators push and pop
// opaque fixed-width values without the Stack ever inspecting their
// shape, trusting the program that built it to keep pushes and pops
// balanced by type. This mirrors the original's HorribleVec, which
// wrote raw bytes behind an unsafe pointer cast; the Push/Pop methods
// here do the same with unsafe.Pointer casts over a plain byte slice,
// in native byte order.
type Stack struct {
	buf []byte
}

// NewStack returns an empty stack with cap bytes pre-reserved.
func NewStack(cap int) *Stack {
	return &Stack{buf: make([]byte, 0, cap)}
}

func (s *Stack) Len() int { return len(s.buf) }

// PushF64 appends a float64 value to the top of the stack.
func (s *Stack) PushF64(v float64) {
	s.buf = append(s.buf, (*[8]byte)(unsafe.Pointer(&v))[:]...)
}

// PushI64 appends an int64 value to the top of the stack.
func (s *Stack) PushI64(v int64) {
	s.buf = append(s.buf, (*[8]byte)(unsafe.Pointer(&v))[:]...)
}

// PushBool appends a bool value to the top of the stack.
func (s *Stack) PushBool(v bool) {
	var b byte
	if v {
		b = 1
	}
	s.buf = append(s.buf, b)
}

// PopF64 removes and returns the float64 at the top of the stack.
func (s *Stack) PopF64() float64 {
	n := len(s.buf)
	var v float64
	copy((*[8]byte)(unsafe.Pointer(&v))[:], s.buf[n-8:n])
	s.buf = s.buf[:n-8]
	return v
}

// PopI64 removes and returns the int64 at the top of the stack.
func (s *Stack) PopI64() int64 {
	n := len(s.buf)
	var v int64
	copy((*[8]byte)(unsafe.Pointer(&v))[:], s.buf[n-8:n])
	s.buf = s.buf[:n-8]
	return v
}

// PopBool removes and returns the bool at the top of the stack.
func (s *Stack) PopBool() bool {
	n := len(s.buf)
	v := s.buf[n-1] != 0
	s.buf = s.buf[:n-1]
	return v
}

// PushNFrom moves the last n bytes of other onto the top of s,
// preserving byte order, without knowing the tag of the value those
// bytes hold.
func (s *Stack) PushNFrom(other *Stack, n int) {
	start := len(other.buf) - n
	s.buf = append(s.buf, other.buf[start:]...)
	other.buf = other.buf[:start]
}

// Package types computes byte-exact memory layouts for bc's type
// system and resolves named types (struct/union/enum) to those
// layouts, caching the result per type the way a real backend would.
package types

import "fmt"

// Layout describes how many bytes a value occupies and how it must be
// aligned. Sized is false for dynamically-sized types (Str, a bare
// Array) that can only appear behind a pointer or as a trailing
// struct member.
type Layout struct {
	Size  uint64
	Align uint64
	Sized bool
}

// ZeroSize is the layout of a type that occupies no storage (Void, an
// empty struct) but can still be instantiated by value.
var ZeroSize = Layout{Size: 0, Align: 1, Sized: true}

// ZeroSizeUnsized is the layout of a dynamically-sized type with no
// fixed prefix (Str, a bare slice type); it can never be the layout
// of a value, only of what a fat pointer points at.
var ZeroSizeUnsized = Layout{Size: 0, Align: 1, Sized: false}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// New builds a sized layout, panicking if align isn't a power of two.
// A zero align has no valid power-of-two reading, so it panics too.
func New(size, align uint64) Layout {
	if !isPowerOfTwo(align) {
		panic(fmt.Sprintf("types: alignment %d is not a power of two", align))
	}
	return Layout{Size: size, Align: align, Sized: true}
}

// NewUnsized builds an unsized layout describing the sized prefix
// that precedes the dynamically-sized tail.
func NewUnsized(size, align uint64) Layout {
	if !isPowerOfTwo(align) {
		panic(fmt.Sprintf("types: alignment %d is not a power of two", align))
	}
	return Layout{Size: size, Align: align, Sized: false}
}

// AlignSize rounds Size up to the next multiple of Align, the amount
// of space one element of this layout occupies inside an array of
// them (padding included).
func (l Layout) AlignSize() uint64 {
	return (l.Size + l.Align - 1) &^ (l.Align - 1)
}

// Max combines two layouts the way a union does: the larger size (after
// rounding to the winning alignment), the larger alignment, and sized
// only if both members are sized.
func (l Layout) Max(other Layout) Layout {
	align := l.Align
	if other.Align > align {
		align = other.Align
	}
	size := l.Size
	if other.Size > size {
		size = other.Size
	}
	return Layout{
		Size:  size,
		Align: align,
		Sized: l.Sized && other.Sized,
	}.alignedSize()
}

func (l Layout) alignedSize() Layout {
	l.Size = l.AlignSize()
	return l
}

func (l Layout) SizeBytes() uint64 { return l.Size }
func (l Layout) IsSized() bool     { return l.Sized }

// Unsize drops sizedness and size, keeping only the alignment: the
// result is an unsized layout of size 0.
func (l Layout) Unsize() Layout {
	l.Sized = false
	l.Size = 0
	return l
}

// IntWidth names one of bc's fixed-width integer kinds.
type IntWidth int

const (
	U8 IntWidth = iota
	U16
	U32
	U64
	Usize
)

func (w IntWidth) Layout() Layout {
	switch w {
	case U8:
		return New(1, 1)
	case U16:
		return New(2, 2)
	case U32:
		return New(4, 4)
	case U64, Usize:
		return New(8, 8)
	default:
		panic("types: unknown integer width")
	}
}

// FloatWidth names one of bc's floating-point kinds.
type FloatWidth int

const (
	F32 FloatWidth = iota
	F64
)

func (w FloatWidth) Layout() Layout {
	switch w {
	case F32:
		return New(4, 4)
	case F64:
		return New(8, 8)
	default:
		panic("types: unknown float width")
	}
}

// pointerLayout implements the fat-pointer rule: a pointer to a sized
// type is a plain 8-byte address, but a pointer to an unsized type
// (Str, a bare Array) carries an extra 8-byte length/metadata word, so
// it needs 16 bytes and keeps 8-byte alignment.
func pointerLayout(pointee Layout) Layout {
	if pointee.Sized {
		return New(8, 8)
	}
	return New(16, 8)
}

// enumLayout picks the smallest unsigned width that can hold every
// discriminant, matching the tag width a real backend would choose.
func enumLayout(variantCount int) Layout {
	switch {
	case variantCount <= 1:
		return ZeroSize
	case variantCount <= 1<<8:
		return New(1, 1)
	case variantCount <= 1<<16:
		return New(2, 2)
	case variantCount <= 1<<32:
		return New(4, 4)
	default:
		panic(fmt.Sprintf("types: enum has too many variants (%d)", variantCount))
	}
}

package types

import "fmt"

// Type is a fully resolved bc type: every Named reference has a path
// the Store can look up, unlike ast.TypeExpr which is just the syntax
// a parser would have produced.
type Type interface {
	// Layout computes this type's size and alignment, resolving any
	// Named reference through store. store may be nil for types that
	// are known never to contain one (built a const expression solely
	// from intrinsics).
	Layout(store *UserTypeStore) (Layout, error)
	String() string
}

type Int struct{ Width IntWidth }

func (t Int) Layout(*UserTypeStore) (Layout, error) { return t.Width.Layout(), nil }
func (t Int) String() string {
	return [...]string{"u8", "u16", "u32", "u64", "usize"}[t.Width]
}

type Float struct{ Width FloatWidth }

func (t Float) Layout(*UserTypeStore) (Layout, error) { return t.Width.Layout(), nil }
func (t Float) String() string {
	return [...]string{"f32", "f64"}[t.Width]
}

type Bool struct{}

func (Bool) Layout(*UserTypeStore) (Layout, error) { return New(1, 1), nil }
func (Bool) String() string                        { return "bool" }

type Char struct{}

func (Char) Layout(*UserTypeStore) (Layout, error) { return New(1, 1), nil }
func (Char) String() string                        { return "char" }

type Void struct{}

func (Void) Layout(*UserTypeStore) (Layout, error) { return ZeroSize, nil }
func (Void) String() string                        { return "void" }

// FnPointer is a code-address value; bc has no closures, so it
// carries no extra payload the way a fat function pointer would.
type FnPointer struct{}

func (FnPointer) Layout(*UserTypeStore) (Layout, error) { return New(8, 8), nil }
func (FnPointer) String() string                        { return "fn()" }

// Str is the dynamically-sized UTF-8 byte sequence a `&str` points
// at; by itself it has no fixed size, only a pointer to one does.
type Str struct{}

func (Str) Layout(*UserTypeStore) (Layout, error) { return ZeroSizeUnsized, nil }
func (Str) String() string                        { return "str" }

// Ptr is a raw (possibly-null) pointer; Ref is a non-null reference.
// Both share the fat-pointer rule, so they share layout computation.
type Ptr struct{ Elem Type }

func (t Ptr) Layout(store *UserTypeStore) (Layout, error) {
	elem, err := t.Elem.Layout(store)
	if err != nil {
		return Layout{}, err
	}
	return pointerLayout(elem), nil
}
func (t Ptr) String() string { return "*" + t.Elem.String() }

type Ref struct{ Elem Type }

func (t Ref) Layout(store *UserTypeStore) (Layout, error) {
	elem, err := t.Elem.Layout(store)
	if err != nil {
		return Layout{}, err
	}
	return pointerLayout(elem), nil
}
func (t Ref) String() string { return "&" + t.Elem.String() }

// Array is the dynamically-sized slice type `[]T`: unsized, with the
// alignment of its element and no fixed size of its own.
type Array struct{ Elem Type }

func (t Array) Layout(store *UserTypeStore) (Layout, error) {
	elem, err := t.Elem.Layout(store)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Size: 0, Align: elem.Align, Sized: false}, nil
}
func (t Array) String() string { return "[]" + t.Elem.String() }

// ArrayStatic is the fixed-length array type `[T; N]`: Len copies of
// Elem laid out contiguously. The element's own layout is rounded up
// to its alignment before being multiplied by Len, matching how a
// slice of the array would index each element.
type ArrayStatic struct {
	Elem Type
	Len  uint64
}

func (t ArrayStatic) Layout(store *UserTypeStore) (Layout, error) {
	elem, err := t.Elem.Layout(store)
	if err != nil {
		return Layout{}, err
	}
	if !elem.Sized {
		return Layout{}, fmt.Errorf("types: array element %s is not sized", t.Elem)
	}
	return Layout{
		Size:  elem.AlignSize() * t.Len,
		Align: elem.Align,
		Sized: true,
	}, nil
}
func (t ArrayStatic) String() string { return fmt.Sprintf("[%s; %d]", t.Elem, t.Len) }

// Named is a reference to a struct, union, or enum defined elsewhere
// in the program; its layout is whatever the Store computes for Path.
type Named struct{ Path string }

func (t Named) Layout(store *UserTypeStore) (Layout, error) {
	if store == nil {
		return Layout{}, fmt.Errorf("types: cannot resolve named type %q without a store", t.Path)
	}
	return store.Layout(t.Path)
}
func (t Named) String() string { return t.Path }

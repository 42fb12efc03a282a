package types

import "fmt"

// StructMember is a single field of a Struct, with its byte offset
// filled in once the owning Struct's layout has been computed.
type StructMember struct {
	Name   string
	Type   Type
	Offset uint64
}

// Struct is a sequence of members laid out back to back, each aligned
// to its own requirement, like a C struct. At most its last member
// may be unsized (a trailing flexible array).
type Struct struct {
	Members []StructMember
	layout  *Layout
}

// UnionMember is a single alternative of a Union; unlike a struct
// member it carries no offset, since every alternative starts at 0.
type UnionMember struct {
	Name string
	Type Type
}

// Union overlays its members at offset 0, taking the size of the
// largest and the alignment of the strictest.
type Union struct {
	Members []UnionMember
	layout  *Layout
}

// EnumVariant is one named, implicitly or explicitly numbered case of
// an Enum.
type EnumVariant struct {
	Name  string
	Value uint64
}

// Enum is a tag-only sum type; its layout is just the smallest
// unsigned integer width that can hold every variant's value.
type Enum struct {
	Variants []EnumVariant
	layout   *Layout
}

// userType is the sum of the three kinds of name a Store can hold.
// processing is swapped in while a type's layout is being computed so
// a cycle back to the same path is caught instead of recursing
// forever.
type userType struct {
	kind       userTypeKind
	structDef  *Struct
	unionDef   *Union
	enumDef    *Enum
	processing bool
}

type userTypeKind int

const (
	kindStruct userTypeKind = iota
	kindUnion
	kindEnum
)

// UserTypeStore holds every user-defined (struct/union/enum) type in a
// program and memoizes their computed layouts, the way a linker's
// symbol table would cache section sizes.
type UserTypeStore struct {
	types map[string]*userType
}

// NewUserTypeStore returns an empty type store.
func NewUserTypeStore() *UserTypeStore {
	return &UserTypeStore{types: make(map[string]*userType)}
}

// DefineStruct registers a struct type under path. Calling it twice
// for the same path is a programmer error in whatever builds the
// store (ingest should have rejected the duplicate definition already).
func (s *UserTypeStore) DefineStruct(path string, members []StructMember) {
	s.define(path, &userType{kind: kindStruct, structDef: &Struct{Members: members}})
}

func (s *UserTypeStore) DefineUnion(path string, members []UnionMember) {
	s.define(path, &userType{kind: kindUnion, unionDef: &Union{Members: members}})
}

func (s *UserTypeStore) DefineEnum(path string, variants []EnumVariant) {
	s.define(path, &userType{kind: kindEnum, enumDef: &Enum{Variants: variants}})
}

func (s *UserTypeStore) define(path string, ty *userType) {
	if _, exists := s.types[path]; exists {
		panic(fmt.Sprintf("types: %q defined twice", path))
	}
	s.types[path] = ty
}

// Struct returns the struct definition at path, or false if path
// isn't a struct (or doesn't exist at all).
func (s *UserTypeStore) Struct(path string) (*Struct, bool) {
	ty, ok := s.types[path]
	if !ok || ty.kind != kindStruct {
		return nil, false
	}
	return ty.structDef, true
}

func (s *UserTypeStore) Union(path string) (*Union, bool) {
	ty, ok := s.types[path]
	if !ok || ty.kind != kindUnion {
		return nil, false
	}
	return ty.unionDef, true
}

func (s *UserTypeStore) Enum(path string) (*Enum, bool) {
	ty, ok := s.types[path]
	if !ok || ty.kind != kindEnum {
		return nil, false
	}
	return ty.enumDef, true
}

// Layout computes (and memoizes) the layout of the user type at path,
// recursing into member types through the same store. A type whose
// layout computation revisits itself before finishing - a struct
// containing itself by value, a union with itself as one of its own
// alternatives - is reported as a cycle rather than overflowing the
// stack.
func (s *UserTypeStore) Layout(path string) (Layout, error) {
	ty, ok := s.types[path]
	if !ok {
		return Layout{}, fmt.Errorf("types: type %q not defined", path)
	}
	if ty.processing {
		return Layout{}, fmt.Errorf("types: recursive type %q", path)
	}

	switch ty.kind {
	case kindStruct:
		return s.structLayout(path, ty)
	case kindUnion:
		return s.unionLayout(path, ty)
	case kindEnum:
		return s.enumLayout(path, ty)
	default:
		panic("types: unknown user type kind")
	}
}

func (s *UserTypeStore) structLayout(path string, ty *userType) (Layout, error) {
	if ty.structDef.layout != nil {
		return *ty.structDef.layout, nil
	}

	ty.processing = true
	defer func() { ty.processing = false }()

	var size, align uint64 = 0, 1
	sized := true

	for i := range ty.structDef.Members {
		m := &ty.structDef.Members[i]
		if !sized {
			return Layout{}, fmt.Errorf("types: %q can only have one trailing unsized member", path)
		}
		memberLayout, err := m.Type.Layout(s)
		if err != nil {
			return Layout{}, err
		}

		size = (size + memberLayout.Align - 1) &^ (memberLayout.Align - 1)
		m.Offset = size
		size += memberLayout.Size

		if memberLayout.Align > align {
			align = memberLayout.Align
		}
		sized = sized && memberLayout.Sized
	}

	layout := Layout{Size: size, Align: align, Sized: sized}
	if sized {
		layout = layout.alignedSize()
	}
	ty.structDef.layout = &layout
	return layout, nil
}

func (s *UserTypeStore) unionLayout(path string, ty *userType) (Layout, error) {
	if ty.unionDef.layout != nil {
		return *ty.unionDef.layout, nil
	}

	ty.processing = true
	defer func() { ty.processing = false }()

	layout := ZeroSize
	for _, m := range ty.unionDef.Members {
		memberLayout, err := m.Type.Layout(s)
		if err != nil {
			return Layout{}, err
		}
		layout = layout.Max(memberLayout)
	}

	ty.unionDef.layout = &layout
	return layout, nil
}

func (s *UserTypeStore) enumLayout(_ string, ty *userType) (Layout, error) {
	if ty.enumDef.layout != nil {
		return *ty.enumDef.layout, nil
	}
	layout := enumLayout(len(ty.enumDef.Variants))
	ty.enumDef.layout = &layout
	return layout, nil
}

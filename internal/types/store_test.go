package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructLayoutPacksAndAligns(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineStruct("Point", []StructMember{
		{Name: "x", Type: Int{Width: U8}},
		{Name: "y", Type: Int{Width: U32}},
		{Name: "z", Type: Int{Width: U8}},
	})

	layout, err := store.Layout("Point")
	require.NoError(t, err)

	sd, ok := store.Struct("Point")
	require.True(t, ok)
	assert.Equal(t, uint64(0), sd.Members[0].Offset)
	assert.Equal(t, uint64(4), sd.Members[1].Offset)
	assert.Equal(t, uint64(8), sd.Members[2].Offset)
	// size rounds up to the struct's own alignment (4).
	assert.Equal(t, New(12, 4), layout)
}

func TestStructLayoutMemoizes(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineStruct("Solo", []StructMember{{Name: "a", Type: Bool{}}})

	first, err := store.Layout("Solo")
	require.NoError(t, err)
	sd, _ := store.Struct("Solo")
	require.NotNil(t, sd.layout)

	second, err := store.Layout("Solo")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnionLayoutTakesLargestMember(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineUnion("Value", []UnionMember{
		{Name: "as_u8", Type: Int{Width: U8}},
		{Name: "as_u64", Type: Int{Width: U64}},
		{Name: "as_bool", Type: Bool{}},
	})

	layout, err := store.Layout("Value")
	require.NoError(t, err)
	assert.Equal(t, New(8, 8), layout)
}

func TestEnumLayoutPicksSmallestTagWidth(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineEnum("Small", []EnumVariant{{Name: "A", Value: 0}, {Name: "B", Value: 1}})
	store.DefineEnum("Empty", nil)

	small, err := store.Layout("Small")
	require.NoError(t, err)
	assert.Equal(t, New(1, 1), small)

	empty, err := store.Layout("Empty")
	require.NoError(t, err)
	assert.Equal(t, ZeroSize, empty)
}

func TestRecursiveStructIsRejected(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineStruct("Node", []StructMember{
		{Name: "next", Type: Named{Path: "Node"}},
	})

	_, err := store.Layout("Node")
	assert.ErrorContains(t, err, "recursive")
}

func TestUndefinedTypeErrors(t *testing.T) {
	store := NewUserTypeStore()
	_, err := store.Layout("Missing")
	assert.ErrorContains(t, err, "not defined")
}

func TestStructWithTrailingUnsizedMemberIsAllowed(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineStruct("FlexHeader", []StructMember{
		{Name: "len", Type: Int{Width: U32}},
		{Name: "data", Type: Str{}},
	})

	layout, err := store.Layout("FlexHeader")
	require.NoError(t, err)
	assert.False(t, layout.Sized)
	assert.Equal(t, uint64(4), layout.Size)
}

func TestStructWithNonTrailingUnsizedMemberErrors(t *testing.T) {
	store := NewUserTypeStore()
	store.DefineStruct("Bad", []StructMember{
		{Name: "data", Type: Str{}},
		{Name: "len", Type: Int{Width: U32}},
	})

	_, err := store.Layout("Bad")
	assert.ErrorContains(t, err, "trailing unsized")
}

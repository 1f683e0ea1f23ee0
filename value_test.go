package nbtgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIDs(t *testing.T) {
	cases := []struct {
		v  Value
		id TagID
	}{
		{Byte(1), TagByte},
		{Short(1), TagShort},
		{Int(1), TagInt},
		{Long(1), TagLong},
		{Float(1), TagFloat},
		{Double(1), TagDouble},
		{ByteArray{1}, TagByteArray},
		{String("x"), TagString},
		{List{elem: TagInt}, TagList},
		{NewCompound(), TagCompound},
		{IntArray{1}, TagIntArray},
		{LongArray{1}, TagLongArray},
	}
	for _, c := range cases {
		assert.Equal(t, c.id, c.v.ID())
	}
}

func TestNewListHomogeneity(t *testing.T) {
	l, err := NewList(TagShort, Short(1), Short(2))
	require.NoError(t, err)
	assert.Equal(t, TagShort, l.ElemType())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, Short(2), l.At(1))

	_, err = NewList(TagShort, Short(1), Int(2))
	assert.ErrorIs(t, err, ErrHeterogeneousList)

	_, err = NewList(TagID(42))
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestListAppend(t *testing.T) {
	l, err := NewList(TagByte)
	require.NoError(t, err)

	require.NoError(t, l.Append(Byte(1)))
	assert.ErrorIs(t, l.Append(Int(1)), ErrHeterogeneousList)
	assert.ErrorIs(t, l.Append(nil), ErrNilValue)
	assert.Equal(t, 1, l.Len())
}

func TestEmptyListKeepsElemType(t *testing.T) {
	l, err := NewList(TagDouble)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, TagDouble, l.ElemType())
}

func TestCompoundSetGet(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Set("a", Int(1)))
	require.NoError(t, c.Set("b", String("two")))

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}

func TestCompoundOverwriteKeepsPosition(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Set("a", Int(1)))
	require.NoError(t, c.Set("b", Int(2)))
	require.NoError(t, c.Set("a", Int(3)))

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, _ := c.Get("a")
	assert.Equal(t, Int(3), v)
	assert.Equal(t, 2, c.Len())
}

func TestCompoundRejectsNil(t *testing.T) {
	c := NewCompound()
	assert.ErrorIs(t, c.Set("a", nil), ErrNilValue)
}

func TestCompoundRevalidatesList(t *testing.T) {
	// A list assembled in-package with mismatched elements must still be
	// caught when it crosses the Set boundary.
	bad := List{elem: TagByte, items: []Value{Byte(1), Int(2)}}
	c := NewCompound()
	assert.ErrorIs(t, c.Set("bad", bad), ErrHeterogeneousList)
	assert.Equal(t, 0, c.Len())
}

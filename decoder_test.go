package nbtgo

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

// Malformed payloads and the error each must produce. Payload bytes start
// after the value's own type identifier, big-endian.
func TestDecodeNegativeVectors(t *testing.T) {
	cases := []struct {
		desc string
		id   TagID
		hex  string
		err  error
	}{
		{"list with negative length", TagList, "01ffffffff", ErrInvalidLength},
		{"byte array with negative length", TagByteArray, "ffffffff", ErrInvalidLength},
		{"int array with negative length", TagIntArray, "80000000", ErrInvalidLength},
		{"long array with negative length", TagLongArray, "ffffff9c", ErrInvalidLength},
		{"list with unknown element type", TagList, "0d00000001", ErrUnknownTag},
		{"unknown identifier", TagID(13), "", ErrUnknownTag},
		{"end tag as a value", TagEnd, "", ErrUnexpectedEnd},
		{"non-empty list of end tags", TagList, "0000000001", ErrUnexpectedEnd},
		{"compound entry with unknown identifier", TagCompound, "0d00016100", ErrUnknownTag},
		{"string with invalid utf-8", TagString, "0002fffe", ErrInvalidUTF8},
		{"compound name with invalid utf-8", TagCompound, "010002fffe64", ErrInvalidUTF8},
		{"truncated short", TagShort, "01", io.ErrUnexpectedEOF},
		{"truncated long", TagLong, "0102030405", io.ErrUnexpectedEOF},
		{"truncated byte array", TagByteArray, "0000000401", io.ErrUnexpectedEOF},
		{"truncated list elements", TagList, "0300000002 00000001", io.ErrUnexpectedEOF},
		{"unterminated compound", TagCompound, "0100016107", io.ErrUnexpectedEOF},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			data := decodeHex(t, stripSpaces(c.hex))
			r := NewReader(bytes.NewReader(data), BigEndian)
			_, err := ReadValue(r, c.id)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func TestDecodeEmptyListKeepsElemType(t *testing.T) {
	// Element type Double, length 0: no element bytes follow.
	data := decodeHex(t, "0600000000")
	r := NewReader(bytes.NewReader(data), BigEndian)

	v, err := ReadValue(r, TagList)
	require.NoError(t, err)

	l, ok := v.(List)
	require.True(t, ok)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, TagDouble, l.ElemType())
}

func TestDecodeDuplicateNamesLastWins(t *testing.T) {
	// Compound with "a"=Byte(1) then "a"=Byte(2).
	data := []byte{
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'a', 0x02,
		0x00,
	}
	r := NewReader(bytes.NewReader(data), BigEndian)

	v, err := ReadValue(r, TagCompound)
	require.NoError(t, err)

	c := v.(*Compound)
	assert.Equal(t, 1, c.Len())
	got, _ := c.Get("a")
	assert.Equal(t, Byte(2), got)
}

func TestDecodeNestingDepthLimit(t *testing.T) {
	// A compound nested past MaxNestingDepth: each level is an unnamed
	// compound entry (id, zero-length name).
	var buf bytes.Buffer
	for i := 0; i <= MaxNestingDepth; i++ {
		buf.Write([]byte{byte(TagCompound), 0x00, 0x00})
	}
	r := NewReader(&buf, BigEndian)

	_, err := ReadValue(r, TagCompound)
	assert.ErrorIs(t, err, ErrMaxNestingDepth)
}

func TestDecodeArrays(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x03, // length 3
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x01, 0x00,
	}
	r := NewReader(bytes.NewReader(data), BigEndian)
	v, err := ReadValue(r, TagIntArray)
	require.NoError(t, err)
	assert.Equal(t, IntArray{1, -1, 256}, v)

	data = []byte{0x00, 0x00, 0x00, 0x02, 0x7f, 0x80}
	r = NewReader(bytes.NewReader(data), BigEndian)
	v, err = ReadValue(r, TagByteArray)
	require.NoError(t, err)
	assert.Equal(t, ByteArray{127, -128}, v)
}

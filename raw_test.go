package nbtgo

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	for _, order := range []Endianness{BigEndian, LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, order)
			w.WriteInt8(-100)
			w.WriteInt16(-30000)
			w.WriteInt32(-2000000000)
			w.WriteInt64(-9000000000000000000)
			w.WriteFloat32(3.5)
			w.WriteFloat64(-0.000125)
			w.WriteString("héllo")
			require.NoError(t, w.Err())

			r := NewReader(&buf, order)

			i8, err := r.ReadInt8()
			require.NoError(t, err)
			assert.Equal(t, int8(-100), i8)

			i16, err := r.ReadInt16()
			require.NoError(t, err)
			assert.Equal(t, int16(-30000), i16)

			i32, err := r.ReadInt32()
			require.NoError(t, err)
			assert.Equal(t, int32(-2000000000), i32)

			i64, err := r.ReadInt64()
			require.NoError(t, err)
			assert.Equal(t, int64(-9000000000000000000), i64)

			f32, err := r.ReadFloat32()
			require.NoError(t, err)
			assert.Equal(t, float32(3.5), f32)

			f64, err := r.ReadFloat64()
			require.NoError(t, err)
			assert.Equal(t, -0.000125, f64)

			s, err := r.ReadString()
			require.NoError(t, err)
			assert.Equal(t, "héllo", s)
		})
	}
}

func TestWriterByteOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, BigEndian)
	w.WriteInt16(0x0102)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0x01, 0x02}, buf.Bytes())

	buf.Reset()
	w = NewWriter(&buf, LittleEndian)
	w.WriteInt16(0x0102)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0x02, 0x01}, buf.Bytes())
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}), BigEndian)
	_, err := r.ReadInt32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// A string whose length prefix promises more bytes than the stream has.
	r = NewReader(bytes.NewReader([]byte{0x00, 0x05, 'a', 'b'}), BigEndian)
	_, err = r.ReadString()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderInvalidUTF8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x02, 0xff, 0xfe}), BigEndian)
	_, err := r.ReadString()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestWriterStringTooLong(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, BigEndian)
	w.WriteString(strings.Repeat("a", 65536))
	assert.ErrorIs(t, w.Err(), ErrStringTooLong)
}

func TestWriterInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, BigEndian)
	w.WriteString(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, w.Err(), ErrInvalidUTF8)
}

// failWriter fails every write after the first n bytes.
type failWriter struct {
	n   int
	err error
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n -= len(p)
	return len(p), nil
}

func TestWriterStickyError(t *testing.T) {
	wantErr := errors.New("pipe broke")
	w := NewWriter(&failWriter{n: 4, err: wantErr}, BigEndian)

	w.WriteInt32(1)
	require.NoError(t, w.Err())

	// Everything after the first failure is a no-op; the first error wins.
	w.WriteInt32(2)
	w.WriteString("ignored")
	assert.ErrorIs(t, w.Err(), wantErr)
}

func TestReadHeader(t *testing.T) {
	data := []byte{0x0a, 0x00, 0x04, 't', 'e', 's', 't'}
	r := NewReader(bytes.NewReader(data), BigEndian)

	id, name, err := r.ReadHeader()
	require.NoError(t, err)
	assert.Equal(t, TagCompound, id)
	assert.Equal(t, "test", name)
}

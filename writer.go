package nbtgo

import (
	"io"
	"math"
	"unicode/utf8"
)

// A Writer encodes NBT primitives to a byte stream in a fixed byte order.
//
// Write methods do not return errors. The first failure is cached and every
// subsequent write becomes a no-op, so a full encode can run unconditionally
// and check Err once at the end.
type Writer struct {
	w       io.Writer
	order   Endianness
	err     error
	scratch [8]byte
}

func NewWriter(w io.Writer, order Endianness) *Writer {
	return &Writer{
		w:     w,
		order: order,
	}
}

// Err returns the first error encountered by the writer, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

// WriteTag writes a single type identifier byte.
func (w *Writer) WriteTag(t TagID) {
	w.scratch[0] = byte(t)
	w.write(w.scratch[:1])
}

// WriteEnd emits the terminator byte that closes a compound.
func (w *Writer) WriteEnd() {
	w.WriteTag(TagEnd)
}

func (w *Writer) WriteInt8(v int8) {
	w.scratch[0] = byte(v)
	w.write(w.scratch[:1])
}

func (w *Writer) WriteInt16(v int16) {
	w.order.order().PutUint16(w.scratch[:2], uint16(v))
	w.write(w.scratch[:2])
}

func (w *Writer) WriteInt32(v int32) {
	w.order.order().PutUint32(w.scratch[:4], uint32(v))
	w.write(w.scratch[:4])
}

func (w *Writer) WriteInt64(v int64) {
	w.order.order().PutUint64(w.scratch[:8], uint64(v))
	w.write(w.scratch[:8])
}

func (w *Writer) WriteFloat32(v float32) {
	w.order.order().PutUint32(w.scratch[:4], math.Float32bits(v))
	w.write(w.scratch[:4])
}

func (w *Writer) WriteFloat64(v float64) {
	w.order.order().PutUint64(w.scratch[:8], math.Float64bits(v))
	w.write(w.scratch[:8])
}

// WriteString writes a 16-bit unsigned length prefix followed by the UTF-8
// bytes of s.
func (w *Writer) WriteString(s string) {
	if len(s) > math.MaxUint16 {
		w.fail(ErrStringTooLong)
		return
	}
	if !utf8.ValidString(s) {
		w.fail(ErrInvalidUTF8)
		return
	}
	w.order.order().PutUint16(w.scratch[:2], uint16(len(s)))
	w.write(w.scratch[:2])
	w.write([]byte(s))
}

// WriteBytes writes raw bytes with no prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.write(b)
}

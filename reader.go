package nbtgo

import (
	"bufio"
	"io"
	"math"
	"unicode/utf8"
)

// A Reader decodes NBT primitives from a byte stream in a fixed byte order.
// Any failure aborts the read in progress; no partial value is returned.
type Reader struct {
	r       *bufio.Reader
	order   Endianness
	scratch [8]byte
}

func NewReader(r io.Reader, order Endianness) *Reader {
	return &Reader{
		r:     bufio.NewReader(r),
		order: order,
	}
}

// A short read anywhere inside a value is a format error, not a normal EOF.
func eofToUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (r *Reader) read(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, eofToUnexpected(err)
	}
	return buf, nil
}

// ReadTag reads a single type identifier byte.
func (r *Reader) ReadTag() (TagID, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, eofToUnexpected(err)
	}
	return TagID(b), nil
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, eofToUnexpected(err)
	}
	return int8(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	buf, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return int16(r.order.order().Uint16(buf)), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	buf, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return int32(r.order.order().Uint32(buf)), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	buf, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return int64(r.order.order().Uint64(buf)), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	buf, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(r.order.order().Uint32(buf)), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	buf, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.order().Uint64(buf)), nil
}

// ReadString reads a 16-bit unsigned length prefix followed by that many
// bytes of UTF-8 text.
func (r *Reader) ReadString() (string, error) {
	prefix, err := r.read(2)
	if err != nil {
		return "", err
	}
	length := int(r.order.order().Uint16(prefix))

	buf := make([]byte, length)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", eofToUnexpected(err)
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, eofToUnexpected(err)
	}
	return buf, nil
}

// ReadHeader reads the type identifier and name that open a document.
// It is used only for the document's own name at the start of a stream;
// entry names inside a compound are read by the value decoder.
func (r *Reader) ReadHeader() (TagID, string, error) {
	id, err := r.ReadTag()
	if err != nil {
		return 0, "", err
	}
	name, err := r.ReadString()
	if err != nil {
		return 0, "", err
	}
	return id, name, nil
}

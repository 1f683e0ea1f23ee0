package nbtgo

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// A Document is a complete NBT object: a top-level compound with a name of
// its own (possibly empty). It is built up through Insert calls or
// materialized whole by Read; a failed Read never exposes a partial
// document.
type Document struct {
	name string
	root *Compound
}

// New returns an empty document with an empty name.
func New() *Document {
	return &Document{root: NewCompound()}
}

// Named returns an empty document with the given name.
func Named(name string) *Document {
	return &Document{name: name, root: NewCompound()}
}

func (d *Document) Name() string { return d.name }

func (d *Document) Len() int { return d.root.Len() }

// Keys returns the root entry names in insertion order.
func (d *Document) Keys() []string { return d.root.Keys() }

// Insert stores value under name in the root compound, overwriting any
// prior entry of the same name. Lists are re-validated for homogeneity on
// every insert; a heterogeneous list is rejected and the document is left
// unmodified.
func (d *Document) Insert(name string, value Value) error {
	return d.root.Set(name, value)
}

// Get returns the value stored under name in the root compound.
func (d *Document) Get(name string) (Value, bool) {
	v, ok := d.root.Get(name)
	return v, ok
}

// Read decodes a complete document from src. The stream must open with a
// compound identifier; anything else fails with ErrNoRootCompound.
func Read(src io.Reader, order Endianness) (*Document, error) {
	r := NewReader(src, order)
	id, name, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}
	if id != TagCompound {
		return nil, ErrNoRootCompound
	}
	v, err := ReadValue(r, TagCompound)
	if err != nil {
		return nil, err
	}
	root, ok := v.(*Compound)
	if !ok {
		return nil, ErrNoRootCompound
	}
	return &Document{name: name, root: root}, nil
}

// ReadGzip decodes a document from a gzip-compressed stream.
func ReadGzip(src io.Reader, order Endianness) (*Document, error) {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Read(zr, order)
}

// ReadZlib decodes a document from a zlib-compressed stream.
func ReadZlib(src io.Reader, order Endianness) (*Document, error) {
	zr, err := zlib.NewReader(src)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Read(zr, order)
}

// Write encodes the document to dst: the compound identifier, the
// document's name, each root entry in insertion order, then the terminator.
func (d *Document) Write(dst io.Writer, order Endianness) error {
	w := NewWriter(dst, order)
	w.WriteTag(TagCompound)
	w.WriteString(d.name)
	writeValue(w, d.root)
	return w.Err()
}

// WriteGzip encodes the document through a gzip compressor.
func (d *Document) WriteGzip(dst io.Writer, order Endianness) error {
	zw := gzip.NewWriter(dst)
	if err := d.Write(zw, order); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// WriteZlib encodes the document through a zlib compressor.
func (d *Document) WriteZlib(dst io.Writer, order Endianness) error {
	zw := zlib.NewWriter(dst)
	if err := d.Write(zw, order); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Package nbtgo implements the Named Binary Tag format: a self-describing
// binary serialization of named, typed, recursively nested values. A
// Document is the named top-level compound; it reads from an io.Reader and
// writes to an io.Writer in either big- or little-endian byte order, with
// optional gzip or zlib compression layered transparently around the raw
// stream.
package nbtgo

import "errors"

// Format errors, detected eagerly during decode.
var (
	ErrUnknownTag      = errors.New("nbt: unknown type identifier")
	ErrInvalidLength   = errors.New("nbt: negative array or list length")
	ErrInvalidUTF8     = errors.New("nbt: string with invalid UTF-8 data")
	ErrNoRootCompound  = errors.New("nbt: top-level value is not a compound")
	ErrUnexpectedEnd   = errors.New("nbt: end tag where a value was expected")
	ErrMaxNestingDepth = errors.New("nbt: max nesting depth exceeded")
)

// Construction errors, detected when values are built or inserted.
var (
	ErrHeterogeneousList = errors.New("nbt: list elements have differing type identifiers")
	ErrNilValue          = errors.New("nbt: nil value")
	ErrStringTooLong     = errors.New("nbt: string exceeds 65535 bytes")
)

// Package interop bridges materialized NBT documents to and from other
// serialization formats. It works purely over the public Value API: values
// are converted to plain Go data with ToNative/FromNative, and a Codec
// carries that data across the format boundary.
package interop

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes and decodes the generic form of a document.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the codec identifier used for diagnostics.
	Name() string
}

// JSON is the default codec using standard library encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string { return "json" }

// CBOR is a codec using Concise Binary Object Representation.
type CBOR struct{}

func (CBOR) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

func (CBOR) Name() string { return "cbor" }

// MsgPack is a codec using MessagePack encoding.
type MsgPack struct{}

func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (MsgPack) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func (MsgPack) Name() string { return "msgpack" }

// Default is the default codec instance.
var Default Codec = JSON{}

package nbtgo

import "encoding/binary"

// Endianness selects the multi-byte integer and float encoding for a whole
// read or write session. It is fixed when a Reader or Writer is created,
// never per field.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

func (e Endianness) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

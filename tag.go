package nbtgo

import "fmt"

// TagID is the one-byte type identifier prefixed to every NBT value on the
// wire. The set of identifiers is closed: decoders must reject anything
// outside TagEnd..TagLongArray.
type TagID uint8

const (
	TagEnd       TagID = 0
	TagByte      TagID = 1
	TagShort     TagID = 2
	TagInt       TagID = 3
	TagLong      TagID = 4
	TagFloat     TagID = 5
	TagDouble    TagID = 6
	TagByteArray TagID = 7
	TagString    TagID = 8
	TagList      TagID = 9
	TagCompound  TagID = 10
	TagIntArray  TagID = 11
	TagLongArray TagID = 12
)

var tagNames = []string{
	"TAG_End",
	"TAG_Byte",
	"TAG_Short",
	"TAG_Int",
	"TAG_Long",
	"TAG_Float",
	"TAG_Double",
	"TAG_Byte_Array",
	"TAG_String",
	"TAG_List",
	"TAG_Compound",
	"TAG_Int_Array",
	"TAG_Long_Array",
}

func (t TagID) String() string {
	if !t.valid() {
		return fmt.Sprintf("TAG_Invalid(0x%02x)", uint8(t))
	}
	return tagNames[t]
}

func (t TagID) valid() bool {
	return t <= TagLongArray
}

package interop

import (
	"fmt"
	"sort"

	nbt "github.com/jfarrell/nbtgo"
)

// ToNative converts an NBT value tree into plain Go values: primitives stay
// primitives, arrays become typed slices, lists become []any, compounds
// become map[string]any.
func ToNative(v nbt.Value) any {
	switch v := v.(type) {
	case nbt.Byte:
		return int8(v)
	case nbt.Short:
		return int16(v)
	case nbt.Int:
		return int32(v)
	case nbt.Long:
		return int64(v)
	case nbt.Float:
		return float32(v)
	case nbt.Double:
		return float64(v)
	case nbt.ByteArray:
		return []int8(v)
	case nbt.String:
		return string(v)
	case nbt.List:
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, ToNative(v.At(i)))
		}
		return out
	case *nbt.Compound:
		out := make(map[string]any, v.Len())
		for _, name := range v.Keys() {
			entry, _ := v.Get(name)
			out[name] = ToNative(entry)
		}
		return out
	case nbt.IntArray:
		return []int32(v)
	case nbt.LongArray:
		return []int64(v)
	}
	return nil
}

// FromNative builds an NBT value from plain Go data, such as the result of
// parsing JSON. Numbers map by Go type: every float64 becomes a Double and
// every int/int64 a Long; callers needing narrower tags build values
// directly. Bools become Byte 0/1. A non-empty []any list takes its element
// type from its first element; mixed element types fail.
func FromNative(v any) (nbt.Value, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return nbt.Byte(1), nil
		}
		return nbt.Byte(0), nil
	case int8:
		return nbt.Byte(v), nil
	case int16:
		return nbt.Short(v), nil
	case int32:
		return nbt.Int(v), nil
	case int:
		return nbt.Long(v), nil
	case int64:
		return nbt.Long(v), nil
	case float32:
		return nbt.Float(v), nil
	case float64:
		return nbt.Double(v), nil
	case string:
		return nbt.String(v), nil
	case []int8:
		return nbt.ByteArray(v), nil
	case []byte:
		arr := make(nbt.ByteArray, len(v))
		for i, b := range v {
			arr[i] = int8(b)
		}
		return arr, nil
	case []int32:
		return nbt.IntArray(v), nil
	case []int64:
		return nbt.LongArray(v), nil

	case []any:
		if len(v) == 0 {
			return nbt.NewList(nbt.TagEnd)
		}
		items := make([]nbt.Value, 0, len(v))
		for _, e := range v {
			item, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return nbt.NewList(items[0].ID(), items...)

	case map[string]any:
		c := nbt.NewCompound()
		for _, k := range sortedKeys(v) {
			entry, err := FromNative(v[k])
			if err != nil {
				return nil, err
			}
			if err := c.Set(k, entry); err != nil {
				return nil, err
			}
		}
		return c, nil

	case nbt.Value:
		return v, nil
	}
	return nil, fmt.Errorf("interop: unsupported type %T", v)
}

// Native returns the generic form of a document's root entries.
func Native(d *nbt.Document) map[string]any {
	out := make(map[string]any, d.Len())
	for _, name := range d.Keys() {
		v, _ := d.Get(name)
		out[name] = ToNative(v)
	}
	return out
}

// EncodeDocument serializes the generic form of d with the given codec.
// The document's own name has no generic representation and is dropped.
func EncodeDocument(c Codec, d *nbt.Document) ([]byte, error) {
	return c.Marshal(Native(d))
}

// DecodeDocument deserializes data with the given codec and materializes a
// document named name from it. Keys are inserted in sorted order so the
// result is deterministic.
func DecodeDocument(c Codec, data []byte, name string) (*nbt.Document, error) {
	var m map[string]any
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	doc := nbt.Named(name)
	for _, k := range sortedKeys(m) {
		v, err := FromNative(m[k])
		if err != nil {
			return nil, err
		}
		if err := doc.Insert(k, v); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

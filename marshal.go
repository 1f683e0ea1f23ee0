package nbtgo

import (
	"bytes"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Marshal encodes v as a complete NBT document with the given top-level
// name. v must convert to a compound (a struct, a map with string keys, or
// a *Compound).
func Marshal(v any, name string, order Endianness) ([]byte, error) {
	val, err := ToValue(v)
	if err != nil {
		return nil, err
	}
	root, ok := val.(*Compound)
	if !ok {
		return nil, ErrNoRootCompound
	}
	doc := &Document{name: name, root: root}

	var buf bytes.Buffer
	if err := doc.Write(&buf, order); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// An UnsupportedTypeError is returned by Marshal and ToValue when
// attempting to encode a Go type with no NBT representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "nbt: unsupported type: " + e.Type.String()
}

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

// ToValue converts a Go value into its NBT representation.
//
// Signed integers map to Byte/Short/Int/Long by width (int and int64 both
// map to Long), floats to Float/Double, bool to Byte 0/1, strings to
// String. []int8 and []byte map to ByteArray, []int32 to IntArray, []int64
// to LongArray, other slices and arrays to List. Structs and maps with
// string keys map to Compound; map entries are sorted by key so the output
// is deterministic. Struct fields honor an `nbt:"name,omitempty"` tag.
// Values that already implement Value pass through unchanged.
func ToValue(v any) (Value, error) {
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return nil, ErrNilValue
	}
	if rv.Type().Implements(valueType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, ErrNilValue
		}
		val := rv.Interface().(Value)
		if val == nil {
			return nil, ErrNilValue
		}
		if l, ok := val.(List); ok {
			if err := l.validate(); err != nil {
				return nil, err
			}
		}
		return val, nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return Byte(1), nil
		}
		return Byte(0), nil

	case reflect.Int8:
		return Byte(rv.Int()), nil
	case reflect.Int16:
		return Short(rv.Int()), nil
	case reflect.Int32:
		return Int(rv.Int()), nil
	case reflect.Int, reflect.Int64:
		return Long(rv.Int()), nil

	// NBT has no unsigned types; only uint8 has a lossless-width home.
	case reflect.Uint8:
		return Byte(rv.Uint()), nil

	case reflect.Float32:
		return Float(rv.Float()), nil
	case reflect.Float64:
		return Double(rv.Float()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, ErrNilValue
		}
		return reflectValue(rv.Elem())

	case reflect.Slice, reflect.Array:
		return reflectSequence(rv)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{rv.Type()}
		}
		c := NewCompound()
		keys := make([]reflect.Value, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key())
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			elem, err := reflectValue(rv.MapIndex(k))
			if err != nil {
				return nil, err
			}
			if err := c.Set(k.String(), elem); err != nil {
				return nil, err
			}
		}
		return c, nil

	case reflect.Struct:
		c := NewCompound()
		for _, f := range cachedFields(rv.Type()) {
			fv := rv.Field(f.index)
			if f.omitEmpty && isEmptyValue(fv) {
				continue
			}
			elem, err := reflectValue(fv)
			if err != nil {
				return nil, err
			}
			if err := c.Set(f.name, elem); err != nil {
				return nil, err
			}
		}
		return c, nil

	default:
		return nil, &UnsupportedTypeError{rv.Type()}
	}
}

func reflectSequence(rv reflect.Value) (Value, error) {
	switch rv.Type().Elem().Kind() {
	case reflect.Int8:
		arr := make(ByteArray, rv.Len())
		for i := range arr {
			arr[i] = int8(rv.Index(i).Int())
		}
		return arr, nil

	case reflect.Uint8:
		arr := make(ByteArray, rv.Len())
		for i := range arr {
			arr[i] = int8(rv.Index(i).Uint())
		}
		return arr, nil

	case reflect.Int32:
		arr := make(IntArray, rv.Len())
		for i := range arr {
			arr[i] = int32(rv.Index(i).Int())
		}
		return arr, nil

	case reflect.Int64:
		arr := make(LongArray, rv.Len())
		for i := range arr {
			arr[i] = rv.Index(i).Int()
		}
		return arr, nil
	}

	elem, ok := tagForType(rv.Type().Elem())
	if !ok {
		return nil, &UnsupportedTypeError{rv.Type()}
	}
	items := make([]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := reflectValue(rv.Index(i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	// An interface element type is only known per value; infer the list's
	// identifier from the first converted element.
	if elem == TagEnd && len(items) > 0 {
		elem = items[0].ID()
	}
	return NewList(elem, items...)
}

// tagForType maps a Go element type to the identifier its values encode
// with, so an empty slice still yields a list with a concrete element type.
func tagForType(t reflect.Type) (TagID, bool) {
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return TagByte, true
	case reflect.Int16:
		return TagShort, true
	case reflect.Int32:
		return TagInt, true
	case reflect.Int, reflect.Int64:
		return TagLong, true
	case reflect.Float32:
		return TagFloat, true
	case reflect.Float64:
		return TagDouble, true
	case reflect.String:
		return TagString, true
	case reflect.Map, reflect.Struct:
		return TagCompound, true
	case reflect.Slice, reflect.Array:
		switch t.Elem().Kind() {
		case reflect.Int8, reflect.Uint8:
			return TagByteArray, true
		case reflect.Int32:
			return TagIntArray, true
		case reflect.Int64:
			return TagLongArray, true
		}
		return TagList, true
	case reflect.Pointer:
		return tagForType(t.Elem())
	case reflect.Interface:
		// Element type only known per value; an empty []any list falls
		// back to the End identifier, which round-trips as-is.
		return TagEnd, true
	}
	return 0, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// A field describes one struct field the codec recognizes.
type field struct {
	name      string
	index     int
	omitEmpty bool
}

var fieldCache sync.Map // map[reflect.Type][]field

// cachedFields is like typeFields but uses a cache to avoid repeated work.
func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.([]field)
}

// typeFields returns the exported fields of t in declaration order,
// honoring the `nbt` struct tag. Anonymous fields are treated as regular
// named fields, not promoted.
func typeFields(t reflect.Type) []field {
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("nbt")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{
			name:      name,
			index:     i,
			omitEmpty: strings.Contains(","+opts+",", ",omitempty,"),
		})
	}
	return fields
}

package nbtgo

import (
	"bytes"
	"reflect"
	"strings"
)

// Unmarshal decodes a complete NBT document from data and stores its root
// entries into the Go value pointed to by v.
func Unmarshal(data []byte, v any, order Endianness) error {
	doc, err := Read(bytes.NewReader(data), order)
	if err != nil {
		return err
	}
	return FromValue(doc.root, v)
}

// An InvalidUnmarshalError describes an invalid argument passed to
// Unmarshal or FromValue. (The destination must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "nbt: Unmarshal(nil)"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "nbt: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "nbt: Unmarshal(nil " + e.Type.String() + ")"
}

// An UnmarshalTypeError describes an NBT value that was not appropriate
// for a value of a specific Go type.
type UnmarshalTypeError struct {
	Tag    TagID
	GoType reflect.Type
}

func (e *UnmarshalTypeError) Error() string {
	return "nbt: cannot unmarshal " + e.Tag.String() + " into Go value of type " + e.GoType.String()
}

// FromValue stores the NBT value into the Go value pointed to by dst.
func FromValue(val Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{reflect.TypeOf(dst)}
	}
	return assign(val, rv.Elem())
}

func assign(val Value, rv reflect.Value) error {
	// An interface destination takes the Value as-is.
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		rv.Set(reflect.ValueOf(val))
		return nil
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return assign(val, rv.Elem())
	}
	if reflect.TypeOf(val).AssignableTo(rv.Type()) {
		rv.Set(reflect.ValueOf(val))
		return nil
	}

	switch val := val.(type) {
	case Byte:
		return assignInt(int64(val), TagByte, rv)
	case Short:
		return assignInt(int64(val), TagShort, rv)
	case Int:
		return assignInt(int64(val), TagInt, rv)
	case Long:
		return assignInt(int64(val), TagLong, rv)

	case Float:
		return assignFloat(float64(val), TagFloat, rv)
	case Double:
		return assignFloat(float64(val), TagDouble, rv)

	case String:
		if rv.Kind() != reflect.String {
			return &UnmarshalTypeError{TagString, rv.Type()}
		}
		rv.SetString(string(val))
		return nil

	case ByteArray:
		switch {
		case rv.Type() == reflect.TypeOf([]int8(nil)):
			rv.Set(reflect.ValueOf([]int8(val)))
		case rv.Type() == reflect.TypeOf([]byte(nil)):
			buf := make([]byte, len(val))
			for i, b := range val {
				buf[i] = byte(b)
			}
			rv.Set(reflect.ValueOf(buf))
		default:
			return &UnmarshalTypeError{TagByteArray, rv.Type()}
		}
		return nil

	case IntArray:
		if rv.Type() != reflect.TypeOf([]int32(nil)) {
			return &UnmarshalTypeError{TagIntArray, rv.Type()}
		}
		rv.Set(reflect.ValueOf([]int32(val)))
		return nil

	case LongArray:
		if rv.Type() != reflect.TypeOf([]int64(nil)) {
			return &UnmarshalTypeError{TagLongArray, rv.Type()}
		}
		rv.Set(reflect.ValueOf([]int64(val)))
		return nil

	case List:
		if rv.Kind() != reflect.Slice {
			return &UnmarshalTypeError{TagList, rv.Type()}
		}
		out := reflect.MakeSlice(rv.Type(), val.Len(), val.Len())
		for i := 0; i < val.Len(); i++ {
			if err := assign(val.At(i), out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case *Compound:
		return assignCompound(val, rv)
	}

	return &UnmarshalTypeError{val.ID(), rv.Type()}
}

func assignInt(n int64, tag TagID, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		rv.SetBool(n != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(n) {
			return &UnmarshalTypeError{tag, rv.Type()}
		}
		rv.SetInt(n)
	case reflect.Uint8:
		rv.SetUint(uint64(uint8(n)))
	default:
		return &UnmarshalTypeError{tag, rv.Type()}
	}
	return nil
}

func assignFloat(f float64, tag TagID, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
		return nil
	}
	return &UnmarshalTypeError{tag, rv.Type()}
}

func assignCompound(c *Compound, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Map:
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return &UnmarshalTypeError{TagCompound, t}
		}
		if rv.IsNil() {
			rv.Set(reflect.MakeMapWithSize(t, c.Len()))
		}
		for _, name := range c.keys {
			elem := reflect.New(t.Elem()).Elem()
			if err := assign(c.m[name], elem); err != nil {
				return err
			}
			rv.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), elem)
		}
		return nil

	case reflect.Struct:
		fields := cachedFields(rv.Type())
		for _, name := range c.keys {
			f, ok := lookupField(fields, name)
			if !ok {
				// Unknown entries are skipped, matching the usual Go
				// codec behavior.
				continue
			}
			if err := assign(c.m[name], rv.Field(f.index)); err != nil {
				return err
			}
		}
		return nil
	}
	return &UnmarshalTypeError{TagCompound, rv.Type()}
}

// lookupField resolves an entry name to a struct field: exact match first,
// then a case-insensitive one.
func lookupField(fields []field, name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.name, name) {
			return f, true
		}
	}
	return field{}, false
}

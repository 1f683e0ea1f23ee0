package nbtgo

// Maximum that compounds/lists can be nested in this library.
const MaxNestingDepth = 10000

// ReadValue decodes a single value whose type identifier has already been
// consumed from the stream. It reads exactly the bytes that identifier's
// layout defines.
func ReadValue(r *Reader, id TagID) (Value, error) {
	return readValue(r, id, 0)
}

func readValue(r *Reader, id TagID, depth int) (Value, error) {
	if depth >= MaxNestingDepth {
		return nil, ErrMaxNestingDepth
	}

	switch id {
	case TagEnd:
		// The terminator is consumed by the compound loop below; reaching
		// here means a caller asked for an End-typed value.
		return nil, ErrUnexpectedEnd

	case TagByte:
		v, err := r.ReadInt8()
		if err != nil {
			return nil, err
		}
		return Byte(v), nil

	case TagShort:
		v, err := r.ReadInt16()
		if err != nil {
			return nil, err
		}
		return Short(v), nil

	case TagInt:
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		return Int(v), nil

	case TagLong:
		v, err := r.ReadInt64()
		if err != nil {
			return nil, err
		}
		return Long(v), nil

	case TagFloat:
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return Float(v), nil

	case TagDouble:
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return Double(v), nil

	case TagByteArray:
		length, err := readLength(r)
		if err != nil {
			return nil, err
		}
		buf, err := r.ReadBytes(length)
		if err != nil {
			return nil, err
		}
		arr := make(ByteArray, length)
		for i, b := range buf {
			arr[i] = int8(b)
		}
		return arr, nil

	case TagString:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case TagList:
		return readList(r, depth)

	case TagCompound:
		return readCompound(r, depth)

	case TagIntArray:
		length, err := readLength(r)
		if err != nil {
			return nil, err
		}
		arr := make(IntArray, length)
		for i := range arr {
			v, err := r.ReadInt32()
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil

	case TagLongArray:
		length, err := readLength(r)
		if err != nil {
			return nil, err
		}
		arr := make(LongArray, length)
		for i := range arr {
			v, err := r.ReadInt64()
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil

	default:
		return nil, ErrUnknownTag
	}
}

// readLength reads a 32-bit signed array/list length and rejects negatives.
func readLength(r *Reader) (int, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, ErrInvalidLength
	}
	return int(length), nil
}

func readList(r *Reader, depth int) (Value, error) {
	elem, err := r.ReadTag()
	if err != nil {
		return nil, err
	}
	if !elem.valid() {
		return nil, ErrUnknownTag
	}
	length, err := readLength(r)
	if err != nil {
		return nil, err
	}

	// An empty list reads no element bytes and keeps its declared element
	// type, whatever it is.
	l := List{elem: elem}
	if length == 0 {
		return l, nil
	}

	l.items = make([]Value, 0, length)
	for i := 0; i < length; i++ {
		v, err := readValue(r, elem, depth+1)
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, v)
	}
	return l, nil
}

func readCompound(r *Reader, depth int) (Value, error) {
	c := NewCompound()
	for {
		id, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		if id == TagEnd {
			return c, nil
		}
		if !id.valid() {
			return nil, ErrUnknownTag
		}

		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := readValue(r, id, depth+1)
		if err != nil {
			return nil, err
		}

		// Last write wins on duplicate names.
		if err := c.Set(name, v); err != nil {
			return nil, err
		}
	}
}

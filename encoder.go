package nbtgo

// WriteValue encodes a single value's payload. The caller is responsible
// for having written the value's type identifier (and name, inside a
// compound) first; list elements are written bare because their identifier
// is implied by the list's declared element type.
func WriteValue(w *Writer, v Value) error {
	writeValue(w, v)
	return w.Err()
}

func writeValue(w *Writer, v Value) {
	switch v := v.(type) {
	case Byte:
		w.WriteInt8(int8(v))

	case Short:
		w.WriteInt16(int16(v))

	case Int:
		w.WriteInt32(int32(v))

	case Long:
		w.WriteInt64(int64(v))

	case Float:
		w.WriteFloat32(float32(v))

	case Double:
		w.WriteFloat64(float64(v))

	case ByteArray:
		w.WriteInt32(int32(len(v)))
		buf := make([]byte, len(v))
		for i, b := range v {
			buf[i] = byte(b)
		}
		w.WriteBytes(buf)

	case String:
		w.WriteString(string(v))

	case List:
		// Homogeneity was established when the list was built or inserted
		// (Invariant: all elements report the declared type identifier);
		// elements are trusted here and written without per-element tags.
		w.WriteTag(v.elem)
		w.WriteInt32(int32(len(v.items)))
		for _, it := range v.items {
			writeValue(w, it)
		}

	case *Compound:
		for _, name := range v.keys {
			entry := v.m[name]
			w.WriteTag(entry.ID())
			w.WriteString(name)
			writeValue(w, entry)
		}
		w.WriteEnd()

	case IntArray:
		w.WriteInt32(int32(len(v)))
		for _, n := range v {
			w.WriteInt32(n)
		}

	case LongArray:
		w.WriteInt32(int32(len(v)))
		for _, n := range v {
			w.WriteInt64(n)
		}

	default:
		w.fail(ErrUnknownTag)
	}
}

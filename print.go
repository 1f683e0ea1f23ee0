package nbtgo

import (
	"fmt"
	"strings"
)

// String renders the document as a readable tag tree:
//
//	TAG_Compound("hello world"): 1 entry
//	{
//	  TAG_String("name"): "Bananrama"
//	}
func (d *Document) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TAG_Compound(%q): %s\n{\n", d.name, entryCount(d.root.Len()))
	for _, name := range d.root.keys {
		v := d.root.m[name]
		fmt.Fprintf(&sb, "  %s(%q): ", v.ID(), name)
		printValue(&sb, v, 1)
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}

func entryCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func printValue(sb *strings.Builder, v Value, depth int) {
	switch v := v.(type) {
	case Byte:
		fmt.Fprintf(sb, "%d", int8(v))
	case Short:
		fmt.Fprintf(sb, "%d", int16(v))
	case Int:
		fmt.Fprintf(sb, "%d", int32(v))
	case Long:
		fmt.Fprintf(sb, "%d", int64(v))
	case Float:
		fmt.Fprintf(sb, "%v", float32(v))
	case Double:
		fmt.Fprintf(sb, "%v", float64(v))
	case String:
		fmt.Fprintf(sb, "%q", string(v))
	case ByteArray:
		fmt.Fprintf(sb, "[%d bytes]", len(v))
	case IntArray:
		fmt.Fprintf(sb, "[%d ints]", len(v))
	case LongArray:
		fmt.Fprintf(sb, "[%d longs]", len(v))

	case List:
		fmt.Fprintf(sb, "%s of type %s\n", entryCount(v.Len()), v.elem)
		indent(sb, depth)
		sb.WriteString("{\n")
		for _, it := range v.items {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "%s: ", it.ID())
			printValue(sb, it, depth+1)
			sb.WriteByte('\n')
		}
		indent(sb, depth)
		sb.WriteString("}")

	case *Compound:
		fmt.Fprintf(sb, "%s\n", entryCount(v.Len()))
		indent(sb, depth)
		sb.WriteString("{\n")
		for _, name := range v.keys {
			entry := v.m[name]
			indent(sb, depth+1)
			fmt.Fprintf(sb, "%s(%q): ", entry.ID(), name)
			printValue(sb, entry, depth+1)
			sb.WriteByte('\n')
		}
		indent(sb, depth)
		sb.WriteString("}")
	}
}

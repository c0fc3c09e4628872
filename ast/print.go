package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode transforms a value into its text representation
func Encode(v *Value) string {
	var b strings.Builder
	encodeValue(&b, v)
	return b.String()
}

func encodeValue(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("()")
		return
	}
	switch v.t {
	case ValueTypeInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case ValueTypeFloat:
		b.WriteString(fmt.Sprintf("%f", v.Float64()))
	case ValueTypeString:
		b.WriteString(`"` + v.Text() + `"`)
	case ValueTypeSymbol:
		b.WriteString(v.Text())
	case ValueTypeProcedure:
		b.WriteString(fmt.Sprintf("<builtin %s>", v.Procedure().ProcedureName()))
	case ValueTypeClosure:
		b.WriteString("<lambda>")
	case ValueTypePair:
		b.WriteString("(")
		encodeTree(b, v)
	default:
		panic("unknown value type")
	}
}

func encodeTree(b *strings.Builder, v *Value) {
	for {
		encodeValue(b, v.Head())

		tail := v.Tail()
		switch {
		case tail == nil || tail == Nil:
			b.WriteString(")")
			return
		case tail.IsPair() && tail.Tail() == nil:
			// a one element list, (1 (2)) and not (1 2)
			b.WriteString(" ")
			encodeValue(b, tail)
			b.WriteString(")")
			return
		case tail.IsPair():
			b.WriteString(" ")
			v = tail
		default:
			b.WriteString(" ")
			encodeValue(b, tail)
			b.WriteString(")")
			return
		}
	}
}

// Dump returns a human-readable, indented representation of a value tree
func Dump(v *Value) string {
	var b strings.Builder
	dumpLevel(&b, v, 0)
	return b.String()
}

func dumpLevel(b *strings.Builder, v *Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(b, "%s:nil\n", indent)
		return
	}
	if v.IsPair() {
		fmt.Fprintf(b, "%s(%s)\n", indent, v.Type())
		dumpLevel(b, v.Head(), level+1)
		dumpLevel(b, v.Tail(), level+1)
		return
	}
	fmt.Fprintf(b, "%s(%s): %s\n", indent, v.Type(), Encode(v))
}

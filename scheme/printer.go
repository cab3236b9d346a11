package scheme

import (
	"strconv"
	"strings"
)

// printValue renders v in the dialect's canonical textual form.
func printValue(v Value) string {
	var b strings.Builder
	buildString(&b, v)
	return b.String()
}

func buildString(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindEmpty:
		b.WriteString("()")
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindBool:
		if v.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindSymbol:
		b.WriteString(v.Symbol)
	case KindCallable:
		b.WriteString("#<callable ")
		b.WriteString(v.Call.Name())
		b.WriteString(">")
	case KindPair:
		buildPair(b, v)
	}
}

// buildPair prints "(" followed by space-separated cars, walking down
// cdrs, closing with ")" for a proper-list tail or ". t)" for an
// improper one.
func buildPair(b *strings.Builder, v Value) {
	b.WriteByte('(')
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		buildString(b, v.Pair.First)
		tail := v.Pair.Second
		switch tail.Kind {
		case KindEmpty:
			b.WriteByte(')')
			return
		case KindPair:
			v = tail
		default:
			b.WriteString(" . ")
			buildString(b, tail)
			b.WriteByte(')')
			return
		}
	}
}

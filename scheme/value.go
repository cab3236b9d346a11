// Package scheme implements a tree-walking interpreter for a small
// Lisp/Scheme dialect: integers, booleans, symbols, pairs, lambdas, and a
// fixed primitive library, evaluated against a persistent environment.
package scheme

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindBool
	KindSymbol
	KindPair
	KindCallable
)

// Value is a tagged union over every runtime value the dialect can
// produce: the empty list, an integer, a boolean, a symbol, a pair, or a
// callable. Exactly one of the typed fields is meaningful, selected by
// Kind; callers are expected to switch on Kind rather than probe fields
// directly.
type Value struct {
	Kind Kind

	Int    int64
	Bool   bool
	Symbol string
	Pair   *Pair
	Call   Callable
}

// Pair is a cons cell: an ordered pair of values, either of which may
// itself be the empty list, an atom, or another pair. Pairs are shared by
// plain Go pointer copy; Value.Pair aliases are indistinguishable from
// the pair they were copied from until one is rebound to something else.
type Pair struct {
	First  Value
	Second Value
}

// Callable is an invokable dialect value: either a primitive procedure or
// a user lambda. It receives its argument list unevaluated — deciding
// whether, and in what order, to evaluate its arguments is the
// callable's job, which is how special forms and ordinary procedures
// share one dispatch path.
// Callable implementations raise SyntaxError/NameError/RuntimeError via
// panic rather than returning an error, matching the rest of the
// evaluator — see eval.go and the single recover point in
// Interpreter.Evaluate.
type Callable interface {
	Invoke(args Value, env *Environment) Value
	// Name reports a label for the callable: a primitive's registered
	// name, or "lambda" for a user procedure. The printer shows it in a
	// callable's placeholder text.
	Name() string
}

// Empty is the canonical empty-list / nil value.
var Empty = Value{Kind: KindEmpty}

// True and False are the two canonical boolean singletons.
var (
	True  = Value{Kind: KindBool, Bool: true}
	False = Value{Kind: KindBool, Bool: false}
)

// Int64 builds an integer value.
func Int64(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Bool builds a boolean value from a Go bool.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Sym builds a symbol value.
func Sym(name string) Value { return Value{Kind: KindSymbol, Symbol: name} }

// ConsVal builds a pair value out of two values.
func ConsVal(first, second Value) Value {
	return Value{Kind: KindPair, Pair: &Pair{First: first, Second: second}}
}

// CallableVal wraps a Callable as a Value.
func CallableVal(c Callable) Value { return Value{Kind: KindCallable, Call: c} }

// IsEmpty reports whether v is the empty list.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// IsPair reports whether v is a (non-empty) pair.
func (v Value) IsPair() bool { return v.Kind == KindPair }

// Truthy reports whether v counts as true in an if/and/or context: only
// the boolean #f is false; every other value, including the empty list
// and 0, is truthy.
func (v Value) Truthy() bool {
	return !(v.Kind == KindBool && !v.Bool)
}

// Car returns the first element of a pair, or Empty if v is not a pair.
// Car and Cdr are free functions, not methods, so that cadr composes as
// Car(Cdr(x)) rather than reading backwards as a method chain.
func Car(v Value) Value {
	if v.Kind != KindPair {
		return Empty
	}
	return v.Pair.First
}

// Cdr returns the second element of a pair, or Empty if v is not a pair.
func Cdr(v Value) Value {
	if v.Kind != KindPair {
		return Empty
	}
	return v.Pair.Second
}

// Eq reports whether a and b are the same atomic value: equal by kind and
// by the field that kind carries. Two distinct pairs are never Eq, even
// if structurally equal, since the dialect has no deep-equality
// primitive.
func Eq(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindEmpty:
		return true
	case KindInt:
		return a.Int == b.Int
	case KindBool:
		return a.Bool == b.Bool
	case KindSymbol:
		return a.Symbol == b.Symbol
	case KindPair:
		return a.Pair == b.Pair
	case KindCallable:
		return a.Call == b.Call
	}
	return false
}

// length reports the number of cells in the top-level spine of v,
// stopping at the first non-pair tail (so it is exact for proper lists
// and a lower bound for improper ones).
func length(v Value) int {
	n := 0
	for v.Kind == KindPair {
		n++
		v = v.Pair.Second
	}
	return n
}

// isProperList reports whether v is the empty list or a pair chain
// terminating in the empty list.
func isProperList(v Value) bool {
	for v.Kind == KindPair {
		v = v.Pair.Second
	}
	return v.Kind == KindEmpty
}

// String renders v using the dialect's canonical printed form (see
// printer.go for the recursive pair-printing rules). Callables have no
// printable form per spec; printing one yields a placeholder rather than
// panicking, since String must not fail.
func (v Value) String() string {
	return printValue(v)
}

var _ fmt.Stringer = Value{}

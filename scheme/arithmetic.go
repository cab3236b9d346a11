package scheme

// Arithmetic and comparison procedures operate on int64 values only: a
// single machine word, not arbitrary precision, with wraparound on
// overflow rather than a trap.

func arithmeticProcedures() map[string]Value {
	return map[string]Value{
		"+":    newPrimitive("+", addProc),
		"-":    newPrimitive("-", subProc),
		"*":    newPrimitive("*", mulProc),
		"/":    newPrimitive("/", divProc),
		"<":    newPrimitive("<", compareProc(func(a, b int64) bool { return a < b })),
		"<=":   newPrimitive("<=", compareProc(func(a, b int64) bool { return a <= b })),
		">":    newPrimitive(">", compareProc(func(a, b int64) bool { return a > b })),
		">=":   newPrimitive(">=", compareProc(func(a, b int64) bool { return a >= b })),
		"=":    newPrimitive("=", compareProc(func(a, b int64) bool { return a == b })),
		"min":  newPrimitive("min", reduceProc("min", minInt64)),
		"max":  newPrimitive("max", reduceProc("max", maxInt64)),
		"abs":  newPrimitive("abs", absProc),
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func intArg(v Value) int64 {
	if v.Kind != KindInt {
		raiseRuntime("expected a number, got %s", v)
	}
	return v.Int
}

func addProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	var sum int64
	for _, v := range vs {
		sum += intArg(v)
	}
	return Int64(sum)
}

func subProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	if len(vs) == 0 {
		raiseRuntime("- requires at least 1 argument")
	}
	if len(vs) == 1 {
		return Int64(-intArg(vs[0]))
	}
	result := intArg(vs[0])
	for _, v := range vs[1:] {
		result -= intArg(v)
	}
	return Int64(result)
}

func mulProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	product := int64(1)
	for _, v := range vs {
		product *= intArg(v)
	}
	return Int64(product)
}

// divProc implements /. With a single argument it returns 1 if that
// argument is 1 and 0 otherwise, rather than the reciprocal a standard
// Scheme would compute; this dialect has no rational or floating-point
// type to hold a reciprocal in.
func divProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	if len(vs) == 0 {
		raiseRuntime("/ requires at least 1 argument")
	}
	if len(vs) == 1 {
		x := intArg(vs[0])
		if x == 1 {
			return Int64(1)
		}
		return Int64(0)
	}
	result := intArg(vs[0])
	for _, v := range vs[1:] {
		divisor := intArg(v)
		if divisor == 0 {
			raiseRuntime("division by zero")
		}
		result /= divisor // Go's / already truncates toward zero.
	}
	return Int64(result)
}

// compareProc builds a pairwise adjacent-element comparison procedure;
// empty and single-element argument lists are vacuously true.
func compareProc(less func(a, b int64) bool) func(Value, *Environment) Value {
	return func(args Value, env *Environment) Value {
		vs := evalArgs(args, env)
		for i := 1; i < len(vs); i++ {
			if !less(intArg(vs[i-1]), intArg(vs[i])) {
				return False
			}
		}
		return True
	}
}

// reduceProc builds a left-fold reduction procedure requiring at least
// one argument (min/max).
func reduceProc(name string, combine func(a, b int64) int64) func(Value, *Environment) Value {
	return func(args Value, env *Environment) Value {
		vs := evalArgs(args, env)
		if len(vs) == 0 {
			raiseRuntime("%s requires at least 1 argument", name)
		}
		result := intArg(vs[0])
		for _, v := range vs[1:] {
			result = combine(result, intArg(v))
		}
		return Int64(result)
	}
}

func absProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	if len(vs) != 1 {
		raiseRuntime("abs expects exactly 1 argument, got %d", len(vs))
	}
	n := intArg(vs[0])
	if n < 0 {
		n = -n
	}
	return Int64(n)
}

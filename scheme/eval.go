package scheme

// evaluate interprets form against env. Self-evaluating atoms return
// themselves, symbols resolve through env, and a pair is treated as a
// call: its head is evaluated to a Callable and applied to its tail.
// Special forms are ordinary Callables dispatched through the same path
// (see specialforms.go); there is no separate special-form switch here.
func evaluate(form Value, env *Environment) Value {
	switch form.Kind {
	case KindInt, KindBool:
		return form
	case KindSymbol:
		return env.lookup(form.Symbol)
	case KindEmpty:
		raiseRuntime("cannot evaluate empty list")
	case KindPair:
		callee := evaluate(Car(form), env)
		if callee.Kind != KindCallable {
			raiseRuntime("not a callable: %s", callee)
		}
		return applyCallable(callee.Call, Cdr(form), env)
	case KindCallable:
		return form
	}
	raiseRuntime("cannot evaluate %s", form)
	panic("unreachable")
}

// applyCallable invokes c, guarding against runaway native recursion via
// env's inherited callLimiter.
func applyCallable(c Callable, args Value, env *Environment) Value {
	env.limiter.enter()
	defer env.limiter.leave()
	return c.Invoke(args, env)
}

// evalArgs evaluates each element of a proper argument list left to
// right. Ordinary (non-special-form) procedures call this on the raw
// argument list they receive before doing their own work.
func evalArgs(args Value, env *Environment) []Value {
	if !isProperList(args) {
		raiseSyntax("improper argument list: %s", args)
	}
	var out []Value
	for args.Kind == KindPair {
		out = append(out, evaluate(args.Pair.First, env))
		args = args.Pair.Second
	}
	return out
}

// asList converts a proper list Value into a Go slice of its elements,
// raising a SyntaxError on an improper list.
func asList(v Value) []Value {
	if !isProperList(v) {
		raiseSyntax("expected a proper list, found %s", v)
	}
	var out []Value
	for v.Kind == KindPair {
		out = append(out, v.Pair.First)
		v = v.Pair.Second
	}
	return out
}

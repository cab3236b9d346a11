package scheme

// Predicates and list/pair procedures: the type predicates, the core
// pair accessors, and the set-car!/set-cdr! rebinding primitives.

func predicateAndListProcedures() map[string]Value {
	return map[string]Value{
		"not":       newPrimitive("not", notProc),
		"number?":   newPrimitive("number?", typePredicate(KindInt)),
		"boolean?":  newPrimitive("boolean?", typePredicate(KindBool)),
		"symbol?":   newPrimitive("symbol?", typePredicate(KindSymbol)),
		"pair?":     newPrimitive("pair?", typePredicate(KindPair)),
		"null?":     newPrimitive("null?", typePredicate(KindEmpty)),
		"list?":     newPrimitive("list?", listProc),
		"cons":      newPrimitive("cons", consProc),
		"car":       newPrimitive("car", carProc),
		"cdr":       newPrimitive("cdr", cdrProc),
		"set-car!":  newPrimitive("set-car!", setCarProc),
		"set-cdr!":  newPrimitive("set-cdr!", setCdrProc),
		"list":      newPrimitive("list", listBuildProc),
		"list-ref":  newPrimitive("list-ref", listRefProc),
		"list-tail": newPrimitive("list-tail", listTailProc),
	}
}

func exactlyN(vs []Value, n int, name string) {
	if len(vs) != n {
		raiseRuntime("%s expects exactly %d argument(s), got %d", name, n, len(vs))
	}
}

func notProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 1, "not")
	return Bool(!vs[0].Truthy())
}

// typePredicate builds a 1-argument procedure testing a value's Kind.
func typePredicate(kind Kind) func(Value, *Environment) Value {
	return func(args Value, env *Environment) Value {
		vs := evalArgs(args, env)
		exactlyN(vs, 1, "type predicate")
		return Bool(vs[0].Kind == kind)
	}
}

func listProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 1, "list?")
	return Bool(isProperList(vs[0]))
}

func consProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 2, "cons")
	return ConsVal(vs[0], vs[1])
}

func carProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 1, "car")
	if !vs[0].IsPair() {
		raiseRuntime("car: not a pair: %s", vs[0])
	}
	return Car(vs[0])
}

func cdrProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 1, "cdr")
	if !vs[0].IsPair() {
		raiseRuntime("cdr: not a pair: %s", vs[0])
	}
	return Cdr(vs[0])
}

// symbolPairBinding resolves the symbol named by the (unevaluated) first
// argument form to a non-empty pair currently bound in env, per
// set-car!/set-cdr!'s spec-mandated divergence from standard Scheme:
// the first argument names the *variable* holding the pair, not an
// expression that evaluates to one.
func symbolPairBinding(forms []Value, name string, env *Environment) (string, *Pair) {
	exactlyN(forms, 2, name)
	sym := forms[0]
	if sym.Kind != KindSymbol {
		raiseRuntime("%s: first argument must be a symbol", name)
	}
	bound := env.lookup(sym.Symbol)
	if !bound.IsPair() {
		raiseRuntime("%s: %s is not bound to a pair", name, sym.Symbol)
	}
	return sym.Symbol, bound.Pair
}

// setCarProc rebinds the symbol named by forms[0] to a new pair
// (new-first, old-second) in the current scope. It does not mutate the
// original pair in place, so aliases still observe the old value.
func setCarProc(args Value, env *Environment) Value {
	forms := asList(args)
	name, pair := symbolPairBinding(forms, "set-car!", env)
	newFirst := evaluate(forms[1], env)
	env.define(name, ConsVal(newFirst, pair.Second))
	return Empty
}

func setCdrProc(args Value, env *Environment) Value {
	forms := asList(args)
	name, pair := symbolPairBinding(forms, "set-cdr!", env)
	newSecond := evaluate(forms[1], env)
	env.define(name, ConsVal(pair.First, newSecond))
	return Empty
}

func listBuildProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	result := Empty
	for i := len(vs) - 1; i >= 0; i-- {
		result = ConsVal(vs[i], result)
	}
	return result
}

func listRefProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 2, "list-ref")
	if !isProperList(vs[0]) {
		raiseRuntime("list-ref: not a list: %s", vs[0])
	}
	idx := intArg(vs[1])
	cur := vs[0]
	for i := int64(0); i < idx; i++ {
		if !cur.IsPair() {
			raiseRuntime("list-ref: index out of range")
		}
		cur = Cdr(cur)
	}
	if !cur.IsPair() {
		raiseRuntime("list-ref: index out of range")
	}
	return Car(cur)
}

func listTailProc(args Value, env *Environment) Value {
	vs := evalArgs(args, env)
	exactlyN(vs, 2, "list-tail")
	idx := intArg(vs[1])
	cur := vs[0]
	for i := int64(0); i < idx; i++ {
		if !cur.IsPair() {
			raiseRuntime("list-tail: index out of range")
		}
		cur = Cdr(cur)
	}
	return cur
}

package scheme

// primitive wraps a Go function as a Callable, the shape every built-in
// special form and ordinary procedure in this package shares.
type primitive struct {
	name string
	fn   func(args Value, env *Environment) Value
}

func (p *primitive) Invoke(args Value, env *Environment) Value {
	return p.fn(args, env)
}

func (p *primitive) Name() string { return p.name }

func newPrimitive(name string, fn func(args Value, env *Environment) Value) Value {
	return CallableVal(&primitive{name: name, fn: fn})
}

// lambda is a user-defined procedure: a parameter list, a body (sequence
// of forms evaluated in order, last value returned), and the environment
// captured at definition time.
//
// Each call creates a fresh child of the captured environment, so
// concurrent or recursive calls to the same lambda never see each
// other's local bindings.
type lambda struct {
	params []string
	body   []Value
	env    *Environment
}

func (l *lambda) Name() string { return "lambda" }

func (l *lambda) Invoke(args Value, env *Environment) Value {
	values := evalArgs(args, env)
	if len(values) != len(l.params) {
		raiseRuntime("lambda expects %d argument(s), got %d", len(l.params), len(values))
	}
	call := newEnvironment(l.env)
	for i, p := range l.params {
		call.define(p, values[i])
	}
	var result Value
	for _, form := range l.body {
		result = evaluate(form, call)
	}
	return result
}

package scheme

// Special forms receive their argument list unevaluated and decide for
// themselves which parts, if any, to evaluate. They dispatch through the
// same Callable.Invoke path as ordinary procedures, which is why
// quote/define/set!/if/and/or/lambda live alongside the primitive
// procedures rather than getting their own evaluator case.

func specialForms() map[string]Value {
	return map[string]Value{
		"quote":  newPrimitive("quote", quoteForm),
		"define": newPrimitive("define", defineForm),
		"set!":   newPrimitive("set!", setForm),
		"if":     newPrimitive("if", ifForm),
		"and":    newPrimitive("and", andForm),
		"or":     newPrimitive("or", orForm),
		"lambda": newPrimitive("lambda", lambdaForm),
	}
}

// quoteForm implements (quote x): return x unevaluated.
func quoteForm(args Value, env *Environment) Value {
	forms := asList(args)
	if len(forms) != 1 {
		raiseSyntax("quote expects exactly 1 argument, got %d", len(forms))
	}
	return forms[0]
}

// defineForm implements both (define <sym> <expr>) and the lambda-sugar
// form (define (<name> <param>…) <body>…).
func defineForm(args Value, env *Environment) Value {
	forms := asList(args)
	if len(forms) < 1 {
		raiseSyntax("define requires at least 1 argument")
	}
	target := forms[0]
	switch target.Kind {
	case KindSymbol:
		if len(forms) != 2 {
			raiseSyntax("define <sym> <expr> expects exactly 2 arguments, got %d", len(forms))
		}
		value := evaluate(forms[1], env)
		env.define(target.Symbol, value)
		return target
	case KindPair:
		name := Car(target)
		if name.Kind != KindSymbol {
			raiseSyntax("define: function name must be a symbol")
		}
		if len(forms) < 2 {
			raiseSyntax("define: function form requires a body")
		}
		params := Cdr(target)
		fn := CallableVal(buildLambda(params, forms[1:], env))
		env.define(name.Symbol, fn)
		return name
	default:
		raiseSyntax("define: malformed first argument %s", target)
		panic("unreachable")
	}
}

// setForm implements (set! <sym> <expr>): <sym> must already resolve
// somewhere in the chain; the new value is then written into the
// *current* scope, not walked up and overwritten in place where it was
// originally defined.
func setForm(args Value, env *Environment) Value {
	forms := asList(args)
	if len(forms) != 2 {
		raiseSyntax("set! expects exactly 2 arguments, got %d", len(forms))
	}
	sym := forms[0]
	if sym.Kind != KindSymbol {
		raiseSyntax("set!: first argument must be a symbol")
	}
	if !env.isBound(sym.Symbol) {
		raiseName(sym.Symbol)
	}
	value := evaluate(forms[1], env)
	env.define(sym.Symbol, value)
	return Empty
}

// ifForm implements (if <test> <then> [<else>]).
func ifForm(args Value, env *Environment) Value {
	forms := asList(args)
	if len(forms) < 2 || len(forms) > 3 {
		raiseSyntax("if expects 2 or 3 arguments, got %d", len(forms))
	}
	test := evaluate(forms[0], env)
	if test.Truthy() {
		return evaluate(forms[1], env)
	}
	if len(forms) == 3 {
		return evaluate(forms[2], env)
	}
	return Empty
}

// andForm evaluates arguments left to right, short-circuiting on the
// first #f.
func andForm(args Value, env *Environment) Value {
	forms := asList(args)
	result := True
	for _, f := range forms {
		result = evaluate(f, env)
		if !result.Truthy() {
			return False
		}
	}
	return result
}

// orForm evaluates arguments left to right, short-circuiting on the
// first non-#f value.
func orForm(args Value, env *Environment) Value {
	forms := asList(args)
	for _, f := range forms {
		v := evaluate(f, env)
		if v.Truthy() {
			return v
		}
	}
	return False
}

// lambdaForm implements (lambda (<param>…) <body>…): capture env, produce
// a Callable per buildLambda.
func lambdaForm(args Value, env *Environment) Value {
	forms := asList(args)
	if len(forms) < 1 {
		raiseSyntax("lambda requires a parameter list")
	}
	return CallableVal(buildLambda(forms[0], forms[1:], env))
}

// buildLambda validates a parameter-list Value and body forms and
// captures env, shared by both `lambda` and `define`'s function-sugar
// form.
func buildLambda(paramsList Value, body []Value, env *Environment) *lambda {
	paramForms := asList(paramsList)
	if len(body) < 1 {
		raiseSyntax("lambda requires at least one body form")
	}
	params := make([]string, len(paramForms))
	for i, p := range paramForms {
		if p.Kind != KindSymbol {
			raiseSyntax("lambda: parameter %d is not a symbol", i)
		}
		params[i] = p.Symbol
	}
	return &lambda{params: params, body: body, env: env}
}

package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfArityIsSyntaxError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(if)")
	assert.IsType(t, SyntaxError{}, err)

	_, err = in.Evaluate("(if 1 2 3 4)")
	assert.IsType(t, SyntaxError{}, err)
}

func TestIfWithoutElseReturnsEmptyOnFalse(t *testing.T) {
	assert.Equal(t, "()", strEval(t, "(if #f 'then)"))
}

func TestQuoteArity(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(quote)")
	assert.IsType(t, SyntaxError{}, err)

	_, err = in.Evaluate("(quote a b)")
	assert.IsType(t, SyntaxError{}, err)
}

func TestDefineLambdaSugar(t *testing.T) {
	in := NewInterpreter()
	got, err := in.Evaluate("(define (square x) (* x x))")
	assert.NoError(t, err)
	assert.Equal(t, "square", got)

	got, err = in.Evaluate("(square 9)")
	assert.NoError(t, err)
	assert.Equal(t, "81", got)
}

func TestLambdaArityMismatchIsRuntimeError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(define (add2 a b) (+ a b))")
	assert.NoError(t, err)

	_, err = in.Evaluate("(add2 1)")
	assert.IsType(t, RuntimeError{}, err)
}

func TestLambdaNonSymbolParameterIsSyntaxError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(lambda (1) x)")
	assert.IsType(t, SyntaxError{}, err)
}

func TestSetBangOnUnboundNameIsNameError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(set! never-defined 1)")
	assert.IsType(t, NameError{}, err)
}

func TestDefineMultipleBodyForms(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(define (f x) (define y (+ x 1)) (* y 2))")
	assert.NoError(t, err)
	got, err := in.Evaluate("(f 4)")
	assert.NoError(t, err)
	assert.Equal(t, "10", got)
}

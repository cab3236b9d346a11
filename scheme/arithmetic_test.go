package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var arithmeticTests = []struct {
	expr string
	want string
}{
	{"(+)", "0"},
	{"(*)", "1"},
	{"(+ 1 2 3)", "6"},
	{"(- 5)", "-5"},
	{"(- 10 3 2)", "5"},
	{"(* 2 3 4)", "24"},
	{"(/ 12 3 2)", "2"},
	{"(min 3 1 2)", "1"},
	{"(max 3 1 2)", "3"},
	{"(abs -5)", "5"},
	{"(abs 5)", "5"},
	{"(< 1 2 3)", "#t"},
	{"(< 1 3 2)", "#f"},
	{"(<=)", "#t"},
	{"(= 1)", "#t"},
	{"(= 1 1 1)", "#t"},
	{"(= 1 2)", "#f"},
}

func TestArithmeticAndComparison(t *testing.T) {
	for _, tt := range arithmeticTests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, strEval(t, tt.expr))
		})
	}
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, "-2", strEval(t, "(/ -7 3)"))
	assert.Equal(t, "2", strEval(t, "(/ 7 3)"))
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(/ 1 0)")
	assert.IsType(t, RuntimeError{}, err)
}

func TestArithmeticTypeMismatchIsRuntimeError(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Evaluate("(+ 1 'a)")
	assert.IsType(t, RuntimeError{}, err)
}

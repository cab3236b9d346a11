package scheme

import "fmt"

// The dialect raises exactly three kinds of error, distinguishable by
// callers via a type switch. All three are raised internally by panic
// and converted back into ordinary returned errors at the Evaluate
// boundary (see interpreter.go), so nothing outside this package ever
// observes a panic from evaluating a form.

// SyntaxError reports a malformed token stream, mismatched brackets, an
// improper list where a proper one is required, the wrong number of
// subforms in a special form, or a non-symbol parameter name.
type SyntaxError struct {
	Message string
}

func (e SyntaxError) Error() string { return "syntax error: " + e.Message }

// NameError reports a reference to an unbound symbol during evaluation.
type NameError struct {
	Name string
}

func (e NameError) Error() string { return fmt.Sprintf("unbound name: %s", e.Name) }

// RuntimeError reports an arity mismatch, a type mismatch, an
// out-of-range index, application of a non-callable, or evaluation of
// the empty list as a form.
type RuntimeError struct {
	Message string
}

func (e RuntimeError) Error() string { return "runtime error: " + e.Message }

func raiseSyntax(format string, args ...interface{}) {
	panic(SyntaxError{Message: fmt.Sprintf(format, args...)})
}

func raiseName(name string) {
	panic(NameError{Name: name})
}

func raiseRuntime(format string, args ...interface{}) {
	panic(RuntimeError{Message: fmt.Sprintf(format, args...)})
}

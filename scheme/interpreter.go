package scheme

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

// defaultMaxDepth bounds the native call stack the evaluator will use
// before giving up. It lives inside the core, not the CLI, so every host
// embedding the package gets the same protection against runaway
// recursion.
const defaultMaxDepth = 100_000

var defaultLogger = log.New(os.Stderr, "scheme: ", log.LstdFlags)

// Interpreter holds a persistent environment across successive Evaluate
// calls. It is not safe for concurrent use: a single instance's Evaluate
// is not reentrant.
type Interpreter struct {
	root      *Environment
	sessionID uuid.UUID
}

// NewInterpreter returns an Interpreter with a root environment
// pre-populated with the dialect's special forms and primitive
// procedures, and the package's default call-depth guard.
func NewInterpreter() *Interpreter {
	return NewInterpreterWithDepth(defaultMaxDepth)
}

// NewInterpreterWithDepth is the same as NewInterpreter but lets the
// caller pick the call-depth ceiling; depth <= 0 means unlimited.
func NewInterpreterWithDepth(depth int) *Interpreter {
	root := newEnvironment(nil)
	root.limiter = &callLimiter{max: depth}
	for name, v := range specialForms() {
		root.define(name, v)
	}
	for name, v := range arithmeticProcedures() {
		root.define(name, v)
	}
	for name, v := range predicateAndListProcedures() {
		root.define(name, v)
	}
	id := uuid.New()
	interp := &Interpreter{root: root, sessionID: id}
	defaultLogger.Printf("[%s] new interpreter instance (max depth %d)", id, depth)
	return interp
}

// SessionID returns the interpreter instance's unique identifier, used to
// tell concurrent interpreters' log lines apart.
func (in *Interpreter) SessionID() string {
	return in.sessionID.String()
}

// Evaluate parses exactly one complete expression from text, evaluates
// it against the interpreter's persistent environment, and returns its
// canonical textual form. On failure it returns a SyntaxError, NameError,
// or RuntimeError (see errors.go). A failed call is not rolled back:
// bindings that define, set!, set-car! or set-cdr! wrote into the root
// environment before the error was raised stay in place.
func (in *Interpreter) Evaluate(text string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case SyntaxError, NameError, RuntimeError:
				err = e.(error)
			default:
				panic(r)
			}
		}
	}()

	reader := NewReader(strings.NewReader(text))
	form, readErr := reader.ReadOne()
	if readErr != nil {
		if readErr == io.EOF {
			return "", SyntaxError{Message: "no expression found"}
		}
		return "", readErr
	}
	if !reader.AtEOF() {
		return "", SyntaxError{Message: "trailing input after expression"}
	}

	value := evaluate(form, in.root)
	return value.String(), nil
}

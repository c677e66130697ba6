/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for the Go-Lox language.
// It walks the AST produced by the parser, maintaining a chain of lexical
// scopes, enforcing runtime type checks on every operator, and producing the
// observable effects of the program (print output).
//
// The evaluator is single-threaded and fully synchronous: a statement runs to
// completion or to a runtime error before Interpret returns. A runtime error
// aborts the rest of the statement list, is reported to the diagnostic sink,
// and leaves the evaluator usable for the next interpretation (which is what
// the REPL relies on).
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Evaluator holds the state for evaluating Go-Lox AST nodes: the current
// scope, the diagnostic sink, and the output writer for print statements.
// It serves as the execution engine of the interpreter.
type Evaluator struct {
	Scp      *scope.Scope  // Current scope for variable bindings and lexical scoping
	Reporter diag.Reporter // Diagnostic sink runtime errors are surfaced through
	Writer   io.Writer     // Output writer for print statements (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance with default
// configuration: a fresh root scope with no parent and os.Stdout as the
// output destination.
//
// Parameters:
//   - reporter: The diagnostic sink that receives runtime errors
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Go-Lox code
//
// Example usage:
//
//	reporter := diag.NewConsoleReporter()
//	ev := NewEvaluator(reporter)
//	ev.Interpret(root)
func NewEvaluator(reporter diag.Reporter) *Evaluator {
	return &Evaluator{
		Scp:      scope.NewScope(nil),
		Reporter: reporter,
		Writer:   os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for print statements.
//
// This method allows redirecting print output to any io.Writer
// implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Custom output handling: sending output to buffers, network streams, etc.
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// RuntimeError is the error value that unwinds evaluation when a runtime
// check fails. It carries the token the error is attributed to, so the
// diagnostic sink can point at a source line.
type RuntimeError struct {
	Token   lexer.Token // The operator or identifier token at fault
	Message string      // The user-visible message
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// NewRuntimeError creates a RuntimeError attributed to the given token.
// The format string and arguments follow fmt.Sprintf conventions.
func NewRuntimeError(tok lexer.Token, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, a...)}
}

// Interpret evaluates the program's statements in order.
//
// A runtime error aborts evaluation of the remaining statements; it is
// reported to the diagnostic sink and Interpret returns. The parser drops
// failed declarations from the list; a nil entry, should one appear, is skipped.
//
// The returned value is the result of the last expression statement executed
// at the top level (nil object otherwise), which the REPL echoes back to the
// user. Script execution ignores it.
//
// Parameters:
//   - root: The program AST produced by the parser
//
// Returns:
//   - objects.LoxObject: The value of the last top-level expression statement
func (e *Evaluator) Interpret(root *parser.RootNode) objects.LoxObject {
	var last objects.LoxObject = &objects.Nil{}

	for _, stmt := range root.Statements {
		if stmt == nil {
			continue
		}
		result, err := e.execute(stmt)
		if err != nil {
			var runtimeErr *RuntimeError
			if errors.As(err, &runtimeErr) {
				e.Reporter.ReportRuntimeError(runtimeErr.Token, runtimeErr.Message)
			}
			return &objects.Nil{}
		}
		if _, ok := stmt.(*parser.ExpressionStatementNode); ok {
			last = result
		}
	}

	return last
}

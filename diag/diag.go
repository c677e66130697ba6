/*
File    : go-lox/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag defines the diagnostic sink that the parser and evaluator
// report errors through, plus the colored console implementation used by the
// CLI driver and the REPL.
//
// The sink decouples error production from error presentation: the core
// reports a token and a message, the sink decides formatting and destination,
// and it remembers whether anything went wrong so the driver can pick the
// process exit code.
package diag

import (
	"io"
	"os"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/fatih/color"
)

// Reporter is the diagnostic sink interface the interpreter core calls into.
// The parser reports syntax errors as it recovers from them; the evaluator
// reports the runtime error that stopped an interpretation. Implementations
// are expected to be synchronous and side-effect-only.
type Reporter interface {
	// ReportParseError records a syntax error. The token supplies the line
	// and the lexeme used in the message.
	ReportParseError(tok lexer.Token, message string)
	// ReportRuntimeError records the runtime error that aborted evaluation.
	ReportRuntimeError(tok lexer.Token, message string)
}

// Color definitions for diagnostic output.
// Errors are always printed in red, matching the REPL's error coloring.
var (
	redColor = color.New(color.FgRed)
)

// ConsoleReporter is the standard Reporter implementation. It formats
// diagnostics onto a writer (stderr by default) and tracks had-error flags
// that the driver consults for its exit code.
type ConsoleReporter struct {
	Writer          io.Writer // Destination for diagnostic lines (default: os.Stderr)
	HadParseError   bool      // Set when any syntax error has been reported
	HadRuntimeError bool      // Set when a runtime error has been reported
}

// NewConsoleReporter creates a ConsoleReporter writing to standard error.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{
		Writer: os.Stderr,
	}
}

// SetWriter redirects diagnostic output, which is how tests capture it.
func (r *ConsoleReporter) SetWriter(w io.Writer) {
	r.Writer = w
}

// ReportParseError formats and prints a syntax error and flips the parse
// error flag. Errors at the end of input read "at end"; everywhere else the
// offending lexeme is quoted.
//
// Example output:
//
//	[line 1] Error at 'var': Expect ';' after expression.
//	[line 3] Error at end: Expect expression.
func (r *ConsoleReporter) ReportParseError(tok lexer.Token, message string) {
	r.HadParseError = true
	if tok.Type == lexer.EOF_TYPE {
		redColor.Fprintf(r.Writer, "[line %d] Error at end: %s\n", tok.Line, message)
	} else {
		redColor.Fprintf(r.Writer, "[line %d] Error at '%s': %s\n", tok.Line, tok.Lexeme, message)
	}
}

// ReportRuntimeError formats and prints a runtime error and flips the runtime
// error flag. The token is the operator or identifier the error is attributed to.
//
// Example output:
//
//	Undefined variable 'x'.
//	[line 2]
func (r *ConsoleReporter) ReportRuntimeError(tok lexer.Token, message string) {
	r.HadRuntimeError = true
	redColor.Fprintf(r.Writer, "%s\n[line %d]\n", message, tok.Line)
}

// Reset clears both error flags. The REPL calls this between lines so one
// bad input does not poison the next.
func (r *ConsoleReporter) Reset() {
	r.HadParseError = false
	r.HadRuntimeError = false
}

// HadError reports whether any diagnostic has been recorded since the last Reset.
func (r *ConsoleReporter) HadError() bool {
	return r.HadParseError || r.HadRuntimeError
}

var _ Reporter = (*ConsoleReporter)(nil)

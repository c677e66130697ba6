/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// runSource is a test helper running the full pipeline on src.
// It returns the value of the last top-level expression statement, the
// captured print output, the captured diagnostics, and the reporter.
func runSource(src string) (objects.LoxObject, string, string, *diag.ConsoleReporter) {
	var stdout bytes.Buffer
	var diagnostics bytes.Buffer

	reporter := diag.NewConsoleReporter()
	reporter.SetWriter(&diagnostics)

	lex := lexer.NewLexer(src)
	par := parser.NewParser(lex.ConsumeTokens(), reporter)
	root := par.Parse()

	evaluator := NewEvaluator(reporter)
	evaluator.SetWriter(&stdout)
	result := evaluator.Interpret(root)

	return result, stdout.String(), diagnostics.String(), reporter
}

// TestEvaluator_Numbers verifies numeric literal evaluation and arithmetic
func TestEvaluator_Numbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2;", 2},
		{"-2;", -2},
		{"1 + 1;", 2},
		{"1 - 1;", 0},
		{"2 * 15;", 30},
		{"15 / 3;", 5},
		{"1 + 2 * 3;", 7},
		{"(1 + 2) * 3;", 9},
		{"1 * -2;", -2},
		{"4 - 1 - 2;", 1},
		{"1.5 + 0.25;", 1.75},
		{"--2;", 2},
	}

	for _, tt := range tests {
		result, _, _, reporter := runSource(tt.input)
		if reporter.HadError() {
			t.Errorf("unexpected error for %q", tt.input)
			continue
		}
		if result.GetType() != objects.NumberType {
			t.Errorf("expected %s, got %s for %q", objects.NumberType, result.GetType(), tt.input)
			continue
		}
		if result.(*objects.Number).Value != tt.expected {
			t.Errorf("expected %v, got %v for %q", tt.expected, result.(*objects.Number).Value, tt.input)
		}
	}
}

// TestEvaluator_Booleans verifies comparisons, equality, and negation
func TestEvaluator_Booleans(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true;", true},
		{"false;", false},
		{"1 < 2;", true},
		{"2 <= 2;", true},
		{"3 > 4;", false},
		{"4 >= 4;", true},
		{"1 == 1;", true},
		{"1 != 1;", false},
		{"nil == nil;", true},
		{"nil == false;", false},
		{"\"a\" == \"a\";", true},
		{"\"a\" == \"b\";", false},
		{"1 == \"1\";", false},
		{"!nil;", true},
		{"!false;", true},
		{"!0;", false},
		{"!\"\";", false},
		{"!!true;", true},
	}

	for _, tt := range tests {
		result, _, _, reporter := runSource(tt.input)
		if reporter.HadError() {
			t.Errorf("unexpected error for %q", tt.input)
			continue
		}
		if result.GetType() != objects.BooleanType {
			t.Errorf("expected %s, got %s for %q", objects.BooleanType, result.GetType(), tt.input)
			continue
		}
		if result.(*objects.Boolean).Value != tt.expected {
			t.Errorf("expected %v, got %v for %q", tt.expected, result.(*objects.Boolean).Value, tt.input)
		}
	}
}

// TestEvaluator_Strings verifies concatenation and string coercion of '+'
func TestEvaluator_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\"a\" + \"b\";", "ab"},
		{"\"a\" + 1;", "a1"},
		{"1 + \"a\";", "1a"},
		{"\"v=\" + 1.5;", "v=1.5"},
		{"\"is \" + true;", "is true"},
		{"\"x\" + nil;", "xnil"},
		{"\"\" + \"\";", ""},
	}

	for _, tt := range tests {
		result, _, _, reporter := runSource(tt.input)
		if reporter.HadError() {
			t.Errorf("unexpected error for %q", tt.input)
			continue
		}
		if result.GetType() != objects.StringType {
			t.Errorf("expected %s, got %s for %q", objects.StringType, result.GetType(), tt.input)
			continue
		}
		if result.(*objects.String).Value != tt.expected {
			t.Errorf("expected %q, got %q for %q", tt.expected, result.(*objects.String).Value, tt.input)
		}
	}
}

// TestEvaluator_Print verifies the print statement's stringification
func TestEvaluator_Print(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 + 2;", "3\n"},
		{"print 1.5;", "1.5\n"},
		{"print nil;", "nil\n"},
		{"print true;", "true\n"},
		{"print \"a\" + 1;", "a1\n"},
		{"print \"hello\";", "hello\n"},
		{"print 1 / 0;", "+Inf\n"},
		{"print 1; print 2;", "1\n2\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_Variables verifies declarations, reads, and assignments
func TestEvaluator_Variables(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"var a = 1; var b = 2; print a + b;", "3\n"},
		{"var a; print a;", "nil\n"},
		{"var a = 1; a = 2; print a;", "2\n"},
		{"var a = 1; var a = 2; print a;", "2\n"},
		{"var a; var b; a = b = 3; print a + b;", "6\n"},
		{"var a = 1; print a = 5;", "5\n"},
		{"var a = 1, b = a + 1; print a + b;", "3\n"},
		{"var a = 1, b = 2, c; print b; print c;", "2\nnil\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_Scopes verifies shadowing and outer mutation from inner blocks
func TestEvaluator_Scopes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// shadowing lasts until block end
		{"var a = \"hi\"; { var a = \"bye\"; print a; } print a;", "bye\nhi\n"},
		// assignment from an inner block mutates the outer binding
		{"var a = 1; { a = 2; } print a;", "2\n"},
		// nested blocks
		{"var a = 1; { var a = 2; { var a = 3; print a; } print a; } print a;", "3\n2\n1\n"},
		// declarations inside a block vanish on exit, the outer one is intact
		{"var a = 1; { var b = 2; print a + b; } print a;", "3\n1\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_ControlFlow verifies if/else, while, and the desugared for
func TestEvaluator_ControlFlow(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"if (1 < 2) print \"yes\"; else print \"no\";", "yes\n"},
		{"if (2 < 1) print \"yes\"; else print \"no\";", "no\n"},
		{"if (2 < 1) print \"yes\";", ""},
		// non-boolean conditions go through truthiness
		{"if (0) print \"zero is truthy\";", "zero is truthy\n"},
		{"if (nil) print \"then\"; else print \"else\";", "else\n"},
		{"var i = 0; while (i < 3) { print i; i = i + 1; }", "0\n1\n2\n"},
		{"while (false) print \"never\";", ""},
		{"for (var i = 0; i < 3; i = i + 1) print i;", "0\n1\n2\n"},
		{"var i = 5; for (; i > 3;) { print i; i = i - 1; }", "5\n4\n"},
		// the loop variable is scoped to the desugared block
		{"for (var i = 0; i < 1; i = i + 1) print i; var i = 9; print i;", "0\n9\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_Ternary verifies arm selection and laziness
func TestEvaluator_Ternary(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print (1 == 1) ? \"yes\" : \"no\";", "yes\n"},
		{"print (1 == 2) ? \"yes\" : \"no\";", "no\n"},
		{"print 1 < 2 ? 3 : 4;", "3\n"},
		// the non-selected arm must not run
		{"var a = 0; var b = true ? 1 : (a = 5); print a; print b;", "0\n1\n"},
		{"var a = 0; var b = false ? (a = 5) : 2; print a; print b;", "0\n2\n"},
		// right-associativity of the else arm
		{"print false ? 1 : true ? 2 : 3;", "2\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_Logical verifies short-circuiting and operand-value results
func TestEvaluator_Logical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// the right operand is skipped when the left decides
		{"var a = 0; false and (a = 1); print a;", "0\n"},
		{"var a = 0; true or (a = 1); print a;", "0\n"},
		// and it runs when the left does not
		{"var a = 0; true and (a = 1); print a;", "1\n"},
		{"var a = 0; false or (a = 1); print a;", "1\n"},
		// operators return operand values, not coerced booleans
		{"print \"hi\" or 2;", "hi\n"},
		{"print nil or \"fallback\";", "fallback\n"},
		{"print nil and 2;", "nil\n"},
		{"print 1 and 2;", "2\n"},
		{"print false or false;", "false\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_Comma verifies that the left operand runs for effects and
// the right one is the value
func TestEvaluator_Comma(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print (1, 2);", "2\n"},
		{"var a = 0; print ((a = 5), a + 1);", "6\n"},
		{"var a = (1, 2, 3); print a;", "3\n"},
	}

	for _, tt := range tests {
		_, stdout, _, reporter := runSource(tt.input)
		assert.False(t, reporter.HadError(), "input: %s", tt.input)
		assert.Equal(t, tt.expected, stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_RuntimeErrors verifies the type checks, their messages, and
// that evaluation stops at the first runtime error
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"true + 1;", "Operands must be two numbers or two strings."},
		{"nil + false;", "Operands must be two numbers or two strings."},
		{"-\"a\";", "Operand must be a number."},
		{"1 < \"a\";", "Operand must be a number."},
		{"\"a\" * 2;", "Operand must be a number."},
		{"true - nil;", "Operand must be a number."},
		{"print undefined_var;", "Undefined variable 'undefined_var'."},
		{"x = 1;", "Undefined variable 'x'."},
	}

	for _, tt := range tests {
		_, stdout, diagnostics, reporter := runSource(tt.input)
		assert.True(t, reporter.HadRuntimeError, "input: %s", tt.input)
		assert.Contains(t, diagnostics, tt.expected, "input: %s", tt.input)
		assert.Equal(t, "", stdout, "input: %s", tt.input)
	}
}

// TestEvaluator_RuntimeErrorStops verifies that a runtime error aborts the
// remaining statements
func TestEvaluator_RuntimeErrorStops(t *testing.T) {

	_, stdout, diagnostics, reporter := runSource("print 1; true + 1; print 2;")
	assert.True(t, reporter.HadRuntimeError)
	assert.Contains(t, diagnostics, "Operands must be two numbers or two strings.")
	assert.Equal(t, "1\n", stdout)
}

// TestEvaluator_RuntimeErrorLine verifies that runtime errors carry the
// operator's source line
func TestEvaluator_RuntimeErrorLine(t *testing.T) {

	_, _, diagnostics, reporter := runSource("print 1;\nprint 2;\ntrue + 1;")
	assert.True(t, reporter.HadRuntimeError)
	assert.Contains(t, diagnostics, "[line 3]")
}

// TestEvaluator_ScopeRestoredAfterError verifies that a runtime error inside
// a block still pops the block scope, so the next interpretation sees the
// outer bindings
func TestEvaluator_ScopeRestoredAfterError(t *testing.T) {

	var stdout bytes.Buffer
	var diagnostics bytes.Buffer
	reporter := diag.NewConsoleReporter()
	reporter.SetWriter(&diagnostics)

	evaluator := NewEvaluator(reporter)
	evaluator.SetWriter(&stdout)

	// first interpretation fails inside a nested block
	lex := lexer.NewLexer("var a = 1; { var a = 2; { var a = 3; true + 1; } }")
	root := parser.NewParser(lex.ConsumeTokens(), reporter).Parse()
	evaluator.Interpret(root)
	assert.True(t, reporter.HadRuntimeError)

	// the evaluator is back in the root scope: 'a' is the outer binding
	reporter.Reset()
	lex = lexer.NewLexer("print a;")
	root = parser.NewParser(lex.ConsumeTokens(), reporter).Parse()
	evaluator.Interpret(root)

	assert.False(t, reporter.HadError())
	assert.Equal(t, "1\n", stdout.String())
}

// TestEvaluator_SessionState verifies that bindings persist across
// interpretations sharing one evaluator (the REPL relies on this)
func TestEvaluator_SessionState(t *testing.T) {

	var stdout bytes.Buffer
	reporter := diag.NewConsoleReporter()
	reporter.SetWriter(&bytes.Buffer{})

	evaluator := NewEvaluator(reporter)
	evaluator.SetWriter(&stdout)

	for _, src := range []string{"var count = 0;", "count = count + 1;", "print count;"} {
		lex := lexer.NewLexer(src)
		root := parser.NewParser(lex.ConsumeTokens(), reporter).Parse()
		evaluator.Interpret(root)
	}

	assert.False(t, reporter.HadError())
	assert.Equal(t, "1\n", stdout.String())
}

// TestEvaluator_InterpretResult verifies the value echoed to the REPL: the
// last top-level expression statement, or nil when there is none
func TestEvaluator_InterpretResult(t *testing.T) {

	result, _, _, reporter := runSource("var a = 20; a + 2;")
	assert.False(t, reporter.HadError())
	assert.Equal(t, &objects.Number{Value: 22}, result)

	result, _, _, reporter = runSource("var a = 20;")
	assert.False(t, reporter.HadError())
	assert.Equal(t, objects.NilType, result.GetType())
}

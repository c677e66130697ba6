/*
File    : go-lox/cmd_run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/google/subcommands"
)

// Exit statuses for the run subcommand, following the conventional
// interpreter exit codes.
const (
	exitSyntaxError  subcommands.ExitStatus = 65 // One or more parse errors
	exitRuntimeError subcommands.ExitStatus = 70 // A runtime error stopped evaluation
)

// runCmd implements the 'run' subcommand: execute a Go-Lox source file.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute Go-Lox code from a source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Execute Go-Lox code.
`
}
func (r *runCmd) SetFlags(f *flag.FlagSet) {}

// Execute reads the source file and runs it through the
// lexer-parser-evaluator pipeline.
//
// Error handling:
//   - Parse errors: every error is reported (the parser recovers and keeps
//     going), the program is not run, and the exit status is 65
//   - Runtime errors: the error is reported and the exit status is 70
//   - Success: exit status 0
func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "File not provided\n")
		return subcommands.ExitUsageError
	}
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	reporter := diag.NewConsoleReporter()

	// Tokenize the whole file up front; the parser consumes the token slice
	lex := lexer.NewLexer(string(data))
	tokens := lex.ConsumeTokens()

	par := parser.NewParser(tokens, reporter)
	root := par.Parse()

	// Don't run code that didn't parse
	if reporter.HadParseError {
		return exitSyntaxError
	}

	evaluator := eval.NewEvaluator(reporter)
	evaluator.Interpret(root)

	if reporter.HadRuntimeError {
		return exitRuntimeError
	}
	return subcommands.ExitSuccess
}

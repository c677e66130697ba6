/*
File    : go-lox/cmd_repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/akashmaji946/go-lox/repl"
	"github.com/google/subcommands"
)

// replCmd implements the 'repl' subcommand: the interactive interpreter.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start the interactive Go-Lox interpreter" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session.
`
}
func (r *replCmd) SetFlags(f *flag.FlagSet) {}

// Execute starts the REPL loop, reading from stdin and writing to stdout.
// Variable bindings persist until the session ends with '.exit' or Ctrl+D.
func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
	return subcommands.ExitSuccess
}

/*
File    : go-lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Lox interpreter.
It provides two modes of operation:
1. REPL Mode (default, or 'repl' subcommand): Interactive Read-Eval-Print Loop
2. Run Mode ('run' subcommand): Execute Go-Lox source files from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Go-Lox code.
The run subcommand follows the conventional interpreter exit codes: 65 for a
syntax error, 70 for a runtime error, 0 otherwise.
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

// VERSION represents the current version of the Go-Lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Go-Lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "Go-Lox" in stylized ASCII characters
var BANNER = `
    ▄▄▄▄                       ▄▄▄▄▄▄
  ██▀▀▀▀█                      ▀▀██▀▀
 ██         ▄████▄               ██       ▄████▄   ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	         ██      ██▀  ▀██    ████
 ██  ▀▀██  ██    ██   █████      ██      ██    ██    ▄██▄
  ██▄▄▄██  ▀██▄▄██▀              ██▄▄▄   ▀██▄▄██▀   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀                ▀▀▀▀▀▀    ▀▀▀▀    ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// main is the entry point of the Go-Lox interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-lox                - Start in REPL (interactive) mode
//	go-lox repl           - Same as above
//	go-lox run <filename> - Execute the specified Go-Lox source file
//	go-lox help           - Display help information
//
// The function delegates to the registered subcommands and exits with the
// status they pick.
func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	// With no arguments at all, drop straight into the REPL
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "repl")
	}

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

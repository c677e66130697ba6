/*
File    : go-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Go-Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Go-Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the lexer, parser and evaluator to execute user input.
Variable bindings persist across lines: the evaluator and its root scope
live for the whole session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "Go-Lox >>> ")
}

// NewRepl creates and initializes a new REPL instance.
// This constructor sets up all the visual elements and configuration
// needed for the interactive session.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the REPL starts to provide users with:
// - The Go-Lox logo (ASCII art)
// - Version and author information
// - Basic usage instructions
// - Command history navigation tips
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the ASCII art banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print welcome message and usage instructions in cyan
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Go-Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	// Print bottom separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates a diagnostic reporter and an evaluator that live for the session
// 4. Enters the main read-eval-print loop
// 5. Processes user input until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Unlike script execution, errors do not terminate the session: diagnostics
// are printed, the error flags are reset, and the next prompt appears.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	// This provides features like command history, cursor movement, etc.
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Diagnostics and evaluator state persist across lines
	reporter := diag.NewConsoleReporter()
	reporter.SetWriter(writer)
	evaluator := eval.NewEvaluator(reporter)
	evaluator.SetWriter(writer) // Set output writer for print statements

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user
		// This blocks until the user presses Enter
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Execute the input; errors are printed and the loop continues
		r.executeLine(writer, line, reporter, evaluator)
	}
}

// executeLine scans, parses and evaluates one line of input.
// The REPL's error handling strategy:
// 1. Parse errors are printed (by the reporter) and the line is discarded
// 2. Runtime errors are printed and the session continues
// 3. On success, the value of the last top-level expression statement is echoed
//
// The reporter's flags are reset afterwards so one bad line does not
// poison the next.
func (r *Repl) executeLine(writer io.Writer, line string, reporter *diag.ConsoleReporter, evaluator *eval.Evaluator) {
	defer reporter.Reset()

	// Tokenize the input line
	lex := lexer.NewLexer(line)
	tokens := lex.ConsumeTokens()

	// Parse the tokens into an Abstract Syntax Tree (AST)
	par := parser.NewParser(tokens, reporter)
	rootNode := par.Parse()

	// Check for parser errors
	// The parser reports as it recovers, so everything is printed already
	if reporter.HadParseError {
		return // Return to REPL prompt for user to try again
	}

	// Evaluate the AST and get the value of its last expression statement
	result := evaluator.Interpret(rootNode)

	// Echo the result unless it is nil (declarations, loops, print, ...)
	if result != nil && result.GetType() != objects.NilType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}

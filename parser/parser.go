/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Go-Lox
programming language.

The parser converts the token stream produced by the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (comma, assignment, ternary, logical, equality, comparison,
  additive, multiplicative, unary, primary)
- Statements (declarations, print, blocks, if/else, while, for)
- Operator precedence and associativity, one grammar rule per precedence level

Key Features:
- Panic-mode error recovery: a syntax error discards the current declaration,
  resynchronizes at a likely statement boundary, and parsing continues so one
  input can report many errors
- Every error is reported through the diagnostic sink with the offending token
- The for statement is lowered at parse time into a block + while tree, so the
  evaluator never sees a for node
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/lexer"
)

// Parser represents the parser state and configuration.
// It consumes a finite token sequence terminated by exactly one EOF token and
// produces a RootNode holding the statement list.
type Parser struct {
	Tokens   []lexer.Token // Token stream, ending with an EOF sentinel
	Position int           // Index of the current (not yet consumed) token
	Reporter diag.Reporter // Diagnostic sink receiving every syntax error
}

// NewParser creates and initializes a new Parser instance.
//
// Parameters:
//
//	tokens   - The token stream to parse, ending with exactly one EOF token
//	reporter - The diagnostic sink syntax errors are reported to
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the token stream.
func NewParser(tokens []lexer.Token, reporter diag.Reporter) *Parser {
	return &Parser{
		Tokens:   tokens,
		Position: 0,
		Reporter: reporter,
	}
}

// parseError is the error value propagated up the recursive descent when a
// rule cannot make progress. It carries the offending token so the recovery
// point knows where parsing stopped; the error has already been reported to
// the sink by the time it is thrown.
type parseError struct {
	Token   lexer.Token // The token the parser choked on
	Message string      // The user-visible message
}

// Error implements the error interface.
func (e parseError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// Parse is the main parsing function that converts the token stream into an AST.
// It repeatedly parses declarations until reaching the end of the stream,
// building up a RootNode that contains all successfully parsed statements.
//
// Declarations that fail to parse are dropped: the error has been reported,
// the parser has resynchronized, and the resulting hole is simply skipped so
// the evaluator only ever sees well-formed statements.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse declarations until we reach the end of the stream
	for !par.isAtEnd() {
		stmt := par.declaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}

	return root
}

// declaration parses one declaration and is the panic-mode recovery point.
// On a syntax error anywhere inside the declaration, the error has already
// been reported; this method resynchronizes the token cursor and returns nil
// so the caller can skip the failed declaration and keep parsing.
func (par *Parser) declaration() StatementNode {
	var stmt StatementNode
	var err error

	if par.match(lexer.VAR_KEY) {
		stmt, err = par.varDeclarations()
	} else {
		stmt, err = par.statement()
	}

	if err != nil {
		par.synchronize()
		return nil
	}
	return stmt
}

// synchronize discards tokens until a likely statement boundary after a
// syntax error. It stops when the previously consumed token is a semicolon or
// when the next token starts a new statement, which keeps one error from
// cascading into a pile of spurious ones.
func (par *Parser) synchronize() {
	par.advance()

	for !par.isAtEnd() {
		if par.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}

// peek returns the current (not yet consumed) token without advancing.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Position]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Position-1]
}

// isAtEnd reports whether the cursor has reached the EOF sentinel.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// advance consumes the current token and returns it.
// The cursor never moves past the EOF sentinel.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Position++
	}
	return par.previous()
}

// check reports whether the current token has the given type, without
// consuming it.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	if par.isAtEnd() {
		return tokenType == lexer.EOF_TYPE
	}
	return par.peek().Type == tokenType
}

// match consumes the current token if it has one of the given types.
//
// Returns:
//
//	true if a token was consumed, false otherwise
func (par *Parser) match(tokenTypes ...lexer.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// consume expects the current token to have the given type and consumes it.
// When the token does not match, the error is reported through the sink and
// returned for the recovery point to act on.
//
// This is the common pattern "I expect a semicolon next; take it or fail".
func (par *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, error) {
	if par.check(tokenType) {
		return par.advance(), nil
	}
	return lexer.Token{}, par.error(par.peek(), message)
}

// error reports a syntax error at the given token and returns the parseError
// to unwind the current rule. Reporting happens here, once, so every thrown
// error is guaranteed to reach the sink exactly one time.
func (par *Parser) error(tok lexer.Token, message string) error {
	par.Reporter.ReportParseError(tok, message)
	return parseError{Token: tok, Message: message}
}

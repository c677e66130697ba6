/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// varDeclarations parses one var statement after the 'var' keyword has been
// consumed. A single declaration produces a VarStatementNode; a
// comma-separated group (var a = 1, b = 2;) produces one VarGroupStatementNode
// whose components share the terminating semicolon.
//
// Grammar:
//
//	varDecls -> "var" varDecl ("," varDecl)* ";"
func (par *Parser) varDeclarations() (StatementNode, error) {
	decls := make([]*VarStatementNode, 0, 1)

	decl, err := par.varDeclaration()
	if err != nil {
		return nil, err
	}
	decls = append(decls, decl)

	for par.match(lexer.COMMA_DELIM) {
		decl, err = par.varDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	if _, err := par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after var declaration"); err != nil {
		return nil, err
	}

	if len(decls) == 1 {
		return decls[0], nil
	}
	return &VarGroupStatementNode{Declarations: decls}, nil
}

// varDeclaration parses a single name with an optional initializer.
// The initializer sits at assignment precedence so a comma after it starts
// the next declaration of the group instead of being swallowed by the
// sequencing operator.
//
// Grammar:
//
//	varDecl -> IDENTIFIER ("=" assignment)?
func (par *Parser) varDeclaration() (*VarStatementNode, error) {
	name, err := par.consume(lexer.IDENTIFIER_ID, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		initializer, err = par.assignment()
		if err != nil {
			return nil, err
		}
	}

	return &VarStatementNode{Name: name, Initializer: initializer}, nil
}

// statement parses one non-declaration statement.
//
// Grammar:
//
//	statement -> forStmt | ifStmt | printStmt | whileStmt | block | exprStmt
func (par *Parser) statement() (StatementNode, error) {
	if par.match(lexer.FOR_KEY) {
		return par.forStatement()
	}
	if par.match(lexer.IF_KEY) {
		return par.ifStatement()
	}
	if par.match(lexer.PRINT_KEY) {
		return par.printStatement()
	}
	if par.match(lexer.WHILE_KEY) {
		return par.whileStatement()
	}
	if par.match(lexer.LEFT_BRACE) {
		return par.blockStatement()
	}
	return par.expressionStatement()
}

// printStatement parses the remainder of a print statement after the 'print'
// keyword has been consumed.
//
// Grammar:
//
//	printStmt -> "print" expression ";"
func (par *Parser) printStatement() (StatementNode, error) {
	keyword := par.previous()

	expr, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStatementNode{Keyword: keyword, Expr: expr}, nil
}

// expressionStatement parses an expression evaluated for its side effects.
//
// Grammar:
//
//	exprStmt -> expression ";"
func (par *Parser) expressionStatement() (StatementNode, error) {
	expr, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{Expr: expr}, nil
}

// blockStatement parses the statements of a braced block after the opening
// brace has been consumed. The body is a sequence of declarations, each with
// its own recovery point, so a syntax error inside a block does not abort the
// rest of the block.
//
// Grammar:
//
//	block -> "{" declaration* "}"
func (par *Parser) blockStatement() (StatementNode, error) {
	statements := make([]StatementNode, 0)

	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt := par.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if _, err := par.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &BlockStatementNode{Statements: statements}, nil
}

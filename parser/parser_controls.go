/*
File    : go-lox/parser/parser_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// ifStatement parses the remainder of an if statement after the 'if' keyword
// has been consumed. The else branch binds to the nearest if.
//
// Grammar:
//
//	ifStmt -> "if" "(" expression ")" statement ("else" statement)?
func (par *Parser) ifStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.LEFT_PAREN, "'(' expected after if."); err != nil {
		return nil, err
	}
	condition, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "')' expected after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := par.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch, err = par.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStatementNode{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

// whileStatement parses the remainder of a while statement after the 'while'
// keyword has been consumed.
//
// Grammar:
//
//	whileStmt -> "while" "(" expression ")" statement
func (par *Parser) whileStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.LEFT_PAREN, "'(' expected after while."); err != nil {
		return nil, err
	}
	condition, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "')' expected after while condition."); err != nil {
		return nil, err
	}

	body, err := par.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStatementNode{Condition: condition, Body: body}, nil
}

// forStatement parses the remainder of a for statement after the 'for'
// keyword has been consumed, and lowers it into a block + while tree:
//
//	for (init; cond; incr) body
//
// becomes the equivalent of
//
//	{ init; while (cond) { body; incr; } }
//
// An omitted init drops the outer block, an omitted cond becomes a literal
// true, and an omitted incr leaves the body alone. The evaluator never sees a
// for node.
//
// Grammar:
//
//	forStmt -> "for" "(" (varDecls | exprStmt | ";") expression? ";" expression? ")" statement
func (par *Parser) forStatement() (StatementNode, error) {
	forKeyword := par.previous()

	if _, err := par.consume(lexer.LEFT_PAREN, "'(' expected after 'for'."); err != nil {
		return nil, err
	}

	// Initializer clause: empty, a var declaration group, or an expression statement
	var initializer StatementNode
	var err error
	if par.match(lexer.SEMICOLON_DELIM) {
		initializer = nil
	} else if par.match(lexer.VAR_KEY) {
		initializer, err = par.varDeclarations()
		if err != nil {
			return nil, err
		}
	} else {
		initializer, err = par.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	// Condition clause: an omitted condition loops forever
	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		condition, err = par.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	// Increment clause, run after every iteration of the body
	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		increment, err = par.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "')' expected after 'for' condition."); err != nil {
		return nil, err
	}

	body, err := par.statement()
	if err != nil {
		return nil, err
	}

	// Lower to the while form, inside out
	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}

	if condition == nil {
		trueToken := lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", nil, forKeyword.Line, forKeyword.Column)
		condition = &LiteralExpressionNode{Token: trueToken, Value: &objects.Boolean{Value: true}}
	}
	body = &WhileStatementNode{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStatementNode{Statements: []StatementNode{initializer, body}}
	}

	return body, nil
}

/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// expression parses a full expression, which starts at the comma level, the
// lowest precedence in the grammar.
//
// Grammar:
//
//	expression -> comma
func (par *Parser) expression() (ExpressionNode, error) {
	return par.comma()
}

// comma parses the left-associative sequencing operator. Both operands are
// evaluated; the value of the whole expression is the right one.
//
// Grammar:
//
//	comma -> assignment ("," assignment)*
func (par *Parser) comma() (ExpressionNode, error) {
	expr, err := par.assignment()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.COMMA_DELIM) {
		operator := par.previous()
		right, err := par.assignment()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// assignment parses a right-associative assignment expression. The left-hand
// side is parsed first as an ordinary expression; only when an '=' follows do
// we check that it names a variable. An invalid target is reported but does
// not unwind: the right-hand side has been consumed and the left-hand side is
// returned as if no '=' were present, which keeps the parser moving without a
// resynchronization.
//
// Grammar:
//
//	assignment -> ternary ("=" expression)?
func (par *Parser) assignment() (ExpressionNode, error) {
	expr, err := par.ternary()
	if err != nil {
		return nil, err
	}

	if par.match(lexer.ASSIGN_OP) {
		equals := par.previous()
		value, err := par.expression()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*VariableExpressionNode); ok {
			return &AssignmentExpressionNode{Name: variable.Name, Value: value}, nil
		}

		// Report without throwing: no resynchronization needed
		par.Reporter.ReportParseError(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// ternary parses the conditional operator. Both the then and else arms recurse
// into ternary itself, making the operator right-associative on both sides:
// a ? b : c ? d : e parses as a ? b : (c ? d : e).
//
// Grammar:
//
//	ternary -> or ("?" ternary ":" ternary)?
func (par *Parser) ternary() (ExpressionNode, error) {
	expr, err := par.or()
	if err != nil {
		return nil, err
	}

	if par.match(lexer.QUESTION_OP) {
		operator := par.previous()
		thenArm, err := par.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := par.consume(lexer.COLON_DELIM, "Expect ':'"); err != nil {
			return nil, err
		}
		elseArm, err := par.ternary()
		if err != nil {
			return nil, err
		}
		return &TernaryExpressionNode{Operation: operator, Condition: expr, Then: thenArm, Else: elseArm}, nil
	}

	return expr, nil
}

// or parses the left-associative short-circuit or operator.
//
// Grammar:
//
//	or -> and ("or" and)*
func (par *Parser) or() (ExpressionNode, error) {
	expr, err := par.and()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.OR_KEY) {
		operator := par.previous()
		right, err := par.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// and parses the left-associative short-circuit and operator.
//
// Grammar:
//
//	and -> equality ("and" equality)*
func (par *Parser) and() (ExpressionNode, error) {
	expr, err := par.equality()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.AND_KEY) {
		operator := par.previous()
		right, err := par.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// equality parses the left-associative equality operators.
//
// Grammar:
//
//	equality -> comparison (("!=" | "==") comparison)*
func (par *Parser) equality() (ExpressionNode, error) {
	expr, err := par.comparison()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.NE_OP, lexer.EQ_OP) {
		operator := par.previous()
		right, err := par.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// comparison parses the left-associative ordering operators.
//
// Grammar:
//
//	comparison -> term ((">" | ">=" | "<" | "<=") term)*
func (par *Parser) comparison() (ExpressionNode, error) {
	expr, err := par.term()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP) {
		operator := par.previous()
		right, err := par.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// term parses the left-associative additive operators.
//
// Grammar:
//
//	term -> factor (("-" | "+") factor)*
func (par *Parser) term() (ExpressionNode, error) {
	expr, err := par.factor()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.MINUS_OP, lexer.PLUS_OP) {
		operator := par.previous()
		right, err := par.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// factor parses the left-associative multiplicative operators.
//
// Grammar:
//
//	factor -> unary (("/" | "*") unary)*
func (par *Parser) factor() (ExpressionNode, error) {
	expr, err := par.unary()
	if err != nil {
		return nil, err
	}

	for par.match(lexer.DIV_OP, lexer.MUL_OP) {
		operator := par.previous()
		right, err := par.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// unary parses the right-associative prefix operators by recursing into
// itself, so !!x and --x nest naturally.
//
// Grammar:
//
//	unary -> ("!" | "-") unary | primary
func (par *Parser) unary() (ExpressionNode, error) {
	if par.match(lexer.NOT_OP, lexer.MINUS_OP) {
		operator := par.previous()
		right, err := par.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{Operation: operator, Right: right}, nil
	}

	return par.primary()
}

// primary parses the atoms of the grammar: literals, variable reads, and
// parenthesized expressions. Anything else is a syntax error at the current
// token.
//
// Grammar:
//
//	primary -> "true" | "false" | "nil" | NUMBER | STRING | IDENTIFIER | "(" expression ")"
func (par *Parser) primary() (ExpressionNode, error) {
	switch {
	case par.match(lexer.TRUE_KEY):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: true}}, nil
	case par.match(lexer.FALSE_KEY):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: false}}, nil
	case par.match(lexer.NIL_LIT):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Nil{}}, nil
	case par.match(lexer.NUMBER_LIT):
		token := par.previous()
		return &LiteralExpressionNode{Token: token, Value: &objects.Number{Value: token.Value.(float64)}}, nil
	case par.match(lexer.STRING_LIT):
		token := par.previous()
		return &LiteralExpressionNode{Token: token, Value: &objects.String{Value: token.Value.(string)}}, nil
	case par.match(lexer.IDENTIFIER_ID):
		return &VariableExpressionNode{Name: par.previous()}, nil
	case par.match(lexer.LEFT_PAREN):
		expr, err := par.expression()
		if err != nil {
			return nil, err
		}
		if _, err := par.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpressionNode{Expr: expr}, nil
	}

	return nil, par.error(par.peek(), "Expect expression.")
}

/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// evalExpression is the expression dispatcher. It routes each expression
// variant to its handler and propagates runtime errors outward.
//
// The evaluation process is recursive - complex expressions are broken down
// into simpler sub-expressions that are evaluated in turn.
//
// Parameters:
//   - expr: The expression node to evaluate
//
// Returns:
//   - objects.LoxObject: The computed value
//   - error: The runtime error that aborted evaluation, if any
func (e *Evaluator) evalExpression(expr parser.ExpressionNode) (objects.LoxObject, error) {
	switch expr := expr.(type) {
	case *parser.LiteralExpressionNode:
		return expr.Value, nil
	case *parser.GroupingExpressionNode:
		return e.evalExpression(expr.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(expr)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(expr)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(expr)
	case *parser.TernaryExpressionNode:
		return e.evalTernaryExpression(expr)
	case *parser.VariableExpressionNode:
		return e.evalVariableExpression(expr)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(expr)
	default:
		return &objects.Nil{}, nil
	}
}

// evalUnaryExpression evaluates the operand, then dispatches on the operator:
// '-' negates a number (anything else is a runtime error), '!' returns the
// negated truthiness of the operand.
func (e *Evaluator) evalUnaryExpression(expr *parser.UnaryExpressionNode) (objects.LoxObject, error) {
	right, err := e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operation.Type {
	case lexer.MINUS_OP:
		number, ok := right.(*objects.Number)
		if !ok {
			return nil, NewRuntimeError(expr.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -number.Value}, nil
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}, nil
	}

	return &objects.Nil{}, nil
}

// evalBinaryExpression evaluates both operands left to right before
// dispatching on the operator.
//
// Operator rules:
//   - '-', '*', '/', '>', '>=', '<', '<=': both operands must be numbers.
//     Division performs no zero check; IEEE float semantics apply.
//   - '+': numeric addition when both operands are numbers; otherwise, when
//     either operand is a string, both are stringified and concatenated;
//     anything else is a runtime error.
//   - '==', '!=': structural equality, never an error.
//   - ',': the left operand runs for its side effects, the right one is the value.
func (e *Evaluator) evalBinaryExpression(expr *parser.BinaryExpressionNode) (objects.LoxObject, error) {
	left, err := e.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operation.Type {
	case lexer.COMMA_DELIM:
		return right, nil
	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}, nil
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}, nil
	case lexer.PLUS_OP:
		return e.evalPlus(expr.Operation, left, right)
	}

	// The remaining operators are numeric only
	leftNumber, leftOk := left.(*objects.Number)
	rightNumber, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return nil, NewRuntimeError(expr.Operation, "Operand must be a number.")
	}

	switch expr.Operation.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: leftNumber.Value - rightNumber.Value}, nil
	case lexer.MUL_OP:
		return &objects.Number{Value: leftNumber.Value * rightNumber.Value}, nil
	case lexer.DIV_OP:
		return &objects.Number{Value: leftNumber.Value / rightNumber.Value}, nil
	case lexer.GT_OP:
		return &objects.Boolean{Value: leftNumber.Value > rightNumber.Value}, nil
	case lexer.GE_OP:
		return &objects.Boolean{Value: leftNumber.Value >= rightNumber.Value}, nil
	case lexer.LT_OP:
		return &objects.Boolean{Value: leftNumber.Value < rightNumber.Value}, nil
	case lexer.LE_OP:
		return &objects.Boolean{Value: leftNumber.Value <= rightNumber.Value}, nil
	}

	return &objects.Nil{}, nil
}

// evalPlus implements the overloaded '+' operator.
// Two numbers add; when either operand is a string, both operands are
// coerced to their print form and concatenated; every other combination is
// a runtime error.
func (e *Evaluator) evalPlus(operator lexer.Token, left, right objects.LoxObject) (objects.LoxObject, error) {
	if leftNumber, ok := left.(*objects.Number); ok {
		if rightNumber, ok := right.(*objects.Number); ok {
			return &objects.Number{Value: leftNumber.Value + rightNumber.Value}, nil
		}
	}
	if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
		return &objects.String{Value: left.ToString() + right.ToString()}, nil
	}
	return nil, NewRuntimeError(operator, "Operands must be two numbers or two strings.")
}

// evalLogicalExpression implements the short-circuit operators. The left
// operand always runs; the right operand only runs when the left does not
// decide the result. The result is the deciding operand itself, not a
// coerced boolean, so expressions like `name or "default"` work.
func (e *Evaluator) evalLogicalExpression(expr *parser.LogicalExpressionNode) (objects.LoxObject, error) {
	left, err := e.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operation.Type == lexer.OR_KEY {
		if objects.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !objects.IsTruthy(left) {
			return left, nil
		}
	}

	return e.evalExpression(expr.Right)
}

// evalTernaryExpression evaluates the condition, then evaluates exactly one
// arm. The non-selected arm is never touched, so its side effects do not run.
func (e *Evaluator) evalTernaryExpression(expr *parser.TernaryExpressionNode) (objects.LoxObject, error) {
	condition, err := e.evalExpression(expr.Condition)
	if err != nil {
		return nil, err
	}

	if objects.IsTruthy(condition) {
		return e.evalExpression(expr.Then)
	}
	return e.evalExpression(expr.Else)
}

// evalVariableExpression resolves a variable read through the scope chain.
// Reading a name that exists nowhere in the chain is a runtime error
// attributed to the identifier token.
func (e *Evaluator) evalVariableExpression(expr *parser.VariableExpressionNode) (objects.LoxObject, error) {
	value, ok := e.Scp.LookUp(expr.Name.Lexeme)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme)
	}
	return value, nil
}

// evalAssignmentExpression evaluates the right-hand side and assigns it to
// an existing variable somewhere in the scope chain. The assigned value is
// also the expression's value, which is what makes chained assignment and
// assignment-in-condition work.
func (e *Evaluator) evalAssignmentExpression(expr *parser.AssignmentExpressionNode) (objects.LoxObject, error) {
	value, err := e.evalExpression(expr.Value)
	if err != nil {
		return nil, err
	}

	if _, ok := e.Scp.Assign(expr.Name.Lexeme, value); !ok {
		return nil, NewRuntimeError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme)
	}
	return value, nil
}

/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// execute is the statement dispatcher. It routes each statement variant to
// its handler and propagates the first runtime error up to Interpret.
//
// Statements conventionally evaluate to the nil object; an expression
// statement evaluates to its expression's value so the REPL can echo it.
//
// Parameters:
//   - stmt: The statement node to execute
//
// Returns:
//   - objects.LoxObject: The statement's result value
//   - error: The runtime error that aborted execution, if any
func (e *Evaluator) execute(stmt parser.StatementNode) (objects.LoxObject, error) {
	switch stmt := stmt.(type) {
	case *parser.ExpressionStatementNode:
		return e.evalExpression(stmt.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(stmt)
	case *parser.VarStatementNode:
		return e.evalVarStatement(stmt)
	case *parser.VarGroupStatementNode:
		return e.evalVarGroupStatement(stmt)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(stmt)
	case *parser.IfStatementNode:
		return e.evalIfStatement(stmt)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(stmt)
	default:
		return &objects.Nil{}, nil
	}
}

// evalPrintStatement evaluates the expression, stringifies the value, and
// writes it to the evaluator's writer with a trailing newline. The printed
// form is the value's ToString: numbers drop an integral ".0", strings print
// without quotes, nil prints as "nil".
func (e *Evaluator) evalPrintStatement(stmt *parser.PrintStatementNode) (objects.LoxObject, error) {
	value, err := e.evalExpression(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}, nil
}

// evalVarStatement binds a single declaration in the current scope.
// A missing initializer leaves the variable bound to nil. Redeclaring a name
// in the same scope is legal and replaces the prior binding.
func (e *Evaluator) evalVarStatement(stmt *parser.VarStatementNode) (objects.LoxObject, error) {
	var value objects.LoxObject = &objects.Nil{}

	if stmt.Initializer != nil {
		initialized, err := e.evalExpression(stmt.Initializer)
		if err != nil {
			return nil, err
		}
		value = initialized
	}

	e.Scp.Bind(stmt.Name.Lexeme, value)
	return &objects.Nil{}, nil
}

// evalVarGroupStatement processes the declarations of a comma group in
// source order, all in the current scope, so later initializers can read
// the earlier names.
func (e *Evaluator) evalVarGroupStatement(stmt *parser.VarGroupStatementNode) (objects.LoxObject, error) {
	for _, decl := range stmt.Declarations {
		if _, err := e.evalVarStatement(decl); err != nil {
			return nil, err
		}
	}
	return &objects.Nil{}, nil
}

// evalBlockStatement runs the block body in a fresh child scope.
// The previous scope is restored on every exit path, including when a
// runtime error unwinds the block, so a failed statement cannot leak an
// inner scope into subsequent evaluation.
func (e *Evaluator) evalBlockStatement(stmt *parser.BlockStatementNode) (objects.LoxObject, error) {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	defer func() {
		e.Scp = previous
	}()

	for _, inner := range stmt.Statements {
		if inner == nil {
			continue
		}
		if _, err := e.execute(inner); err != nil {
			return nil, err
		}
	}
	return &objects.Nil{}, nil
}

// evalIfStatement evaluates the condition and executes the branch its
// truthiness selects. The other branch is not touched.
func (e *Evaluator) evalIfStatement(stmt *parser.IfStatementNode) (objects.LoxObject, error) {
	condition, err := e.evalExpression(stmt.Condition)
	if err != nil {
		return nil, err
	}

	if objects.IsTruthy(condition) {
		if _, err := e.execute(stmt.ThenBranch); err != nil {
			return nil, err
		}
	} else if stmt.ElseBranch != nil {
		if _, err := e.execute(stmt.ElseBranch); err != nil {
			return nil, err
		}
	}
	return &objects.Nil{}, nil
}

// evalWhileStatement re-evaluates the condition before every iteration and
// runs the body while it stays truthy. The language has no break or
// continue, so the only exits are a falsy condition or a runtime error.
func (e *Evaluator) evalWhileStatement(stmt *parser.WhileStatementNode) (objects.LoxObject, error) {
	for {
		condition, err := e.evalExpression(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !objects.IsTruthy(condition) {
			break
		}
		if _, err := e.execute(stmt.Body); err != nil {
			return nil, err
		}
	}
	return &objects.Nil{}, nil
}

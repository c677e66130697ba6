/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or inspection.
// Evaluation does not go through this interface; the evaluator dispatches on the node variant
// directly because it needs return values and error propagation.
type NodeVisitor interface {
	VisitRootNode(node *RootNode) // Entry point for visiting the entire program

	// Literal and primary expression visitors
	VisitLiteralExpressionNode(node *LiteralExpressionNode)   // Literals: 42, "hi", true, nil
	VisitGroupingExpressionNode(node *GroupingExpressionNode) // Parenthesized expressions: (expr)
	VisitVariableExpressionNode(node *VariableExpressionNode) // Variable reads: x, myVar

	// Operator expression visitors
	VisitUnaryExpressionNode(node *UnaryExpressionNode)           // Unary operations: -, !
	VisitBinaryExpressionNode(node *BinaryExpressionNode)         // Binary operations: +, -, *, /, comparisons, comma
	VisitLogicalExpressionNode(node *LogicalExpressionNode)       // Short-circuit operations: and, or
	VisitTernaryExpressionNode(node *TernaryExpressionNode)       // Conditional expressions: cond ? a : b
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode) // Assignments: x = 10

	// Statement visitors
	VisitExpressionStatementNode(node *ExpressionStatementNode) // Expression statements: expr;
	VisitPrintStatementNode(node *PrintStatementNode)           // Print statements: print expr;
	VisitVarStatementNode(node *VarStatementNode)               // Single declarations: var x = 10;
	VisitVarGroupStatementNode(node *VarGroupStatementNode)     // Declaration groups: var a = 1, b = 2;
	VisitBlockStatementNode(node *BlockStatementNode)           // Code blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node *IfStatementNode)                 // Conditionals: if (cond) ... else ...
	VisitWhileStatementNode(node *WhileStatementNode)           // While loops: while (cond) ...
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker distinguishing statements from other nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker distinguishing expressions from other nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program. Declarations that failed to
// parse are dropped during recovery, so every entry here is well-formed.
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg PrintVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(root)
}

// LiteralExpressionNode: represents a literal value in the source
// Example: 42, 1.5, "hello", true, false, nil
type LiteralExpressionNode struct {
	Token lexer.Token       // The literal token with its source position
	Value objects.LoxObject // The runtime value this literal evaluates to
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

// LiteralExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *LiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralExpressionNode(node)
}

// LiteralExpressionNode.Expression(): marks this node as an expression
func (node *LiteralExpressionNode) Expression() {

}

// GroupingExpressionNode: represents a parenthesized expression
// Example: (1 + 2)
type GroupingExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// GroupingExpressionNode.Literal(): string representation of the node
func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupingExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *GroupingExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupingExpressionNode(node)
}

// GroupingExpressionNode.Expression(): marks this node as an expression
func (node *GroupingExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a unary operation with one operand
// Example: -x, !done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (- or !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Lexeme + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

// UnaryExpressionNode.Expression(): marks this node as an expression
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary operation expression with two operands.
// The comma operator is a binary node too: it evaluates both sides and yields the right one.
// Example: 2 + 3, x * y, a < b, a, b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+, -, *, /, comparisons, ==, !=, ,)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Lexeme + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

// BinaryExpressionNode.Expression(): marks this node as an expression
func (node *BinaryExpressionNode) Expression() {

}

// LogicalExpressionNode: represents a short-circuiting logical operation.
// Kept separate from BinaryExpressionNode because the right operand must not
// be evaluated when the left one decides the result.
// Example: a and b, x or y
type LogicalExpressionNode struct {
	Operation lexer.Token    // The logical operator token (and, or)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Lexeme + " " + node.Right.Literal()
}

// LogicalExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(node)
}

// LogicalExpressionNode.Expression(): marks this node as an expression
func (node *LogicalExpressionNode) Expression() {

}

// TernaryExpressionNode: represents a conditional expression with three operands.
// The ternary operator is right-associative in both arms, so
// a ? b : c ? d : e parses as a ? b : (c ? d : e).
// Example: x > 0 ? "pos" : "neg"
type TernaryExpressionNode struct {
	Operation lexer.Token    // The '?' token, used to attribute runtime errors
	Condition ExpressionNode // The condition deciding which arm runs
	Then      ExpressionNode // Evaluated when the condition is truthy
	Else      ExpressionNode // Evaluated when the condition is falsy
}

// TernaryExpressionNode.Literal(): string representation of the node
func (node *TernaryExpressionNode) Literal() string {
	return node.Condition.Literal() + "?" + node.Then.Literal() + ":" + node.Else.Literal()
}

// TernaryExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *TernaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitTernaryExpressionNode(node)
}

// TernaryExpressionNode.Expression(): marks this node as an expression
func (node *TernaryExpressionNode) Expression() {

}

// VariableExpressionNode: represents a variable read.
// The parser only ever builds this from an IDENTIFIER token.
// Example: x, counter
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token naming the variable
}

// VariableExpressionNode.Literal(): string representation of the node
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

// VariableExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *VariableExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableExpressionNode(node)
}

// VariableExpressionNode.Expression(): marks this node as an expression
func (node *VariableExpressionNode) Expression() {

}

// AssignmentExpressionNode: represents an assignment to an existing variable.
// Assignment is an expression: its value is the assigned value, which is what
// makes chained assignment (a = b = c) work.
// Example: x = 10
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The identifier token naming the assignment target
	Value ExpressionNode // The expression whose value is assigned
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Lexeme + "=" + node.Value.Literal()
}

// AssignmentExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

// AssignmentExpressionNode.Expression(): marks this node as an expression
func (node *AssignmentExpressionNode) Expression() {

}

// ExpressionStatementNode: represents an expression evaluated for its side effects.
// The resulting value is discarded.
// Example: x = x + 1;
type ExpressionStatementNode struct {
	Expr ExpressionNode // The expression to evaluate
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

// ExpressionStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

// ExpressionStatementNode.Statement(): marks this node as a statement
func (node *ExpressionStatementNode) Statement() {

}

// PrintStatementNode: represents a print statement.
// The expression is evaluated, stringified, and written to stdout with a
// trailing newline.
// Example: print 1 + 2;
type PrintStatementNode struct {
	Keyword lexer.Token    // The 'print' token, kept for error attribution
	Expr    ExpressionNode // The expression whose value is printed
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

// PrintStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(node)
}

// PrintStatementNode.Statement(): marks this node as a statement
func (node *PrintStatementNode) Statement() {

}

// VarStatementNode: represents a single variable declaration.
// A missing initializer leaves the variable bound to nil.
// Example: var x = 10;   var y;
type VarStatementNode struct {
	Name        lexer.Token    // The identifier token naming the variable
	Initializer ExpressionNode // The initializer expression, or nil when absent
}

// VarStatementNode.Literal(): string representation of the node
func (node *VarStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Lexeme + ";"
	}
	return "var " + node.Name.Lexeme + "=" + node.Initializer.Literal() + ";"
}

// VarStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *VarStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarStatementNode(node)
}

// VarStatementNode.Statement(): marks this node as a statement
func (node *VarStatementNode) Statement() {

}

// VarGroupStatementNode: represents a comma-separated declaration group that
// shares one terminating semicolon. The components are plain VarStatementNodes
// processed in order in the current scope.
// Example: var a = 1, b = 2;
type VarGroupStatementNode struct {
	Declarations []*VarStatementNode // The individual declarations, in source order
}

// VarGroupStatementNode.Literal(): string representation of the node
func (node *VarGroupStatementNode) Literal() string {
	res := ""
	for _, decl := range node.Declarations {
		res += decl.Literal()
	}
	return res
}

// VarGroupStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *VarGroupStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarGroupStatementNode(node)
}

// VarGroupStatementNode.Statement(): marks this node as a statement
func (node *VarGroupStatementNode) Statement() {

}

// BlockStatementNode: represents a braced block of statements.
// The evaluator runs the body in a fresh child scope that is released when
// the block exits, on both the normal and the error path.
// Example: { var x = 1; print x; }
type BlockStatementNode struct {
	Statements []StatementNode // The statements in the block body, in order
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	res := "{"
	for _, stmt := range node.Statements {
		res += stmt.Literal()
	}
	return res + "}"
}

// BlockStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

// BlockStatementNode.Statement(): marks this node as a statement
func (node *BlockStatementNode) Statement() {

}

// IfStatementNode: represents a conditional statement with an optional else branch.
// Example: if (x > 0) print x; else print -x;
type IfStatementNode struct {
	Condition  ExpressionNode // The condition deciding which branch runs
	ThenBranch StatementNode  // Executed when the condition is truthy
	ElseBranch StatementNode  // Executed when the condition is falsy, or nil when absent
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if(" + node.Condition.Literal() + ")" + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += "else " + node.ElseBranch.Literal()
	}
	return res
}

// IfStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

// IfStatementNode.Statement(): marks this node as a statement
func (node *IfStatementNode) Statement() {

}

// WhileStatementNode: represents a while loop.
// The for statement also lowers to this node at parse time.
// Example: while (i < 3) i = i + 1;
type WhileStatementNode struct {
	Condition ExpressionNode // The loop condition, checked before every iteration
	Body      StatementNode  // The loop body
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while(" + node.Condition.Literal() + ")" + node.Body.Literal()
}

// WhileStatementNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(node)
}

// WhileStatementNode.Statement(): marks this node as a statement
func (node *WhileStatementNode) Statement() {

}

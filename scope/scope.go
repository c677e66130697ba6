/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping.
// Each scope maintains its own variable bindings and can access variables from
// parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Block scoping: each block gets its own scope for the duration of its body
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup and assignment, implementing the standard lexical scoping rules found
// in most programming languages. The chain is acyclic: a child references its
// parent, a parent never references its children.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	blockScope := NewScope(globalScope)    // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that variables in inner scopes shadow those in
// outer scopes and that the most recent binding is always returned.
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.LoxObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope.
//
// This method adds or updates a variable binding in the current scope only,
// without affecting parent scopes. Redeclaring a name that already exists in
// the current scope is legal and replaces the prior binding.
//
// Important behaviors:
// - Only touches the current scope, not parent scopes (use Assign for that)
// - Does not prevent shadowing variables from parent scopes
// - Used for variable declarations (var)
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Returns:
//   - string: The variable name (echoed back)
//   - bool: true if the variable already existed in the current scope, false if new
//
// Example:
//
//	scope.Bind("x", &objects.Number{Value: 10})  // New binding, returns ("x", false)
//	scope.Bind("x", &objects.Number{Value: 20})  // Redeclaration, returns ("x", true)
func (s *Scope) Bind(varName string, obj objects.LoxObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}

// Assign updates an existing variable in the scope where it was originally defined.
//
// Unlike Bind (which creates new bindings in the current scope), Assign:
// 1. Searches for the variable in the current scope
// 2. If found, updates it in place and returns this scope
// 3. If not found, recursively searches parent scopes
// 4. Updates the variable in the scope where it was originally defined
//
// This ensures that assignments from an inner block affect the original
// binding in the enclosing scope rather than creating a new one. Assigning to
// a name that exists nowhere in the chain fails; the caller turns that into
// an undefined-variable runtime error carrying the offending token.
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to assign to
//   - obj: The new value to assign
//
// Returns:
//   - *Scope: The scope where the variable was found and updated (nil if not found)
//   - bool: true if the variable was found and updated, false otherwise
//
// Example:
//
//	var x = 10;
//	{ x = 20; }   // Assign finds and updates x in the outer scope
func (s *Scope) Assign(varName string, obj objects.LoxObject) (*Scope, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return nil, false
}

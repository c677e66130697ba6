/*
File    : go-lox/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/objects"
)

// TestScope_BindAndLookUp verifies local bindings and chain traversal
func TestScope_BindAndLookUp(t *testing.T) {

	global := NewScope(nil)
	global.Bind("a", &objects.Number{Value: 1})

	// local lookup
	value, ok := global.LookUp("a")
	assert.True(t, ok)
	assert.Equal(t, &objects.Number{Value: 1}, value)

	// missing name
	_, ok = global.LookUp("missing")
	assert.False(t, ok)

	// child sees parent bindings
	child := NewScope(global)
	value, ok = child.LookUp("a")
	assert.True(t, ok)
	assert.Equal(t, &objects.Number{Value: 1}, value)

	// grandchild too
	grandchild := NewScope(child)
	_, ok = grandchild.LookUp("a")
	assert.True(t, ok)
}

// TestScope_Rebind verifies that redeclaring a name in the same scope is
// legal and replaces the binding
func TestScope_Rebind(t *testing.T) {

	s := NewScope(nil)
	_, had := s.Bind("a", &objects.Number{Value: 1})
	assert.False(t, had)

	_, had = s.Bind("a", &objects.String{Value: "now a string"})
	assert.True(t, had)

	value, ok := s.LookUp("a")
	assert.True(t, ok)
	assert.Equal(t, objects.StringType, value.GetType())
}

// TestScope_Shadowing verifies that an inner binding hides the outer one
// without touching it
func TestScope_Shadowing(t *testing.T) {

	outer := NewScope(nil)
	outer.Bind("a", &objects.String{Value: "hi"})

	inner := NewScope(outer)
	inner.Bind("a", &objects.String{Value: "bye"})

	value, _ := inner.LookUp("a")
	assert.Equal(t, "bye", value.ToString())

	// the outer binding is untouched
	value, _ = outer.LookUp("a")
	assert.Equal(t, "hi", value.ToString())
}

// TestScope_Assign verifies that assignment updates the defining scope
func TestScope_Assign(t *testing.T) {

	outer := NewScope(nil)
	outer.Bind("a", &objects.Number{Value: 1})
	inner := NewScope(outer)

	// assigning through the child updates the binding where it was defined
	where, ok := inner.Assign("a", &objects.Number{Value: 2})
	assert.True(t, ok)
	assert.Same(t, outer, where)

	value, _ := outer.LookUp("a")
	assert.Equal(t, &objects.Number{Value: 2}, value)

	// a shadowed name is updated in the inner scope only
	inner.Bind("a", &objects.Number{Value: 10})
	where, ok = inner.Assign("a", &objects.Number{Value: 11})
	assert.True(t, ok)
	assert.Same(t, inner, where)
	value, _ = outer.LookUp("a")
	assert.Equal(t, &objects.Number{Value: 2}, value)
}

// TestScope_AssignUndefined verifies that assigning a name that exists
// nowhere in the chain fails
func TestScope_AssignUndefined(t *testing.T) {

	outer := NewScope(nil)
	inner := NewScope(outer)

	where, ok := inner.Assign("ghost", &objects.Nil{})
	assert.False(t, ok)
	assert.Nil(t, where)
}

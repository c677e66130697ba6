/*
File    : go-lox/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjects_NumberToString verifies the print form of numbers:
// integral values drop the fractional part, others keep it
func TestObjects_NumberToString(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1, "1"},
		{3, "3"},
		{0, "0"},
		{-2, "-2"},
		{1.5, "1.5"},
		{0.125, "0.125"},
		{-0.5, "-0.5"},
		{100, "100"},
	}

	for _, tt := range tests {
		number := &Number{Value: tt.value}
		assert.Equal(t, tt.expected, number.ToString())
	}
}

// TestObjects_ToString verifies the print form of the other variants
func TestObjects_ToString(t *testing.T) {

	assert.Equal(t, "nil", (&Nil{}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "false", (&Boolean{Value: false}).ToString())
	assert.Equal(t, "hello", (&String{Value: "hello"}).ToString())
	assert.Equal(t, "", (&String{Value: ""}).ToString())
}

// TestObjects_Truthiness verifies that only nil and false are falsy
func TestObjects_Truthiness(t *testing.T) {

	assert.False(t, IsTruthy(&Nil{}))
	assert.False(t, IsTruthy(&Boolean{Value: false}))

	assert.True(t, IsTruthy(&Boolean{Value: true}))
	assert.True(t, IsTruthy(&Number{Value: 0}))
	assert.True(t, IsTruthy(&Number{Value: math.NaN()}))
	assert.True(t, IsTruthy(&String{Value: ""}))
	assert.True(t, IsTruthy(&String{Value: "x"}))
}

// TestObjects_Equality verifies structural equality across the variants
func TestObjects_Equality(t *testing.T) {

	// two nils are equal
	assert.True(t, IsEqual(&Nil{}, &Nil{}))

	// nil never equals anything else
	assert.False(t, IsEqual(&Nil{}, &Boolean{Value: false}))
	assert.False(t, IsEqual(&Nil{}, &Number{Value: 0}))

	// different variants are never equal
	assert.False(t, IsEqual(&Number{Value: 1}, &String{Value: "1"}))
	assert.False(t, IsEqual(&Boolean{Value: true}, &Number{Value: 1}))

	// same variants compare by value
	assert.True(t, IsEqual(&Number{Value: 2}, &Number{Value: 2}))
	assert.False(t, IsEqual(&Number{Value: 2}, &Number{Value: 3}))
	assert.True(t, IsEqual(&String{Value: "a"}, &String{Value: "a"}))
	assert.False(t, IsEqual(&String{Value: "a"}, &String{Value: "b"}))
	assert.True(t, IsEqual(&Boolean{Value: false}, &Boolean{Value: false}))

	// NaN follows the host float semantics
	assert.False(t, IsEqual(&Number{Value: math.NaN()}, &Number{Value: math.NaN()}))
}

/*
File    : go-lox/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the core data types and interfaces for the Go-Lox language.
// It provides implementations for the four runtime value variants (numbers, strings,
// booleans, nil). All types implement the LoxObject interface, which allows for type
// checking, string representation, and object inspection. The package also carries
// the language-level notions of truthiness and equality, which the evaluator and
// every operator dispatch on.
package objects

import (
	"fmt" // fmt is used for string formatting in ToString and ToObject methods
	"strings"
)

// LoxType represents the type of a Go-Lox object as a string constant.
// These constants are used to identify the type of objects in the language,
// enabling type checking and operator dispatch across the four value variants.
type LoxType string

const (
	// NumberType represents 64-bit floating-point values
	NumberType LoxType = "number"
	// StringType represents string values
	StringType LoxType = "string"
	// BooleanType represents boolean (true/false) values
	BooleanType LoxType = "bool"
	// NilType represents the absent-value sentinel
	NilType LoxType = "nil"
)

// LoxObject is the core interface that all Go-Lox runtime values implement.
// It provides methods for type identification, string representation for display,
// and object inspection for debugging purposes.
type LoxObject interface {
	// GetType returns the LoxType of the object, used for type checking
	GetType() LoxType
	// ToString returns a human-readable string representation of the object's value.
	// This is the exact form produced by the print statement and by string
	// coercion in the + operator.
	ToString() string
	// ToObject returns a detailed string representation including type information,
	// useful for debugging and object inspection
	ToObject() string
}

// Number represents a 64-bit floating-point value in Go-Lox.
// Every numeric literal and every arithmetic result is a Number; the language
// has no separate integer type.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number object
func (n *Number) GetType() LoxType {
	return NumberType
}

// ToString returns the shortest string representation of the number.
// Integral values print without a fractional part, so 1.0 prints as "1"
// while 1.5 prints as "1.5".
func (n *Number) ToString() string {
	text := fmt.Sprintf("%v", n.Value)
	return strings.TrimSuffix(text, ".0")
}

// ToObject returns a detailed representation including type info (e.g., "<number(1.5)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in Go-Lox.
// It wraps a Go string and provides methods for type identification and string conversion.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() LoxType {
	return StringType
}

// ToString returns the string value itself, without quotes (e.g., "hello")
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g., "<string(hello)>")
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Boolean represents a boolean value in Go-Lox.
// It wraps a Go bool and provides methods for type identification and string conversion.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() LoxType {
	return BooleanType
}

// ToString returns the string representation of the boolean value ("true" or "false")
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Nil represents the absent-value sentinel in Go-Lox.
// A declared-but-uninitialized variable holds Nil, and nil is a literal in
// the language.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() LoxType {
	return NilType
}

// ToString returns "nil"
func (n *Nil) ToString() string {
	return "nil"
}

// ToObject returns a detailed representation including type info ("<nil>")
func (n *Nil) ToObject() string {
	return "<nil>"
}

// IsTruthy reports how a value behaves in a boolean context.
// Nil and false are falsy; every other value is truthy, including 0, NaN and
// the empty string.
func IsTruthy(obj LoxObject) bool {
	switch obj := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return obj.Value
	default:
		return true
	}
}

// IsEqual implements structural equality across the four value variants.
// Two nils are equal; values of different variants are never equal; numbers,
// strings and booleans compare by value. NaN inherits Go's float64 equality,
// so NaN != NaN.
func IsEqual(left, right LoxObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}
	switch left := left.(type) {
	case *Nil:
		return true
	case *Number:
		return left.Value == right.(*Number).Value
	case *String:
		return left.Value == right.(*String).Value
	case *Boolean:
		return left.Value == right.(*Boolean).Value
	default:
		return false
	}
}

// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=BinaryOperator,UnaryOperator -linecomment -output=operators_string.go
//go:generate go tool stringer -type=FamilyKind,SimpleOperator,ComparisonOperator,ShortCircuitOperator -output=families_string.go

package luacode

import (
	"fmt"

	"luaops.dev/pkg/internal/lualex"
)

// BinaryOperator is an enumeration of the binary operators
// that can appear in a Lua expression.
// The zero value is not a valid operator.
type BinaryOperator uint8

// Binary operators in the order they are listed in the Lua manual.
const (
	BinaryAdd           BinaryOperator = 1 + iota // +
	BinarySubtract                                // -
	BinaryMultiply                                // *
	BinaryModulo                                  // %
	BinaryPower                                   // ^
	BinaryDivide                                  // /
	BinaryIntegerDivide                           // //
	BinaryBitwiseAnd                              // &
	BinaryBitwiseOr                               // |
	BinaryBitwiseXOR                              // ~
	BinaryShiftLeft                               // <<
	BinaryShiftRight                              // >>
	BinaryConcat                                  // ..
	BinaryNotEqual                                // ~=
	BinaryEqual                                   // ==
	BinaryLess                                    // <
	BinaryLessEqual                               // <=
	BinaryGreater                                 // >
	BinaryGreaterEqual                            // >=
	BinaryAnd                                     // and
	BinaryOr                                      // or

	numBinaryOperators = iota
)

// IsValid reports whether op is one of the defined binary operators.
func (op BinaryOperator) IsValid() bool {
	return 0 < op && op <= numBinaryOperators
}

// UnaryOperator is an enumeration of the prefix operators
// that can appear in a Lua expression.
// The zero value is not a valid operator.
type UnaryOperator uint8

// Unary operators.
const (
	Not        UnaryOperator = 1 + iota // not
	Minus                               // -
	BitwiseNot                          // ~
	Length                              // #

	numUnaryOperators = iota
)

// IsValid reports whether op is one of the defined unary operators.
// Every valid unary operator belongs to the single unary family.
func (op UnaryOperator) IsValid() bool {
	return 0 < op && op <= numUnaryOperators
}

// SimpleOperator is the subset of binary operators
// that compile to a single instruction producing a value in a register.
type SimpleOperator uint8

// Simple operators.
const (
	Add SimpleOperator = 1 + iota
	Subtract
	Multiply
	Modulo
	Power
	Divide
	IntegerDivide
	BitwiseAnd
	BitwiseOr
	BitwiseXOR
	ShiftLeft
	ShiftRight

	numSimpleOperators = iota
)

// IsValid reports whether op is one of the defined simple operators.
func (op SimpleOperator) IsValid() bool {
	return 0 < op && op <= numSimpleOperators
}

// IsIntegral reports whether the operator only operates on integral values.
func (op SimpleOperator) IsIntegral() bool {
	return BitwiseAnd <= op && op <= ShiftRight
}

// BinaryOperator returns the surface operator for op.
func (op SimpleOperator) BinaryOperator() BinaryOperator {
	if !op.IsValid() {
		return 0
	}
	return BinaryAdd + BinaryOperator(op-Add)
}

// ComparisonOperator is the subset of binary operators
// that compile to a conditional test instruction.
type ComparisonOperator uint8

// Comparison operators.
const (
	NotEqual ComparisonOperator = 1 + iota
	Equal
	Less
	LessEqual
	Greater
	GreaterEqual

	numComparisonOperators = iota
)

// IsValid reports whether op is one of the defined comparison operators.
func (op ComparisonOperator) IsValid() bool {
	return 0 < op && op <= numComparisonOperators
}

// BinaryOperator returns the surface operator for op.
func (op ComparisonOperator) BinaryOperator() BinaryOperator {
	if !op.IsValid() {
		return 0
	}
	return BinaryNotEqual + BinaryOperator(op-NotEqual)
}

// ShortCircuitOperator is the subset of binary operators
// whose right operand is only evaluated conditionally.
type ShortCircuitOperator uint8

// Short-circuit operators.
const (
	And ShortCircuitOperator = 1 + iota
	Or

	numShortCircuitOperators = iota
)

// IsValid reports whether op is one of the defined short-circuit operators.
func (op ShortCircuitOperator) IsValid() bool {
	return 0 < op && op <= numShortCircuitOperators
}

// FamilyKind is an enumeration of the instruction-selection families
// that binary operators are divided into.
type FamilyKind uint8

// Operator families.
const (
	// SimpleFamily operators are compiled by looking up
	// their [SimpleEntry] in a [Tables].
	SimpleFamily FamilyKind = 1 + iota
	// ComparisonFamily operators are compiled by looking up
	// their [ComparisonEntry] in a [Tables].
	ComparisonFamily
	// ShortCircuitFamily operators are compiled as conditional jumps.
	ShortCircuitFamily
	// ConcatFamily is the string concatenation operator,
	// which is compiled to a variable-arity instruction.
	ConcatFamily
)

// Family is the result of [Categorize]:
// an operator family and the operator's identity within that family.
// The zero value is not a valid family.
type Family struct {
	kind FamilyKind
	op   uint8
}

// Kind returns the family the operator belongs to.
func (f Family) Kind() FamilyKind {
	return f.kind
}

// Simple returns the operator if f is a [SimpleFamily].
func (f Family) Simple() (_ SimpleOperator, ok bool) {
	if f.kind != SimpleFamily {
		return 0, false
	}
	return SimpleOperator(f.op), true
}

// Comparison returns the operator if f is a [ComparisonFamily].
func (f Family) Comparison() (_ ComparisonOperator, ok bool) {
	if f.kind != ComparisonFamily {
		return 0, false
	}
	return ComparisonOperator(f.op), true
}

// ShortCircuit returns the operator if f is a [ShortCircuitFamily].
func (f Family) ShortCircuit() (_ ShortCircuitOperator, ok bool) {
	if f.kind != ShortCircuitFamily {
		return 0, false
	}
	return ShortCircuitOperator(f.op), true
}

// String formats the family like "Simple(Add)" or "Concat".
func (f Family) String() string {
	switch f.kind {
	case SimpleFamily:
		return fmt.Sprintf("Simple(%v)", SimpleOperator(f.op))
	case ComparisonFamily:
		return fmt.Sprintf("Comparison(%v)", ComparisonOperator(f.op))
	case ShortCircuitFamily:
		return fmt.Sprintf("ShortCircuit(%v)", ShortCircuitOperator(f.op))
	case ConcatFamily:
		return "Concat"
	default:
		return "Family(invalid)"
	}
}

// Categorize returns the instruction-selection family of a binary operator.
// The result depends only on op.
// Categorize panics if op is not a valid [BinaryOperator].
func Categorize(op BinaryOperator) Family {
	switch {
	case BinaryAdd <= op && op <= BinaryShiftRight:
		return Family{kind: SimpleFamily, op: uint8(Add + SimpleOperator(op-BinaryAdd))}
	case op == BinaryConcat:
		return Family{kind: ConcatFamily}
	case BinaryNotEqual <= op && op <= BinaryGreaterEqual:
		return Family{kind: ComparisonFamily, op: uint8(NotEqual + ComparisonOperator(op-BinaryNotEqual))}
	case op == BinaryAnd:
		return Family{kind: ShortCircuitFamily, op: uint8(And)}
	case op == BinaryOr:
		return Family{kind: ShortCircuitFamily, op: uint8(Or)}
	default:
		panic(fmt.Sprintf("luacode.Categorize: invalid operator %v", op))
	}
}

// ParseBinaryOperator returns the binary operator
// written as s in Lua source (for example "+" or "and").
func ParseBinaryOperator(s string) (_ BinaryOperator, ok bool) {
	for op := BinaryOperator(1); op <= numBinaryOperators; op++ {
		if op.String() == s {
			return op, true
		}
	}
	return 0, false
}

// ParseUnaryOperator returns the unary operator
// written as s in Lua source (for example "not" or "#").
func ParseUnaryOperator(s string) (_ UnaryOperator, ok bool) {
	for op := UnaryOperator(1); op <= numUnaryOperators; op++ {
		if op.String() == s {
			return op, true
		}
	}
	return 0, false
}

func toUnaryOperator(tk lualex.TokenKind) (_ UnaryOperator, ok bool) {
	switch tk {
	case lualex.NotToken:
		return Not, true
	case lualex.SubToken:
		return Minus, true
	case lualex.BitXorToken:
		return BitwiseNot, true
	case lualex.LenToken:
		return Length, true
	default:
		return 0, false
	}
}

func toBinaryOperator(tk lualex.TokenKind) (_ BinaryOperator, ok bool) {
	switch tk {
	case lualex.AddToken:
		return BinaryAdd, true
	case lualex.SubToken:
		return BinarySubtract, true
	case lualex.MulToken:
		return BinaryMultiply, true
	case lualex.ModToken:
		return BinaryModulo, true
	case lualex.PowToken:
		return BinaryPower, true
	case lualex.DivToken:
		return BinaryDivide, true
	case lualex.IntDivToken:
		return BinaryIntegerDivide, true

	case lualex.BitAndToken:
		return BinaryBitwiseAnd, true
	case lualex.BitOrToken:
		return BinaryBitwiseOr, true
	case lualex.BitXorToken:
		return BinaryBitwiseXOR, true
	case lualex.LShiftToken:
		return BinaryShiftLeft, true
	case lualex.RShiftToken:
		return BinaryShiftRight, true

	case lualex.ConcatToken:
		return BinaryConcat, true

	case lualex.NotEqualToken:
		return BinaryNotEqual, true
	case lualex.EqualToken:
		return BinaryEqual, true
	case lualex.LessToken:
		return BinaryLess, true
	case lualex.LessEqualToken:
		return BinaryLessEqual, true
	case lualex.GreaterToken:
		return BinaryGreater, true
	case lualex.GreaterEqualToken:
		return BinaryGreaterEqual, true

	case lualex.AndToken:
		return BinaryAnd, true
	case lualex.OrToken:
		return BinaryOr, true

	default:
		return 0, false
	}
}

// operatorPrecedence is the precedence table for [BinaryOperator].
//
// Equivalent to `priority` in upstream Lua.
var operatorPrecedence = [...]struct {
	left  uint8
	right uint8
}{
	BinaryAdd:           {10, 10},
	BinarySubtract:      {10, 10},
	BinaryMultiply:      {11, 11},
	BinaryModulo:        {11, 11},
	BinaryPower:         {14, 13}, // right associative
	BinaryDivide:        {11, 11},
	BinaryIntegerDivide: {11, 11},
	BinaryBitwiseAnd:    {6, 6},
	BinaryBitwiseOr:     {4, 4},
	BinaryBitwiseXOR:    {5, 5},
	BinaryShiftLeft:     {7, 7},
	BinaryShiftRight:    {7, 7},
	BinaryConcat:        {9, 8}, // right associative
	BinaryNotEqual:      {3, 3},
	BinaryEqual:         {3, 3},
	BinaryLess:          {3, 3},
	BinaryLessEqual:     {3, 3},
	BinaryGreater:       {3, 3},
	BinaryGreaterEqual:  {3, 3},
	BinaryAnd:           {2, 2},
	BinaryOr:            {1, 1},
}

const unaryPrecedence = 12

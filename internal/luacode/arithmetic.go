// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Runtime operator errors.
var (
	// ErrDivideByZero is returned by [Arithmetic]
	// when an integer floor division by zero occurs.
	ErrDivideByZero = errors.New("attempt to perform 'n//0'")
	// ErrModuloByZero is returned by [Arithmetic]
	// when an integer modulo by zero occurs.
	ErrModuloByZero = errors.New("attempt to perform 'n%0'")
	// ErrNotNumber is returned by [Arithmetic] and [Unary]
	// when an operand is not a number.
	ErrNotNumber = errors.New("arithmetic on non-number")
	// ErrNotInteger is returned by [Arithmetic] and [Unary]
	// when performing integer-only arithmetic
	// and an operand is a number but not an integer.
	ErrNotInteger = errors.New("number has no integer representation")
	// ErrNotComparable is returned by [Compare]
	// when the operands of an order comparison
	// are not both numbers or both strings.
	ErrNotComparable = errors.New("attempt to compare")
	// ErrNoLength is returned by [Unary]
	// when the length operator is applied to a non-string.
	ErrNoLength = errors.New("attempt to get length")
)

// Arithmetic performs an arithmetic or bitwise operation on two numbers.
// No string coercion occurs.
// Arithmetic may return an error that wraps one of
// [ErrDivideByZero], [ErrModuloByZero], [ErrNotNumber], or [ErrNotInteger].
//
// Equivalent to `luaO_rawarith` in upstream Lua.
func Arithmetic(op SimpleOperator, p1, p2 Value) (Value, error) {
	switch op {
	case BitwiseAnd, BitwiseOr, BitwiseXOR, ShiftLeft, ShiftRight:
		i1, err := toIntegerOperand(p1)
		if err != nil {
			return Value{}, err
		}
		i2, err := toIntegerOperand(p2)
		if err != nil {
			return Value{}, err
		}
		result, err := intArithmetic(op, i1, i2)
		if err != nil {
			return Value{}, err
		}
		return IntegerValue(result), nil
	case Divide, Power:
		// Operate only on floats.
		n1, ok := p1.Float64()
		if !ok {
			return Value{}, ErrNotNumber
		}
		n2, ok := p2.Float64()
		if !ok {
			return Value{}, ErrNotNumber
		}
		return FloatValue(floatArithmetic(op, n1, n2)), nil
	default:
		if !op.IsValid() {
			return Value{}, fmt.Errorf("invalid operator %v", op)
		}

		if p1.IsInteger() && p2.IsInteger() {
			i1, _ := p1.Int64(OnlyIntegral)
			i2, _ := p2.Int64(OnlyIntegral)
			result, err := intArithmetic(op, i1, i2)
			if err != nil {
				return Value{}, err
			}
			return IntegerValue(result), nil
		}

		n1, ok := p1.Float64()
		if !ok {
			return Value{}, ErrNotNumber
		}
		n2, ok := p2.Float64()
		if !ok {
			return Value{}, ErrNotNumber
		}
		return FloatValue(floatArithmetic(op, n1, n2)), nil
	}
}

// toIntegerOperand converts an operand of a bitwise operator to an integer.
// Floats are accepted only if they have an exact integer representation.
func toIntegerOperand(v Value) (int64, error) {
	i, ok := v.Int64(OnlyIntegral)
	if ok {
		return i, nil
	}
	if v.IsNumber() {
		return 0, ErrNotInteger
	}
	return 0, ErrNotNumber
}

func intArithmetic(op SimpleOperator, v1, v2 int64) (int64, error) {
	switch op {
	case Add:
		return v1 + v2, nil
	case Subtract:
		return v1 - v2, nil
	case Multiply:
		return v1 * v2, nil
	case Modulo:
		if v2 == 0 {
			return 0, ErrModuloByZero
		}
		// Go's remainder has the sign of the dividend.
		// Lua's has the sign of the divisor.
		m := v1 % v2
		if m != 0 && (m^v2) < 0 {
			m += v2
		}
		return m, nil
	case IntegerDivide:
		if v2 == 0 {
			return 0, ErrDivideByZero
		}
		q := v1 / v2
		if v1^v2 < 0 && v1%v2 != 0 {
			// v1/v2 is a negative non-integer
			// and Go's integer division truncates toward zero.
			// Lua uses floor rounding.
			q--
		}
		return q, nil
	case BitwiseAnd:
		return v1 & v2, nil
	case BitwiseOr:
		return v1 | v2, nil
	case BitwiseXOR:
		return v1 ^ v2, nil
	case ShiftLeft:
		return shiftLeft(v1, v2), nil
	case ShiftRight:
		// -math.MinInt64 wraps to itself,
		// which shiftLeft treats as shifting out every bit.
		return shiftLeft(v1, -v2), nil
	default:
		return 0, fmt.Errorf("%v not implemented for integers", op)
	}
}

// shiftLeft performs a logical shift of x by y bits.
// Negative displacements shift to the right.
// Displacements of 64 or more in either direction result in zero.
//
// Equivalent to `luaV_shiftl` in upstream Lua.
func shiftLeft(x, y int64) int64 {
	switch {
	case y <= -64 || y >= 64:
		return 0
	case y < 0:
		// In Go, shifting a signed integer performs an arithmetic shift.
		// Lua is describing a logical shift, so we convert to unsigned.
		return int64(uint64(x) >> uint(-y))
	default:
		return int64(uint64(x) << uint(y))
	}
}

func floatArithmetic(op SimpleOperator, v1, v2 float64) float64 {
	switch op {
	case Add:
		return v1 + v2
	case Subtract:
		return v1 - v2
	case Multiply:
		return v1 * v2
	case Divide:
		return floatDivide(v1, v2)
	case Power:
		if v2 == 2 {
			return v1 * v1
		}
		return math.Pow(v1, v2)
	case IntegerDivide:
		return math.Floor(floatDivide(v1, v2))
	case Modulo:
		return floatModulo(v1, v2)
	default:
		panic("unhandled arithmetic operator")
	}
}

// floatDivide returns the result of v1 divided by v2.
// If v2 is zero, then the result is ±Inf or NaN.
func floatDivide(v1, v2 float64) float64 {
	if v2 == 0 {
		// We handle this case ourselves
		// because as per https://go.dev/ref/spec#Floating_point_operators,
		// "whether a run-time panic occurs [on division by zero] is implementation-specific."
		switch {
		case v1 == 0 || math.IsNaN(v1):
			return math.NaN()
		case math.Signbit(v1) != math.Signbit(v2):
			return math.Inf(-1)
		default:
			return math.Inf(1)
		}
	}
	return v1 / v2
}

// floatModulo returns v1 - floor(v1/v2)*v2
// computed without the rounding errors of the direct formula.
//
// Equivalent to `luai_nummod` in upstream Lua.
func floatModulo(v1, v2 float64) float64 {
	// math.Mod gives the result of v1 - trunc(v1/v2)*v2,
	// which needs a correction when the quotient is negative and not an integer.
	m := math.Mod(v1, v2)
	if (m > 0 && v2 < 0) || (m < 0 && v2 > 0) {
		m += v2
	}
	return m
}

// Compare evaluates a comparison operator.
// [Equal] and [NotEqual] never fail.
// The order comparisons require both operands to be numbers
// or both operands to be strings;
// otherwise Compare returns an error wrapping [ErrNotComparable].
func Compare(op ComparisonOperator, p1, p2 Value) (bool, error) {
	switch op {
	case Equal:
		return p1.Equal(p2), nil
	case NotEqual:
		return !p1.Equal(p2), nil
	case Less:
		return lessThan(p1, p2, false)
	case LessEqual:
		return lessThan(p1, p2, true)
	case Greater:
		return lessThan(p2, p1, false)
	case GreaterEqual:
		return lessThan(p2, p1, true)
	default:
		return false, fmt.Errorf("invalid operator %v", op)
	}
}

// lessThan reports whether p1 < p2 (or p1 <= p2 if orEqual is true).
//
// Equivalent to `luaV_lessthan`/`luaV_lessequal` in upstream Lua
// without the metamethod fallback.
func lessThan(p1, p2 Value, orEqual bool) (bool, error) {
	switch {
	case p1.IsNumber() && p2.IsNumber():
		return numberLessThan(p1, p2, orEqual), nil
	case p1.IsString() && p2.IsString():
		c := strings.Compare(p1.s, p2.s)
		return c < 0 || (orEqual && c == 0), nil
	default:
		return false, fmt.Errorf("%w %v with %v", ErrNotComparable, p1.Type(), p2.Type())
	}
}

// maxIntFitsFloat is the largest magnitude for which
// every integer has an exact float64 representation.
const maxIntFitsFloat = 1 << 53

func intFitsFloat(i int64) bool {
	return -maxIntFitsFloat <= i && i <= maxIntFitsFloat
}

// numberLessThan compares two numbers exactly,
// even when an integer cannot be represented as a float.
//
// Equivalent to `LTnum`/`LEnum` in upstream Lua.
func numberLessThan(p1, p2 Value, orEqual bool) bool {
	switch {
	case p1.IsInteger() && p2.IsInteger():
		i1, _ := p1.Int64(OnlyIntegral)
		i2, _ := p2.Int64(OnlyIntegral)
		return i1 < i2 || (orEqual && i1 == i2)
	case p1.IsInteger():
		i, _ := p1.Int64(OnlyIntegral)
		f, _ := p2.Float64()
		if intFitsFloat(i) {
			return float64(i) < f || (orEqual && float64(i) == f)
		}
		// i < f <=> i < ceil(f)
		// i <= f <=> i <= floor(f)
		mode := Ceil
		if orEqual {
			mode = Floor
		}
		if fi, ok := FloatToInteger(f, mode); ok {
			return fi > i || (orEqual && fi == i)
		}
		// f is out of integer range or NaN.
		return f > 0
	case p2.IsInteger():
		f, _ := p1.Float64()
		i, _ := p2.Int64(OnlyIntegral)
		if intFitsFloat(i) {
			return f < float64(i) || (orEqual && f == float64(i))
		}
		// f < i <=> floor(f) < i
		// f <= i <=> ceil(f) <= i
		mode := Floor
		if orEqual {
			mode = Ceil
		}
		if fi, ok := FloatToInteger(f, mode); ok {
			return fi < i || (orEqual && fi == i)
		}
		return f < 0
	default:
		f1, _ := p1.Float64()
		f2, _ := p2.Float64()
		return f1 < f2 || (orEqual && f1 == f2)
	}
}

// Unary evaluates a unary operator.
// Unary may return an error that wraps one of
// [ErrNotNumber], [ErrNotInteger], or [ErrNoLength].
func Unary(op UnaryOperator, v Value) (Value, error) {
	switch op {
	case Not:
		return BoolValue(!v.Truthy()), nil
	case Minus:
		switch {
		case v.IsInteger():
			i, _ := v.Int64(OnlyIntegral)
			return IntegerValue(-i), nil
		case v.IsFloat():
			f, _ := v.Float64()
			return FloatValue(-f), nil
		default:
			return Value{}, ErrNotNumber
		}
	case BitwiseNot:
		i, err := toIntegerOperand(v)
		if err != nil {
			return Value{}, err
		}
		return IntegerValue(^i), nil
	case Length:
		s, isString := v.Unquoted()
		if !isString {
			return Value{}, fmt.Errorf("%w of a %v value", ErrNoLength, v.Type())
		}
		return IntegerValue(int64(len(s))), nil
	default:
		return Value{}, fmt.Errorf("invalid operator %v", op)
	}
}

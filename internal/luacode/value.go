// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"math"
	"strconv"
	"strings"

	"luaops.dev/pkg/internal/lualex"
)

// Type is an enumeration of the types a [Value] can have.
type Type byte

// Value types.
const (
	TypeNil     Type = 0
	TypeBoolean Type = 1
	TypeNumber  Type = 3
	TypeString  Type = 4
)

// String returns the Lua name of the type
// as returned by the type() function.
func (t Type) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "no value"
	}
}

// valueType is a [Type] with an optional variant in the high bits.
type valueType byte

// Variants.
const (
	valueTypeNil     = valueType(TypeNil)
	valueTypeFalse   = valueType(TypeBoolean)
	valueTypeTrue    = valueType(TypeBoolean) | (1 << 4)
	valueTypeFloat   = valueType(TypeNumber)
	valueTypeInteger = valueType(TypeNumber) | (1 << 4)
	valueTypeString  = valueType(TypeString)
)

func (t valueType) noVariant() Type {
	return Type(t & 0x0f)
}

// Value is a Lua value that can appear as a literal in an expression:
// nil, booleans, floats, integers, and strings.
// The zero value is nil.
// The == operator on Values is equivalent to [Value.IdenticalTo];
// use [Value.Equal] for Lua equality.
type Value struct {
	bits uint64
	s    string
	t    valueType
}

// BoolValue converts a boolean to a [Value].
func BoolValue(b bool) Value {
	if b {
		return Value{t: valueTypeTrue}
	} else {
		return Value{t: valueTypeFalse}
	}
}

// IntegerValue converts an integer to a [Value].
func IntegerValue(i int64) Value {
	return Value{
		t:    valueTypeInteger,
		bits: uint64(i),
	}
}

// FloatValue converts a floating-point number to a [Value].
func FloatValue(f float64) Value {
	return Value{
		t:    valueTypeFloat,
		bits: math.Float64bits(f),
	}
}

// StringValue converts a string to a [Value].
func StringValue(s string) Value {
	return Value{
		t: valueTypeString,
		s: s,
	}
}

// Type returns the value's type.
func (v Value) Type() Type {
	return v.t.noVariant()
}

// IsNil reports whether v is the zero value.
func (v Value) IsNil() bool {
	return v.t == valueTypeNil
}

// IsNumber reports whether the value is a number.
func (v Value) IsNumber() bool {
	return v.t.noVariant() == TypeNumber
}

// IsInteger reports whether the value is an integer.
func (v Value) IsInteger() bool {
	return v.t == valueTypeInteger
}

// IsFloat reports whether the value is a floating-point number.
func (v Value) IsFloat() bool {
	return v.t == valueTypeFloat
}

// IsString reports whether the value is a string.
func (v Value) IsString() bool {
	return v.t.noVariant() == TypeString
}

// IsBoolean reports whether the value is a boolean.
func (v Value) IsBoolean() bool {
	return v.t.noVariant() == TypeBoolean
}

// Bool reports whether the value tests true in Lua
// and whether the value is a boolean.
// Only nil and false test false.
func (v Value) Bool() (_ bool, isBool bool) {
	return v.t != valueTypeNil && v.t != valueTypeFalse, v.t.noVariant() == TypeBoolean
}

// Truthy reports whether the value tests true in Lua.
func (v Value) Truthy() bool {
	b, _ := v.Bool()
	return b
}

// Float64 returns the value as a floating-point number
// and reports whether the value is a number.
// No coercion occurs.
func (v Value) Float64() (_ float64, isNumber bool) {
	switch v.t {
	case valueTypeInteger:
		return float64(int64(v.bits)), true
	case valueTypeFloat:
		return math.Float64frombits(v.bits), true
	default:
		return 0, false
	}
}

// Int64 returns the value as an integer
// and reports whether the value is a number
// that can be converted to an integer according to the mode.
// No other coercion occurs.
func (v Value) Int64(mode FloatToIntegerMode) (_ int64, ok bool) {
	switch v.t {
	case valueTypeInteger:
		return int64(v.bits), true
	case valueTypeFloat:
		return FloatToInteger(math.Float64frombits(v.bits), mode)
	default:
		return 0, false
	}
}

// Unquoted returns the value as a string
// and reports whether the value is a string.
// Numbers are coerced to a string,
// but isString will be false.
func (v Value) Unquoted() (s string, isString bool) {
	switch v.t {
	case valueTypeString:
		return v.s, true
	case valueTypeFloat:
		f := math.Float64frombits(v.bits)
		switch {
		case math.IsInf(f, 1):
			return "inf", false
		case math.IsInf(f, -1):
			return "-inf", false
		case math.IsNaN(f):
			if math.Signbit(f) {
				return "-nan", false
			}
			return "nan", false
		}
		s = strconv.FormatFloat(f, 'g', 14, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, false
	case valueTypeInteger:
		return strconv.FormatInt(int64(v.bits), 10), false
	default:
		return "", false
	}
}

// String returns the value as a Lua constant expression.
func (v Value) String() string {
	switch v.t {
	case valueTypeNil:
		return "nil"
	case valueTypeFalse:
		return "false"
	case valueTypeTrue:
		return "true"
	case valueTypeInteger:
		i := int64(v.bits)
		if i == math.MinInt64 {
			// The decimal form would be read as a float.
			return "0x8000000000000000"
		}
		return strconv.FormatInt(i, 10)
	case valueTypeFloat:
		f := math.Float64frombits(v.bits)
		switch {
		case math.IsInf(f, 1):
			return "1e9999"
		case math.IsInf(f, -1):
			return "-1e9999"
		case math.IsNaN(f):
			return "(0/0)"
		case f == 0 && math.Signbit(f):
			return "(1/-1e9999)"
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case valueTypeString:
		return lualex.Quote(v.s)
	default:
		return "<invalid value>"
	}
}

// Equal reports whether two values are equivalent according to [Lua equality].
// Integers and floats compare by mathematical value;
// values of different types are never equal.
//
// [Lua equality]: https://lua.org/manual/5.4/manual.html#3.4.4
func (v Value) Equal(v2 Value) bool {
	switch v.t {
	case valueTypeNil, valueTypeFalse, valueTypeTrue:
		return v.t == v2.t
	case valueTypeFloat:
		if v2.t == valueTypeInteger {
			return v2.Equal(v)
		}
		f1, _ := v.Float64()
		f2, ok := v2.Float64()
		return ok && f1 == f2
	case valueTypeInteger:
		i1 := int64(v.bits)
		switch v2.t {
		case valueTypeInteger:
			return i1 == int64(v2.bits)
		case valueTypeFloat:
			i2, ok := v2.Int64(OnlyIntegral)
			return ok && i1 == i2
		default:
			return false
		}
	case valueTypeString:
		return v2.t == valueTypeString && v.s == v2.s
	default:
		return false
	}
}

// IdenticalTo reports whether two values are the same constant:
// the same type, the same variant, and the same bits.
// Unlike [Value.Equal], 1 is not identical to 1.0,
// NaN is identical to itself,
// and 0.0 is not identical to -0.0.
func (v Value) IdenticalTo(v2 Value) bool {
	return v.t == v2.t && v.bits == v2.bits && v.s == v2.s
}

// FloatToIntegerMode is an enumeration of rounding modes for [FloatToInteger].
type FloatToIntegerMode int

// Rounding modes.
const (
	// OnlyIntegral does not perform rounding
	// and only accepts integral values.
	OnlyIntegral FloatToIntegerMode = iota
	// Floor rounds to the greatest integer value less than or equal to the number.
	Floor
	// Ceil rounds to the least integer value greater than or equal to the number.
	Ceil
)

// FloatToInteger attempts to convert a floating-point number to an integer,
// rounding according to the given mode.
func FloatToInteger(n float64, mode FloatToIntegerMode) (_ int64, ok bool) {
	f := math.Floor(n)
	if f != n {
		switch mode {
		case OnlyIntegral:
			return 0, false
		case Ceil:
			// Convert floor to ceil.
			f += 1
		}
	}

	// Comparison is tricky here:
	// math.MinInt64 always has an exact representation as a float,
	// but math.MaxInt64 may not.
	ok = math.MinInt64 <= f && f < -math.MinInt64
	if !ok {
		return 0, false
	}
	return int64(f), true
}

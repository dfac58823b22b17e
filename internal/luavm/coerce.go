// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luavm

import (
	"errors"
	"fmt"
	"strings"

	"luaops.dev/pkg/internal/luacode"
	"luaops.dev/pkg/internal/lualex"
)

// arithmetic evaluates a simple binary operator,
// converting string operands to numbers first.
//
// Equivalent to `luaO_arith` in upstream Lua
// without the metamethod fallback.
func arithmetic(op luacode.SimpleOperator, x, y luacode.Value) (luacode.Value, error) {
	nx, okx := toNumber(x)
	ny, oky := toNumber(y)
	if !okx || !oky {
		bad := x
		if okx {
			bad = y
		}
		if op.IsIntegral() {
			return luacode.Value{}, fmt.Errorf("attempt to perform bitwise operation on a %v value", bad.Type())
		}
		return luacode.Value{}, fmt.Errorf("attempt to perform arithmetic on a %v value", bad.Type())
	}
	result, err := luacode.Arithmetic(op, nx, ny)
	if errors.Is(err, luacode.ErrNotNumber) {
		return luacode.Value{}, fmt.Errorf("attempt to perform arithmetic on a %v value", x.Type())
	}
	return result, err
}

// compare evaluates a comparison operator.
// No coercions occur.
func compare(op luacode.ComparisonOperator, x, y luacode.Value) (bool, error) {
	result, err := luacode.Compare(op, x, y)
	if errors.Is(err, luacode.ErrNotComparable) {
		if x.Type() == y.Type() {
			return false, fmt.Errorf("attempt to compare two %v values", x.Type())
		}
		return false, fmt.Errorf("attempt to compare %v with %v", x.Type(), y.Type())
	}
	return result, err
}

// unary evaluates a unary operator,
// converting a string operand to a number for the numeric operators.
func unary(op luacode.UnaryOperator, x luacode.Value) (luacode.Value, error) {
	switch op {
	case luacode.Minus, luacode.BitwiseNot:
		n, ok := toNumber(x)
		if !ok {
			if op == luacode.BitwiseNot {
				return luacode.Value{}, fmt.Errorf("attempt to perform bitwise operation on a %v value", x.Type())
			}
			return luacode.Value{}, fmt.Errorf("attempt to perform arithmetic on a %v value", x.Type())
		}
		return luacode.Unary(op, n)
	default:
		return luacode.Unary(op, x)
	}
}

// concat joins the values in a register range,
// converting numbers to strings.
//
// Equivalent to `luaV_concat` in upstream Lua
// without the metamethod fallback.
func concat(values []luacode.Value) (luacode.Value, error) {
	sb := new(strings.Builder)
	for _, v := range values {
		if !v.IsString() && !v.IsNumber() {
			return luacode.Value{}, fmt.Errorf("attempt to concatenate a %v value", v.Type())
		}
		s, _ := v.Unquoted()
		sb.WriteString(s)
	}
	return luacode.StringValue(sb.String()), nil
}

// toNumber converts a value to a number
// if it is a number or a string that contains a numeral.
//
// Equivalent to `luaV_tonumber_` in upstream Lua.
func toNumber(v luacode.Value) (_ luacode.Value, ok bool) {
	if v.IsNumber() {
		return v, true
	}
	s, isString := v.Unquoted()
	if !isString {
		return luacode.Value{}, false
	}
	i, f, isInteger, err := lualex.ParseNumeral(s)
	if err != nil {
		return luacode.Value{}, false
	}
	if isInteger {
		return luacode.IntegerValue(i), true
	}
	return luacode.FloatValue(f), true
}

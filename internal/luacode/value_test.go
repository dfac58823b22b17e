// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"math"
	"testing"
)

func TestValueFormatting(t *testing.T) {
	tests := []struct {
		value Value
		// constant is the result of String.
		constant string
		// unquoted is the result of Unquoted.
		unquoted string
		isString bool
	}{
		{Value{}, "nil", "", false},
		{BoolValue(false), "false", "", false},
		{BoolValue(true), "true", "", false},
		{IntegerValue(0), "0", "0", false},
		{IntegerValue(-7), "-7", "-7", false},
		{IntegerValue(math.MaxInt64), "9223372036854775807", "9223372036854775807", false},
		{IntegerValue(math.MinInt64), "0x8000000000000000", "-9223372036854775808", false},
		{FloatValue(0), "0.0", "0.0", false},
		{FloatValue(math.Copysign(0, -1)), "(1/-1e9999)", "-0.0", false},
		{FloatValue(2.5), "2.5", "2.5", false},
		{FloatValue(1e100), "1e+100", "1e+100", false},
		{FloatValue(3), "3.0", "3.0", false},
		{FloatValue(math.NaN()), "(0/0)", "nan", false},
		{FloatValue(math.Inf(1)), "1e9999", "inf", false},
		{FloatValue(math.Inf(-1)), "-1e9999", "-inf", false},
		{StringValue(""), `""`, "", true},
		{StringValue("x"), `"x"`, "x", true},
		{StringValue("a\tb"), `"a\tb"`, "a\tb", true},
	}

	for _, test := range tests {
		if got := test.value.String(); got != test.constant {
			t.Errorf("%#v.String() = %q; want %q", test.value, got, test.constant)
		}
		got, isString := test.value.Unquoted()
		if got != test.unquoted || isString != test.isString {
			t.Errorf("%v.Unquoted() = %q, %t; want %q, %t", test.value, got, isString, test.unquoted, test.isString)
		}
	}
}

func TestValueTruthy(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{Value{}, false},
		{BoolValue(false), false},
		{BoolValue(true), true},
		{IntegerValue(0), true},
		{FloatValue(0), true},
		{FloatValue(math.NaN()), true},
		{StringValue(""), true},
		{StringValue("false"), true},
	}
	for _, test := range tests {
		if got := test.value.Truthy(); got != test.want {
			t.Errorf("%v.Truthy() = %t; want %t", test.value, got, test.want)
		}
	}
}

func TestValueType(t *testing.T) {
	tests := []struct {
		value Value
		want  Type
	}{
		{Value{}, TypeNil},
		{BoolValue(false), TypeBoolean},
		{BoolValue(true), TypeBoolean},
		{IntegerValue(1), TypeNumber},
		{FloatValue(1), TypeNumber},
		{StringValue("1"), TypeString},
	}
	for _, test := range tests {
		if got := test.value.Type(); got != test.want {
			t.Errorf("%v.Type() = %v; want %v", test.value, got, test.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		v1, v2 Value
		want   bool
	}{
		{Value{}, Value{}, true},
		{Value{}, BoolValue(false), false},
		{BoolValue(true), BoolValue(true), true},
		{BoolValue(true), BoolValue(false), false},
		{IntegerValue(0), Value{}, false},
		{IntegerValue(3), IntegerValue(3), true},
		{IntegerValue(3), IntegerValue(4), false},
		{IntegerValue(3), FloatValue(3), true},
		{IntegerValue(3), FloatValue(3.5), false},
		{IntegerValue(1 << 60), FloatValue(1 << 60), true},
		{IntegerValue(math.MinInt64), FloatValue(math.MinInt64), true},
		{FloatValue(0), FloatValue(math.Copysign(0, -1)), true},
		{FloatValue(math.NaN()), FloatValue(math.NaN()), false},
		{StringValue("10"), StringValue("10"), true},
		{StringValue("10"), IntegerValue(10), false},

		// 2^63 as a float has no integer equivalent.
		{IntegerValue(math.MaxInt64), FloatValue(math.MaxInt64), false},
	}

	for _, test := range tests {
		if got := test.v1.Equal(test.v2); got != test.want {
			t.Errorf("%v.Equal(%v) = %t; want %t", test.v1, test.v2, got, test.want)
		}
		if got := test.v2.Equal(test.v1); got != test.want {
			t.Errorf("%v.Equal(%v) = %t; want %t", test.v2, test.v1, got, test.want)
		}
	}
}

func TestValueIdenticalTo(t *testing.T) {
	values := []Value{
		{},
		BoolValue(false),
		BoolValue(true),
		IntegerValue(0),
		IntegerValue(1),
		FloatValue(0),
		FloatValue(math.Copysign(0, -1)),
		FloatValue(1),
		FloatValue(math.NaN()),
		StringValue(""),
		StringValue("1"),
	}
	for i, v1 := range values {
		for j, v2 := range values {
			want := i == j
			if got := v1.IdenticalTo(v2); got != want {
				t.Errorf("%v.IdenticalTo(%v) = %t; want %t", v1, v2, got, want)
			}
			if got := v1 == v2; got != want {
				t.Errorf("%v == %v is %t; want %t", v1, v2, got, want)
			}
		}
	}
}

func TestFloatToInteger(t *testing.T) {
	tests := []struct {
		n      float64
		mode   FloatToIntegerMode
		want   int64
		wantOK bool
	}{
		{3, OnlyIntegral, 3, true},
		{3.5, OnlyIntegral, 0, false},
		{3.5, Floor, 3, true},
		{3.5, Ceil, 4, true},
		{-3.5, Floor, -4, true},
		{-3.5, Ceil, -3, true},
		{math.MinInt64, OnlyIntegral, math.MinInt64, true},
		{math.MaxInt64, OnlyIntegral, 0, false},
		{math.Inf(1), Floor, 0, false},
		{math.NaN(), Floor, 0, false},
	}
	for _, test := range tests {
		got, ok := FloatToInteger(test.n, test.mode)
		if got != test.want || ok != test.wantOK {
			t.Errorf("FloatToInteger(%g, %v) = %d, %t; want %d, %t", test.n, test.mode, got, ok, test.want, test.wantOK)
		}
	}
}

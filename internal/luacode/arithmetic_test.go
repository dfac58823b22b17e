// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"errors"
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op      SimpleOperator
		x, y    Value
		want    Value
		wantErr error
	}{
		{op: Add, x: IntegerValue(2), y: IntegerValue(3), want: IntegerValue(5)},
		{op: Add, x: IntegerValue(2), y: FloatValue(3), want: FloatValue(5)},
		{op: Subtract, x: IntegerValue(math.MinInt64), y: IntegerValue(1), want: IntegerValue(math.MaxInt64)},
		{op: Multiply, x: FloatValue(1.5), y: IntegerValue(2), want: FloatValue(3)},
		{op: Modulo, x: IntegerValue(5), y: IntegerValue(-3), want: IntegerValue(-1)},
		{op: Modulo, x: IntegerValue(-6), y: IntegerValue(3), want: IntegerValue(0)},
		{op: Modulo, x: FloatValue(-5.5), y: FloatValue(2), want: FloatValue(0.5)},
		{op: Modulo, x: FloatValue(5), y: FloatValue(math.Inf(1)), want: FloatValue(5)},
		{op: Modulo, x: IntegerValue(1), y: IntegerValue(0), wantErr: ErrModuloByZero},
		{op: Power, x: IntegerValue(2), y: IntegerValue(-1), want: FloatValue(0.5)},
		{op: Divide, x: IntegerValue(6), y: IntegerValue(3), want: FloatValue(2)},
		{op: Divide, x: IntegerValue(-1), y: IntegerValue(0), want: FloatValue(math.Inf(-1))},
		{op: Divide, x: FloatValue(0), y: FloatValue(0), want: FloatValue(math.NaN())},
		{op: IntegerDivide, x: IntegerValue(math.MinInt64), y: IntegerValue(-1), want: IntegerValue(math.MinInt64)},
		{op: IntegerDivide, x: FloatValue(-7), y: IntegerValue(2), want: FloatValue(-4)},
		{op: IntegerDivide, x: IntegerValue(1), y: IntegerValue(0), wantErr: ErrDivideByZero},
		{op: BitwiseOr, x: FloatValue(1), y: FloatValue(2), want: IntegerValue(3)},
		{op: BitwiseXOR, x: FloatValue(0.5), y: IntegerValue(1), wantErr: ErrNotInteger},
		{op: ShiftLeft, x: IntegerValue(1), y: IntegerValue(63), want: IntegerValue(math.MinInt64)},
		{op: ShiftLeft, x: IntegerValue(1), y: IntegerValue(-1), want: IntegerValue(0)},
		{op: ShiftRight, x: IntegerValue(1), y: IntegerValue(math.MinInt64), want: IntegerValue(0)},
		{op: Add, x: StringValue("1"), y: IntegerValue(1), wantErr: ErrNotNumber},
		{op: BitwiseAnd, x: Value{}, y: IntegerValue(1), wantErr: ErrNotNumber},
	}

	for _, test := range tests {
		got, err := Arithmetic(test.op, test.x, test.y)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Arithmetic(%v, %v, %v) = %v, %v; want _, %v", test.op, test.x, test.y, got, err, test.wantErr)
			}
			continue
		}
		if err != nil || !got.IdenticalTo(test.want) {
			t.Errorf("Arithmetic(%v, %v, %v) = %v, %v; want %v, <nil>", test.op, test.x, test.y, got, err, test.want)
		}
	}
}

func TestArithmeticInvalidOperator(t *testing.T) {
	if got, err := Arithmetic(0, IntegerValue(1), IntegerValue(1)); err == nil {
		t.Errorf("Arithmetic(0, 1, 1) = %v, <nil>; want error", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		op      ComparisonOperator
		x, y    Value
		want    bool
		wantErr bool
	}{
		{op: Less, x: IntegerValue(math.MaxInt64), y: FloatValue(math.Inf(1)), want: true},
		{op: Less, x: FloatValue(math.Inf(-1)), y: IntegerValue(math.MinInt64), want: true},
		{op: Less, x: IntegerValue(1), y: FloatValue(math.NaN()), want: false},
		{op: Less, x: FloatValue(math.NaN()), y: IntegerValue(1), want: false},
		{op: LessEqual, x: IntegerValue(1<<53 + 1), y: FloatValue(1 << 53), want: false},
		{op: LessEqual, x: FloatValue(1 << 53), y: IntegerValue(1<<53 + 1), want: true},
		{op: Greater, x: StringValue("a\x00"), y: StringValue("a"), want: true},
		{op: GreaterEqual, x: StringValue("A"), y: StringValue("a"), want: false},
		{op: Equal, x: FloatValue(math.Copysign(0, -1)), y: IntegerValue(0), want: true},
		{op: NotEqual, x: StringValue("1"), y: IntegerValue(1), want: true},
		{op: Less, x: StringValue("1"), y: IntegerValue(2), wantErr: true},
		{op: GreaterEqual, x: Value{}, y: Value{}, wantErr: true},
	}

	for _, test := range tests {
		got, err := Compare(test.op, test.x, test.y)
		if test.wantErr {
			if !errors.Is(err, ErrNotComparable) {
				t.Errorf("Compare(%v, %v, %v) = %t, %v; want _, %v", test.op, test.x, test.y, got, err, ErrNotComparable)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("Compare(%v, %v, %v) = %t, %v; want %t, <nil>", test.op, test.x, test.y, got, err, test.want)
		}
	}
}

func TestUnary(t *testing.T) {
	tests := []struct {
		op      UnaryOperator
		x       Value
		want    Value
		wantErr error
	}{
		{op: Not, x: FloatValue(math.NaN()), want: BoolValue(false)},
		{op: Minus, x: FloatValue(0), want: FloatValue(math.Copysign(0, -1))},
		{op: Minus, x: StringValue("1"), wantErr: ErrNotNumber},
		{op: BitwiseNot, x: FloatValue(-1), want: IntegerValue(0)},
		{op: BitwiseNot, x: FloatValue(1e100), wantErr: ErrNotInteger},
		{op: Length, x: StringValue("\x00\x01"), want: IntegerValue(2)},
		{op: Length, x: BoolValue(true), wantErr: ErrNoLength},
	}

	for _, test := range tests {
		got, err := Unary(test.op, test.x)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Unary(%v, %v) = %v, %v; want _, %v", test.op, test.x, got, err, test.wantErr)
			}
			continue
		}
		if err != nil || !got.IdenticalTo(test.want) {
			t.Errorf("Unary(%v, %v) = %v, %v; want %v, <nil>", test.op, test.x, got, err, test.want)
		}
	}
}

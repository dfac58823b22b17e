// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luavm

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"luaops.dev/pkg/internal/luacode"
	"luaops.dev/pkg/internal/testcontext"
)

var tables = luacode.NewTables()

func compile(tb testing.TB, text string, opts *luacode.CompileOptions) *luacode.Function {
	tb.Helper()
	e, err := luacode.Parse(luacode.LiteralSource(text), text)
	if err != nil {
		tb.Fatal(err)
	}
	f, err := luacode.Compile(tables, e, opts)
	if err != nil {
		tb.Fatal(err)
	}
	return f
}

func TestCall(t *testing.T) {
	tests := []struct {
		expr string
		args []luacode.Value
		want luacode.Value
	}{
		{expr: "1 + 2", want: luacode.IntegerValue(3)},
		{expr: "x + 2", args: []luacode.Value{luacode.IntegerValue(5)}, want: luacode.IntegerValue(7)},
		{expr: "x + y", args: []luacode.Value{luacode.IntegerValue(5), luacode.FloatValue(0.5)}, want: luacode.FloatValue(5.5)},
		{expr: "2 - x", args: []luacode.Value{luacode.IntegerValue(5)}, want: luacode.IntegerValue(-3)},
		{expr: "x / 2", args: []luacode.Value{luacode.IntegerValue(5)}, want: luacode.FloatValue(2.5)},
		{expr: "x // 2", args: []luacode.Value{luacode.IntegerValue(-5)}, want: luacode.IntegerValue(-3)},
		{expr: "x % 3", args: []luacode.Value{luacode.IntegerValue(-5)}, want: luacode.IntegerValue(1)},
		{expr: "x ^ 2", args: []luacode.Value{luacode.IntegerValue(3)}, want: luacode.FloatValue(9)},
		{expr: "x & 0xff", args: []luacode.Value{luacode.IntegerValue(0x1234)}, want: luacode.IntegerValue(0x34)},
		{expr: "x << 4", args: []luacode.Value{luacode.IntegerValue(1)}, want: luacode.IntegerValue(16)},
		{expr: "x >> 1", args: []luacode.Value{luacode.IntegerValue(-1)}, want: luacode.IntegerValue(math.MaxInt64)},
		{expr: "x + 1", args: []luacode.Value{luacode.StringValue("10")}, want: luacode.IntegerValue(11)},
		{expr: "x * 2", args: []luacode.Value{luacode.StringValue(" 0x10 ")}, want: luacode.IntegerValue(32)},
		{expr: "-x", args: []luacode.Value{luacode.StringValue("2.5")}, want: luacode.FloatValue(-2.5)},
		{expr: "~x", args: []luacode.Value{luacode.IntegerValue(0)}, want: luacode.IntegerValue(-1)},
		{expr: "#x", args: []luacode.Value{luacode.StringValue("hello")}, want: luacode.IntegerValue(5)},
		{expr: "not x", args: []luacode.Value{luacode.IntegerValue(0)}, want: luacode.BoolValue(false)},
		{expr: "not x", want: luacode.BoolValue(true)},
		{expr: "x < y", args: []luacode.Value{luacode.IntegerValue(1), luacode.FloatValue(1.5)}, want: luacode.BoolValue(true)},
		{expr: "x >= y", args: []luacode.Value{luacode.StringValue("a"), luacode.StringValue("b")}, want: luacode.BoolValue(false)},
		{expr: "x == 1", args: []luacode.Value{luacode.FloatValue(1)}, want: luacode.BoolValue(true)},
		{expr: "x ~= 1", args: []luacode.Value{luacode.StringValue("1")}, want: luacode.BoolValue(true)},
		{expr: "not (x < y)", args: []luacode.Value{luacode.IntegerValue(1), luacode.IntegerValue(2)}, want: luacode.BoolValue(false)},
		{expr: "not (x < y)", args: []luacode.Value{luacode.IntegerValue(2), luacode.IntegerValue(1)}, want: luacode.BoolValue(true)},
		{expr: "x and y", args: []luacode.Value{luacode.BoolValue(false), luacode.IntegerValue(1)}, want: luacode.BoolValue(false)},
		{expr: "x and y", args: []luacode.Value{luacode.IntegerValue(0), luacode.IntegerValue(1)}, want: luacode.IntegerValue(1)},
		{expr: "x or y", args: []luacode.Value{{}, luacode.IntegerValue(1)}, want: luacode.IntegerValue(1)},
		{expr: "x or y", args: []luacode.Value{luacode.StringValue(""), luacode.IntegerValue(1)}, want: luacode.StringValue("")},
		{expr: "(x + 1) or y", args: []luacode.Value{luacode.IntegerValue(1), {}}, want: luacode.IntegerValue(2)},
		{expr: "x < 1 and 'small' or 'big'", args: []luacode.Value{luacode.IntegerValue(0)}, want: luacode.StringValue("small")},
		{expr: "x < 1 and 'small' or 'big'", args: []luacode.Value{luacode.IntegerValue(5)}, want: luacode.StringValue("big")},
		{expr: "x .. y .. 1", args: []luacode.Value{luacode.StringValue("a"), luacode.FloatValue(2)}, want: luacode.StringValue("a2.01")},
		{expr: "x", args: []luacode.Value{luacode.StringValue("id")}, want: luacode.StringValue("id")},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			ctx := testcontext.New(t)
			f := compile(t, test.expr, nil)
			got, err := Call(ctx, f, test.args...)
			if err != nil {
				t.Fatal(err)
			}
			if !got.IdenticalTo(test.want) {
				t.Errorf("%s with %v = %v; want %v", test.expr, test.args, got, test.want)
			}
		})
	}
}

func TestCallErrors(t *testing.T) {
	tests := []struct {
		expr    string
		args    []luacode.Value
		wantErr error
		wantMsg string
	}{
		{expr: "x // 0", args: []luacode.Value{luacode.IntegerValue(1)}, wantErr: luacode.ErrDivideByZero},
		{expr: "x % 0", args: []luacode.Value{luacode.IntegerValue(1)}, wantErr: luacode.ErrModuloByZero},
		{expr: "x | 1", args: []luacode.Value{luacode.FloatValue(1.5)}, wantErr: luacode.ErrNotInteger},
		{expr: "#x", args: []luacode.Value{luacode.IntegerValue(1)}, wantErr: luacode.ErrNoLength},
		{expr: "x + 1", args: []luacode.Value{luacode.BoolValue(true)}, wantMsg: "pc 0 (ADDRK): attempt to perform arithmetic on a boolean value"},
		{expr: "x + 1", args: []luacode.Value{luacode.StringValue("abc")}, wantMsg: "pc 0 (ADDRK): attempt to perform arithmetic on a string value"},
		{expr: "x & 1", wantMsg: "pc 0 (BANDRK): attempt to perform bitwise operation on a nil value"},
		{expr: "x < 1", args: []luacode.Value{luacode.StringValue("1")}, wantMsg: "pc 0 (LTRK): attempt to compare string with number"},
		{expr: "x < y", args: []luacode.Value{luacode.BoolValue(true), luacode.BoolValue(false)}, wantMsg: "pc 0 (LTRR): attempt to compare two boolean values"},
		{expr: "x .. 'a'", args: []luacode.Value{luacode.BoolValue(true)}, wantMsg: "attempt to concatenate a boolean value"},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			ctx := testcontext.New(t)
			f := compile(t, test.expr, nil)
			got, err := Call(ctx, f, test.args...)
			if err == nil {
				t.Fatalf("%s with %v = %v, <nil>; want error", test.expr, test.args, got)
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Errorf("%s with %v: %v; want %v", test.expr, test.args, err, test.wantErr)
			}
			var vmErr *Error
			if !errors.As(err, &vmErr) {
				t.Errorf("%s with %v: error is %T; want *Error", test.expr, test.args, err)
			}
			if test.wantMsg != "" && !strings.Contains(err.Error(), test.wantMsg) {
				t.Errorf("%s with %v: %v; want message containing %q", test.expr, test.args, err, test.wantMsg)
			}
		})
	}
}

func TestCallTooManyArguments(t *testing.T) {
	ctx := testcontext.New(t)
	f := compile(t, "x", nil)
	if _, err := Call(ctx, f, luacode.IntegerValue(1), luacode.IntegerValue(2)); err == nil {
		t.Error("Call did not return an error")
	}
}

// TestFoldingEquivalence verifies that evaluating an operator
// during compilation gives the same result as evaluating it at run time.
func TestFoldingEquivalence(t *testing.T) {
	for _, x := range foldingOperands {
		for _, y := range foldingOperands {
			for op := luacode.BinaryOperator(1); op.IsValid(); op++ {
				checkFoldingEquivalence(t, fmt.Sprintf("(%v) %v (%v)", x, op, y))
			}
		}
		for op := luacode.UnaryOperator(1); op.IsValid(); op++ {
			prefix := op.String()
			if op == luacode.Not {
				prefix += " "
			}
			checkFoldingEquivalence(t, fmt.Sprintf("%s(%v)", prefix, x))
		}
	}
}

func FuzzFoldingEquivalence(f *testing.F) {
	f.Add(int64(7), 2.5, "10", uint8(0), uint8(0), uint8(1))
	f.Add(int64(-1), 0.0, "abc", uint8(6), uint8(0), uint8(1))
	f.Add(int64(math.MinInt64), -1.0, "0x10", uint8(3), uint8(0), uint8(0))
	f.Add(int64(3), math.Inf(1), "", uint8(15), uint8(2), uint8(1))

	f.Fuzz(func(t *testing.T, i int64, n float64, s string, opIndex uint8, xIndex uint8, yIndex uint8) {
		operands := []luacode.Value{
			luacode.IntegerValue(i),
			luacode.FloatValue(n),
			luacode.StringValue(s),
			luacode.BoolValue(i%2 == 0),
			{},
		}
		x := operands[int(xIndex)%len(operands)]
		y := operands[int(yIndex)%len(operands)]
		var ops []luacode.BinaryOperator
		for op := luacode.BinaryOperator(1); op.IsValid(); op++ {
			ops = append(ops, op)
		}
		op := ops[int(opIndex)%len(ops)]
		checkFoldingEquivalence(t, fmt.Sprintf("(%v) %v (%v)", x, op, y))
	})
}

var foldingOperands = []luacode.Value{
	{},
	luacode.BoolValue(false),
	luacode.BoolValue(true),
	luacode.IntegerValue(0),
	luacode.IntegerValue(3),
	luacode.IntegerValue(-7),
	luacode.IntegerValue(math.MaxInt64),
	luacode.IntegerValue(math.MinInt64),
	luacode.FloatValue(0),
	luacode.FloatValue(2.5),
	luacode.FloatValue(-1),
	luacode.FloatValue(math.Inf(1)),
	luacode.FloatValue(1 << 53),
	luacode.StringValue(""),
	luacode.StringValue("10"),
	luacode.StringValue("abc"),
}

func checkFoldingEquivalence(t *testing.T, text string) {
	t.Helper()
	ctx := testcontext.New(t)
	folded := compile(t, text, nil)
	unfolded := compile(t, text, &luacode.CompileOptions{DisableFolding: true})
	if unfolded.Folded != 0 {
		t.Errorf("%s: %d operations folded with folding disabled", text, unfolded.Folded)
	}

	want, wantErr := Call(ctx, unfolded)
	got, err := Call(ctx, folded)
	switch {
	case wantErr != nil && err == nil:
		t.Errorf("%s = %v when folded; runs to error %v", text, got, wantErr)
	case wantErr == nil && err != nil:
		t.Errorf("%s = %v at run time; folded code fails with %v", text, want, err)
	case wantErr == nil && !got.IdenticalTo(want):
		t.Errorf("%s = %v when folded; %v at run time", text, got, want)
	}
}

// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"strings"
	"testing"
)

func TestOpCodeProperties(t *testing.T) {
	for op := OpCode(0); op <= maxOpCode; op++ {
		if !op.IsValid() {
			t.Errorf("%v.IsValid() = false", op)
		}
		if name := op.String(); strings.HasPrefix(name, "OpCode(") {
			t.Errorf("OpCode(%d) has no name", uint8(op))
		}
		if mode := op.OpMode(); mode < OpModeABC || mode > OpModeJ {
			t.Errorf("%v.OpMode() = %v", op, mode)
		}

		_, _, _, isSimple := op.Simple()
		_, _, _, isComparison := op.Comparison()
		_, _, isUnary := op.Unary()
		if isSimple && !op.SetsA() {
			t.Errorf("%v.SetsA() = false for a simple operator", op)
		}
		if isUnary && !op.SetsA() {
			t.Errorf("%v.SetsA() = false for a unary operator", op)
		}
		if isComparison != (op.IsTest() && op != OpTest && op != OpTestSet) {
			t.Errorf("%v: Comparison() ok = %t, IsTest() = %t", op, isComparison, op.IsTest())
		}
		if isComparison && op.SetsA() {
			t.Errorf("%v.SetsA() = true for a comparison", op)
		}
	}

	if op := maxOpCode + 1; op.IsValid() {
		t.Errorf("%v.IsValid() = true", op)
	}
	if op := maxOpCode + 1; op.OpMode() != 0 {
		t.Errorf("%v.OpMode() = %v; want 0", op, op.OpMode())
	}
}

func TestOpCodeNames(t *testing.T) {
	tests := []struct {
		op   OpCode
		want string
	}{
		{OpMove, "MOVE"},
		{OpAddRR, "ADDRR"},
		{OpAddKR, "ADDKR"},
		{OpBAndRK, "BANDRK"},
		{OpSHRKK, "SHRKK"},
		{OpNERR, "NERR"},
		{OpLTRK, "LTRK"},
		{OpGEKK, "GEKK"},
		{OpNotR, "NOTR"},
		{OpLenK, "LENK"},
		{OpConcat, "CONCAT"},
		{OpReturn1, "RETURN1"},
	}
	for _, test := range tests {
		if got := test.op.String(); got != test.want {
			t.Errorf("OpCode(%d).String() = %q; want %q", uint8(test.op), got, test.want)
		}
	}
}

func TestOpCodeVariantLayout(t *testing.T) {
	for op := Add; op <= numSimpleOperators; op++ {
		rr := simpleOpCode(op, RegisterKind, RegisterKind)
		for offset, kinds := range [][2]OperandKind{
			{RegisterKind, RegisterKind},
			{RegisterKind, ConstantKind},
			{ConstantKind, RegisterKind},
			{ConstantKind, ConstantKind},
		} {
			got := simpleOpCode(op, kinds[0], kinds[1])
			if want := rr + OpCode(offset); got != want {
				t.Errorf("simpleOpCode(%v, %v, %v) = %v; want %v", op, kinds[0], kinds[1], got, want)
			}
			name := got.String()
			if suffix := kinds[0].String() + kinds[1].String(); !strings.HasSuffix(name, suffix) {
				t.Errorf("simpleOpCode(%v, %v, %v) = %s; want suffix %s", op, kinds[0], kinds[1], name, suffix)
			}
		}
	}
	for op := NotEqual; op <= numComparisonOperators; op++ {
		for _, lk := range operandKinds {
			for _, rk := range operandKinds {
				name := comparisonOpCode(op, lk, rk).String()
				if suffix := lk.String() + rk.String(); !strings.HasSuffix(name, suffix) {
					t.Errorf("comparisonOpCode(%v, %v, %v) = %s; want suffix %s", op, lk, rk, name, suffix)
				}
			}
		}
	}
	for op := Not; op <= numUnaryOperators; op++ {
		for _, kind := range operandKinds {
			name := unaryOpCode(op, kind).String()
			if !strings.HasSuffix(name, kind.String()) {
				t.Errorf("unaryOpCode(%v, %v) = %s; want suffix %v", op, kind, name, kind)
			}
		}
	}
}

func TestABCInstruction(t *testing.T) {
	i := ABCInstruction(OpAddKR, 255, 128, 1, true)
	if got := i.OpCode(); got != OpAddKR {
		t.Errorf("OpCode() = %v; want %v", got, OpAddKR)
	}
	if got := i.ArgA(); got != 255 {
		t.Errorf("ArgA() = %d; want 255", got)
	}
	if got := i.ArgB(); got != 128 {
		t.Errorf("ArgB() = %d; want 128", got)
	}
	if got := i.ArgC(); got != 1 {
		t.Errorf("ArgC() = %d; want 1", got)
	}
	if !i.K() {
		t.Error("K() = false; want true")
	}
	if got, want := i.String(), "ADDKR      255 128 1 1"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	i, ok := i.WithK(false)
	if !ok || i.K() {
		t.Errorf("WithK(false) = %v, %t", i, ok)
	}
	if i.ArgA() != 255 || i.ArgB() != 128 || i.ArgC() != 1 {
		t.Errorf("WithK(false) changed arguments: %v", i)
	}
	i, ok = i.WithArgA(3)
	if !ok || i.ArgA() != 3 || i.ArgB() != 128 {
		t.Errorf("WithArgA(3) = %v, %t", i, ok)
	}
}

func TestABxInstruction(t *testing.T) {
	i := ABxInstruction(OpLoadK, 7, maxArgBx)
	if got := i.OpCode(); got != OpLoadK {
		t.Errorf("OpCode() = %v; want %v", got, OpLoadK)
	}
	if got := i.ArgA(); got != 7 {
		t.Errorf("ArgA() = %d; want 7", got)
	}
	if got := i.ArgBx(); got != maxArgBx {
		t.Errorf("ArgBx() = %d; want %d", got, maxArgBx)
	}
	if i.K() {
		t.Error("K() = true for ABx instruction")
	}
	if _, ok := i.WithK(true); ok {
		t.Error("WithK on ABx instruction reported ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("ABxInstruction with out-of-range Bx did not panic")
		}
	}()
	ABxInstruction(OpLoadK, 0, maxArgBx+1)
}

func TestJInstruction(t *testing.T) {
	for _, j := range []int32{0, 1, -1, noJump, offsetJ, -offsetJ} {
		i := JInstruction(OpJMP, j)
		if got := i.J(); got != j {
			t.Errorf("JInstruction(OpJMP, %d).J() = %d", j, got)
		}
		if i.ArgA() != 0 {
			t.Errorf("JInstruction(OpJMP, %d).ArgA() = %d; want 0", j, i.ArgA())
		}
	}
	if got, want := JInstruction(OpJMP, 1).String(), "JMP        +1"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got := ABCInstruction(OpMove, 0, 1, 0, false).J(); got != noJump {
		t.Errorf("MOVE.J() = %d; want %d", got, noJump)
	}
}

func TestInstructionConstructorsPanic(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"ABCInstruction(OpLoadK)", func() { ABCInstruction(OpLoadK, 0, 0, 0, false) }},
		{"ABxInstruction(OpMove)", func() { ABxInstruction(OpMove, 0, 0) }},
		{"JInstruction(OpTest)", func() { JInstruction(OpTest, 0) }},
	}
	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", test.name)
				}
			}()
			test.f()
		}()
	}
}

func TestOperand(t *testing.T) {
	r := RegisterOperand(4)
	if got, ok := r.Register(); !ok || got != 4 {
		t.Errorf("RegisterOperand(4).Register() = %d, %t", got, ok)
	}
	if _, ok := r.Constant(); ok {
		t.Error("RegisterOperand(4).Constant() reported ok")
	}
	if got := r.String(); got != "R4" {
		t.Errorf("RegisterOperand(4).String() = %q; want \"R4\"", got)
	}

	k := ConstantOperand(255)
	if got, ok := k.Constant(); !ok || got != 255 {
		t.Errorf("ConstantOperand(255).Constant() = %d, %t", got, ok)
	}
	if _, ok := k.Register(); ok {
		t.Error("ConstantOperand(255).Register() reported ok")
	}
	if got := k.String(); got != "K255" {
		t.Errorf("ConstantOperand(255).String() = %q; want \"K255\"", got)
	}
}

// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"fmt"
	"math"
)

// SimpleEntry is the instruction selection strategy for a [SimpleOperator].
type SimpleEntry interface {
	// Operator returns the operator the entry handles.
	Operator() SimpleOperator
	// MakeOpcode returns the instruction
	// that stores the result of the operation on left and right in dest.
	// The variant of the instruction is chosen by the kinds of left and right.
	MakeOpcode(dest RegisterIndex, left, right Operand) Instruction
	// ConstantFold evaluates the operator on two literal values.
	// It reports false if the operation must be deferred to run time.
	ConstantFold(left, right Value) (_ Value, ok bool)
}

// ComparisonEntry is the instruction selection strategy for a [ComparisonOperator].
type ComparisonEntry interface {
	// Operator returns the operator the entry handles.
	Operator() ComparisonOperator
	// MakeOpcode returns the test instruction comparing left and right.
	// The instruction's k flag is false,
	// so it skips the next instruction if the comparison is false.
	// Operands are never swapped.
	MakeOpcode(left, right Operand) Instruction
	// ConstantFold evaluates the operator on two literal values,
	// returning a boolean [Value].
	// It reports false if the operation must be deferred to run time.
	ConstantFold(left, right Value) (_ Value, ok bool)
}

// UnaryEntry is the instruction selection strategy for a [UnaryOperator].
type UnaryEntry interface {
	// Operator returns the operator the entry handles.
	Operator() UnaryOperator
	// MakeOpcode returns the instruction
	// that stores the result of the operation on source in dest.
	MakeOpcode(dest RegisterIndex, source Operand) Instruction
	// ConstantFold evaluates the operator on a literal value.
	// It reports false if the operation must be deferred to run time.
	ConstantFold(v Value) (_ Value, ok bool)
}

// Tables holds the instruction selection entries
// for every operator that compiles to a single instruction.
// Tables are immutable after [NewTables] returns
// and are safe to use from multiple goroutines concurrently.
type Tables struct {
	simple     [numSimpleOperators]SimpleEntry
	comparison [numComparisonOperators]ComparisonEntry
	unary      [numUnaryOperators]UnaryEntry
}

// NewTables returns a new [Tables] with an entry for every
// [SimpleOperator], [ComparisonOperator], and [UnaryOperator].
func NewTables() *Tables {
	t := new(Tables)
	for op := Add; op <= numSimpleOperators; op++ {
		t.simple[op-Add] = simpleEntry{op}
	}
	for op := NotEqual; op <= numComparisonOperators; op++ {
		t.comparison[op-NotEqual] = comparisonEntry{op}
	}
	for op := Not; op <= numUnaryOperators; op++ {
		t.unary[op-Not] = unaryEntry{op}
	}
	return t
}

// Simple returns the entry for op.
// Simple panics if op is not a valid [SimpleOperator].
func (t *Tables) Simple(op SimpleOperator) SimpleEntry {
	if !op.IsValid() {
		panic(fmt.Sprintf("luacode: no simple table entry for %v", op))
	}
	return t.simple[op-Add]
}

// Comparison returns the entry for op.
// Comparison panics if op is not a valid [ComparisonOperator].
func (t *Tables) Comparison(op ComparisonOperator) ComparisonEntry {
	if !op.IsValid() {
		panic(fmt.Sprintf("luacode: no comparison table entry for %v", op))
	}
	return t.comparison[op-NotEqual]
}

// Unary returns the entry for op.
// Unary panics if op is not a valid [UnaryOperator].
func (t *Tables) Unary(op UnaryOperator) UnaryEntry {
	if !op.IsValid() {
		panic(fmt.Sprintf("luacode: no unary table entry for %v", op))
	}
	return t.unary[op-Not]
}

type simpleEntry struct {
	op SimpleOperator
}

func (e simpleEntry) Operator() SimpleOperator {
	return e.op
}

func (e simpleEntry) MakeOpcode(dest RegisterIndex, left, right Operand) Instruction {
	op := simpleOpCode(e.op, left.Kind(), right.Kind())
	return ABCInstruction(op, uint8(dest), left.Index(), right.Index(), false)
}

func (e simpleEntry) ConstantFold(left, right Value) (Value, bool) {
	// Strings are coerced to numbers only at run time.
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, false
	}
	result, err := Arithmetic(e.op, left, right)
	if err != nil {
		return Value{}, false
	}
	return foldedNumber(result)
}

type comparisonEntry struct {
	op ComparisonOperator
}

func (e comparisonEntry) Operator() ComparisonOperator {
	return e.op
}

func (e comparisonEntry) MakeOpcode(left, right Operand) Instruction {
	op := comparisonOpCode(e.op, left.Kind(), right.Kind())
	return ABCInstruction(op, left.Index(), right.Index(), 0, false)
}

func (e comparisonEntry) ConstantFold(left, right Value) (Value, bool) {
	result, err := Compare(e.op, left, right)
	if err != nil {
		return Value{}, false
	}
	return BoolValue(result), true
}

type unaryEntry struct {
	op UnaryOperator
}

func (e unaryEntry) Operator() UnaryOperator {
	return e.op
}

func (e unaryEntry) MakeOpcode(dest RegisterIndex, source Operand) Instruction {
	op := unaryOpCode(e.op, source.Kind())
	return ABCInstruction(op, uint8(dest), source.Index(), 0, false)
}

func (e unaryEntry) ConstantFold(v Value) (Value, bool) {
	switch e.op {
	case Not:
		return BoolValue(!v.Truthy()), true
	case Minus, BitwiseNot:
		if !v.IsNumber() {
			return Value{}, false
		}
		result, err := Unary(e.op, v)
		if err != nil {
			return Value{}, false
		}
		return foldedNumber(result)
	case Length:
		if !v.IsString() {
			return Value{}, false
		}
		result, err := Unary(e.op, v)
		return result, err == nil
	default:
		return Value{}, false
	}
}

// foldedNumber reports whether a numeric result may replace
// the operation that produced it.
// Numbers with tricky equality properties (NaN and ±0.0) are not folded.
func foldedNumber(v Value) (Value, bool) {
	if v.IsInteger() {
		return v, true
	}
	n, ok := v.Float64()
	if !ok || math.IsNaN(n) || n == 0 {
		return Value{}, false
	}
	return v, true
}

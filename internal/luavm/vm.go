// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package luavm executes compiled Lua expressions.
// Its operators share their semantics with the constant folding in [luacode]
// and add the coercions that only happen at run time.
package luavm

import (
	"context"
	"errors"
	"fmt"

	"luaops.dev/pkg/internal/luacode"
	"zombiezen.com/go/log"
)

// Call runs f with the given arguments and returns its result.
// args[i] is the value of f.Params[i].
// Missing arguments are nil.
func Call(ctx context.Context, f *luacode.Function, args ...luacode.Value) (luacode.Value, error) {
	if len(args) > f.NumParams() {
		return luacode.Value{}, fmt.Errorf("call %v: %d arguments given for %d parameters", f.Source, len(args), f.NumParams())
	}
	fr := &frame{
		f:         f,
		registers: make([]luacode.Value, max(int(f.MaxStackSize), f.NumParams())),
	}
	copy(fr.registers, args)

	for pc := 0; pc < len(f.Code); {
		if err := ctx.Err(); err != nil {
			return luacode.Value{}, err
		}
		nextPC, err := fr.step(pc)
		if errors.Is(err, errReturn) {
			log.Debugf(ctx, "%v returned %v after %d instructions", f.Source, fr.result, pc+1)
			return fr.result, nil
		}
		if err != nil {
			return luacode.Value{}, &Error{PC: pc, OpCode: f.Code[pc].OpCode(), Err: err}
		}
		if nextPC < 0 || nextPC > len(f.Code) {
			return luacode.Value{}, &Error{PC: pc, OpCode: f.Code[pc].OpCode(), Err: errors.New("jumped out of bounds")}
		}
		pc = nextPC
	}
	return luacode.Value{}, fmt.Errorf("call %v: no return instruction", f.Source)
}

// errReturn is a sentinel returned by [*frame.step]
// when the function returns.
var errReturn = errors.New("return")

// frame is the activation record of a [luacode.Function].
type frame struct {
	f         *luacode.Function
	registers []luacode.Value
	result    luacode.Value
}

// step executes the instruction at pc
// and returns the index of the next instruction to execute.
func (fr *frame) step(pc int) (nextPC int, err error) {
	i := fr.f.Code[pc]
	op := i.OpCode()
	nextPC = pc + 1
	if op.SetsA() {
		if _, err := fr.register(i.ArgA()); err != nil {
			return 0, err
		}
	}

	if sop, left, right, ok := op.Simple(); ok {
		x, err := fr.operand(left, i.ArgB())
		if err != nil {
			return 0, err
		}
		y, err := fr.operand(right, i.ArgC())
		if err != nil {
			return 0, err
		}
		fr.registers[i.ArgA()], err = arithmetic(sop, x, y)
		return nextPC, err
	}
	if cop, left, right, ok := op.Comparison(); ok {
		x, err := fr.operand(left, i.ArgA())
		if err != nil {
			return 0, err
		}
		y, err := fr.operand(right, i.ArgB())
		if err != nil {
			return 0, err
		}
		result, err := compare(cop, x, y)
		if err != nil {
			return 0, err
		}
		if result == i.K() {
			nextPC++
		}
		return nextPC, nil
	}
	if uop, source, ok := op.Unary(); ok {
		x, err := fr.operand(source, i.ArgB())
		if err != nil {
			return 0, err
		}
		fr.registers[i.ArgA()], err = unary(uop, x)
		return nextPC, err
	}

	switch op {
	case luacode.OpMove:
		v, err := fr.register(i.ArgB())
		if err != nil {
			return 0, err
		}
		fr.registers[i.ArgA()] = v
	case luacode.OpLoadK:
		k, err := fr.constant(int(i.ArgBx()))
		if err != nil {
			return 0, err
		}
		fr.registers[i.ArgA()] = k
	case luacode.OpLoadNil:
		regs, err := fr.registerRange(i.ArgA(), int(i.ArgB())+1)
		if err != nil {
			return 0, err
		}
		clear(regs)
	case luacode.OpLoadFalse:
		fr.registers[i.ArgA()] = luacode.BoolValue(false)
	case luacode.OpLFalseSkip:
		fr.registers[i.ArgA()] = luacode.BoolValue(false)
		nextPC++
	case luacode.OpLoadTrue:
		fr.registers[i.ArgA()] = luacode.BoolValue(true)
	case luacode.OpConcat:
		regs, err := fr.registerRange(i.ArgA(), int(i.ArgB()))
		if err != nil {
			return 0, err
		}
		fr.registers[i.ArgA()], err = concat(regs)
		if err != nil {
			return 0, err
		}
	case luacode.OpJMP:
		nextPC += int(i.J())
	case luacode.OpTest:
		v, err := fr.register(i.ArgA())
		if err != nil {
			return 0, err
		}
		if v.Truthy() == i.K() {
			nextPC++
		}
	case luacode.OpTestSet:
		v, err := fr.register(i.ArgB())
		if err != nil {
			return 0, err
		}
		if v.Truthy() == i.K() {
			nextPC++
		} else {
			fr.registers[i.ArgA()] = v
		}
	case luacode.OpReturn1:
		v, err := fr.register(i.ArgA())
		if err != nil {
			return 0, err
		}
		fr.result = v
		return 0, errReturn
	default:
		return 0, errors.New("unhandled instruction")
	}
	return nextPC, nil
}

func (fr *frame) register(r uint8) (luacode.Value, error) {
	if int(r) >= len(fr.registers) {
		return luacode.Value{}, fmt.Errorf("register %d out of range", r)
	}
	return fr.registers[r], nil
}

func (fr *frame) registerRange(start uint8, n int) ([]luacode.Value, error) {
	end := int(start) + n
	if n < 1 || end > len(fr.registers) {
		return nil, fmt.Errorf("registers [%d,%d) out of range", start, end)
	}
	return fr.registers[start:end], nil
}

func (fr *frame) constant(k int) (luacode.Value, error) {
	if k >= len(fr.f.Constants) {
		return luacode.Value{}, fmt.Errorf("constant %d out of range", k)
	}
	return fr.f.Constants[k], nil
}

func (fr *frame) operand(kind luacode.OperandKind, i uint8) (luacode.Value, error) {
	if kind == luacode.ConstantKind {
		return fr.constant(int(i))
	}
	return fr.register(i)
}

// Error is a runtime error raised by an instruction.
type Error struct {
	// PC is the index of the instruction in the function's code.
	PC     int
	OpCode luacode.OpCode
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pc %d (%v): %v", e.PC, e.OpCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"errors"
	"fmt"
)

var (
	errTooManyRegisters = errors.New("function or expression needs too many registers")
	errTooManyConstants = errors.New("too many constants")
)

// funcState is the mutable state associated with a [Function]
// while it is being compiled.
//
// Equivalent to `FuncState` in upstream Lua.
type funcState struct {
	*Function

	tables *Tables
	fold   bool

	// params maps a free name to its register.
	params map[string]RegisterIndex
	// constants maps a value to its index in Function.Constants.
	constants map[Value]int
	// numParams is the number of registers at the bottom of the frame
	// that hold parameters and must never be freed.
	numParams RegisterIndex
	// firstFreeRegister is the first free register.
	firstFreeRegister RegisterIndex
}

// code appends an instruction to the function
// and returns its index.
func (fs *funcState) code(i Instruction) int {
	fs.Code = append(fs.Code, i)
	return len(fs.Code) - 1
}

// codeJump appends a jump instruction with an unknown destination
// and returns its index.
// The destination must be set later with [funcState.fixJump].
func (fs *funcState) codeJump() int {
	return fs.code(JInstruction(OpJMP, noJump))
}

// reserveRegister reserves the next free register.
func (fs *funcState) reserveRegister() (RegisterIndex, error) {
	if err := fs.reserveRegisters(1); err != nil {
		return 0, err
	}
	return fs.firstFreeRegister - 1, nil
}

// reserveRegisters reserves the next n registers.
//
// Equivalent to `luaK_reserveregs` in upstream Lua.
func (fs *funcState) reserveRegisters(n int) error {
	if err := fs.checkStack(n); err != nil {
		return err
	}
	fs.firstFreeRegister += RegisterIndex(n)
	return nil
}

// checkStack determines whether there is sufficient room to add n more registers.
// The high watermark is recorded in the [Function] as MaxStackSize.
//
// Equivalent to `luaK_checkstack` in upstream Lua.
func (fs *funcState) checkStack(n int) error {
	newStack := int(fs.firstFreeRegister) + n
	if newStack <= int(fs.MaxStackSize) {
		return nil
	}
	if newStack > maxRegisters {
		return errTooManyRegisters
	}
	fs.MaxStackSize = uint8(newStack)
	return nil
}

// isTemporary reports whether r holds an intermediate result
// rather than a parameter.
func (fs *funcState) isTemporary(r RegisterIndex) bool {
	return r >= fs.numParams
}

// freeRegister frees r if it is a temporary.
// Temporaries must be freed in the reverse order they were reserved.
//
// Equivalent to `freereg` in upstream Lua.
func (fs *funcState) freeRegister(r RegisterIndex) error {
	if !fs.isTemporary(r) {
		return nil
	}
	if r != fs.firstFreeRegister-1 {
		return fmt.Errorf("internal error: freeing register %d (first free is %d)", r, fs.firstFreeRegister)
	}
	fs.firstFreeRegister--
	return nil
}

// freeExpression frees the register used by e, if any.
//
// Equivalent to `freeexp` in upstream Lua.
func (fs *funcState) freeExpression(e expDesc) error {
	if e.kind != expKindRegister {
		return nil
	}
	return fs.freeRegister(e.register)
}

// freeOperands frees the registers used by two operands
// in stack order.
//
// Equivalent to `freeregs` in upstream Lua.
func (fs *funcState) freeOperands(o1, o2 Operand) error {
	r1, ok1 := o1.Register()
	r2, ok2 := o2.Register()
	switch {
	case ok1 && ok2:
		if err := fs.freeRegister(max(r1, r2)); err != nil {
			return err
		}
		return fs.freeRegister(min(r1, r2))
	case ok1:
		return fs.freeRegister(r1)
	case ok2:
		return fs.freeRegister(r2)
	default:
		return nil
	}
}

// addConstant returns the index of v in the constant pool,
// adding it if necessary.
// Values are deduplicated by identity,
// so 1 and 1.0 occupy different slots.
//
// Equivalent to `addk` in upstream Lua.
func (fs *funcState) addConstant(v Value) (int, error) {
	if i, ok := fs.constants[v]; ok {
		return i, nil
	}
	i := len(fs.Constants)
	if i > maxArgBx {
		return 0, errTooManyConstants
	}
	fs.Constants = append(fs.Constants, v)
	fs.constants[v] = i
	return i, nil
}

// fixJump changes the jump instruction at pc to jump to dest.
//
// Equivalent to `fixjump` in upstream Lua.
func (fs *funcState) fixJump(pc int, dest int) error {
	jmp := &fs.Code[pc]
	offset := dest - (pc + 1)
	if !(-offsetJ <= offset && offset <= maxJArg-offsetJ) {
		return errors.New("control structure too long")
	}
	op := jmp.OpCode()
	if op != OpJMP {
		return fmt.Errorf("fixJump called on %v", op)
	}
	*jmp = JInstruction(op, int32(offset))
	return nil
}

// negateCondition inverts a comparison instruction
// by flipping its k flag.
//
// Equivalent to `negatecondition` in upstream Lua.
func (fs *funcState) negateCondition(pc int) error {
	i := &fs.Code[pc]
	op := i.OpCode()
	if _, _, _, isComparison := op.Comparison(); !isComparison {
		return fmt.Errorf("instruction at %d is not a comparison (got %v)", pc, op)
	}
	var ok bool
	*i, ok = i.WithK(!i.K())
	if !ok {
		return fmt.Errorf("instruction at %d (%v) does not have K argument", pc, op)
	}
	return nil
}

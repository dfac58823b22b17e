// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import "fmt"

// expDesc is a description of a partially compiled expression.
// Expressions are kept in the loosest form possible
// until an operator forces them into a register or the constant pool.
//
// Equivalent to `expdesc` in upstream Lua.
type expDesc struct {
	kind expKind
	// value is the literal for [expKindConstant].
	value Value
	// register is the register for [expKindRegister].
	register RegisterIndex
	// pc is the index of the comparison instruction for [expKindCondition].
	pc int
}

type expKind uint8

const (
	// expKindConstant is a literal or folded value
	// that has not been placed in the constant pool yet.
	expKindConstant expKind = 1 + iota
	// expKindRegister is a value stored in a register.
	expKindRegister
	// expKindCondition is a boolean produced by a comparison instruction.
	// No jump has been emitted after the comparison yet.
	expKindCondition
)

func constantExpression(v Value) expDesc {
	return expDesc{kind: expKindConstant, value: v}
}

func registerExpression(r RegisterIndex) expDesc {
	return expDesc{kind: expKindRegister, register: r}
}

func conditionExpression(pc int) expDesc {
	return expDesc{kind: expKindCondition, pc: pc}
}

func (e expDesc) String() string {
	switch e.kind {
	case expKindConstant:
		return fmt.Sprintf("constant(%v)", e.value)
	case expKindRegister:
		return fmt.Sprintf("register(%d)", e.register)
	case expKindCondition:
		return fmt.Sprintf("condition(pc=%d)", e.pc)
	default:
		return fmt.Sprintf("expDesc(kind=%d)", e.kind)
	}
}

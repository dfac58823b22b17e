// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import "fmt"

// RegisterIndex is the index of a register in a function's frame.
type RegisterIndex uint8

// maxRegisters is the maximum number of registers in a function.
//
// Equivalent to `MAXREGS` in upstream Lua.
const maxRegisters = 255

// ConstantIndex is the index of a value in a function's constant pool
// that an instruction operand can refer to directly.
// Constants at larger indices must be loaded into a register first.
type ConstantIndex uint8

// maxOperandConstant is the largest constant pool index
// that fits in an instruction operand.
const maxOperandConstant = 1<<8 - 1

// OperandKind is an enumeration of the places an [Operand] can live.
type OperandKind uint8

// Operand kinds.
const (
	// RegisterKind indicates an operand held in a register.
	RegisterKind OperandKind = 0
	// ConstantKind indicates an operand held in the constant pool.
	ConstantKind OperandKind = 1
)

// String returns "R" or "K".
func (kind OperandKind) String() string {
	switch kind {
	case RegisterKind:
		return "R"
	case ConstantKind:
		return "K"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(kind))
	}
}

// Operand is the location of a compiled operand:
// either a register or a constant pool slot.
// Operands are indices into arrays owned by the caller.
type Operand struct {
	kind  OperandKind
	index uint8
}

// RegisterOperand returns an [Operand] that refers to a register.
func RegisterOperand(r RegisterIndex) Operand {
	return Operand{kind: RegisterKind, index: uint8(r)}
}

// ConstantOperand returns an [Operand] that refers to a constant.
func ConstantOperand(k ConstantIndex) Operand {
	return Operand{kind: ConstantKind, index: uint8(k)}
}

// Kind returns whether the operand is a register or a constant.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Index returns the register or constant index of the operand.
func (o Operand) Index() uint8 {
	return o.index
}

// Register returns the operand's register
// and reports whether the operand is a register.
func (o Operand) Register() (_ RegisterIndex, ok bool) {
	return RegisterIndex(o.index), o.kind == RegisterKind
}

// Constant returns the operand's constant pool index
// and reports whether the operand is a constant.
func (o Operand) Constant() (_ ConstantIndex, ok bool) {
	return ConstantIndex(o.index), o.kind == ConstantKind
}

// String formats the operand like "R3" or "K2".
func (o Operand) String() string {
	return fmt.Sprintf("%v%d", o.kind, o.index)
}

// operandVariant returns the offset of the operand-kind pair
// from the register-register variant of an opcode.
// Variants are laid out in the order RR, RC, CR, CC.
func operandVariant(left, right OperandKind) OpCode {
	return OpCode(left)<<1 | OpCode(right)
}

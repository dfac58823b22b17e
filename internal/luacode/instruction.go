// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=OpCode,OpMode -linecomment -output=instruction_string.go

package luacode

import "fmt"

// Instruction is a single virtual machine instruction.
type Instruction uint32

// ABCInstruction returns a new [OpModeABC] [Instruction]
// with the given arguments.
// ABCInstruction panics if the [OpCode] given
// does not return [OpModeABC] from [OpCode.OpMode].
func ABCInstruction(op OpCode, a, b, c uint8, k bool) Instruction {
	if op.OpMode() != OpModeABC {
		panic("ABCInstruction with invalid OpCode")
	}
	var kflag Instruction
	if k {
		kflag = 1 << posK
	}
	return Instruction(op) |
		Instruction(a)<<posA |
		kflag |
		Instruction(b)<<posB |
		Instruction(c)<<posC
}

// ABxInstruction returns a new [OpModeABx] [Instruction]
// with the given arguments.
// ABxInstruction panics if the [OpCode] given
// does not return [OpModeABx] from [OpCode.OpMode]
// or bx is out of range.
func ABxInstruction(op OpCode, a uint8, bx int32) Instruction {
	if op.OpMode() != OpModeABx {
		panic("ABxInstruction with invalid OpCode")
	}
	if bx < 0 || bx > maxArgBx {
		panic("Bx argument out of range")
	}
	return Instruction(op) |
		Instruction(a)<<posA |
		Instruction(bx)<<posBx
}

// JInstruction returns a new [OpModeJ] (jump) [Instruction]
// with the given offset relative to the end of the instruction.
// JInstruction panics if the [OpCode] given
// does not return [OpModeJ] from [OpCode.OpMode].
func JInstruction(op OpCode, j int32) Instruction {
	if op.OpMode() != OpModeJ {
		panic("JInstruction with invalid OpCode")
	}
	return Instruction(op) | Instruction(j+offsetJ)<<posJ
}

const sizeOpCode = 7

// OpCode returns the instruction's type.
func (i Instruction) OpCode() OpCode {
	return OpCode(i & (1<<sizeOpCode - 1))
}

const (
	sizeA   = 8
	maxArgA = 1<<sizeA - 1
	posA    = sizeOpCode
)

// ArgA returns the first (A) argument
// of an [OpModeABC] or [OpModeABx] instruction.
func (i Instruction) ArgA() uint8 {
	switch i.OpCode().OpMode() {
	case OpModeABC, OpModeABx:
		return uint8(i >> posA)
	default:
		return 0
	}
}

// WithArgA returns a copy of i
// with its first (A) argument changed to the given value,
// or i unchanged if i doesn't have an A argument.
func (i Instruction) WithArgA(a uint8) (_ Instruction, ok bool) {
	switch i.OpCode().OpMode() {
	case OpModeABC, OpModeABx:
		const mask = maxArgA << posA
		return i&^mask | (Instruction(a) << posA), true
	default:
		return i, false
	}
}

const (
	sizeK = 1
	posK  = posA + sizeA
)

// K returns the k flag of an [OpModeABC] instruction.
// For comparison instructions, k is the value of the comparison
// that causes the next instruction to be skipped.
func (i Instruction) K() bool {
	return i.OpCode().OpMode() == OpModeABC && i&(1<<posK) != 0
}

// WithK returns a copy of i
// with its k flag changed to the given value,
// or i unchanged if [OpCode.OpMode] is not [OpModeABC].
func (i Instruction) WithK(k bool) (_ Instruction, ok bool) {
	if i.OpCode().OpMode() != OpModeABC {
		return i, false
	}
	const mask = 1 << posK
	if k {
		return i | mask, true
	} else {
		return i &^ mask, true
	}
}

const (
	sizeB = 8
	posB  = posK + sizeK
)

// ArgB returns the second (B) argument of an [OpModeABC] instruction.
func (i Instruction) ArgB() uint8 {
	if i.OpCode().OpMode() != OpModeABC {
		return 0
	}
	return uint8(i >> posB)
}

const (
	sizeC = 8
	posC  = posB + sizeB
)

// ArgC returns the third (C) argument of an [OpModeABC] instruction.
func (i Instruction) ArgC() uint8 {
	if i.OpCode().OpMode() != OpModeABC {
		return 0
	}
	return uint8(i >> posC)
}

const (
	sizeBx   = 17
	maxArgBx = 1<<sizeBx - 1
	posBx    = posA + sizeA
)

// ArgBx returns the second (Bx) argument of an [OpModeABx] instruction.
func (i Instruction) ArgBx() int32 {
	if i.OpCode().OpMode() != OpModeABx {
		return 0
	}
	return int32(i >> posBx)
}

const (
	maxJArg = 1<<25 - 1
	posJ    = sizeOpCode
	offsetJ = maxJArg >> 1

	noJump = -1
)

// J returns the jump offset
// (relative to the end of the instruction)
// for a [OpModeJ] instruction.
func (i Instruction) J() int32 {
	if i.OpCode().OpMode() != OpModeJ {
		return noJump
	}
	return int32(i>>posJ) - offsetJ
}

// String decodes the instruction
// and formats it in a manner similar to [luac] -l.
//
// [luac]: https://www.lua.org/manual/5.4/luac.html
func (i Instruction) String() string {
	switch op := i.OpCode(); op.OpMode() {
	case OpModeABC:
		k := 0
		if i.K() {
			k = 1
		}
		return fmt.Sprintf("%-10s %d %d %d %d", op, i.ArgA(), i.ArgB(), i.ArgC(), k)
	case OpModeABx:
		return fmt.Sprintf("%-10s %d %d", op, i.ArgA(), i.ArgBx())
	case OpModeJ:
		return fmt.Sprintf("%-10s %+d", op, i.J())
	default:
		return fmt.Sprintf("Instruction(%#08x)", uint32(i))
	}
}

// OpCode is an enumeration of [Instruction] types.
type OpCode uint8

// IsValid reports whether the opcode is one of the known instructions.
func (op OpCode) IsValid() bool {
	return op <= maxOpCode
}

func (op OpCode) props() byte {
	if !op.IsValid() {
		return 0
	}
	return opProps[op]
}

// OpMode returns the format of an [Instruction] that uses the opcode.
//
// Equivalent to `getOpMode` in upstream Lua.
func (op OpCode) OpMode() OpMode {
	return OpMode(op.props() & 7)
}

// SetsA reports whether an [Instruction] that uses the opcode
// would change the value of the register given in [Instruction.ArgA].
//
// Equivalent to `testAMode` in upstream Lua.
func (op OpCode) SetsA() bool {
	return op.props()&(1<<3) != 0
}

// IsTest reports whether the instruction is a test.
// In a valid program, the next instruction will be a jump.
//
// Equivalent to `testTMode` in upstream Lua.
func (op OpCode) IsTest() bool {
	return op.props()&(1<<4) != 0
}

// Simple reports whether the opcode is one of the variants of a [SimpleOperator]
// and if so, which operand kinds its B and C arguments refer to.
func (op OpCode) Simple() (_ SimpleOperator, left, right OperandKind, ok bool) {
	if op < OpAddRR || op > OpSHRKK {
		return 0, 0, 0, false
	}
	n := op - OpAddRR
	return Add + SimpleOperator(n/4), OperandKind(n>>1&1), OperandKind(n & 1), true
}

// Comparison reports whether the opcode is one of the variants of a [ComparisonOperator]
// and if so, which operand kinds its A and B arguments refer to.
func (op OpCode) Comparison() (_ ComparisonOperator, left, right OperandKind, ok bool) {
	if op < OpNERR || op > OpGEKK {
		return 0, 0, 0, false
	}
	n := op - OpNERR
	return NotEqual + ComparisonOperator(n/4), OperandKind(n>>1&1), OperandKind(n & 1), true
}

// Unary reports whether the opcode is one of the variants of a [UnaryOperator]
// and if so, which operand kind its B argument refers to.
func (op OpCode) Unary() (_ UnaryOperator, source OperandKind, ok bool) {
	if op < OpNotR || op > OpLenK {
		return 0, 0, false
	}
	n := op - OpNotR
	return Not + UnaryOperator(n/2), OperandKind(n & 1), true
}

// simpleOpCode returns the opcode of a [SimpleOperator]
// for the given operand kinds.
func simpleOpCode(op SimpleOperator, left, right OperandKind) OpCode {
	return OpAddRR + 4*OpCode(op-Add) + operandVariant(left, right)
}

// comparisonOpCode returns the opcode of a [ComparisonOperator]
// for the given operand kinds.
func comparisonOpCode(op ComparisonOperator, left, right OperandKind) OpCode {
	return OpNERR + 4*OpCode(op-NotEqual) + operandVariant(left, right)
}

// unaryOpCode returns the opcode of a [UnaryOperator]
// for the given operand kind.
func unaryOpCode(op UnaryOperator, source OperandKind) OpCode {
	return OpNotR + 2*OpCode(op-Not) + OpCode(source)
}

// Defined [OpCode] values.
//
// The variants of each operator are ordered
// register-register, register-constant, constant-register, constant-constant.
// In the descriptions below, comparisons skip the next instruction
// when their result equals the k flag.
const (
	// A B R[A] := R[B]
	OpMove OpCode = 0 // MOVE
	// A Bx R[A] := K[Bx]
	OpLoadK OpCode = 1 // LOADK
	// A B R[A], R[A+1], ..., R[A+B] := nil
	OpLoadNil OpCode = 2 // LOADNIL
	// A R[A] := false
	OpLoadFalse OpCode = 3 // LOADFALSE
	// A R[A] := false; pc++
	OpLFalseSkip OpCode = 4 // LFALSESKIP
	// A R[A] := true
	OpLoadTrue OpCode = 5 // LOADTRUE
	// A B C R[A] := R[B] + R[C]
	OpAddRR OpCode = 6 // ADDRR
	// A B C R[A] := R[B] + K[C]
	OpAddRK OpCode = 7 // ADDRK
	// A B C R[A] := K[B] + R[C]
	OpAddKR OpCode = 8 // ADDKR
	// A B C R[A] := K[B] + K[C]
	OpAddKK OpCode = 9 // ADDKK
	// A B C R[A] := R[B] - R[C]
	OpSubRR OpCode = 10 // SUBRR
	// A B C R[A] := R[B] - K[C]
	OpSubRK OpCode = 11 // SUBRK
	// A B C R[A] := K[B] - R[C]
	OpSubKR OpCode = 12 // SUBKR
	// A B C R[A] := K[B] - K[C]
	OpSubKK OpCode = 13 // SUBKK
	// A B C R[A] := R[B] * R[C]
	OpMulRR OpCode = 14 // MULRR
	// A B C R[A] := R[B] * K[C]
	OpMulRK OpCode = 15 // MULRK
	// A B C R[A] := K[B] * R[C]
	OpMulKR OpCode = 16 // MULKR
	// A B C R[A] := K[B] * K[C]
	OpMulKK OpCode = 17 // MULKK
	// A B C R[A] := R[B] % R[C]
	OpModRR OpCode = 18 // MODRR
	// A B C R[A] := R[B] % K[C]
	OpModRK OpCode = 19 // MODRK
	// A B C R[A] := K[B] % R[C]
	OpModKR OpCode = 20 // MODKR
	// A B C R[A] := K[B] % K[C]
	OpModKK OpCode = 21 // MODKK
	// A B C R[A] := R[B] ^ R[C]
	OpPowRR OpCode = 22 // POWRR
	// A B C R[A] := R[B] ^ K[C]
	OpPowRK OpCode = 23 // POWRK
	// A B C R[A] := K[B] ^ R[C]
	OpPowKR OpCode = 24 // POWKR
	// A B C R[A] := K[B] ^ K[C]
	OpPowKK OpCode = 25 // POWKK
	// A B C R[A] := R[B] / R[C]
	OpDivRR OpCode = 26 // DIVRR
	// A B C R[A] := R[B] / K[C]
	OpDivRK OpCode = 27 // DIVRK
	// A B C R[A] := K[B] / R[C]
	OpDivKR OpCode = 28 // DIVKR
	// A B C R[A] := K[B] / K[C]
	OpDivKK OpCode = 29 // DIVKK
	// A B C R[A] := R[B] // R[C]
	OpIDivRR OpCode = 30 // IDIVRR
	// A B C R[A] := R[B] // K[C]
	OpIDivRK OpCode = 31 // IDIVRK
	// A B C R[A] := K[B] // R[C]
	OpIDivKR OpCode = 32 // IDIVKR
	// A B C R[A] := K[B] // K[C]
	OpIDivKK OpCode = 33 // IDIVKK
	// A B C R[A] := R[B] & R[C]
	OpBAndRR OpCode = 34 // BANDRR
	// A B C R[A] := R[B] & K[C]
	OpBAndRK OpCode = 35 // BANDRK
	// A B C R[A] := K[B] & R[C]
	OpBAndKR OpCode = 36 // BANDKR
	// A B C R[A] := K[B] & K[C]
	OpBAndKK OpCode = 37 // BANDKK
	// A B C R[A] := R[B] | R[C]
	OpBOrRR OpCode = 38 // BORRR
	// A B C R[A] := R[B] | K[C]
	OpBOrRK OpCode = 39 // BORRK
	// A B C R[A] := K[B] | R[C]
	OpBOrKR OpCode = 40 // BORKR
	// A B C R[A] := K[B] | K[C]
	OpBOrKK OpCode = 41 // BORKK
	// A B C R[A] := R[B] ~ R[C]
	OpBXORRR OpCode = 42 // BXORRR
	// A B C R[A] := R[B] ~ K[C]
	OpBXORRK OpCode = 43 // BXORRK
	// A B C R[A] := K[B] ~ R[C]
	OpBXORKR OpCode = 44 // BXORKR
	// A B C R[A] := K[B] ~ K[C]
	OpBXORKK OpCode = 45 // BXORKK
	// A B C R[A] := R[B] << R[C]
	OpSHLRR OpCode = 46 // SHLRR
	// A B C R[A] := R[B] << K[C]
	OpSHLRK OpCode = 47 // SHLRK
	// A B C R[A] := K[B] << R[C]
	OpSHLKR OpCode = 48 // SHLKR
	// A B C R[A] := K[B] << K[C]
	OpSHLKK OpCode = 49 // SHLKK
	// A B C R[A] := R[B] >> R[C]
	OpSHRRR OpCode = 50 // SHRRR
	// A B C R[A] := R[B] >> K[C]
	OpSHRRK OpCode = 51 // SHRRK
	// A B C R[A] := K[B] >> R[C]
	OpSHRKR OpCode = 52 // SHRKR
	// A B C R[A] := K[B] >> K[C]
	OpSHRKK OpCode = 53 // SHRKK
	// A B k if ((R[A] ~= R[B]) == k) then pc++
	OpNERR OpCode = 54 // NERR
	// A B k if ((R[A] ~= K[B]) == k) then pc++
	OpNERK OpCode = 55 // NERK
	// A B k if ((K[A] ~= R[B]) == k) then pc++
	OpNEKR OpCode = 56 // NEKR
	// A B k if ((K[A] ~= K[B]) == k) then pc++
	OpNEKK OpCode = 57 // NEKK
	// A B k if ((R[A] == R[B]) == k) then pc++
	OpEQRR OpCode = 58 // EQRR
	// A B k if ((R[A] == K[B]) == k) then pc++
	OpEQRK OpCode = 59 // EQRK
	// A B k if ((K[A] == R[B]) == k) then pc++
	OpEQKR OpCode = 60 // EQKR
	// A B k if ((K[A] == K[B]) == k) then pc++
	OpEQKK OpCode = 61 // EQKK
	// A B k if ((R[A] < R[B]) == k) then pc++
	OpLTRR OpCode = 62 // LTRR
	// A B k if ((R[A] < K[B]) == k) then pc++
	OpLTRK OpCode = 63 // LTRK
	// A B k if ((K[A] < R[B]) == k) then pc++
	OpLTKR OpCode = 64 // LTKR
	// A B k if ((K[A] < K[B]) == k) then pc++
	OpLTKK OpCode = 65 // LTKK
	// A B k if ((R[A] <= R[B]) == k) then pc++
	OpLERR OpCode = 66 // LERR
	// A B k if ((R[A] <= K[B]) == k) then pc++
	OpLERK OpCode = 67 // LERK
	// A B k if ((K[A] <= R[B]) == k) then pc++
	OpLEKR OpCode = 68 // LEKR
	// A B k if ((K[A] <= K[B]) == k) then pc++
	OpLEKK OpCode = 69 // LEKK
	// A B k if ((R[A] > R[B]) == k) then pc++
	OpGTRR OpCode = 70 // GTRR
	// A B k if ((R[A] > K[B]) == k) then pc++
	OpGTRK OpCode = 71 // GTRK
	// A B k if ((K[A] > R[B]) == k) then pc++
	OpGTKR OpCode = 72 // GTKR
	// A B k if ((K[A] > K[B]) == k) then pc++
	OpGTKK OpCode = 73 // GTKK
	// A B k if ((R[A] >= R[B]) == k) then pc++
	OpGERR OpCode = 74 // GERR
	// A B k if ((R[A] >= K[B]) == k) then pc++
	OpGERK OpCode = 75 // GERK
	// A B k if ((K[A] >= R[B]) == k) then pc++
	OpGEKR OpCode = 76 // GEKR
	// A B k if ((K[A] >= K[B]) == k) then pc++
	OpGEKK OpCode = 77 // GEKK
	// A B R[A] := not R[B]
	OpNotR OpCode = 78 // NOTR
	// A B R[A] := not K[B]
	OpNotK OpCode = 79 // NOTK
	// A B R[A] := -R[B]
	OpUNMR OpCode = 80 // UNMR
	// A B R[A] := -K[B]
	OpUNMK OpCode = 81 // UNMK
	// A B R[A] := ~R[B]
	OpBNotR OpCode = 82 // BNOTR
	// A B R[A] := ~K[B]
	OpBNotK OpCode = 83 // BNOTK
	// A B R[A] := #R[B]
	OpLenR OpCode = 84 // LENR
	// A B R[A] := #K[B]
	OpLenK OpCode = 85 // LENK
	// A B R[A] := R[A].. ... ..R[A + B - 1]
	OpConcat OpCode = 86 // CONCAT
	// sJ pc += sJ
	OpJMP OpCode = 87 // JMP
	// A k if (truthy(R[A]) == k) then pc++
	OpTest OpCode = 88 // TEST
	// A B k if (truthy(R[B]) == k) then pc++ else R[A] := R[B]
	OpTestSet OpCode = 89 // TESTSET
	// A return R[A]
	OpReturn1 OpCode = 90 // RETURN1

	maxOpCode = OpReturn1
)

var opProps = [...]byte{
	OpMove:       0b00001000 | byte(OpModeABC),
	OpLoadK:      0b00001000 | byte(OpModeABx),
	OpLoadNil:    0b00001000 | byte(OpModeABC),
	OpLoadFalse:  0b00001000 | byte(OpModeABC),
	OpLFalseSkip: 0b00001000 | byte(OpModeABC),
	OpLoadTrue:   0b00001000 | byte(OpModeABC),
	OpAddRR:      0b00001000 | byte(OpModeABC),
	OpAddRK:      0b00001000 | byte(OpModeABC),
	OpAddKR:      0b00001000 | byte(OpModeABC),
	OpAddKK:      0b00001000 | byte(OpModeABC),
	OpSubRR:      0b00001000 | byte(OpModeABC),
	OpSubRK:      0b00001000 | byte(OpModeABC),
	OpSubKR:      0b00001000 | byte(OpModeABC),
	OpSubKK:      0b00001000 | byte(OpModeABC),
	OpMulRR:      0b00001000 | byte(OpModeABC),
	OpMulRK:      0b00001000 | byte(OpModeABC),
	OpMulKR:      0b00001000 | byte(OpModeABC),
	OpMulKK:      0b00001000 | byte(OpModeABC),
	OpModRR:      0b00001000 | byte(OpModeABC),
	OpModRK:      0b00001000 | byte(OpModeABC),
	OpModKR:      0b00001000 | byte(OpModeABC),
	OpModKK:      0b00001000 | byte(OpModeABC),
	OpPowRR:      0b00001000 | byte(OpModeABC),
	OpPowRK:      0b00001000 | byte(OpModeABC),
	OpPowKR:      0b00001000 | byte(OpModeABC),
	OpPowKK:      0b00001000 | byte(OpModeABC),
	OpDivRR:      0b00001000 | byte(OpModeABC),
	OpDivRK:      0b00001000 | byte(OpModeABC),
	OpDivKR:      0b00001000 | byte(OpModeABC),
	OpDivKK:      0b00001000 | byte(OpModeABC),
	OpIDivRR:     0b00001000 | byte(OpModeABC),
	OpIDivRK:     0b00001000 | byte(OpModeABC),
	OpIDivKR:     0b00001000 | byte(OpModeABC),
	OpIDivKK:     0b00001000 | byte(OpModeABC),
	OpBAndRR:     0b00001000 | byte(OpModeABC),
	OpBAndRK:     0b00001000 | byte(OpModeABC),
	OpBAndKR:     0b00001000 | byte(OpModeABC),
	OpBAndKK:     0b00001000 | byte(OpModeABC),
	OpBOrRR:      0b00001000 | byte(OpModeABC),
	OpBOrRK:      0b00001000 | byte(OpModeABC),
	OpBOrKR:      0b00001000 | byte(OpModeABC),
	OpBOrKK:      0b00001000 | byte(OpModeABC),
	OpBXORRR:     0b00001000 | byte(OpModeABC),
	OpBXORRK:     0b00001000 | byte(OpModeABC),
	OpBXORKR:     0b00001000 | byte(OpModeABC),
	OpBXORKK:     0b00001000 | byte(OpModeABC),
	OpSHLRR:      0b00001000 | byte(OpModeABC),
	OpSHLRK:      0b00001000 | byte(OpModeABC),
	OpSHLKR:      0b00001000 | byte(OpModeABC),
	OpSHLKK:      0b00001000 | byte(OpModeABC),
	OpSHRRR:      0b00001000 | byte(OpModeABC),
	OpSHRRK:      0b00001000 | byte(OpModeABC),
	OpSHRKR:      0b00001000 | byte(OpModeABC),
	OpSHRKK:      0b00001000 | byte(OpModeABC),
	OpNERR:       0b00010000 | byte(OpModeABC),
	OpNERK:       0b00010000 | byte(OpModeABC),
	OpNEKR:       0b00010000 | byte(OpModeABC),
	OpNEKK:       0b00010000 | byte(OpModeABC),
	OpEQRR:       0b00010000 | byte(OpModeABC),
	OpEQRK:       0b00010000 | byte(OpModeABC),
	OpEQKR:       0b00010000 | byte(OpModeABC),
	OpEQKK:       0b00010000 | byte(OpModeABC),
	OpLTRR:       0b00010000 | byte(OpModeABC),
	OpLTRK:       0b00010000 | byte(OpModeABC),
	OpLTKR:       0b00010000 | byte(OpModeABC),
	OpLTKK:       0b00010000 | byte(OpModeABC),
	OpLERR:       0b00010000 | byte(OpModeABC),
	OpLERK:       0b00010000 | byte(OpModeABC),
	OpLEKR:       0b00010000 | byte(OpModeABC),
	OpLEKK:       0b00010000 | byte(OpModeABC),
	OpGTRR:       0b00010000 | byte(OpModeABC),
	OpGTRK:       0b00010000 | byte(OpModeABC),
	OpGTKR:       0b00010000 | byte(OpModeABC),
	OpGTKK:       0b00010000 | byte(OpModeABC),
	OpGERR:       0b00010000 | byte(OpModeABC),
	OpGERK:       0b00010000 | byte(OpModeABC),
	OpGEKR:       0b00010000 | byte(OpModeABC),
	OpGEKK:       0b00010000 | byte(OpModeABC),
	OpNotR:       0b00001000 | byte(OpModeABC),
	OpNotK:       0b00001000 | byte(OpModeABC),
	OpUNMR:       0b00001000 | byte(OpModeABC),
	OpUNMK:       0b00001000 | byte(OpModeABC),
	OpBNotR:      0b00001000 | byte(OpModeABC),
	OpBNotK:      0b00001000 | byte(OpModeABC),
	OpLenR:       0b00001000 | byte(OpModeABC),
	OpLenK:       0b00001000 | byte(OpModeABC),
	OpConcat:     0b00001000 | byte(OpModeABC),
	OpJMP:        0b00000000 | byte(OpModeJ),
	OpTest:       0b00010000 | byte(OpModeABC),
	OpTestSet:    0b00011000 | byte(OpModeABC),
	OpReturn1:    0b00000000 | byte(OpModeABC),
}

// OpMode is an enumeration of [Instruction] formats.
type OpMode uint8

// Instruction formats.
const (
	OpModeABC OpMode = 1 + iota
	OpModeABx
	OpModeJ
)

// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"errors"
	"fmt"
)

// CompileOptions is the set of optional parameters to [Compile].
type CompileOptions struct {
	// Source is recorded in the returned [Function]
	// and used in error messages.
	Source Source
	// DisableFolding prevents operations on literals
	// from being evaluated during compilation.
	DisableFolding bool
}

// Compile generates the code for an expression.
// The instructions for each operator are selected from tables.
// A single [Tables] may be shared by concurrent calls to Compile.
// opts may be nil, which is treated the same as the zero value.
func Compile(tables *Tables, e Expr, opts *CompileOptions) (*Function, error) {
	if tables == nil {
		return nil, errors.New("luacode.Compile: nil tables")
	}
	if opts == nil {
		opts = new(CompileOptions)
	}
	f := &Function{
		Source: opts.Source,
		Params: FreeNames(e),
	}
	fs := &funcState{
		Function:  f,
		tables:    tables,
		fold:      !opts.DisableFolding,
		params:    make(map[string]RegisterIndex, len(f.Params)),
		constants: make(map[Value]int),
	}
	if err := fs.reserveRegisters(len(f.Params)); err != nil {
		return nil, compileError(opts.Source, e, err)
	}
	for i, name := range f.Params {
		fs.params[name] = RegisterIndex(i)
	}
	fs.numParams = fs.firstFreeRegister

	result, err := fs.expression(e)
	if err != nil {
		return nil, compileError(opts.Source, e, err)
	}
	r, err := fs.expToAnyRegister(result)
	if err != nil {
		return nil, compileError(opts.Source, e, err)
	}
	fs.code(ABCInstruction(OpReturn1, uint8(r), 0, 0, false))
	return f, nil
}

func compileError(source Source, e Expr, err error) error {
	if pos := e.Pos(); pos.IsValid() {
		return fmt.Errorf("%v:%v: %w", source, pos, err)
	}
	return fmt.Errorf("%v: %w", source, err)
}

// expression generates code for e.
// The result may be left as a constant or a pending comparison
// so that the enclosing operator can choose how to consume it.
func (fs *funcState) expression(e Expr) (expDesc, error) {
	switch e := e.(type) {
	case *Literal:
		return constantExpression(e.Value), nil
	case *Name:
		r, ok := fs.params[e.Name]
		if !ok {
			return expDesc{}, fmt.Errorf("internal error: %s not a parameter", e.Name)
		}
		return registerExpression(r), nil
	case *ParenExpr:
		return fs.expression(e.X)
	case *UnaryExpr:
		return fs.codePrefix(e)
	case *BinaryExpr:
		switch family := Categorize(e.Op); family.Kind() {
		case SimpleFamily:
			op, _ := family.Simple()
			return fs.codeSimple(fs.tables.Simple(op), e)
		case ComparisonFamily:
			op, _ := family.Comparison()
			return fs.codeComparison(fs.tables.Comparison(op), e)
		case ShortCircuitFamily:
			op, _ := family.ShortCircuit()
			return fs.codeShortCircuit(op, e)
		case ConcatFamily:
			return fs.codeConcat(e)
		default:
			return expDesc{}, fmt.Errorf("internal error: unhandled family %v", family)
		}
	default:
		return expDesc{}, fmt.Errorf("internal error: unknown expression type %T", e)
	}
}

// codePrefix generates code for a unary operator.
//
// Equivalent to `luaK_prefix` in upstream Lua.
func (fs *funcState) codePrefix(e *UnaryExpr) (expDesc, error) {
	x, err := fs.expression(e.X)
	if err != nil {
		return expDesc{}, err
	}
	entry := fs.tables.Unary(e.Op)
	if fs.fold && x.kind == expKindConstant {
		if v, ok := entry.ConstantFold(x.value); ok {
			fs.Folded++
			return constantExpression(v), nil
		}
	}
	if e.Op == Not && x.kind == expKindCondition {
		if err := fs.negateCondition(x.pc); err != nil {
			return expDesc{}, err
		}
		return x, nil
	}

	source, err := fs.expToOperand(x)
	if err != nil {
		return expDesc{}, err
	}
	if r, ok := source.Register(); ok {
		if err := fs.freeRegister(r); err != nil {
			return expDesc{}, err
		}
	}
	dest, err := fs.reserveRegister()
	if err != nil {
		return expDesc{}, err
	}
	fs.code(entry.MakeOpcode(dest, source))
	return registerExpression(dest), nil
}

// binaryOperands generates code for both operands of a binary operator.
// A comparison on the left is stored in a register
// before any code for the right operand is generated.
//
// Equivalent to `luaK_infix` in upstream Lua.
func (fs *funcState) binaryOperands(e *BinaryExpr) (x, y expDesc, err error) {
	x, err = fs.expression(e.X)
	if err != nil {
		return expDesc{}, expDesc{}, err
	}
	if x.kind == expKindCondition {
		r, err := fs.expToNextRegister(x)
		if err != nil {
			return expDesc{}, expDesc{}, err
		}
		x = registerExpression(r)
	}
	y, err = fs.expression(e.Y)
	if err != nil {
		return expDesc{}, expDesc{}, err
	}
	return x, y, nil
}

// binaryOperandLocations converts both operands to [Operand] values
// and releases their temporaries.
// The released registers stay valid until the next reservation,
// so the caller can use them in the instruction it emits.
func (fs *funcState) binaryOperandLocations(x, y expDesc) (left, right Operand, err error) {
	left, err = fs.expToOperand(x)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	right, err = fs.expToOperand(y)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	if err := fs.freeOperands(left, right); err != nil {
		return Operand{}, Operand{}, err
	}
	return left, right, nil
}

// codeSimple generates code for an operator in the [SimpleFamily].
func (fs *funcState) codeSimple(entry SimpleEntry, e *BinaryExpr) (expDesc, error) {
	x, y, err := fs.binaryOperands(e)
	if err != nil {
		return expDesc{}, err
	}
	if fs.fold && x.kind == expKindConstant && y.kind == expKindConstant {
		if v, ok := entry.ConstantFold(x.value, y.value); ok {
			fs.Folded++
			return constantExpression(v), nil
		}
	}
	left, right, err := fs.binaryOperandLocations(x, y)
	if err != nil {
		return expDesc{}, err
	}
	dest, err := fs.reserveRegister()
	if err != nil {
		return expDesc{}, err
	}
	fs.code(entry.MakeOpcode(dest, left, right))
	return registerExpression(dest), nil
}

// codeComparison generates code for an operator in the [ComparisonFamily].
// Unless folded, the result is a pending condition.
func (fs *funcState) codeComparison(entry ComparisonEntry, e *BinaryExpr) (expDesc, error) {
	x, y, err := fs.binaryOperands(e)
	if err != nil {
		return expDesc{}, err
	}
	if fs.fold && x.kind == expKindConstant && y.kind == expKindConstant {
		if v, ok := entry.ConstantFold(x.value, y.value); ok {
			fs.Folded++
			return constantExpression(v), nil
		}
	}
	left, right, err := fs.binaryOperandLocations(x, y)
	if err != nil {
		return expDesc{}, err
	}
	pc := fs.code(entry.MakeOpcode(left, right))
	return conditionExpression(pc), nil
}

// codeShortCircuit generates code for "and" or "or".
// Both operands are evaluated into the same register
// and a test skips the right operand when the left determines the result.
//
// Roughly equivalent to `luaK_goiftrue`/`luaK_goiffalse` in upstream Lua.
func (fs *funcState) codeShortCircuit(op ShortCircuitOperator, e *BinaryExpr) (expDesc, error) {
	x, err := fs.expression(e.X)
	if err != nil {
		return expDesc{}, err
	}
	if fs.fold && x.kind == expKindConstant {
		fs.Folded++
		if x.value.Truthy() == (op == And) {
			return fs.expression(e.Y)
		}
		return x, nil
	}

	// "and" keeps a false left operand. "or" keeps a true left operand.
	// The test skips the jump past the right operand
	// when the left operand's truthiness equals k.
	k := op == And
	var dest RegisterIndex
	if x.kind == expKindRegister && !fs.isTemporary(x.register) {
		dest, err = fs.reserveRegister()
		if err != nil {
			return expDesc{}, err
		}
		fs.code(ABCInstruction(OpTestSet, uint8(dest), uint8(x.register), 0, k))
	} else {
		dest, err = fs.expToNextRegister(x)
		if err != nil {
			return expDesc{}, err
		}
		fs.code(ABCInstruction(OpTest, uint8(dest), 0, 0, k))
	}
	jmp := fs.codeJump()

	y, err := fs.expression(e.Y)
	if err != nil {
		return expDesc{}, err
	}
	if err := fs.expToRegister(y, dest); err != nil {
		return expDesc{}, err
	}
	if err := fs.freeExpression(y); err != nil {
		return expDesc{}, err
	}
	if err := fs.fixJump(jmp, len(fs.Code)); err != nil {
		return expDesc{}, err
	}
	return registerExpression(dest), nil
}

// codeConcat generates code for a chain of concatenations.
// The operands are placed in consecutive registers
// and joined by a single instruction.
//
// Equivalent to `codeconcat` in upstream Lua.
func (fs *funcState) codeConcat(e *BinaryExpr) (expDesc, error) {
	operands := concatOperands(e)
	base := fs.firstFreeRegister
	for _, operand := range operands {
		x, err := fs.expression(operand)
		if err != nil {
			return expDesc{}, err
		}
		if _, err := fs.expToNextRegister(x); err != nil {
			return expDesc{}, err
		}
	}
	fs.code(ABCInstruction(OpConcat, uint8(base), uint8(len(operands)), 0, false))
	fs.firstFreeRegister = base + 1
	return registerExpression(base), nil
}

// expToOperand makes e addressable by an instruction operand.
// Constants whose pool index does not fit in an operand
// are loaded into a new register.
//
// Roughly equivalent to `exp2RK` in upstream Lua.
func (fs *funcState) expToOperand(e expDesc) (Operand, error) {
	switch e.kind {
	case expKindConstant:
		k, err := fs.addConstant(e.value)
		if err != nil {
			return Operand{}, err
		}
		if k <= maxOperandConstant {
			return ConstantOperand(ConstantIndex(k)), nil
		}
		r, err := fs.reserveRegister()
		if err != nil {
			return Operand{}, err
		}
		fs.code(ABxInstruction(OpLoadK, uint8(r), int32(k)))
		return RegisterOperand(r), nil
	case expKindRegister:
		return RegisterOperand(e.register), nil
	default:
		r, err := fs.expToNextRegister(e)
		if err != nil {
			return Operand{}, err
		}
		return RegisterOperand(r), nil
	}
}

// expToAnyRegister ensures that e is stored in a register.
//
// Equivalent to `luaK_exp2anyreg` in upstream Lua.
func (fs *funcState) expToAnyRegister(e expDesc) (RegisterIndex, error) {
	if e.kind == expKindRegister {
		return e.register, nil
	}
	return fs.expToNextRegister(e)
}

// expToNextRegister stores e in the next free register.
// If e is the most recently reserved temporary,
// it is reused in place.
//
// Equivalent to `luaK_exp2nextreg` in upstream Lua.
func (fs *funcState) expToNextRegister(e expDesc) (RegisterIndex, error) {
	if err := fs.freeExpression(e); err != nil {
		return 0, err
	}
	r, err := fs.reserveRegister()
	if err != nil {
		return 0, err
	}
	if err := fs.expToRegister(e, r); err != nil {
		return 0, err
	}
	return r, nil
}

// expToRegister stores e in r.
// It does not free any register that e occupies.
//
// Equivalent to `exp2reg` in upstream Lua.
func (fs *funcState) expToRegister(e expDesc, r RegisterIndex) error {
	switch e.kind {
	case expKindConstant:
		switch {
		case e.value.IsNil():
			fs.code(ABCInstruction(OpLoadNil, uint8(r), 0, 0, false))
		case e.value.IsBoolean():
			if b, _ := e.value.Bool(); b {
				fs.code(ABCInstruction(OpLoadTrue, uint8(r), 0, 0, false))
			} else {
				fs.code(ABCInstruction(OpLoadFalse, uint8(r), 0, 0, false))
			}
		default:
			k, err := fs.addConstant(e.value)
			if err != nil {
				return err
			}
			fs.code(ABxInstruction(OpLoadK, uint8(r), int32(k)))
		}
	case expKindRegister:
		if e.register != r {
			fs.code(ABCInstruction(OpMove, uint8(r), uint8(e.register), 0, false))
		}
	case expKindCondition:
		// The comparison skips the jump when its result equals k,
		// landing on the false branch.
		fs.code(JInstruction(OpJMP, 1))
		fs.code(ABCInstruction(OpLFalseSkip, uint8(r), 0, 0, false))
		fs.code(ABCInstruction(OpLoadTrue, uint8(r), 0, 0, false))
	default:
		return fmt.Errorf("internal error: cannot store %v in a register", e)
	}
	return nil
}

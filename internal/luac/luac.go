// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

// Package luac formats compiled expressions for humans and programs.
// The text listing is modeled on the output of [luac(1)] -l.
//
// [luac(1)]: https://www.lua.org/manual/5.4/luac.html
package luac

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"luaops.dev/pkg/internal/luacode"
)

// ListOptions is the set of optional parameters to [List].
type ListOptions struct {
	// RawPC shows program counters starting at 0 instead of 1.
	RawPC bool
	// Full appends the constant pool and the parameter list to the listing.
	Full bool
	// Color highlights opcode names with ANSI escape sequences.
	Color bool
}

func (opts *ListOptions) pcBase() int {
	if opts.RawPC {
		return 0
	}
	return 1
}

// List writes a listing of f's instructions to w.
// opts may be nil, which is treated the same as the zero value.
func List(w io.Writer, f *luacode.Function, opts *ListOptions) error {
	if opts == nil {
		opts = new(ListOptions)
	}
	pcBase := opts.pcBase()
	lineBuf := new(bytes.Buffer)

	fmt.Fprintf(
		lineBuf,
		"\nexpr <%s> (%s, %d folded)\n",
		f.Source,
		plural(len(f.Code), "instruction", "instructions"),
		f.Folded,
	)
	fmt.Fprintf(
		lineBuf,
		"%d %s, %s, %s\n",
		f.NumParams(),
		pluralUnit(f.NumParams(), "param", "params"),
		plural(int(f.MaxStackSize), "slot", "slots"),
		plural(len(f.Constants), "constant", "constants"),
	)
	if _, err := w.Write(lineBuf.Bytes()); err != nil {
		return err
	}

	for pc, i := range f.Code {
		lineBuf.Reset()
		fmt.Fprintf(lineBuf, "\t%d\t", pcBase+pc)
		s := i.String()
		if opts.Color {
			name := i.OpCode().String()
			s = highlight(i.OpCode(), name) + s[len(name):]
		}
		lineBuf.WriteString(s)
		writeComment(lineBuf, f, pcBase, pc, i)
		lineBuf.WriteByte('\n')
		if _, err := w.Write(lineBuf.Bytes()); err != nil {
			return err
		}
	}

	if !opts.Full {
		return nil
	}
	lineBuf.Reset()
	fmt.Fprintf(lineBuf, "constants (%d)\n", len(f.Constants))
	for i, k := range f.Constants {
		fmt.Fprintf(lineBuf, "\t%d\t%s\t%v\n", i, typeTag(k), k)
	}
	fmt.Fprintf(lineBuf, "params (%d)\n", f.NumParams())
	for i, name := range f.Params {
		fmt.Fprintf(lineBuf, "\t%d\t%s\tR%d\n", i, name, i)
	}
	_, err := w.Write(lineBuf.Bytes())
	return err
}

// writeComment appends the contextual comment for the instruction at pc, if any.
func writeComment(buf *bytes.Buffer, f *luacode.Function, pcBase, pc int, i luacode.Instruction) {
	constant := func(k int) string {
		if k < 0 || k >= len(f.Constants) {
			return "?"
		}
		return f.Constants[k].String()
	}

	op := i.OpCode()
	if _, left, right, ok := op.Simple(); ok {
		writeOperandComment(buf, constant, left, i.ArgB(), right, i.ArgC())
		return
	}
	if _, left, right, ok := op.Comparison(); ok {
		writeOperandComment(buf, constant, left, i.ArgA(), right, i.ArgB())
		return
	}
	if _, source, ok := op.Unary(); ok && source == luacode.ConstantKind {
		fmt.Fprintf(buf, "\t; %s", constant(int(i.ArgB())))
		return
	}
	switch op {
	case luacode.OpLoadK:
		fmt.Fprintf(buf, "\t; %s", constant(int(i.ArgBx())))
	case luacode.OpJMP:
		fmt.Fprintf(buf, "\t; to %d", pcBase+pc+1+int(i.J()))
	}
}

func writeOperandComment(buf *bytes.Buffer, constant func(int) string, left luacode.OperandKind, x uint8, right luacode.OperandKind, y uint8) {
	var parts []string
	if left == luacode.ConstantKind {
		parts = append(parts, constant(int(x)))
	}
	if right == luacode.ConstantKind {
		parts = append(parts, constant(int(y)))
	}
	if len(parts) > 0 {
		buf.WriteString("\t; ")
		buf.WriteString(strings.Join(parts, " "))
	}
}

func typeTag(k luacode.Value) string {
	switch {
	case k.IsNil():
		return "N"
	case k.IsBoolean():
		return "B"
	case k.IsInteger():
		return "I"
	case k.IsFloat():
		return "F"
	case k.IsString():
		return "S"
	default:
		return "?"
	}
}

const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
)

func highlight(op luacode.OpCode, name string) string {
	var color string
	switch {
	case isSimple(op):
		color = ansiCyan
	case isComparison(op):
		color = ansiYellow
	case isUnary(op):
		color = ansiMagenta
	case op == luacode.OpJMP || op == luacode.OpTest || op == luacode.OpTestSet:
		color = ansiRed
	default:
		color = ansiGreen
	}
	return color + name + ansiReset
}

func isSimple(op luacode.OpCode) bool {
	_, _, _, ok := op.Simple()
	return ok
}

func isComparison(op luacode.OpCode) bool {
	_, _, _, ok := op.Comparison()
	return ok
}

func isUnary(op luacode.OpCode) bool {
	_, _, ok := op.Unary()
	return ok
}

func plural(n int, unit string, unitPlural string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %s", n, unitPlural)
}

func pluralUnit(n int, unit string, unitPlural string) string {
	if n == 1 {
		return unit
	}
	return unitPlural
}

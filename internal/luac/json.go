// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luac

import (
	"io"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"luaops.dev/pkg/internal/luacode"
)

// FunctionJSON is the JSON form of a [luacode.Function].
type FunctionJSON struct {
	Source       string            `json:"source"`
	Params       []string          `json:"params"`
	MaxStackSize int               `json:"maxStackSize"`
	Folded       int               `json:"folded"`
	Constants    []ConstantJSON    `json:"constants"`
	Code         []InstructionJSON `json:"code"`
}

// ConstantJSON is the JSON form of a constant pool entry.
// Text is the value in Lua syntax,
// which preserves floats that JSON numbers cannot represent.
type ConstantJSON struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// InstructionJSON is the JSON form of a [luacode.Instruction].
// Only the arguments used by the opcode's [luacode.OpMode] are present.
type InstructionJSON struct {
	PC int    `json:"pc"`
	Op string `json:"op"`
	A  *uint8 `json:"a,omitzero"`
	B  *uint8 `json:"b,omitzero"`
	C  *uint8 `json:"c,omitzero"`
	K  *bool  `json:"k,omitzero"`
	Bx *int32 `json:"bx,omitzero"`
	J  *int32 `json:"j,omitzero"`
}

// NewFunctionJSON converts f to its JSON form.
func NewFunctionJSON(f *luacode.Function, opts *ListOptions) *FunctionJSON {
	if opts == nil {
		opts = new(ListOptions)
	}
	fj := &FunctionJSON{
		Source:       f.Source.String(),
		Params:       append([]string{}, f.Params...),
		MaxStackSize: int(f.MaxStackSize),
		Folded:       f.Folded,
		Constants:    make([]ConstantJSON, 0, len(f.Constants)),
		Code:         make([]InstructionJSON, 0, len(f.Code)),
	}
	for _, k := range f.Constants {
		fj.Constants = append(fj.Constants, ConstantJSON{
			Type: constantType(k),
			Text: k.String(),
		})
	}
	for pc, i := range f.Code {
		ij := InstructionJSON{
			PC: opts.pcBase() + pc,
			Op: i.OpCode().String(),
		}
		switch i.OpCode().OpMode() {
		case luacode.OpModeABC:
			a, b, c, k := i.ArgA(), i.ArgB(), i.ArgC(), i.K()
			ij.A, ij.B, ij.C, ij.K = &a, &b, &c, &k
		case luacode.OpModeABx:
			a, bx := i.ArgA(), i.ArgBx()
			ij.A, ij.Bx = &a, &bx
		case luacode.OpModeJ:
			j := i.J()
			ij.J = &j
		}
		fj.Code = append(fj.Code, ij)
	}
	return fj
}

func constantType(k luacode.Value) string {
	switch {
	case k.IsInteger():
		return "integer"
	case k.IsFloat():
		return "float"
	default:
		return k.Type().String()
	}
}

// WriteJSON writes the JSON form of each function to w as a single JSON array.
func WriteJSON(w io.Writer, funcs []*luacode.Function, opts *ListOptions) error {
	list := make([]*FunctionJSON, 0, len(funcs))
	for _, f := range funcs {
		list = append(list, NewFunctionJSON(f, opts))
	}
	if err := jsonv2.MarshalWrite(w, list, jsontext.Multiline(true)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luac

import (
	"bytes"
	"strings"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"luaops.dev/pkg/internal/luacode"
)

// mixedComparison is the compiled form of "3 < 'x'" without folding.
func mixedComparison() *luacode.Function {
	return &luacode.Function{
		Source: luacode.LiteralSource("3 < 'x'"),
		Code: []luacode.Instruction{
			luacode.ABCInstruction(luacode.OpLTKK, 0, 1, 0, false),
			luacode.JInstruction(luacode.OpJMP, 1),
			luacode.ABCInstruction(luacode.OpLFalseSkip, 0, 0, 0, false),
			luacode.ABCInstruction(luacode.OpLoadTrue, 0, 0, 0, false),
			luacode.ABCInstruction(luacode.OpReturn1, 0, 0, 0, false),
		},
		Constants:    []luacode.Value{luacode.IntegerValue(3), luacode.StringValue("x")},
		MaxStackSize: 1,
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		f    *luacode.Function
		opts *ListOptions
		want string
	}{
		{
			name: "Comparison",
			f:    mixedComparison(),
			want: "\nexpr <[string \"3 < 'x'\"]> (5 instructions, 0 folded)\n" +
				"0 params, 1 slot, 2 constants\n" +
				"\t1\tLTKK       0 1 0 0\t; 3 \"x\"\n" +
				"\t2\tJMP        +1\t; to 4\n" +
				"\t3\tLFALSESKIP 0 0 0 0\n" +
				"\t4\tLOADTRUE   0 0 0 0\n" +
				"\t5\tRETURN1    0 0 0 0\n",
		},
		{
			name: "RawPC",
			f:    mixedComparison(),
			opts: &ListOptions{RawPC: true},
			want: "\nexpr <[string \"3 < 'x'\"]> (5 instructions, 0 folded)\n" +
				"0 params, 1 slot, 2 constants\n" +
				"\t0\tLTKK       0 1 0 0\t; 3 \"x\"\n" +
				"\t1\tJMP        +1\t; to 3\n" +
				"\t2\tLFALSESKIP 0 0 0 0\n" +
				"\t3\tLOADTRUE   0 0 0 0\n" +
				"\t4\tRETURN1    0 0 0 0\n",
		},
		{
			name: "Full",
			f: &luacode.Function{
				Source: luacode.AbstractSource("stdin"),
				Code: []luacode.Instruction{
					luacode.ABxInstruction(luacode.OpLoadK, 1, 0),
					luacode.ABCInstruction(luacode.OpSubKR, 1, 1, 0, false),
					luacode.ABCInstruction(luacode.OpLenK, 2, 2, 0, false),
					luacode.ABCInstruction(luacode.OpReturn1, 1, 0, 0, false),
				},
				Constants: []luacode.Value{
					luacode.FloatValue(0.5),
					luacode.IntegerValue(10),
					luacode.StringValue("abc"),
				},
				Params:       []string{"x"},
				MaxStackSize: 3,
				Folded:       1,
			},
			opts: &ListOptions{Full: true},
			want: "\nexpr <stdin> (4 instructions, 1 folded)\n" +
				"1 param, 3 slots, 3 constants\n" +
				"\t1\tLOADK      1 0\t; 0.5\n" +
				"\t2\tSUBKR      1 1 0 0\t; 10\n" +
				"\t3\tLENK       2 2 0 0\t; \"abc\"\n" +
				"\t4\tRETURN1    1 0 0 0\n" +
				"constants (3)\n" +
				"\t0\tF\t0.5\n" +
				"\t1\tI\t10\n" +
				"\t2\tS\t\"abc\"\n" +
				"params (1)\n" +
				"\t0\tx\tR0\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := List(buf, test.f, test.opts); err != nil {
				t.Fatal("List:", err)
			}
			if diff := cmp.Diff(test.want, buf.String()); diff != "" {
				t.Errorf("listing (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListColor(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := List(buf, mixedComparison(), &ListOptions{Color: true}); err != nil {
		t.Fatal("List:", err)
	}
	got := buf.String()
	for _, want := range []string{
		"\t1\t" + ansiYellow + "LTKK" + ansiReset + "       0 1 0 0\t; 3 \"x\"\n",
		"\t2\t" + ansiRed + "JMP" + ansiReset + "        +1\t; to 4\n",
		"\t5\t" + ansiGreen + "RETURN1" + ansiReset + "    0 0 0 0\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := WriteJSON(buf, []*luacode.Function{mixedComparison()}, nil); err != nil {
		t.Fatal("WriteJSON:", err)
	}
	var got []*FunctionJSON
	if err := jsonv2.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal(%s): %v", buf, err)
	}

	u8 := func(x uint8) *uint8 { return &x }
	i32 := func(x int32) *int32 { return &x }
	b := func(x bool) *bool { return &x }
	want := []*FunctionJSON{{
		Source:       `[string "3 < 'x'"]`,
		Params:       []string{},
		MaxStackSize: 1,
		Constants: []ConstantJSON{
			{Type: "integer", Text: "3"},
			{Type: "string", Text: `"x"`},
		},
		Code: []InstructionJSON{
			{PC: 1, Op: "LTKK", A: u8(0), B: u8(1), C: u8(0), K: b(false)},
			{PC: 2, Op: "JMP", J: i32(1)},
			{PC: 3, Op: "LFALSESKIP", A: u8(0), B: u8(0), C: u8(0), K: b(false)},
			{PC: 4, Op: "LOADTRUE", A: u8(0), B: u8(0), C: u8(0), K: b(false)},
			{PC: 5, Op: "RETURN1", A: u8(0), B: u8(0), C: u8(0), K: b(false)},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WriteJSON output (-want +got):\n%s", diff)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n")) || !bytes.HasSuffix(buf.Bytes(), []byte("]\n")) {
		t.Errorf("WriteJSON output is not multi-line:\n%s", buf)
	}
}

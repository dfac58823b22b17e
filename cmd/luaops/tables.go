// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
	"luaops.dev/pkg/internal/luacode"
)

type tablesOptions struct {
	json bool
}

func newTablesCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "tables [options]",
		Short:                 "show the opcode selected for every operator and operand kind",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(tablesOptions)
	c.Flags().BoolVar(&opts.json, "json", false, "print tables as JSON")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runTables(os.Stdout, opts)
	}
	return c
}

// tableRow is a single [luacode.Tables] entry
// with the opcode it selects for each combination of operand kinds.
type tableRow struct {
	Operator string            `json:"operator"`
	Name     string            `json:"name,omitempty"`
	OpCodes  map[string]string `json:"opcodes"`
}

type tablesDump struct {
	Simple     []tableRow `json:"simple"`
	Comparison []tableRow `json:"comparison"`
	Unary      []tableRow `json:"unary"`
}

var operandKinds = []luacode.OperandKind{luacode.RegisterKind, luacode.ConstantKind}

func operandOfKind(kind luacode.OperandKind) luacode.Operand {
	if kind == luacode.ConstantKind {
		return luacode.ConstantOperand(0)
	}
	return luacode.RegisterOperand(0)
}

// dumpTables records the opcode that tables selects
// for every operator and combination of operand kinds.
func dumpTables(tables *luacode.Tables) *tablesDump {
	dump := new(tablesDump)
	for op := luacode.Add; op.IsValid(); op++ {
		entry := tables.Simple(op)
		row := tableRow{
			Operator: op.BinaryOperator().String(),
			Name:     op.String(),
			OpCodes:  make(map[string]string),
		}
		for _, lk := range operandKinds {
			for _, rk := range operandKinds {
				i := entry.MakeOpcode(0, operandOfKind(lk), operandOfKind(rk))
				row.OpCodes[lk.String()+rk.String()] = i.OpCode().String()
			}
		}
		dump.Simple = append(dump.Simple, row)
	}
	for op := luacode.NotEqual; op.IsValid(); op++ {
		entry := tables.Comparison(op)
		row := tableRow{
			Operator: op.BinaryOperator().String(),
			Name:     op.String(),
			OpCodes:  make(map[string]string),
		}
		for _, lk := range operandKinds {
			for _, rk := range operandKinds {
				i := entry.MakeOpcode(operandOfKind(lk), operandOfKind(rk))
				row.OpCodes[lk.String()+rk.String()] = i.OpCode().String()
			}
		}
		dump.Comparison = append(dump.Comparison, row)
	}
	for op := luacode.Not; op.IsValid(); op++ {
		entry := tables.Unary(op)
		row := tableRow{
			Operator: op.String(),
			OpCodes:  make(map[string]string),
		}
		for _, kind := range operandKinds {
			i := entry.MakeOpcode(0, operandOfKind(kind))
			row.OpCodes[kind.String()] = i.OpCode().String()
		}
		dump.Unary = append(dump.Unary, row)
	}
	return dump
}

func runTables(stdout io.Writer, opts *tablesOptions) error {
	dump := dumpTables(luacode.NewTables())
	if opts.json {
		err := jsonv2.MarshalWrite(stdout, dump, jsontext.Multiline(true), jsonv2.Deterministic(true))
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, "\n")
		return err
	}

	w := bufio.NewWriter(stdout)
	writeRows := func(family string, rows []tableRow, keys []string) {
		fmt.Fprintf(w, "%s (%d)\n", family, len(rows))
		for _, row := range rows {
			opcodes := make([]string, 0, len(keys))
			for _, k := range keys {
				opcodes = append(opcodes, row.OpCodes[k])
			}
			fmt.Fprintf(w, "\t%s\t%s\n", row.Operator, strings.Join(opcodes, " "))
		}
	}
	binaryKeys := []string{"RR", "RK", "KR", "KK"}
	writeRows("simple", dump.Simple, binaryKeys)
	writeRows("comparison", dump.Comparison, binaryKeys)
	writeRows("unary", dump.Unary, []string{"R", "K"})
	return w.Flush()
}

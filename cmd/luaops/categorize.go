// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"luaops.dev/pkg/internal/luacode"
)

func newCategorizeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "categorize OP [...]",
		Short:                 "show the instruction family of operators",
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runCategorize(os.Stdout, args)
	}
	return c
}

// runCategorize prints one line per operator form.
// Tokens like "-" that are both binary and unary operators print two lines.
func runCategorize(stdout io.Writer, ops []string) error {
	for _, s := range ops {
		binop, isBinary := luacode.ParseBinaryOperator(s)
		_, isUnary := luacode.ParseUnaryOperator(s)
		if !isBinary && !isUnary {
			return fmt.Errorf("%q is not a Lua operator", s)
		}
		if isBinary {
			if _, err := fmt.Fprintf(stdout, "%s\tbinary\t%v\n", s, luacode.Categorize(binop)); err != nil {
				return err
			}
		}
		if isUnary {
			if _, err := fmt.Fprintf(stdout, "%s\tunary\tUnary\n", s); err != nil {
				return err
			}
		}
	}
	return nil
}

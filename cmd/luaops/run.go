// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"luaops.dev/pkg/internal/luacode"
	"luaops.dev/pkg/internal/luavm"
)

type runOptions struct {
	expr string
	args []string
}

func newRunCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "run [options] EXPR [ARG [...]]",
		Short: "compile and evaluate an expression",
		Long: "Compile and evaluate a Lua expression.\n\n" +
			"Each ARG is a Lua expression without names. " +
			"Its value is bound to the expression's free names in order of first use.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(runOptions)
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.expr = args[0]
		opts.args = args[1:]
		return runRun(cmd.Context(), g, opts, os.Stdout)
	}
	return c
}

func runRun(ctx context.Context, g *globalConfig, opts *runOptions, stdout io.Writer) error {
	tables := luacode.NewTables()
	f, err := compileExpression(ctx, tables, luacode.LiteralSource(opts.expr), opts.expr, g.Fold)
	if err != nil {
		return err
	}
	if len(opts.args) != f.NumParams() {
		return fmt.Errorf("%s needs %d arguments (%s); got %d",
			opts.expr, f.NumParams(), strings.Join(f.Params, ", "), len(opts.args))
	}
	args := make([]luacode.Value, 0, len(opts.args))
	for i, arg := range opts.args {
		v, err := evalLiteral(ctx, tables, arg)
		if err != nil {
			return fmt.Errorf("argument %s: %v", f.Params[i], err)
		}
		args = append(args, v)
	}

	result, err := luavm.Call(ctx, f, args...)
	if err != nil {
		return fmt.Errorf("%v: %w", f.Source, err)
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

// evalLiteral evaluates an expression that does not refer to any names.
func evalLiteral(ctx context.Context, tables *luacode.Tables, text string) (luacode.Value, error) {
	f, err := compileExpression(ctx, tables, luacode.LiteralSource(text), text, true)
	if err != nil {
		return luacode.Value{}, err
	}
	if f.NumParams() > 0 {
		return luacode.Value{}, fmt.Errorf("%s refers to %s", text, strings.Join(f.Params, ", "))
	}
	return luavm.Call(ctx, f)
}

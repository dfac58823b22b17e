// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"luaops.dev/pkg/internal/luac"
	"luaops.dev/pkg/internal/luacode"
	"zombiezen.com/go/log"
)

type compileOptions struct {
	exprs []string
	files []string
	json  bool
	full  bool
	color bool
}

func newCompileCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "compile [options] [-e EXPR [...]] [FILE [...]]",
		Short: "compile expressions and list the generated instructions",
		Long: "Compile Lua expressions and list the generated instructions.\n\n" +
			"Each non-blank line of a file is compiled as a separate expression. " +
			"Lines starting with \"--\" are ignored. " +
			"A FILE of \"-\" reads from standard input.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(compileOptions)
	c.Flags().StringArrayVarP(&opts.exprs, "expr", "e", nil, "compile `expr`ession (can be passed multiple times)")
	c.Flags().BoolVar(&opts.json, "json", false, "print instructions as JSON")
	c.Flags().BoolVarP(&opts.full, "list-all", "l", false, "list constants and parameters after the instructions")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.files = args
		if len(opts.exprs) == 0 && len(opts.files) == 0 {
			return fmt.Errorf("no expressions given")
		}
		opts.color = !opts.json && g.Color.enabled(os.Stdout)
		return runCompile(cmd.Context(), g, opts, os.Stdin, os.Stdout)
	}
	return c
}

func runCompile(ctx context.Context, g *globalConfig, opts *compileOptions, stdin io.Reader, stdout io.Writer) error {
	tables := luacode.NewTables()

	var units []*compileUnit
	for _, expr := range opts.exprs {
		units = append(units, &compileUnit{
			source: luacode.LiteralSource(expr),
			text:   expr,
		})
	}
	fileUnits := make([][]*compileUnit, len(opts.files))
	grp, grpCtx := errgroup.WithContext(ctx)
	for i, path := range opts.files {
		if path == "-" {
			// Standard input can only be read once, so read it here.
			var err error
			fileUnits[i], err = readUnits(luacode.AbstractSource("stdin"), stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %v", err)
			}
			grp.Go(func() error {
				return compileUnits(grpCtx, tables, g.Fold, fileUnits[i])
			})
			continue
		}
		grp.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			fileUnits[i], err = readUnits(luacode.FilenameSource(path), f)
			if err != nil {
				return fmt.Errorf("read %s: %v", path, err)
			}
			return compileUnits(grpCtx, tables, g.Fold, fileUnits[i])
		})
	}
	exprErr := compileUnits(ctx, tables, g.Fold, units)
	if err := grp.Wait(); err != nil {
		return err
	}
	if exprErr != nil {
		return exprErr
	}

	funcs := make([]*luacode.Function, 0, len(units))
	for _, u := range units {
		funcs = append(funcs, u.f)
	}
	for _, fu := range fileUnits {
		for _, u := range fu {
			funcs = append(funcs, u.f)
		}
	}

	listOpts := &luac.ListOptions{
		RawPC: g.RawPC,
		Full:  opts.full,
		Color: opts.color,
	}
	if opts.json {
		return luac.WriteJSON(stdout, funcs, listOpts)
	}
	for _, f := range funcs {
		if err := luac.List(stdout, f, listOpts); err != nil {
			return err
		}
	}
	return nil
}

// A compileUnit is a single expression to compile.
type compileUnit struct {
	source luacode.Source
	text   string
	f      *luacode.Function
}

// readUnits splits r into one compileUnit per non-blank line.
// Each unit's text is padded with newlines
// so that positions in error messages match the line in r.
func readUnits(source luacode.Source, r io.Reader) ([]*compileUnit, error) {
	var units []*compileUnit
	s := bufio.NewScanner(r)
	for lineno := 1; s.Scan(); lineno++ {
		line := s.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		units = append(units, &compileUnit{
			source: source,
			text:   strings.Repeat("\n", lineno-1) + line,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

func compileUnits(ctx context.Context, tables *luacode.Tables, fold bool, units []*compileUnit) error {
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := compileExpression(ctx, tables, u.source, u.text, fold)
		if err != nil {
			return err
		}
		u.f = f
	}
	return nil
}

// compileExpression parses and compiles a single expression.
func compileExpression(ctx context.Context, tables *luacode.Tables, source luacode.Source, text string, fold bool) (*luacode.Function, error) {
	e, err := luacode.Parse(source, text)
	if err != nil {
		return nil, err
	}
	f, err := luacode.Compile(tables, e, &luacode.CompileOptions{
		Source:         source,
		DisableFolding: !fold,
	})
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "Compiled %v: %d instructions, %d folded", e, len(f.Code), f.Folded)
	return f, nil
}

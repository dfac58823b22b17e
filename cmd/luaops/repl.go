// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"luaops.dev/pkg/internal/luac"
	"luaops.dev/pkg/internal/luacode"
	"luaops.dev/pkg/internal/lualex"
	"luaops.dev/pkg/internal/luavm"
	"zombiezen.com/go/log"
)

const replHelp = `Enter a Lua expression to see its instructions and value.
Commands:
  :let NAME EXPR  bind NAME to the value of EXPR
  :fold on|off    turn constant folding on or off
  :quit           exit the REPL
`

func newREPLCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "repl",
		Short:                 "compile expressions interactively",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.Context(), g)
	}
	return c
}

func runREPL(ctx context.Context, g *globalConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if g.History != "" {
		if f, err := os.Open(g.History); err == nil {
			_, err := ln.ReadHistory(f)
			f.Close()
			if err != nil {
				log.Warnf(ctx, "Read history: %v", err)
			}
		}
		defer func() {
			if err := writeHistory(ln, g.History); err != nil {
				log.Warnf(ctx, "Save history: %v", err)
			}
		}()
	}

	sess := newREPLSession(g, os.Stdout)
	sess.color = g.Color.enabled(os.Stdout)
	fmt.Fprint(os.Stdout, replHelp)
	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := sess.eval(ctx, line); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintln(os.Stdout, "error:", err)
		}
	}
}

func writeHistory(ln *liner.State, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = ln.WriteHistory(f)
	closeErr := f.Close()
	if err != nil {
		return err
	}
	return closeErr
}

var errQuit = errors.New("quit")

// replSession is the state of an interactive session
// independent of the terminal.
type replSession struct {
	out    io.Writer
	tables *luacode.Tables
	fold   bool
	color  bool
	rawPC  bool
	env    map[string]luacode.Value
}

func newREPLSession(g *globalConfig, out io.Writer) *replSession {
	return &replSession{
		out:    out,
		tables: luacode.NewTables(),
		fold:   g.Fold,
		rawPC:  g.RawPC,
		env:    make(map[string]luacode.Value),
	}
}

// eval handles a single line of input.
func (sess *replSession) eval(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	cmd, rest, isCommand := strings.Cut(line, " ")
	if !isCommand {
		cmd = line
	}
	rest = strings.TrimSpace(rest)
	switch cmd {
	case ":quit", ":q":
		return errQuit
	case ":help", ":h":
		_, err := io.WriteString(sess.out, replHelp)
		return err
	case ":fold":
		switch rest {
		case "on":
			sess.fold = true
		case "off":
			sess.fold = false
		default:
			return fmt.Errorf("usage: :fold on|off")
		}
		return nil
	case ":let":
		name, expr, ok := strings.Cut(rest, " ")
		if !ok || !isName(name) {
			return fmt.Errorf("usage: :let NAME EXPR")
		}
		v, err := sess.evalExpression(ctx, strings.TrimSpace(expr), false)
		if err != nil {
			return err
		}
		sess.env[name] = v
		_, err = fmt.Fprintf(sess.out, "%s = %v\n", name, v)
		return err
	}
	if strings.HasPrefix(cmd, ":") {
		return fmt.Errorf("unknown command %s (try :help)", cmd)
	}
	v, err := sess.evalExpression(ctx, line, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(sess.out, "= %v\n", v)
	return err
}

func (sess *replSession) evalExpression(ctx context.Context, text string, list bool) (luacode.Value, error) {
	f, err := compileExpression(ctx, sess.tables, luacode.AbstractSource("repl"), text, sess.fold)
	if err != nil {
		return luacode.Value{}, err
	}
	if list {
		err := luac.List(sess.out, f, &luac.ListOptions{
			RawPC: sess.rawPC,
			Color: sess.color,
		})
		if err != nil {
			return luacode.Value{}, err
		}
	}
	args := make([]luacode.Value, 0, f.NumParams())
	var unbound []string
	for _, name := range f.Params {
		v, ok := sess.env[name]
		if !ok {
			unbound = append(unbound, name)
		}
		args = append(args, v)
	}
	if len(unbound) > 0 {
		return luacode.Value{}, fmt.Errorf("%s not bound (use :let)", strings.Join(unbound, ", "))
	}
	return luavm.Call(ctx, f, args...)
}

func isName(s string) bool {
	if s == "" || lualex.IsReserved(s) {
		return false
	}
	for i, c := range []byte(s) {
		isLetter := 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
		isDigit := '0' <= c && c <= '9'
		if !isLetter && !(i > 0 && isDigit) {
			return false
		}
	}
	return true
}

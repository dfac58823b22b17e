// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// luaops compiles Lua expressions and shows
// how each operator was translated or folded.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"zombiezen.com/go/bass/sigterm"
	"zombiezen.com/go/log"
)

func main() {
	rootCommand := &cobra.Command{
		Use:           "luaops",
		Short:         "Lua operator compiler",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := defaultGlobalConfig()
	if err := g.mergeFiles(configFiles()); err != nil {
		initLogging(false)
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}

	rootCommand.PersistentFlags().BoolVar(&g.Debug, "debug", g.Debug, "show debugging output")
	rootCommand.PersistentFlags().Var(&g.Color, "color", "colorize listings (`when` is auto|always|never)")
	rootCommand.PersistentFlags().BoolVar(&g.RawPC, "raw-pc", g.RawPC, "show program counters starting at 0")
	noFold := rootCommand.PersistentFlags().Bool("no-fold", !g.Fold, "do not evaluate operations on literals during compilation")

	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		initLogging(g.Debug)
		if cmd.Flags().Changed("no-fold") {
			g.Fold = !*noFold
		}
		return nil
	}

	rootCommand.AddCommand(
		newCompileCommand(g),
		newRunCommand(g),
		newCategorizeCommand(),
		newTablesCommand(),
		newREPLCommand(g),
	)

	ignoreSIGPIPE()
	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		initLogging(g.Debug)
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}

// configFiles returns the paths of the configuration files to merge
// in increasing order of preference.
func configFiles() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for dir := range systemConfigDirs() {
			if !yield(filepath.Join(dir, "luaops", "config.jwcc")) {
				return
			}
		}
	}
}

var initLogOnce sync.Once

func initLogging(showDebug bool) {
	initLogOnce.Do(func() {
		minLogLevel := log.Info
		if showDebug {
			minLogLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLogLevel,
			Output: log.New(os.Stderr, "luaops: ", log.StdFlags, nil),
		})
	})
}

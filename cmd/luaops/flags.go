// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// colorMode is the implementation of [pflag.Value] for the --color flag.
type colorMode int8

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

var _ pflag.Value = new(colorMode)

func (mode colorMode) String() string {
	switch mode {
	case colorAuto:
		return "auto"
	case colorAlways:
		return "always"
	case colorNever:
		return "never"
	default:
		return fmt.Sprintf("colorMode(%d)", int8(mode))
	}
}

func (mode *colorMode) Set(s string) error {
	switch s {
	case "auto":
		*mode = colorAuto
	case "always":
		*mode = colorAlways
	case "never":
		*mode = colorNever
	default:
		return fmt.Errorf("unknown color mode %q (want auto|always|never)", s)
	}
	return nil
}

func (mode *colorMode) Type() string {
	return "when"
}

// enabled reports whether output written to f should be colorized.
func (mode colorMode) enabled(f *os.File) bool {
	switch mode {
	case colorAlways:
		return true
	case colorAuto:
		return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}

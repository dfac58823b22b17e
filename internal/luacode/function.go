// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"strings"
)

// Function is a compiled expression:
// a straight-line instruction sequence that ends in [OpReturn1].
type Function struct {
	// Source describes where the expression came from.
	Source Source
	// Code is the function's instruction sequence.
	Code []Instruction
	// Constants is the function's constant pool.
	// Each value appears at most once.
	Constants []Value
	// Params are the names the expression refers to.
	// The value of Params[i] is passed in register i.
	Params []string
	// MaxStackSize is the number of registers the function uses.
	MaxStackSize uint8
	// Folded is the number of operations
	// that were evaluated during compilation.
	Folded int
}

// NumParams returns len(f.Params).
func (f *Function) NumParams() int {
	return len(f.Params)
}

// Source is a description of the text an expression was parsed from.
// The zero value describes an empty literal string.
type Source string

// UnknownSource is a placeholder for an unknown [Source].
const UnknownSource Source = "=?"

// FilenameSource returns a [Source] for a filesystem path.
// The path can be retrieved later using [Source.Filename].
//
// The underlying string in a filename source starts with "@".
func FilenameSource(path string) Source {
	return Source("@" + path)
}

// AbstractSource returns a [Source] from a user-dependent description
// like "stdin" or "repl".
//
// The underlying string in an abstract source starts with "=".
func AbstractSource(description string) Source {
	return Source("=" + description)
}

// LiteralSource returns a [Source] for the given expression text.
// If s starts with "@" or "=",
// then LiteralSource returns an [AbstractSource]
// with a condensed version of the string.
func LiteralSource(s string) Source {
	source := Source(s)
	if _, ok := source.Literal(); !ok {
		return AbstractSource(describeLiteralSource(s))
	}
	return source
}

// Filename returns the path provided to [FilenameSource].
func (source Source) Filename() (_ string, isFilename bool) {
	s, ok := strings.CutPrefix(string(source), "@")
	if !ok {
		return "", false
	}
	return s, true
}

// Abstract returns the description provided to [AbstractSource].
func (source Source) Abstract() (_ string, isAbstract bool) {
	s, ok := strings.CutPrefix(string(source), "=")
	if !ok {
		return "", false
	}
	return s, true
}

// Literal returns the string provided to [LiteralSource].
func (source Source) Literal() (_ string, isLiteral bool) {
	if len(source) != 0 && (source[0] == '@' || source[0] == '=') {
		return "", false
	}
	return string(source), true
}

const (
	// maxSourceSize is the maximum length of a string returned by [Source.String].
	maxSourceSize = 60

	sourceTruncationSignifier = "..."
)

// String formats the source for use in error messages.
func (source Source) String() string {
	if s, ok := source.Abstract(); ok {
		if len(s) > maxSourceSize {
			return s[:maxSourceSize]
		}
		return s
	}
	if fname, ok := source.Filename(); ok {
		if len(fname) > maxSourceSize {
			const n = maxSourceSize - len(sourceTruncationSignifier)
			return sourceTruncationSignifier + fname[len(fname)-n:]
		}
		return fname
	}
	return describeLiteralSource(string(source))
}

func describeLiteralSource(s string) string {
	const prefix = `[string "`
	const suffix = `"]`
	const stringSize = maxSourceSize - len(prefix) - len(suffix)
	line, _, multipleLines := strings.Cut(s, "\n")
	if !multipleLines && len(line) <= stringSize {
		return prefix + line + suffix
	}
	if len(line)+len(sourceTruncationSignifier) > stringSize {
		line = line[:stringSize-len(sourceTruncationSignifier)]
	}
	return prefix + line + sourceTruncationSignifier + suffix
}

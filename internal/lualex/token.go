// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=TokenKind -linecomment

package lualex

import "fmt"

// Token represents a single lexical element of a Lua expression.
type Token struct {
	Kind     TokenKind
	Position Position
	// Value holds information for
	// an [IdentifierToken], a [StringToken], or a [NumeralToken].
	Value string
}

// String formats the token as it would appear in Lua source.
// String returns "<eof>" for [ErrorToken].
func (tok Token) String() string {
	switch tok.Kind {
	case ErrorToken:
		return "<eof>"
	case StringToken:
		return Quote(tok.Value)
	case IdentifierToken, NumeralToken:
		return tok.Value
	default:
		return tok.Kind.String()
	}
}

// Position represents a position in a textual source file.
type Position struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number.
	// Columns are based in bytes.
	// Zero indicates that the position only has line number information.
	Column int
}

// Pos returns a new position with the given line number and column.
// It panics if the resulting Position would not be valid
// (as reported by [Position.IsValid]).
func Pos(line, col int) Position {
	pos := Position{Line: line, Column: col}
	if !pos.IsValid() {
		panic("invalid Pos()")
	}
	return pos
}

// String formats the position as "line:col".
func (pos Position) String() string {
	if !pos.IsValid() {
		return "<invalid position>"
	}
	if pos.Column == 0 {
		return fmt.Sprintf("%d", pos.Line)
	}
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// IsValid reports whether pos has a positive line number
// and a non-negative column.
// (A zero column indicates line-only position information.)
func (pos Position) IsValid() bool {
	return pos.Line > 0 && pos.Column >= 0
}

// TokenKind is an enumeration of valid [Token] types.
// The zero value is [ErrorToken].
type TokenKind int

// [TokenKind] values.
const (
	// ErrorToken indicates an invalid token or the end of input.
	ErrorToken TokenKind = iota
	// IdentifierToken indicates a name.
	// The Value field of [Token] will contain the identifier.
	IdentifierToken
	// StringToken indicates a literal string.
	// The Value field of [Token] will contain the parsed value of the string.
	StringToken
	// NumeralToken indicates a numeric constant.
	// The Value field of [Token] will contain the constant as written.
	NumeralToken

	// Keywords

	AndToken   // and
	FalseToken // false
	NilToken   // nil
	NotToken   // not
	OrToken    // or
	TrueToken  // true

	// Operators

	AddToken          // +
	SubToken          // -
	MulToken          // *
	DivToken          // /
	ModToken          // %
	PowToken          // ^
	LenToken          // #
	BitAndToken       // &
	BitXorToken       // ~
	BitOrToken        // |
	LShiftToken       // <<
	RShiftToken       // >>
	IntDivToken       // //
	EqualToken        // ==
	NotEqualToken     // ~=
	LessEqualToken    // <=
	GreaterEqualToken // >=
	LessToken         // <
	GreaterToken      // >
	LParenToken       // (
	RParenToken       // )
	ConcatToken       // ..
)

// keywords maps the reserved words that can appear in an expression
// to their token kinds.
// Lua's statement keywords are reported as [ErrorToken]
// so that they cannot be mistaken for names.
var keywords = map[string]TokenKind{
	"and":   AndToken,
	"false": FalseToken,
	"nil":   NilToken,
	"not":   NotToken,
	"or":    OrToken,
	"true":  TrueToken,
}

var statementKeywords = map[string]struct{}{
	"break":    {},
	"do":       {},
	"else":     {},
	"elseif":   {},
	"end":      {},
	"for":      {},
	"function": {},
	"goto":     {},
	"if":       {},
	"in":       {},
	"local":    {},
	"repeat":   {},
	"return":   {},
	"then":     {},
	"until":    {},
	"while":    {},
}

// IsReserved reports whether s is one of Lua's reserved words.
func IsReserved(s string) bool {
	if _, ok := keywords[s]; ok {
		return true
	}
	_, ok := statementKeywords[s]
	return ok
}

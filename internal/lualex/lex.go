// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package lualex splits the text of a Lua expression
// into [Lua lexical elements].
//
// [Lua lexical elements]: https://www.lua.org/manual/5.4/manual.html#3.1
package lualex

import (
	"fmt"
	"io"
	"strings"
)

// A Scanner splits a string into Lua expression tokens.
type Scanner struct {
	src string
	// off is the byte offset of the next unread byte in src.
	off int
	// line is the 1-based line number of off.
	line int
	// lineStart is the byte offset of the first byte of line.
	lineStart int
	err       error
}

// NewScanner returns a [Scanner] that reads from src.
func NewScanner(src string) *Scanner {
	return &Scanner{
		src:  src,
		line: 1,
	}
}

// Scan reads the next [Token] from the string.
// At the end of the input, Scan returns an [ErrorToken] and [io.EOF].
// If Scan returns any other error,
// then the returned token will be an [ErrorToken]
// with the Position field set to the approximate position of the error
// and every subsequent call will return the same error.
func (s *Scanner) Scan() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if err := s.skipSpaceAndComments(); err != nil {
		s.err = err
		return Token{Kind: ErrorToken, Position: s.pos()}, err
	}
	if s.off >= len(s.src) {
		return Token{}, io.EOF
	}

	pos := s.pos()
	b := s.src[s.off]
	switch {
	case isLetter(b) || b == '_':
		end := s.off + 1
		for end < len(s.src) && (isLetter(s.src[end]) || isDigit(s.src[end]) || s.src[end] == '_') {
			end++
		}
		value := s.src[s.off:end]
		s.off = end
		if kind, isKeyword := keywords[value]; isKeyword {
			return Token{Kind: kind, Position: pos}, nil
		}
		if _, isStatement := statementKeywords[value]; isStatement {
			s.err = fmt.Errorf("%v: unexpected %q in expression", pos, value)
			return Token{Kind: ErrorToken, Position: pos}, s.err
		}
		return Token{Kind: IdentifierToken, Position: pos, Value: value}, nil
	case isDigit(b) || b == '.' && s.off+1 < len(s.src) && isDigit(s.src[s.off+1]):
		value := s.numeral()
		if _, _, _, err := ParseNumeral(value); err != nil {
			s.err = fmt.Errorf("%v: malformed number near %s", pos, value)
			return Token{Kind: ErrorToken, Position: pos}, s.err
		}
		return Token{Kind: NumeralToken, Position: pos, Value: value}, nil
	case b == '\'' || b == '"':
		value, n, err := decodeShortString(s.src[s.off+1:], b)
		if err != nil {
			s.err = fmt.Errorf("%v: %v", pos, err)
			return Token{Kind: ErrorToken, Position: pos}, s.err
		}
		s.advance(1 + n)
		return Token{Kind: StringToken, Position: pos, Value: value}, nil
	case b == '[':
		level, ok := longBracketLevel(s.src[s.off:])
		if !ok {
			s.err = fmt.Errorf("%v: unexpected '['", pos)
			return Token{Kind: ErrorToken, Position: pos}, s.err
		}
		value, n, err := decodeLongString(s.src[s.off:], level)
		if err != nil {
			s.err = fmt.Errorf("%v: %v", pos, err)
			return Token{Kind: ErrorToken, Position: pos}, s.err
		}
		s.advance(n)
		return Token{Kind: StringToken, Position: pos, Value: value}, nil
	}

	kind, n := s.operator()
	if kind == ErrorToken {
		s.err = fmt.Errorf("%v: unexpected %q", pos, b)
		return Token{Kind: ErrorToken, Position: pos}, s.err
	}
	s.off += n
	return Token{Kind: kind, Position: pos}, nil
}

// operator matches the longest operator at the current offset.
func (s *Scanner) operator() (TokenKind, int) {
	rest := s.src[s.off:]
	next := func(i int) byte {
		if i >= len(rest) {
			return 0
		}
		return rest[i]
	}
	switch rest[0] {
	case '+':
		return AddToken, 1
	case '-':
		return SubToken, 1
	case '*':
		return MulToken, 1
	case '/':
		if next(1) == '/' {
			return IntDivToken, 2
		}
		return DivToken, 1
	case '%':
		return ModToken, 1
	case '^':
		return PowToken, 1
	case '#':
		return LenToken, 1
	case '&':
		return BitAndToken, 1
	case '|':
		return BitOrToken, 1
	case '~':
		if next(1) == '=' {
			return NotEqualToken, 2
		}
		return BitXorToken, 1
	case '<':
		switch next(1) {
		case '<':
			return LShiftToken, 2
		case '=':
			return LessEqualToken, 2
		}
		return LessToken, 1
	case '>':
		switch next(1) {
		case '>':
			return RShiftToken, 2
		case '=':
			return GreaterEqualToken, 2
		}
		return GreaterToken, 1
	case '=':
		if next(1) == '=' {
			return EqualToken, 2
		}
	case '(':
		return LParenToken, 1
	case ')':
		return RParenToken, 1
	case '.':
		if next(1) == '.' && next(2) != '.' {
			return ConcatToken, 2
		}
	}
	return ErrorToken, 0
}

// numeral consumes a numeral starting at the current offset.
// Like upstream Lua, it reads greedily
// and leaves validation to [ParseNumeral].
func (s *Scanner) numeral() string {
	start := s.off
	expo := "Ee"
	if strings.HasPrefix(s.src[start:], "0x") || strings.HasPrefix(s.src[start:], "0X") {
		expo = "Pp"
		s.off += 2
	}
	for s.off < len(s.src) {
		c := s.src[s.off]
		switch {
		case strings.IndexByte(expo, c) >= 0:
			s.off++
			if s.off < len(s.src) && (s.src[s.off] == '+' || s.src[s.off] == '-') {
				s.off++
			}
		case isHexDigit(c) || isLetter(c) || c == '.' || c == '_':
			s.off++
		default:
			return s.src[start:s.off]
		}
	}
	return s.src[start:s.off]
}

// skipSpaceAndComments advances past whitespace and comments.
func (s *Scanner) skipSpaceAndComments() error {
	for s.off < len(s.src) {
		switch {
		case isSpace(s.src[s.off]):
			s.advance(1)
		case strings.HasPrefix(s.src[s.off:], "--"):
			start := s.pos()
			rest := s.src[s.off+2:]
			if level, ok := longBracketLevel(rest); ok {
				_, n, err := decodeLongString(rest, level)
				if err != nil {
					return fmt.Errorf("%v: unfinished long comment", start)
				}
				s.advance(2 + n)
				continue
			}
			n := strings.IndexByte(rest, '\n')
			if n < 0 {
				n = len(rest)
			}
			s.advance(2 + n)
		default:
			return nil
		}
	}
	return nil
}

// advance moves the read offset forward by n bytes,
// keeping track of line boundaries.
func (s *Scanner) advance(n int) {
	end := s.off + n
	for ; s.off < end; s.off++ {
		if s.src[s.off] == '\n' {
			s.line++
			s.lineStart = s.off + 1
		}
	}
}

func (s *Scanner) pos() Position {
	return Position{Line: s.line, Column: s.off - s.lineStart + 1}
}

// longBracketLevel reports the level of the opening long bracket
// at the beginning of s.
// (For example, "[==[" is an opening long bracket of level 2.)
func longBracketLevel(s string) (level int, ok bool) {
	if !strings.HasPrefix(s, "[") {
		return 0, false
	}
	level = 1
	for level < len(s) && s[level] == '=' {
		level++
	}
	if level >= len(s) || s[level] != '[' {
		return 0, false
	}
	return level - 1, true
}

// decodeLongString decodes the long bracket string at the beginning of s
// and returns the number of bytes consumed.
// A newline immediately following the opening bracket is skipped
// and any sequence of newline characters is normalized to "\n".
func decodeLongString(s string, level int) (value string, n int, err error) {
	open := level + 2
	closing := "]" + strings.Repeat("=", level) + "]"
	end := strings.Index(s[open:], closing)
	if end < 0 {
		return "", 0, fmt.Errorf("unfinished long string")
	}
	body := s[open : open+end]
	if strings.HasPrefix(body, "\r\n") || strings.HasPrefix(body, "\n\r") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") || strings.HasPrefix(body, "\r") {
		body = body[1:]
	}

	sb := new(strings.Builder)
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\n' && c != '\r' {
			sb.WriteByte(c)
			continue
		}
		if i+1 < len(body) && (body[i+1] == '\n' || body[i+1] == '\r') && body[i+1] != c {
			i++
		}
		sb.WriteByte('\n')
	}
	return sb.String(), open + end + len(closing), nil
}

// isSpace reports whether the given byte represents a space in Lua source code.
// According to the [reference],
// "[i]n source code, Lua recognizes as spaces the standard ASCII whitespace characters
// space, form feed, newline, carriage return, horizontal tab, and vertical tab."
//
// [reference]: https://www.lua.org/manual/5.4/manual.html#:~:text=In%20source%20code%2C%20Lua%20recognizes%20as%20spaces,.
func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexDigit(c byte) (byte, error) {
	switch {
	case isDigit(c):
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 0xa, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 0xa, nil
	default:
		return 0, fmt.Errorf("unexpected %q (want hex digit)", c)
	}
}

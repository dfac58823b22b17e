// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Quote returns a double-quoted Lua string literal representing s.
func Quote(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for {
		c, size := utf8.DecodeRuneInString(s)
		switch {
		case size == 0:
			sb.WriteByte('"')
			return sb.String()
		case c == utf8.RuneError && size == 1:
			fmt.Fprintf(sb, `\x%02x`, s[0])
		case c == '\\' || c == '"':
			sb.WriteByte('\\')
			sb.WriteRune(c)
		case isPrint(c):
			sb.WriteRune(c)
		case c == '\a':
			sb.WriteString(`\a`)
		case c == '\b':
			sb.WriteString(`\b`)
		case c == '\f':
			sb.WriteString(`\f`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\v':
			sb.WriteString(`\v`)
		default:
			fmt.Fprintf(sb, `\u{%x}`, c)
		}
		s = s[size:]
	}
}

// Unquote interprets s as a single-quoted, double-quoted, or bracket-delimited Lua string literal,
// returning the string value that s quotes.
func Unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", errUnquoteSyntax
	}
	var unquoted string
	var n int
	switch s[0] {
	case '\'', '"':
		var err error
		unquoted, n, err = decodeShortString(s[1:], s[0])
		if err != nil {
			return "", errUnquoteSyntax
		}
		n++
	case '[':
		level, ok := longBracketLevel(s)
		if !ok {
			return "", errUnquoteSyntax
		}
		var err error
		unquoted, n, err = decodeLongString(s, level)
		if err != nil {
			return "", errUnquoteSyntax
		}
	default:
		return "", errUnquoteSyntax
	}

	if n != len(s) {
		return "", errUnquoteSyntax
	}
	return unquoted, nil
}

var errUnquoteSyntax = errors.New("invalid syntax")

// decodeShortString decodes the body of a quoted string
// up to and including the closing quote.
// It returns the decoded value and the number of bytes of s consumed.
func decodeShortString(s string, quote byte) (value string, n int, err error) {
	sb := new(strings.Builder)
	i := 0
	for {
		if i >= len(s) {
			return "", i, errors.New("unfinished string")
		}
		b := s[i]
		i++
		switch {
		case b == quote:
			return sb.String(), i, nil
		case b == '\n' || b == '\r':
			return "", i, errors.New("unfinished string")
		case b != '\\':
			sb.WriteByte(b)
			continue
		}

		// Backslash escape.
		if i >= len(s) {
			return "", i, errors.New("unfinished string")
		}
		b = s[i]
		i++
		switch b {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '\\', '\'', '"':
			sb.WriteByte(b)
		case '\n', '\r':
			if i < len(s) && (s[i] == '\n' || s[i] == '\r') && s[i] != b {
				i++
			}
			sb.WriteByte('\n')
		case 'z':
			// "'\z' skips the following span of whitespace characters, including line breaks"
			for i < len(s) && isSpace(s[i]) {
				i++
			}
		case 'x':
			if i+2 > len(s) {
				return "", i, errors.New("unfinished string")
			}
			hi, err := hexDigit(s[i])
			if err != nil {
				return "", i, err
			}
			lo, err := hexDigit(s[i+1])
			if err != nil {
				return "", i, err
			}
			sb.WriteByte(hi<<4 | lo)
			i += 2
		case 'u':
			// \u{XXX}, 1+ hex digits to UTF-8 limited to 2^31
			if i >= len(s) || s[i] != '{' {
				return "", i, errors.New("missing '{' in \\u{xxxx}")
			}
			i++
			var r rune
			start := i
			for ; i < len(s) && s[i] != '}'; i++ {
				nibble, err := hexDigit(s[i])
				if err != nil {
					return "", i, err
				}
				if r > 0x7FFFFFFF>>4 {
					return "", i, errors.New("UTF-8 value too large")
				}
				r = r<<4 | rune(nibble)
			}
			if i >= len(s) {
				return "", i, errors.New("unfinished string")
			}
			if i == start {
				return "", i, errors.New("hexadecimal digit expected")
			}
			i++
			sb.WriteRune(r)
		default:
			if !isDigit(b) {
				return "", i, errors.New("invalid escape sequence")
			}
			// Decimal escape (1-3 digits).
			result := uint16(b - '0')
			for range 2 {
				if i >= len(s) || !isDigit(s[i]) {
					break
				}
				result = 10*result + uint16(s[i]-'0')
				i++
			}
			if result > 0xff {
				return "", i, errors.New("decimal escape too large")
			}
			sb.WriteByte(byte(result))
		}
	}
}

func isPrint(c rune) bool {
	return 0x20 <= c && c < 0x7f
}

// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInt converts the given string to a 64-bit signed integer
// according to the [lexical rules of Lua].
// Surrounding whitespace is permitted,
// and any error returned will be of type [*strconv.NumError].
//
// [lexical rules of Lua]: https://lua.org/manual/5.4/manual.html#3.1
func ParseInt(s string) (int64, error) {
	s = trimSpace(s)
	neg, withoutSign := cutSign(s)
	if strings.Contains(withoutSign, "_") {
		return 0, syntaxError("ParseInt", s)
	}

	h, isHex := cutHexPrefix(withoutSign)
	if !isHex {
		return strconv.ParseInt(s, 10, 64)
	}

	// “Hexadecimal numerals with neither a radix point nor an exponent
	// always denote an integer value;
	// if the value overflows, it wraps around to fit into a valid integer.”
	if h == "" {
		return 0, syntaxError("ParseInt", s)
	}
	var x uint64
	for i := 0; i < len(h); i++ {
		digit, err := hexDigit(h[i])
		if err != nil {
			return 0, syntaxError("ParseInt", s)
		}
		x = x<<4 | uint64(digit)
	}
	if neg {
		return int64(-x), nil
	}
	return int64(x), nil
}

// ParseNumber converts the given string to a 64-bit floating-point number
// according to the [lexical rules of Lua].
// Surrounding whitespace is permitted,
// and any error returned will be of type [*strconv.NumError].
// Values too large to represent are converted to ±Inf without an error.
//
// [lexical rules of Lua]: https://lua.org/manual/5.4/manual.html#3.1
func ParseNumber(s string) (float64, error) {
	s = trimSpace(s)
	_, withoutSign := cutSign(s)
	if strings.EqualFold(withoutSign, "Inf") ||
		strings.EqualFold(withoutSign, "Infinity") ||
		strings.EqualFold(withoutSign, "NaN") ||
		strings.Contains(withoutSign, "_") {
		return 0, syntaxError("ParseNumber", s)
	}
	toParse := s
	if _, isHex := cutHexPrefix(withoutSign); isHex && !strings.ContainsAny(s, "pP") {
		// Go hex float literals must have an exponent.
		toParse = s + "p0"
	}
	f, err := strconv.ParseFloat(toParse, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	} else if err != nil {
		return 0, syntaxError("ParseNumber", s)
	}
	return f, err
}

// ParseNumeral converts a numeric constant as written in Lua source
// to an integer or a float.
// A numeral denotes an integer if it has neither a radix point nor an exponent:
// decimal integers that overflow are converted to floats
// and hexadecimal integers wrap around.
// Everything else denotes a float.
//
// Equivalent to `luaO_str2num` in upstream Lua.
func ParseNumeral(s string) (i int64, f float64, isInteger bool, err error) {
	_, withoutSign := cutSign(trimSpace(s))
	_, isHex := cutHexPrefix(withoutSign)
	floatMarkers := ".eEnN"
	if isHex {
		floatMarkers = ".pP"
	}
	if !strings.ContainsAny(withoutSign, floatMarkers) {
		i, err := ParseInt(s)
		if err == nil {
			return i, 0, true, nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return 0, 0, false, err
		}
	}
	f, err = ParseNumber(s)
	if err != nil {
		return 0, 0, false, err
	}
	return 0, f, false, nil
}

func syntaxError(fn, s string) error {
	return &strconv.NumError{
		Func: fn,
		Num:  s,
		Err:  strconv.ErrSyntax,
	}
}

func cutHexPrefix(s string) (rest string, hex bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

func cutSign(s string) (neg bool, rest string) {
	switch {
	case len(s) == 0:
		return false, s
	case s[0] == '+':
		return false, s[1:]
	case s[0] == '-':
		return true, s[1:]
	default:
		return false, s
	}
}

func trimSpace(s string) string {
	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

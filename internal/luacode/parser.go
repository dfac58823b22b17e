// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"luaops.dev/pkg/internal/lualex"
)

// depthLimit is the maximum recursion depth for syntax constructs.
//
// Equivalent to `LUAI_MAXCCALLS` in upstream Lua.
const depthLimit = 200

var errDepthExceeded = errors.New("recursion depth exceeded")

// Parse parses a single Lua expression.
// The whole of text must be consumed by the expression.
func Parse(source Source, text string) (Expr, error) {
	p := &parser{
		source: source,
		ls:     lualex.NewScanner(text),
	}
	p.advance()
	e, _, err := p.subExpression(0)
	if err != nil {
		return nil, err
	}
	if p.curr.Kind != lualex.ErrorToken {
		return nil, syntaxError(source, p.curr, "<eof> expected")
	}
	if err := p.scanError(); err != nil {
		return nil, err
	}
	return e, nil
}

// parser is the in-progress state of a [Parse] call.
type parser struct {
	source Source
	ls     *lualex.Scanner
	curr   lualex.Token
	err    error
	depth  int
}

// advance scans the next token.
// Once the scanner returns an error,
// the current token stays an [lualex.ErrorToken].
func (p *parser) advance() {
	if p.err != nil {
		p.curr = lualex.Token{}
		return
	}
	p.curr, p.err = p.ls.Scan()
}

// scanError returns the scanner's error, if any,
// annotated with the source.
func (p *parser) scanError() error {
	if p.err == nil || p.err == io.EOF {
		return nil
	}
	return fmt.Errorf("%v:%w", p.source, p.err)
}

// subExpression parses expressions joined by binary operators
// where the binary operator's precedence is higher than the given limit.
// If the returned operator is valid,
// then it is the first operator encountered that is lower than or equal to the given limit.
func (p *parser) subExpression(limit int) (Expr, BinaryOperator, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > depthLimit {
		return nil, 0, syntaxError(p.source, p.curr, errDepthExceeded.Error())
	}

	var e Expr
	if uop, ok := toUnaryOperator(p.curr.Kind); ok {
		pos := p.curr.Position
		p.advance()
		x, _, err := p.subExpression(unaryPrecedence)
		if err != nil {
			return nil, 0, err
		}
		e = &UnaryExpr{Op: uop, X: x, Position: pos}
	} else {
		var err error
		e, err = p.simpleExpression()
		if err != nil {
			return nil, 0, err
		}
	}

	// Expand while operators have priorities higher than limit.
	op, _ := toBinaryOperator(p.curr.Kind)
	for op.IsValid() && int(operatorPrecedence[op].left) > limit {
		if op == BinaryConcat {
			var err error
			e, op, err = p.concatChain(e)
			if err != nil {
				return nil, 0, err
			}
			continue
		}
		p.advance()
		y, nextOp, err := p.subExpression(int(operatorPrecedence[op].right))
		if err != nil {
			return nil, 0, err
		}
		e = &BinaryExpr{Op: op, X: e, Y: y}
		op = nextOp
	}
	return e, op, nil
}

// concatChain parses the operands following x in a chain of concatenations.
// Each operand is parsed at the same depth,
// so the length of a chain is only bounded by register usage.
// The result nests to the right, as concatenation is right associative.
// The returned operator is the first one after the chain.
func (p *parser) concatChain(x Expr) (Expr, BinaryOperator, error) {
	operands := []Expr{x}
	for {
		p.advance()
		y, op, err := p.subExpression(int(operatorPrecedence[BinaryConcat].left))
		if err != nil {
			return nil, 0, err
		}
		operands = append(operands, y)
		if op != BinaryConcat {
			e := operands[len(operands)-1]
			for i := len(operands) - 2; i >= 0; i-- {
				e = &BinaryExpr{Op: BinaryConcat, X: operands[i], Y: e}
			}
			return e, op, nil
		}
	}
}

// simpleExpression parses a literal, a name, or a parenthesized expression.
//
// Roughly equivalent to `simpleexp` and `primaryexp` in upstream Lua.
func (p *parser) simpleExpression() (Expr, error) {
	tok := p.curr
	switch tok.Kind {
	case lualex.NumeralToken:
		p.advance()
		i, f, isInteger, err := lualex.ParseNumeral(tok.Value)
		if err != nil {
			return nil, syntaxError(p.source, tok, "malformed number")
		}
		if isInteger {
			return &Literal{Value: IntegerValue(i), Position: tok.Position}, nil
		}
		return &Literal{Value: FloatValue(f), Position: tok.Position}, nil
	case lualex.StringToken:
		p.advance()
		return &Literal{Value: StringValue(tok.Value), Position: tok.Position}, nil
	case lualex.NilToken:
		p.advance()
		return &Literal{Position: tok.Position}, nil
	case lualex.TrueToken:
		p.advance()
		return &Literal{Value: BoolValue(true), Position: tok.Position}, nil
	case lualex.FalseToken:
		p.advance()
		return &Literal{Value: BoolValue(false), Position: tok.Position}, nil
	case lualex.IdentifierToken:
		p.advance()
		return &Name{Name: tok.Value, Position: tok.Position}, nil
	case lualex.LParenToken:
		p.advance()
		x, _, err := p.subExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.checkMatch(tok.Position, lualex.LParenToken, lualex.RParenToken); err != nil {
			return nil, err
		}
		return &ParenExpr{X: x, Position: tok.Position}, nil
	default:
		if err := p.scanError(); err != nil {
			return nil, err
		}
		return nil, syntaxError(p.source, tok, "unexpected symbol")
	}
}

// checkMatch verifies that the current token is the closing token
// and advances past it.
//
// Equivalent to `check_match` in upstream Lua.
func (p *parser) checkMatch(start lualex.Position, open, close lualex.TokenKind) error {
	if p.curr.Kind == close {
		p.advance()
		return nil
	}
	if err := p.scanError(); err != nil {
		return err
	}
	var msg string
	if p.curr.Position.Line == start.Line || !p.curr.Position.IsValid() {
		msg = fmt.Sprintf("'%v' expected", close)
	} else {
		msg = fmt.Sprintf("'%v' expected (to close '%v' at %v)", close, open, start)
	}
	return syntaxError(p.source, p.curr, msg)
}

// syntaxError returns an error that annotates msg with the source and token.
//
// Equivalent to `lexerror`/`luaX_syntaxerror` in upstream Lua.
func syntaxError(source Source, token lualex.Token, msg string) error {
	sb := new(strings.Builder)
	sb.WriteString(source.String())
	if token.Position.IsValid() {
		sb.WriteString(":")
		sb.WriteString(token.Position.String())
	}
	sb.WriteString(": ")
	sb.WriteString(msg)
	sb.WriteString(" near ")
	sb.WriteString(token.String())
	return errors.New(sb.String())
}

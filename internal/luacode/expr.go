// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package luacode

import (
	"fmt"
	"strings"

	"luaops.dev/pkg/internal/lualex"
)

// Expr is a node in a Lua expression's syntax tree.
// It is one of [*Literal], [*Name], [*ParenExpr], [*UnaryExpr], or [*BinaryExpr].
type Expr interface {
	// Pos returns the position of the first token of the expression.
	Pos() lualex.Position
	// String formats the expression as Lua source.
	String() string

	expr()
}

// Literal is a constant written in the source:
// nil, true, false, a numeral, or a string.
type Literal struct {
	Value    Value
	Position lualex.Position
}

// Name is a reference to a variable.
// Every distinct name in an expression becomes a parameter
// of the compiled [Function].
type Name struct {
	Name     string
	Position lualex.Position
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X        Expr
	Position lualex.Position
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op       UnaryOperator
	X        Expr
	Position lualex.Position
}

// BinaryExpr is a binary operator applied to two operands.
type BinaryExpr struct {
	Op   BinaryOperator
	X, Y Expr
}

func (e *Literal) Pos() lualex.Position    { return e.Position }
func (e *Name) Pos() lualex.Position       { return e.Position }
func (e *ParenExpr) Pos() lualex.Position  { return e.Position }
func (e *UnaryExpr) Pos() lualex.Position  { return e.Position }
func (e *BinaryExpr) Pos() lualex.Position { return e.X.Pos() }

func (e *Literal) String() string   { return e.Value.String() }
func (e *Name) String() string      { return e.Name }
func (e *ParenExpr) String() string { return "(" + e.X.String() + ")" }

func (e *UnaryExpr) String() string {
	x := e.X.String()
	switch {
	case e.Op == Not:
		return "not " + x
	case e.Op == Minus && strings.HasPrefix(x, "-"):
		// Keep "- -x" from becoming a comment.
		return "- " + x
	default:
		return e.Op.String() + x
	}
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%v %v %v", e.X, e.Op, e.Y)
}

func (*Literal) expr()    {}
func (*Name) expr()       {}
func (*ParenExpr) expr()  {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}

// FreeNames returns the distinct names referenced in e
// in the order they first appear.
func FreeNames(e Expr) []string {
	var names []string
	seen := make(map[string]struct{})
	walkExpr(e, func(e Expr) {
		if n, ok := e.(*Name); ok {
			if _, dup := seen[n.Name]; !dup {
				seen[n.Name] = struct{}{}
				names = append(names, n.Name)
			}
		}
	})
	return names
}

// walkExpr calls f for e and each of its descendants
// in source order.
func walkExpr(e Expr, f func(Expr)) {
	f(e)
	switch e := e.(type) {
	case *ParenExpr:
		walkExpr(e.X, f)
	case *UnaryExpr:
		walkExpr(e.X, f)
	case *BinaryExpr:
		walkExpr(e.X, f)
		walkExpr(e.Y, f)
	}
}

// concatOperands returns the operands of a chain of concatenations.
// "a .. b .. c" parses as "a .. (b .. c)"
// and has the operands [a, b, c].
func concatOperands(e *BinaryExpr) []Expr {
	var operands []Expr
	var visit func(Expr)
	visit = func(e Expr) {
		if b, ok := e.(*BinaryExpr); ok && b.Op == BinaryConcat {
			visit(b.X)
			visit(b.Y)
			return
		}
		operands = append(operands, e)
	}
	visit(e)
	return operands
}

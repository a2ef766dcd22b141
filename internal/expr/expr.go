// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package expr defines fone expression types.
package expr

import (
	"strconv"
	"strings"
)

// Expr is the interface all syntax tree nodes implement.
type Expr interface {
	// String returns the serializable representation of the expression.
	String() string
}

// Number represents a numeric literal.
type Number struct {
	Value  float64
	Lexeme string // Original source text, when parsed
}

func (n Number) String() string {
	if n.Lexeme != "" {
		return n.Lexeme
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Symbol represents a symbolic name.
type Symbol struct {
	Name string
}

func (s Symbol) String() string { return s.Name }

// List represents a parenthesized sequence of expressions. It covers
// both calls and special forms; the evaluator decides which by the head.
type List struct {
	Items []Expr
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, e := range l.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

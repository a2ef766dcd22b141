// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines fone token types and atom classification.
package token

import "strings"

// Token represents a fone token type.
type Token int

const (
	EOF Token = iota
	LPAREN
	RPAREN
	NUMBER
	SYMBOL
)

// Delimiter runes.
const (
	RuneLeftParen  = '('
	RuneRightParen = ')'
)

// IsParen returns true if the rune is a parenthesis delimiter.
func IsParen(r rune) bool {
	return r == RuneLeftParen || r == RuneRightParen
}

// TokenFromRune returns the token type for a delimiter rune.
func TokenFromRune(r rune) Token {
	switch r {
	case RuneLeftParen:
		return LPAREN
	case RuneRightParen:
		return RPAREN
	}
	return SYMBOL
}

// Classify returns the token type for an atom lexeme: NUMBER when the
// whole lexeme is a numeric literal, SYMBOL otherwise.
func Classify(lexeme string) Token {
	if IsNumber(lexeme) {
		return NUMBER
	}
	return SYMBOL
}

// IsNumber reports whether the lexeme is a numeric literal: an optional
// leading '-', one or more digits, then optionally a single '.' followed
// by one or more digits. Anything else ("-", "5.", ".5", "1.2.3",
// "12abc") is a symbol.
func IsNumber(lexeme string) bool {
	rest := strings.TrimPrefix(lexeme, "-")
	whole, frac, dotted := strings.Cut(rest, ".")
	if !isDigits(whole) {
		return false
	}
	if dotted && !isDigits(frac) {
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case NUMBER:
		return "NUMBER"
	case SYMBOL:
		return "SYMBOL"
	}
	return "UNKNOWN"
}

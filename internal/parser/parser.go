// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser builds fone syntax trees from a token stream.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"nickandperla.net/fone/internal/expr"
	"nickandperla.net/fone/internal/scanner"
	"nickandperla.net/fone/internal/token"
)

// Structural parse failures.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
)

// Parser reads one expression at a time from a scanner, driven by a
// single token of lookahead. All structure is explicit parentheses;
// there is no precedence.
type Parser struct {
	scan *scanner.Scanner
}

// New creates a new Parser over the given scanner.
func New(s *scanner.Scanner) *Parser {
	return &Parser{scan: s}
}

// NewFromString creates a Parser over a fresh scanner for the source text.
func NewFromString(src string) *Parser {
	return New(scanner.NewFromString(src))
}

// Next parses and returns the next top-level expression. It returns
// io.EOF once the input is cleanly exhausted; callers loop until then.
func (p *Parser) Next() (expr.Expr, error) {
	item, err := p.scan.Peek()
	if err != nil {
		return nil, err
	}
	if item.Token == token.EOF {
		return nil, io.EOF
	}
	return p.parse()
}

// parse consumes and parses exactly one expression.
func (p *Parser) parse() (expr.Expr, error) {
	item, err := p.scan.Next()
	if err != nil {
		return nil, err
	}

	switch item.Token {
	case token.LPAREN:
		return p.parseList(item.Line)
	case token.NUMBER:
		return parseNumber(item)
	case token.SYMBOL:
		return expr.Symbol{Name: item.Value}, nil
	case token.RPAREN:
		return nil, fmt.Errorf("%w: ')' on line %d", ErrUnexpectedToken, item.Line)
	}
	return nil, fmt.Errorf("%w on line %d", ErrUnexpectedEOF, item.Line)
}

// parseList consumes sub-expressions until the matching ')'.
func (p *Parser) parseList(openLine int) (expr.Expr, error) {
	var items []expr.Expr
	for {
		item, err := p.scan.Peek()
		if err != nil {
			return nil, err
		}

		switch item.Token {
		case token.RPAREN:
			p.scan.Next()
			return expr.List{Items: items}, nil
		case token.EOF:
			return nil, fmt.Errorf("%w: '(' on line %d is never closed", ErrUnexpectedEOF, openLine)
		}

		sub, err := p.parse()
		if err != nil {
			return nil, err
		}
		items = append(items, sub)
	}
}

// parseNumber converts a NUMBER lexeme to its value. Magnitudes beyond
// float64 range round to ±Inf, the IEEE-754 conversion of the literal.
func parseNumber(item *scanner.Item) (expr.Expr, error) {
	value, err := strconv.ParseFloat(item.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: malformed number '%s' on line %d", ErrUnexpectedToken, item.Value, item.Line)
	}
	return expr.Number{Value: value, Lexeme: item.Value}, nil
}

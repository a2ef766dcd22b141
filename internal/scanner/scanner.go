// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming Unicode-aware lexer for fone.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nickandperla.net/fone/internal/token"
)

// Scanner tokenizes fone input rune-by-rune. Lexing is total: any run of
// non-whitespace, non-paren runes is an atom, classified as a number or
// a symbol. Exhausted input yields EOF items forever.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *Item
	line   int // Current line number (1-based)
}

// Item represents a scanned token with its lexeme.
type Item struct {
	Token token.Token
	Value string
	Line  int // Line number where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the current line number (1-based).
func (s *Scanner) Line() int {
	return s.line
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

// Next returns the next token from the input.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	s.buf.Reset()
	startLine := s.line

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return s.atom(startLine), nil
			}
			return &Item{Token: token.EOF, Line: s.line}, nil
		}
		if err != nil {
			return nil, err
		}

		// Track newlines
		if r == '\n' {
			s.line++
		}

		if unicode.IsSpace(r) {
			// Whitespace separates tokens and is otherwise ignored
			if s.buf.Len() > 0 {
				return s.atom(startLine), nil
			}
			startLine = s.line
			continue
		}

		if token.IsParen(r) {
			// If we have accumulated an atom, return it first
			if s.buf.Len() > 0 {
				s.reader.UnreadRune()
				return s.atom(startLine), nil
			}
			return &Item{Token: token.TokenFromRune(r), Value: string(r), Line: s.line}, nil
		}

		s.buf.WriteRune(r)
	}
}

// atom drains the accumulated lexeme into a classified NUMBER or SYMBOL item.
func (s *Scanner) atom(line int) *Item {
	lexeme := s.buf.String()
	return &Item{Token: token.Classify(lexeme), Value: lexeme, Line: line}
}

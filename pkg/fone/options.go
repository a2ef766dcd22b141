// Package fone provides the public API for the fone interpreter.
package fone

import (
	"io"

	"nickandperla.net/fone/internal/eval"
	"nickandperla.net/fone/internal/parser"
	"nickandperla.net/fone/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteStore configures SQLite session persistence at the given
// path. The store is opened during New; an open failure fails
// construction.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) { r.storePath = path }
}

// WithStore sets a custom session store.
func WithStore(s Store) Option {
	return func(r *Runtime) { r.store = s }
}

// WithMemoryStore configures an in-memory session store (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) { r.store = store.NewMemory() }
}

// WithOutput sets the io.Writer the print primitive writes to.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) { r.out = w }
}

// WithErrorOutput sets the io.Writer session warnings are reported to.
func WithErrorOutput(w io.Writer) Option {
	return func(r *Runtime) { r.errOut = w }
}

// WithExitFunc sets the function the exit primitive calls.
func WithExitFunc(fn func(code int)) Option {
	return func(r *Runtime) { r.exitFunc = fn }
}

// WithNoPrelude disables evaluating the embedded prelude.
func WithNoPrelude() Option {
	return func(r *Runtime) { r.noPrelude = true }
}

// Value is the result of evaluating fone source.
type Value = eval.Value

// Concrete value types.
type (
	Number  = eval.Number
	Boolean = eval.Boolean
	Nil     = eval.Nil
)

// Store is the interface for custom session stores.
type Store = store.Store

// Definition is a persisted session definition.
type Definition = store.Definition

// Error sentinels re-exported for embedders.
var (
	ErrUnboundSymbol  = eval.ErrUnboundSymbol
	ErrNotCallable    = eval.ErrNotCallable
	ErrArity          = eval.ErrArity
	ErrType           = eval.ErrType
	ErrDivisionByZero = eval.ErrDivisionByZero
	ErrInvalidForm    = eval.ErrInvalidForm

	// ErrIncomplete marks source that ends inside an open form; a line
	// editor should keep reading rather than report it.
	ErrIncomplete = parser.ErrUnexpectedEOF
)

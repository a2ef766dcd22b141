package eval

import "errors"

// Semantic evaluation failures. Every error returned by the evaluator
// wraps one of these sentinels; callers dispatch with errors.Is.
var (
	ErrUnboundSymbol  = errors.New("unbound symbol")
	ErrNotCallable    = errors.New("not callable")
	ErrArity          = errors.New("wrong number of arguments")
	ErrType           = errors.New("type mismatch")
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidForm    = errors.New("invalid form")
)

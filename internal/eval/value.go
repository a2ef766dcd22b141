package eval

import "strconv"

// Value is the runtime result of evaluating an expression. Values are
// immutable scalars or callables, distinct from static syntax.
type Value interface {
	// String returns the display representation of the value.
	String() string
}

// Number is a numeric value. The representation is IEEE-754 float64;
// arithmetic overflow follows IEEE rounding.
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Boolean is a truth value, produced by the comparison primitives.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the absent value, produced by empty (begin) and (print) calls.
type Nil struct{}

func (Nil) String() string { return "nil" }

// CallableFunc is the signature for primitive implementations. Arguments
// arrive already evaluated, left to right.
type CallableFunc func(args []Value) (Value, error)

// Callable is a named function value.
type Callable struct {
	Name string
	Fn   CallableFunc
}

func (c *Callable) String() string {
	return "<callable " + c.Name + ">"
}

// Truthy reports whether v counts as true in a condition: everything
// except Number(0) and Boolean(false).
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Number:
		return t != 0
	case Boolean:
		return bool(t)
	}
	return true
}

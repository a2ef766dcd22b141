package eval

import (
	"fmt"

	"nickandperla.net/fone/internal/expr"
)

// DefineHook observes successful define bindings. The runtime layer uses
// it to persist session definitions. The hook must not re-enter the
// evaluator.
type DefineHook func(name string, v Value)

// Evaluator interprets fone expressions against an environment.
type Evaluator struct {
	defineHook DefineHook
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDefineHook sets the hook invoked after each successful define.
func WithDefineHook(h DefineHook) Option {
	return func(e *Evaluator) { e.defineHook = h }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates one expression against env. At most one evaluation may
// be in flight per environment at a time; recursion over nested
// sub-expressions is bounded only by the syntax tree depth.
func (e *Evaluator) Eval(x expr.Expr, env *Env) (Value, error) {
	switch t := x.(type) {
	case expr.Number:
		return Number(t.Value), nil
	case expr.Symbol:
		v, ok := env.Get(t.Name)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrUnboundSymbol, t.Name)
		}
		return v, nil
	case expr.List:
		return e.evalList(t, env)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidForm, x)
}

// evalList dispatches a list: the closed special-form set first, then
// generic call evaluation.
func (e *Evaluator) evalList(l expr.List, env *Env) (Value, error) {
	if len(l.Items) == 0 {
		return nil, fmt.Errorf("%w: empty call ()", ErrInvalidForm)
	}

	if sym, ok := l.Items[0].(expr.Symbol); ok {
		switch sym.Name {
		case "if":
			return e.evalIf(l.Items[1:], env)
		case "define":
			return e.evalDefine(l.Items[1:], env)
		}
	}

	return e.evalCall(l, env)
}

// evalIf evaluates the condition, then exactly one branch. The untaken
// branch is never evaluated.
func (e *Evaluator) evalIf(args []expr.Expr, env *Env) (Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%w: if expects 3 arguments, got %d", ErrArity, len(args))
	}
	cond, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return e.Eval(args[1], env)
	}
	return e.Eval(args[2], env)
}

// evalDefine evaluates the value expression strictly before binding, so
// a failed value leaves the environment unmutated. Redefinition silently
// overwrites. Returns the bound value.
func (e *Evaluator) evalDefine(args []expr.Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: define expects 2 arguments, got %d", ErrArity, len(args))
	}
	sym, ok := args[0].(expr.Symbol)
	if !ok {
		return nil, fmt.Errorf("%w: define expects a symbol name, got '%s'", ErrType, args[0])
	}
	v, err := e.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(sym.Name, v)
	if e.defineHook != nil {
		e.defineHook(sym.Name, v)
	}
	return v, nil
}

// evalCall evaluates the head, then the operands left to right, then
// invokes the callable with the resulting values.
func (e *Evaluator) evalCall(l expr.List, env *Env) (Value, error) {
	head, err := e.Eval(l.Items[0], env)
	if err != nil {
		return nil, err
	}
	callable, ok := head.(*Callable)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is %s", ErrNotCallable, l.Items[0], head)
	}

	args := make([]Value, 0, len(l.Items)-1)
	for _, operand := range l.Items[1:] {
		v, err := e.Eval(operand, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return callable.Fn(args)
}

package eval

import (
	"fmt"
)

// NewGlobalEnv returns a fresh environment pre-populated with the
// primitive library and the boolean constants. true and false are
// ordinary bindings, not tokens; like any binding they can be shadowed
// by define.
func NewGlobalEnv() *Env {
	env := NewEnv()
	env.Set("true", Boolean(true))
	env.Set("false", Boolean(false))
	register(env, "+", builtinAdd)
	register(env, "-", builtinSub)
	register(env, "*", builtinMul)
	register(env, "/", builtinDiv)
	register(env, "<", builtinLess)
	register(env, ">", builtinGreater)
	register(env, "<=", builtinLessEq)
	register(env, ">=", builtinGreaterEq)
	register(env, "=", builtinEqual)
	register(env, "begin", builtinBegin)
	return env
}

// register binds a primitive under its language name.
func register(env *Env, name string, fn CallableFunc) {
	env.Set(name, &Callable{Name: name, Fn: fn})
}

// builtinAdd sums its arguments; the empty sum is 0.
func builtinAdd(args []Value) (Value, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return Number(sum), nil
}

// builtinMul multiplies its arguments; the empty product is 1.
func builtinMul(args []Value) (Value, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return Number(product), nil
}

// builtinSub negates a single argument, otherwise folds subtraction left
// to right; the empty difference is 0.
func builtinSub(args []Value) (Value, error) {
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	switch len(nums) {
	case 0:
		return Number(0), nil
	case 1:
		return Number(-nums[0]), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc -= n
	}
	return Number(acc), nil
}

// builtinDiv takes the reciprocal of a single argument, otherwise folds
// division left to right. A zero divisor is an error, never an infinity.
func builtinDiv(args []Value) (Value, error) {
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("%w: '/' expects at least 1 argument, got 0", ErrArity)
	}
	if len(nums) == 1 {
		nums = []float64{1, nums[0]}
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, ErrDivisionByZero
		}
		acc /= n
	}
	return Number(acc), nil
}

func builtinLess(args []Value) (Value, error) {
	return compare("<", args, func(a, b float64) bool { return a < b })
}

func builtinGreater(args []Value) (Value, error) {
	return compare(">", args, func(a, b float64) bool { return a > b })
}

func builtinLessEq(args []Value) (Value, error) {
	return compare("<=", args, func(a, b float64) bool { return a <= b })
}

func builtinGreaterEq(args []Value) (Value, error) {
	return compare(">=", args, func(a, b float64) bool { return a >= b })
}

func builtinEqual(args []Value) (Value, error) {
	return compare("=", args, func(a, b float64) bool { return a == b })
}

// builtinBegin returns its last argument; the call machinery already
// evaluated the sequence left to right.
func builtinBegin(args []Value) (Value, error) {
	if len(args) == 0 {
		return Nil{}, nil
	}
	return args[len(args)-1], nil
}

// compare applies op pairwise across the whole argument list, producing
// a boolean.
func compare(name string, args []Value, op func(a, b float64) bool) (Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: '%s' expects at least 2 arguments, got %d", ErrArity, name, len(args))
	}
	nums, err := numbers(name, args)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(nums)-1; i++ {
		if !op(nums[i], nums[i+1]) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}

// numbers asserts every argument is numeric.
func numbers(name string, args []Value) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(Number)
		if !ok {
			return nil, fmt.Errorf("%w: '%s' expects numbers, got %s", ErrType, name, a)
		}
		nums[i] = float64(n)
	}
	return nums, nil
}

package eval

import (
	"errors"
	"io"
	"testing"

	"nickandperla.net/fone/internal/parser"
)

// evalSource parses src and evaluates each top-level form against env,
// returning the value of the last one.
func evalSource(e *Evaluator, env *Env, src string) (Value, error) {
	p := parser.NewFromString(src)
	var last Value = Nil{}
	for {
		x, err := p.Next()
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return nil, err
		}
		last, err = e.Eval(x, env)
		if err != nil {
			return nil, err
		}
	}
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"-0.5", "-0.5"},
		{"(+ 1 2)", "3"},
		{"(* 2 (+ 3 4))", "14"},
		{"(begin (define foo 1007) (define bar 330) (+ foo bar))", "1337"},
		{"(if 0 1 2)", "2"},
		{"(if 1 1 2)", "1"},
		{"(define x 42)", "42"},
		{"true", "true"},
		{"false", "false"},
		{"(< 1 2)", "true"},
		{"(begin)", "nil"},
		{"+", "<callable +>"},
	}

	for _, tt := range tests {
		e := New()
		env := NewGlobalEnv()
		result, err := evalSource(e, env, tt.input)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.input, err)
		}
		if result.String() != tt.expected {
			t.Errorf("for %s: expected '%s', got '%s'", tt.input, tt.expected, result.String())
		}
	}
}

func TestDefineThenUse(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	result, err := evalSource(e, env, "(define x 40) (+ x 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "42" {
		t.Errorf("expected '42', got '%s'", result.String())
	}
}

func TestDefineReturnsBoundValue(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	result, err := evalSource(e, env, "(define x (+ 20 22))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "42" {
		t.Errorf("expected '42', got '%s'", result.String())
	}
}

func TestRedefinitionOverwrites(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "(define x 5) (define x 5) (define x 7)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := evalSource(e, env, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "7" {
		t.Errorf("expected '7', got '%s'", result.String())
	}
}

func TestUnboundSymbol(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "undefined-symbol")
	if !errors.Is(err, ErrUnboundSymbol) {
		t.Errorf("expected ErrUnboundSymbol, got %v", err)
	}

	_, err = evalSource(e, env, "(undefined-symbol)")
	if !errors.Is(err, ErrUnboundSymbol) {
		t.Errorf("expected ErrUnboundSymbol in call position, got %v", err)
	}
}

func TestNotCallable(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "((+ 1 2) 3)")
	if !errors.Is(err, ErrNotCallable) {
		t.Errorf("expected ErrNotCallable, got %v", err)
	}

	_, err = evalSource(e, env, "(define n 9) (n)")
	if !errors.Is(err, ErrNotCallable) {
		t.Errorf("expected ErrNotCallable for bound number, got %v", err)
	}
}

func TestEmptyListFails(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "()")
	if !errors.Is(err, ErrInvalidForm) {
		t.Errorf("expected ErrInvalidForm, got %v", err)
	}
}

func TestFailedDefineLeavesEnvUnmutated(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "(define y (+ 1 (/ 1 0)))")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if env.Has("y") {
		t.Error("expected y to stay unbound after failed define")
	}

	_, err = evalSource(e, env, "y")
	if !errors.Is(err, ErrUnboundSymbol) {
		t.Errorf("expected ErrUnboundSymbol for y, got %v", err)
	}
}

func TestDefineArity(t *testing.T) {
	tests := []string{"(define)", "(define x)", "(define x 1 2)"}

	for _, src := range tests {
		e := New()
		env := NewGlobalEnv()
		_, err := evalSource(e, env, src)
		if !errors.Is(err, ErrArity) {
			t.Errorf("for %s: expected ErrArity, got %v", src, err)
		}
	}
}

func TestDefineNonSymbolName(t *testing.T) {
	tests := []string{"(define 5 10)", "(define (x) 1)"}

	for _, src := range tests {
		e := New()
		env := NewGlobalEnv()
		_, err := evalSource(e, env, src)
		if !errors.Is(err, ErrType) {
			t.Errorf("for %s: expected ErrType, got %v", src, err)
		}
	}
}

func TestArgumentsEvaluateLeftToRight(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	var order []string
	env.Set("probe", &Callable{Name: "probe", Fn: func(args []Value) (Value, error) {
		order = append(order, args[0].String())
		return args[0], nil
	}})

	_, err := evalSource(e, env, "(+ (probe 1) (probe 2) (probe 3))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 3 || order[0] != "1" || order[1] != "2" || order[2] != "3" {
		t.Errorf("expected probes in order [1 2 3], got %v", order)
	}
}

func TestEvalIsDeterministic(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	if _, err := evalSource(e, env, "(define x 10)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := evalSource(e, env, "(* x (+ x 1))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := evalSource(e, env, "(* x (+ x 1))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("expected identical results, got '%s' and '%s'", first.String(), second.String())
	}
}

func TestCloneIsolatesEnvironments(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	if _, err := evalSource(e, env, "(define x 1)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := env.Clone()
	if _, err := evalSource(e, clone, "(define x 99)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := evalSource(e, env, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "1" {
		t.Errorf("expected original env to keep '1', got '%s'", result.String())
	}
}

func TestDefineHook(t *testing.T) {
	var gotName string
	var gotValue Value
	e := New(WithDefineHook(func(name string, v Value) {
		gotName = name
		gotValue = v
	}))
	env := NewGlobalEnv()

	if _, err := evalSource(e, env, "(define answer 42)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "answer" {
		t.Errorf("expected hook name 'answer', got '%s'", gotName)
	}
	if gotValue == nil || gotValue.String() != "42" {
		t.Errorf("expected hook value '42', got %v", gotValue)
	}
}

func TestDefineHookNotCalledOnFailure(t *testing.T) {
	calls := 0
	e := New(WithDefineHook(func(name string, v Value) { calls++ }))
	env := NewGlobalEnv()

	_, err := evalSource(e, env, "(define y (/ 1 0))")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no hook calls for failed define, got %d", calls)
	}
}

func TestShadowingPrimitive(t *testing.T) {
	// Primitives are ordinary bindings; define may overwrite them.
	e := New()
	env := NewGlobalEnv()

	result, err := evalSource(e, env, "(define + 3) +")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "3" {
		t.Errorf("expected '3', got '%s'", result.String())
	}
}

func TestDeeplyNestedExpression(t *testing.T) {
	e := New()
	env := NewGlobalEnv()

	src := "(+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 0))))))))))"
	result, err := evalSource(e, env, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "10" {
		t.Errorf("expected '10', got '%s'", result.String())
	}
}

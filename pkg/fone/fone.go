package fone

import (
	"fmt"
	"io"
	"os"
	"strings"

	"nickandperla.net/fone/internal/eval"
	"nickandperla.net/fone/internal/parser"
	"nickandperla.net/fone/internal/scanner"
	"nickandperla.net/fone/internal/stdlib"
	"nickandperla.net/fone/internal/store"
)

// Runtime is the fone interpreter runtime: one global environment, one
// evaluator, and optionally a session store whose definitions outlive
// the process.
type Runtime struct {
	evaluator *eval.Evaluator
	env       *eval.Env
	store     store.Store
	storePath string
	out       io.Writer
	errOut    io.Writer
	exitFunc  func(code int)
	noPrelude bool
	restoring bool
}

// New creates a new fone runtime with the given options. The global
// environment is built, print and exit are installed, the prelude is
// evaluated, and any session store is restored, in that order.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		out:      os.Stdout,
		errOut:   os.Stderr,
		exitFunc: os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.store == nil && r.storePath != "" {
		s, err := store.NewSQLite(r.storePath)
		if err != nil {
			return nil, fmt.Errorf("opening session store: %w", err)
		}
		r.store = s
	}

	r.env = eval.NewGlobalEnv()
	r.evaluator = eval.New(eval.WithDefineHook(r.persistDefine))
	r.installIO()

	if !r.noPrelude {
		if err := r.loadQuietly(stdlib.Prelude); err != nil {
			return nil, fmt.Errorf("evaluating prelude: %w", err)
		}
	}

	if r.store != nil {
		if err := r.restore(); err != nil {
			return nil, fmt.Errorf("restoring session: %w", err)
		}
	}

	return r, nil
}

// Eval parses and evaluates every top-level form in src against the
// session environment, returning the value of the last form. The first
// error aborts the remainder of src; the environment keeps whatever was
// already defined.
func (r *Runtime) Eval(src string) (eval.Value, error) {
	return r.EvalReader(strings.NewReader(src))
}

// EvalReader evaluates fone source from a reader.
func (r *Runtime) EvalReader(reader io.Reader) (eval.Value, error) {
	p := parser.New(scanner.New(reader))
	var last eval.Value = eval.Nil{}
	for {
		x, err := p.Next()
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := r.evaluator.Eval(x, r.env)
		if err != nil {
			return nil, err
		}
		last = v
	}
}

// EvalFile evaluates a fone source file.
func (r *Runtime) EvalFile(path string) (eval.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.EvalReader(f)
}

// Close releases the session store, if any.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// installIO registers the I/O-bearing primitives. The core environment
// stays I/O-free; print and exit close over the runtime's output writer
// and exit function.
func (r *Runtime) installIO() {
	r.env.Set("print", &eval.Callable{Name: "print", Fn: func(args []eval.Value) (eval.Value, error) {
		for _, a := range args {
			if _, err := fmt.Fprintln(r.out, a.String()); err != nil {
				return nil, err
			}
		}
		if len(args) == 0 {
			return eval.Nil{}, nil
		}
		return args[len(args)-1], nil
	}})
	r.env.Set("exit", &eval.Callable{Name: "exit", Fn: func(args []eval.Value) (eval.Value, error) {
		code := 0
		if len(args) > 0 {
			if n, ok := args[len(args)-1].(eval.Number); ok {
				code = int(n)
			}
		}
		r.exitFunc(code)
		return eval.Nil{}, nil
	}})
}

// Check reports whether src parses. It returns nil for complete input,
// an error wrapping ErrIncomplete when src ends inside an open form, and
// the parse error otherwise. Nothing is evaluated.
func Check(src string) error {
	p := parser.NewFromString(src)
	for {
		_, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

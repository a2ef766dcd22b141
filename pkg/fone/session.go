// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package fone

import (
	"fmt"
	"math"
	"strconv"

	"nickandperla.net/fone/internal/eval"
	"nickandperla.net/fone/internal/store"
)

// loadQuietly evaluates src with persistence suppressed. Used for the
// prelude and for session restore, so neither writes back to the store.
func (r *Runtime) loadQuietly(src string) error {
	r.restoring = true
	defer func() { r.restoring = false }()
	_, err := r.Eval(src)
	return err
}

// restore re-evaluates persisted definitions into the environment. A
// definition that no longer evaluates is skipped and reported, not
// dropped from the store.
func (r *Runtime) restore() error {
	defs, err := r.store.List()
	if err != nil {
		return err
	}
	r.restoring = true
	defer func() { r.restoring = false }()
	for _, def := range defs {
		if _, err := r.Eval(def.Source); err != nil {
			fmt.Fprintf(r.errOut, "warning: skipping stored definition '%s': %v\n", def.Name, err)
		}
	}
	return nil
}

// persistDefine mirrors a successful define into the session store.
// Only values that round-trip through the reader persist: finite
// numbers and booleans.
func (r *Runtime) persistDefine(name string, v eval.Value) {
	if r.store == nil || r.restoring {
		return
	}
	lit, ok := literal(v)
	if !ok {
		return
	}
	def := &store.Definition{
		Name:   name,
		Source: fmt.Sprintf("(define %s %s)", name, lit),
	}
	if err := r.store.Put(def); err != nil {
		fmt.Fprintf(r.errOut, "warning: persisting '%s': %v\n", name, err)
	}
}

// literal renders v as source text that re-parses to the same value.
// Numbers use plain decimal notation; the reader has no exponent form.
func literal(v eval.Value) (string, bool) {
	switch t := v.(type) {
	case eval.Number:
		f := float64(t)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case eval.Boolean:
		return t.String(), true
	}
	return "", false
}

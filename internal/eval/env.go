// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the fone evaluator.
package eval

import "sync"

// Env is the single mutable binding environment, mapping symbol names to
// values. There are no nested scopes: one flat namespace per session,
// pre-populated with primitives and mutated only by define. The mutex
// keeps the map safe under a concurrent host, but evaluation itself is
// single-threaded; hosts must serialize Eval calls.
type Env struct {
	mu       sync.RWMutex
	bindings map[string]Value
}

// NewEnv creates a new empty environment.
func NewEnv() *Env {
	return &Env{
		bindings: make(map[string]Value),
	}
}

// Get retrieves a value by name.
func (e *Env) Get(name string) (Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.bindings[name]
	return v, ok
}

// Set binds a value to a name, overwriting any previous binding.
func (e *Env) Set(name string, v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bindings[name] = v
}

// Has returns true if the name is bound.
func (e *Env) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.bindings[name]
	return ok
}

// Clone creates a shallow copy of the environment.
func (e *Env) Clone() *Env {
	e.mu.RLock()
	defer e.mu.RUnlock()
	clone := NewEnv()
	for k, v := range e.bindings {
		clone.bindings[k] = v
	}
	return clone
}

package store

import (
	"sort"
	"sync"
)

// Memory is an in-memory store for tests and session-less runs.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]Definition
	metadata map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[string]Definition),
		metadata: make(map[string]string),
	}
}

// Get retrieves a definition by name.
func (m *Memory) Get(name string) (*Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.data[name]; ok {
		return &d, nil
	}
	return nil, nil
}

// Put stores a definition by name.
func (m *Memory) Put(def *Definition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[def.Name] = *def
	return nil
}

// List returns all definitions sorted by name.
func (m *Memory) List() ([]*Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	defs := make([]*Definition, 0, len(m.data))
	for _, d := range m.data {
		defs = append(defs, &d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Delete removes a definition by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

// GetMetadata retrieves a metadata value by key.
func (m *Memory) GetMetadata(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[key], nil
}

// SetMetadata stores a metadata value by key.
func (m *Memory) SetMetadata(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[key] = value
	return nil
}

// Package store provides persistence for fone session definitions.
package store

// Definition is a persisted top-level definition: a complete,
// re-evaluatable source form such as "(define x 1337)".
type Definition struct {
	Name      string
	Source    string
	UpdatedAt int64 // Unix seconds
}

// Store is the interface for definition persistence.
type Store interface {
	// Get retrieves a definition by name. Returns nil if not found.
	Get(name string) (*Definition, error)
	// Put stores a definition by name, overwriting if it exists.
	Put(def *Definition) error
	// List returns all definitions sorted by name.
	List() ([]*Definition, error)
	// Delete removes a definition by name.
	Delete(name string) error
	// Close releases resources.
	Close() error
}

// MetadataStore extends Store with metadata operations.
type MetadataStore interface {
	Store
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}

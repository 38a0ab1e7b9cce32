// Package objectvalue keeps the learned worth of map object types, keyed
// by (kind, subkind).
package objectvalue

import (
	"fmt"
	"sync"
)

// MaxValue bounds every stored value. Larger inputs are clamped.
const MaxValue = 20000

// Store is a (kind, subkind) -> value table.
type Store interface {
	// Lookup reports the value for a type and whether it was known.
	Lookup(kind, subkind int) (int, bool, error)
	// Insert records a value, replacing any previous one.
	Insert(kind, subkind, value int) error
}

// Entry is one row of a store, used for seeding and listing.
type Entry struct {
	Kind    int `json:"kind" yaml:"kind"`
	Subkind int `json:"subkind" yaml:"subkind"`
	Value   int `json:"value" yaml:"value"`
}

// Seed inserts entries into s.
func Seed(s Store, entries []Entry) error {
	for _, e := range entries {
		if err := s.Insert(e.Kind, e.Subkind, e.Value); err != nil {
			return fmt.Errorf("seed %d/%d: %w", e.Kind, e.Subkind, err)
		}
	}
	return nil
}

func clamp(v int) int {
	return min(max(v, 0), MaxValue)
}

type key struct{ kind, subkind int }

// MemStore is an in-process Store.
type MemStore struct {
	mu     sync.RWMutex
	values map[key]int
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[key]int)}
}

func (m *MemStore) Lookup(kind, subkind int) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key{kind, subkind}]
	return v, ok, nil
}

func (m *MemStore) Insert(kind, subkind, value int) error {
	m.mu.Lock()
	m.values[key{kind, subkind}] = clamp(value)
	m.mu.Unlock()
	return nil
}

package repos

import (
	"sync"

	"cafestore/internal/domain"
)

// MemoryCartStore is an in-memory CartStore used by tests and as a fallback
// when no database is wanted.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]domain.CartEntry
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string][]domain.CartEntry{}}
}

func (m *MemoryCartStore) Load(sessionID string) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.carts[sessionID]
	out := make([]domain.CartEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MemoryCartStore) Save(sessionID string, entries []domain.CartEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]domain.CartEntry, len(entries))
	copy(cp, entries)
	m.carts[sessionID] = cp
	return nil
}

package cart

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store for tests and single-node development.
// It keeps a snapshot of the line items per session, so a cart mutated after
// Save does not leak into the stored state.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]LineItem
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]LineItem)}
}

// Get returns the cart saved for the session, or ErrNoCart.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrNoCart
	}
	return Restore(items), nil
}

// Save stores a snapshot of the cart's line items for the session.
func (s *MemoryStore) Save(_ context.Context, sessionID string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = c.Items()
	return nil
}

// Delete removes the session's cart if present.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

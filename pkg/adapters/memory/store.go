package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/dfa/pkg/domain"
)

// Store implements ports.AutomatonStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Save stores the description.
func (s *Store) Save(ctx context.Context, name string, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = description
	return nil
}

// Load retrieves the description.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	desc, ok := s.data[name]
	if !ok {
		return "", domain.ErrAutomatonNotFound
	}
	return desc, nil
}

// Delete removes the description.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

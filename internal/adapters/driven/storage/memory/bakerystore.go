package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
)

// Ensure BakeryStore implements the interface.
var _ driven.BakeryStore = (*BakeryStore)(nil)

// BakeryStore is an in-memory implementation of driven.BakeryStore.
// It enforces the same name uniqueness as the SQLite schema.
type BakeryStore struct {
	mu       sync.RWMutex
	bakeries map[int64]domain.Bakery
	lastID   int64
}

// NewBakeryStore creates a new in-memory bakery store.
func NewBakeryStore() *BakeryStore {
	return &BakeryStore{
		bakeries: make(map[int64]domain.Bakery),
	}
}

// Create inserts a bakery with the next ID.
func (s *BakeryStore) Create(_ context.Context, bakery domain.Bakery) (*domain.Bakery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(bakery.Name, 0) {
		return nil, fmt.Errorf("bakery name %q: %w", bakery.Name, domain.ErrAlreadyExists)
	}
	s.lastID++
	bakery.ID = s.lastID
	s.bakeries[bakery.ID] = bakery
	return &bakery, nil
}

// Get retrieves a bakery by ID.
func (s *BakeryStore) Get(_ context.Context, id int64) (*domain.Bakery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bakery, ok := s.bakeries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &bakery, nil
}

// List returns all bakeries ordered by ID.
func (s *BakeryStore) List(_ context.Context) ([]domain.Bakery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Bakery, 0, len(s.bakeries))
	for _, bakery := range s.bakeries {
		result = append(result, bakery)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateName overwrites the name of an existing bakery.
func (s *BakeryStore) UpdateName(_ context.Context, id int64, name string) (*domain.Bakery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bakery, ok := s.bakeries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if s.nameTaken(name, id) {
		return nil, fmt.Errorf("bakery name %q: %w", name, domain.ErrAlreadyExists)
	}
	bakery.Name = name
	s.bakeries[id] = bakery
	return &bakery, nil
}

// exists reports whether a bakery with id is stored.
func (s *BakeryStore) exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bakeries[id]
	return ok
}

// nameTaken reports whether a bakery other than except uses name (caller must hold lock).
func (s *BakeryStore) nameTaken(name string, except int64) bool {
	for id, b := range s.bakeries {
		if id != except && b.Name == name {
			return true
		}
	}
	return false
}

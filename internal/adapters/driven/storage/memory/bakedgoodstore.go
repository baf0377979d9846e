package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
)

// Ensure BakedGoodStore implements the interface.
var _ driven.BakedGoodStore = (*BakedGoodStore)(nil)

// BakedGoodStore is an in-memory implementation of driven.BakedGoodStore.
// It checks bakery references against a BakeryStore the way a foreign key would.
type BakedGoodStore struct {
	mu       sync.RWMutex
	goods    map[int64]domain.BakedGood
	lastID   int64
	bakeries *BakeryStore
}

// NewBakedGoodStore creates a new in-memory baked good store.
// References are not checked when bakeries is nil.
func NewBakedGoodStore(bakeries *BakeryStore) *BakedGoodStore {
	return &BakedGoodStore{
		goods:    make(map[int64]domain.BakedGood),
		bakeries: bakeries,
	}
}

// Create inserts a baked good with the next ID.
func (s *BakedGoodStore) Create(_ context.Context, good domain.BakedGood) (*domain.BakedGood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.goods {
		if existing.Name == good.Name {
			return nil, fmt.Errorf("baked good name %q: %w", good.Name, domain.ErrAlreadyExists)
		}
	}
	if s.bakeries != nil && !s.bakeries.exists(good.BakeryID) {
		return nil, fmt.Errorf("bakery %d: %w", good.BakeryID, domain.ErrInvalidReference)
	}
	s.lastID++
	good.ID = s.lastID
	s.goods[good.ID] = good
	return &good, nil
}

// Get retrieves a baked good by ID.
func (s *BakedGoodStore) Get(_ context.Context, id int64) (*domain.BakedGood, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	good, ok := s.goods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &good, nil
}

// List returns all baked goods ordered by ID.
func (s *BakedGoodStore) List(_ context.Context) ([]domain.BakedGood, error) {
	return s.filter(func(domain.BakedGood) bool { return true }), nil
}

// ListByBakery returns the baked goods of one bakery ordered by ID.
func (s *BakedGoodStore) ListByBakery(_ context.Context, bakeryID int64) ([]domain.BakedGood, error) {
	return s.filter(func(g domain.BakedGood) bool { return g.BakeryID == bakeryID }), nil
}

// Delete removes a baked good.
func (s *BakedGoodStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goods[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.goods, id)
	return nil
}

func (s *BakedGoodStore) filter(keep func(domain.BakedGood) bool) []domain.BakedGood {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.BakedGood, 0, len(s.goods))
	for _, good := range s.goods {
		if keep(good) {
			result = append(result, good)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

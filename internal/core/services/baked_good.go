package services

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

// Ensure BakedGoodService implements the interface.
var _ driving.BakedGoodService = (*BakedGoodService)(nil)

// BakedGoodService manages baked goods.
type BakedGoodService struct {
	goodStore   driven.BakedGoodStore
	bakeryStore driven.BakeryStore
}

// NewBakedGoodService creates a new baked good service.
// The bakery store is only used to report unknown bakeries when listing by bakery.
func NewBakedGoodService(goodStore driven.BakedGoodStore, bakeryStore driven.BakeryStore) *BakedGoodService {
	return &BakedGoodService{
		goodStore:   goodStore,
		bakeryStore: bakeryStore,
	}
}

// Create persists a new baked good.
// The bakery reference is not pre-checked; the store rejects unknown bakeries.
func (s *BakedGoodService) Create(ctx context.Context, good domain.BakedGood) (*domain.BakedGood, error) {
	if s.goodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	good.ID = 0
	if err := good.Validate(); err != nil {
		return nil, err
	}
	created, err := s.goodStore.Create(ctx, good)
	if err != nil {
		return nil, err
	}
	logger.Debug("baked good created", "id", created.ID, "name", created.Name, "bakery_id", created.BakeryID)
	return created, nil
}

// Get retrieves a baked good by ID.
func (s *BakedGoodService) Get(ctx context.Context, id int64) (*domain.BakedGood, error) {
	if s.goodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	good, err := s.goodStore.Get(ctx, id)
	if err != nil {
		return nil, notFound("baked good", id, err)
	}
	return good, nil
}

// List returns all baked goods.
func (s *BakedGoodService) List(ctx context.Context) ([]domain.BakedGood, error) {
	if s.goodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.goodStore.List(ctx)
}

// ListByBakery returns the baked goods of one bakery.
func (s *BakedGoodService) ListByBakery(ctx context.Context, bakeryID int64) ([]domain.BakedGood, error) {
	if s.goodStore == nil || s.bakeryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if _, err := s.bakeryStore.Get(ctx, bakeryID); err != nil {
		return nil, notFound("bakery", bakeryID, err)
	}
	return s.goodStore.ListByBakery(ctx, bakeryID)
}

// Delete removes a baked good.
func (s *BakedGoodService) Delete(ctx context.Context, id int64) error {
	if s.goodStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.goodStore.Delete(ctx, id); err != nil {
		return notFound("baked good", id, err)
	}
	logger.Debug("baked good deleted", "id", id)
	return nil
}

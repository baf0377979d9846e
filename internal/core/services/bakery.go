package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

// Ensure BakeryService implements the interface.
var _ driving.BakeryService = (*BakeryService)(nil)

// BakeryService manages bakeries.
type BakeryService struct {
	bakeryStore driven.BakeryStore
}

// NewBakeryService creates a new bakery service.
func NewBakeryService(bakeryStore driven.BakeryStore) *BakeryService {
	return &BakeryService{bakeryStore: bakeryStore}
}

// Add creates a new bakery.
func (s *BakeryService) Add(ctx context.Context, name string) (*domain.Bakery, error) {
	if s.bakeryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	bakery := domain.Bakery{Name: name}
	if err := bakery.Validate(); err != nil {
		return nil, err
	}
	created, err := s.bakeryStore.Create(ctx, bakery)
	if err != nil {
		return nil, err
	}
	logger.Debug("bakery created", "id", created.ID, "name", created.Name)
	return created, nil
}

// Get retrieves a bakery by ID.
func (s *BakeryService) Get(ctx context.Context, id int64) (*domain.Bakery, error) {
	if s.bakeryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	bakery, err := s.bakeryStore.Get(ctx, id)
	if err != nil {
		return nil, notFound("bakery", id, err)
	}
	return bakery, nil
}

// List returns all bakeries.
func (s *BakeryService) List(ctx context.Context) ([]domain.Bakery, error) {
	if s.bakeryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.bakeryStore.List(ctx)
}

// Rename overwrites the name of an existing bakery.
func (s *BakeryService) Rename(ctx context.Context, id int64, name string) (*domain.Bakery, error) {
	if s.bakeryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	bakery := domain.Bakery{ID: id, Name: name}
	if err := bakery.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.bakeryStore.UpdateName(ctx, id, name)
	if err != nil {
		return nil, notFound("bakery", id, err)
	}
	logger.Debug("bakery renamed", "id", updated.ID, "name", updated.Name)
	return updated, nil
}

// notFound prefixes not-found errors with the entity and ID so callers can
// report which record was missing. Other errors pass through unchanged.
func notFound(entity string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return err
}

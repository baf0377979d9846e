package driving

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// BakedGoodService manages baked goods.
type BakedGoodService interface {
	// Create persists a new baked good and returns it with its assigned ID.
	Create(ctx context.Context, good domain.BakedGood) (*domain.BakedGood, error)

	// Get retrieves a baked good by ID.
	Get(ctx context.Context, id int64) (*domain.BakedGood, error)

	// List returns all baked goods.
	List(ctx context.Context) ([]domain.BakedGood, error)

	// ListByBakery returns the baked goods of one bakery.
	// Returns domain.ErrNotFound if the bakery does not exist.
	ListByBakery(ctx context.Context, bakeryID int64) ([]domain.BakedGood, error)

	// Delete removes a baked good.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

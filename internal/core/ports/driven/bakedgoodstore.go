package driven

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// BakedGoodStore persists baked goods.
type BakedGoodStore interface {
	// Create inserts a baked good and returns it with its store-assigned ID.
	// Returns domain.ErrAlreadyExists for a duplicate name and
	// domain.ErrInvalidReference if the bakery does not exist.
	Create(ctx context.Context, good domain.BakedGood) (*domain.BakedGood, error)

	// Get retrieves a baked good by ID.
	// Returns domain.ErrNotFound if no baked good has that ID.
	Get(ctx context.Context, id int64) (*domain.BakedGood, error)

	// List returns all baked goods ordered by ID.
	List(ctx context.Context) ([]domain.BakedGood, error)

	// ListByBakery returns the baked goods of one bakery ordered by ID.
	ListByBakery(ctx context.Context, bakeryID int64) ([]domain.BakedGood, error)

	// Delete looks up the baked good and removes it in one transaction.
	// Returns domain.ErrNotFound if it is absent.
	Delete(ctx context.Context, id int64) error
}

// HealthChecker is implemented by stores that can report reachability.
type HealthChecker interface {
	// Ping verifies the store can serve queries.
	Ping(ctx context.Context) error
}

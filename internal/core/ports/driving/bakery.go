package driving

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// BakeryService manages bakeries.
type BakeryService interface {
	// Add creates a new bakery.
	Add(ctx context.Context, name string) (*domain.Bakery, error)

	// Get retrieves a bakery by ID.
	Get(ctx context.Context, id int64) (*domain.Bakery, error)

	// List returns all bakeries.
	List(ctx context.Context) ([]domain.Bakery, error)

	// Rename overwrites the name of an existing bakery.
	// Returns domain.ErrNotFound if the bakery does not exist.
	Rename(ctx context.Context, id int64, name string) (*domain.Bakery, error)
}

package driven

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// BakeryStore persists bakeries.
type BakeryStore interface {
	// Create inserts a bakery and returns it with its store-assigned ID.
	// Returns domain.ErrAlreadyExists if the name is taken.
	Create(ctx context.Context, bakery domain.Bakery) (*domain.Bakery, error)

	// Get retrieves a bakery by ID.
	// Returns domain.ErrNotFound if no bakery has that ID.
	Get(ctx context.Context, id int64) (*domain.Bakery, error)

	// List returns all bakeries ordered by ID.
	List(ctx context.Context) ([]domain.Bakery, error)

	// UpdateName looks up the bakery and overwrites its name in one transaction.
	// Returns domain.ErrNotFound if the bakery is absent, leaving nothing changed.
	UpdateName(ctx context.Context, id int64, name string) (*domain.Bakery, error)
}

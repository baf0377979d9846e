package httpapi

import (
	"context"
	"errors"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// mockBakeryService implements driving.BakeryService for testing.
type mockBakeryService struct {
	listFunc   func(ctx context.Context) ([]domain.Bakery, error)
	renameFunc func(ctx context.Context, id int64, name string) (*domain.Bakery, error)
}

func (m *mockBakeryService) Add(_ context.Context, name string) (*domain.Bakery, error) {
	return &domain.Bakery{ID: 1, Name: name}, nil
}

func (m *mockBakeryService) Get(_ context.Context, id int64) (*domain.Bakery, error) {
	return &domain.Bakery{ID: id}, nil
}

func (m *mockBakeryService) List(ctx context.Context) ([]domain.Bakery, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.Bakery{}, nil
}

func (m *mockBakeryService) Rename(ctx context.Context, id int64, name string) (*domain.Bakery, error) {
	if m.renameFunc != nil {
		return m.renameFunc(ctx, id, name)
	}
	return &domain.Bakery{ID: id, Name: name}, nil
}

// mockBakedGoodService implements driving.BakedGoodService for testing.
type mockBakedGoodService struct {
	listFunc func(ctx context.Context) ([]domain.BakedGood, error)
}

func (m *mockBakedGoodService) Create(_ context.Context, good domain.BakedGood) (*domain.BakedGood, error) {
	good.ID = 1
	return &good, nil
}

func (m *mockBakedGoodService) Get(_ context.Context, id int64) (*domain.BakedGood, error) {
	return &domain.BakedGood{ID: id}, nil
}

func (m *mockBakedGoodService) List(ctx context.Context) ([]domain.BakedGood, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.BakedGood{}, nil
}

func (m *mockBakedGoodService) ListByBakery(_ context.Context, _ int64) ([]domain.BakedGood, error) {
	return []domain.BakedGood{}, nil
}

func (m *mockBakedGoodService) Delete(_ context.Context, _ int64) error {
	return nil
}

// mockHealth implements HealthChecker for testing.
type mockHealth struct {
	err error
}

func (m *mockHealth) Ping(_ context.Context) error {
	return m.err
}

var errStorageDown = errors.New("disk on fire")

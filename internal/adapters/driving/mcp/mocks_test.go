package mcp

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
)

// mockBakeryService is a mock implementation of driving.BakeryService.
type mockBakeryService struct {
	bakeries []domain.Bakery
	renamed  *domain.Bakery
	err      error
}

func (m *mockBakeryService) Add(_ context.Context, name string) (*domain.Bakery, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Bakery{ID: int64(len(m.bakeries) + 1), Name: name}, nil
}

func (m *mockBakeryService) Get(_ context.Context, id int64) (*domain.Bakery, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.bakeries {
		if m.bakeries[i].ID == id {
			return &m.bakeries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockBakeryService) List(_ context.Context) ([]domain.Bakery, error) {
	return m.bakeries, m.err
}

func (m *mockBakeryService) Rename(_ context.Context, id int64, name string) (*domain.Bakery, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.renamed = &domain.Bakery{ID: id, Name: name}
	return m.renamed, nil
}

// mockBakedGoodService is a mock implementation of driving.BakedGoodService.
type mockBakedGoodService struct {
	goods     []domain.BakedGood
	byBakery  map[int64][]domain.BakedGood
	created   *domain.BakedGood
	deletedID int64
	err       error
}

func (m *mockBakedGoodService) Create(_ context.Context, good domain.BakedGood) (*domain.BakedGood, error) {
	if m.err != nil {
		return nil, m.err
	}
	good.ID = 42
	m.created = &good
	return &good, nil
}

func (m *mockBakedGoodService) Get(_ context.Context, id int64) (*domain.BakedGood, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.BakedGood{ID: id}, nil
}

func (m *mockBakedGoodService) List(_ context.Context) ([]domain.BakedGood, error) {
	return m.goods, m.err
}

func (m *mockBakedGoodService) ListByBakery(_ context.Context, bakeryID int64) ([]domain.BakedGood, error) {
	if m.err != nil {
		return nil, m.err
	}
	goods, ok := m.byBakery[bakeryID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return goods, nil
}

func (m *mockBakedGoodService) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

// Verify mocks implement interfaces.
var (
	_ driving.BakeryService    = (*mockBakeryService)(nil)
	_ driving.BakedGoodService = (*mockBakedGoodService)(nil)
)

// newTestServer creates a server over the given mocks.
func newTestServer(bakeries *mockBakeryService, goods *mockBakedGoodService) (*Server, error) {
	if bakeries == nil {
		bakeries = &mockBakeryService{}
	}
	if goods == nil {
		goods = &mockBakedGoodService{}
	}
	return NewServer(&Ports{Bakeries: bakeries, BakedGoods: goods})
}

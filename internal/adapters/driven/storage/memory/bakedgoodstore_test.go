package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

func setupGoodStore(t *testing.T) (*BakedGoodStore, *domain.Bakery) {
	t.Helper()
	bakeries := NewBakeryStore()
	bakery, err := bakeries.Create(context.Background(), domain.Bakery{Name: "Delightful Donuts"})
	require.NoError(t, err)
	return NewBakedGoodStore(bakeries), bakery
}

func TestBakedGoodStore_Create_Success(t *testing.T) {
	store, bakery := setupGoodStore(t)

	good, err := store.Create(context.Background(), domain.BakedGood{
		Name:     "Croissant",
		Price:    3.5,
		BakeryID: bakery.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), good.ID)
	assert.Equal(t, "Croissant", good.Name)
	assert.Equal(t, 3.5, good.Price)
	assert.Equal(t, bakery.ID, good.BakeryID)
}

func TestBakedGoodStore_Create_UnknownBakery(t *testing.T) {
	store, _ := setupGoodStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.BakedGood{Name: "Orphan", Price: 1, BakeryID: 99})

	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	goods, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, goods)
}

func TestBakedGoodStore_Create_DuplicateName(t *testing.T) {
	store, bakery := setupGoodStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.BakedGood{Name: "Croissant", Price: 1, BakeryID: bakery.ID})
	require.NoError(t, err)

	_, err = store.Create(ctx, domain.BakedGood{Name: "Croissant", Price: 2, BakeryID: bakery.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestBakedGoodStore_Create_NilBakeriesSkipsReferenceCheck(t *testing.T) {
	store := NewBakedGoodStore(nil)

	_, err := store.Create(context.Background(), domain.BakedGood{Name: "Loose", BakeryID: 7})

	assert.NoError(t, err)
}

func TestBakedGoodStore_ListByBakery(t *testing.T) {
	bakeries := NewBakeryStore()
	ctx := context.Background()
	a, err := bakeries.Create(ctx, domain.Bakery{Name: "A"})
	require.NoError(t, err)
	b, err := bakeries.Create(ctx, domain.Bakery{Name: "B"})
	require.NoError(t, err)
	store := NewBakedGoodStore(bakeries)

	_, err = store.Create(ctx, domain.BakedGood{Name: "a1", BakeryID: a.ID})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.BakedGood{Name: "b1", BakeryID: b.ID})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.BakedGood{Name: "a2", BakeryID: a.ID})
	require.NoError(t, err)

	goods, err := store.ListByBakery(ctx, a.ID)

	require.NoError(t, err)
	require.Len(t, goods, 2)
	assert.Equal(t, "a1", goods[0].Name)
	assert.Equal(t, "a2", goods[1].Name)
}

func TestBakedGoodStore_Delete(t *testing.T) {
	store, bakery := setupGoodStore(t)
	ctx := context.Background()
	good, err := store.Create(ctx, domain.BakedGood{Name: "Croissant", BakeryID: bakery.ID})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, good.ID))

	_, err = store.Get(ctx, good.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, good.ID), domain.ErrNotFound)
}

func TestBakedGoodStore_IDsNotReusedAfterDelete(t *testing.T) {
	store, bakery := setupGoodStore(t)
	ctx := context.Background()
	first, err := store.Create(ctx, domain.BakedGood{Name: "first", BakeryID: bakery.ID})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, first.ID))

	second, err := store.Create(ctx, domain.BakedGood{Name: "second", BakeryID: bakery.ID})

	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

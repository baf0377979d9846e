package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
)

const bakedGoodColumns = "id, name, price, bakery_id"

// bakedGoodStore implements driven.BakedGoodStore.
type bakedGoodStore struct {
	store *Store
}

var _ driven.BakedGoodStore = (*bakedGoodStore)(nil)

// Create inserts a baked good and returns it with its assigned ID.
func (s *bakedGoodStore) Create(ctx context.Context, good domain.BakedGood) (*domain.BakedGood, error) {
	res, err := s.store.db.ExecContext(ctx,
		"INSERT INTO baked_good (name, price, bakery_id) VALUES (?, ?, ?)",
		good.Name, good.Price, good.BakeryID)
	if err != nil {
		switch cerr := constraintError(err); {
		case errors.Is(cerr, domain.ErrAlreadyExists):
			return nil, fmt.Errorf("baked good name %q: %w", good.Name, cerr)
		case errors.Is(cerr, domain.ErrInvalidReference):
			return nil, fmt.Errorf("bakery %d: %w", good.BakeryID, cerr)
		}
		return nil, fmt.Errorf("inserting baked good: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading baked good id: %w", err)
	}
	good.ID = id
	return &good, nil
}

// Get retrieves a baked good by ID.
func (s *bakedGoodStore) Get(ctx context.Context, id int64) (*domain.BakedGood, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+bakedGoodColumns+" FROM baked_good WHERE id = ?", id)
	return scanBakedGood(row)
}

// List returns all baked goods ordered by ID.
func (s *bakedGoodStore) List(ctx context.Context) ([]domain.BakedGood, error) {
	return s.query(ctx, "SELECT "+bakedGoodColumns+" FROM baked_good ORDER BY id")
}

// ListByBakery returns the baked goods of one bakery ordered by ID.
func (s *bakedGoodStore) ListByBakery(ctx context.Context, bakeryID int64) ([]domain.BakedGood, error) {
	return s.query(ctx,
		"SELECT "+bakedGoodColumns+" FROM baked_good WHERE bakery_id = ? ORDER BY id", bakeryID)
}

// Delete looks up the baked good and removes it in one transaction.
func (s *bakedGoodStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := scanBakedGood(tx.QueryRowContext(ctx,
		"SELECT "+bakedGoodColumns+" FROM baked_good WHERE id = ?", id)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM baked_good WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting baked good: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *bakedGoodStore) query(ctx context.Context, query string, args ...any) ([]domain.BakedGood, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying baked goods: %w", err)
	}
	defer rows.Close()

	goods := []domain.BakedGood{}
	for rows.Next() {
		good, err := scanBakedGood(rows)
		if err != nil {
			return nil, err
		}
		goods = append(goods, *good)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating baked goods: %w", err)
	}

	return goods, nil
}

func scanBakedGood(row scanner) (*domain.BakedGood, error) {
	var good domain.BakedGood
	if err := row.Scan(&good.ID, &good.Name, &good.Price, &good.BakeryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning baked good: %w", err)
	}
	return &good, nil
}

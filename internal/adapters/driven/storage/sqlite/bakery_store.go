package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
)

// bakeryStore implements driven.BakeryStore.
type bakeryStore struct {
	store *Store
}

var _ driven.BakeryStore = (*bakeryStore)(nil)

// Create inserts a bakery and returns it with its assigned ID.
func (s *bakeryStore) Create(ctx context.Context, bakery domain.Bakery) (*domain.Bakery, error) {
	res, err := s.store.db.ExecContext(ctx, "INSERT INTO bakery (name) VALUES (?)", bakery.Name)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, fmt.Errorf("bakery name %q: %w", bakery.Name, cerr)
		}
		return nil, fmt.Errorf("inserting bakery: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading bakery id: %w", err)
	}
	bakery.ID = id
	return &bakery, nil
}

// Get retrieves a bakery by ID.
func (s *bakeryStore) Get(ctx context.Context, id int64) (*domain.Bakery, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT id, name FROM bakery WHERE id = ?", id)
	return scanBakery(row)
}

// List returns all bakeries ordered by ID.
func (s *bakeryStore) List(ctx context.Context) ([]domain.Bakery, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id, name FROM bakery ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying bakeries: %w", err)
	}
	defer rows.Close()

	bakeries := []domain.Bakery{}
	for rows.Next() {
		bakery, err := scanBakery(rows)
		if err != nil {
			return nil, err
		}
		bakeries = append(bakeries, *bakery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bakeries: %w", err)
	}

	return bakeries, nil
}

// UpdateName looks up the bakery and overwrites its name in one transaction.
func (s *bakeryStore) UpdateName(ctx context.Context, id int64, name string) (*domain.Bakery, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	bakery, err := scanBakery(tx.QueryRowContext(ctx, "SELECT id, name FROM bakery WHERE id = ?", id))
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE bakery SET name = ? WHERE id = ?", name, id); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, fmt.Errorf("bakery name %q: %w", name, cerr)
		}
		return nil, fmt.Errorf("updating bakery: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	bakery.Name = name
	return bakery, nil
}

func scanBakery(row scanner) (*domain.Bakery, error) {
	var bakery domain.Bakery
	if err := row.Scan(&bakery.ID, &bakery.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning bakery: %w", err)
	}
	return &bakery, nil
}

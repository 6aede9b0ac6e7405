package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/catalog/internal/model"
)

// SQLiteStore keeps items in a SQLite database opened with db.Open.
type SQLiteStore struct {
	db *sql.DB
}

var _ Repository = (*SQLiteStore)(nil)

// NewSQLiteStore wraps an open database whose schema is already in place.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns all items ordered by id, which is insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, price FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Get returns an item by id.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*model.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, price FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// Create inserts an item. The id is computed as MAX(id)+1 by the INSERT
// itself rather than by SQLite's rowid allocator.
func (s *SQLiteStore) Create(ctx context.Context, name string, description *string, price float64) (*model.Item, error) {
	var desc sql.NullString
	if description != nil {
		desc = sql.NullString{String: *description, Valid: true}
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, price)
		 SELECT COALESCE(MAX(id), 0) + 1, ?, ?, ? FROM items`,
		name, desc, price,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return s.Get(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var description sql.NullString
	if err := row.Scan(&item.ID, &item.Name, &description, &item.Price); err != nil {
		return nil, err
	}
	if description.Valid {
		item.Description = &description.String
	}
	return item, nil
}

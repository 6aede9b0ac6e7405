// Package store holds the item catalog.
package store

import (
	"context"
	"errors"

	"github.com/erazemk/catalog/internal/model"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("item not found")

// Repository is an ordered collection of items. Items are only ever
// appended; there is no update or delete.
type Repository interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]model.Item, error)
	// Get returns the first item with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Item, error)
	// Create appends an item with id max(existing ids, 0)+1.
	Create(ctx context.Context, name string, description *string, price float64) (*model.Item, error)
}

package store

import (
	"context"

	"github.com/erazemk/catalog/internal/model"
)

// MemoryStore keeps items in a slice for the lifetime of the process.
//
// MemoryStore does no locking. Two concurrent Create calls may compute the
// same id, since the max scan and the append are separate steps.
type MemoryStore struct {
	items []model.Item
}

var _ Repository = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns copies of all items in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Clone())
	}
	return items, nil
}

// Get returns a copy of the first item with the given id.
func (s *MemoryStore) Get(_ context.Context, id int64) (*model.Item, error) {
	for _, item := range s.items {
		if item.ID == id {
			found := item.Clone()
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new item.
func (s *MemoryStore) Create(_ context.Context, name string, description *string, price float64) (*model.Item, error) {
	item := model.Item{
		ID:          s.nextID(),
		Name:        name,
		Description: description,
		Price:       price,
	}.Clone()
	s.items = append(s.items, item)

	created := item.Clone()
	return &created, nil
}

func (s *MemoryStore) nextID() int64 {
	var highest int64
	for _, item := range s.items {
		if item.ID > highest {
			highest = item.ID
		}
	}
	return highest + 1
}

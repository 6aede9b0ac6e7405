package store

import (
	"context"
	"fmt"
)

type seedItem struct {
	name        string
	description string
	price       float64
}

// demoItems is the catalog every fresh instance starts with.
var demoItems = []seedItem{
	{name: "Laptop", description: "High-performance laptop", price: 999.99},
	{name: "Mouse", description: "Wireless mouse", price: 29.99},
}

// Seed creates the demo catalog through repo's own Create, so on an empty
// repository the items get ids 1 and 2.
func Seed(ctx context.Context, repo Repository) error {
	for _, s := range demoItems {
		description := s.description
		if _, err := repo.Create(ctx, s.name, &description, s.price); err != nil {
			return fmt.Errorf("seeding %s: %w", s.name, err)
		}
	}
	return nil
}

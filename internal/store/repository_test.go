package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/catalog/internal/db"
)

func ptr(s string) *string { return &s }

// backends runs each test against every Repository implementation.
var backends = map[string]func(t *testing.T) Repository{
	"memory": func(_ *testing.T) Repository { return NewMemoryStore() },
	"sqlite": func(t *testing.T) Repository { return NewSQLiteStore(db.NewTestDB(t)) },
}

func forEachBackend(t *testing.T, fn func(t *testing.T, repo Repository)) {
	t.Helper()
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, newRepo(t))
		})
	}
}

func TestCreateAndGetItem(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		item, err := repo.Create(ctx, "Keyboard", ptr("Mechanical"), 49.99)
		require.NoError(t, err)
		assert.Equal(t, int64(1), item.ID)

		got, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item, got)
		assert.Equal(t, "Keyboard", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, "Mechanical", *got.Description)
		assert.InDelta(t, 49.99, got.Price, 1e-9)
	})
}

func TestCreateWithoutDescription(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		item, err := repo.Create(ctx, "Cable", nil, 5)
		require.NoError(t, err)

		got, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Description)
	})
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		var last int64
		for range 5 {
			item, err := repo.Create(ctx, "Same Name", nil, 1)
			require.NoError(t, err)
			assert.Greater(t, item.ID, last)
			last = item.ID
		}
		assert.Equal(t, int64(5), last)
	})
}

func TestListGrowsByOneAndKeepsOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		require.NoError(t, Seed(ctx, repo))

		before, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, before, 2)

		_, err = repo.Create(ctx, "Monitor", nil, 199.5)
		require.NoError(t, err)

		after, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		assert.Equal(t, before, after[:len(before)])
		assert.Equal(t, "Monitor", after[2].Name)
	})
}

func TestGetUnknownItem(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		require.NoError(t, Seed(ctx, repo))

		_, err := repo.Get(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		items, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestSeed(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		require.NoError(t, Seed(ctx, repo))

		laptop, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", laptop.Name)
		assert.InDelta(t, 999.99, laptop.Price, 1e-9)

		mouse, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Mouse", mouse.Name)
		assert.InDelta(t, 29.99, mouse.Price, 1e-9)

		next, err := repo.Create(ctx, "Keyboard", nil, 49.99)
		require.NoError(t, err)
		assert.Equal(t, int64(3), next.ID)
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStore()

	desc := "original"
	created, err := repo.Create(ctx, "Lamp", &desc, 10)
	require.NoError(t, err)

	desc = "caller changed input"
	*created.Description = "caller changed result"
	created.Name = "Renamed"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)
	assert.Equal(t, "original", *got.Description)
}

// Package testutil provides shared helpers for tests that need storage.
package testutil

import (
	"context"
	"testing"

	"github.com/dnguyen-vn/costflow/internal/model"
	"github.com/dnguyen-vn/costflow/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite store, optionally seeded
// with categories. Cleanup is registered automatically.
func SetupTestDB(t *testing.T, categories []model.Category) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(categories) > 0 {
		if err := store.SaveCategories(ctx, categories); err != nil {
			t.Fatalf("failed to seed categories: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

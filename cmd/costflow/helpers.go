package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/dnguyen-vn/costflow/internal/common"
	"github.com/dnguyen-vn/costflow/internal/config"
	"github.com/dnguyen-vn/costflow/internal/ledger"
	"github.com/dnguyen-vn/costflow/internal/registry"
	"github.com/dnguyen-vn/costflow/internal/storage"
)

// defaultProjectBudget is the project-level ceiling used when no budget
// limit is configured.
const defaultProjectBudget int64 = 250_000_000

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "~/.local/share/costflow/costflow.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open the cost database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadState restores the category registry and cost ledger from storage.
// An empty database yields the seeded registry and an empty ledger.
func loadState(ctx context.Context, store *storage.SQLiteStorage) (*registry.Registry, *ledger.Ledger, error) {
	reg := registry.New()

	categories, err := store.GetCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) > 0 {
		reg.Load(categories)
	}

	led := ledger.New(viper.GetInt64("budget.limit"))
	costs, err := store.GetCosts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cost items: %w", err)
	}
	if len(costs) > 0 {
		led.Load(costs)
	}

	return reg, led, nil
}

// saveState persists the registry and ledger snapshots.
func saveState(ctx context.Context, store *storage.SQLiteStorage, reg *registry.Registry, led *ledger.Ledger) error {
	if err := store.SaveCategories(ctx, reg.Categories()); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	if err := store.SaveCosts(ctx, led.Costs()); err != nil {
		return fmt.Errorf("failed to save cost items: %w", err)
	}
	return nil
}

// formatVND renders an integer amount with thousands separators,
// e.g. 3750000 -> "3.750.000 ₫".
func formatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := string(out) + " ₫"
	if negative {
		result = "-" + result
	}
	return result
}

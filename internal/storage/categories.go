package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// GetCategories returns all persisted categories in name order.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT name, color, tax_rate, description
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var taxRate sql.NullFloat64
		if err := rows.Scan(&cat.Name, &cat.Color, &taxRate, &cat.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if taxRate.Valid {
			rate := taxRate.Float64
			cat.TaxRate = &rate
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// SaveCategories replaces the persisted category set with the given one.
func (s *SQLiteStorage) SaveCategories(ctx context.Context, categories []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategories(categories); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	insert := `
		INSERT INTO categories (name, color, tax_rate, description)
		VALUES (?, ?, ?, ?)`

	for i := range categories {
		var taxRate any
		if categories[i].HasTaxRate() {
			taxRate = *categories[i].TaxRate
		}
		if _, err := tx.ExecContext(ctx, insert,
			categories[i].Name, categories[i].Color, taxRate, categories[i].Description,
		); err != nil {
			return fmt.Errorf("failed to insert category %q: %w", categories[i].Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit categories: %w", err)
	}

	slog.Debug("saved categories", "count", len(categories))
	return nil
}

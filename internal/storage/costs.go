package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// GetCosts returns all persisted cost lines in collection order.
func (s *SQLiteStorage) GetCosts(ctx context.Context) ([]model.CostItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, category, budget_limit, spent_amount, currency,
		       priority, status, is_pinned, tax_rate,
		       assignee, assignee_avatar, due_date
		FROM cost_items
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost items: %w", err)
	}
	defer rows.Close()

	var costs []model.CostItem
	for rows.Next() {
		var item model.CostItem
		var taxRate sql.NullFloat64
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.BudgetLimit,
			&item.SpentAmount, &item.Currency, &item.Priority, &item.Status,
			&item.IsPinned, &taxRate,
			&item.Assignee, &item.AssigneeAvatar, &item.DueDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cost item: %w", err)
		}
		if taxRate.Valid {
			rate := taxRate.Float64
			item.TaxRate = &rate
		}
		costs = append(costs, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost items: %w", err)
	}

	slog.Debug("retrieved cost items", "count", len(costs))
	return costs, nil
}

// SaveCosts replaces the persisted collection with the given snapshot,
// preserving slice order.
func (s *SQLiteStorage) SaveCosts(ctx context.Context, costs []model.CostItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCosts(costs); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cost_items`); err != nil {
		return fmt.Errorf("failed to clear cost items: %w", err)
	}

	insert := `
		INSERT INTO cost_items (
			id, position, name, category, budget_limit, spent_amount,
			currency, priority, status, is_pinned, tax_rate,
			assignee, assignee_avatar, due_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i := range costs {
		var taxRate any
		if costs[i].TaxRate != nil {
			taxRate = *costs[i].TaxRate
		}
		if _, err := tx.ExecContext(ctx, insert,
			costs[i].ID, i, costs[i].Name, costs[i].Category,
			costs[i].BudgetLimit, costs[i].SpentAmount, costs[i].Currency,
			costs[i].Priority, costs[i].Status, costs[i].IsPinned, taxRate,
			costs[i].Assignee, costs[i].AssigneeAvatar, costs[i].DueDate,
		); err != nil {
			return fmt.Errorf("failed to insert cost item %q: %w", costs[i].Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cost items: %w", err)
	}

	slog.Debug("saved cost items", "count", len(costs))
	return nil
}

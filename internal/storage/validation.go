package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidCost  = errors.New("invalid cost item")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCosts validates a slice of cost items before persisting.
func validateCosts(costs []model.CostItem) error {
	if costs == nil {
		return fmt.Errorf("%w: costs", ErrNilParameter)
	}
	for i := range costs {
		if err := costs[i].Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %v", ErrInvalidCost, i, err)
		}
	}
	return nil
}

// validateCategories validates a slice of categories before persisting.
func validateCategories(categories []model.Category) error {
	if categories == nil {
		return fmt.Errorf("%w: categories", ErrNilParameter)
	}
	for i := range categories {
		if err := categories[i].Validate(); err != nil {
			return fmt.Errorf("category at index %d: %w", i, err)
		}
	}
	return nil
}

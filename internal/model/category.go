// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"strings"
)

// Category represents an expense category with optional tax metadata.
type Category struct {
	TaxRate     *float64
	Name        string
	Color       string
	Description string
}

// HasTaxRate reports whether the category carries an explicit tax rate.
func (c *Category) HasTaxRate() bool {
	return c.TaxRate != nil
}

// Validate checks that the category is well-formed.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	if c.TaxRate != nil && (*c.TaxRate < 0 || *c.TaxRate > 100) {
		return fmt.Errorf("tax rate must be between 0 and 100, got %.2f", *c.TaxRate)
	}
	return nil
}

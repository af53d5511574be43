package model

import (
	"fmt"
	"strings"
)

// Status indicates whether a cost line is still being tracked or closed out.
type Status string

const (
	// StatusActive marks a cost line that is still accruing spend.
	StatusActive Status = "active"
	// StatusCompleted marks a cost line that has been closed out.
	StatusCompleted Status = "completed"
)

// PriorityTier is the urgency bucket chosen when a cost line is created
// through the detailed form. Lower resulting priority sorts first.
type PriorityTier string

const (
	TierLow    PriorityTier = "low"
	TierMedium PriorityTier = "medium"
	TierHigh   PriorityTier = "high"
	TierUrgent PriorityTier = "urgent"
)

// ParsePriorityTier converts user input into a PriorityTier.
func ParsePriorityTier(s string) (PriorityTier, error) {
	switch PriorityTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierLow:
		return TierLow, nil
	case TierMedium:
		return TierMedium, nil
	case TierHigh:
		return TierHigh, nil
	case TierUrgent:
		return TierUrgent, nil
	default:
		return "", fmt.Errorf("unknown priority tier %q (want low, medium, high, or urgent)", s)
	}
}

// PriorityOffset returns how far past the current collection size the tier
// places a newly created item. Urgent items land closest to the front.
func (t PriorityTier) PriorityOffset() int {
	switch t {
	case TierUrgent:
		return 1
	case TierHigh:
		return 2
	case TierMedium:
		return 3
	default:
		return 4
	}
}

// CostItem is a single budget line tracked for a project.
type CostItem struct {
	TaxRate        *float64 // per-item override; nil means resolve from category
	Name           string
	Category       string
	Currency       string
	Assignee       string
	AssigneeAvatar string
	DueDate        string // preformatted display string, not parsed
	Status         Status
	ID             int64
	BudgetLimit    int64
	SpentAmount    int64
	Priority       int
	IsPinned       bool
}

// Validate checks that the cost item is well-formed.
func (c *CostItem) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("cost item name is required")
	}
	if c.BudgetLimit < 0 {
		return fmt.Errorf("budget limit cannot be negative, got %d", c.BudgetLimit)
	}
	if c.SpentAmount < 0 {
		return fmt.Errorf("spent amount cannot be negative, got %d", c.SpentAmount)
	}
	switch c.Status {
	case StatusActive, StatusCompleted:
	default:
		return fmt.Errorf("invalid status %q", c.Status)
	}
	return nil
}

package ledger

import (
	"sort"
	"strings"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// FilterAndSort returns the cost lines whose name or category contains term
// case-insensitively, sorted pinned-first and then by ascending priority.
// The input slice is never modified; ties keep their relative order.
func FilterAndSort(costs []model.CostItem, term string) []model.CostItem {
	needle := strings.ToLower(strings.TrimSpace(term))

	filtered := make([]model.CostItem, 0, len(costs))
	for _, c := range costs {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Category), needle) {
			filtered = append(filtered, c)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsPinned != filtered[j].IsPinned {
			return filtered[i].IsPinned
		}
		return filtered[i].Priority < filtered[j].Priority
	})

	return filtered
}

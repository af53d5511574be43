// Package registry holds the working set of expense categories.
//
// The registry is an in-memory, per-instance store: construct one and pass it
// to whatever needs category lookups. Expected rejections (duplicate name,
// unknown name) are reported as booleans, not errors.
package registry

import (
	"strings"

	"github.com/dnguyen-vn/costflow/internal/model"
)

func rate(f float64) *float64 { return &f }

// defaultCategories seeds every new registry. Statutory-rate categories carry
// their rates here as well so they render correctly in listings, but the tax
// engine resolves those names from its own table first regardless.
func defaultCategories() []model.Category {
	return []model.Category{
		{Name: "General", Color: "#6B7280", Description: "Uncategorized project costs"},
		{Name: "Hosting", Color: "#3B82F6", TaxRate: rate(10), Description: "Servers and cloud infrastructure"},
		{Name: "Domain", Color: "#8B5CF6", TaxRate: rate(10), Description: "Domain registration and renewal"},
		{Name: "Nâng cấp tính năng", Color: "#F59E0B", TaxRate: rate(10), Description: "Feature upgrade work"},
		{Name: "Thu nhập doanh nghiệp", Color: "#10B981", TaxRate: rate(25), Description: "Business income"},
		{Name: "Marketing", Color: "#EC4899", Description: "Advertising and promotion"},
	}
}

// Registry is the mutable collection of categories for one project view.
type Registry struct {
	categories []model.Category
}

// New creates a registry seeded with the default categories.
func New() *Registry {
	return &Registry{categories: defaultCategories()}
}

// cloneCategory detaches the tax rate pointer so categories crossing the
// registry boundary never alias registry internals.
func cloneCategory(c model.Category) model.Category {
	if c.TaxRate != nil {
		rate := *c.TaxRate
		c.TaxRate = &rate
	}
	return c
}

// Categories returns a copy of the category list. Mutating the returned
// slice, including through its tax rate pointers, never affects the
// registry.
func (r *Registry) Categories() []model.Category {
	out := make([]model.Category, len(r.categories))
	for i := range r.categories {
		out[i] = cloneCategory(r.categories[i])
	}
	return out
}

// Add inserts a category. The duplicate check is case-insensitive but the
// category is stored with the name exactly as given. Returns false when a
// category with the same name already exists.
func (r *Registry) Add(category model.Category) bool {
	for i := range r.categories {
		if strings.EqualFold(r.categories[i].Name, category.Name) {
			return false
		}
	}
	r.categories = append(r.categories, cloneCategory(category))
	return true
}

// ByName looks up a category by exact name. Returns nil when not found.
// The returned category is detached from registry internals.
func (r *Registry) ByName(name string) *model.Category {
	for i := range r.categories {
		if r.categories[i].Name == name {
			cat := cloneCategory(r.categories[i])
			return &cat
		}
	}
	return nil
}

// UpdateTax replaces the tax rate and/or description of the named category.
// Nil arguments leave the corresponding field untouched. Returns false when
// the category does not exist.
func (r *Registry) UpdateTax(name string, taxRate *float64, description *string) bool {
	for i := range r.categories {
		if r.categories[i].Name == name {
			if taxRate != nil {
				rate := *taxRate
				r.categories[i].TaxRate = &rate
			}
			if description != nil {
				r.categories[i].Description = *description
			}
			return true
		}
	}
	return false
}

// Load replaces the registry contents, e.g. when restoring persisted state.
func (r *Registry) Load(categories []model.Category) {
	r.categories = make([]model.Category, len(categories))
	for i := range categories {
		r.categories[i] = cloneCategory(categories[i])
	}
}

// Reset restores the registry to its initial seeded state.
func (r *Registry) Reset() {
	r.categories = defaultCategories()
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	return len(r.categories)
}

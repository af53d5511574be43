package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnguyen-vn/costflow/internal/model"
)

func TestRegistry_Add(t *testing.T) {
	r := New()
	before := r.Len()

	ok := r.Add(model.Category{Name: "Licenses", Color: "#000000"})
	assert.True(t, ok)
	assert.Equal(t, before+1, r.Len())

	// Exact duplicate is rejected.
	assert.False(t, r.Add(model.Category{Name: "Licenses"}))
	assert.Equal(t, before+1, r.Len())

	// Duplicate check ignores case, so size stays unchanged.
	assert.False(t, r.Add(model.Category{Name: "LICENSES"}))
	assert.False(t, r.Add(model.Category{Name: "licenses"}))
	assert.Equal(t, before+1, r.Len())
}

func TestRegistry_ByName(t *testing.T) {
	r := New()

	cat := r.ByName("Hosting")
	require.NotNil(t, cat)
	assert.Equal(t, "Hosting", cat.Name)
	require.NotNil(t, cat.TaxRate)
	assert.InDelta(t, 10, *cat.TaxRate, 0)

	// Lookup is case-sensitive.
	assert.Nil(t, r.ByName("hosting"))
	assert.Nil(t, r.ByName("No such category"))
}

func TestRegistry_ByName_ReturnsCopy(t *testing.T) {
	r := New()

	cat := r.ByName("General")
	require.NotNil(t, cat)
	cat.Description = "scribbled on"

	fresh := r.ByName("General")
	require.NotNil(t, fresh)
	assert.Equal(t, "Uncategorized project costs", fresh.Description)
}

func TestRegistry_UpdateTax(t *testing.T) {
	r := New()
	newRate := 8.0
	newDesc := "Ads, campaigns, sponsorships"

	ok := r.UpdateTax("Marketing", &newRate, &newDesc)
	require.True(t, ok)

	cat := r.ByName("Marketing")
	require.NotNil(t, cat)
	require.NotNil(t, cat.TaxRate)
	assert.InDelta(t, 8, *cat.TaxRate, 0)
	assert.Equal(t, newDesc, cat.Description)

	// Nil arguments leave fields untouched.
	ok = r.UpdateTax("Marketing", nil, nil)
	require.True(t, ok)
	cat = r.ByName("Marketing")
	require.NotNil(t, cat.TaxRate)
	assert.InDelta(t, 8, *cat.TaxRate, 0)
	assert.Equal(t, newDesc, cat.Description)

	// Unknown category is a rejected update, not an error.
	assert.False(t, r.UpdateTax("Nonexistent", &newRate, nil))
}

func TestRegistry_Reset(t *testing.T) {
	r := New()
	seeded := r.Len()

	require.True(t, r.Add(model.Category{Name: "Scratch"}))
	newRate := 50.0
	require.True(t, r.UpdateTax("General", &newRate, nil))

	r.Reset()

	assert.Equal(t, seeded, r.Len())
	assert.Nil(t, r.ByName("Scratch"))
	general := r.ByName("General")
	require.NotNil(t, general)
	assert.Nil(t, general.TaxRate)
}

func TestRegistry_CategoriesDefensiveCopy(t *testing.T) {
	r := New()

	cats := r.Categories()
	require.NotEmpty(t, cats)
	cats[0].Name = "mangled"
	_ = append(cats, model.Category{Name: "sneaky"})

	fresh := r.Categories()
	assert.NotEqual(t, "mangled", fresh[0].Name)
	assert.Equal(t, r.Len(), len(fresh))
	assert.Nil(t, r.ByName("sneaky"))
}

func TestRegistry_TaxRatePointersNotShared(t *testing.T) {
	r := New()

	// Writing through a returned tax rate pointer must not reach the
	// registry, or callers could silently rewrite seeded rates.
	cats := r.Categories()
	for i := range cats {
		if cats[i].TaxRate != nil {
			*cats[i].TaxRate = 99
		}
	}

	hosting := r.ByName("Hosting")
	require.NotNil(t, hosting)
	require.NotNil(t, hosting.TaxRate)
	assert.InDelta(t, 10, *hosting.TaxRate, 0)

	// ByName results are equally detached.
	*hosting.TaxRate = 42
	fresh := r.ByName("Hosting")
	require.NotNil(t, fresh.TaxRate)
	assert.InDelta(t, 10, *fresh.TaxRate, 0)
}

func TestRegistry_StoresDetachCallerPointers(t *testing.T) {
	r := New()

	added := 7.0
	require.True(t, r.Add(model.Category{Name: "Licenses", TaxRate: &added}))
	added = 70
	got := r.ByName("Licenses")
	require.NotNil(t, got)
	require.NotNil(t, got.TaxRate)
	assert.InDelta(t, 7, *got.TaxRate, 0)

	updated := 9.0
	require.True(t, r.UpdateTax("Licenses", &updated, nil))
	updated = 90
	got = r.ByName("Licenses")
	require.NotNil(t, got.TaxRate)
	assert.InDelta(t, 9, *got.TaxRate, 0)

	loaded := 5.0
	snapshot := []model.Category{{Name: "Restored", TaxRate: &loaded}}
	r.Load(snapshot)
	loaded = 50
	got = r.ByName("Restored")
	require.NotNil(t, got)
	require.NotNil(t, got.TaxRate)
	assert.InDelta(t, 5, *got.TaxRate, 0)
}

func TestRegistry_InstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	require.True(t, a.Add(model.Category{Name: "Only in A"}))

	assert.NotNil(t, a.ByName("Only in A"))
	assert.Nil(t, b.ByName("Only in A"))
}

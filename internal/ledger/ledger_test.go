package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnguyen-vn/costflow/internal/model"
)

func testClock() func() time.Time {
	t := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewWithClock(250_000_000, testClock())
}

func TestLedger_QuickAdd(t *testing.T) {
	l := newTestLedger(t)

	l.QuickAdd("New line")

	require.Equal(t, 1, l.Len())
	item := l.Costs()[0]
	assert.Equal(t, "New line", item.Name)
	assert.Equal(t, DefaultCategory, item.Category)
	assert.Equal(t, DefaultBudgetLimit, item.BudgetLimit)
	assert.Equal(t, DefaultCurrency, item.Currency)
	assert.Zero(t, item.SpentAmount)
	assert.Equal(t, 1, item.Priority)
	assert.Equal(t, model.StatusActive, item.Status)
	assert.False(t, item.IsPinned)

	selected := l.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, item.ID, selected.ID)
}

func TestLedger_QuickAdd_PrependsAndSelects(t *testing.T) {
	l := newTestLedger(t)

	l.QuickAdd("first")
	l.QuickAdd("second")

	costs := l.Costs()
	require.Len(t, costs, 2)
	assert.Equal(t, "second", costs[0].Name)
	assert.Equal(t, "first", costs[1].Name)
	assert.Equal(t, costs[0].ID, l.Selected().ID)
	assert.Greater(t, costs[0].ID, costs[1].ID)
}

func TestLedger_QuickAdd_BlankNameIgnored(t *testing.T) {
	l := newTestLedger(t)

	l.QuickAdd("")
	l.QuickAdd("   ")
	l.QuickAdd("\t\n")

	assert.Zero(t, l.Len())
	assert.Nil(t, l.Selected())
}

func TestLedger_Add_TierPlacement(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("existing") // priority 1

	l.Add(AddForm{Name: "low line", Category: "Hosting", Tier: model.TierLow})
	l.Add(AddForm{Name: "urgent line", Category: "Hosting", Tier: model.TierUrgent})

	byName := map[string]model.CostItem{}
	for _, c := range l.Costs() {
		byName[c.Name] = c
	}

	// Offsets are relative to the collection size at creation time.
	assert.Equal(t, 1+4, byName["low line"].Priority)
	assert.Equal(t, 2+1, byName["urgent line"].Priority)

	// Urgent sorts ahead of low among the new lines.
	sorted := FilterAndSort(l.Costs(), "")
	assert.Equal(t, "existing", sorted[0].Name)
	assert.Equal(t, "urgent line", sorted[1].Name)
	assert.Equal(t, "low line", sorted[2].Name)
}

func TestLedger_Add_DueDateDefaultsToToday(t *testing.T) {
	l := newTestLedger(t)

	l.Add(AddForm{Name: "with date", Tier: model.TierMedium, DueDate: "01/01/2026"})
	l.Add(AddForm{Name: "without date", Tier: model.TierMedium})

	byName := map[string]model.CostItem{}
	for _, c := range l.Costs() {
		byName[c.Name] = c
	}
	assert.Equal(t, "01/01/2026", byName["with date"].DueDate)
	assert.Equal(t, "14/03/2025", byName["without date"].DueDate)
}

func TestLedger_EditStaging(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")
	id := l.Costs()[0].ID

	l.StartEdit(id)
	require.True(t, l.Editing())
	l.StageName("renamed")
	l.StageCategory("Hosting")
	l.StageBudgetLimit(9_000_000)
	l.StageSpentAmount(3_000_000)

	// Nothing is visible until save.
	assert.Equal(t, "line", l.Costs()[0].Name)

	l.SaveEdit()
	assert.False(t, l.Editing())

	item := l.Costs()[0]
	assert.Equal(t, "renamed", item.Name)
	assert.Equal(t, "Hosting", item.Category)
	assert.Equal(t, int64(9_000_000), item.BudgetLimit)
	assert.Equal(t, int64(3_000_000), item.SpentAmount)
}

func TestLedger_CancelEditDiscardsStaging(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")
	id := l.Costs()[0].ID

	l.StartEdit(id)
	l.StageName("renamed")
	l.CancelEdit()

	assert.False(t, l.Editing())
	assert.Equal(t, "line", l.Costs()[0].Name)

	// Save after cancel is a no-op.
	l.SaveEdit()
	assert.Equal(t, "line", l.Costs()[0].Name)
}

func TestLedger_EditMissingIDIsNoop(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")

	l.StartEdit(424242)
	assert.False(t, l.Editing())
}

func TestLedger_SaveEditAfterDelete(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")
	id := l.Costs()[0].ID

	l.StartEdit(id)
	l.StageName("renamed")
	l.Remove(id)
	l.SaveEdit()

	assert.Zero(t, l.Len())
	assert.False(t, l.Editing())
}

func TestLedger_Remove(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("a")
	l.QuickAdd("b")
	l.QuickAdd("c") // order: c, b, a; c selected

	costs := l.Costs()
	cID, bID, aID := costs[0].ID, costs[1].ID, costs[2].ID

	// Deleting the selected item falls back to the new first item.
	l.Remove(cID)
	require.Equal(t, 2, l.Len())
	require.NotNil(t, l.Selected())
	assert.Equal(t, bID, l.Selected().ID)

	// Deleting an unselected item keeps selection.
	l.Remove(aID)
	require.NotNil(t, l.Selected())
	assert.Equal(t, bID, l.Selected().ID)

	// Unknown id is a no-op.
	l.Remove(999)
	assert.Equal(t, 1, l.Len())

	// Removing the last item clears selection.
	l.Remove(bID)
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Selected())
}

func TestLedger_TogglePin(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")
	id := l.Costs()[0].ID
	priority := l.Costs()[0].Priority

	l.TogglePin(id)
	assert.True(t, l.Costs()[0].IsPinned)
	assert.Equal(t, priority, l.Costs()[0].Priority)

	l.TogglePin(id)
	assert.False(t, l.Costs()[0].IsPinned)

	l.TogglePin(12345) // unknown id, no-op
	assert.False(t, l.Costs()[0].IsPinned)
}

func TestLedger_Reorder(t *testing.T) {
	l := newTestLedger(t)
	for _, name := range []string{"d", "c", "b", "a"} {
		l.QuickAdd(name) // final order: a, b, c, d
	}
	costs := l.Costs()
	require.Equal(t, []string{"a", "b", "c", "d"}, names(costs))

	// Drag "a" onto "c": order becomes b, c, a, d.
	l.Reorder(costs[0].ID, costs[2].ID)

	got := l.Costs()
	assert.Equal(t, []string{"b", "c", "a", "d"}, names(got))
	for i, c := range got {
		assert.Equal(t, i+1, c.Priority)
	}
}

func TestLedger_Reorder_PrioritiesAlwaysContiguous(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("x")
	l.Add(AddForm{Name: "y", Tier: model.TierLow})    // priority gap: 1+4
	l.Add(AddForm{Name: "z", Tier: model.TierUrgent}) // 2+1

	ids := make([]int64, 0, 3)
	for _, c := range l.Costs() {
		ids = append(ids, c.ID)
	}
	l.Reorder(ids[2], ids[0])

	seen := map[int]bool{}
	for _, c := range l.Costs() {
		seen[c.Priority] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
}

func TestLedger_Reorder_Noops(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("b")
	l.QuickAdd("a")
	before := l.Costs()

	l.Reorder(before[0].ID, before[0].ID) // self-move
	assert.Equal(t, before, l.Costs())

	l.Reorder(before[0].ID, 999) // unknown destination
	assert.Equal(t, before, l.Costs())

	l.Reorder(999, before[0].ID) // unknown source
	assert.Equal(t, before, l.Costs())
}

func TestLedger_Load(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("old")

	snapshot := []model.CostItem{
		{ID: 100, Name: "restored", Category: "Hosting", Priority: 1, Status: model.StatusActive},
		{ID: 200, Name: "restored 2", Category: "General", Priority: 2, Status: model.StatusCompleted},
	}
	l.Load(snapshot)

	assert.Equal(t, 2, l.Len())
	assert.Nil(t, l.Selected())

	// New ids keep increasing past the restored ones.
	l.QuickAdd("fresh")
	assert.Greater(t, l.Costs()[0].ID, int64(200))
}

func TestLedger_SetStatus(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")
	id := l.Costs()[0].ID

	l.SetStatus(id, model.StatusCompleted)
	assert.Equal(t, model.StatusCompleted, l.Costs()[0].Status)

	l.SetStatus(999, model.StatusActive)
	assert.Equal(t, model.StatusCompleted, l.Costs()[0].Status)
}

func TestLedger_CostsDefensiveCopy(t *testing.T) {
	l := newTestLedger(t)
	l.QuickAdd("line")

	costs := l.Costs()
	costs[0].Name = "mangled"

	assert.Equal(t, "line", l.Costs()[0].Name)
}

func names(costs []model.CostItem) []string {
	out := make([]string, len(costs))
	for i, c := range costs {
		out[i] = c.Name
	}
	return out
}

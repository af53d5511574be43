// Package ledger manages the ordered collection of cost lines for a single
// project budget view: creation, edit staging, deletion, pinning, manual
// reordering, and the derived budget aggregates.
//
// All state is in-memory. Mutations referencing an unknown item id are
// silent no-ops; nothing in this package returns an error for expected
// misses.
package ledger

import (
	"strings"
	"time"

	"github.com/dnguyen-vn/costflow/internal/model"
)

const (
	// DefaultCategory is assigned to quick-added cost lines.
	DefaultCategory = "General"
	// DefaultBudgetLimit is the per-line ceiling assigned by quick-add.
	DefaultBudgetLimit int64 = 1_000_000
	// DefaultCurrency is the single currency this ledger tracks.
	DefaultCurrency = "VND"

	dueDateLayout = "02/01/2006"
)

// AddForm carries the fields of the detailed creation form.
type AddForm struct {
	Name           string
	Category       string
	Assignee       string
	AssigneeAvatar string
	DueDate        string
	Tier           model.PriorityTier
	BudgetLimit    int64
	SpentAmount    int64
}

type editForm struct {
	name        string
	category    string
	budgetLimit int64
	spentAmount int64
	id          int64
}

// Ledger holds the working set of cost lines for one project.
type Ledger struct {
	now         func() time.Time
	staged      *editForm
	searchTerm  string
	costs       []model.CostItem
	budgetLimit int64
	selectedID  int64
	lastID      int64
}

// New creates an empty ledger with the given project-level budget limit.
func New(budgetLimit int64) *Ledger {
	return &Ledger{
		budgetLimit: budgetLimit,
		now:         time.Now,
	}
}

// NewWithClock creates a ledger with a fixed clock, for tests.
func NewWithClock(budgetLimit int64, now func() time.Time) *Ledger {
	return &Ledger{
		budgetLimit: budgetLimit,
		now:         now,
	}
}

// nextID issues a unique, monotonically increasing item id derived from the
// creation timestamp.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// Costs returns a copy of the full, unfiltered collection.
func (l *Ledger) Costs() []model.CostItem {
	out := make([]model.CostItem, len(l.costs))
	copy(out, l.costs)
	return out
}

// Len returns the number of cost lines.
func (l *Ledger) Len() int {
	return len(l.costs)
}

// Selected returns the currently selected cost line, or nil.
func (l *Ledger) Selected() *model.CostItem {
	return l.byID(l.selectedID)
}

// Select marks the given item as selected. Unknown ids are ignored.
func (l *Ledger) Select(id int64) {
	if l.byID(id) != nil {
		l.selectedID = id
	}
}

func (l *Ledger) byID(id int64) *model.CostItem {
	for i := range l.costs {
		if l.costs[i].ID == id {
			item := l.costs[i]
			return &item
		}
	}
	return nil
}

func (l *Ledger) indexOf(id int64) int {
	for i := range l.costs {
		if l.costs[i].ID == id {
			return i
		}
	}
	return -1
}

// QuickAdd creates a cost line from just a name, fills in defaults, prepends
// it to the collection, and selects it. A blank name is silently ignored.
func (l *Ledger) QuickAdd(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	item := model.CostItem{
		ID:          l.nextID(),
		Name:        name,
		Category:    DefaultCategory,
		BudgetLimit: DefaultBudgetLimit,
		Currency:    DefaultCurrency,
		Priority:    len(l.costs) + 1,
		Status:      model.StatusActive,
	}

	l.costs = append([]model.CostItem{item}, l.costs...)
	l.selectedID = item.ID
}

// Add creates a cost line from the detailed form. The priority tier places
// the new line relative to the current collection size so urgent lines sort
// ahead of lower tiers created in the same batch; existing priorities are
// not renormalized.
func (l *Ledger) Add(form AddForm) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return
	}

	dueDate := form.DueDate
	if dueDate == "" {
		dueDate = l.now().Format(dueDateLayout)
	}

	item := model.CostItem{
		ID:             l.nextID(),
		Name:           name,
		Category:       form.Category,
		BudgetLimit:    form.BudgetLimit,
		SpentAmount:    form.SpentAmount,
		Currency:       DefaultCurrency,
		Assignee:       form.Assignee,
		AssigneeAvatar: form.AssigneeAvatar,
		DueDate:        dueDate,
		Priority:       len(l.costs) + form.Tier.PriorityOffset(),
		Status:         model.StatusActive,
	}

	l.costs = append(l.costs, item)
	l.selectedID = item.ID
}

// StartEdit loads an item's editable fields into the staging form. Unknown
// ids leave any existing staging untouched.
func (l *Ledger) StartEdit(id int64) {
	item := l.byID(id)
	if item == nil {
		return
	}
	l.staged = &editForm{
		id:          item.ID,
		name:        item.Name,
		category:    item.Category,
		budgetLimit: item.BudgetLimit,
		spentAmount: item.SpentAmount,
	}
}

// StageName updates the staged name. No-op without an active edit.
func (l *Ledger) StageName(name string) {
	if l.staged != nil {
		l.staged.name = name
	}
}

// StageCategory updates the staged category.
func (l *Ledger) StageCategory(category string) {
	if l.staged != nil {
		l.staged.category = category
	}
}

// StageBudgetLimit updates the staged budget limit.
func (l *Ledger) StageBudgetLimit(limit int64) {
	if l.staged != nil {
		l.staged.budgetLimit = limit
	}
}

// StageSpentAmount updates the staged spent amount.
func (l *Ledger) StageSpentAmount(amount int64) {
	if l.staged != nil {
		l.staged.spentAmount = amount
	}
}

// SaveEdit merges the staged fields back into the item and clears staging.
// No-op when nothing is staged or the item has been deleted meanwhile.
func (l *Ledger) SaveEdit() {
	if l.staged == nil {
		return
	}
	idx := l.indexOf(l.staged.id)
	if idx < 0 {
		l.staged = nil
		return
	}

	l.costs[idx].Name = l.staged.name
	l.costs[idx].Category = l.staged.category
	l.costs[idx].BudgetLimit = l.staged.budgetLimit
	l.costs[idx].SpentAmount = l.staged.spentAmount
	l.staged = nil
}

// CancelEdit discards staging without touching the collection.
func (l *Ledger) CancelEdit() {
	l.staged = nil
}

// Editing reports whether an edit is currently staged.
func (l *Ledger) Editing() bool {
	return l.staged != nil
}

// Remove deletes the item. Deleting the selected item moves selection to the
// first remaining line, or clears it when the collection is empty. Unknown
// ids are ignored. Callers are responsible for confirming with the user
// first; removal is irreversible.
func (l *Ledger) Remove(id int64) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}

	l.costs = append(l.costs[:idx], l.costs[idx+1:]...)

	if l.selectedID == id {
		if len(l.costs) > 0 {
			l.selectedID = l.costs[0].ID
		} else {
			l.selectedID = 0
		}
	}
}

// TogglePin flips the pin flag. Priority is left untouched; pinning only
// affects sort position through the pinned-first rule.
func (l *Ledger) TogglePin(id int64) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	l.costs[idx].IsPinned = !l.costs[idx].IsPinned
}

// SetStatus updates an item's status. Unknown ids are ignored.
func (l *Ledger) SetStatus(id int64, status model.Status) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	l.costs[idx].Status = status
}

// Reorder moves the source item to the destination item's position, then
// rewrites every priority to match positional order, leaving the priorities
// exactly 1..N. Unknown ids or a self-move are no-ops.
func (l *Ledger) Reorder(sourceID, destID int64) {
	src := l.indexOf(sourceID)
	dst := l.indexOf(destID)
	if src < 0 || dst < 0 || src == dst {
		return
	}

	moved := l.costs[src]
	l.costs = append(l.costs[:src], l.costs[src+1:]...)

	rest := make([]model.CostItem, 0, len(l.costs)+1)
	rest = append(rest, l.costs[:dst]...)
	rest = append(rest, moved)
	rest = append(rest, l.costs[dst:]...)
	l.costs = rest

	for i := range l.costs {
		l.costs[i].Priority = i + 1
	}
}

// Search stores the term and returns the filtered, sorted projection of the
// collection. The underlying collection is never mutated.
func (l *Ledger) Search(term string) []model.CostItem {
	l.searchTerm = term
	return FilterAndSort(l.costs, term)
}

// SearchTerm returns the last term passed to Search.
func (l *Ledger) SearchTerm() string {
	return l.searchTerm
}

// Load replaces the collection wholesale, e.g. when restoring a saved
// snapshot. Selection and staging are cleared.
func (l *Ledger) Load(costs []model.CostItem) {
	l.costs = make([]model.CostItem, len(costs))
	copy(l.costs, costs)
	l.staged = nil
	l.selectedID = 0
	for i := range l.costs {
		if l.costs[i].ID > l.lastID {
			l.lastID = l.costs[i].ID
		}
	}
}

// BudgetLimit returns the project-level budget ceiling.
func (l *Ledger) BudgetLimit() int64 {
	return l.budgetLimit
}

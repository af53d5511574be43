package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		item    CostItem
		wantErr bool
	}{
		{
			name: "valid active item",
			item: CostItem{
				Name:        "AWS bill",
				Category:    "Hosting",
				BudgetLimit: 5_000_000,
				SpentAmount: 3_750_000,
				Status:      StatusActive,
			},
			wantErr: false,
		},
		{
			name: "valid completed item",
			item: CostItem{
				Name:   "Domain renewal",
				Status: StatusCompleted,
			},
			wantErr: false,
		},
		{
			name:    "empty name",
			item:    CostItem{Status: StatusActive},
			wantErr: true,
			errMsg:  "cost item name is required",
		},
		{
			name: "whitespace name",
			item: CostItem{
				Name:   "   ",
				Status: StatusActive,
			},
			wantErr: true,
			errMsg:  "cost item name is required",
		},
		{
			name: "negative budget limit",
			item: CostItem{
				Name:        "Servers",
				BudgetLimit: -1,
				Status:      StatusActive,
			},
			wantErr: true,
			errMsg:  "budget limit cannot be negative, got -1",
		},
		{
			name: "negative spent amount",
			item: CostItem{
				Name:        "Servers",
				SpentAmount: -100,
				Status:      StatusActive,
			},
			wantErr: true,
			errMsg:  "spent amount cannot be negative, got -100",
		},
		{
			name: "bogus status",
			item: CostItem{
				Name:   "Servers",
				Status: Status("archived"),
			},
			wantErr: true,
			errMsg:  `invalid status "archived"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePriorityTier(t *testing.T) {
	tests := []struct {
		input   string
		want    PriorityTier
		wantErr bool
	}{
		{input: "low", want: TierLow},
		{input: "medium", want: TierMedium},
		{input: "high", want: TierHigh},
		{input: "urgent", want: TierUrgent},
		{input: "URGENT", want: TierUrgent},
		{input: "  high  ", want: TierHigh},
		{input: "critical", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriorityTier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityTier_PriorityOffset(t *testing.T) {
	// Urgent must sort ahead of high ahead of medium ahead of low.
	assert.Equal(t, 1, TierUrgent.PriorityOffset())
	assert.Equal(t, 2, TierHigh.PriorityOffset())
	assert.Equal(t, 3, TierMedium.PriorityOffset())
	assert.Equal(t, 4, TierLow.PriorityOffset())
}

func TestCategory_Validate(t *testing.T) {
	rate := 10.0
	bad := 120.0

	valid := Category{Name: "Hosting", TaxRate: &rate}
	assert.NoError(t, valid.Validate())
	assert.True(t, valid.HasTaxRate())

	noRate := Category{Name: "General"}
	assert.NoError(t, noRate.Validate())
	assert.False(t, noRate.HasTaxRate())

	empty := Category{}
	assert.Error(t, empty.Validate())

	outOfRange := Category{Name: "Hosting", TaxRate: &bad}
	assert.Error(t, outOfRange.Validate())
}

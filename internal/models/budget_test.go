package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Recalculate(t *testing.T) {
	tests := []struct {
		name              string
		budgeted          string
		spent             string
		expectedRemaining string
		expectedPercent   int
		expectedStatus    BudgetStatus
	}{
		{"groceries on track", "600", "425.50", "174.50", 71, BudgetStatusOnTrack},
		{"transportation under warning threshold", "200", "155", "45", 78, BudgetStatusOnTrack},
		{"food and drink warning", "300", "245.75", "54.25", 82, BudgetStatusWarning},
		{"bills fully used", "500", "500", "0", 100, BudgetStatusExceeded},
		{"overspent", "100", "150", "-50", 150, BudgetStatusExceeded},
		{"zero budget unused", "0", "0", "0", 0, BudgetStatusOnTrack},
		{"zero budget spent", "0", "10", "-10", 100, BudgetStatusExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := Budget{
				Category: CategoryGroceries,
				Budgeted: decimal.RequireFromString(tt.budgeted),
				Spent:    decimal.RequireFromString(tt.spent),
			}

			budget.Recalculate()

			assert.True(t, budget.Remaining.Equal(decimal.RequireFromString(tt.expectedRemaining)),
				"remaining %s", budget.Remaining)
			assert.Equal(t, tt.expectedPercent, budget.PercentUsed)
			assert.Equal(t, tt.expectedStatus, budget.Status())
		})
	}
}

func TestBudget_ProgressPercent(t *testing.T) {
	assert.Equal(t, 100, (&Budget{PercentUsed: 150}).ProgressPercent())
	assert.Equal(t, 0, (&Budget{PercentUsed: -5}).ProgressPercent())
	assert.Equal(t, 42, (&Budget{PercentUsed: 42}).ProgressPercent())
}

func TestBudget_Validate(t *testing.T) {
	budget := Budget{Category: "", Budgeted: decimal.NewFromInt(10)}
	require.ErrorIs(t, budget.Validate(), ErrBudgetCategoryMissing)

	budget = Budget{Category: CategoryShopping, Budgeted: decimal.NewFromInt(-1)}
	require.ErrorIs(t, budget.Validate(), ErrBudgetNegativeAmount)

	budget = Budget{Category: CategoryShopping, Budgeted: decimal.NewFromInt(250)}
	require.NoError(t, budget.Validate())
}

func TestPercentOf_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 60, PercentOf(decimal.RequireFromString("89.99"), decimal.NewFromInt(150)))
	assert.Equal(t, 76, PercentOf(decimal.RequireFromString("189.99"), decimal.NewFromInt(250)))
	assert.Equal(t, 1, PercentOf(decimal.RequireFromString("0.5"), decimal.NewFromInt(100)))
}

package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStatus describes how much of a budget has been used
type BudgetStatus string

const (
	BudgetStatusOnTrack  BudgetStatus = "on_track"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"

	// BudgetWarningPercent is the usage at which a budget is approaching its limit
	BudgetWarningPercent = 80
	// BudgetExceededPercent is the usage at which a budget is exhausted
	BudgetExceededPercent = 100

	DefaultBudgetPeriod = "monthly"
)

var (
	ErrBudgetCategoryMissing = errors.New("budget category is required")
	ErrBudgetNegativeAmount  = errors.New("budgeted and spent amounts cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// Budget is a spending limit for one category over a period.
// Remaining and PercentUsed are derived from Budgeted and Spent by Recalculate;
// nothing enforces that they stay consistent afterwards.
type Budget struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_category" json:"category"`
	Budgeted    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"budgeted"`
	Spent       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	Remaining   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"remaining"`
	PercentUsed int             `gorm:"not null;default:0" json:"percentUsed"`
	Period      string          `gorm:"type:varchar(20)" json:"period,omitempty"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.Period == "" {
		b.Period = DefaultBudgetPeriod
	}
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrBudgetCategoryMissing
	}
	if b.Budgeted.IsNegative() || b.Spent.IsNegative() {
		return ErrBudgetNegativeAmount
	}
	return nil
}

// Recalculate derives Remaining and PercentUsed from Budgeted and Spent.
// A zero budget with any spending counts as fully used.
func (b *Budget) Recalculate() {
	b.Remaining = b.Budgeted.Sub(b.Spent)
	b.PercentUsed = PercentOf(b.Spent, b.Budgeted)
}

// Status classifies the budget by its percentage used
func (b *Budget) Status() BudgetStatus {
	switch {
	case b.PercentUsed >= BudgetExceededPercent:
		return BudgetStatusExceeded
	case b.PercentUsed >= BudgetWarningPercent:
		return BudgetStatusWarning
	default:
		return BudgetStatusOnTrack
	}
}

// ProgressPercent is PercentUsed capped at 100, for progress bars
func (b *Budget) ProgressPercent() int {
	if b.PercentUsed > BudgetExceededPercent {
		return BudgetExceededPercent
	}
	if b.PercentUsed < 0 {
		return 0
	}
	return b.PercentUsed
}

// PercentOf returns part/whole as a whole-number percentage, rounded half up
func PercentOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		if part.IsZero() {
			return 0
		}
		return BudgetExceededPercent
	}
	return int(part.Div(whole).Mul(hundred).Round(0).IntPart())
}

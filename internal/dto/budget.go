package dto

import (
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest represents the request payload for creating a budget.
// Remaining and percentUsed are derived by the server.
type CreateBudgetRequest struct {
	Category string          `json:"category" validate:"required,min=1,max=100,category"`
	Budgeted decimal.Decimal `json:"budgeted" validate:"decimal_gte0"`
	Spent    decimal.Decimal `json:"spent" validate:"decimal_gte0"`
	Period   string          `json:"period,omitempty" validate:"omitempty,oneof=weekly monthly yearly"`
}

// ToModel converts the request into a budget with derived fields filled in
func (r CreateBudgetRequest) ToModel() *models.Budget {
	budget := &models.Budget{
		Category: r.Category,
		Budgeted: r.Budgeted,
		Spent:    r.Spent,
		Period:   r.Period,
	}
	budget.Recalculate()
	return budget
}

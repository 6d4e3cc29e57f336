package views

import (
	"io"
	"strconv"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const progressWidth = 20

// BudgetTotals are the summary figures above the budget list
type BudgetTotals struct {
	Budgeted  decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// SumBudgets adds up the budgeted, spent and remaining amounts
func SumBudgets(budgets []models.Budget) BudgetTotals {
	totals := BudgetTotals{Budgeted: decimal.Zero, Spent: decimal.Zero, Remaining: decimal.Zero}
	for i := range budgets {
		totals.Budgeted = totals.Budgeted.Add(budgets[i].Budgeted)
		totals.Spent = totals.Spent.Add(budgets[i].Spent)
		totals.Remaining = totals.Remaining.Add(budgets[i].Remaining)
	}
	return totals
}

// ProgressBar draws the used share of a budget, capped at a full bar
func ProgressBar(budget *models.Budget) string {
	filled := budget.ProgressPercent() * progressWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled) + "]"
}

// BudgetWarning is the notice shown under a budget that is exhausted or
// close to it, empty otherwise.
func BudgetWarning(budget *models.Budget) string {
	switch budget.Status() {
	case models.BudgetStatusExceeded:
		return "Budget exceeded! You've spent all of your allocated budget for this category."
	case models.BudgetStatusWarning:
		return "You've used " + strconv.Itoa(budget.PercentUsed) +
			"% of your budget. Consider reducing spending in this category."
	default:
		return ""
	}
}

// RenderBudgets writes the budget summary followed by one block per budget
func RenderBudgets(w io.Writer, budgets []models.Budget) error {
	p := &pageWriter{w: w}
	p.heading("Budgets", "Track your spending by category")

	if len(budgets) == 0 {
		p.println("No budgets yet")
		p.println("Create your first budget to start tracking your spending by category")
		return p.err
	}

	totals := SumBudgets(budgets)
	p.printf("Total Budgeted  %s  This month\n", Currency(totals.Budgeted))
	p.printf("Total Spent     %s  %s%% of budget\n", Currency(totals.Spent), ShareOf(totals.Spent, totals.Budgeted))
	p.printf("Remaining       %s  Available to spend\n", Currency(totals.Remaining))
	p.println()

	for i := range budgets {
		budget := &budgets[i]
		p.println(budget.Category)
		p.printf("  %s of %s  %s remaining\n", Amount(budget.Spent), Amount(budget.Budgeted), Amount(budget.Remaining))
		p.printf("  %s %d%%\n", ProgressBar(budget), budget.PercentUsed)
		if warning := BudgetWarning(budget); warning != "" {
			p.printf("  ! %s\n", warning)
		}
		p.println()
	}

	return p.err
}

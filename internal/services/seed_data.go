package services

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// DemoUser is the owner of the demo data set
func DemoUser() models.User {
	return models.User{
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
	}
}

// DemoAccounts returns the demo accounts in display order
func DemoAccounts() []models.Account {
	return []models.Account{
		demoAccount("Chase Checking", 5420, "****1234", "Chase", models.AccountTypeDepository),
		demoAccount("Ally Savings", 25000, "****5678", "Ally Bank", models.AccountTypeDepository),
		demoAccount("Vanguard 401k", 75000, "****9012", "Vanguard", models.AccountTypeInvestment),
		demoAccount("Robinhood", 12500, "****3456", "Robinhood", models.AccountTypeInvestment),
		demoAccount("Chase Sapphire", -3420, "****7890", "Chase", models.AccountTypeCredit),
		demoAccount("Mortgage", -350000, "****4567", "Wells Fargo", models.AccountTypeLoan),
	}
}

func demoAccount(name string, balance int64, number, institution string, accountType models.AccountType) models.Account {
	return models.Account{
		Name:          name,
		Balance:       decimal.NewFromInt(balance),
		AccountNumber: number,
		Institution:   institution,
		Type:          accountType,
		Currency:      models.DefaultCurrency,
	}
}

// demoTransaction references its account by name until the accounts are stored
type demoTransaction struct {
	date     models.Date
	merchant string
	category string
	amount   string
	account  string
}

func demoTransactions() []demoTransaction {
	return []demoTransaction{
		{models.NewDate(2025, time.October, 25), "Whole Foods", models.CategoryGroceries, "-125.43", "Chase Checking"},
		{models.NewDate(2025, time.October, 24), "Shell Gas Station", models.CategoryTransportation, "-55.00", "Chase Checking"},
		{models.NewDate(2025, time.October, 23), "Amazon", models.CategoryShopping, "-89.99", "Chase Sapphire"},
		{models.NewDate(2025, time.October, 22), "Salary Deposit", models.CategoryIncome, "5000.00", "Chase Checking"},
		{models.NewDate(2025, time.October, 21), "Netflix", models.CategoryEntertainment, "-15.99", "Chase Sapphire"},
		{models.NewDate(2025, time.October, 20), "Starbucks", models.CategoryFoodAndDrink, "-6.50", "Chase Checking"},
	}
}

// DemoBudgets returns the demo budgets with remaining and percentUsed filled in
func DemoBudgets() []models.Budget {
	budgets := []models.Budget{
		{Category: models.CategoryGroceries, Budgeted: decimal.NewFromInt(600), Spent: decimal.RequireFromString("425.50")},
		{Category: models.CategoryTransportation, Budgeted: decimal.NewFromInt(200), Spent: decimal.RequireFromString("155.00")},
		{Category: models.CategoryEntertainment, Budgeted: decimal.NewFromInt(150), Spent: decimal.RequireFromString("89.99")},
		{Category: models.CategoryFoodAndDrink, Budgeted: decimal.NewFromInt(300), Spent: decimal.RequireFromString("245.75")},
		{Category: models.CategoryShopping, Budgeted: decimal.NewFromInt(250), Spent: decimal.RequireFromString("189.99")},
		{Category: models.CategoryBillsUtilities, Budgeted: decimal.NewFromInt(500), Spent: decimal.RequireFromString("500.00")},
	}
	for i := range budgets {
		budgets[i].Period = models.DefaultBudgetPeriod
		budgets[i].Recalculate()
	}
	return budgets
}

// DemoNetWorthHistory returns monthly snapshots for January to June 2025
func DemoNetWorthHistory() []models.NetWorthSnapshot {
	history := make([]models.NetWorthSnapshot, 0, 6)
	for i := 0; i < 6; i++ {
		history = append(history, models.NetWorthSnapshot{
			Date:  models.NewDate(2025, time.January+time.Month(i), 1),
			Value: decimal.NewFromInt(100000 + int64(i)*5000),
		})
	}
	return history
}

package handlers

import "github.com/labstack/echo/v4"

// API groups the handlers mounted under /api
type API struct {
	Accounts     *AccountHandler
	Transactions *TransactionHandler
	Budgets      *BudgetHandler
	Dashboard    *DashboardHandler
}

// Register mounts every finance route on g. Extra middleware, such as
// authentication, applies to all of them.
func (a *API) Register(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.Use(m...)

	g.GET("/accounts", a.Accounts.ListAccounts)
	g.POST("/accounts", a.Accounts.CreateAccount)
	g.GET("/accounts/:id", a.Accounts.GetAccount)
	g.PUT("/accounts/:id", a.Accounts.UpdateAccount)
	g.DELETE("/accounts/:id", a.Accounts.DeleteAccount)

	g.GET("/transactions", a.Transactions.ListTransactions)
	g.POST("/transactions", a.Transactions.CreateTransaction)
	g.GET("/transactions/:id", a.Transactions.GetTransaction)

	g.GET("/budgets", a.Budgets.ListBudgets)
	g.POST("/budgets", a.Budgets.CreateBudget)

	g.GET("/dashboard", a.Dashboard.GetDashboard)
}

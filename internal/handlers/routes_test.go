package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAPI_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountService := service_mocks.NewMockAccountServiceInterface(ctrl)
	transactionService := service_mocks.NewMockTransactionServiceInterface(ctrl)
	budgetService := service_mocks.NewMockBudgetServiceInterface(ctrl)
	dashboardService := service_mocks.NewMockDashboardServiceInterface(ctrl)

	api := &API{
		Accounts:     NewAccountHandler(accountService),
		Transactions: NewTransactionHandler(transactionService),
		Budgets:      NewBudgetHandler(budgetService),
		Dashboard:    NewDashboardHandler(dashboardService),
	}

	var seen []string
	recordPath := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			seen = append(seen, c.Path())
			return next(c)
		}
	}

	e := newTestEcho()
	api.Register(e.Group("/api"), recordPath)

	accountService.EXPECT().GetAccount(gomock.Any(), int64(5)).Return(fakeAccount(5, models.AccountTypeDepository), nil)
	accountService.EXPECT().DeleteAccount(gomock.Any(), int64(6)).Return(nil, services.ErrAccountNotFound)
	transactionService.EXPECT().GetTransaction(gomock.Any(), int64(2)).Return(nil, services.ErrTransactionNotFound)
	budgetService.EXPECT().ListBudgets(gomock.Any()).Return([]models.Budget{}, nil)
	dashboardService.EXPECT().GetDashboard(gomock.Any()).Return(&models.Dashboard{Accounts: []models.Account{}}, nil)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/accounts/5", http.StatusOK},
		{http.MethodDelete, "/api/accounts/6", http.StatusNotFound},
		{http.MethodGet, "/api/transactions/2", http.StatusNotFound},
		{http.MethodGet, "/api/budgets", http.StatusOK},
		{http.MethodGet, "/api/dashboard", http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tt.status, rec.Code, tt.method+" "+tt.path)
	}

	assert.Equal(t, []string{
		"/api/accounts/:id",
		"/api/accounts/:id",
		"/api/transactions/:id",
		"/api/budgets",
		"/api/dashboard",
	}, seen)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", strings.NewReader("")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

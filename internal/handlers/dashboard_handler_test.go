package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := service_mocks.NewMockDashboardServiceInterface(ctrl)
	handler := NewDashboardHandler(mockService)

	accounts := []models.Account{
		*fakeAccount(1, models.AccountTypeDepository),
		*fakeAccount(2, models.AccountTypeLoan),
	}
	accounts[1].Balance = decimal.NewFromInt(-1000)
	today := models.NewDate(2025, 10, 25)

	dashboard := &models.Dashboard{
		User: &models.User{ID: 1, Email: gofakeit.Email(), FirstName: "John", LastName: "Doe"},
		NetWorth: models.NewNetWorthData([]models.NetWorthSnapshot{
			{Date: models.NewDate(2025, 5, 1), Value: decimal.NewFromInt(120000)},
			{Date: models.NewDate(2025, 6, 1), Value: decimal.NewFromInt(125000)},
		}),
		BalanceSheet: models.NewBalanceSheet(accounts, &today),
		Accounts:     accounts,
	}
	mockService.EXPECT().GetDashboard(gomock.Any()).Return(dashboard, nil)

	c, rec := newContext(newTestEcho(), http.MethodGet, "/api/dashboard", nil)
	require.NoError(t, handler.GetDashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.APIResponse[models.Dashboard]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "John", resp.Data.User.FirstName)
	assert.True(t, resp.Data.NetWorth.Current.Equal(decimal.NewFromInt(125000)))
	assert.True(t, resp.Data.NetWorth.Change.Equal(decimal.RequireFromString("4.2")))
	assert.Equal(t, []string{"May", "Jun"}, []string{resp.Data.NetWorth.ChartData[0].Date, resp.Data.NetWorth.ChartData[1].Date})
	assert.True(t, resp.Data.BalanceSheet.Liabilities.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "2025-10-25", resp.Data.BalanceSheet.Date.String())
	assert.Len(t, resp.Data.Accounts, 2)
}

func TestDashboardHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := service_mocks.NewMockDashboardServiceInterface(ctrl)
	mockService.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("timeout"))

	c, rec := newContext(newTestEcho(), http.MethodGet, "/api/dashboard", nil)
	require.NoError(t, NewDashboardHandler(mockService).GetDashboard(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SYSTEM_001", decodeError(rec).Code)
}

package services

import (
	"context"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*models.Account, error)
	UpdateAccount(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*models.Account, error)
	// DeleteAccount removes the account with its transactions and returns the deleted record
	DeleteAccount(ctx context.Context, id int64) (*models.Account, error)
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	// ListTransactions returns one page of matching transactions and the total match count
	ListTransactions(ctx context.Context, query *dto.TransactionQuery) ([]models.Transaction, int64, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	// CreateTransaction records the transaction and applies its amount to the account balance
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*models.Transaction, error)
}

// BudgetServiceInterface defines budget-related business operations
type BudgetServiceInterface interface {
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	CreateBudget(ctx context.Context, req *dto.CreateBudgetRequest) (*models.Budget, error)
}

// DashboardServiceInterface assembles the home page aggregate
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}

// DashboardCache stores the last assembled dashboard. Get reports a miss with
// a nil dashboard and a nil error.
type DashboardCache interface {
	Get(ctx context.Context) (*models.Dashboard, error)
	Set(ctx context.Context, dashboard *models.Dashboard) error
	Invalidate(ctx context.Context) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic transaction history for demo data
type TransactionGeneratorInterface interface {
	GenerateHistory(account *models.Account, startDate, endDate time.Time) []models.Transaction
	GenerateSalaryTransactions(account *models.Account, startDate, endDate time.Time) []models.Transaction
	GenerateBillTransactions(account *models.Account, startDate, endDate time.Time) []models.Transaction
	GenerateDailyPurchases(account *models.Account, startDate, endDate time.Time) []models.Transaction
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant() models.MerchantInfo
	GenerateAmount(category string) decimal.Decimal
	GenerateDate(startDate, endDate time.Time) models.Date
}

// SeedServiceInterface loads the demo data set into an empty database
type SeedServiceInterface interface {
	// Seed inserts the demo data and reports whether anything was written.
	// A database that already holds accounts is left untouched.
	Seed(ctx context.Context) (bool, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User, ttl time.Duration) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

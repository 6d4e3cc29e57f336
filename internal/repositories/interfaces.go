package repositories

import (
	"context"

	"finance-dashboard/internal/models"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	CreateBatch(ctx context.Context, accounts []models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) (*models.Account, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// CreateAndApply stores the transaction and adds its amount to the
	// referenced account's balance in one database transaction.
	CreateAndApply(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	CreateBatch(ctx context.Context, budgets []models.Budget) error
	GetByID(ctx context.Context, id int64) (*models.Budget, error)
	GetByCategory(ctx context.Context, category string) (*models.Budget, error)
	List(ctx context.Context) ([]models.Budget, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetPrimary returns the oldest user, who owns the dashboard
	GetPrimary(ctx context.Context) (*models.User, error)
}

// NetWorthRepositoryInterface defines the contract for net worth history operations
type NetWorthRepositoryInterface interface {
	// Upsert stores the snapshot, replacing the value of an existing snapshot on the same date
	Upsert(ctx context.Context, snapshot *models.NetWorthSnapshot) error
	// ListRecent returns up to limit of the latest snapshots, oldest first
	ListRecent(ctx context.Context, limit int) ([]models.NetWorthSnapshot, error)
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// CreateBatch creates several accounts in one statement
func (r *accountRepository) CreateBatch(ctx context.Context, accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&accounts).Error; err != nil {
		return fmt.Errorf("failed to create accounts: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// List retrieves all accounts in creation order
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update saves every field of the account and carries a renamed account's
// name over to its transactions.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ? AND account <> ?", account.ID, account.Name).
			UpdateColumn("account", account.Name).Error; err != nil {
			return fmt.Errorf("failed to rename account on transactions: %w", err)
		}

		return nil
	})
}

// Delete removes the account together with its transactions and returns the
// record as it was before deletion.
func (r *accountRepository) Delete(ctx context.Context, id int64) (*models.Account, error) {
	var deleted models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		if err := tx.Where("account_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete account transactions: %w", err)
		}

		if err := tx.Delete(&models.Account{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}

// Count returns the number of accounts
func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

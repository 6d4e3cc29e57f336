package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	cache       DashboardCache
	logger      *slog.Logger
}

// NewAccountService creates an account service. Writes invalidate the
// dashboard cache when one is given.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	cache DashboardCache,
	logger *slog.Logger,
) AccountServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		accountRepo: accountRepo,
		cache:       cache,
		logger:      logger,
	}
}

// ListAccounts returns every account
func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns a single account
func (s *accountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// CreateAccount stores a new account; the account number is masked on write
func (s *accountService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*models.Account, error) {
	account := req.ToModel()
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"type", account.Type,
		"institution", account.Institution)
	s.invalidateDashboard(ctx)

	return account, nil
}

// UpdateAccount applies a partial update
func (s *accountService) UpdateAccount(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*models.Account, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(account)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info("account updated", "account_id", account.ID)
	s.invalidateDashboard(ctx)

	return account, nil
}

// DeleteAccount removes the account and its transactions
func (s *accountService) DeleteAccount(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted", "account_id", account.ID, "name", account.Name)
	s.invalidateDashboard(ctx)

	return account, nil
}

func (s *accountService) invalidateDashboard(ctx context.Context) {
	invalidateDashboard(ctx, s.cache, s.logger)
}

// invalidateDashboard drops the cached dashboard. Cache failures are logged
// and never fail the write that triggered them.
func invalidateDashboard(ctx context.Context, cache DashboardCache, logger *slog.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate dashboard cache", "error", err)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cache           DashboardCache
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service. metrics and cache may be nil.
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	cache DashboardCache,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &transactionService{
		transactionRepo: transactionRepo,
		cache:           cache,
		metrics:         metrics,
		logger:          logger,
	}
}

// ListTransactions normalizes paging on query and returns the requested page.
// A nil query lists the first page with default paging.
func (s *transactionService) ListTransactions(ctx context.Context, query *dto.TransactionQuery) ([]models.Transaction, int64, error) {
	if query == nil {
		query = &dto.TransactionQuery{}
	}
	query.Normalize()

	filters, err := query.Filters()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(filters.StartDate.Time) {
		return nil, 0, fmt.Errorf("%w: end date is before start date", ErrInvalidQuery)
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// GetTransaction returns a single transaction
func (s *transactionService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// CreateTransaction records a transaction against an existing account. The
// account display name is taken from the account, not the request.
func (s *transactionService) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	start := time.Now()
	transaction := req.ToModel()

	if err := s.transactionRepo.CreateAndApply(ctx, transaction); err != nil {
		s.recordCreate("failed", time.Since(start))
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrUnknownAccount
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.recordCreate("success", time.Since(start))

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"account_id", transaction.AccountID,
		"category", transaction.Category,
		"amount", transaction.Amount.String())
	invalidateDashboard(ctx, s.cache, s.logger)

	return transaction, nil
}

func (s *transactionService) recordCreate(status string, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("transactions_created_total", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("transaction_create", duration)
}

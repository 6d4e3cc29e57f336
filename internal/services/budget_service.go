package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	logger     *slog.Logger
}

// NewBudgetService creates a budget service
func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface, logger *slog.Logger) BudgetServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &budgetService{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget stores a budget with remaining and percentUsed derived from
// the request. Only one budget may exist per category.
func (s *budgetService) CreateBudget(ctx context.Context, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	budget := req.ToModel()
	budget.Category = strings.TrimSpace(budget.Category)

	existing, err := s.budgetRepo.GetByCategory(ctx, budget.Category)
	if err != nil && !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if existing != nil {
		return nil, ErrBudgetExists
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetExists) {
			return nil, ErrBudgetExists
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.logger.Info("budget created",
		"budget_id", budget.ID,
		"category", budget.Category,
		"percent_used", budget.PercentUsed,
		"status", budget.Status())

	return budget, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) CreateBatch(ctx context.Context, budgets []models.Budget) error {
	if len(budgets) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&budgets).Error; err != nil {
		return fmt.Errorf("failed to create budgets: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id int64) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) GetByCategory(ctx context.Context, category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) List(ctx context.Context) ([]models.Budget, error) {
	budgets := []models.Budget{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

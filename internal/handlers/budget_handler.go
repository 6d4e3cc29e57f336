package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// ListBudgets returns every budget
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.APIResponse[[]models.Budget]
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetService.ListBudgets(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAPIResponse(budgets))
}

// CreateBudget stores a budget for a category that has none yet
// @Summary Create a budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.APIResponse[models.Budget]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Budget already exists"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrBudgetExists):
			return SendError(c, errors.BudgetAlreadyExists)
		case stderrors.Is(err, models.ErrBudgetNegativeAmount):
			return SendError(c, errors.BudgetInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.APIResponse[models.Budget]{
		Data:    *budget,
		Message: "Budget created",
	})
}

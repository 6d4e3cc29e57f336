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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions returns one page of transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param category query string false "Exact category"
// @Param accountId query int false "Account ID"
// @Param search query string false "Merchant or notes substring"
// @Param startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param endDate query string false "Latest date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PaginatedResponse[models.Transaction]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	transactions, total, err := h.transactionService.ListTransactions(c.Request().Context(), &query)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidQuery) {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPaginatedResponse(transactions, query.Page, query.PerPage, total))
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse[models.Transaction]
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, ok, err := parseID(c, "id")
	if !ok {
		return err
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), id)
	if err != nil {
		if stderrors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAPIResponse(*transaction))
}

// CreateTransaction records a transaction and adjusts its account balance
// @Summary Create a transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.APIResponse[models.Transaction]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Unknown account"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUnknownAccount):
			return SendError(c, errors.TransactionUnknownAccount)
		case stderrors.Is(err, models.ErrTransactionMerchantMissing),
			stderrors.Is(err, models.ErrTransactionCategoryMissing),
			stderrors.Is(err, models.ErrTransactionDateMissing),
			stderrors.Is(err, models.ErrTransactionAccountMissing):
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.APIResponse[models.Transaction]{
		Data:    *transaction,
		Message: "Transaction created",
	})
}

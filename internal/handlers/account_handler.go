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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns every account in creation order
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.APIResponse[[]models.Account]
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAPIResponse(accounts))
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse[models.Account]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, ok, err := parseID(c, "id")
	if !ok {
		return err
	}

	account, err := h.accountService.GetAccount(c.Request().Context(), id)
	if err != nil {
		return h.sendAccountError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAPIResponse(*account))
}

// CreateAccount stores a new account
// @Summary Create an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.APIResponse[models.Account]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), &req)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.APIResponse[models.Account]{
		Data:    *account,
		Message: "Account created",
	})
}

// UpdateAccount applies a partial update; omitted fields are unchanged
// @Summary Update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse[models.Account]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, ok, err := parseID(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), id, &req)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return c.JSON(http.StatusOK, dto.APIResponse[models.Account]{
		Data:    *account,
		Message: "Account updated",
	})
}

// DeleteAccount removes an account together with its transactions
// @Summary Delete an account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse[models.Account] "The deleted account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, ok, err := parseID(c, "id")
	if !ok {
		return err
	}

	account, err := h.accountService.DeleteAccount(c.Request().Context(), id)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return c.JSON(http.StatusOK, dto.APIResponse[models.Account]{
		Data:    *account,
		Message: "Account deleted",
	})
}

func (h *AccountHandler) sendAccountError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrEmptyUpdate):
		return SendError(c, errors.AccountInvalidInput, errors.WithDetails("No fields to update"))
	case stderrors.Is(err, models.ErrInvalidAccountType):
		return SendError(c, errors.AccountInvalidType)
	case stderrors.Is(err, models.ErrAccountNameMissing):
		return SendError(c, errors.AccountInvalidInput, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

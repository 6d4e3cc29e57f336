package client

import (
	"context"
	"fmt"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
)

func accountPath(id int64) string {
	return fmt.Sprintf("/accounts/%d", id)
}

// GetAccounts lists every account
func (c *Client) GetAccounts(ctx context.Context, opts ...RequestOption) (dto.APIResponse[[]models.Account], error) {
	return request[dto.APIResponse[[]models.Account]](ctx, c, http.MethodGet, "/accounts", nil, opts)
}

// GetAccount fetches one account. A missing id yields a 404 *APIError.
func (c *Client) GetAccount(ctx context.Context, id int64, opts ...RequestOption) (dto.APIResponse[models.Account], error) {
	return request[dto.APIResponse[models.Account]](ctx, c, http.MethodGet, accountPath(id), nil, opts)
}

// CreateAccount creates an account and returns it as stored, with the
// account number masked
func (c *Client) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, opts ...RequestOption) (dto.APIResponse[models.Account], error) {
	return request[dto.APIResponse[models.Account]](ctx, c, http.MethodPost, "/accounts", req, opts)
}

// UpdateAccount sends a partial update; only the set fields are serialized
func (c *Client) UpdateAccount(ctx context.Context, id int64, req dto.UpdateAccountRequest, opts ...RequestOption) (dto.APIResponse[models.Account], error) {
	return request[dto.APIResponse[models.Account]](ctx, c, http.MethodPut, accountPath(id), req, opts)
}

// DeleteAccount returns the deleted account as the server reports it
func (c *Client) DeleteAccount(ctx context.Context, id int64, opts ...RequestOption) (dto.APIResponse[models.Account], error) {
	return request[dto.APIResponse[models.Account]](ctx, c, http.MethodDelete, accountPath(id), nil, opts)
}

// GetTransactions lists one page of transactions. A nil or all-zero query
// sends no query string.
func (c *Client) GetTransactions(ctx context.Context, query *dto.TransactionQuery, opts ...RequestOption) (dto.PaginatedResponse[models.Transaction], error) {
	path := "/transactions"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return request[dto.PaginatedResponse[models.Transaction]](ctx, c, http.MethodGet, path, nil, opts)
}

// GetTransaction fetches one transaction by id
func (c *Client) GetTransaction(ctx context.Context, id int64, opts ...RequestOption) (dto.APIResponse[models.Transaction], error) {
	return request[dto.APIResponse[models.Transaction]](ctx, c, http.MethodGet, fmt.Sprintf("/transactions/%d", id), nil, opts)
}

// CreateTransaction records a transaction against req.AccountID. The server
// applies the amount to that account's balance.
func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, opts ...RequestOption) (dto.APIResponse[models.Transaction], error) {
	return request[dto.APIResponse[models.Transaction]](ctx, c, http.MethodPost, "/transactions", req, opts)
}

// GetBudgets lists every budget with its derived remaining and percent used
func (c *Client) GetBudgets(ctx context.Context, opts ...RequestOption) (dto.APIResponse[[]models.Budget], error) {
	return request[dto.APIResponse[[]models.Budget]](ctx, c, http.MethodGet, "/budgets", nil, opts)
}

// CreateBudget creates a budget for a category that has none yet
func (c *Client) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, opts ...RequestOption) (dto.APIResponse[models.Budget], error) {
	return request[dto.APIResponse[models.Budget]](ctx, c, http.MethodPost, "/budgets", req, opts)
}

// GetDashboard fetches the aggregated dashboard
func (c *Client) GetDashboard(ctx context.Context, opts ...RequestOption) (dto.APIResponse[models.Dashboard], error) {
	return request[dto.APIResponse[models.Dashboard]](ctx, c, http.MethodGet, "/dashboard", nil, opts)
}

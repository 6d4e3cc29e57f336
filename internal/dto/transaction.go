package dto

import (
	"net/url"
	"strconv"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	// MaxPage keeps (page-1)*perPage well inside int range
	MaxPage = 1_000_000
)

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Date      models.Date     `json:"date" validate:"required"`
	Merchant  string          `json:"merchant" validate:"required,min=1,max=255"`
	Category  string          `json:"category" validate:"required,min=1,max=100,category"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	AccountID int64           `json:"accountId" validate:"required,gt=0"`
	Notes     string          `json:"notes,omitempty" validate:"max=1000"`
	Tags      []string        `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// ToModel converts the request into a transaction. The account display name
// is filled in by the service from the referenced account.
func (r CreateTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		Date:      r.Date,
		Merchant:  r.Merchant,
		Category:  r.Category,
		Amount:    r.Amount,
		AccountID: r.AccountID,
		Notes:     r.Notes,
		Tags:      r.Tags,
	}
}

// TransactionQuery filters and pages GET /transactions.
// Zero-valued fields are not sent.
type TransactionQuery struct {
	Category  string `query:"category"`
	AccountID int64  `query:"accountId"`
	Search    string `query:"search"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Page      int    `query:"page"`
	PerPage   int    `query:"perPage"`
}

// Values encodes the non-zero fields as query parameters
func (q *TransactionQuery) Values() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.AccountID != 0 {
		values.Set("accountId", strconv.FormatInt(q.AccountID, 10))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	if q.Page != 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage != 0 {
		values.Set("perPage", strconv.Itoa(q.PerPage))
	}

	return values
}

// Encode returns the query string without the leading "?"
func (q *TransactionQuery) Encode() string {
	return q.Values().Encode()
}

// Normalize applies paging defaults and caps
func (q *TransactionQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

// Filters converts the query into repository filters. Dates that fail to
// parse are returned as an error.
func (q *TransactionQuery) Filters() (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Category:  q.Category,
		AccountID: q.AccountID,
		Search:    q.Search,
		Offset:    (q.Page - 1) * q.PerPage,
		Limit:     q.PerPage,
	}

	if q.StartDate != "" {
		d, err := models.ParseDate(q.StartDate)
		if err != nil {
			return filters, err
		}
		filters.StartDate = &d
	}
	if q.EndDate != "" {
		d, err := models.ParseDate(q.EndDate)
		if err != nil {
			return filters, err
		}
		filters.EndDate = &d
	}

	return filters, nil
}

package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionMerchantMissing = errors.New("merchant is required")
	ErrTransactionCategoryMissing = errors.New("category is required")
	ErrTransactionDateMissing     = errors.New("date is required")
	ErrTransactionAccountMissing  = errors.New("account ID is required")
)

// Transaction is a single movement of money. Positive amounts are inflows,
// negative amounts are outflows.
type Transaction struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      Date            `gorm:"type:date;not null;index" json:"date"`
	Merchant  string          `gorm:"type:varchar(255);not null" json:"merchant"`
	Category  string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Account   string          `gorm:"type:varchar(100);not null" json:"account"`
	AccountID int64           `gorm:"not null;index" json:"accountId"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	Tags      []string        `gorm:"type:text;serializer:json" json:"tags,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Merchant) == "" {
		return ErrTransactionMerchantMissing
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrTransactionCategoryMissing
	}
	if t.Date.IsZero() {
		return ErrTransactionDateMissing
	}
	if t.AccountID == 0 {
		return ErrTransactionAccountMissing
	}
	return nil
}

// IsInflow reports whether the transaction adds money
func (t *Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

// TransactionFilters narrows transaction listings
type TransactionFilters struct {
	Category  string
	AccountID int64
	Search    string
	StartDate *Date
	EndDate   *Date
	Offset    int
	Limit     int
}

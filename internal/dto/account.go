package dto

import (
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name          string             `json:"name" validate:"required,min=1,max=100"`
	Balance       decimal.Decimal    `json:"balance"`
	AccountNumber string             `json:"accountNumber" validate:"required,max=32"`
	Institution   string             `json:"institution" validate:"required,min=1,max=100"`
	Type          models.AccountType `json:"type" validate:"required,account_type"`
	Currency      string             `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// ToModel converts the request into a new account record
func (r CreateAccountRequest) ToModel() *models.Account {
	return &models.Account{
		Name:          r.Name,
		Balance:       r.Balance,
		AccountNumber: r.AccountNumber,
		Institution:   r.Institution,
		Type:          r.Type,
		Currency:      r.Currency,
	}
}

// UpdateAccountRequest is a partial update; nil fields are left unchanged
type UpdateAccountRequest struct {
	Name          *string             `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Balance       *decimal.Decimal    `json:"balance,omitempty"`
	AccountNumber *string             `json:"accountNumber,omitempty" validate:"omitempty,max=32"`
	Institution   *string             `json:"institution,omitempty" validate:"omitempty,min=1,max=100"`
	Type          *models.AccountType `json:"type,omitempty" validate:"omitempty,account_type"`
	Currency      *string             `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// IsEmpty reports whether the update changes nothing
func (r UpdateAccountRequest) IsEmpty() bool {
	return r.Name == nil && r.Balance == nil && r.AccountNumber == nil &&
		r.Institution == nil && r.Type == nil && r.Currency == nil
}

// Apply copies the set fields onto account
func (r UpdateAccountRequest) Apply(account *models.Account) {
	if r.Name != nil {
		account.Name = *r.Name
	}
	if r.Balance != nil {
		account.Balance = *r.Balance
	}
	if r.AccountNumber != nil {
		account.AccountNumber = models.MaskAccountNumber(*r.AccountNumber)
	}
	if r.Institution != nil {
		account.Institution = *r.Institution
	}
	if r.Type != nil {
		account.Type = *r.Type
	}
	if r.Currency != nil {
		account.Currency = *r.Currency
	}
}

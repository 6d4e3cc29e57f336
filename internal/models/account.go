package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType classifies an account. The set is closed.
type AccountType string

const (
	AccountTypeDepository AccountType = "depository"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeProperty   AccountType = "property"
	AccountTypeVehicle    AccountType = "vehicle"
	AccountTypeCrypto     AccountType = "crypto"

	DefaultCurrency = "USD"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameMissing = errors.New("account name is required")
)

// AllAccountTypes returns every account type in display order
func AllAccountTypes() []AccountType {
	return []AccountType{
		AccountTypeDepository,
		AccountTypeInvestment,
		AccountTypeCredit,
		AccountTypeLoan,
		AccountTypeProperty,
		AccountTypeVehicle,
		AccountTypeCrypto,
	}
}

// IsValid reports whether t is one of the known account types
func (t AccountType) IsValid() bool {
	for _, valid := range AllAccountTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// IsLiability reports whether balances of this type are carried as debts
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// Account is a financial account. Positive balances are assets, negative
// balances are liabilities.
type Account struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	AccountNumber string          `gorm:"type:varchar(32);not null" json:"accountNumber"`
	Institution   string          `gorm:"type:varchar(100);not null" json:"institution"`
	Type          AccountType     `gorm:"type:varchar(20);not null;index" json:"type"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}
	a.AccountNumber = MaskAccountNumber(a.AccountNumber)

	now := time.Now().UTC()
	if a.CreatedAt == nil {
		a.CreatedAt = &now
	}
	if a.UpdatedAt == nil {
		a.UpdatedAt = &now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now().UTC()
	a.UpdatedAt = &now
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameMissing
	}
	if !a.Type.IsValid() {
		return ErrInvalidAccountType
	}
	return nil
}

// IsLiability reports whether the account currently represents a debt
func (a *Account) IsLiability() bool {
	return a.Balance.IsNegative()
}

// DisplayBalance is the balance without its sign, as shown on account cards
func (a *Account) DisplayBalance() decimal.Decimal {
	return a.Balance.Abs()
}

// MaskAccountNumber keeps only the last four characters of an account number.
// Numbers that are already masked are returned unchanged.
func MaskAccountNumber(accountNumber string) string {
	if strings.HasPrefix(accountNumber, "****") {
		return accountNumber
	}
	if len(accountNumber) <= 4 {
		return "****"
	}
	return "****" + accountNumber[len(accountNumber)-4:]
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid depository account",
			account: Account{
				Name:          "Chase Checking",
				Balance:       decimal.NewFromFloat(5420.00),
				AccountNumber: "****1234",
				Institution:   "Chase",
				Type:          AccountTypeDepository,
			},
		},
		{
			name: "valid loan with negative balance",
			account: Account{
				Name:          "Mortgage",
				Balance:       decimal.NewFromInt(-350000),
				AccountNumber: "****4567",
				Institution:   "Wells Fargo",
				Type:          AccountTypeLoan,
			},
		},
		{
			name: "missing name",
			account: Account{
				Name: "   ",
				Type: AccountTypeCredit,
			},
			wantErr: ErrAccountNameMissing,
		},
		{
			name: "unknown type",
			account: Account{
				Name: "Piggy Bank",
				Type: "piggy",
			},
			wantErr: ErrInvalidAccountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAccountType_IsValid(t *testing.T) {
	for _, accountType := range AllAccountTypes() {
		assert.True(t, accountType.IsValid(), accountType)
	}
	assert.False(t, AccountType("checking").IsValid())
	assert.False(t, AccountType("").IsValid())
}

func TestAccountType_IsLiability(t *testing.T) {
	assert.True(t, AccountTypeCredit.IsLiability())
	assert.True(t, AccountTypeLoan.IsLiability())
	assert.False(t, AccountTypeDepository.IsLiability())
	assert.False(t, AccountTypeInvestment.IsLiability())
	assert.False(t, AccountTypeProperty.IsLiability())
}

func TestAccount_DisplayBalance(t *testing.T) {
	account := Account{Balance: decimal.NewFromFloat(-3420.00)}

	assert.True(t, account.IsLiability())
	assert.True(t, account.DisplayBalance().Equal(decimal.NewFromInt(3420)))
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234567890", "****7890"},
		{"****1234", "****1234"},
		{"1234", "****"},
		{"", "****"},
		{"12345", "****2345"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskAccountNumber(tt.input))
		})
	}
}

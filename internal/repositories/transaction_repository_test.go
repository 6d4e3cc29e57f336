package repositories

import (
	"context"
	"testing"
	"time"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	ctx      context.Context
	db       *database.DB
	repo     TransactionRepositoryInterface
	checking *models.Account
	credit   *models.Account
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	s.checking = database.CreateTestAccount(s.T(), s.db, "Chase Checking", models.AccountTypeDepository, decimal.NewFromInt(5420))
	s.credit = database.CreateTestAccount(s.T(), s.db, "Chase Sapphire", models.AccountTypeCredit, decimal.NewFromInt(-3420))

	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Transaction{
		s.tx(2025, 10, 25, "Whole Foods", models.CategoryGroceries, "-125.43", s.checking),
		s.tx(2025, 10, 24, "Shell Gas Station", models.CategoryTransportation, "-55.00", s.checking),
		s.tx(2025, 10, 23, "Amazon", models.CategoryShopping, "-89.99", s.credit),
		s.tx(2025, 10, 22, "Salary Deposit", models.CategoryIncome, "5000.00", s.checking),
		s.tx(2025, 10, 21, "Netflix", models.CategoryEntertainment, "-15.99", s.credit),
		s.tx(2025, 10, 20, "Starbucks", models.CategoryFoodAndDrink, "-6.50", s.checking),
	}))
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) tx(y, m, d int, merchant, category, amount string, account *models.Account) models.Transaction {
	return models.Transaction{
		Date:      models.NewDate(y, time.Month(m), d),
		Merchant:  merchant,
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		Account:   account.Name,
		AccountID: account.ID,
	}
}

func (s *TransactionRepositorySuite) TestGetWithFilters_NewestFirst() {
	transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{Limit: 20})

	s.NoError(err)
	s.Equal(int64(6), total)
	s.Require().Len(transactions, 6)
	s.Equal("Whole Foods", transactions[0].Merchant)
	s.Equal("Starbucks", transactions[5].Merchant)
	s.Equal("2025-10-25", transactions[0].Date.String())
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Category() {
	transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{Category: models.CategoryGroceries})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.True(transactions[0].Amount.Equal(decimal.RequireFromString("-125.43")))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_AccountAndSearch() {
	transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{AccountID: s.credit.ID})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(transactions, 2)

	transactions, total, err = s.repo.GetWithFilters(s.ctx, models.TransactionFilters{Search: "  NETFLIX "})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Netflix", transactions[0].Merchant)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_DateRange() {
	start := models.NewDate(2025, 10, 21)
	end := models.NewDate(2025, 10, 23)

	transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{StartDate: &start, EndDate: &end})

	s.NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(transactions, 3)
	s.Equal("Amazon", transactions[0].Merchant)
	s.Equal("Netflix", transactions[2].Merchant)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Pagination() {
	transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{Offset: 4, Limit: 4})

	s.NoError(err)
	s.Equal(int64(6), total)
	s.Require().Len(transactions, 2)
	s.Equal("Netflix", transactions[0].Merchant)
}

func (s *TransactionRepositorySuite) TestCreateAndApply_AdjustsBalance() {
	transaction := &models.Transaction{
		Date:      models.NewDate(2025, 10, 26),
		Merchant:  "Trader Joe's",
		Category:  models.CategoryGroceries,
		Amount:    decimal.RequireFromString("-20.00"),
		AccountID: s.checking.ID,
	}

	err := s.repo.CreateAndApply(s.ctx, transaction)

	s.NoError(err)
	s.NotZero(transaction.ID)
	s.Equal("Chase Checking", transaction.Account)

	var account models.Account
	s.Require().NoError(s.db.First(&account, s.checking.ID).Error)
	s.True(account.Balance.Equal(decimal.NewFromInt(5400)), account.Balance.String())
}

func (s *TransactionRepositorySuite) TestCreateAndApply_UnknownAccount() {
	transaction := &models.Transaction{
		Date:      models.NewDate(2025, 10, 26),
		Merchant:  "Ghost",
		Category:  models.CategoryShopping,
		Amount:    decimal.NewFromInt(-1),
		AccountID: 9999,
	}

	err := s.repo.CreateAndApply(s.ctx, transaction)

	s.ErrorIs(err, ErrAccountNotFound)
	s.Zero(transaction.ID)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	transactions, _, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{Limit: 1})
	s.Require().NoError(err)

	found, err := s.repo.GetByID(s.ctx, transactions[0].ID)
	s.NoError(err)
	s.Equal(transactions[0].Merchant, found.Merchant)

	_, err = s.repo.GetByID(s.ctx, 12345)
	s.ErrorIs(err, ErrTransactionNotFound)
}

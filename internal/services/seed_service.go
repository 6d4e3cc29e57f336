package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

// SeedTimeout bounds how long startup seeding may take
const SeedTimeout = 30 * time.Second

type seedService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	netWorthRepo    repositories.NetWorthRepositoryInterface
	generator       TransactionGeneratorInterface
	config          config.SeedConfig
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSeedService creates the demo data seeder. generator and metrics may be
// nil; without a generator no history is generated.
func NewSeedService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	netWorthRepo repositories.NetWorthRepositoryInterface,
	generator TransactionGeneratorInterface,
	cfg config.SeedConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &seedService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		userRepo:        userRepo,
		netWorthRepo:    netWorthRepo,
		generator:       generator,
		config:          cfg,
		metrics:         metrics,
		logger:          logger,
	}
}

// Seed writes the demo user, accounts, transactions, budgets and net worth
// history. Demo transactions are stored as history and do not move the
// demo balances, which already include them.
func (s *seedService) Seed(ctx context.Context) (bool, error) {
	if !s.config.Enabled {
		return false, nil
	}

	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		s.logger.Info("database already has accounts, skipping seed", "accounts", count)
		return false, nil
	}

	user := DemoUser()
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return false, fmt.Errorf("failed to seed user: %w", err)
	}

	accounts := DemoAccounts()
	if err := s.accountRepo.CreateBatch(ctx, accounts); err != nil {
		return false, fmt.Errorf("failed to seed accounts: %w", err)
	}

	transactions, err := s.buildTransactions(accounts)
	if err != nil {
		return false, err
	}
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return false, fmt.Errorf("failed to seed transactions: %w", err)
	}

	budgets := DemoBudgets()
	if err := s.budgetRepo.CreateBatch(ctx, budgets); err != nil {
		return false, fmt.Errorf("failed to seed budgets: %w", err)
	}

	history := DemoNetWorthHistory()
	for i := range history {
		if err := s.netWorthRepo.Upsert(ctx, &history[i]); err != nil {
			return false, fmt.Errorf("failed to seed net worth history: %w", err)
		}
	}

	s.record("accounts", len(accounts))
	s.record("transactions", len(transactions))
	s.record("budgets", len(budgets))
	s.record("net_worth_snapshots", len(history))

	s.logger.Info("seeded demo data",
		"user", user.Email,
		"accounts", len(accounts),
		"transactions", len(transactions),
		"budgets", len(budgets),
		"net_worth_snapshots", len(history))

	return true, nil
}

// buildTransactions resolves demo transactions to the stored accounts and
// appends generated history for depository accounts when configured
func (s *seedService) buildTransactions(accounts []models.Account) ([]models.Transaction, error) {
	byName := make(map[string]*models.Account, len(accounts))
	for i := range accounts {
		byName[accounts[i].Name] = &accounts[i]
	}

	demo := demoTransactions()
	transactions := make([]models.Transaction, 0, len(demo))
	for _, d := range demo {
		account, ok := byName[d.account]
		if !ok {
			return nil, fmt.Errorf("demo transaction references unknown account %q", d.account)
		}
		transactions = append(transactions, models.Transaction{
			Date:      d.date,
			Merchant:  d.merchant,
			Category:  d.category,
			Amount:    decimal.RequireFromString(d.amount),
			Account:   account.Name,
			AccountID: account.ID,
		})
	}

	if s.generator == nil || s.config.GeneratedMonths <= 0 {
		return transactions, nil
	}

	// generated history ends where the demo transactions begin
	end := demo[len(demo)-1].date.Time
	start := end.AddDate(0, -s.config.GeneratedMonths, 0)
	for i := range accounts {
		if accounts[i].Type != models.AccountTypeDepository {
			continue
		}
		transactions = append(transactions, s.generator.GenerateHistory(&accounts[i], start, end)...)
	}

	return transactions, nil
}

func (s *seedService) record(entity string, n int) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordGauge("seeded_records", float64(n), map[string]string{"entity": entity})
}

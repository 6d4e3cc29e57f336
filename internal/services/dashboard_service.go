package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// NetWorthHistoryPoints is how many snapshots the dashboard chart shows
const NetWorthHistoryPoints = 6

type dashboardService struct {
	userRepo     repositories.UserRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	netWorthRepo repositories.NetWorthRepositoryInterface
	cache        DashboardCache
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

// NewDashboardService creates the dashboard service. cache and metrics may be nil.
func NewDashboardService(
	userRepo repositories.UserRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	netWorthRepo repositories.NetWorthRepositoryInterface,
	cache DashboardCache,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &dashboardService{
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		netWorthRepo: netWorthRepo,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// GetDashboard returns the cached dashboard or assembles a fresh one from the
// primary user, every account and the recent net worth history.
func (s *dashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	start := time.Now()
	versioned, _ := s.cache.(versionedDashboardCache)
	var version uint64
	if versioned != nil {
		version = versioned.Version()
	}

	var (
		user      *models.User
		accounts  []models.Account
		snapshots []models.NetWorthSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.userRepo.GetPrimary(gctx)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		user = u
		return nil
	})

	g.Go(func() error {
		list, err := s.accountRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		accounts = list
		return nil
	})

	g.Go(func() error {
		history, err := s.netWorthRepo.ListRecent(gctx, NetWorthHistoryPoints)
		if err != nil {
			return fmt.Errorf("failed to load net worth history: %w", err)
		}
		snapshots = history
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := s.assemble(user, accounts, snapshots)

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("dashboard_build", time.Since(start))
		s.metrics.RecordGauge("net_worth", dashboard.BalanceSheet.NetWorth.InexactFloat64(), nil)
	}

	s.store(ctx, versioned, version, dashboard)

	return dashboard, nil
}

// versionedDashboardCache is implemented by caches that can refuse a write
// made stale by a concurrent invalidation.
type versionedDashboardCache interface {
	Version() uint64
	SetIfVersion(ctx context.Context, version uint64, dashboard *models.Dashboard) (bool, error)
}

func (s *dashboardService) store(ctx context.Context, versioned versionedDashboardCache, version uint64, dashboard *models.Dashboard) {
	if s.cache == nil {
		return
	}

	if versioned == nil {
		if err := s.cache.Set(ctx, dashboard); err != nil {
			s.logger.Warn("failed to cache dashboard", "error", err)
		}
		return
	}

	stored, err := versioned.SetIfVersion(ctx, version, dashboard)
	if err != nil {
		s.logger.Warn("failed to cache dashboard", "error", err)
		return
	}
	if !stored {
		s.logger.Debug("dashboard changed while building, not cached")
	}
}

func (s *dashboardService) assemble(user *models.User, accounts []models.Account, snapshots []models.NetWorthSnapshot) *models.Dashboard {
	if accounts == nil {
		accounts = []models.Account{}
	}

	now := s.now().UTC()
	asOf := models.NewDate(now.Year(), now.Month(), now.Day())
	balanceSheet := models.NewBalanceSheet(accounts, &asOf)

	netWorth := models.NewNetWorthData(snapshots)
	if len(snapshots) == 0 {
		netWorth.Current = balanceSheet.NetWorth
	}

	return &models.Dashboard{
		User:         user,
		NetWorth:     netWorth,
		BalanceSheet: balanceSheet,
		Accounts:     accounts,
	}
}

func (s *dashboardService) fromCache(ctx context.Context) *models.Dashboard {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("dashboard cache unavailable", "error", err)
		return nil
	}
	if cached != nil && s.metrics != nil {
		s.metrics.IncrementCounter("dashboard_cache_hits_total", nil)
	}
	return cached
}

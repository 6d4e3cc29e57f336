package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userRepo     *repository_mocks.MockUserRepositoryInterface
	accountRepo  *repository_mocks.MockAccountRepositoryInterface
	netWorthRepo *repository_mocks.MockNetWorthRepositoryInterface
	cache        *service_mocks.MockDashboardCache
	service      *dashboardService
}

func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.netWorthRepo = repository_mocks.NewMockNetWorthRepositoryInterface(s.ctrl)
	s.cache = service_mocks.NewMockDashboardCache(s.ctrl)
	s.service = NewDashboardService(s.userRepo, s.accountRepo, s.netWorthRepo, s.cache, nil, slog.Default()).(*dashboardService)
	s.service.now = func() time.Time { return time.Date(2025, 10, 26, 15, 0, 0, 0, time.UTC) }
}

func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) expectReads(user *models.User, userErr error, accounts []models.Account, history []models.NetWorthSnapshot) {
	s.userRepo.EXPECT().GetPrimary(gomock.Any()).Return(user, userErr)
	s.accountRepo.EXPECT().List(gomock.Any()).Return(accounts, nil)
	s.netWorthRepo.EXPECT().ListRecent(gomock.Any(), NetWorthHistoryPoints).Return(history, nil)
}

func (s *DashboardServiceSuite) TestGetDashboard_AssemblesOnCacheMiss() {
	user := DemoUser()
	accounts := DemoAccounts()
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	s.expectReads(&user, nil, accounts, DemoNetWorthHistory())
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	dashboard, err := s.service.GetDashboard(context.Background())

	s.Require().NoError(err)
	s.Equal("John", dashboard.User.FirstName)
	s.Len(dashboard.Accounts, 6)
	s.True(dashboard.BalanceSheet.Assets.Equal(decimal.NewFromInt(117920)))
	s.True(dashboard.BalanceSheet.Liabilities.Equal(decimal.NewFromInt(353420)))
	s.True(dashboard.BalanceSheet.NetWorth.Equal(decimal.NewFromInt(-235500)))
	s.Equal("2025-10-26", dashboard.BalanceSheet.Date.String())
	s.True(dashboard.NetWorth.Current.Equal(decimal.NewFromInt(125000)))
	s.True(dashboard.NetWorth.Change.Equal(decimal.RequireFromString("4.2")))
	s.Len(dashboard.NetWorth.ChartData, 6)
	s.Equal("Jan", dashboard.NetWorth.ChartData[0].Date)
}

func (s *DashboardServiceSuite) TestGetDashboard_CacheHit() {
	cached := &models.Dashboard{Accounts: []models.Account{{ID: 1}}}
	s.cache.EXPECT().Get(gomock.Any()).Return(cached, nil)

	dashboard, err := s.service.GetDashboard(context.Background())

	s.NoError(err)
	s.Same(cached, dashboard)
}

func (s *DashboardServiceSuite) TestGetDashboard_CacheErrorFallsThrough() {
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	s.expectReads(nil, repositories.ErrUserNotFound, []models.Account{}, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	dashboard, err := s.service.GetDashboard(context.Background())

	s.NoError(err)
	s.Nil(dashboard.User)
	s.NotNil(dashboard.Accounts)
	s.Empty(dashboard.NetWorth.ChartData)
	s.True(dashboard.NetWorth.Current.IsZero())
}

func (s *DashboardServiceSuite) TestGetDashboard_NoHistoryUsesBalanceSheet() {
	accounts := []models.Account{
		{ID: 1, Name: "Checking", Balance: decimal.NewFromInt(1000), Type: models.AccountTypeDepository},
		{ID: 2, Name: "Card", Balance: decimal.NewFromInt(-250), Type: models.AccountTypeCredit},
	}
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	s.expectReads(nil, repositories.ErrUserNotFound, accounts, []models.NetWorthSnapshot{})
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	dashboard, err := s.service.GetDashboard(context.Background())

	s.NoError(err)
	s.True(dashboard.NetWorth.Current.Equal(decimal.NewFromInt(750)))
	s.True(dashboard.NetWorth.Change.IsZero())
}

func (s *DashboardServiceSuite) TestGetDashboard_ReadFailure() {
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	s.userRepo.EXPECT().GetPrimary(gomock.Any()).Return(&models.User{ID: 1}, nil).AnyTimes()
	s.accountRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	s.netWorthRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	dashboard, err := s.service.GetDashboard(context.Background())

	s.Error(err)
	s.Contains(err.Error(), "failed to load accounts")
	s.Nil(dashboard)
}

func TestDashboardService_WithMetricsAndMemoryCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repository_mocks.NewMockUserRepositoryInterface(ctrl)
	accountRepo := repository_mocks.NewMockAccountRepositoryInterface(ctrl)
	netWorthRepo := repository_mocks.NewMockNetWorthRepositoryInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)

	userRepo.EXPECT().GetPrimary(gomock.Any()).Return(nil, repositories.ErrUserNotFound).Times(1)
	accountRepo.EXPECT().List(gomock.Any()).Return(DemoAccounts(), nil).Times(1)
	netWorthRepo.EXPECT().ListRecent(gomock.Any(), NetWorthHistoryPoints).Return(DemoNetWorthHistory(), nil).Times(1)
	metrics.EXPECT().RecordProcessingTime("dashboard_build", gomock.Any()).Times(1)
	metrics.EXPECT().RecordGauge("net_worth", -235500.0, gomock.Any()).Times(1)
	metrics.EXPECT().IncrementCounter("dashboard_cache_hits_total", gomock.Any()).Times(1)

	service := NewDashboardService(userRepo, accountRepo, netWorthRepo, NewMemoryDashboardCache(time.Minute), metrics, nil)

	first, err := service.GetDashboard(context.Background())
	require.NoError(t, err)
	second, err := service.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Accounts, second.Accounts)
	assert.True(t, first.BalanceSheet.NetWorth.Equal(second.BalanceSheet.NetWorth))
}

func TestDashboardService_WriteDuringBuildIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repository_mocks.NewMockUserRepositoryInterface(ctrl)
	accountRepo := repository_mocks.NewMockAccountRepositoryInterface(ctrl)
	netWorthRepo := repository_mocks.NewMockNetWorthRepositoryInterface(ctrl)
	cache := NewVersionedDashboardCache(NewMemoryDashboardCache(time.Minute))
	ctx := context.Background()

	userRepo.EXPECT().GetPrimary(gomock.Any()).Return(nil, repositories.ErrUserNotFound).Times(2)
	netWorthRepo.EXPECT().ListRecent(gomock.Any(), NetWorthHistoryPoints).Return(nil, nil).Times(2)
	gomock.InOrder(
		accountRepo.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Account, error) {
			// an account write commits and invalidates after this read
			stale := DemoAccounts()
			assert.NoError(t, cache.Invalidate(ctx))
			return stale, nil
		}),
		accountRepo.EXPECT().List(gomock.Any()).Return(DemoAccounts()[:1], nil),
	)

	service := NewDashboardService(userRepo, accountRepo, netWorthRepo, cache, nil, nil)

	stale, err := service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, stale.Accounts, len(DemoAccounts()))

	cached, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)

	fresh, err := service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh.Accounts, 1)

	cached, err = cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Len(t, cached.Accounts, 1)
}

func TestVersionedDashboardCache_SetIfVersion(t *testing.T) {
	ctx := context.Background()
	cache := NewVersionedDashboardCache(NewMemoryDashboardCache(time.Minute))

	version := cache.Version()
	require.NoError(t, cache.Invalidate(ctx))

	stored, err := cache.SetIfVersion(ctx, version, &models.Dashboard{})
	require.NoError(t, err)
	assert.False(t, stored)

	stored, err = cache.SetIfVersion(ctx, cache.Version(), &models.Dashboard{User: &models.User{FirstName: "John"}})
	require.NoError(t, err)
	assert.True(t, stored)

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "John", got.User.FirstName)
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"finance-dashboard/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// BreakerState is the position of a CircuitBreaker
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker stops calls to a failing dependency for ResetTimeout after
// MaxFailures consecutive failures, then lets calls through again on trial.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	now               func() time.Time
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	openedAt          time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		now:    time.Now,
		state:  BreakerClosed,
	}
}

// Allow reports whether a call may proceed. An open breaker turns half-open
// once ResetTimeout has passed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerOpen && cb.now().Sub(cb.openedAt) >= cb.config.ResetTimeout {
		cb.state = BreakerHalfOpen
		cb.halfOpenSuccesses = 0
	}
	return cb.state != BreakerOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = BreakerClosed
			cb.failures = 0
		}
	case BreakerClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.open()
	case BreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.open()
		}
	}
}

func (cb *CircuitBreaker) open() {
	cb.state = BreakerOpen
	cb.openedAt = cb.now()
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// GuardedDashboardCache puts a circuit breaker in front of a remote cache so
// an unreachable Redis is skipped instead of being waited on for every request.
// While the breaker is open, reads miss and writes are dropped.
type GuardedDashboardCache struct {
	next    DashboardCache
	breaker *CircuitBreaker
	logger  *slog.Logger
}

func NewGuardedDashboardCache(next DashboardCache, breaker *CircuitBreaker, logger *slog.Logger) *GuardedDashboardCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedDashboardCache{next: next, breaker: breaker, logger: logger}
}

func (c *GuardedDashboardCache) Get(ctx context.Context) (*models.Dashboard, error) {
	if !c.breaker.Allow() {
		return nil, nil
	}
	dashboard, err := c.next.Get(ctx)
	c.record(err)
	return dashboard, err
}

func (c *GuardedDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) error {
	if !c.breaker.Allow() {
		return nil
	}
	err := c.next.Set(ctx, dashboard)
	c.record(err)
	return err
}

// Invalidate is never skipped, even while the breaker is open.
func (c *GuardedDashboardCache) Invalidate(ctx context.Context) error {
	err := c.next.Invalidate(ctx)
	c.record(err)
	return err
}

func (c *GuardedDashboardCache) record(err error) {
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}

	before := c.breaker.State()
	c.breaker.RecordFailure()
	if after := c.breaker.State(); after != before {
		c.logger.Warn("Dashboard cache breaker changed state", "from", before, "to", after, "error", err)
	}
}

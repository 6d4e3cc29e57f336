package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"finance-dashboard/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serve(e *echo.Echo, h echo.HandlerFunc, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 3).Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		rec := serve(e, handler, "192.168.1.100:12345", nil)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := serve(e, handler, "192.168.1.100:12345", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 1).Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.1:1000", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.1:1000", nil).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.2:1000", nil).Code)
}

func TestRateLimiter_ForwardedForUsesFirstHop(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.9:1", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.9"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.9:1", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.10"}).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.9:1", map[string]string{"X-Real-IP": "198.51.100.2"}).Code)
	assert.Equal(t, 2, limiter.visitorCount())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(10, 10)
	now := time.Date(2025, 10, 25, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.limiter("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.limiter("10.0.0.2")
	now = now.Add(2 * time.Minute)

	limiter.cleanup(3 * time.Minute)

	assert.Equal(t, 1, limiter.visitorCount())
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	limiter := NewRateLimiterFromConfig(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 5})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1000, 1000)
	handler := limiter.Middleware()(okHandler)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(e, handler, "172.16.0.1:80", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, limiter.visitorCount())
}

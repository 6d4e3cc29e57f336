package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(headers map[string]string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return seen, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	traceID, rec := s.run(nil)

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesIncomingTraceID() {
	traceID, rec := s.run(map[string]string{TraceIDHeader: "existing-trace-id-12345"})

	s.Equal("existing-trace-id-12345", traceID)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestFallsBackToRequestIDHeader() {
	traceID, _ := s.run(map[string]string{RequestIDHeader: "req-1"})
	s.Equal("req-1", traceID)

	traceID, _ = s.run(map[string]string{RequestIDHeader: "req-1", TraceIDHeader: "trace-2"})
	s.Equal("trace-2", traceID)
}

func (s *RequestIDTestSuite) TestRejectsOversizedTraceID() {
	traceID, _ := s.run(map[string]string{TraceIDHeader: strings.Repeat("a", maxTraceIDLength+1)})

	_, err := uuid.Parse(traceID)
	s.NoError(err)
}

func (s *RequestIDTestSuite) TestUniquePerRequest() {
	first, _ := s.run(nil)
	second, _ := s.run(nil)
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}

func (s *RequestIDTestSuite) TestRequestLogger_IncludesTraceID() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	s.echo.Use(RequestID(), RequestLogger(logger))
	s.echo.GET("/api/budgets", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
	req.Header.Set(TraceIDHeader, "trace-log-1")
	s.echo.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("request", entry["msg"])
	s.Equal("trace-log-1", entry["trace_id"])
	s.Equal("/api/budgets", entry["uri"])
	s.EqualValues(http.StatusNoContent, entry["status"])
}

package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.Equal("ACCOUNT_001", response.Code)
	s.Equal("Account not found", response.Message)
	s.Equal(s.traceID, response.TraceID)
	s.Empty(response.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithMessage("Invalid transaction query"),
		WithDetails("startDate: must be YYYY-MM-DD"),
	)

	s.Equal("Invalid transaction query", response.Message)
	s.Equal([]string{"startDate: must be YYYY-MM-DD"}, response.Details)
}

func (s *ResponseTestSuite) TestWithMessage_LastInvocationWins() {
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage("first"), WithMessage("second"))
	s.Equal("second", response.Message)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError([]string{"name: is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Code)
	s.Equal("Validation failed", response.Message)
	s.Equal([]string{"name: is required"}, response.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internal := errors.New("pq: connection refused on 10.0.0.3")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Code)
	s.NotContains(response.Message, "10.0.0.3")
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	internal := errors.New("database locked")

	response, err := WrapDatabaseError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemDatabaseError), response.Code)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestToJSON_FlatShape() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("Account not found", decoded["message"])
	s.Equal("ACCOUNT_001", decoded["error"])
	s.Equal(s.traceID, decoded["traceId"])
	s.NotContains(decoded, "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := map[ErrorCode]int{
		ValidationGeneral:         http.StatusBadRequest,
		AccountInvalidType:        http.StatusBadRequest,
		BudgetInvalidAmount:       http.StatusBadRequest,
		AuthMissingToken:          http.StatusUnauthorized,
		AuthExpiredToken:          http.StatusUnauthorized,
		AccountNotFound:           http.StatusNotFound,
		TransactionNotFound:       http.StatusNotFound,
		SystemRouteNotFound:       http.StatusNotFound,
		SystemMethodNotAllowed:    http.StatusMethodNotAllowed,
		BudgetAlreadyExists:       http.StatusConflict,
		TransactionUnknownAccount: http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:   http.StatusTooManyRequests,
		SystemServiceUnavailable:  http.StatusServiceUnavailable,
		SystemInternalError:       http.StatusInternalServerError,
		SystemDatabaseError:       http.StatusInternalServerError,
	}

	for code, expected := range testCases {
		s.Equal(expected, GetHTTPStatus(code), code)
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus_UnknownCode() {
	s.Equal(http.StatusInternalServerError, GetHTTPStatus(ErrorCode("UNKNOWN")))
}

func (s *ResponseTestSuite) TestIsClientAndServerError() {
	s.True(NewErrorResponse(AccountNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(AccountNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
	s.False(NewErrorResponse(SystemInternalError, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(BudgetNotFound, "trace-1")
	s.Equal("[BUDGET_001] Budget not found (trace: trace-1)", response.String())
}

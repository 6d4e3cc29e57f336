package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds an echo context for method and path. body may be nil, a
// raw string, or any value to be JSON encoded.
func newContext(e *echo.Echo, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, strings.NewReader(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}

func fakeAccount(id int64, accountType models.AccountType) *models.Account {
	return &models.Account{
		ID:            id,
		Name:          gofakeit.Company() + " Checking",
		Balance:       decimal.NewFromFloat(gofakeit.Float64Range(10, 50000)).Round(2),
		AccountNumber: "****" + gofakeit.Numerify("####"),
		Institution:   gofakeit.Company(),
		Type:          accountType,
		Currency:      models.DefaultCurrency,
	}
}

func fakeTransaction(id, accountID int64) models.Transaction {
	return models.Transaction{
		ID:        id,
		Date:      models.NewDate(2025, 10, gofakeit.Number(1, 28)),
		Merchant:  gofakeit.Company(),
		Category:  models.CategoryShopping,
		Amount:    decimal.NewFromFloat(-gofakeit.Float64Range(1, 500)).Round(2),
		Account:   "Chase Checking",
		AccountID: accountID,
	}
}

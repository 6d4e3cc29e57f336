package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)
	s.echo = newTestEcho()
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) TestListTransactions_FiltersAndPaging() {
	transactions := make([]models.Transaction, 5)
	for i := range transactions {
		transactions[i] = fakeTransaction(int64(i+1), 1)
	}

	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, query *dto.TransactionQuery) ([]models.Transaction, int64, error) {
			s.Equal("Food & Drink", query.Category)
			s.Equal(int64(1), query.AccountID)
			s.Equal(2, query.Page)
			s.Equal(5, query.PerPage)
			return transactions, 12, nil
		})

	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions?category=Food+%26+Drink&accountId=1&page=2&perPage=5", nil)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.PaginatedResponse[models.Transaction]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 5)
	s.Equal(2, resp.Page)
	s.Equal(5, resp.PerPage)
	s.Equal(int64(12), resp.Total)
	s.Equal(3, resp.TotalPages)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DefaultsComeFromService() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, query *dto.TransactionQuery) ([]models.Transaction, int64, error) {
			query.Normalize()
			return nil, 0, nil
		})

	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions", nil)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[],"page":1,"perPage":20,"total":0,"totalPages":0}`, rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestListTransactions_BadPageParameter() {
	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions?page=two", nil)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeError(rec).Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidQuery() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), fmt.Errorf("%w: end date is before start date", services.ErrInvalidQuery))

	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions?startDate=2025-10-20&endDate=2025-10-01", nil)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(rec)
	s.Equal("VALIDATION_005", resp.Code)
	s.Equal([]string{"invalid transaction query: end date is before start date"}, resp.Details)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction() {
	transaction := fakeTransaction(7, 1)
	s.mockService.EXPECT().GetTransaction(gomock.Any(), int64(7)).Return(&transaction, nil)

	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions/7", nil)
	s.NoError(s.handler.GetTransaction(withParam(c, "id", "7")))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.APIResponse[models.Transaction]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(transaction.Merchant, resp.Data.Merchant)
	s.Equal(transaction.Date.String(), resp.Data.Date.String())
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	s.mockService.EXPECT().GetTransaction(gomock.Any(), int64(7)).Return(nil, services.ErrTransactionNotFound)

	c, rec := newContext(s.echo, http.MethodGet, "/api/transactions/7", nil)
	s.NoError(s.handler.GetTransaction(withParam(c, "id", "7")))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", decodeError(rec).Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	s.mockService.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
			s.Equal("2025-10-24", req.Date.String())
			s.True(req.Amount.Equal(decimal.NewFromInt(5000)))
			transaction := req.ToModel()
			transaction.ID = 10
			transaction.Account = "Chase Checking"
			return transaction, nil
		})

	body := `{"date":"2025-10-24","merchant":"Salary Deposit","category":"Income","amount":5000,"accountId":1,"tags":["salary"]}`
	c, rec := newContext(s.echo, http.MethodPost, "/api/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.APIResponse[models.Transaction]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(10), resp.Data.ID)
	s.Equal("Chase Checking", resp.Data.Account)
	s.Equal([]string{"salary"}, resp.Data.Tags)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	s.mockService.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, services.ErrUnknownAccount)

	body := `{"date":"2025-10-24","merchant":"Target","category":"Shopping","amount":-89.99,"accountId":42}`
	c, rec := newContext(s.echo, http.MethodPost, "/api/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("TRANSACTION_003", decodeError(rec).Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFailure() {
	c, rec := newContext(s.echo, http.MethodPost, "/api/transactions", `{"merchant":"Target","category":"Shopping"}`)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(rec)
	s.Equal("VALIDATION_001", resp.Code)
	s.Equal([]string{
		"accountId: is required",
		"amount: is required",
		"date: is required",
	}, resp.Details)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_BlankCategory() {
	for _, category := range []string{`"   "`, `"Food\u0007"`} {
		body := `{"date":"2025-10-24","merchant":"Target","category":` + category + `,"amount":-5,"accountId":1}`
		c, rec := newContext(s.echo, http.MethodPost, "/api/transactions", body)
		s.NoError(s.handler.CreateTransaction(c))

		s.Equal(http.StatusBadRequest, rec.Code, category)
		resp := decodeError(rec)
		s.Equal("VALIDATION_001", resp.Code)
		s.Equal([]string{"category: must be a non-blank category name"}, resp.Details)
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_BadDate() {
	body := `{"date":"10/24/2025","merchant":"Target","category":"Shopping","amount":-5,"accountId":1}`
	c, rec := newContext(s.echo, http.MethodPost, "/api/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeError(rec).Code)
}

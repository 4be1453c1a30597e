package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledgerapi/internal/model"
	"ledgerapi/internal/service"
	serviceMocks "ledgerapi/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestCreateAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts", CreateAccount(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &model.Account{ID: uuid.New().String(), OwnerName: "Alice", Balance: 1000}
		mockSvc.On("Create", mock.Anything, "Alice", int64(1000)).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts",
			jsonBody(t, fiber.Map{"owner_name": "Alice", "opening_balance": 1000}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Account
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("owner required", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "", int64(0)).Return(nil, service.ErrOwnerRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts", jsonBody(t, fiber.Map{}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "OWNER_REQUIRED", body.Error.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})
}

func TestGetAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Get("/accounts/:id", GetAccount(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).Return(&model.Account{ID: id, Balance: 1300}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Account
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(1300), result.Balance)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrAccountNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDepositFunds(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts/:id/deposit", DepositFunds(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		txn := &model.Transaction{ID: uuid.New().String(), Kind: model.TxnDeposit, Amount: 500, BalanceAfter: 1500}
		mockSvc.On("Deposit", mock.Anything, id, int64(500)).Return(txn, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/deposit",
			jsonBody(t, fiber.Map{"amount": 500}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Transaction
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(1500), result.BalanceAfter)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		mockSvc.On("Deposit", mock.Anything, id, int64(-5)).Return(nil, service.ErrAmountNotPositive).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/deposit",
			jsonBody(t, fiber.Map{"amount": -5}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_AMOUNT", body.Error.Code)
	})
}

func TestWithdrawFunds(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts/:id/withdraw", WithdrawFunds(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		txn := &model.Transaction{ID: uuid.New().String(), Kind: model.TxnWithdrawal, Amount: 200, BalanceAfter: 1300}
		mockSvc.On("Withdraw", mock.Anything, id, int64(200)).Return(txn, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/withdraw",
			jsonBody(t, fiber.Map{"amount": 200}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		mockSvc.On("Withdraw", mock.Anything, id, int64(99999)).Return(nil, service.ErrInsufficientFunds).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/withdraw",
			jsonBody(t, fiber.Map{"amount": 99999}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INSUFFICIENT_FUNDS", body.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Withdraw", mock.Anything, id, int64(5)).Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/withdraw",
			jsonBody(t, fiber.Map{"amount": 5}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestListAccountTransactions(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Get("/accounts/:id/transactions", ListAccountTransactions(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &service.TransactionListResult{
			Items: []model.Transaction{{ID: uuid.New().String(), Amount: 500}},
			Total: 1,
		}
		mockSvc.On("Transactions", mock.Anything, id, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+id+"/transactions?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.TransactionListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts/"+id+"/transactions?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	})
}

func TestExportStatement(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts/:id/statement", ExportStatement(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &service.StatementExportResult{
			Export: model.StatementExport{ID: uuid.New().String(), StoragePath: "statements/x.txt"},
			URL:    "https://minio.local/presigned",
		}
		mockSvc.On("ExportStatement", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/statement", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result service.StatementExportResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "https://minio.local/presigned", result.URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("ExportStatement", mock.Anything, id).Return(nil, service.ErrAccountNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/statement", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

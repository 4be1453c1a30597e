package handler

import (
	"encoding/json"
	"io"
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

func TestCreateOrder(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Post("/orders", CreateOrder(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &model.Order{ID: uuid.New().String(), CustomerName: "Bob"}
		mockSvc.On("Create", mock.Anything, "Bob").Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders",
			jsonBody(t, fiber.Map{"customer_name": "Bob"}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("customer required", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "").Return(nil, service.ErrCustomerRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders", jsonBody(t, fiber.Map{}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "CUSTOMER_REQUIRED", body.Error.Code)
	})
}

func TestAddOrderItem(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Post("/orders/:id/items", AddOrderItem(mockSvc))

	id := uuid.New().String()

	t.Run("success returns new running total", func(t *testing.T) {
		expected := &service.OrderItemResult{
			Item:  model.OrderItem{ID: uuid.New().String(), Name: "Laptop", UnitPrice: 50000, Quantity: 1},
			Total: 50000,
		}
		mockSvc.On("AddItem", mock.Anything, id, service.ItemInput{Name: "Laptop", UnitPrice: 50000, Quantity: 1}).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/"+id+"/items",
			jsonBody(t, fiber.Map{"name": "Laptop", "unit_price": 50000, "quantity": 1}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result service.OrderItemResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(50000), result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("negative price", func(t *testing.T) {
		mockSvc.On("AddItem", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrNegativePrice).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/"+id+"/items",
			jsonBody(t, fiber.Map{"name": "Mouse", "unit_price": -500}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_PRICE", body.Error.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		mockSvc.On("AddItem", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/"+id+"/items",
			jsonBody(t, fiber.Map{"name": "Mouse", "unit_price": 500}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetOrder(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Get("/orders/:id", GetOrder(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		detail := &service.OrderDetail{
			Order: model.Order{ID: id, CustomerName: "Bob", Total: 50500},
			Items: []model.OrderItem{{Name: "Laptop"}, {Name: "Mouse"}},
		}
		mockSvc.On("Get", mock.Anything, id).Return(detail, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.OrderDetail
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, int64(50500), result.Order.Total)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestOrderSummary(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Get("/orders/:id/summary", OrderSummary(mockSvc))

	id := uuid.New().String()

	t.Run("renders text", func(t *testing.T) {
		mockSvc.On("Summary", mock.Anything, id).Return("Order x\nTotal: 50500\n", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/"+id+"/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Total: 50500")
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Summary", mock.Anything, id).Return("", service.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/"+id+"/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestArchiveOrder(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Post("/orders/:id/archive", ArchiveOrder(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &service.OrderArchiveResult{Key: "orders/" + id + "/summary-x.txt", Size: 42}
		mockSvc.On("Archive", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/"+id+"/archive", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result service.OrderArchiveResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.Key, result.Key)
		mockSvc.AssertExpectations(t)
	})
}

func TestListOrders(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Get("/orders", ListOrders(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.OrderListResult{
			Items: []model.Order{{ID: uuid.New().String()}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.OrderListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders?offset=xyz", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_OFFSET", body.Error.Code)
	})
}

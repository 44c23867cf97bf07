package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "skate/internal/adapters/in/http"
	"skate/internal/core/application/service"
	"skate/internal/core/domain/model/order"
	"skate/internal/generated/servers"
	"skate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) CreateOrder(ctx context.Context, fields service.OrderFields) (int64, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id int64, fields service.OrderFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter service.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newTestRouter(t *testing.T, orders httpadapter.OrderService) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := httpadapter.NewRouter(httpadapter.NewServer(orders, logger), logger, prometheus.NewRegistry())
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validBody = `{
	"customer_id": 123,
	"order_status": "Completed",
	"address": "123 Main St",
	"price": 1000,
	"items": [{"product_id": 456, "quantity": 2, "unit_price": 500, "total_price": 1000}]
}`

func TestCreateOrder_Returns201WithID(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(f service.OrderFields) bool {
		return f.CustomerID == 123 &&
			f.Status == order.Completed &&
			f.Address == "123 Main St" &&
			f.Price == 1000 &&
			len(f.Items) == 1 && f.Items[0].ProductID() == 456 && f.Items[0].Quantity() == 2
	})).Return(int64(7), nil).Once()

	rec := serve(newTestRouter(t, orders), http.MethodPost, "/api/v1/orders", validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created servers.OrderCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.OrderId)
	orders.AssertExpectations(t)
}

func TestCreateOrder_MalformedBody_Returns400(t *testing.T) {
	orders := new(MockOrderService)

	rec := serve(newTestRouter(t, orders), http.MethodPost, "/api/v1/orders", `{"customer_id": "abc"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_InvalidFields_Return400(t *testing.T) {
	testCases := map[string]string{
		"unknown status": `{"customer_id":1,"order_status":"Lost","address":"a","price":1}`,
		"zero quantity":  `{"customer_id":1,"order_status":"Processing","address":"a","price":1,"items":[{"product_id":1,"quantity":0,"unit_price":1,"total_price":0}]}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			orders := new(MockOrderService)

			rec := serve(newTestRouter(t, orders), http.MethodPost, "/api/v1/orders", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, "Invalid order data")
			orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_ServiceValidationError_Returns400(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(int64(0), errs.NewValueIsRequiredError("address")).Once()

	rec := serve(newTestRouter(t, orders), http.MethodPost, "/api/v1/orders", validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "address")
}

func TestGetOrder_Returns200WithDocument(t *testing.T) {
	item := order.RestoreItem(456, 2, 500, 1000)
	stored := order.RestoreOrder(7, 123, order.InProgress, "123 Main St", 1000, []order.Item{item})

	orders := new(MockOrderService)
	orders.On("GetOrder", mock.Anything, int64(7)).Return(stored, nil).Once()

	rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, servers.Order{
		OrderId:     7,
		CustomerId:  123,
		OrderStatus: servers.OrderStatusInProgress,
		Address:     "123 Main St",
		Price:       1000,
		Items: []servers.OrderItem{
			{ProductId: 456, Quantity: 2, UnitPrice: 500, TotalPrice: 1000},
		},
	}, got)
}

func TestGetOrder_UnknownID_Returns404(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("GetOrder", mock.Anything, int64(99)).
		Return(nil, errs.NewObjectNotFoundError("order_id", int64(99))).Once()

	rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
}

func TestGetOrder_NonNumericID_Returns400(t *testing.T) {
	orders := new(MockOrderService)

	rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders/seven", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "orderId")
}

func TestGetOrder_StorageFailure_Returns500WithoutDetails(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("GetOrder", mock.Anything, int64(1)).
		Return(nil, errs.NewStorageFailureError("select order header", errors.New("database is locked"))).Once()

	rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders/1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to retrieve order", body.Message)
	assert.NotContains(t, body.Message, "locked")
}

func TestUpdateOrder(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("UpdateOrder", mock.Anything, int64(5), mock.AnythingOfType("service.OrderFields")).Return(nil).Once()

		rec := serve(newTestRouter(t, orders), http.MethodPut, "/api/v1/orders/5", validBody)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		orders.AssertExpectations(t)
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("UpdateOrder", mock.Anything, int64(5), mock.Anything).
			Return(errs.NewObjectNotFoundError("order_id", int64(5))).Once()

		rec := serve(newTestRouter(t, orders), http.MethodPut, "/api/v1/orders/5", validBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		orders := new(MockOrderService)

		rec := serve(newTestRouter(t, orders), http.MethodPut, "/api/v1/orders/5", `[`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("DeleteOrder", mock.Anything, int64(5)).Return(nil).Once()
	orders.On("DeleteOrder", mock.Anything, int64(6)).Return(errs.NewObjectNotFoundError("order_id", int64(6))).Once()
	e := newTestRouter(t, orders)

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/api/v1/orders/5", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/api/v1/orders/6", "").Code)
	orders.AssertExpectations(t)
}

func TestListOrders(t *testing.T) {
	first := order.RestoreOrder(1, 10, order.Processing, "A", 5, nil)
	second := order.RestoreOrder(2, 20, order.Cancelled, "B", 6, nil)

	t.Run("without filter", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("ListOrders", mock.Anything, service.ListFilter{}).Return([]*order.Order{first, second}, nil).Once()

		rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, servers.OrderStatusCancelled, got[1].OrderStatus)
		assert.Empty(t, got[0].Items)
	})

	t.Run("with customer filter", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("ListOrders", mock.Anything, mock.MatchedBy(func(f service.ListFilter) bool {
			return f.CustomerID != nil && *f.CustomerID == 20
		})).Return([]*order.Order{second}, nil).Once()

		rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders?customer_id=20", "")

		require.Equal(t, http.StatusOK, rec.Code)
		orders.AssertExpectations(t)
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("ListOrders", mock.Anything, service.ListFilter{}).Return([]*order.Order{}, nil).Once()

		rec := serve(newTestRouter(t, orders), http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestAmbientRoutes(t *testing.T) {
	e := newTestRouter(t, new(MockOrderService))

	health := serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "Healthy", health.Body.String())
	assert.NotEmpty(t, health.Header().Get(echo.HeaderXRequestID))

	spec := serve(e, http.MethodGet, "/api/v1/openapi.json", "")
	assert.Equal(t, http.StatusOK, spec.Code)
	assert.Contains(t, spec.Body.String(), "Skate order service")

	doc := serve(e, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), "/api/v1/orders/{orderId}")

	metrics := serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `skate_order_service_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestUnknownRoute_ReturnsJSONError(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderService)), http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
}

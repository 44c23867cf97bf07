package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"skate/internal/core/application/service"
	"skate/internal/core/domain/model/order"
	"skate/internal/generated/servers"
	"skate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrderService is the application facade the handlers call.
type OrderService interface {
	CreateOrder(ctx context.Context, fields service.OrderFields) (int64, error)
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
	UpdateOrder(ctx context.Context, id int64, fields service.OrderFields) error
	DeleteOrder(ctx context.Context, id int64) error
	ListOrders(ctx context.Context, filter service.ListFilter) ([]*order.Order, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates between the wire models and the order service.
type Server struct {
	orders OrderService
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server backed by the order service.
func NewServer(orders OrderService, logger *slog.Logger) *Server {
	return &Server{
		orders: orders,
		logger: logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders - lists all orders or those of one customer.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	orders, err := s.orders.ListOrders(ctx.Request().Context(), service.ListFilter{CustomerID: params.CustomerId})
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields, err := fieldsFromRequest(body)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.orders.CreateOrder(ctx.Request().Context(), fields)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderId: id})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	o, err := s.orders.GetOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - replaces the order and its items.
func (s *Server) UpdateOrder(ctx echo.Context, orderID int64) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields, err := fieldsFromRequest(body)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.orders.UpdateOrder(ctx.Request().Context(), orderID, fields); err != nil {
		return s.errorResponse(ctx, err, "Failed to update order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID int64) error {
	if err := s.orders.DeleteOrder(ctx.Request().Context(), orderID); err != nil {
		return s.errorResponse(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps service errors to status codes. Storage details stay in the log.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errs.IsValidationError(err):
		return badRequest(ctx, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders; customers see their own, admins see all
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is the body of POST /api/orders
type CreateOrderRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Quantity  *int    `json:"qty" validate:"omitempty,min=1"`
	Location  *string `json:"location"`
}

func (CreateOrderRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"productId.required": "productId is required",
		"productId.uuid":     "productId is invalid",
		"qty.min":            "qty must be at least 1",
	}
}

// UpdateOrderStatusRequest is the body of PUT /api/orders/status/:id
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=delivered in-progress"`
}

func (UpdateOrderStatusRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"status.required": "Status is required",
		"status.oneof":    "Status is invalid",
	}
}

// UpdateOrderRequest is the body of PUT /api/orders/:id
type UpdateOrderRequest struct {
	Quantity *int    `json:"qty" validate:"omitempty,min=1"`
	Location *string `json:"location"`
	Status   *string `json:"status" validate:"omitempty,oneof=delivered in-progress"`
}

func (UpdateOrderRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"qty.min":      "qty must be at least 1",
		"status.oneof": "Status is invalid",
	}
}

// CreateOrder places an order for the caller
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), caller, &usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  req.Quantity,
		Location:  req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// ListOrders returns the orders visible to the caller
func (h *OrderHandler) ListOrders(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// GetOrder returns one order visible to the caller
func (h *OrderHandler) GetOrder(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), caller, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateOrderStatus moves an order to a new status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), caller, id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateOrder edits quantity, location or status of an order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateOrderInput{Quantity: req.Quantity, Location: req.Location}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), caller, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// DeleteOrder removes an order and returns it
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.DeleteOrder(c.Request().Context(), caller, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

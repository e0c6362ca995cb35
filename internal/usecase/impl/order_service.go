package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOrderQuantity = 1

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder places an order for the caller. The product price is captured as the
// unit price and the total is unit price times quantity.
func (s *orderService) CreateOrder(ctx context.Context, actor entity.Identity, input *usecase.CreateOrderInput) (*entity.Order, error) {
	quantity := defaultOrderQuantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 1 {
		return nil, invalidField("qty", "qty must be at least 1")
	}

	location := ""
	if input.Location != nil {
		location = *input.Location
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	now := s.now()
	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       actor.UserID,
		ProductID:    product.ID,
		PurchaseDate: now,
		Quantity:     quantity,
		UnitPrice:    product.Price,
		Status:       entity.OrderStatusInProgress,
		Location:     location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.RecalculateTotal()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	s.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("productID", product.ID),
		slog.Int("qty", quantity),
		slog.Float64("total", order.Total),
	)
	s.publish(ctx, constants.EventOrderCreated, order)

	return order, nil
}

// ListOrders returns every order for admins and only the caller's own orders otherwise
func (s *orderService) ListOrders(ctx context.Context, actor entity.Identity) ([]*entity.Order, error) {
	filter := repository.OrderFilter{}
	if !actor.IsAdmin() {
		filter.UserID = &actor.UserID
	}

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns an order visible to the caller
func (s *orderService) GetOrder(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err, "failed to find order")
	}

	// Orders of other customers are reported as missing
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// UpdateOrderStatus moves an order visible to the caller to status
func (s *orderService) UpdateOrderStatus(ctx context.Context, actor entity.Identity, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	return s.UpdateOrder(ctx, actor, id, &usecase.UpdateOrderInput{Status: &status})
}

// UpdateOrder applies a partial edit. A new quantity recomputes the total from the captured unit price.
func (s *orderService) UpdateOrder(ctx context.Context, actor entity.Identity, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, invalidField("status", "Status is invalid")
	}
	if input.Quantity != nil && *input.Quantity < 1 {
		return nil, invalidField("qty", "qty must be at least 1")
	}

	order, err := s.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previousStatus := order.Status
	if input.Quantity != nil {
		order.Quantity = *input.Quantity
		order.RecalculateTotal()
	}
	if input.Location != nil {
		order.Location = *input.Location
	}
	if input.Status != nil {
		order.Status = *input.Status
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, mapOrderError(err, "failed to update order")
	}

	if order.Status != previousStatus {
		s.log(ctx).Info("Order status changed",
			slog.Any("orderID", order.ID),
			slog.String("from", string(previousStatus)),
			slog.String("to", string(order.Status)),
		)
		s.publish(ctx, constants.EventOrderStatusChanged, order)
	}

	return order, nil
}

// DeleteOrder removes an order visible to the caller and returns it
func (s *orderService) DeleteOrder(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, actor, id); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapOrderError(err, "failed to delete order")
	}

	s.log(ctx).Info("Order deleted", slog.Any("orderID", id), slog.Any("actorID", actor.UserID))
	s.publish(ctx, constants.EventOrderDeleted, order)

	return order, nil
}

// publish emits an order event. Failures are logged and never reach the caller.
func (s *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		ProductID:  order.ProductID.String(),
		Status:     string(order.Status),
		Quantity:   order.Quantity,
		Total:      order.Total,
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

func mapOrderError(err error, msg string) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, msg)
}

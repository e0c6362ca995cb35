package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place an order.
// A nil Quantity defaults to 1 and a nil Location to "".
type CreateOrderInput struct {
	ProductID uuid.UUID
	Quantity  *int
	Location  *string
}

// UpdateOrderInput lists the order fields to change; nil fields are left untouched.
type UpdateOrderInput struct {
	Quantity *int
	Location *string
	Status   *entity.OrderStatus
}

// OrderUsecase manages orders. Customers only ever see their own orders; admins see all.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor entity.Identity, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, actor entity.Identity) ([]*entity.Order, error)
	GetOrder(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, actor entity.Identity, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	UpdateOrder(ctx context.Context, actor entity.Identity, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.Order, error)
}

package impl

import (
	"context"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Logger:      discardLogger(),
	})
	svc.(*orderService).now = fixedClock

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func orderFor(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: uuid.New(),
		Quantity:  2,
		UnitPrice: 10,
		Total:     20,
		Status:    entity.OrderStatusInProgress,
	}
}

func TestOrderService_CreateOrder_ComputesTotal(t *testing.T) {
	fx := createTestOrderService(t)
	actor := customer()
	product := &entity.Product{ID: uuid.New(), Price: 10}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, constants.EventOrderCreated, event.Type)
			assert.Equal(t, "req-1", event.RequestID)
			assert.Equal(t, actor.UserID.String(), event.UserID)
			assert.InDelta(t, 30.0, event.Total, 0.0001)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, actor, &usecase.CreateOrderInput{
		ProductID: product.ID,
		Quantity:  ptr(3),
	})

	require.NoError(t, err)
	assert.InDelta(t, 30.0, order.Total, 0.0001)
	assert.InDelta(t, 10.0, order.UnitPrice, 0.0001)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, actor.UserID, order.UserID)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.Equal(t, fixedNow, order.PurchaseDate)
}

func TestOrderService_CreateOrder_Defaults(t *testing.T) {
	fx := createTestOrderService(t)
	product := &entity.Product{ID: uuid.New(), Price: 12.5}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{ProductID: product.ID})

	require.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, "", order.Location)
	assert.InDelta(t, 12.5, order.Total, 0.0001)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{ProductID: productID})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Product not found", appErr.Message())
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{
		ProductID: uuid.New(),
		Quantity:  ptr(0),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestOrderService(t)
	product := &entity.Product{ID: uuid.New(), Price: 1}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{ProductID: product.ID})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("customer sees own orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		actor := customer()

		fx.orderRepo.EXPECT().
			FindAll(mock.Anything, mock.AnythingOfType("repository.OrderFilter")).
			Run(func(_ context.Context, filter repository.OrderFilter) {
				require.NotNil(t, filter.UserID)
				assert.Equal(t, actor.UserID, *filter.UserID)
			}).
			Return([]*entity.Order{orderFor(actor.UserID)}, nil)

		orders, err := fx.service.ListOrders(context.Background(), actor)

		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("admin sees every order", func(t *testing.T) {
		fx := createTestOrderService(t)

		fx.orderRepo.EXPECT().FindAll(mock.Anything, repository.OrderFilter{}).Return([]*entity.Order{}, nil)

		orders, err := fx.service.ListOrders(context.Background(), admin())

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	owner := customer()
	order := orderFor(owner.UserID)

	tests := []struct {
		name    string
		actor   entity.Identity
		wantErr error
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: admin()},
		{name: "other customer", actor: customer(), wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

			got, err := fx.service.GetOrder(context.Background(), tt.actor, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
		})
	}
}

func TestOrderService_UpdateOrder_QuantityRecomputesTotal(t *testing.T) {
	fx := createTestOrderService(t)
	owner := customer()
	order := orderFor(owner.UserID)

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)

	updated, err := fx.service.UpdateOrder(context.Background(), owner, order.ID, &usecase.UpdateOrderInput{
		Quantity: ptr(5),
		Location: ptr("Taipei"),
	})

	require.NoError(t, err)
	assert.InDelta(t, 50.0, updated.Total, 0.0001)
	assert.Equal(t, "Taipei", updated.Location)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Run("status change is published", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := customer()
		order := orderFor(owner.UserID)

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
			Run(func(_ context.Context, event *service.OrderEvent) {
				assert.Equal(t, constants.EventOrderStatusChanged, event.Type)
				assert.Equal(t, string(entity.OrderStatusDelivered), event.Status)
			}).
			Return(nil)

		updated, err := fx.service.UpdateOrderStatus(context.Background(), owner, order.ID, entity.OrderStatusDelivered)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(context.Background(), customer(), uuid.New(), "shipped")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("other customer's order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := orderFor(uuid.New())

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(context.Background(), customer(), order.ID, entity.OrderStatusDelivered)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := customer()
		order := orderFor(owner.UserID)

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().Delete(mock.Anything, order.ID).Return(order, nil)
		fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

		deleted, err := fx.service.DeleteOrder(context.Background(), owner, order.ID)

		require.NoError(t, err)
		assert.Equal(t, order.ID, deleted.ID)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		id := uuid.New()

		fx.orderRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.DeleteOrder(context.Background(), admin(), id)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (repo *orderRepository) withJoins(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(withRepository(ctx, "order")).
		Preload("Customer").
		Preload("Product")
}

// Create persists a new order. The customer and product rows are never written through this call.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(withRepository(ctx, "order")).Omit("Customer", "Product").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its customer and product joined.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withJoins(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindAll lists orders matching filter, newest purchase first.
func (repo *orderRepository) FindAll(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.withJoins(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if err := query.
		Order("purchase_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update overwrites the mutable columns of an order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(withRepository(ctx, "order")).
		Model(orderM).
		Select("Quantity", "Total", "Status", "Location", "UpdatedAt").
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Delete removes an order and returns the removed record.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(withRepository(ctx, "order")).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		PurchaseDate: data.PurchaseDate,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		Total:        data.Total,
		Status:       entity.OrderStatus(data.Status),
		Location:     data.Location,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Customer:     toUserDomain(data.Customer),
		Product:      toProductDomain(data.Product),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		PurchaseDate: data.PurchaseDate,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		Total:        data.Total,
		Status:       string(data.Status),
		Location:     data.Location,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// withJoins preloads the attached file and the owning user.
func (repo *productRepository) withJoins(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(withRepository(ctx, "product")).
		Preload("File").
		Preload("Owner")
}

// Create persists a new product. Associations are never written through this call.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(withRepository(ctx, "product")).Omit("File", "Owner").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFileNotFound.WrapMessage("invalid file reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its file and owner joined.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.withJoins(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindAll lists every product ordered by creation time ascending.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.withJoins(ctx).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update applies changes to a product and returns the updated record.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, changes repository.ProductChanges) (*entity.Product, error) {
	updates := productUpdates(changes)
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(withRepository(ctx, "product")).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrFileNotFound.WrapMessage("invalid file reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a product and returns the removed record.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(withRepository(ctx, "product")).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func productUpdates(changes repository.ProductChanges) map[string]any {
	updates := make(map[string]any, 6)
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.MadeIn != nil {
		updates["made_in"] = *changes.MadeIn
	}
	if changes.Price != nil {
		updates["price"] = *changes.Price
	}
	if changes.FileID != nil {
		updates["file_id"] = *changes.FileID
	}
	if changes.ExpireAt != nil {
		updates["expire_at"] = *changes.ExpireAt
	}

	return updates
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		MadeIn:      data.MadeIn,
		Price:       data.Price,
		FileID:      data.FileID,
		ExpireAt:    data.ExpireAt,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		File:        toFileDomain(data.File),
		Owner:       toUserDomain(data.Owner),
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		MadeIn:      data.MadeIn,
		Price:       data.Price,
		FileID:      data.FileID,
		ExpireAt:    data.ExpireAt,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

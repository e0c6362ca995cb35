package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	fileRepo    repository.FileRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	FileRepo    repository.FileRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		fileRepo:    params.FileRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateProduct creates a product owned by ownerID and returns it with its file and owner joined
func (s *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, invalidField("price", "price must be a positive number")
	}
	if err := s.ensureFileExists(ctx, input.FileID); err != nil {
		return nil, err
	}

	now := s.now()
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		MadeIn:      input.MadeIn,
		Price:       input.Price,
		FileID:      input.FileID,
		ExpireAt:    input.ExpireAt,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	s.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("ownerID", ownerID))

	return s.GetProduct(ctx, product.ID)
}

// ListProducts returns every product, oldest first
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	return product, nil
}

// UpdateProduct applies a partial edit to a product
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, invalidField("price", "price must be a positive number")
	}
	if err := s.ensureFileExists(ctx, input.FileID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, repository.ProductChanges{
		Name:        input.Name,
		Description: input.Description,
		MadeIn:      input.MadeIn,
		Price:       input.Price,
		FileID:      input.FileID,
		ExpireAt:    input.ExpireAt,
	})
	if err != nil {
		return nil, mapProductError(err, "failed to update product")
	}

	s.log(ctx).Info("Product updated", slog.Any("productID", id))

	return product, nil
}

// DeleteProduct removes a product and returns it
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to delete product")
	}

	s.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return product, nil
}

// GenerateProductQR renders a QR code for an existing product
func (s *productService) GenerateProductQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (s *productService) ensureFileExists(ctx context.Context, fileID *uuid.UUID) error {
	if fileID == nil {
		return nil
	}

	if _, err := s.fileRepo.FindByID(ctx, *fileID); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return domainerrors.ErrFileNotFound
		}

		return errors.Wrap(err, "failed to find file")
	}

	return nil
}

func mapProductError(err error, msg string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, msg)
}

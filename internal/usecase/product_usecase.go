package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	MadeIn      string
	Price       float64
	FileID      *uuid.UUID
	ExpireAt    *time.Time
}

// UpdateProductInput lists the product fields to change; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	MadeIn      *string
	Price       *float64
	FileID      *uuid.UUID
	ExpireAt    *time.Time
}

// ProductUsecase manages the product catalogue. Mutations are admin-only at the route level.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GenerateProductQR renders a PNG QR code for an existing product.
	GenerateProductQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

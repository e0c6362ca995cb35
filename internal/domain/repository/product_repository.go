package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductChanges lists the product fields to overwrite; nil fields are left untouched.
type ProductChanges struct {
	Name        *string
	Description *string
	MadeIn      *string
	Price       *float64
	FileID      *uuid.UUID
	ExpireAt    *time.Time
}

// ProductRepository persists products. Reads join the attached file and the owning user.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindAll lists products ordered by creation time, oldest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, changes ProductChanges) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

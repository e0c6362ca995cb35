package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when a file record is not found.
var ErrFileNotFound = errors.New("file not found")

// FileRepository persists pointers to uploaded blobs.
type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error)
}

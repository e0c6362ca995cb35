package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// UploadInput is a single multipart file part.
type UploadInput struct {
	FieldName    string
	OriginalName string
	MimeType     string
	Content      io.Reader
}

// FileUsecase stores uploaded binaries and serves them back by name.
type FileUsecase interface {
	// Store writes the blob and describes what was written.
	Store(ctx context.Context, input *UploadInput) (*entity.StoredObject, error)
	// StoreAndRecord writes the blob and persists a File record pointing at it.
	StoreAndRecord(ctx context.Context, input *UploadInput) (*entity.File, error)
	// Open streams a stored blob. Callers close the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error)
}

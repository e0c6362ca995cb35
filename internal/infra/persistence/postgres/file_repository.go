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

// fileRepository implements the repository.FileRepository interface.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{
		db: db,
	}
}

// Create persists a file record.
func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	fileM := fromFileDomain(file)

	if err := repo.db.WithContext(withRepository(ctx, "file")).Create(fileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create file")
	}

	file.CreatedAt = fileM.CreatedAt

	return nil
}

// FindByID retrieves a file record by its unique ID.
func (repo *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var fileM model.FileModel

	if err := repo.db.WithContext(withRepository(ctx, "file")).
		Where("id = ?", id).
		First(&fileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file by id")
	}

	return toFileDomain(&fileM), nil
}

func toFileDomain(data *model.FileModel) *entity.File {
	if data == nil {
		return nil
	}

	return &entity.File{
		ID:           data.ID,
		Name:         data.Name,
		Path:         data.Path,
		OriginalName: data.OriginalName,
		MimeType:     data.MimeType,
		Size:         data.Size,
		CreatedAt:    data.CreatedAt,
	}
}

func fromFileDomain(data *entity.File) *model.FileModel {
	if data == nil {
		return nil
	}

	return &model.FileModel{
		ID:           data.ID,
		Name:         data.Name,
		Path:         data.Path,
		OriginalName: data.OriginalName,
		MimeType:     data.MimeType,
		Size:         data.Size,
		CreatedAt:    data.CreatedAt,
	}
}

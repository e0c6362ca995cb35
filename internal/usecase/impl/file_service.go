package impl

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadSuffixRange bounds the random suffix mixed into stored object names.
const uploadSuffixRange = 1_000_000_000

type fileService struct {
	storage  service.FileStorage
	fileRepo repository.FileRepository
	logger   *slog.Logger
	now      func() time.Time
	suffix   func() int64
}

// FileServiceParams holds dependencies for FileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	Storage  service.FileStorage
	FileRepo repository.FileRepository
	Logger   *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	return &fileService{
		storage:  params.Storage,
		fileRepo: params.FileRepo,
		logger:   params.Logger,
		now:      time.Now,
		suffix: func() int64 {
			return rand.Int64N(uploadSuffixRange)
		},
	}
}

func (s *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Store writes the uploaded part under a generated name
func (s *fileService) Store(ctx context.Context, input *usecase.UploadInput) (*entity.StoredObject, error) {
	if input.Content == nil {
		return nil, invalidField(input.FieldName, "file is required")
	}

	name := util.UploadObjectName(input.FieldName, input.OriginalName, s.now(), s.suffix())

	info, err := s.storage.Save(ctx, name, input.Content, input.MimeType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	s.log(ctx).Info("File stored",
		slog.String("name", name),
		slog.String("key", info.Key),
		slog.String("size", util.FormatBytes(info.Size)),
	)

	return &entity.StoredObject{
		FieldName:    input.FieldName,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		FileName:     name,
		Path:         info.Key,
		Size:         info.Size,
	}, nil
}

// StoreAndRecord writes the blob and persists a File pointing at it
func (s *fileService) StoreAndRecord(ctx context.Context, input *usecase.UploadInput) (*entity.File, error) {
	stored, err := s.Store(ctx, input)
	if err != nil {
		return nil, err
	}

	file := &entity.File{
		ID:           uuid.New(),
		Name:         stored.FileName,
		Path:         stored.Path,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		CreatedAt:    s.now(),
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, errors.Wrap(err, "failed to record file")
	}

	s.log(ctx).Info("File recorded", slog.Any("fileID", file.ID), slog.String("name", file.Name))

	return file, nil
}

// Open streams a stored blob back by its generated name
func (s *fileService) Open(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error) {
	reader, info, err := s.storage.Open(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, nil, domainerrors.ErrFileNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open file")
	}

	return reader, info, nil
}

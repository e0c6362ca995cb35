package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// uploadField is the multipart part carrying the uploaded file.
const uploadField = "file"

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	FileUC usecase.FileUsecase
	Logger *slog.Logger
}

// FileHandler stores uploads and serves them back by name
type FileHandler struct {
	fileUC usecase.FileUsecase
	logger *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		fileUC: params.FileUC,
		logger: params.Logger,
	}
}

// Upload stores a multipart "file" part and describes the stored blob
func (h *FileHandler) Upload(c echo.Context) error {
	input, closeFn, err := uploadInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFn()

	stored, err := h.fileUC.Store(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stored)
}

// Download streams a stored blob
func (h *FileHandler) Download(c echo.Context) error {
	reader, info, err := h.fileUC.Open(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if info.Size >= 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, reader)
}

// uploadInput opens the multipart upload part. Callers run the returned close func.
func uploadInput(c echo.Context) (*usecase.UploadInput, func(), error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: uploadField, Message: "file is required"},
		})
	}

	src, err := header.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidInput
	}

	return &usecase.UploadInput{
		FieldName:    uploadField,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get(echo.HeaderContentType),
		Content:      src,
	}, func() { _ = src.Close() }, nil
}

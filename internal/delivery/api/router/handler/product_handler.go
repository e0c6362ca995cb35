package handler

import (
	"log/slog"
	"time"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pngContentType = "image/png"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	FileUC    usecase.FileUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalogue
type ProductHandler struct {
	productUC usecase.ProductUsecase
	fileUC    usecase.FileUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		fileUC:    params.FileUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /api/products
type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"desc"`
	MadeIn      string     `json:"madeIn"`
	Price       float64    `json:"price" validate:"gte=0"`
	FileID      *string    `json:"fileId" validate:"omitempty,uuid"`
	ExpireAt    *time.Time `json:"expireAt"`
}

func (CreateProductRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required": "name is required",
		"price.gte":     "price must be a positive number",
		"fileId.uuid":   "fileId is invalid",
	}
}

// UpdateProductRequest is the body of PUT /api/products/:id
type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"desc"`
	MadeIn      *string    `json:"madeIn"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	FileID      *string    `json:"fileId" validate:"omitempty,uuid"`
	ExpireAt    *time.Time `json:"expireAt"`
}

func (UpdateProductRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.min":    "name is required",
		"price.gte":   "price must be a positive number",
		"fileId.uuid": "fileId is invalid",
	}
}

// CreateProduct adds a product owned by the calling admin
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	fileID, err := optionalFileID(req.FileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), caller.UserID, &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		MadeIn:      req.MadeIn,
		Price:       req.Price,
		FileID:      fileID,
		ExpireAt:    req.ExpireAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// ListProducts returns the whole catalogue, oldest first
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct returns one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// UpdateProduct edits a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	fileID, err := optionalFileID(req.FileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		MadeIn:      req.MadeIn,
		Price:       req.Price,
		FileID:      fileID,
		ExpireAt:    req.ExpireAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes a product and returns it
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// GetProductQR renders a PNG QR code pointing at the product
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.productUC.GenerateProductQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, pngContentType, png)
}

// UploadProductFile stores a multipart "file" part and records it for use as a product fileId
func (h *ProductHandler) UploadProductFile(c echo.Context) error {
	input, closeFn, err := uploadInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFn()

	file, err := h.fileUC.StoreAndRecord(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, file)
}

func optionalFileID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerrors.ErrFileNotFound
	}

	return &id, nil
}

package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	fileRepo    *mockRepo.MockFileRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	fileRepo := mockRepo.NewMockFileRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		FileRepo:    fileRepo,
		QRService:   qrService,
		Logger:      discardLogger(),
	})
	svc.(*productService).now = fixedClock

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		fileRepo:    fileRepo,
		qrService:   qrService,
	}
}

func TestProductService_CreateProduct_WithFile(t *testing.T) {
	fx := createTestProductService(t)
	ownerID, fileID := uuid.New(), uuid.New()
	file := &entity.File{ID: fileID, Name: "file-1-2-photo.png"}

	var created *entity.Product
	fx.fileRepo.EXPECT().FindByID(mock.Anything, fileID).Return(file, nil)
	fx.productRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, p *entity.Product) {
			created = p
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			joined := *created
			joined.File = file

			return &joined, nil
		})

	product, err := fx.service.CreateProduct(context.Background(), ownerID, &usecase.CreateProductInput{
		Name:   "Tea",
		Price:  4.5,
		FileID: &fileID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Tea", product.Name)
	assert.Equal(t, ownerID, product.UserID)
	assert.Equal(t, file, product.File)
	assert.Equal(t, fixedNow, product.CreatedAt)
}

func TestProductService_CreateProduct_UnknownFile(t *testing.T) {
	fx := createTestProductService(t)
	fileID := uuid.New()

	fx.fileRepo.EXPECT().FindByID(mock.Anything, fileID).Return(nil, repository.ErrFileNotFound)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:   "Tea",
		FileID: &fileID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
}

func TestProductService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:  "Tea",
		Price: -1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("partial edit", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().
			Update(mock.Anything, id, mock.AnythingOfType("repository.ProductChanges")).
			Run(func(_ context.Context, _ uuid.UUID, changes repository.ProductChanges) {
				require.NotNil(t, changes.Price)
				assert.InDelta(t, 7.25, *changes.Price, 0.0001)
				assert.Nil(t, changes.Name)
			}).
			Return(&entity.Product{ID: id, Price: 7.25}, nil)

		product, err := fx.service.UpdateProduct(context.Background(), id, &usecase.UpdateProductInput{Price: ptr(7.25)})

		require.NoError(t, err)
		assert.InDelta(t, 7.25, product.Price, 0.0001)
	})

	t.Run("missing product", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.UpdateProduct(context.Background(), id, &usecase.UpdateProductInput{Name: ptr("Coffee")})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.DeleteProduct(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GenerateProductQR(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		png := []byte{0x89, 'P', 'N', 'G'}

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Product{ID: id}, nil)
		fx.qrService.EXPECT().GenerateProductQR(id).Return(png, nil)

		got, err := fx.service.GenerateProductQR(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("missing product never renders", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GenerateProductQR(context.Background(), id)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

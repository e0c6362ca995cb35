package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

type testApp struct {
	echo        *echo.Echo
	tokens      service.TokenService
	hasher      service.PasswordHasher
	userRepo    *mockRepo.MockUserRepository
	taskRepo    *mockRepo.MockTaskRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	fileRepo    *mockRepo.MockFileRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.JWT = config.JWTConfig{Secret: "test-secret", AccessTokenTTL: 5 * time.Minute, RefreshTokenTTL: 10 * time.Minute}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	lc := fxtest.NewLifecycle(t)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	fileStorage := storage.NewBlobStorage(bucket, "uploads/")

	app := &testApp{
		tokens:      tokens,
		hasher:      hasher,
		userRepo:    mockRepo.NewMockUserRepository(t),
		taskRepo:    mockRepo.NewMockTaskRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		fileRepo:    mockRepo.NewMockFileRepository(t),
	}

	userUC := impl.NewUserService(impl.UserServiceParams{UserRepo: app.userRepo, Hasher: hasher, TokenService: tokens, Logger: logger})
	taskUC := impl.NewTaskService(impl.TaskServiceParams{TaskRepo: app.taskRepo, Logger: logger})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: app.productRepo,
		FileRepo:    app.fileRepo,
		QRService:   qrcode.NewQRCodeService(128, "M", "http://localhost:8080"),
		Logger:      logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{OrderRepo: app.orderRepo, ProductRepo: app.productRepo, Publisher: publisher, Logger: logger})
	fileUC := impl.NewFileService(impl.FileServiceParams{Storage: fileStorage, FileRepo: app.fileRepo, Logger: logger})

	app.echo = NewEcho(cfg, logger, router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		TaskHandler:    handler.NewTaskHandler(handler.TaskHandlerParams{TaskUC: taskUC, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, FileUC: fileUC, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
		FileHandler:    handler.NewFileHandler(handler.FileHandlerParams{FileUC: fileUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokens, Logger: logger}),
	})

	return app
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) tokenFor(t *testing.T, accountType entity.AccountType) (uuid.UUID, string) {
	t.Helper()

	id := uuid.New()
	token, err := a.tokens.IssueAccessToken(id, "caller@example.com", accountType)
	require.NoError(t, err)

	return id, token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestServer_Health(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to our app", decodeBody(t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = app.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestServer_Signup(t *testing.T) {
	t.Run("created without password in the body", func(t *testing.T) {
		app := newTestApp(t)
		var stored *entity.User
		app.userRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, u *entity.User) { stored = u }).
			Return(nil)

		rec := app.do(t, http.MethodPost, "/api/users", map[string]any{
			"fname": "A", "lname": "B", "email": "a@b.com", "password": "secret1", "type": "customer",
		}, "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "a@b.com", body["email"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, rec.Body.String(), "secret1")
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret1", stored.Password)
		assert.True(t, app.hasher.Check("secret1", stored.Password))
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(t, http.MethodPost, "/api/users", map[string]any{
			"lname": "B", "email": "not-an-email", "password": "123", "type": "root",
		}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Contains(t, rec.Body.String(), "fname is required")
		assert.Contains(t, rec.Body.String(), "Please enter a password with 6 or more characters")
		assert.Contains(t, rec.Body.String(), "Type must be admin or customer")
	})

	t.Run("duplicate email", func(t *testing.T) {
		app := newTestApp(t)
		app.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

		rec := app.do(t, http.MethodPost, "/api/users", map[string]any{
			"fname": "A", "lname": "B", "email": "a@b.com", "password": "secret1", "type": "customer",
		}, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_Login(t *testing.T) {
	newUser := func(t *testing.T, app *testApp) *entity.User {
		hash, err := app.hasher.Hash("secret1")
		require.NoError(t, err)

		return &entity.User{ID: uuid.New(), Email: "a@b.com", Password: hash, Type: entity.AccountTypeCustomer}
	}

	t.Run("email login returns user and tokens", func(t *testing.T) {
		app := newTestApp(t)
		user := newUser(t, app)
		app.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(user, nil)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{
			"type": "email", "email": "a@b.com", "password": "secret1",
		}, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, user.ID.String(), body["id"])
		assert.NotContains(t, body, "password")

		claims, err := app.tokens.VerifyAccessToken(body["accessToken"].(string))
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)

		refresh, err := app.tokens.VerifyRefreshToken(body["refreshToken"].(string))
		require.NoError(t, err)
		assert.Equal(t, user.ID, refresh.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		app := newTestApp(t)
		app.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(newUser(t, app), nil)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{
			"type": "email", "email": "a@b.com", "password": "wrong",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Wrong Password!", decodeBody(t, rec)["message"])
	})

	t.Run("refresh login", func(t *testing.T) {
		app := newTestApp(t)
		user := newUser(t, app)
		refresh, err := app.tokens.IssueRefreshToken(user.ID)
		require.NoError(t, err)
		app.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{
			"type": "refresh", "refreshToken": refresh,
		}, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotEmpty(t, decodeBody(t, rec)["accessToken"])
	})

	t.Run("refresh token missing", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{"type": "refresh"}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "refreshToken is not defined", decodeBody(t, rec)["message"])
	})

	t.Run("tampered refresh token", func(t *testing.T) {
		app := newTestApp(t)
		_, access := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{
			"type": "refresh", "refreshToken": access + "x",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	})

	t.Run("unknown login type", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(t, http.MethodPost, "/api/users/login", map[string]any{"type": "magic"}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Type must be email or refresh")
	})
}

func TestServer_ProtectedRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/users/profile", "/api/tasks", "/api/products", "/api/orders"} {
		rec := app.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := app.do(t, http.MethodGet, "/api/tasks", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Profile(t *testing.T) {
	app := newTestApp(t)
	id, token := app.tokenFor(t, entity.AccountTypeCustomer)
	app.userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Email: "caller@example.com"}, nil)

	rec := app.do(t, http.MethodGet, "/api/users/profile", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), decodeBody(t, rec)["id"])
}

func TestServer_Tasks(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		app := newTestApp(t)
		userID, token := app.tokenFor(t, entity.AccountTypeCustomer)
		app.taskRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Task")).Return(nil)

		rec := app.do(t, http.MethodPost, "/api/tasks", map[string]any{"title": "Buy milk"}, token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "to-do", body["status"])
		assert.Equal(t, userID.String(), body["userId"])
	})

	t.Run("invalid status", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodPut, "/api/tasks/status/"+uuid.NewString(), map[string]any{"status": "archived"}, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Status is invalid")
	})

	t.Run("another user's task is not found", func(t *testing.T) {
		app := newTestApp(t)
		userID, token := app.tokenFor(t, entity.AccountTypeCustomer)
		taskID := uuid.New()
		app.taskRepo.EXPECT().FindByIDForUser(mock.Anything, taskID, userID).Return(nil, repository.ErrTaskNotFound)

		rec := app.do(t, http.MethodGet, "/api/tasks/"+taskID.String(), nil, token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Products(t *testing.T) {
	t.Run("customers cannot create products", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Tea"}, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You are not an admin", decodeBody(t, rec)["message"])
	})

	t.Run("admin check precedes body validation", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodPost, "/api/products", map[string]any{"price": -1}, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates a product", func(t *testing.T) {
		app := newTestApp(t)
		adminID, token := app.tokenFor(t, entity.AccountTypeAdmin)
		var created *entity.Product
		app.productRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, p *entity.Product) { created = p }).
			Return(nil)
		app.productRepo.EXPECT().
			FindByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.Product, error) { return created, nil })

		rec := app.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Tea", "price": 4.5}, token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Tea", body["name"])
		assert.Equal(t, adminID.String(), body["userId"])
	})

	t.Run("qr code is a png", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)
		productID := uuid.New()
		app.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)

		rec := app.do(t, http.MethodGet, "/api/products/"+productID.String()+"/qr", nil, token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		_, err := png.Decode(rec.Body)
		assert.NoError(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodGet, "/api/products/not-a-uuid", nil, token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Orders(t *testing.T) {
	t.Run("total is price times quantity", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)
		productID := uuid.New()
		app.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID, Price: 10}, nil)
		app.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)

		rec := app.do(t, http.MethodPost, "/api/orders", map[string]any{"productId": productID.String(), "qty": 3}, token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.InDelta(t, 30.0, body["total"], 0.0001)
		assert.InDelta(t, 3.0, body["qty"], 0.0001)
	})

	t.Run("missing product", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)
		productID := uuid.New()
		app.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

		rec := app.do(t, http.MethodPost, "/api/orders", map[string]any{"productId": productID.String()}, token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeBody(t, rec)["message"])
	})

	t.Run("productId required", func(t *testing.T) {
		app := newTestApp(t)
		_, token := app.tokenFor(t, entity.AccountTypeCustomer)

		rec := app.do(t, http.MethodPost, "/api/orders", map[string]any{}, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "productId is required")
	})
}

func TestServer_Uploads(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello storefront"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	name, _ := body["filename"].(string)
	assert.True(t, strings.HasPrefix(name, "file-"))
	assert.True(t, strings.HasSuffix(name, "-notes.txt"))

	rec = app.do(t, http.MethodGet, "/uploads/"+name, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello storefront", rec.Body.String())

	rec = app.do(t, http.MethodGet, "/uploads/missing.txt", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

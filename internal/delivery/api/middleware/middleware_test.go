package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, tokenService service.TokenService, requireAdmin bool) (*echo.Echo, *bool) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenService, Logger: discardLogger()})
	called := false
	handler := func(c echo.Context) error {
		called = true
		identity, ok := GetIdentity(c)
		require.True(t, ok)

		return c.JSON(http.StatusOK, map[string]string{"id": identity.UserID.String()})
	}

	group := e.Group("", auth.Authenticate)
	if requireAdmin {
		group.Use(auth.RequireAccountType(entity.AccountTypeAdmin))
	}
	group.GET("/protected", handler)

	return e, &called
}

func doRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["code"].(string)

	return code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		setup    func(ts *mockSvc.MockTokenService)
		wantCode int
		wantErr  string
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().VerifyAccessToken("good").
					Return(&service.AccessClaims{UserID: userID, Email: "a@b.com", Type: entity.AccountTypeCustomer}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing header",
			setup:    func(*mockSvc.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
			wantErr:  domainerrors.ErrTokenMissing.ErrorCode(),
		},
		{
			name:     "not a bearer token",
			header:   "Basic dXNlcjpwYXNz",
			setup:    func(*mockSvc.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
			wantErr:  domainerrors.ErrTokenInvalid.ErrorCode(),
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().VerifyAccessToken("old").Return(nil, service.ErrTokenExpired)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  domainerrors.ErrTokenInvalid.ErrorCode(),
		},
		{
			name:   "tampered token",
			header: "Bearer forged",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().VerifyAccessToken("forged").Return(nil, errors.Wrap(service.ErrTokenInvalid, "signature"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  domainerrors.ErrTokenInvalid.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := mockSvc.NewMockTokenService(t)
			tt.setup(ts)
			e, called := newTestServer(t, ts, false)

			rec := doRequest(e, tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.False(t, *called)
				assert.Equal(t, tt.wantErr, errorCode(t, rec))

				return
			}
			assert.True(t, *called)
			assert.Contains(t, rec.Body.String(), userID.String())
		})
	}
}

func TestAuthMiddleware_RequireAccountType(t *testing.T) {
	tests := []struct {
		name     string
		account  entity.AccountType
		wantCode int
	}{
		{name: "admin passes", account: entity.AccountTypeAdmin, wantCode: http.StatusOK},
		{name: "customer rejected", account: entity.AccountTypeCustomer, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := mockSvc.NewMockTokenService(t)
			ts.EXPECT().VerifyAccessToken("tok").
				Return(&service.AccessClaims{UserID: uuid.New(), Type: tt.account}, nil)
			e, called := newTestServer(t, ts, true)

			rec := doRequest(e, "Bearer tok")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, *called)
			if tt.wantCode == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "You are not an admin")
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrTaskNotFound, "find task"),
			wantCode:    http.StatusNotFound,
			wantMessage: "Task not found",
		},
		{
			name:        "database error hides detail",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "select users"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Something is wrong",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantCode:    http.StatusRequestEntityTooLarge,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Something is wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-9")

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, "req-9", body["request_id"])
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.NotContains(t, body, "errors")
		})
	}
}

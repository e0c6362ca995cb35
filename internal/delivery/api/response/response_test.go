package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_WritesRecordAsBody(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Created(c, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"id": "1"}, decode(t, rec))
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, http.StatusOK, "Welcome to our app"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Welcome to our app"}, decode(t, rec))
}

func TestHandleAppError(t *testing.T) {
	t.Run("validation error keeps field details", func(t *testing.T) {
		c, rec := newContext()
		err := domainerrors.NewValidationError([]domainerrors.FieldError{{Field: "email", Message: "email is required"}})

		require.NoError(t, HandleAppError(c, err))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Equal(t, "req-1", body["request_id"])
		assert.Len(t, body["errors"], 1)
	})

	t.Run("auth error has message only", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrWrongPassword, "login")))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Wrong Password!", body["message"])
		assert.NotContains(t, body, "errors")
	})

	t.Run("unknown and 5xx errors are passed on", func(t *testing.T) {
		c, rec := newContext()

		assert.Error(t, HandleAppError(c, errors.New("db down")))
		assert.Error(t, HandleAppError(c, domainerrors.ErrTokenIssueFailed))
		assert.Zero(t, rec.Body.Len())
	})
}

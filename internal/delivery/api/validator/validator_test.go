package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	FirstName string `json:"fname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Age       *int   `json:"age" validate:"omitempty,gte=0"`
	Type      string `json:"type" validate:"required,oneof=admin customer"`
}

func (signupRequest) ValidationMessages() map[string]string {
	return map[string]string{"fname.required": "First name is required"}
}

type plainRequest struct {
	Title string `json:"title" validate:"required"`
}

func fieldErrors(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())

	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)

	return fields
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	age := -1

	t.Run("valid request", func(t *testing.T) {
		err := v.Validate(&signupRequest{FirstName: "A", Email: "a@b.com", Password: "secret1", Type: "customer"})

		assert.NoError(t, err)
	})

	t.Run("every failing field is reported by json name", func(t *testing.T) {
		err := v.Validate(&signupRequest{Email: "nope", Password: "123", Age: &age, Type: "root"})

		fields := fieldErrors(t, err)
		got := map[string]string{}
		for _, f := range fields {
			got[f.Field] = f.Message
		}

		assert.Equal(t, "First name is required", got["fname"])
		assert.Equal(t, "email must be a valid email", got["email"])
		assert.Equal(t, "password must be at least 6 characters", got["password"])
		assert.Equal(t, "age must be greater than or equal to 0", got["age"])
		assert.Equal(t, "type must be one of: admin, customer", got["type"])
	})

	t.Run("default message without overrides", func(t *testing.T) {
		err := v.Validate(&plainRequest{})

		fields := fieldErrors(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, domainerrors.FieldError{Field: "title", Message: "title is required"}, fields[0])
	})
}

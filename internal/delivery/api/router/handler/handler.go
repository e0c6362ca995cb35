// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bind decodes the request body into req and validates it
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput
	}

	return c.Validate(req)
}

// pathID parses the uuid path parameter name. A malformed id is reported as notFound.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

// identity returns the authenticated caller
func identity(c echo.Context) (entity.Identity, error) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrTokenMissing
	}

	return caller, nil
}

// Welcome answers the root path
func Welcome(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Welcome to our app")
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

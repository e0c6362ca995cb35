// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware verifies access tokens and enforces account types
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate requires a valid "Authorization: Bearer <access token>" header and
// attaches the caller identity. The next handler is never run on failure.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrTokenInvalid
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenService.VerifyAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetIdentity(c, entity.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Type:   claims.Type,
		})

		return next(c)
	}
}

// RequireAccountType allows only callers of accountType. Use it after Authenticate.
func (m *AuthMiddleware) RequireAccountType(accountType entity.AccountType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			if identity.Type != accountType {
				if accountType == entity.AccountTypeAdmin {
					return domainerrors.ErrNotAdmin
				}

				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetIdentity returns the caller attached by Authenticate
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}

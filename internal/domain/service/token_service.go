package service

import (
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Verification failures returned by TokenService.
var (
	// ErrTokenInvalid covers bad signatures, unexpected algorithms and malformed payloads.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned once the current time is past the exp claim.
	ErrTokenExpired = errors.New("token has expired")
)

// AccessClaims is the identity carried by an access token.
type AccessClaims struct {
	UserID uuid.UUID
	Email  string
	Type   entity.AccountType
}

// RefreshClaims is the identity carried by a refresh token.
type RefreshClaims struct {
	UserID uuid.UUID
}

// TokenPair is what a successful login hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies the signed access/refresh tokens.
type TokenService interface {
	// IssueAccessToken signs a short-lived token carrying email, id and account type.
	IssueAccessToken(userID uuid.UUID, email string, accountType entity.AccountType) (string, error)

	// IssueRefreshToken signs a token carrying only the user id.
	IssueRefreshToken(userID uuid.UUID) (string, error)

	// IssueTokenPair issues both tokens for user.
	IssueTokenPair(user *entity.User) (*TokenPair, error)

	// VerifyAccessToken validates signature and expiry and returns the embedded claims.
	VerifyAccessToken(tokenString string) (*AccessClaims, error)

	// VerifyRefreshToken validates signature and expiry and returns the embedded claims.
	VerifyRefreshToken(tokenString string) (*RefreshClaims, error)
}

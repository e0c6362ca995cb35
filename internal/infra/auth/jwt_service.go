// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessTokenClaims is the wire form of an access token payload.
type accessTokenClaims struct {
	Email string `json:"email"`
	ID    string `json:"id"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// refreshTokenClaims is the wire form of a refresh token payload.
type refreshTokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Both token kinds are signed with the same secret.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The secret is read once from configuration and never changes for the life of the process.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, time.Now), nil
}

func newJWTService(secret string, accessTTL, refreshTTL time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

// IssueAccessToken signs a token carrying email, user id and account type.
func (s *jwtService) IssueAccessToken(userID uuid.UUID, email string, accountType entity.AccountType) (string, error) {
	claims := accessTokenClaims{
		Email:            email,
		ID:               userID.String(),
		Type:             accountType.String(),
		RegisteredClaims: s.registeredClaims(s.accessTTL),
	}

	return s.sign(claims)
}

// IssueRefreshToken signs a token carrying only the user id.
func (s *jwtService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	claims := refreshTokenClaims{
		ID:               userID.String(),
		RegisteredClaims: s.registeredClaims(s.refreshTTL),
	}

	return s.sign(claims)
}

// IssueTokenPair issues a fresh access and refresh token for user.
func (s *jwtService) IssueTokenPair(user *entity.User) (*service.TokenPair, error) {
	accessToken, err := s.IssueAccessToken(user.ID, user.Email, user.Type)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken validates an access token and returns its claims.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	var claims accessTokenClaims
	if err := s.parse(tokenString, &claims); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "id claim is not a uuid")
	}

	accountType := entity.AccountType(claims.Type)
	if claims.Email == "" || !accountType.IsValid() {
		return nil, errors.Wrap(service.ErrTokenInvalid, "access claims incomplete")
	}

	return &service.AccessClaims{
		UserID: userID,
		Email:  claims.Email,
		Type:   accountType,
	}, nil
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (s *jwtService) VerifyRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	var claims refreshTokenClaims
	if err := s.parse(tokenString, &claims); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "id claim is not a uuid")
	}

	return &service.RefreshClaims{UserID: userID}, nil
}

func (s *jwtService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(ttl))),
	}
}

// ceilSecond rounds t up to a whole second, the precision of the exp claim.
func ceilSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return t
	}

	return truncated.Add(time.Second)
}

func (s *jwtService) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parse checks signature and expiry. A token is expired only once now is past exp.
func (s *jwtService) parse(tokenString string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return errors.Wrap(service.ErrTokenInvalid, "exp claim missing")
	}

	if s.now().After(exp.Time) {
		return service.ErrTokenExpired
	}

	return nil
}

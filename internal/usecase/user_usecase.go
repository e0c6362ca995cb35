// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginType selects how a caller proves who they are.
type LoginType string

const (
	// LoginTypeEmail authenticates with email and password.
	LoginTypeEmail LoginType = "email"
	// LoginTypeRefresh exchanges a refresh token for a new token pair.
	LoginTypeRefresh LoginType = "refresh"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       *int
	Password  string
	Type      entity.AccountType
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Type         LoginType
	Email        string
	Password     string
	RefreshToken string
}

// UpdateUserInput lists the user fields to change; nil fields are left untouched.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	Password  *string
	Type      *entity.AccountType
}

// --- Output DTOs ---

// LoginOutput is the user record with a fresh token pair alongside it.
type LoginOutput struct {
	*entity.User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// UpdateUser and DeleteUser require the actor to be the user or an admin.
	UpdateUser(ctx context.Context, actor entity.Identity, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.User, error)
}

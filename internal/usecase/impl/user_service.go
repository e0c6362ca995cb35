// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup hashes the password and persists a new account.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email), slog.String("type", input.Type.String()))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Age:       input.Age,
		Password:  hashed,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login dispatches on the login type. Refresh mode trades a valid refresh token for a fresh pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	switch input.Type {
	case usecase.LoginTypeEmail:
		return srv.loginWithEmail(ctx, input.Email, input.Password)
	case usecase.LoginTypeRefresh:
		return srv.loginWithRefreshToken(ctx, input.RefreshToken)
	default:
		return nil, invalidField("type", "Type must be email or refresh")
	}
}

func (srv *userService) loginWithEmail(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrLoginUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.Password) {
		srv.log(ctx).Info("Login rejected: wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrWrongPassword
	}

	return srv.issueTokens(ctx, user)
}

func (srv *userService) loginWithRefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenMissing
	}

	// Expired and malformed tokens are deliberately indistinguishable to the caller.
	claims, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Info("Refresh login rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return srv.issueTokens(ctx, user)
}

func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	pair, err := srv.tokenService.IssueTokenPair(user)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// GetProfile returns the caller's own account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.GetUser(ctx, userID)
}

// ListUsers returns every account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a single account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateUser applies a partial edit. The password is re-hashed only when a new one is supplied,
// and only admins may change an account type.
func (srv *userService) UpdateUser(ctx context.Context, actor entity.Identity, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if !actor.CanAccess(id) {
		return nil, domainerrors.ErrForbidden
	}
	if input.Type != nil && !actor.IsAdmin() {
		return nil, domainerrors.ErrNotAdmin
	}

	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Type != nil {
		user.Type = *input.Type
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.Password = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID), slog.Any("actorID", actor.UserID))

	return user, nil
}

// DeleteUser removes an account and returns it.
func (srv *userService) DeleteUser(ctx context.Context, actor entity.Identity, id uuid.UUID) (*entity.User, error) {
	if !actor.CanAccess(id) {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Any("actorID", actor.UserID))

	return user, nil
}

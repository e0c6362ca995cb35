package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignupRequest is the body of POST /api/users
type SignupRequest struct {
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       *int   `json:"age" validate:"omitempty,gte=0"`
	Password  string `json:"password" validate:"min=6"`
	Type      string `json:"type" validate:"required,oneof=admin customer"`
}

func (SignupRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"fname.required": "fname is required",
		"lname.required": "lname is required",
		"email.required": "Please enter a valid email",
		"email.email":    "Please enter a valid email",
		"age.gte":        "age must be a non-negative number",
		"password.min":   "Please enter a password with 6 or more characters",
		"type.required":  "Type is required",
		"type.oneof":     "Type must be admin or customer",
	}
}

// LoginRequest is the body of POST /api/users/login
type LoginRequest struct {
	Type         string `json:"type" validate:"required,oneof=email refresh"`
	Email        string `json:"email" validate:"required_if=Type email"`
	Password     string `json:"password" validate:"required_if=Type email"`
	RefreshToken string `json:"refreshToken"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"type.required":        "Type is required",
		"type.oneof":           "Type must be email or refresh",
		"email.required_if":    "Please enter a valid email",
		"password.required_if": "Password is required",
	}
}

// UpdateUserRequest is the body of PUT /api/users/:id; absent fields are left untouched
type UpdateUserRequest struct {
	FirstName *string `json:"fname" validate:"omitempty,min=1"`
	LastName  *string `json:"lname" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int    `json:"age" validate:"omitempty,gte=0"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	Type      *string `json:"type" validate:"omitempty,oneof=admin customer"`
}

func (UpdateUserRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"fname.min":    "fname is required",
		"lname.min":    "lname is required",
		"email.email":  "Please enter a valid email",
		"password.min": "Please enter a password with 6 or more characters",
		"type.oneof":   "Type must be admin or customer",
	}
}

// Signup creates an account
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		Password:  req.Password,
		Type:      entity.AccountType(req.Type),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}

// Login exchanges credentials or a refresh token for a token pair
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Type:         usecase.LoginType(req.Type),
		Email:        req.Email,
		Password:     req.Password,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output)
}

// GetProfile returns the caller's account
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// ListUsers returns every account
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// GetUser returns one account
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// UpdateUser edits an account; callers may edit themselves, admins anyone
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		Password:  req.Password,
	}
	if req.Type != nil {
		accountType := entity.AccountType(*req.Type)
		input.Type = &accountType
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), caller, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// DeleteUser removes an account and returns it
func (h *UserHandler) DeleteUser(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.DeleteUser(c.Request().Context(), caller, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

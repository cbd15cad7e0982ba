// Package handler contains the HTTP handlers for the API.
package handler

import (
	"log/slog"
	"net/http"

	"arena/internal/delivery/api/response"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// CredentialsRequest is the body of both register and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=1024"`
}

// TokenResponse is returned whenever a token is issued.
type TokenResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int64           `json:"expires_in"`
	UserID    int64           `json:"user_id"`
	Heroes    []entity.HeroID `json:"heroes"`
}

func newTokenResponse(out *usecase.LoginOutput) *TokenResponse {
	return &TokenResponse{
		Token:     out.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(out.ExpiresIn.Seconds()),
		UserID:    out.UserID,
		Heroes:    out.HeroIDs,
	}
}

// Register creates the account and logs the new user straight in.
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.authUC.Register(ctx, &usecase.RegisterInput{Username: req.Username, Password: req.Password}); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.authUC.Login(ctx, &usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTokenResponse(out))
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(out))
}

// Ping is an unauthenticated liveness probe for the auth routes.
func (h *AuthHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &req, nil
}

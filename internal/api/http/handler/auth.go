package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// AuthService is the account surface used by the auth handler.
type AuthService interface {
	SignUp(ctx context.Context, username, rawPassword string) error
	SignIn(ctx context.Context, username, rawPassword string) (string, error)
}

// Auth serves the /auth routes.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

// SignUp registers a user. POST /auth/signup.
func (h *Auth) SignUp(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.SignUp(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// SignIn exchanges credentials for an access token. POST /auth/signin.
func (h *Auth) SignIn(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	accessToken, err := h.service.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signInResponse{AccessToken: accessToken})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return model.NewErrInvalidInput("invalid request")
	}
	return c.Validate(req)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignUp creates a user with a fresh salt. A taken username yields a conflict
// error; every other failure is reported as a generic internal error.
func (a *Auth) SignUp(ctx context.Context, username, rawPassword string) error {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	salt := a.hasher.GenerateSalt()

	passwordHash, err := a.hasher.Hash(rawPassword, salt)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.NewErrInternal()
	}

	_, err = a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: username already exists",
				"username", username)
			return model.NewErrUsernameTaken()
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.NewErrInternal()
	}

	a.logger.Info("Auth service: user registered successfully",
		"username", username)

	return nil
}

// FindByUsername reports absence through ok. The error is reserved for
// storage failures.
func (a *Auth) FindByUsername(ctx context.Context, username string) (model.User, bool, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, false, nil
		}
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, false, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, true, nil
}

// ValidateCredentials returns the username when the password matches.
// Unknown usernames return without hashing.
func (a *Auth) ValidateCredentials(ctx context.Context, username, rawPassword string) (string, bool, error) {
	user, ok, err := a.FindByUsername(ctx, username)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	if !a.hasher.Verify(rawPassword, user.Salt, user.PasswordHash) {
		return "", false, nil
	}

	return user.Username, true, nil
}

// SignIn validates credentials and issues an access token.
func (a *Auth) SignIn(ctx context.Context, username, rawPassword string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	validUsername, ok, err := a.ValidateCredentials(ctx, username, rawPassword)
	if err != nil {
		return "", fmt.Errorf("failed to validate credentials: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: invalid credentials",
			"username", username)
		return "", model.NewErrInvalidCredentials()
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(validUsername)
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"username", username)

	return accessToken, nil
}

// ResolveUser maps a verified token payload to the stored user.
func (a *Auth) ResolveUser(ctx context.Context, payload model.TokenPayload) (model.User, error) {
	user, ok, err := a.FindByUsername(ctx, payload.Username)
	if err != nil {
		return model.User{}, model.NewErrInternal()
	}
	if !ok {
		a.logger.Info("Auth service: token subject does not exist",
			"username", payload.Username)
		return model.User{}, model.NewErrUnauthorized()
	}

	return user, nil
}

// Authenticate verifies the access token and resolves its subject.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	payload, err := a.tokenManager.ParseAccessToken(accessToken)
	if err != nil {
		a.logger.Debug("Auth service: failed to parse access token",
			"error", err.Error())
		return model.User{}, model.NewErrInvalidAuthorizationToken()
	}

	return a.ResolveUser(ctx, payload)
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	// Create returns ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, user User) (User, error)
	// GetByUsername returns ErrNotFound when no user has the username.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	GenerateSalt() string
	Hash(password, salt string) (string, error)
	Verify(password, salt, expectedHash string) bool
}

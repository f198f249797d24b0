package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasktracker-server/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Create(t *testing.T) {
	const q = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*username,\s*password_hash,\s*salt\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`

	user := model.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hash",
		Salt:         "salt",
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery(q).
			WithArgs(user.ID.String(), "alice", "hash", "salt").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		got, err := repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, createdAt, got.CreatedAt)
	})

	t.Run("username taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(q).
			WithArgs(user.ID.String(), "alice", "hash", "salt").
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"})

		_, err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(q).
			WithArgs(user.ID.String(), "alice", "hash", "salt").
			WillReturnError(errors.New("db down"))

		_, err := repo.Create(context.Background(), user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrAlreadyExists)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	const q = `(?s)^SELECT\s+id,\s*username,\s*password_hash,\s*salt,\s*created_at\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		id := uuid.New()
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery(q).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "salt", "created_at"}).
				AddRow(id.String(), "alice", "hash", "salt", createdAt))

		got, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, model.User{
			ID:           id,
			Username:     "alice",
			PasswordHash: "hash",
			Salt:         "salt",
			CreatedAt:    createdAt,
		}, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(q).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(q).
			WithArgs("alice").
			WillReturnError(errors.New("boom"))

		_, err := repo.GetByUsername(context.Background(), "alice")
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))
}

func TestConnection_NilDB(t *testing.T) {
	conn := &Connection{}

	assert.Error(t, conn.Ping(context.Background()))
	assert.NoError(t, conn.Close())
}

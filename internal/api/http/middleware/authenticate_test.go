package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasktracker-server/internal/mocks"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

type ctxKey struct{}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name         string
		authHeader   string
		wantToken    string
		authErr      error
		wantErr      error
		expectSetCtx bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantErr:    model.NewErrMissingAuthorizationToken(),
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic YWxpY2U6cHc=",
			wantErr:    model.NewErrMissingAuthorizationToken(),
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantErr:    model.NewErrMissingAuthorizationToken(),
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid",
			wantToken:  "invalid",
			authErr:    model.NewErrInvalidAuthorizationToken(),
			wantErr:    model.NewErrInvalidAuthorizationToken(),
		},
		{
			name:         "valid token",
			authHeader:   "Bearer token",
			wantToken:    "token",
			expectSetCtx: true,
		},
		{
			name:         "scheme is case-insensitive",
			authHeader:   "bearer token",
			wantToken:    "token",
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			if tt.expectSetCtx {
				cm.On("SetUserToContext", mock.Anything, user).
					Return(context.WithValue(context.Background(), ctxKey{}, "marked")).Once()
			}

			authenticator := mocks.NewAuthenticator(t)
			if tt.wantToken != "" {
				authenticator.On("Authenticate", mock.Anything, tt.wantToken).Return(user, tt.authErr).Once()
			}

			m := NewAuthenticate(authenticator, cm, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			called := false
			err := m.Handle(func(c echo.Context) error {
				called = true
				assert.Equal(t, "marked", c.Request().Context().Value(ctxKey{}))
				return c.NoContent(http.StatusOK)
			})(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)
				return
			}

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER  abc "))
	assert.Empty(t, bearerToken("Bearer"))
	assert.Empty(t, bearerToken("Token abc"))
	assert.Empty(t, bearerToken(""))
}

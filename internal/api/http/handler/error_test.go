package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

func TestTranslateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"conflict", model.NewErrUsernameTaken(), http.StatusConflict, "username already exists"},
		{"unauthorized", model.NewErrInvalidCredentials(), http.StatusUnauthorized, "invalid credentials"},
		{"bad request", model.NewErrEmptyTaskStatus(), http.StatusBadRequest, "status should not be empty"},
		{"wrapped api error", fmt.Errorf("ctx: %w", model.NewErrUnauthorized()), http.StatusUnauthorized, "unauthorized"},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"echo internal hides detail", echo.NewHTTPError(http.StatusInternalServerError, "panic: nil map"), http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("secret detail"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, msg := translateError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestErrorHandler_LogsUnexpected(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(logger.NewWithWriter(&buf, 0, "text"))
	e.GET("/boom", func(echo.Context) error { return errors.New("secret detail") })

	rec := doRequest(t, e, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
	assert.Contains(t, buf.String(), "secret detail")
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(t, e, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"statusCode":404,"message":"Not Found","error":"Not Found"}`, rec.Body.String())
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	e := newTestEcho()
	e.HEAD("/tasks", func(echo.Context) error { return model.NewErrUnauthorized() })

	rec := doRequest(t, e, http.MethodHead, "/tasks", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

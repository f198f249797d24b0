package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// NewErrorHandler returns an echo.HTTPErrorHandler translating domain errors
// to status codes. Unknown errors are logged and answered with a generic 500.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := translateError(err)
		if code == http.StatusInternalServerError {
			logger.Error("HTTP handler: request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err.Error())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{
				StatusCode: code,
				Message:    message,
				Error:      http.StatusText(code),
			})
		}
		if err != nil {
			logger.Error("HTTP handler: failed to write error response",
				"error", err.Error())
		}
	}
}

func translateError(err error) (int, string) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode, apiErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, model.NewErrInternal().Message
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, model.NewErrInternal().Message
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/pkg/auth"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrStoreIsClosed), errors.Is(err, commands.ErrDuplicateCheckout):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected errors are logged and
// answered with a generic "Failed to <action>" message.
func (s *Server) fail(ctx echo.Context, err error, action string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed", "action", action, "error", err)
		message = "Failed to " + action
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders echo errors in the same shape as handler errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}

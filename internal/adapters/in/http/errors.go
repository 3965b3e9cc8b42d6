package http

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to its HTTP status. Remote rejections keep
// the remote's wording so the operator sees what the backend said.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrActionInFlight):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrRemoteRejected),
		errors.Is(err, locker.ErrIncompleteLayout):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrTransport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageOf returns the text shown to the operator. Remote messages are
// passed through verbatim; local ones are capitalised as sentences.
func messageOf(err error, status int) string {
	var (
		invalid  *errs.ValueIsInvalidError
		required *errs.ValueIsRequiredError
		remote   *errs.RemoteError
	)
	switch {
	case errors.As(err, &remote):
		return remote.Message
	case errors.As(err, &invalid):
		return sentence(invalid.ParamName)
	case errors.As(err, &required):
		return sentence(required.ParamName)
	case status == http.StatusInternalServerError:
		return "Something went wrong, please try again"
	default:
		return sentence(err.Error())
	}
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		ctx.Logger().Errorf("%s %s: %v", ctx.Request().Method, ctx.Path(), err)
	}
	return ctx.JSON(status, Error{Code: status, Message: messageOf(err, status)})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// HTTPErrorHandler renders echo errors (unknown routes, bad path parameters)
// in the same shape as use case errors.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
		return
	}
	_ = writeError(ctx, err)
}

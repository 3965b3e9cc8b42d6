package http

import (
	"context"

	"github.com/labstack/echo/v4"
)

// TokenBinder attaches the caller's session token to a request context.
type TokenBinder func(ctx context.Context, token string) context.Context

// BearerToken forwards the Authorization header to the use cases. Missing
// tokens are not rejected here: the gateway fails with "please attempt to
// sign in first" before it makes any remote call.
func BearerToken(bind TokenBinder, parse func(header string) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := parse(c.Request().Header.Get(echo.HeaderAuthorization))
			if token != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(bind(req.Context(), token)))
			}
			return next(c)
		}
	}
}

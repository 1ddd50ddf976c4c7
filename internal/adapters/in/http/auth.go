package http

import (
	"net/http"
	"strings"

	"bakery/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// AdminContextKey holds the authenticated admin email in the echo context.
const AdminContextKey = "admin"

// TokenVerifier validates admin session tokens.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// AdminAuth requires a valid token in the Authorization header. Websocket
// clients cannot set headers from a browser, so the token query parameter
// is accepted too.
func AdminAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				raw = ctx.QueryParam("token")
			}
			if raw == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing admin token",
				})
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			ctx.Set(AdminContextKey, claims.Subject)
			return next(ctx)
		}
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

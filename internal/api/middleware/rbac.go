package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

// RequireRoles enforces role-based access control. It is generic over the
// allowed set and knows nothing about individual endpoints. Authentication
// must already have run: a request with no claims gets 401, a valid identity
// outside the allowed set gets 403.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := Claims(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/api/metrics"
	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// Context keys set by Authenticate and read by RequireRoles and handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// credentialsMessage is the single message returned for every authentication
// failure. Malformed, tampered, and expired tokens are indistinguishable to
// the caller; the distinction lives only in logs and metrics.
const credentialsMessage = "could not validate credentials"

// Authenticate validates the bearer token and injects the asserted identity
// into the echo context. It must run before any RequireRoles check.
func Authenticate(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				kind := "invalid"
				switch {
				case errors.Is(err, domain.ErrTokenMalformed):
					kind = "malformed"
				case errors.Is(err, domain.ErrTokenExpired):
					kind = "expired"
				}
				metrics.TokenValidationFailures.WithLabelValues(kind).Inc()
				log.Debug().Str("kind", kind).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

// Claims extracts the identity injected by Authenticate. Absent claims mean
// the middleware did not run or did not succeed; that is a 401, not a 403.
func Claims(c echo.Context) (ports.TokenClaims, error) {
	userID, _ := c.Get(ContextUserID).(string)
	role, _ := c.Get(ContextRole).(domain.Role)
	if userID == "" || role == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
	}
	return ports.TokenClaims{UserID: userID, Role: role}, nil
}

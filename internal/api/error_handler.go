package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Collapses every credential failure into one uniform 401 message so the
//     response cannot be used to enumerate accounts or probe tokens.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Validation failures carry a field-level message safe to show the caller.
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrUnknownRole):
		return http.StatusBadRequest, err.Error()

	// All credential failures share one message; the real cause is logged.
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		log.Debug().Err(err).Str("path", c.Path()).Msg("authentication failed")
		return http.StatusUnauthorized, "could not validate credentials"

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "insufficient permissions"

	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrAlbumNotFound):
		return http.StatusNotFound, "album not found"
	case errors.Is(err, domain.ErrSongNotFound):
		return http.StatusNotFound, "song not found"
	case errors.Is(err, domain.ErrShowNotFound):
		return http.StatusNotFound, "show not found"
	case errors.Is(err, domain.ErrEpisodeNotFound):
		return http.StatusNotFound, "episode not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "blog post not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

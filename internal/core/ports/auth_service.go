package ports

import (
	"context"
	"time"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TokenClaims is the validated identity recovered from a bearer token.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

// TokenService issues and validates signed, time-bounded bearer tokens.
type TokenService interface {
	// Issue signs claims for the given account. A ttl of zero, or one above
	// the configured ceiling, is clamped to the ceiling.
	Issue(userID string, role domain.Role, ttl time.Duration) (string, error)
	// Validate checks structure, signature, and expiry, in that order, and
	// returns the asserted identity. Failures are domain.ErrTokenMalformed,
	// domain.ErrTokenInvalid, or domain.ErrTokenExpired.
	Validate(token string) (*TokenClaims, error)
}

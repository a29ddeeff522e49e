package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// tokenClaims is the wire shape of an access token.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 access tokens. The signing secret
// is provided once at construction; config validation has already refused to
// start the process on an absent or short secret.
type TokenService struct {
	secret []byte
	maxTTL time.Duration
}

func NewTokenService(secret string, maxTTL time.Duration) *TokenService {
	if maxTTL <= 0 {
		maxTTL = 30 * time.Minute
	}
	return &TokenService{secret: []byte(secret), maxTTL: maxTTL}
}

// Issue signs claims for userID with the given role. Callers may request a
// shorter lifetime than the configured ceiling, never a longer one.
func (s *TokenService) Issue(userID string, role domain.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 || ttl > s.maxTTL {
		ttl = s.maxTTL
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks structure, signature, and expiry, in that order. The three
// failure kinds stay distinct here for internal logging; the HTTP layer
// collapses them into one uniform 401.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	// Issued tokens always carry both claims; an absent role is not a
	// default-member token, it is a forgery.
	if claims.Role == "" || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{UserID: claims.Subject, Role: role}, nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokens() *service.TokenService {
	return service.NewTokenService(testSecret, 30*time.Minute)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	signed, err := tokens.Issue("user-1", domain.RoleArtist, 0)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Authenticate(tokens, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		claims, err := Claims(c)
		if err != nil {
			t.Fatalf("claims not injected: %v", err)
		}
		if claims.UserID != "user-1" || claims.Role != domain.RoleArtist {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuthenticate_Failures(t *testing.T) {
	tokens := newTestTokens()
	valid, err := tokens.Issue("user-1", domain.RoleMember, 0)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Tamper with one byte of the signature.
	tampered := []byte(valid)
	tampered[len(tampered)-3] ^= 0x01

	otherTokens := service.NewTokenService("another-secret-another-secret-32b", 30*time.Minute)
	foreign, err := otherTokens.Issue("user-1", domain.RoleMember, 0)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token " + valid},
		{"not a token", "Bearer not-a-token"},
		{"tampered", "Bearer " + string(tampered)},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Authenticate(tokens, zerolog.Nop())
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			if err == nil {
				t.Fatalf("expected error")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
			// Every failure kind must present the identical message.
			if he.Message != credentialsMessage {
				t.Fatalf("non-uniform failure message: %v", he.Message)
			}
		})
	}
}

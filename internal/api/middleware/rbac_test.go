package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

func newRBACContext(e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextUserID, "user-1")
		c.Set(ContextRole, role)
	}
	return c, rec
}

func TestRequireRoles_Allows(t *testing.T) {
	e := echo.New()
	c, rec := newRBACContext(e, domain.RoleStaff)

	called := false
	mw := RequireRoles(domain.RoleAdmin, domain.RoleStaff)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbids(t *testing.T) {
	e := echo.New()
	c, _ := newRBACContext(e, domain.RoleMember)

	mw := RequireRoles(domain.RoleAdmin, domain.RoleStaff)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRoles_UnauthenticatedIs401(t *testing.T) {
	e := echo.New()
	c, _ := newRBACContext(e, "")

	mw := RequireRoles(domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("missing claims must be 401, got %v", err)
	}
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/api/handler"
	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
	"github.com/itsyourradio/radio-api/internal/core/service"
)

// memUserRepo is an in-memory credential store enforcing email/username
// uniqueness atomically, standing in for the MongoDB unique indexes.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for otherID, other := range r.users {
		if otherID == id {
			continue
		}
		if update.Email != nil && other.Email == *update.Email {
			return nil, domain.ErrEmailTaken
		}
		if update.Username != nil && other.Username == *update.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Active != nil {
		u.Active = *update.Active
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// newTestApp wires the real services, middleware, and error handler over the
// in-memory store, mirroring the production router's auth surface.
func newTestApp() *echo.Echo {
	log := zerolog.Nop()
	repo := newMemUserRepo()
	hasher := service.NewPasswordHasher(4, 4)
	tokens := service.NewTokenService("0123456789abcdef0123456789abcdef", 30*time.Minute)
	authService := service.NewAuthService(repo, hasher, tokens, log)
	userService := service.NewUserService(repo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Authenticate(tokens, log)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	users := apiGroup.Group("/users", authn)
	users.GET("/me", userHandler.Me)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, e *echo.Echo, email, username, role string) map[string]any {
	t.Helper()
	body := `{"email":"` + email + `","username":"` + username + `","password":"password123","role":"` + role + `"}`
	rec := doJSON(e, http.MethodPost, "/api/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, rec.Code, rec.Body.String())
	}
	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid register response: %v", err)
	}
	return user
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"password123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("unexpected token type: %s", resp.TokenType)
	}
	return resp.AccessToken
}

func TestEndToEnd_RegisterLoginMe(t *testing.T) {
	e := newTestApp()

	register(t, e, "admin@test.com", "admin", "admin")
	token := login(t, e, "admin@test.com")

	rec := doJSON(e, http.MethodGet, "/api/users/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("invalid me response: %v", err)
	}
	if me["role"] != "admin" || me["email"] != "admin@test.com" {
		t.Fatalf("unexpected profile: %+v", me)
	}
	if _, leaked := me["password_hash"]; leaked {
		t.Fatalf("password hash leaked in profile")
	}
}

func TestEndToEnd_RoleGate(t *testing.T) {
	e := newTestApp()

	register(t, e, "admin@test.com", "admin", "admin")
	target := register(t, e, "victim@test.com", "victim", "member")
	register(t, e, "member@test.com", "member", "member")

	adminToken := login(t, e, "admin@test.com")
	memberToken := login(t, e, "member@test.com")
	targetID, _ := target["id"].(string)

	// Member hitting an admin-only operation: authenticated, wrong role.
	rec := doJSON(e, http.MethodDelete, "/api/users/"+targetID, "", memberToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member delete: expected 403, got %d", rec.Code)
	}

	// No token at all beats the role question: 401, not 403.
	rec = doJSON(e, http.MethodDelete, "/api/users/"+targetID, "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous delete: expected 401, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/api/users/"+targetID, "", adminToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("admin delete: expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	e := newTestApp()

	register(t, e, "dup@test.com", "first", "member")

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"dup@test.com","username":"second","password":"password123"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("expected field-level message, got %s", rec.Body.String())
	}
}

func TestEndToEnd_LoginFailuresUniform(t *testing.T) {
	e := newTestApp()

	register(t, e, "user@test.com", "user", "member")

	wrongPassword := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"user@test.com","password":"not-the-password"}`, "")
	unknownAccount := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@test.com","password":"password123"}`, "")

	for _, rec := range []*httptest.ResponseRecorder{wrongPassword, unknownAccount} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	}
	if wrongPassword.Body.String() != unknownAccount.Body.String() {
		t.Fatalf("login failure responses must be indistinguishable:\n%s\n%s",
			wrongPassword.Body.String(), unknownAccount.Body.String())
	}
}

func TestEndToEnd_ExpiredAndTamperedTokens(t *testing.T) {
	e := newTestApp()

	register(t, e, "user@test.com", "user", "member")
	token := login(t, e, "user@test.com")

	// Tampered token.
	tampered := []byte(token)
	tampered[len(tampered)-2] ^= 0x01
	rec := doJSON(e, http.MethodGet, "/api/users/me", "", string(tampered))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: expected 401, got %d", rec.Code)
	}

	// Garbage token.
	rec = doJSON(e, http.MethodGet, "/api/users/me", "", "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}
}

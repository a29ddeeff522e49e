package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// stubUserRepo is an in-memory credential store. Like the real store, it
// enforces email/username uniqueness atomically under one lock, so two
// concurrent inserts can never both succeed.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by ID
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
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
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	// Email/username changes re-hit the same uniqueness rule as inserts.
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
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Active != nil {
		u.Active = *update.Active
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func newTestAuthService(repo ports.UserRepository) (*AuthService, *TokenService) {
	hasher := NewPasswordHasher(4, 4)
	tokens := NewTokenService(testSecret, 30*time.Minute)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Alice@Example.com",
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not lowercased: %s", user.Email)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("expected default role member, got %s", user.Role)
	}
	if !user.Active {
		t.Fatalf("new account should be active")
	}
	if user.PasswordHash == "" || user.PasswordHash == "password123" {
		t.Fatalf("password not hashed")
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "password123",
		Role:     "overlord",
	})
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{Email: "bob@example.com", Username: "bob", Password: "password123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, ports.RegisterInput{Email: "bob@example.com", Username: "bob2", Password: "password123"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	ctx := context.Background()

	results := make(chan error, 2)
	for i, username := range []string{"carol_a", "carol_b"} {
		go func(i int, username string) {
			_, err := svc.Register(ctx, ports.RegisterInput{
				Email:    "carol@example.com",
				Username: username,
				Password: "password123",
			})
			results <- err
		}(i, username)
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			if !errors.Is(err, domain.ErrEmailTaken) {
				t.Fatalf("unexpected error: %v", err)
			}
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one failed registration, got %d", failures)
	}
	if repo.count() != 1 {
		t.Fatalf("expected exactly one stored account, got %d", repo.count())
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestAuthService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, ports.RegisterInput{
		Email:    "dave@example.com",
		Username: "dave",
		Password: "correct-horse",
		Role:     "artist",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(ctx, "dave@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned a different account")
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != registered.ID || claims.Role != domain.RoleArtist {
		t.Fatalf("token claims do not round-trip: %+v", claims)
	}
}

// failingUserRepo simulates an unreachable credential store.
type failingUserRepo struct {
	*stubUserRepo
	findByEmailErr error
}

func (r *failingUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, r.findByEmailErr
}

func TestAuthService_Login_StoreFailureIsNotBadCredentials(t *testing.T) {
	storeErr := errors.New("server selection timeout")
	repo := &failingUserRepo{stubUserRepo: newStubUserRepo(), findByEmailErr: storeErr}
	svc, _ := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), "erin@example.com", "password123")
	if err == nil {
		t.Fatalf("expected error from unreachable store")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store outage must not masquerade as bad credentials")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("store error not propagated: %v", err)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, ports.RegisterInput{Email: "erin@example.com", Username: "erin", Password: "password123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password.
	if _, _, err := svc.Login(ctx, "erin@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	// Absent account.
	if _, _, err := svc.Login(ctx, "ghost@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("absent account: expected ErrInvalidCredentials, got %v", err)
	}

	// Disabled account.
	inactive := false
	if _, err := repo.Update(ctx, user.ID, ports.UserUpdate{Active: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, _, err := svc.Login(ctx, "erin@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("disabled account: expected ErrInvalidCredentials, got %v", err)
	}
}

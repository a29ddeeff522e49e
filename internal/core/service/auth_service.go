package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/api/metrics"
	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// AuthService implements registration, login, and account lookup.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. Email and username uniqueness is enforced
// by the store's unique indexes; a duplicate surfaces as ErrEmailTaken or
// ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues an access token. Absent account,
// wrong password, and disabled account all collapse to ErrInvalidCredentials
// so the caller cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Burn a comparison so this path costs the same as a real one.
		s.hasher.VerifyDummy(ctx)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		// A store failure is an outage, not a bad password. Surface it so it
		// reaches the caller as a server error, not a 401.
		return "", nil, fmt.Errorf("login lookup: %w", err)
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("user_id", user.ID).Msg("login attempt on disabled account")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role, 0)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

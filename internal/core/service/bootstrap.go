package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// BootstrapConfig names the default administrator account created at startup.
// The password comes from required configuration and must be rotated after
// first deployment; it is not a permanent credential.
type BootstrapConfig struct {
	AdminEmail    string
	AdminUsername string
	AdminPassword string
	AdminFullName string
}

// Bootstrap idempotently guarantees the default administrator account exists.
type Bootstrap struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	cfg    BootstrapConfig
	logger zerolog.Logger
}

func NewBootstrap(repo ports.UserRepository, hasher *PasswordHasher, cfg BootstrapConfig, logger zerolog.Logger) *Bootstrap {
	return &Bootstrap{repo: repo, hasher: hasher, cfg: cfg, logger: logger}
}

// EnsureDefaultAdmin creates the admin account when it is absent. Two process
// instances may race here: the store's unique index rejects the second insert,
// and that rejection is a benign "already exists", not a startup failure.
func (b *Bootstrap) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := b.repo.FindByEmail(ctx, b.cfg.AdminEmail)
	if err == nil {
		b.logger.Debug().Str("email", b.cfg.AdminEmail).Msg("default admin already present")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := b.hasher.Hash(ctx, b.cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        b.cfg.AdminEmail,
		Username:     b.cfg.AdminUsername,
		FullName:     b.cfg.AdminFullName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := b.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			b.logger.Debug().Msg("default admin created by a concurrent instance")
			return nil
		}
		return err
	}

	b.logger.Info().Str("email", b.cfg.AdminEmail).Msg("default admin created; rotate the initial password")
	return nil
}

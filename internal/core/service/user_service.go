package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// UserService implements profile reads and updates on top of the credential
// store.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies input to the target account as one atomic write.
// Non-admins may only touch their own profile; role and active changes are
// admin-only regardless of target.
func (s *UserService) UpdateProfile(ctx context.Context, caller ports.TokenClaims, targetID string, input ports.UpdateProfileInput) (*domain.User, error) {
	isAdmin := caller.Role == domain.RoleAdmin
	if !isAdmin && caller.UserID != targetID {
		return nil, domain.ErrForbidden
	}
	if !isAdmin && (input.Role != nil || input.Active != nil) {
		return nil, domain.ErrForbidden
	}

	update := ports.UserUpdate{
		Email:           input.Email,
		Username:        input.Username,
		FullName:        input.FullName,
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
		CoverImageURL:   input.CoverImageURL,
		Active:          input.Active,
	}
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		update.Role = &role
	}

	updated, err := s.repo.Update(ctx, targetID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("by", caller.UserID).Msg("profile updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return nil
}

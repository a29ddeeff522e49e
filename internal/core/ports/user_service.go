package ports

import (
	"context"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

// UpdateProfileInput carries a profile update request. Role and Active are
// only honoured when the caller is an admin.
type UpdateProfileInput struct {
	Email           *string
	Username        *string
	FullName        *string
	Bio             *string
	ProfileImageURL *string
	CoverImageURL   *string
	Role            *string
	Active          *bool
}

type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies input to the target account. Non-admin callers
	// may only update their own profile fields.
	UpdateProfile(ctx context.Context, caller TokenClaims, targetID string, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

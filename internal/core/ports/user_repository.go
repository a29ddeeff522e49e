package ports

import (
	"context"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

// UserUpdate carries the mutable account fields for an atomic update. Nil
// pointers mean "leave unchanged"; the repository applies the whole set in a
// single write so concurrent updates cannot interleave.
type UserUpdate struct {
	Email           *string
	Username        *string
	FullName        *string
	Bio             *string
	ProfileImageURL *string
	CoverImageURL   *string
	Role            *domain.Role
	Active          *bool
	PasswordHash    *string
}

// UserRepository is the credential store: durable keyed storage of accounts.
// Uniqueness of email and username is enforced by the store itself, never by
// a check-then-insert in the caller.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

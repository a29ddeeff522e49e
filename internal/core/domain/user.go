package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles an account can hold.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStaff     Role = "staff"
	RoleArtist    Role = "artist"
	RolePodcaster Role = "podcaster"
	RoleMember    Role = "member"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role string at the system boundary. The empty string
// maps to RoleMember; anything outside the closed set is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleArtist, RolePodcaster, RoleMember:
		return Role(s), nil
	case "":
		return RoleMember, nil
	}
	return "", ErrUnknownRole
}

func (r Role) String() string { return string(r) }

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrForbidden          = errors.New("access forbidden")

	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// User models a registered account. PasswordHash never crosses the API
// boundary; it is excluded from every JSON response.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name,omitempty"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	CoverImageURL   string    `json:"cover_image_url,omitempty"`
	Active          bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

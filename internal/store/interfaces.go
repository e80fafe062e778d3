package store

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user accounts and their role memberships.
type UserRepository interface {
	// CreateUser stores user and grants it roleName in one transaction.
	// The returned user carries the assigned ID, CreatedAt and Roles.
	CreateUser(ctx context.Context, user models.User, roleName string) (models.User, error)

	// FindUserByEmail returns the user with the given email, roles included.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID, roles included.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every user ordered by ID, roles included.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AttachRole grants roleName to the user, creating the role when it
	// does not exist yet. Granting a role twice is a no-op.
	AttachRole(ctx context.Context, userID int64, roleName string) (models.Role, error)

	// UpdatePassword replaces the password hash and the fs_uniquifier of
	// the user.
	UpdatePassword(ctx context.Context, userID int64, passwordHash, fsUniquifier string) error

	// SetActive switches the account on or off.
	SetActive(ctx context.Context, userID int64, active bool) error

	// DeleteUser removes the user together with its role memberships.
	DeleteUser(ctx context.Context, userID int64) error
}

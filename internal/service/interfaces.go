package service

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService registers users, checks their credentials and issues tokens.
type AuthService interface {
	// Register validates req, stores the user with the default role and
	// returns it. Validation failures are reported as validators.FieldErrors.
	Register(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn checks the credential and returns the matching user. A user
	// without any role is granted the default role first.
	SignIn(ctx context.Context, credential models.Credential) (models.User, error)

	// ResetPassword replaces the password after checking the old one.
	ResetPassword(ctx context.Context, req models.PasswordResetRequest) error

	// CreateToken issues a signed JWT for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate resolves a bearer token to the active user it was issued
	// for. Expired, forged or pre-reset tokens yield ErrUnauthorized.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// AdminService manages accounts on behalf of administrators.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeactivateUser switches the account off. Its tokens stop
	// authenticating immediately.
	DeactivateUser(ctx context.Context, userID int64) error

	// ChangeRole grants roleName to the user, creating the role if needed.
	ChangeRole(ctx context.Context, userID int64, roleName string) error

	DeleteUser(ctx context.Context, userID int64) error
}

// AppInfoService reports static facts about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UniquifierGenerator produces fresh fs_uniquifier values.
type UniquifierGenerator interface {
	Generate() string
}

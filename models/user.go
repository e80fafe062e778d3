package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique address the user signs in with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plaintext password never reaches the persistence layer.
	PasswordHash string `json:"-"`

	// FirstName, LastName and Phone are optional profile attributes
	// collected at registration.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// Active reports whether the account may sign in.
	Active bool `json:"active"`

	// ConfirmedAt is set once the account has been confirmed. Nil means
	// the account was never confirmed.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	// FsUniquifier is a random per-user identifier that is rotated to
	// invalidate outstanding tokens.
	FsUniquifier string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// Roles lists the names of the roles granted to the user.
	Roles []string `json:"roles,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether the user has been granted the named role.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role is a named permission group users can be attached to.
type Role struct {
	RoleID      int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// DefaultRoleName is the role every registered user receives.
const DefaultRoleName = "user"

// AdminRoleName is the role that unlocks the admin routes.
const AdminRoleName = "admin"

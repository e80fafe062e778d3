package models

// Credential is the field set submitted to the sign-in and sign-up
// endpoints. Both fields are required at submit time.
type Credential struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest is the body accepted by the registration endpoints.
// Profile fields are optional; clients that only know [Credential]
// send a compatible subset.
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// User converts the request into a [User] ready to be persisted. The
// password is left to the caller to hash.
func (r SignUpRequest) User() User {
	return User{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Active:    true,
	}
}

// PasswordResetRequest is the body of POST /reset_password.
type PasswordResetRequest struct {
	Email       string `json:"email" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

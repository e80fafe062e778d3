package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the candidate password
	// does not produce the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by Hash for passwords bcrypt cannot
	// encode (more than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")
)

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns the encoded hash of password, salt included.
	Hash(password string) (string, error)

	// Compare reports nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(hash, password string) error
}
